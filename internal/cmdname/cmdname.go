// Package cmdname decides whether a name may be installed as a global
// command: it must be well formed and must not shadow a reserved name.
package cmdname

import (
	"errors"
	"fmt"
	"os/exec"
	"regexp"
)

var (
	// ErrMalformed is returned for names with characters outside [a-zA-Z0-9-].
	ErrMalformed = errors.New("command name may only contain letters, digits and dashes")
	// ErrReserved is returned for names that shadow a shell built-in or common tool.
	ErrReserved = errors.New("command name is reserved")
)

var wellFormed = regexp.MustCompile(`^[a-zA-Z0-9-]+$`)

// Table identifies one of the reserved-name tables.
type Table int

const (
	TableWindows Table = iota
	TablePowerShell
	TableUnix
	TableCLI
)

func (t Table) String() string {
	switch t {
	case TableWindows:
		return "windows"
	case TablePowerShell:
		return "powershell"
	case TableUnix:
		return "unix"
	case TableCLI:
		return "cli"
	default:
		return fmt.Sprintf("table(%d)", int(t))
	}
}

var reserved = func() map[string]Table {
	m := make(map[string]Table)
	// Reverse order so a name listed in several tables reports the first one.
	lists := [][]string{windowsBuiltins, powershellCmdlets, unixUtilities, commonCLIs}
	for i := len(lists) - 1; i >= 0; i-- {
		for _, name := range lists[i] {
			m[name] = Table(i)
		}
	}
	return m
}()

// IsWellFormed reports whether name is non-empty and only uses letters,
// digits and dashes. Path separators and shell metacharacters are rejected.
func IsWellFormed(name string) bool {
	return wellFormed.MatchString(name)
}

// IsReserved reports whether name appears in any reserved table.
// Matching is exact and case-sensitive.
func IsReserved(name string) bool {
	_, ok := reserved[name]
	return ok
}

// ReservedBy returns the table that reserves name.
func ReservedBy(name string) (Table, bool) {
	t, ok := reserved[name]
	return t, ok
}

// Names returns a copy of the entries of table t.
func Names(t Table) []string {
	var src []string
	switch t {
	case TableWindows:
		src = windowsBuiltins
	case TablePowerShell:
		src = powershellCmdlets
	case TableUnix:
		src = unixUtilities
	case TableCLI:
		src = commonCLIs
	}
	return append([]string(nil), src...)
}

// Check returns ErrMalformed or ErrReserved when name cannot be linked.
func Check(name string) error {
	if !IsWellFormed(name) {
		return fmt.Errorf("%q: %w", name, ErrMalformed)
	}
	if t, ok := ReservedBy(name); ok {
		return fmt.Errorf("%q (%s): %w", name, t, ErrReserved)
	}
	return nil
}

// Exists reports whether name already resolves to an executable on PATH.
func Exists(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}
