package linker

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/johan-perso/betterpip/internal/branding"
	"github.com/johan-perso/betterpip/internal/cmdname"
	"github.com/johan-perso/betterpip/internal/log"
	"github.com/johan-perso/betterpip/internal/platform"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.tmpl"))

// ErrShimDirMissing is returned on Windows when the shim directory has not
// been created yet. `betterpip doctor` creates it and adds it to PATH.
var ErrShimDirMissing = errors.New("shim directory does not exist")

// State is what the shim directory holds for a command.
type State int

const (
	// Absent means no file exists for the command.
	Absent State = iota
	// Linked means a shim written by this tool exists.
	Linked
	// Foreign means a file exists that this tool did not write.
	Foreign
)

func (s State) String() string {
	switch s {
	case Absent:
		return "absent"
	case Linked:
		return "linked"
	case Foreign:
		return "foreign"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// UnlinkResult is the per-command outcome of Unlink.
type UnlinkResult int

const (
	// Deleted means the shim was removed.
	Deleted UnlinkResult = iota
	// NotFound means there was nothing to remove.
	NotFound
	// Invalid means the file exists and is kept: it was not written by this
	// tool, or it could not be read or removed.
	Invalid
)

func (r UnlinkResult) String() string {
	switch r {
	case Deleted:
		return "deleted"
	case NotFound:
		return "not found"
	case Invalid:
		return "invalid"
	default:
		return fmt.Sprintf("result(%d)", int(r))
	}
}

// Linker manages shims in a single directory.
type Linker struct {
	// Dir is the shim directory.
	Dir string
	// GOOS selects the shim flavor: a .cmd batch file on Windows, a bash
	// script elsewhere.
	GOOS string
	// Version is written into the marker comment.
	Version string
	// Python is the interpreter command invoked by the shim.
	Python string
}

type shimData struct {
	Marker   string
	Python   string
	MainFile string
}

// Marker returns the tag written into every shim, e.g. "better-pip_v1.4.0".
func (l *Linker) Marker() string {
	return branding.ShimMarker() + l.Version
}

// ShimPath returns where the shim for command lives.
func (l *Linker) ShimPath(command string) string {
	return filepath.Join(l.Dir, platform.ShimFileName(l.GOOS, command))
}

// Render returns the shim content for mainFile, which must be absolute.
func (l *Linker) Render(mainFile string) ([]byte, error) {
	name := "shim.sh.tmpl"
	if l.GOOS == platform.Windows {
		name = "shim.cmd.tmpl"
	}

	var buf bytes.Buffer
	data := shimData{Marker: l.Marker(), Python: l.Python, MainFile: mainFile}
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		return nil, fmt.Errorf("executing shim template: %w", err)
	}

	if l.GOOS == platform.Windows {
		return bytes.ReplaceAll(buf.Bytes(), []byte("\n"), []byte("\r\n")), nil
	}
	return buf.Bytes(), nil
}

// Link writes the shim for command, replacing any previous one.
func (l *Linker) Link(command, mainFile string) error {
	if !cmdname.IsWellFormed(command) {
		return fmt.Errorf("%q: %w", command, cmdname.ErrMalformed)
	}
	if l.Python == "" {
		return errors.New("no python command configured for shims")
	}

	if l.GOOS == platform.Windows {
		if info, err := os.Stat(l.Dir); err != nil || !info.IsDir() {
			return fmt.Errorf("%s: %w", l.Dir, ErrShimDirMissing)
		}
	}

	abs, err := filepath.Abs(mainFile)
	if err != nil {
		return fmt.Errorf("resolving main file: %w", err)
	}
	content, err := l.Render(abs)
	if err != nil {
		return err
	}

	path := l.ShimPath(command)
	if err := os.WriteFile(path, content, platform.ExecutableMode); err != nil {
		return fmt.Errorf("writing shim %s: %w", path, err)
	}
	if err := platform.Chmod(path, platform.ExecutableMode); err != nil {
		return fmt.Errorf("setting permissions on %s: %w", path, err)
	}

	log.Debug("shim written", "command", command, "path", path, "main", abs)
	return nil
}

// State reports whether command is linked, absent or owned by someone else.
func (l *Linker) State(command string) State {
	if !cmdname.IsWellFormed(command) {
		return Absent
	}
	data, err := os.ReadFile(l.ShimPath(command))
	if err != nil {
		return Absent
	}
	if strings.Contains(string(data), branding.ShimMarker()) {
		return Linked
	}
	return Foreign
}

// Unlink removes the shim for command if this tool wrote it. Shims written
// by any version of the tool are recognized.
func (l *Linker) Unlink(command string) (UnlinkResult, error) {
	if !cmdname.IsWellFormed(command) {
		return Invalid, fmt.Errorf("%q: %w", command, cmdname.ErrMalformed)
	}

	path := l.ShimPath(command)
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return NotFound, nil
	}
	if err != nil {
		return Invalid, fmt.Errorf("reading %s: %w", path, err)
	}

	if !strings.Contains(string(data), branding.ShimMarker()) {
		return Invalid, nil
	}
	if err := os.Remove(path); err != nil {
		return Invalid, fmt.Errorf("removing %s: %w", path, err)
	}

	log.Debug("shim removed", "command", command, "path", path)
	return Deleted, nil
}
