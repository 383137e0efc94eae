package doctor

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/Masterminds/semver/v3"
	"golang.org/x/text/message"

	"github.com/johan-perso/betterpip/internal/platform"
	"github.com/johan-perso/betterpip/internal/runner"
	"github.com/johan-perso/betterpip/internal/runtime"
	"github.com/johan-perso/betterpip/internal/ui"
)

// Status is the result of a single check.
type Status int

const (
	OK Status = iota
	Fixed
	Warn
	Missing
)

func (s Status) label() string {
	switch s {
	case OK:
		return ui.Green("[ OK ]")
	case Fixed:
		return ui.Green("[FIX ]")
	case Warn:
		return ui.Yellow("[WARN]")
	default:
		return ui.Red("[MISS]")
	}
}

// Check is one line of the doctor report.
type Check struct {
	Name    string
	Status  Status
	Version string
	// Detail is a fixed, translatable message.
	Detail string
	Err    error
}

// Doctor runs the environment checks.
type Doctor struct {
	Exec       runner.Executor
	Resolver   *runtime.Resolver
	PipCommand string
	GOOS       string
	ShimDir    string
	// PathEnv is the PATH value searched for ShimDir.
	PathEnv string
	// AddToUserPath registers a directory on the user's PATH. It defaults
	// to the registry edit on Windows.
	AddToUserPath func(dir string) (bool, error)
}

var versionPattern = regexp.MustCompile(`\d+(\.\d+){0,2}`)

// ParseVersion extracts the first version number of a tool's --version
// output, e.g. "Python 3.12.1" or "pip 24.0 from /usr/lib/...".
func ParseVersion(output string) (*semver.Version, error) {
	m := versionPattern.FindString(output)
	if m == "" {
		return nil, fmt.Errorf("no version in %q", output)
	}
	return semver.NewVersion(m)
}

// Run executes every check and returns them with passing checks first.
func (d *Doctor) Run(ctx context.Context) []Check {
	checks := []Check{
		d.checkPython(ctx),
		d.checkTool(ctx, "Pip", d.pipArgv("--version")),
		d.checkTool(ctx, "Git", []string{"git", "--version"}),
		d.checkShimDir(),
	}
	sort.SliceStable(checks, func(i, j int) bool {
		return (checks[i].Status <= Fixed) && (checks[j].Status > Fixed)
	})
	return checks
}

func (d *Doctor) checkPython(ctx context.Context) Check {
	c := Check{Name: "Python", Status: Missing}
	python, err := d.Resolver.Detect()
	if err != nil {
		c.Err = err
		return c
	}
	out, err := d.Exec.Output(ctx, python, "-V")
	if err != nil {
		c.Err = err
		return c
	}

	c.Status = OK
	v, err := ParseVersion(out)
	if err != nil {
		return c
	}
	c.Version = v.Original()
	if v.Major() < 3 {
		c.Status = Warn
		c.Detail = "Python 2 is no longer supported, install Python 3"
	}
	return c
}

func (d *Doctor) checkTool(ctx context.Context, name string, argv []string) Check {
	c := Check{Name: name, Status: Missing}
	out, err := d.Exec.Output(ctx, argv[0], argv[1:]...)
	if err != nil {
		c.Err = err
		return c
	}
	c.Status = OK
	if v, err := ParseVersion(out); err == nil {
		c.Version = v.Original()
	}
	return c
}

func (d *Doctor) checkShimDir() Check {
	c := Check{Name: "Commands directory", Version: d.ShimDir}

	if _, err := os.Stat(d.ShimDir); err != nil {
		if d.GOOS != platform.Windows {
			c.Status = Missing
			c.Detail = "global commands cannot be linked until this directory exists"
			return c
		}
		if err := os.MkdirAll(d.ShimDir, 0o755); err != nil {
			c.Status = Missing
			c.Err = err
			return c
		}
		c.Status = Fixed
		c.Detail = "created"
	}

	if PathContains(d.PathEnv, d.ShimDir, d.GOOS) {
		return c
	}

	if d.GOOS == platform.Windows {
		add := d.AddToUserPath
		if add == nil {
			add = addToUserPath
		}
		changed, err := add(d.ShimDir)
		if err != nil {
			c.Status = Missing
			c.Detail = "could not add to PATH"
			c.Err = err
			return c
		}
		if changed {
			c.Status = Fixed
			c.Detail = "added to PATH, restart your terminal"
		}
		return c
	}

	c.Status = Warn
	c.Detail = "not on PATH"
	return c
}

func (d *Doctor) pipArgv(args ...string) []string {
	fields := strings.Fields(d.PipCommand)
	if len(fields) == 0 {
		fields = []string{"pip"}
	}
	return append(fields, args...)
}

// PathContains reports whether dir is one of the entries of pathEnv.
// Windows comparisons ignore case.
func PathContains(pathEnv, dir, goos string) bool {
	sep := string(os.PathListSeparator)
	if goos == platform.Windows {
		sep = ";"
	}
	want := filepath.Clean(dir)
	for _, entry := range strings.Split(pathEnv, sep) {
		if entry == "" {
			continue
		}
		got := filepath.Clean(entry)
		if got == want || (goos == platform.Windows && strings.EqualFold(got, want)) {
			return true
		}
	}
	return false
}

// Print writes the report, one check per line.
func Print(w io.Writer, p *message.Printer, checks []Check) {
	for _, c := range checks {
		version := c.Version
		if version == "" {
			version = "N/A"
		}
		line := fmt.Sprintf("  %s %s (%s)", c.Status.label(), p.Sprintf(c.Name), version)
		if c.Detail != "" {
			line += " " + ui.Dim(p.Sprintf(c.Detail))
		}
		if c.Err != nil {
			line += " " + ui.Dim(c.Err.Error())
		}
		fmt.Fprintln(w, line)
	}
}

// Healthy reports whether no check is missing.
func Healthy(checks []Check) bool {
	for _, c := range checks {
		if c.Status == Missing {
			return false
		}
	}
	return true
}
