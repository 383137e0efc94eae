// Package runner invokes external tools (pip, git, python) and reduces their
// result to a success or failure outcome.
package runner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/johan-perso/betterpip/internal/log"
)

// Outcome is the coarse result of running an external tool.
type Outcome int

const (
	Succeeded Outcome = iota
	Failed
)

func (o Outcome) String() string {
	if o == Succeeded {
		return "succeeded"
	}
	return "failed"
}

// ErrorMarker is searched for in the captured output of every run. Tools
// such as pip sometimes report errors while still exiting zero.
const ErrorMarker = "ERROR"

// Executor is what the pip and git wrappers need from a Runner.
type Executor interface {
	Run(ctx context.Context, exe string, args ...string) Outcome
	Output(ctx context.Context, exe string, args ...string) (string, error)
}

// Runner runs commands with the terminal attached. Zero values fall back to
// the process's standard streams and working directory.
type Runner struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	Dir    string
}

// New returns a Runner attached to the process's standard streams.
func New() *Runner {
	return &Runner{Stdin: os.Stdin, Stdout: os.Stdout, Stderr: os.Stderr}
}

// Run executes exe with args, streaming its output to the terminal while
// keeping a copy. The run failed when the tool could not start, exited
// non-zero, or printed ErrorMarker.
func (r *Runner) Run(ctx context.Context, exe string, args ...string) Outcome {
	cmd := exec.CommandContext(ctx, exe, args...)
	cmd.Dir = r.Dir
	cmd.Stdin = r.stdin()

	var captured bytes.Buffer
	cmd.Stdout = io.MultiWriter(r.stdout(), &captured)
	cmd.Stderr = io.MultiWriter(r.stderr(), &captured)

	log.Debug("running command", "exe", exe, "args", strings.Join(args, " "), "dir", r.Dir)
	err := cmd.Run()

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			log.Debug("command exited", "exe", exe, "code", exitErr.ExitCode())
		} else {
			log.Debug("command did not start", "exe", exe, "err", err)
		}
		return Failed
	}
	if strings.Contains(captured.String(), ErrorMarker) {
		log.Debug("command output contains error marker", "exe", exe)
		return Failed
	}
	return Succeeded
}

// Output runs exe and returns its combined stdout and stderr. Some tools
// (python 2 among them) print their version on stderr.
func (r *Runner) Output(ctx context.Context, exe string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, exe, args...)
	cmd.Dir = r.Dir

	log.Debug("probing command", "exe", exe, "args", strings.Join(args, " "))
	out, err := cmd.CombinedOutput()
	if err != nil {
		return string(out), fmt.Errorf("running %s: %w", exe, err)
	}
	return strings.TrimSpace(string(out)), nil
}

// WithDir returns a copy of r running commands in dir.
func (r *Runner) WithDir(dir string) *Runner {
	c := *r
	c.Dir = dir
	return &c
}

func (r *Runner) stdin() io.Reader {
	if r.Stdin == nil {
		return os.Stdin
	}
	return r.Stdin
}

func (r *Runner) stdout() io.Writer {
	if r.Stdout == nil {
		return os.Stdout
	}
	return r.Stdout
}

func (r *Runner) stderr() io.Writer {
	if r.Stderr == nil {
		return os.Stderr
	}
	return r.Stderr
}
