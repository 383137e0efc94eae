package runtime

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
)

// Output captures the result of running a main file.
type Output struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// PythonRuntime runs a project's main file with the resolved interpreter.
type PythonRuntime struct {
	Resolver *Resolver

	// Stdin, Stdout and Stderr can be set for testing; they default to the
	// process's standard streams.
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// Run executes `<python> <dir>/<mainFile> args...` from dir. A non-zero exit
// is reported in Output.ExitCode, not as an error.
func (p *PythonRuntime) Run(ctx context.Context, dir, mainFile string, args ...string) (*Output, error) {
	python, err := p.Resolver.Detect()
	if err != nil {
		return nil, err
	}

	entryPoint := filepath.Join(dir, mainFile)
	if _, err := os.Stat(entryPoint); err != nil {
		return nil, fmt.Errorf("main file not found at %s: %w", entryPoint, err)
	}

	cmd := exec.CommandContext(ctx, python, append([]string{entryPoint}, args...)...)
	cmd.Dir = dir
	cmd.Stdin = p.Stdin
	if cmd.Stdin == nil {
		cmd.Stdin = os.Stdin
	}

	stdout := p.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}
	stderr := p.Stderr
	if stderr == nil {
		stderr = os.Stderr
	}

	var stdoutBuf, stderrBuf bytes.Buffer
	cmd.Stdout = io.MultiWriter(stdout, &stdoutBuf)
	cmd.Stderr = io.MultiWriter(stderr, &stderrBuf)

	err = cmd.Run()

	output := &Output{
		Stdout: stdoutBuf.String(),
		Stderr: stderrBuf.String(),
	}
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			output.ExitCode = exitErr.ExitCode()
			return output, nil
		}
		return output, fmt.Errorf("running %s: %w", mainFile, err)
	}
	return output, nil
}
