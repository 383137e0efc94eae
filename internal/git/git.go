// Package git wraps the git executable for cloning projects from GitHub.
package git

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/johan-perso/betterpip/internal/runner"
)

var (
	// ErrGitMissing is returned when git is not on PATH.
	ErrGitMissing = errors.New("git is required but not found in PATH")
	// ErrDestinationExists is returned when the clone target already exists.
	ErrDestinationExists = errors.New("destination already exists")
	// ErrCloneFailed is returned when git reports a failure.
	ErrCloneFailed = errors.New("git clone failed")
)

// Git runs git commands through an Executor.
type Git struct {
	Exec runner.Executor
	// LookPath defaults to exec.LookPath.
	LookPath func(string) (string, error)
}

// New returns a Git using exec.
func New(exec runner.Executor) *Git {
	return &Git{Exec: exec}
}

// EnsureGit checks that git is available on PATH.
func (g *Git) EnsureGit() error {
	lookPath := g.LookPath
	if lookPath == nil {
		lookPath = exec.LookPath
	}
	if _, err := lookPath("git"); err != nil {
		return ErrGitMissing
	}
	return nil
}

// Clone clones url into parentDir/name with git's progress shown on the
// terminal, and returns the absolute path of the clone.
func (g *Git) Clone(ctx context.Context, url, parentDir, name string) (string, error) {
	if err := g.EnsureGit(); err != nil {
		return "", err
	}

	dest, err := filepath.Abs(filepath.Join(parentDir, name))
	if err != nil {
		return "", fmt.Errorf("resolving clone destination: %w", err)
	}
	if _, err := os.Stat(dest); err == nil {
		return "", fmt.Errorf("%s: %w", dest, ErrDestinationExists)
	}

	if g.Exec.Run(ctx, "git", "clone", url, dest) == runner.Failed {
		return "", fmt.Errorf("%s: %w", url, ErrCloneFailed)
	}
	return dest, nil
}

// Version returns the output of `git --version`.
func (g *Git) Version(ctx context.Context) (string, error) {
	return g.Exec.Output(ctx, "git", "--version")
}
