package runtime

import (
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/johan-perso/betterpip/internal/log"
)

// ErrNoRuntime is returned when no Python interpreter is on PATH.
var ErrNoRuntime = errors.New("no python runtime found")

// Candidates are probed in order; the newest major version wins.
var Candidates = []string{"python3", "python2", "python"}

// Resolver picks the Python command once and remembers it.
type Resolver struct {
	// Override, when set, is returned as-is without probing.
	Override string
	// Candidates defaults to the package-level Candidates.
	Candidates []string
	// LookPath defaults to exec.LookPath.
	LookPath func(string) (string, error)

	resolved string
}

// NewResolver returns a Resolver honoring the configured override.
func NewResolver(override string) *Resolver {
	return &Resolver{Override: strings.TrimSpace(override)}
}

// Detect returns the command used to invoke Python.
func (r *Resolver) Detect() (string, error) {
	if r.resolved != "" {
		return r.resolved, nil
	}
	if r.Override != "" {
		r.resolved = r.Override
		log.Debug("python runtime from configuration", "command", r.resolved)
		return r.resolved, nil
	}

	lookPath := r.LookPath
	if lookPath == nil {
		lookPath = exec.LookPath
	}
	candidates := r.Candidates
	if len(candidates) == 0 {
		candidates = Candidates
	}

	for _, name := range candidates {
		if path, err := lookPath(name); err == nil {
			log.Debug("python runtime detected", "command", name, "path", path)
			r.resolved = name
			return name, nil
		}
	}
	return "", fmt.Errorf("%w (tried %s)", ErrNoRuntime, strings.Join(candidates, ", "))
}
