package git

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/johan-perso/betterpip/internal/runner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeExec struct {
	calls   []string
	outcome runner.Outcome
}

func (f *fakeExec) Run(_ context.Context, exe string, args ...string) runner.Outcome {
	f.calls = append(f.calls, strings.Join(append([]string{exe}, args...), " "))
	if f.outcome == runner.Succeeded && len(args) > 0 && args[0] == "clone" {
		_ = os.MkdirAll(args[len(args)-1], 0o755)
	}
	return f.outcome
}

func (f *fakeExec) Output(_ context.Context, exe string, args ...string) (string, error) {
	f.calls = append(f.calls, strings.Join(append([]string{exe}, args...), " "))
	return "git version 2.43.0", nil
}

func found(string) (string, error)   { return "/usr/bin/git", nil }
func missing(string) (string, error) { return "", errors.New("not found") }

func TestClone(t *testing.T) {
	parent := t.TempDir()
	exec := &fakeExec{}
	g := &Git{Exec: exec, LookPath: found}

	dest, err := g.Clone(context.Background(), "https://github.com/johan-perso/weather.git", parent, "weather")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(parent, "weather"), dest)
	assert.Equal(t, []string{"git clone https://github.com/johan-perso/weather.git " + dest}, exec.calls)
}

func TestClone_Failure(t *testing.T) {
	g := &Git{Exec: &fakeExec{outcome: runner.Failed}, LookPath: found}
	_, err := g.Clone(context.Background(), "https://example.invalid/x.git", t.TempDir(), "x")
	assert.ErrorIs(t, err, ErrCloneFailed)
}

func TestClone_DestinationExists(t *testing.T) {
	parent := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(parent, "weather"), 0o755))
	exec := &fakeExec{}
	g := &Git{Exec: exec, LookPath: found}

	_, err := g.Clone(context.Background(), "https://github.com/johan-perso/weather.git", parent, "weather")
	assert.ErrorIs(t, err, ErrDestinationExists)
	assert.Empty(t, exec.calls)
}

func TestClone_GitMissing(t *testing.T) {
	g := &Git{Exec: &fakeExec{}, LookPath: missing}
	_, err := g.Clone(context.Background(), "u", t.TempDir(), "x")
	assert.ErrorIs(t, err, ErrGitMissing)
}

func TestVersion(t *testing.T) {
	g := New(&fakeExec{})
	v, err := g.Version(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "git version 2.43.0", v)
}
