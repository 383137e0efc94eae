//go:build integration

package integration_test

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

// testEnv holds the sandbox of one test.
type testEnv struct {
	HomeDir    string // HOME, holds ~/.betterpip
	ProjectDir string // the project being worked on
	ShimDir    string // where global commands are linked
	BinDir     string // fake pip and python3, first on PATH
	LogFile    string // every fake tool invocation, one per line
}

// setupTestEnv creates isolated temp directories, installs fake pip and
// python3 executables in front of PATH and points the config at them.
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("fake tools are shell scripts")
	}

	env := &testEnv{
		HomeDir:    t.TempDir(),
		ProjectDir: t.TempDir(),
		ShimDir:    t.TempDir(),
		BinDir:     t.TempDir(),
	}
	env.LogFile = filepath.Join(env.HomeDir, "calls.log")

	t.Setenv("HOME", env.HomeDir)
	t.Setenv("PATH", env.BinDir+string(os.PathListSeparator)+os.Getenv("PATH"))
	t.Setenv("BETTERPIP_SHIM_DIR", env.ShimDir)
	t.Setenv("BETTERPIP_PYTHON_COMMAND", "python3")
	t.Setenv("BETTERPIP_NO_UPDATE_CHECK", "1")
	t.Setenv("BPIP_LOG", env.LogFile)

	// pip prints an ERROR line for any module named "broken" but still
	// exits 0, like some pip versions do for resolution failures.
	writeScript(t, filepath.Join(env.BinDir, "pip"), `#!/bin/sh
echo "pip $*" >> "$BPIP_LOG"
case "$*" in
  *broken*) echo "ERROR: No matching distribution found for broken" >&2 ;;
esac
exit 0
`)
	writeScript(t, filepath.Join(env.BinDir, "python3"), `#!/bin/sh
echo "python3 $*" >> "$BPIP_LOG"
echo "ran $*"
`)
	return env
}

// calls returns the logged tool invocations.
func (e *testEnv) calls(t *testing.T) []string {
	t.Helper()
	data, err := os.ReadFile(e.LogFile)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		t.Fatalf("reading %s: %v", e.LogFile, err)
	}
	return strings.Split(strings.TrimSpace(string(data)), "\n")
}

func writeScript(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o755); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

// writeFile creates a file at the given path with the given content.
func writeFile(t *testing.T, path, content string) {
	t.Helper()
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("creating dir %s: %v", dir, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

// assertFileExists fails the test if the file does not exist.
func assertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected file to exist: %s (error: %v)", path, err)
	}
}

// assertFileNotExists fails the test if the file exists.
func assertFileNotExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err == nil {
		t.Errorf("expected file NOT to exist: %s", path)
	}
}

// assertFileContains fails if the file doesn't exist or doesn't contain substr.
func assertFileContains(t *testing.T, path, substr string) {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Errorf("reading %s: %v", path, err)
		return
	}
	if !strings.Contains(string(data), substr) {
		t.Errorf("file %s does not contain %q.\nContents:\n%s", path, substr, string(data))
	}
}
