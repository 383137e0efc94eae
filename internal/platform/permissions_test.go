package platform

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestChmod(t *testing.T) {
	path := filepath.Join(t.TempDir(), "weather")
	if err := os.WriteFile(path, []byte("#!/bin/bash\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if IsExecutable(path) && runtime.GOOS != Windows {
		t.Fatal("fresh file should not be executable")
	}

	if err := Chmod(path, ExecutableMode); err != nil {
		t.Fatalf("Chmod failed: %v", err)
	}

	if runtime.GOOS != Windows {
		info, err := os.Stat(path)
		if err != nil {
			t.Fatal(err)
		}
		if perm := info.Mode().Perm(); perm != ExecutableMode {
			t.Errorf("permissions = %o, want %o", perm, ExecutableMode)
		}
	}
	if !IsExecutable(path) {
		t.Error("IsExecutable = false after Chmod")
	}
}

func TestIsExecutable_Missing(t *testing.T) {
	if IsExecutable(filepath.Join(t.TempDir(), "nope")) {
		t.Error("missing file reported executable")
	}
}
