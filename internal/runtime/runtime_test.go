package runtime

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	goruntime "runtime"
	"testing"
)

func fakeLookPath(available ...string) func(string) (string, error) {
	return func(name string) (string, error) {
		for _, a := range available {
			if a == name {
				return "/usr/bin/" + name, nil
			}
		}
		return "", errors.New("not found")
	}
}

func TestResolver_Preference(t *testing.T) {
	tests := []struct {
		available []string
		want      string
	}{
		{[]string{"python", "python2", "python3"}, "python3"},
		{[]string{"python", "python2"}, "python2"},
		{[]string{"python"}, "python"},
	}
	for _, tt := range tests {
		r := &Resolver{LookPath: fakeLookPath(tt.available...)}
		got, err := r.Detect()
		if err != nil {
			t.Fatalf("Detect() error: %v", err)
		}
		if got != tt.want {
			t.Errorf("Detect() with %v = %q, want %q", tt.available, got, tt.want)
		}
	}
}

func TestResolver_NoneFound(t *testing.T) {
	r := &Resolver{LookPath: fakeLookPath()}
	_, err := r.Detect()
	if !errors.Is(err, ErrNoRuntime) {
		t.Fatalf("Detect() error = %v, want ErrNoRuntime", err)
	}
}

func TestResolver_Caches(t *testing.T) {
	calls := 0
	r := &Resolver{LookPath: func(name string) (string, error) {
		calls++
		return "/usr/bin/" + name, nil
	}}
	for i := 0; i < 3; i++ {
		if _, err := r.Detect(); err != nil {
			t.Fatal(err)
		}
	}
	if calls != 1 {
		t.Errorf("LookPath called %d times, want 1", calls)
	}
}

func TestResolver_Override(t *testing.T) {
	r := NewResolver(" python3.11 ")
	r.LookPath = func(string) (string, error) {
		t.Fatal("override must not probe PATH")
		return "", nil
	}
	got, err := r.Detect()
	if err != nil {
		t.Fatal(err)
	}
	if got != "python3.11" {
		t.Errorf("Detect() = %q, want %q", got, "python3.11")
	}
}

func TestPythonRuntime_MissingMainFile(t *testing.T) {
	rt := &PythonRuntime{Resolver: NewResolver("python3")}
	_, err := rt.Run(context.Background(), t.TempDir(), "main.py")
	if err == nil {
		t.Fatal("expected error for missing main file")
	}
}

func TestPythonRuntime_Run(t *testing.T) {
	if goruntime.GOOS == "windows" {
		t.Skip("fake interpreter is a shell script")
	}
	bin := t.TempDir()
	fake := filepath.Join(bin, "fakepython")
	script := "#!/bin/sh\necho \"ran $1\"\nexit 4\n"
	if err := os.WriteFile(fake, []byte(script), 0o755); err != nil {
		t.Fatal(err)
	}

	project := t.TempDir()
	if err := os.WriteFile(filepath.Join(project, "main.py"), []byte("print('hi')\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	var stdout bytes.Buffer
	rt := &PythonRuntime{Resolver: NewResolver(fake), Stdout: &stdout, Stderr: &stdout}
	out, err := rt.Run(context.Background(), project, "main.py")
	if err != nil {
		t.Fatalf("Run error: %v", err)
	}
	if out.ExitCode != 4 {
		t.Errorf("ExitCode = %d, want 4", out.ExitCode)
	}
	want := "ran " + filepath.Join(project, "main.py") + "\n"
	if out.Stdout != want || stdout.String() != want {
		t.Errorf("Stdout = %q (streamed %q), want %q", out.Stdout, stdout.String(), want)
	}
}
