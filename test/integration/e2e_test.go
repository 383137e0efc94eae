//go:build integration

package integration_test

import (
	"bytes"
	"context"
	"os/exec"
	"path/filepath"
	goruntime "runtime"
	"strings"
	"testing"

	"github.com/johan-perso/betterpip/internal/cmdname"
	"github.com/johan-perso/betterpip/internal/config"
	"github.com/johan-perso/betterpip/internal/descriptor"
	"github.com/johan-perso/betterpip/internal/linker"
	"github.com/johan-perso/betterpip/internal/pip"
	"github.com/johan-perso/betterpip/internal/platform"
	"github.com/johan-perso/betterpip/internal/runner"
	"github.com/johan-perso/betterpip/internal/runtime"
)

// TestFullFlowDescribeInstallLink goes through a project's life:
// describe -> validate -> install -> link -> run the command -> unlink.
func TestFullFlowDescribeInstallLink(t *testing.T) {
	env := setupTestEnv(t)
	config.Load()
	settings := config.Current()
	if settings.ShimDir != env.ShimDir {
		t.Fatalf("ShimDir = %q, want %q from the environment", settings.ShimDir, env.ShimDir)
	}

	// Step 1: describe the project.
	writeFile(t, filepath.Join(env.ProjectDir, "main.py"), "print('hi')\n")
	writeFile(t, filepath.Join(env.ProjectDir, "helper.py"), "")
	d := &descriptor.Descriptor{
		Name:           filepath.Base(env.ProjectDir),
		Author:         "tester",
		MainFile:       descriptor.DetectMainFile(env.ProjectDir),
		GlobalCommands: []string{"bpip-e2e"},
	}
	d.AddDependency(descriptor.ParseRequirement("requests"))
	if d.MainFile != "main.py" {
		t.Fatalf("DetectMainFile = %q, want main.py", d.MainFile)
	}
	store := descriptor.NewStore(env.ProjectDir)
	if err := store.Save(d); err != nil {
		t.Fatalf("Save: %v", err)
	}

	// Step 2: the file on disk is valid.
	result, err := descriptor.ValidateFile(store.Path())
	if err != nil {
		t.Fatalf("ValidateFile: %v", err)
	}
	if !result.Valid {
		t.Fatalf("descriptor invalid: %v", result.Issues)
	}

	// Step 3: install its dependencies.
	var out bytes.Buffer
	installer := pip.New(&runner.Runner{Stdout: &out, Stderr: &out}, settings.PipCommand)
	if batch := installer.InstallDependencies(context.Background(), store.Load().Descriptor, nil); !batch.OK() {
		t.Fatalf("install failed at %v", batch.Failed)
	}

	// Step 4: link the global command.
	python, err := runtime.NewResolver(settings.PythonCommand).Detect()
	if err != nil {
		t.Fatalf("Detect: %v", err)
	}
	l := &linker.Linker{
		Dir:     platform.ShimDir(goruntime.GOOS, settings.ShimDir),
		GOOS:    goruntime.GOOS,
		Version: "0.0.0-test",
		Python:  python,
	}
	for _, c := range d.GlobalCommands {
		if err := cmdname.Check(c); err != nil {
			t.Fatalf("Check(%s): %v", c, err)
		}
		if err := l.Link(c, filepath.Join(env.ProjectDir, d.MainFile)); err != nil {
			t.Fatalf("Link(%s): %v", c, err)
		}
	}

	// Step 5: the command is on PATH and runs the main file.
	t.Setenv("PATH", env.ShimDir+":"+env.BinDir)
	cmdOut, err := exec.Command("bpip-e2e", "arg").CombinedOutput()
	if err != nil {
		t.Fatalf("running bpip-e2e: %v\n%s", err, cmdOut)
	}
	if !strings.Contains(string(cmdOut), "main.py arg") {
		t.Errorf("bpip-e2e output = %q", cmdOut)
	}

	// Step 6: unlink removes it again.
	if res, err := l.Unlink("bpip-e2e"); err != nil || res != linker.Deleted {
		t.Fatalf("Unlink = %s, %v", res, err)
	}
	if l.State("bpip-e2e") != linker.Absent {
		t.Error("command still linked after unlink")
	}

	want := []string{
		"pip install requests",
		"python3 " + filepath.Join(env.ProjectDir, "main.py") + " arg",
	}
	got := env.calls(t)
	if strings.Join(got, "\n") != strings.Join(want, "\n") {
		t.Errorf("calls = %q, want %q", got, want)
	}
}
