//go:build integration

package integration_test

import (
	"bytes"
	"context"
	"reflect"
	"testing"

	"github.com/johan-perso/betterpip/internal/descriptor"
	"github.com/johan-perso/betterpip/internal/pip"
	"github.com/johan-perso/betterpip/internal/runner"
)

func newInstaller(out *bytes.Buffer) *pip.Installer {
	return pip.New(&runner.Runner{Stdout: out, Stderr: out}, "pip")
}

func TestInstallDependenciesFromDescriptor(t *testing.T) {
	env := setupTestEnv(t)
	store := descriptor.NewStore(env.ProjectDir)
	if err := store.Save(&descriptor.Descriptor{
		Name:         "demo",
		Dependencies: map[string]string{"requests": "*", "flask": "2.0.1"},
	}); err != nil {
		t.Fatalf("Save: %v", err)
	}

	res := store.Load()
	if res.Status != descriptor.Found {
		t.Fatalf("Load status = %s, err = %v", res.Status, res.Err)
	}

	var out bytes.Buffer
	batch := newInstaller(&out).InstallDependencies(context.Background(), res.Descriptor, nil)
	if !batch.OK() {
		t.Fatalf("InstallDependencies failed at %v", batch.Failed)
	}

	want := []string{"pip install flask==2.0.1", "pip install requests"}
	if got := env.calls(t); !reflect.DeepEqual(got, want) {
		t.Errorf("pip calls = %q, want %q", got, want)
	}
}

func TestInstallStopsOnErrorOutput(t *testing.T) {
	env := setupTestEnv(t)

	reqs := []descriptor.Requirement{
		descriptor.ParseRequirement("good"),
		descriptor.ParseRequirement("broken"),
		descriptor.ParseRequirement("later"),
	}
	var out bytes.Buffer
	batch := newInstaller(&out).InstallAll(context.Background(), reqs, nil)

	if batch.OK() {
		t.Fatal("expected the batch to fail on the ERROR line")
	}
	if batch.Failed.Name != "broken" {
		t.Errorf("Failed = %s, want broken", batch.Failed.Name)
	}
	if len(batch.Installed) != 1 {
		t.Errorf("Installed = %v, want only good", batch.Installed)
	}
	if got := env.calls(t); len(got) != 2 {
		t.Errorf("pip calls = %q, want 2", got)
	}
	if !bytes.Contains(out.Bytes(), []byte("No matching distribution")) {
		t.Errorf("pip output was not relayed: %q", out.String())
	}
}

func TestInstallRequirementsFile(t *testing.T) {
	env := setupTestEnv(t)
	path := env.ProjectDir + "/requirements.txt"
	writeFile(t, path, "requests\n")

	var out bytes.Buffer
	if outcome := newInstaller(&out).InstallRequirementsFile(context.Background(), path); outcome != runner.Succeeded {
		t.Fatalf("outcome = %s", outcome)
	}
	want := []string{"pip install -r " + path}
	if got := env.calls(t); !reflect.DeepEqual(got, want) {
		t.Errorf("pip calls = %q, want %q", got, want)
	}
}
