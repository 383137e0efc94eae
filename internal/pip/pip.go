// Package pip drives the external package installer. Dependency resolution
// is left entirely to pip; this package only builds its command lines.
package pip

import (
	"context"
	"strings"

	"github.com/johan-perso/betterpip/internal/descriptor"
	"github.com/johan-perso/betterpip/internal/runner"
)

// DefaultCommand is used when no installer override is configured.
const DefaultCommand = "pip"

// Installer runs pip through an Executor.
type Installer struct {
	Exec runner.Executor
	// Command may carry leading arguments, e.g. "python3 -m pip".
	Command string
}

// New returns an Installer for command, falling back to DefaultCommand.
func New(exec runner.Executor, command string) *Installer {
	if strings.TrimSpace(command) == "" {
		command = DefaultCommand
	}
	return &Installer{Exec: exec, Command: command}
}

// Install installs one requirement: the bare name when unpinned,
// name==version otherwise.
func (i *Installer) Install(ctx context.Context, req descriptor.Requirement) runner.Outcome {
	return i.run(ctx, "install", req.String())
}

// InstallRequirementsFile runs `pip install -r path`.
func (i *Installer) InstallRequirementsFile(ctx context.Context, path string) runner.Outcome {
	return i.run(ctx, "install", "-r", path)
}

// Uninstall removes a module without prompting.
func (i *Installer) Uninstall(ctx context.Context, name string) runner.Outcome {
	return i.run(ctx, "uninstall", name, "-y")
}

// UninstallRequirementsFile runs `pip uninstall -r path -y`.
func (i *Installer) UninstallRequirementsFile(ctx context.Context, path string) runner.Outcome {
	return i.run(ctx, "uninstall", "-r", path, "-y")
}

// Show prints details about an installed module.
func (i *Installer) Show(ctx context.Context, name string) runner.Outcome {
	return i.run(ctx, "show", name)
}

// List prints every installed module.
func (i *Installer) List(ctx context.Context) runner.Outcome {
	return i.run(ctx, "list")
}

// Version returns the output of `pip --version`.
func (i *Installer) Version(ctx context.Context) (string, error) {
	exe, args := i.argv("--version")
	return i.Exec.Output(ctx, exe, args...)
}

// BatchResult reports how far a batch install went.
type BatchResult struct {
	Installed []descriptor.Requirement
	// Failed is the requirement that stopped the batch, if any.
	Failed *descriptor.Requirement
}

// OK reports whether every requirement was installed.
func (b BatchResult) OK() bool { return b.Failed == nil }

// InstallAll installs reqs in order and stops at the first failure.
// progress, when non-nil, is called before each install.
func (i *Installer) InstallAll(ctx context.Context, reqs []descriptor.Requirement, progress func(descriptor.Requirement)) BatchResult {
	var res BatchResult
	for _, req := range reqs {
		if progress != nil {
			progress(req)
		}
		if i.Install(ctx, req) == runner.Failed {
			failed := req
			res.Failed = &failed
			return res
		}
		res.Installed = append(res.Installed, req)
	}
	return res
}

// InstallDependencies installs every dependency recorded in d.
func (i *Installer) InstallDependencies(ctx context.Context, d *descriptor.Descriptor, progress func(descriptor.Requirement)) BatchResult {
	return i.InstallAll(ctx, d.Requirements(), progress)
}

func (i *Installer) run(ctx context.Context, args ...string) runner.Outcome {
	exe, full := i.argv(args...)
	return i.Exec.Run(ctx, exe, full...)
}

func (i *Installer) argv(args ...string) (string, []string) {
	fields := strings.Fields(i.Command)
	if len(fields) == 0 {
		fields = []string{DefaultCommand}
	}
	return fields[0], append(fields[1:len(fields):len(fields)], args...)
}
