package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	goruntime "runtime"

	"github.com/johan-perso/betterpip/internal/branding"
	"github.com/johan-perso/betterpip/internal/config"
	"github.com/johan-perso/betterpip/internal/descriptor"
	"github.com/johan-perso/betterpip/internal/git"
	"github.com/johan-perso/betterpip/internal/github"
	"github.com/johan-perso/betterpip/internal/i18n"
	"github.com/johan-perso/betterpip/internal/linker"
	"github.com/johan-perso/betterpip/internal/pip"
	"github.com/johan-perso/betterpip/internal/platform"
	"github.com/johan-perso/betterpip/internal/runner"
	"github.com/johan-perso/betterpip/internal/runtime"
	"github.com/johan-perso/betterpip/internal/ui"
	"github.com/spf13/cobra"
	"golang.org/x/text/message"
)

// app bundles what a single command invocation works with.
type app struct {
	ctx      context.Context
	settings config.Settings
	p        *message.Printer
	prompt   ui.Prompter
	exec     runner.Executor
	resolver *runtime.Resolver
	pip      *pip.Installer
	github   *github.Client
	git      *git.Git
	goos     string
	// dir is the project directory, normally the working directory.
	dir string

	out    io.Writer
	errOut io.Writer
}

// newApp builds the app for cmd. Tests swap it for one wired to fakes.
var newApp = defaultApp

func defaultApp(cmd *cobra.Command) (*app, error) {
	settings := currentSettings()

	dir, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("resolving working directory: %w", err)
	}

	exec := runner.New()
	var ghOpts []github.Option
	if settings.GitHubAPIURL != "" {
		ghOpts = append(ghOpts, github.WithBaseURL(settings.GitHubAPIURL))
	}

	return &app{
		ctx:      cmd.Context(),
		settings: settings,
		p:        i18n.NewPrinter(settings.Lang),
		prompt:   ui.NewPrompter(settings.Silent),
		exec:     exec,
		resolver: runtime.NewResolver(settings.PythonCommand),
		pip:      pip.New(exec, settings.PipCommand),
		github:   github.New(ghOpts...),
		git:      git.New(exec),
		goos:     goruntime.GOOS,
		dir:      dir,
		out:      cmd.OutOrStdout(),
		errOut:   cmd.ErrOrStderr(),
	}, nil
}

func (a *app) store() *descriptor.Store {
	return descriptor.NewStore(a.dir)
}

// shimLinker returns a linker for the configured shim directory, able to
// inspect and remove shims.
func (a *app) shimLinker() *linker.Linker {
	return &linker.Linker{
		Dir:     platform.ShimDir(a.goos, a.settings.ShimDir),
		GOOS:    a.goos,
		Version: buildVersion,
	}
}

// linker returns a shim linker that can also write shims, which need the
// python runtime they invoke.
func (a *app) linker() (*linker.Linker, error) {
	python, err := a.resolver.Detect()
	if err != nil {
		return nil, a.runtimeError(err)
	}
	l := a.shimLinker()
	l.Python = python
	return l, nil
}

// printf writes a translated line to stdout.
func (a *app) printf(format string, args ...any) {
	fmt.Fprintln(a.out, a.p.Sprintf(format, args...))
}

// success writes a translated line in green.
func (a *app) success(format string, args ...any) {
	fmt.Fprintln(a.out, ui.Green(a.p.Sprintf(format, args...)))
}

// warn writes a translated line in yellow to stderr.
func (a *app) warn(format string, args ...any) {
	fmt.Fprintln(a.errOut, ui.Yellow(a.p.Sprintf(format, args...)))
}

// userError reports a problem with the user's input or project. The command
// still completes normally.
func (a *app) userError(format string, args ...any) {
	fmt.Fprintln(a.errOut, ui.Red(a.p.Sprintf(format, args...)))
}

// confirm asks a yes/no question. Silent mode answers yes.
func (a *app) confirm(def bool, format string, args ...any) (bool, error) {
	if a.settings.Silent {
		return true, nil
	}
	return a.prompt.Confirm(a.p.Sprintf(format, args...), def)
}

// runtimeError turns a runtime lookup failure into an environment error
// naming the interpreters that were tried.
func (a *app) runtimeError(err error) error {
	return fmt.Errorf("%s: %w", a.p.Sprintf("Python is required, install it or set %s", "BETTERPIP_PYTHON_COMMAND"), err)
}

// loadDescriptor loads the project descriptor and reports why it cannot be
// used. ok is false when the command should stop.
func (a *app) loadDescriptor() (*descriptor.Descriptor, bool) {
	res := a.store().Load()
	switch res.Status {
	case descriptor.NotFound:
		a.userError("No %s found in this directory. Run \"%s init\" first.", branding.DescriptorFile(), branding.CLIName())
		return nil, false
	case descriptor.ParseError:
		a.userError("%s could not be read: %v", branding.DescriptorFile(), res.Err)
		return nil, false
	}
	if res.Descriptor.IsEmpty() {
		a.userError("%s is empty. Run \"%s init\" first.", branding.DescriptorFile(), branding.CLIName())
		return nil, false
	}
	return res.Descriptor, true
}

// in returns a copy of a working on the project in dir.
func (a *app) in(dir string) *app {
	c := *a
	c.dir = dir
	return &c
}
