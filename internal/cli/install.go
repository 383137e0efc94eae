package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/johan-perso/betterpip/internal/branding"
	"github.com/johan-perso/betterpip/internal/descriptor"
	"github.com/johan-perso/betterpip/internal/git"
	"github.com/johan-perso/betterpip/internal/github"
	"github.com/johan-perso/betterpip/internal/log"
	"github.com/johan-perso/betterpip/internal/runner"
	"github.com/spf13/cobra"
)

var (
	installGlobal bool
	installGitHub bool
)

var installCmd = &cobra.Command{
	Use:     "install [modules...|requirements-file]",
	Aliases: []string{"i", "add"},
	Short:   "Install Python modules and record them in " + branding.DescriptorFile(),
	Long: `Install Python modules with pip.

  install                      install every dependency of ` + branding.DescriptorFile() + `
  install requests flask==2.0  install the modules and record them as dependencies
  install requirements.txt     install a requirements file (pip install -r)
  install -g owner/repo        clone a GitHub project, install its dependencies
                               and link its global commands`,
	RunE: runInstall,
}

func init() {
	installCmd.Flags().BoolVarP(&installGlobal, "global", "g", false, "Install a project from GitHub (owner/repo)")
	installCmd.Flags().BoolVar(&installGitHub, "github", false, "Same as --global")
	rootCmd.AddCommand(installCmd)
}

func runInstall(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}

	switch {
	case installGlobal || installGitHub:
		if len(args) != 1 {
			a.userError("Give exactly one GitHub repository, e.g. owner/repo.")
			return nil
		}
		return installFromGitHub(a, args[0])
	case len(args) == 0:
		d, ok := a.loadDescriptor()
		if !ok {
			return nil
		}
		installDependencies(a, d)
		return nil
	case len(args) == 1 && isFile(filepath.Join(a.dir, args[0])):
		return installRequirementsFile(a, args[0])
	default:
		return installModules(a, args)
	}
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

func installRequirementsFile(a *app, path string) error {
	ok, err := a.confirm(true, "Install every module listed in %s?", path)
	if err != nil || !ok {
		a.userError("Cancelled.")
		return nil
	}
	if a.pip.InstallRequirementsFile(a.ctx, filepath.Join(a.dir, path)) == runner.Failed {
		a.userError("Could not install the modules listed in %s.", path)
		return nil
	}
	a.success("Installed the modules listed in %s.", path)
	return nil
}

// installModules installs each module and records it in the descriptor,
// creating the descriptor when the project has none. It stops at the
// first failure; modules installed before it stay recorded.
func installModules(a *app, args []string) error {
	store := a.store()
	res := store.Load()
	if res.Status == descriptor.ParseError {
		a.userError("%s could not be read: %v", branding.DescriptorFile(), res.Err)
		return nil
	}
	d := res.Descriptor

	for _, arg := range args {
		req := descriptor.ParseRequirement(arg)
		if req.Name == "" {
			a.userError("%q is not a module name.", arg)
			return nil
		}
		if a.pip.Install(a.ctx, req) == runner.Failed {
			a.userError("Could not install %s.", req.String())
			return nil
		}
		d.AddDependency(req)
		if err := store.Save(d); err != nil {
			return fmt.Errorf("saving descriptor: %w", err)
		}
		a.success("Installed %s.", req.String())
	}
	return nil
}

// installDependencies installs every dependency of d and reports the first
// failure. It returns whether all of them were installed.
func installDependencies(a *app, d *descriptor.Descriptor) bool {
	if len(d.Dependencies) == 0 {
		a.printf("No dependencies to install.")
		return true
	}
	result := a.pip.InstallDependencies(a.ctx, d, func(req descriptor.Requirement) {
		a.printf("Installing %s...", req.String())
	})
	if !result.OK() {
		a.userError("Could not install %s.", result.Failed.String())
		return false
	}
	a.success("Installed %d dependencies.", len(result.Installed))
	return true
}

// installFromGitHub clones owner/repo into the working directory, then
// installs its dependencies and links its global commands from the clone.
func installFromGitHub(a *app, arg string) error {
	ref, err := github.ParseRepoRef(arg)
	if err != nil {
		a.userError("%q is not a GitHub repository, expected owner/repo.", arg)
		return nil
	}
	if err := a.git.EnsureGit(); err != nil {
		return err
	}

	repo, err := a.github.GetRepository(a.ctx, ref.Owner, ref.Name)
	if errors.Is(err, github.ErrNotFound) {
		a.userError("Repository %s was not found on GitHub.", ref.String())
		return nil
	}
	if err != nil {
		return fmt.Errorf("fetching repository %s: %w", ref, err)
	}

	tree, err := a.github.ListFiles(a.ctx, ref.Owner, ref.Name, repo.DefaultBranch)
	if err != nil {
		return fmt.Errorf("listing files of %s: %w", ref, err)
	}
	if !tree.HasRootFile(branding.DescriptorFile()) {
		a.userError("%s has no %s and cannot be installed with %s.", repo.FullName, branding.DescriptorFile(), branding.CLIName())
		a.printf("See %s", repo.HTMLURL)
		return nil
	}

	dest, err := a.git.Clone(a.ctx, repo.CloneURL, a.dir, ref.Name)
	if errors.Is(err, git.ErrDestinationExists) {
		a.userError("%s already exists in this directory.", ref.Name)
		return nil
	}
	if err != nil {
		a.userError("Could not clone %s.", repo.FullName)
		log.Debug("clone failed", "repo", repo.FullName, "err", err)
		return nil
	}
	a.success("Cloned %s into %s.", repo.FullName, dest)

	project := a.in(dest)
	res := project.store().Load()
	if !res.Usable() {
		a.warn("%s in %s could not be read, nothing else to do.", branding.DescriptorFile(), dest)
		return nil
	}
	d := res.Descriptor

	if !installDependencies(project, d) {
		return nil
	}
	if len(d.GlobalCommands) > 0 {
		return linkCommands(project, d)
	}
	return nil
}
