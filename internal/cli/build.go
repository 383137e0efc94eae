package cli

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/johan-perso/betterpip/internal/branding"
	"github.com/johan-perso/betterpip/internal/github"
	"github.com/johan-perso/betterpip/internal/scaffold"
	"github.com/johan-perso/betterpip/internal/ui"
	"github.com/spf13/cobra"
)

var buildRepo string

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Generate install scripts for the project",
	Long: `Write ` + scaffold.OutputDirName + `/windows_install.cmd and ` + scaffold.OutputDirName + `/unix_install.sh.
The scripts clone the project's GitHub repository, install its dependencies
and link its global commands on a machine that only has Python and git.

The repository must be public and contain ` + branding.DescriptorFile() + ` at its root.`,
	Args: cobra.NoArgs,
	RunE: runBuild,
}

func init() {
	buildCmd.Flags().StringVar(&buildRepo, "repo", "", "GitHub repository of the project (owner/repo or URL)")
	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}

	d, ok := a.loadDescriptor()
	if !ok {
		return nil
	}
	if d.Name == "" {
		a.userError("The package has no name, set one in %s.", branding.DescriptorFile())
		return nil
	}

	answer := buildRepo
	if answer == "" {
		answer, err = a.prompt.Input(a.p.Sprintf("GitHub repository (owner/repo)"), "", func(s string) error {
			_, err := github.ParseRepoRef(s)
			return err
		})
		if errors.Is(err, ui.ErrAborted) {
			a.userError("Cancelled.")
			return nil
		}
		if err != nil {
			a.userError("Give the repository with --repo owner/repo.")
			return nil
		}
	}
	ref, err := github.ParseRepoRef(answer)
	if err != nil {
		a.userError("%q is not a GitHub repository, expected owner/repo.", answer)
		return nil
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
		a.userError("%s has no %s, push it before building.", repo.FullName, branding.DescriptorFile())
		return nil
	}

	data := scaffold.NewScriptData(ref.Owner, ref.Name, repo.CloneURL, d)
	res, err := scaffold.Generate(data, filepath.Join(a.dir, scaffold.OutputDirName))
	if err != nil {
		return fmt.Errorf("generating install scripts: %w", err)
	}
	for _, f := range res.Files {
		a.success("Wrote %s.", filepath.Join(scaffold.OutputDirName, f))
	}
	return nil
}
