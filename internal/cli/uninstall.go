package cli

import (
	"fmt"
	"path/filepath"

	"github.com/johan-perso/betterpip/internal/branding"
	"github.com/johan-perso/betterpip/internal/descriptor"
	"github.com/johan-perso/betterpip/internal/runner"
	"github.com/spf13/cobra"
)

var uninstallCmd = &cobra.Command{
	Use:     "uninstall <modules...|requirements-file>",
	Aliases: []string{"remove"},
	Short:   "Uninstall Python modules and drop them from " + branding.DescriptorFile(),
	Args:    cobra.MinimumNArgs(1),
	RunE:    runUninstall,
}

func init() {
	rootCmd.AddCommand(uninstallCmd)
}

func runUninstall(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}

	if len(args) == 1 && isFile(filepath.Join(a.dir, args[0])) {
		return uninstallRequirementsFile(a, args[0])
	}
	return uninstallModules(a, args)
}

func uninstallRequirementsFile(a *app, path string) error {
	ok, err := a.confirm(true, "Uninstall every module listed in %s?", path)
	if err != nil || !ok {
		a.userError("Cancelled.")
		return nil
	}
	if a.pip.UninstallRequirementsFile(a.ctx, filepath.Join(a.dir, path)) == runner.Failed {
		a.userError("Could not uninstall the modules listed in %s.", path)
		return nil
	}
	a.success("Uninstalled the modules listed in %s.", path)
	return nil
}

// uninstallModules removes each module, ignoring any "==version" suffix,
// and drops it from an existing descriptor. It stops at the first failure.
func uninstallModules(a *app, args []string) error {
	store := a.store()
	res := store.Load()

	for _, arg := range args {
		name := descriptor.ParseRequirement(arg).Name
		if name == "" {
			a.userError("%q is not a module name.", arg)
			return nil
		}
		if a.pip.Uninstall(a.ctx, name) == runner.Failed {
			a.userError("Could not uninstall %s.", name)
			return nil
		}
		if res.Status == descriptor.Found && res.Descriptor.RemoveDependency(name) {
			if err := store.Save(res.Descriptor); err != nil {
				return fmt.Errorf("saving descriptor: %w", err)
			}
		}
		a.success("Uninstalled %s.", name)
	}
	return nil
}
