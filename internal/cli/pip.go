package cli

import (
	"github.com/johan-perso/betterpip/internal/runner"
	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:     "info <module>",
	Aliases: []string{"show"},
	Short:   "Show details about an installed module (pip show)",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd)
		if err != nil {
			return err
		}
		if a.pip.Show(a.ctx, args[0]) == runner.Failed {
			a.userError("Module %s is not installed.", args[0])
		}
		return nil
	},
}

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"tree"},
	Short:   "List installed modules (pip list)",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd)
		if err != nil {
			return err
		}
		if a.pip.List(a.ctx) == runner.Failed {
			a.userError("Could not list the installed modules.")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(infoCmd)
	rootCmd.AddCommand(listCmd)
}
