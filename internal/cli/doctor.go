package cli

import (
	"os"

	"github.com/johan-perso/betterpip/internal/doctor"
	"github.com/johan-perso/betterpip/internal/platform"
	"github.com/spf13/cobra"
)

var doctorCmd = &cobra.Command{
	Use:     "doctor",
	Aliases: []string{"check"},
	Short:   "Check that Python, pip and git are available",
	Long: `Check the tools the CLI relies on and the directory that receives global
commands. On Windows the directory is created and added to the user PATH
when missing.`,
	Args: cobra.NoArgs,
	RunE: runDoctor,
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}

func runDoctor(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}

	d := &doctor.Doctor{
		Exec:       a.exec,
		Resolver:   a.resolver,
		PipCommand: a.settings.PipCommand,
		GOOS:       a.goos,
		ShimDir:    platform.ShimDir(a.goos, a.settings.ShimDir),
		PathEnv:    os.Getenv("PATH"),
	}
	checks := d.Run(a.ctx)

	a.printf("Checking your environment:")
	doctor.Print(a.out, a.p, checks)
	if doctor.Healthy(checks) {
		a.success("Everything needed is installed.")
	} else {
		a.userError("Some tools are missing, install them and run this command again.")
	}
	return nil
}
