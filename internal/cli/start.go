package cli

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/johan-perso/betterpip/internal/branding"
	"github.com/johan-perso/betterpip/internal/runtime"
	"github.com/spf13/cobra"
)

var startCmd = &cobra.Command{
	Use:     "start [-- args...]",
	Aliases: []string{"run"},
	Short:   "Run the project's main file",
	Long: `Run the mainFile of ` + branding.DescriptorFile() + ` with the detected Python.
Arguments after -- are passed to the program.`,
	RunE: runStart,
}

func init() {
	rootCmd.AddCommand(startCmd)
}

func runStart(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}

	d, ok := a.loadDescriptor()
	if !ok {
		return nil
	}
	if d.MainFile == "" {
		a.userError("No main file is defined in %s.", branding.DescriptorFile())
		return nil
	}
	if !isFile(filepath.Join(a.dir, d.MainFile)) {
		a.userError("The main file %s does not exist.", d.MainFile)
		return nil
	}

	py := &runtime.PythonRuntime{
		Resolver: a.resolver,
		Stdout:   a.out,
		Stderr:   a.errOut,
	}
	out, err := py.Run(a.ctx, a.dir, d.MainFile, args...)
	if errors.Is(err, runtime.ErrNoRuntime) {
		return a.runtimeError(err)
	}
	if err != nil {
		return err
	}
	if out.ExitCode != 0 {
		return fmt.Errorf("%s exited with code %d", d.MainFile, out.ExitCode)
	}
	return nil
}
