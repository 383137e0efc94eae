package cli

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/johan-perso/betterpip/internal/branding"
	"github.com/johan-perso/betterpip/internal/cmdname"
	"github.com/johan-perso/betterpip/internal/descriptor"
	"github.com/johan-perso/betterpip/internal/linker"
	"github.com/spf13/cobra"
)

var linkCmd = &cobra.Command{
	Use:   "link [commands...]",
	Short: "Expose the project's global commands on PATH",
	Long: `Write a launcher for each global command of ` + branding.DescriptorFile() + `
into the shim directory, running the main file with the detected Python.

Commands given as arguments are added to globalCommands first and only they
are linked. Commands that already exist on PATH are replaced only after
confirmation.`,
	RunE: runLink,
}

func init() {
	rootCmd.AddCommand(linkCmd)
}

func runLink(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}

	d, ok := a.loadDescriptor()
	if !ok {
		return nil
	}

	if len(args) > 0 {
		if !checkMainFile(a, d) {
			return nil
		}
		for _, c := range args {
			if !checkCommandName(a, c) {
				return nil
			}
			d.AddCommand(c)
		}
		if err := a.store().Save(d); err != nil {
			return fmt.Errorf("saving descriptor: %w", err)
		}
		linkOnly := *d
		linkOnly.GlobalCommands = args
		return linkCommands(a, &linkOnly)
	}
	return linkCommands(a, d)
}

// checkCommandName prints why c cannot be a global command.
func checkCommandName(a *app, c string) bool {
	err := cmdname.Check(c)
	switch {
	case errors.Is(err, cmdname.ErrMalformed):
		a.userError("The command %s may only contain letters, digits and dashes.", c)
		return false
	case errors.Is(err, cmdname.ErrReserved):
		table, _ := cmdname.ReservedBy(c)
		a.userError("The command %s is reserved (%s).", c, table.String())
		return false
	}
	return true
}

// checkMainFile prints why the main file of d cannot be linked.
func checkMainFile(a *app, d *descriptor.Descriptor) bool {
	if d.MainFile == "" {
		a.userError("No main file is defined in %s.", branding.DescriptorFile())
		return false
	}
	if !isFile(filepath.Join(a.dir, d.MainFile)) {
		a.userError("The main file %s does not exist.", d.MainFile)
		return false
	}
	return true
}

// linkCommands writes a shim for every global command of d, which belongs
// to the project in a.dir.
func linkCommands(a *app, d *descriptor.Descriptor) error {
	if len(d.GlobalCommands) == 0 {
		a.userError("No global commands are defined in %s.", branding.DescriptorFile())
		return nil
	}
	if !checkMainFile(a, d) {
		return nil
	}
	mainFile := filepath.Join(a.dir, d.MainFile)
	for _, c := range d.GlobalCommands {
		if !checkCommandName(a, c) {
			return nil
		}
	}

	l, err := a.linker()
	if err != nil {
		return err
	}

	var commands []string
	for _, c := range d.GlobalCommands {
		if l.State(c) != linker.Linked && cmdname.Exists(c) {
			replace, err := a.confirm(false, "The command %s already exists. Replace it?", c)
			if err != nil {
				a.userError("Cancelled.")
				return nil
			}
			if !replace {
				a.warn("Skipping %s.", c)
				continue
			}
		}
		commands = append(commands, c)
	}
	if len(commands) == 0 {
		a.userError("Nothing to link.")
		return nil
	}

	ok, err := a.confirm(true, "Link %s to %s?", strings.Join(commands, ", "), d.MainFile)
	if err != nil || !ok {
		a.userError("Cancelled.")
		return nil
	}

	for _, c := range commands {
		if err := l.Link(c, mainFile); err != nil {
			if errors.Is(err, linker.ErrShimDirMissing) {
				return fmt.Errorf("%w, run `%s doctor` to create it", err, branding.CLIName())
			}
			return err
		}
		a.success("Linked %s.", c)
	}
	a.printf("Open a new terminal if the commands are not found yet.")
	return nil
}
