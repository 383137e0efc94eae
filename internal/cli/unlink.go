package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/johan-perso/betterpip/internal/branding"
	"github.com/johan-perso/betterpip/internal/cmdname"
	"github.com/johan-perso/betterpip/internal/linker"
	"github.com/johan-perso/betterpip/internal/ui"
	"github.com/spf13/cobra"
)

var unlinkForget bool

var unlinkCmd = &cobra.Command{
	Use:   "unlink [command]",
	Short: "Remove global commands from PATH",
	Long: `Remove the launcher of a command, or of every global command of
` + branding.DescriptorFile() + ` when none is given. Files that were not
written by ` + branding.CLIName() + ` are left in place.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runUnlink,
}

func init() {
	unlinkCmd.Flags().BoolVar(&unlinkForget, "forget", false, "Also remove the command from globalCommands")
	rootCmd.AddCommand(unlinkCmd)
}

func runUnlink(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}

	var commands []string
	if len(args) == 1 {
		commands = args
	} else {
		d, ok := a.loadDescriptor()
		if !ok {
			return nil
		}
		if len(d.GlobalCommands) == 0 {
			a.userError("No global commands are defined in %s.", branding.DescriptorFile())
			return nil
		}
		commands = d.GlobalCommands
	}

	ok, err := a.confirm(true, "Unlink %s?", strings.Join(commands, ", "))
	if err != nil || !ok {
		a.userError("Cancelled.")
		return nil
	}

	l := a.shimLinker()
	a.printf("Unlinked commands:")
	for _, c := range commands {
		res, err := l.Unlink(c)
		if errors.Is(err, cmdname.ErrMalformed) {
			a.userError("The command %s may only contain letters, digits and dashes.", c)
			continue
		}
		if err != nil {
			return fmt.Errorf("unlinking %s: %w", c, err)
		}
		fmt.Fprintf(a.out, "  %s %s\n", c, unlinkLabel(a, res))
	}

	if unlinkForget {
		forgetCommands(a, commands)
	}
	return nil
}

func unlinkLabel(a *app, res linker.UnlinkResult) string {
	switch res {
	case linker.Deleted:
		return ui.Green(a.p.Sprintf("removed"))
	case linker.Invalid:
		return ui.Yellow(a.p.Sprintf("kept, not created by %s", branding.CLIName()))
	default:
		return ui.Dim(a.p.Sprintf("not linked"))
	}
}

// forgetCommands drops commands from the descriptor's globalCommands.
func forgetCommands(a *app, commands []string) {
	store := a.store()
	res := store.Load()
	if !res.Usable() {
		return
	}
	changed := false
	for _, c := range commands {
		if res.Descriptor.RemoveCommand(c) {
			changed = true
		}
	}
	if !changed {
		return
	}
	if err := store.Save(res.Descriptor); err != nil {
		a.userError("Could not update %s: %v", branding.DescriptorFile(), err)
		return
	}
	a.printf("Removed %s from %s.", strings.Join(commands, ", "), branding.DescriptorFile())
}
