package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/johan-perso/betterpip/internal/branding"
	"github.com/johan-perso/betterpip/internal/cmdname"
	"github.com/johan-perso/betterpip/internal/descriptor"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check " + branding.DescriptorFile() + " for mistakes",
	Long: `Validate the project descriptor against its JSON schema, then check that
the main file exists and that no global command is reserved.`,
	Args: cobra.NoArgs,
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}

	store := a.store()
	data, err := os.ReadFile(store.Path())
	if errors.Is(err, fs.ErrNotExist) {
		a.userError("No %s found in this directory. Run \"%s init\" first.", branding.DescriptorFile(), branding.CLIName())
		return nil
	}
	if err != nil {
		return fmt.Errorf("reading descriptor: %w", err)
	}

	result, err := descriptor.ValidateWith(data, a.p)
	if err != nil {
		a.userError("%s could not be read: %v", branding.DescriptorFile(), err)
		return nil
	}

	problems := make([]string, 0, len(result.Issues))
	for _, issue := range result.Issues {
		problems = append(problems, issue.String())
	}

	// The schema only covers shapes; the rest needs the file system and the
	// reserved-word tables.
	if res := store.Load(); res.Status == descriptor.Found {
		d := res.Descriptor
		if d.MainFile != "" {
			if err := descriptor.CheckMainFile(a.dir, d.MainFile); err != nil {
				problems = append(problems, "/mainFile: "+err.Error())
			}
		}
		for _, c := range d.GlobalCommands {
			if table, reserved := cmdname.ReservedBy(c); reserved {
				problems = append(problems, a.p.Sprintf("/globalCommands: %s is reserved (%s)", c, table.String()))
			}
		}
	}

	if len(problems) == 0 {
		a.success("%s is valid.", branding.DescriptorFile())
		return nil
	}
	a.userError("%s has %d problem(s):", branding.DescriptorFile(), len(problems))
	for _, p := range problems {
		fmt.Fprintf(a.errOut, "  - %s\n", p)
	}
	return nil
}
