package cli

import (
	"errors"
	"fmt"
	"os/user"
	"path/filepath"
	"strings"

	"github.com/johan-perso/betterpip/internal/branding"
	"github.com/johan-perso/betterpip/internal/cmdname"
	"github.com/johan-perso/betterpip/internal/descriptor"
	"github.com/johan-perso/betterpip/internal/log"
	"github.com/johan-perso/betterpip/internal/platform"
	"github.com/johan-perso/betterpip/internal/ui"
	"github.com/spf13/cobra"
)

var initYes bool

var initCmd = &cobra.Command{
	Use:     "init",
	Aliases: []string{"createPackage"},
	Short:   "Create or update " + branding.DescriptorFile() + " in the current directory",
	Long: `Create the project descriptor, asking for the package name, description,
author, main file and the global commands to expose on PATH.

With --yes, in silent mode or when default_value_for_init is set, every
question is answered with its default: the directory name, the current user,
and the first of __init__.py, app.py, main.py, index.py or any *.py file.`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func init() {
	initCmd.Flags().BoolVarP(&initYes, "yes", "y", false, "Accept every default without prompting")
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}

	prompt := a.prompt
	if initYes || a.settings.Silent || a.settings.DefaultInit {
		prompt = ui.Defaults{}
	}

	d, err := askDescriptor(a, prompt)
	if errors.Is(err, ui.ErrAborted) {
		a.userError("Cancelled.")
		return nil
	}
	if err != nil {
		// Only a default that fails validation gets here.
		fmt.Fprintln(a.errOut, ui.Red(err.Error()))
		return nil
	}

	store := a.store()
	if err := store.Save(d); err != nil {
		return fmt.Errorf("saving descriptor: %w", err)
	}
	a.success("Created %s.", store.Path())

	if a.settings.OpenAfterInit {
		openFile(a, store.Path())
	}
	return nil
}

// askDescriptor builds the descriptor from the answers, starting from the
// existing one so dependencies and unknown keys survive a second init.
func askDescriptor(a *app, prompt ui.Prompter) (*descriptor.Descriptor, error) {
	d := a.store().Load().Descriptor

	defName := d.Name
	if defName == "" {
		defName = filepath.Base(a.dir)
	}
	defAuthor := d.Author
	if defAuthor == "" {
		defAuthor = defaultAuthor()
	}
	defMain := d.MainFile
	if defMain == "" {
		defMain = descriptor.DetectMainFile(a.dir)
	}

	var err error
	if d.Name, err = prompt.Input(a.p.Sprintf("Package name"), defName, nil); err != nil {
		return nil, err
	}
	if d.Description, err = prompt.Input(a.p.Sprintf("Description"), d.Description, nil); err != nil {
		return nil, err
	}
	if d.Author, err = prompt.Input(a.p.Sprintf("Author"), defAuthor, descriptor.CheckAuthor); err != nil {
		return nil, err
	}
	d.MainFile, err = prompt.Input(a.p.Sprintf("Main file"), defMain, func(s string) error {
		if s == "" {
			return nil
		}
		return descriptor.CheckMainFile(a.dir, s)
	})
	if err != nil {
		return nil, err
	}

	commands, err := prompt.Input(a.p.Sprintf("Global commands (comma-separated)"), strings.Join(d.GlobalCommands, ","), func(s string) error {
		for _, c := range splitCommands(s) {
			if err := cmdname.Check(c); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	d.GlobalCommands = splitCommands(commands)

	if d.Dependencies == nil {
		d.Dependencies = map[string]string{}
	}
	return d, nil
}

// splitCommands parses "a, b,,c" into [a b c].
func splitCommands(s string) []string {
	commands := []string{}
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			commands = append(commands, part)
		}
	}
	return commands
}

// defaultAuthor is the OS user name, cut to the author length limit.
func defaultAuthor() string {
	name := ""
	if u, err := user.Current(); err == nil {
		name = u.Username
		// DOMAIN\user on Windows.
		if i := strings.LastIndex(name, `\`); i >= 0 {
			name = name[i+1:]
		}
	}
	runes := []rune(name)
	if len(runes) > descriptor.AuthorMaxLength {
		runes = runes[:descriptor.AuthorMaxLength]
	}
	return string(runes)
}

func openFile(a *app, path string) {
	exe, args := platform.OpenCommand(a.goos, path)
	if _, err := a.exec.Output(a.ctx, exe, args...); err != nil {
		log.Debug("opening file failed", "path", path, "err", err)
		a.warn("Could not open %s.", path)
	}
}
