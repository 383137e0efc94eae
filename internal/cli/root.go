package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/johan-perso/betterpip/internal/branding"
	"github.com/johan-perso/betterpip/internal/config"
	"github.com/johan-perso/betterpip/internal/github"
	"github.com/johan-perso/betterpip/internal/log"
	"github.com/johan-perso/betterpip/internal/ui"
	"github.com/johan-perso/betterpip/internal/updater"
	"github.com/spf13/cobra"
)

var (
	buildVersion = "dev"
	buildCommit  = "unknown"
	buildDate    = "unknown"
)

var (
	flagVerbose bool
	flagSilent  bool
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` wraps pip with a per-project descriptor (` + branding.DescriptorFile() + `)
that records dependencies, the entry point and the commands to expose on PATH.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.Load()
		if flagVerbose {
			log.SetLevel(slog.LevelDebug)
		}

		settings := currentSettings()
		switch cmd.Name() {
		case "version", "help", "completion":
			return
		}
		if cmd.Parent() == configCmd || settings.Silent || settings.NoUpdateCheck {
			return
		}

		var opts []github.Option
		if settings.GitHubAPIURL != "" {
			opts = append(opts, github.WithBaseURL(settings.GitHubAPIURL))
		}
		u := updater.New(buildVersion, updater.WithClient(github.New(opts...)))
		u.CheckAndPrintBanner(cmd.ErrOrStderr(), config.Dir())
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Print diagnostic logs to stderr")
	rootCmd.PersistentFlags().BoolVarP(&flagSilent, "silent", "s", false, "Skip prompts and answer them with their defaults")
	rootCmd.SetHelpCommand(&cobra.Command{
		Use:     "help [command]",
		Aliases: []string{"h"},
		Short:   "Help about any command",
		Run: func(cmd *cobra.Command, args []string) {
			target, _, err := rootCmd.Find(args)
			if target == nil || err != nil {
				target = rootCmd
			}
			_ = target.Help()
		},
	})
}

// currentSettings returns the configuration with command-line overrides applied.
func currentSettings() config.Settings {
	s := config.Current()
	if flagSilent {
		s.Silent = true
	}
	return s
}

// Execute runs the root command with build info injected via ldflags.
// Interrupting the process cancels the context handed to every command.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, ui.Red(err.Error()))
	}
	return err
}
