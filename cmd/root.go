package cmd

import (
	"fmt"
	"os"

	"github.com/Johannes-Berggren/gonebranch/internal/config"
	"github.com/Johannes-Berggren/gonebranch/internal/git"
	"github.com/Johannes-Berggren/gonebranch/internal/logging"
	"github.com/Johannes-Berggren/gonebranch/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// app carries what PersistentPreRunE resolved to the subcommands.
type app struct {
	configPath string
	cfg        *config.Config
}

func (a *app) client() *git.Client {
	return git.NewClient(a.cfg.Git.Binary, a.cfg.Git.Dir)
}

// NewRootCommand builds the gonebranch command tree.
func NewRootCommand() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "gonebranch",
		Short: "Find and prune git branches whose upstream is gone",
		Long: `gonebranch - parse git branch listings and clean up local branches
whose remote tracking branch has been deleted`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(a.configPath, cmd.Flags())
			if err != nil {
				return err
			}
			if err := logging.Setup(cfg.Log.Level, cmd.ErrOrStderr()); err != nil {
				return err
			}
			a.cfg = cfg
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			client := a.client()
			if !client.IsRepo(cmd.Context()) {
				return fmt.Errorf("not a git repository")
			}

			p := tea.NewProgram(ui.NewModel(client, a.cfg.Prune.Force), tea.WithAltScreen())
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("error running app: %w", err)
			}
			return nil
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "config file (default .gonebranch.yaml in . or $HOME)")
	flags.String("log-level", config.DefaultLogLevel, "log level: debug, info, warn, error")
	flags.String("git", config.DefaultGitBinary, "git binary to run")
	flags.String("repo", "", "repository directory (default current directory)")

	rootCmd.AddCommand(
		newParseCommand(a),
		newListCommand(a),
		newPruneCommand(a),
	)

	return rootCmd
}

func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
