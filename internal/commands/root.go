package commands

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/SscSPs/bokforing_app/internal/platform/config"
	"github.com/spf13/cobra"
)

// Version is overridden at build time with -ldflags "-X ...commands.Version=...".
var Version = "dev"

// app carries state shared by all subcommands.
type app struct {
	logger    *slog.Logger
	logOutput io.Writer
	logLevel  string
	loadCfg   func() (*config.Config, error)
}

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	return newRootCommand(&app{
		logOutput: os.Stderr,
		loadCfg:   config.LoadConfig,
	})
}

func newRootCommand(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "bokforing",
		Short:   "Double-entry bookkeeping and payroll for Swedish small businesses",
		Version: Version,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			level, err := parseLevel(a.logLevel)
			if err != nil {
				return err
			}
			a.logger = slog.New(slog.NewJSONHandler(a.logOutput, &slog.HandlerOptions{Level: level}))
			slog.SetDefault(a.logger)
			return nil
		},
	}
	rootCmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "info", "log level (debug, info, warn, error)")

	rootCmd.AddCommand(
		newServeCommand(a),
		newMigrateCommand(a),
		newPayrollCommand(a),
		newAPIKeyCommand(),
		newTokenCommand(a),
	)

	return rootCmd
}

func (a *app) config() (*config.Config, error) {
	cfg, err := a.loadCfg()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(s))); err != nil {
		return 0, fmt.Errorf("invalid --log-level %q", s)
	}
	return level, nil
}
