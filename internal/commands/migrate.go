package commands

import (
	"errors"

	"github.com/SscSPs/bokforing_app/pkg/database"
	"github.com/spf13/cobra"
)

func newMigrateCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply or roll back database migrations",
	}
	cmd.AddCommand(
		migrateStep(a, database.Up, "Apply all pending migrations"),
		migrateStep(a, database.Down, "Roll back the most recent migration"),
	)
	return cmd
}

func migrateStep(a *app, dir database.Direction, short string) *cobra.Command {
	return &cobra.Command{
		Use:   string(dir),
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := a.config()
			if err != nil {
				return err
			}
			if cfg.DatabaseURL == "" {
				return errors.New("PGSQL_URL must be set to run migrations")
			}
			return database.RunMigrations(a.logger, cfg.DatabaseURL, cfg.MigrationsPath, dir)
		},
	}
}
