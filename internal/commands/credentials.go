package commands

import (
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/bokforing_app/internal/utils"
	"github.com/spf13/cobra"
)

func newAPIKeyCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "apikey",
		Short: "Manage the machine API key",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "generate",
		Short: "Generate an API key and the bcrypt hash to put in API_KEY_HASH",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			key, hash, err := utils.GenerateAPIKey()
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "API_KEY=%s\nAPI_KEY_HASH=%s\n", key, hash)
			return err
		},
	})
	return cmd
}

func newTokenCommand(a *app) *cobra.Command {
	var (
		ownerID string
		ttl     time.Duration
	)

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue a signed JWT for an owner",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if ownerID == "" {
				return errors.New("--owner is required")
			}
			if ttl <= 0 {
				return errors.New("--ttl must be positive")
			}
			cfg, err := a.config()
			if err != nil {
				return err
			}
			token, err := utils.GenerateJWT(ownerID, cfg.JWTSecret, ttl, cfg.JWTIssuer)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), token)
			return err
		},
	}
	cmd.Flags().StringVar(&ownerID, "owner", "", "owner ID placed in the subject claim")
	cmd.Flags().DurationVar(&ttl, "ttl", 24*time.Hour, "token lifetime")

	return cmd
}
