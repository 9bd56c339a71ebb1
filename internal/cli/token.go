package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/flashcards-backend/internal/auth"
	"github.com/heartmarshall/flashcards-backend/internal/config"
)

// newTokenCmd mints a bearer token with the server's own auth settings, for
// local development against a server without an identity provider.
func newTokenCmd() *cobra.Command {
	var userID string

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint a development bearer token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			userID = strings.TrimSpace(userID)
			if userID == "" {
				return errors.New("--user must not be blank")
			}

			cfg, err := config.LoadAuth()
			if err != nil {
				return err
			}

			jwtm := auth.NewJWTManager(cfg.JWTSecret, cfg.Issuer, cfg.Audience, cfg.TokenTTL)
			token, err := jwtm.Generate(userID)
			if err != nil {
				return fmt.Errorf("generate token: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}

	cmd.Flags().StringVar(&userID, "user", "", "user id to put in the token subject")
	_ = cmd.MarkFlagRequired("user")
	return cmd
}
