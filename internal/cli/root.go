// Package cli holds the cobra commands of the flashcards terminal client.
package cli

import (
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/flashcards-backend/internal/app"
	"github.com/heartmarshall/flashcards-backend/internal/client"
)

const (
	envServer     = "FLASHCARDS_SERVER"
	envToken      = "FLASHCARDS_TOKEN"
	defaultServer = "http://localhost:8080"
)

type rootOptions struct {
	server  string
	token   string
	verbose bool
}

// NewRootCmd builds the flashcards command tree.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:          "flashcards",
		Short:        "Study flashcard decks from the terminal",
		Version:      app.Version,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&opts.server, "server", envOr(envServer, defaultServer), "API base URL ($"+envServer+")")
	cmd.PersistentFlags().StringVar(&opts.token, "token", os.Getenv(envToken), "bearer token ($"+envToken+")")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log HTTP retries to stderr")

	cmd.AddCommand(
		newDecksCmd(opts),
		newCardsCmd(opts),
		newStudyCmd(opts),
		newTokenCmd(),
	)
	return cmd
}

func (o *rootOptions) client(cmd *cobra.Command) *client.Client {
	var w io.Writer = io.Discard
	if o.verbose {
		w = cmd.ErrOrStderr()
	}
	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return client.New(o.server, o.token, logger)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
