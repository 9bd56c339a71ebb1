// Command flashcards is the terminal client for the flashcards API: it lists
// decks, runs study sessions and mints development tokens.
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/heartmarshall/flashcards-backend/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := cli.NewRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
