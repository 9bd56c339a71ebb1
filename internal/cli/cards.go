package cli

import (
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/flashcards-backend/internal/study"
)

func newCardsCmd(opts *rootOptions) *cobra.Command {
	var shuffle bool

	cmd := &cobra.Command{
		Use:   "cards <deck-id>",
		Short: "List a deck's cards",
		Long: `List a deck's cards in id order.

With --shuffle the cards are printed in a fresh random order, the same
way a study session deals them.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			deckID, err := parseDeckID(args[0])
			if err != nil {
				return err
			}

			deck, err := opts.client(cmd).GetDeck(cmd.Context(), deckID)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			cards := deck.Cards
			if len(cards) == 0 {
				fmt.Fprintln(out, study.EmptyMessage)
				return nil
			}
			if shuffle {
				cards = study.New(cards, nil).Order()
			}

			fmt.Fprintf(out, "%s (%d cards)\n", deck.Name, len(cards))
			w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tFRONT\tBACK")
			for _, c := range cards {
				fmt.Fprintf(w, "%d\t%s\t%s\n", c.ID, c.Front, c.Back)
			}
			return w.Flush()
		},
	}

	cmd.Flags().BoolVar(&shuffle, "shuffle", false, "print the cards in random study order")
	return cmd
}

func parseDeckID(arg string) (int64, error) {
	deckID, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || deckID <= 0 {
		return 0, fmt.Errorf("deck id must be a positive integer, got %q", arg)
	}
	return deckID, nil
}
