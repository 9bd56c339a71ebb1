package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/heartmarshall/flashcards-backend/internal/cli/tui"
)

func newStudyCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "study <deck-id>",
		Short: "Study a deck's cards in random order",
		Long: `Fetch a deck once and study it locally.

Keys:
  space  flip the card
  ←/→    previous / next card
  s      reshuffle and start over
  q      quit`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			deckID, err := parseDeckID(args[0])
			if err != nil {
				return err
			}

			deck, cards, err := opts.client(cmd).StudyDeck(cmd.Context(), deckID)
			if err != nil {
				return err
			}

			p := tea.NewProgram(
				tui.New(deck.Name, cards, nil),
				tea.WithAltScreen(),
				tea.WithContext(cmd.Context()),
				tea.WithInput(cmd.InOrStdin()),
				tea.WithOutput(cmd.OutOrStdout()),
			)
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("run study session: %w", err)
			}
			return nil
		},
	}
}
