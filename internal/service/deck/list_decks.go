package deck

import (
	"context"
	"fmt"

	"github.com/heartmarshall/flashcards-backend/internal/domain"
	"github.com/heartmarshall/flashcards-backend/pkg/ctxutil"
)

// ListDecks returns all decks of the authenticated user with their cards
// attached, most recently touched first. An empty result is not an error.
func (s *Service) ListDecks(ctx context.Context) ([]domain.Deck, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	decks, err := s.decks.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list decks: %w", err)
	}
	if len(decks) == 0 {
		return decks, nil
	}

	ids := make([]int64, len(decks))
	for i, d := range decks {
		ids[i] = d.ID
	}

	cards, err := s.cards.ListByDecks(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("list cards: %w", err)
	}

	byDeck := make(map[int64][]domain.Card, len(decks))
	for _, c := range cards {
		byDeck[c.DeckID] = append(byDeck[c.DeckID], c)
	}
	for i := range decks {
		decks[i].Cards = byDeck[decks[i].ID]
		if decks[i].Cards == nil {
			decks[i].Cards = []domain.Card{}
		}
	}

	return decks, nil
}
