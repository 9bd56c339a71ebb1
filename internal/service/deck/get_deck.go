package deck

import (
	"context"
	"errors"
	"fmt"

	"github.com/heartmarshall/flashcards-backend/internal/domain"
	"github.com/heartmarshall/flashcards-backend/pkg/ctxutil"
)

// GetDeck returns a deck of the authenticated user with its cards in creation
// order. A deck that does not exist and a deck owned by someone else both
// yield found == false with a nil error.
func (s *Service) GetDeck(ctx context.Context, deckID int64) (deck *domain.Deck, found bool, err error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, false, domain.ErrUnauthorized
	}

	if deckID <= 0 {
		return nil, false, domain.NewValidationError("deck_id", "must be a positive integer")
	}

	deck, err = s.decks.GetByID(ctx, userID, deckID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get deck: %w", err)
	}

	cards, err := s.cards.ListByDeck(ctx, deck.ID)
	if err != nil {
		return nil, false, fmt.Errorf("list cards: %w", err)
	}
	deck.Cards = cards

	return deck, true, nil
}
