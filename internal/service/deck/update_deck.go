package deck

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/flashcards-backend/internal/domain"
	"github.com/heartmarshall/flashcards-backend/pkg/ctxutil"
)

// UpdateDeck renames a deck and replaces its description. The deck's
// last-modified timestamp moves forward.
func (s *Service) UpdateDeck(ctx context.Context, input UpdateDeckInput) (*domain.Deck, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}
	input = input.Normalize()

	deck, err := s.decks.Update(ctx, userID, input.DeckID, input.Name, input.Description)
	if err != nil {
		return nil, fmt.Errorf("update deck: %w", err)
	}

	s.notify.Invalidate(ctx, domain.DashboardPath)
	s.notify.Invalidate(ctx, domain.DeckPath(deck.ID))

	s.log.InfoContext(ctx, "deck updated",
		slog.String("user_id", userID),
		slog.Int64("deck_id", deck.ID),
	)

	return deck, nil
}
