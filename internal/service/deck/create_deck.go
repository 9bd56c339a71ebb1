package deck

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/flashcards-backend/internal/domain"
	"github.com/heartmarshall/flashcards-backend/pkg/ctxutil"
)

// CreateDeck creates a new, empty deck for the authenticated user.
func (s *Service) CreateDeck(ctx context.Context, input CreateDeckInput) (*domain.Deck, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}
	input = input.Normalize()

	deck, err := s.decks.Create(ctx, userID, input.Name, input.Description)
	if err != nil {
		return nil, fmt.Errorf("create deck: %w", err)
	}
	deck.Cards = []domain.Card{}

	s.notify.Invalidate(ctx, domain.DashboardPath)
	s.notify.Invalidate(ctx, domain.DeckPath(deck.ID))

	s.log.InfoContext(ctx, "deck created",
		slog.String("user_id", userID),
		slog.Int64("deck_id", deck.ID),
		slog.String("name", deck.Name),
	)

	return deck, nil
}
