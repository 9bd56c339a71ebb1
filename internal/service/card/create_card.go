package card

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/flashcards-backend/internal/domain"
	"github.com/heartmarshall/flashcards-backend/pkg/ctxutil"
)

// CreateCard adds a card to a deck owned by the authenticated user.
// Fails with domain.ErrNotFound when the deck is missing or not owned.
func (s *Service) CreateCard(ctx context.Context, input CreateCardInput) (*domain.Card, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}
	input = input.Normalize()

	var card *domain.Card
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if _, err := s.decks.GetByID(txCtx, userID, input.DeckID); err != nil {
			return fmt.Errorf("get deck: %w", err)
		}

		var err error
		card, err = s.cards.Create(txCtx, input.DeckID, input.Front, input.Back)
		if err != nil {
			return fmt.Errorf("create card: %w", err)
		}

		if err := s.decks.Touch(txCtx, input.DeckID); err != nil {
			return fmt.Errorf("touch deck: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.notify.Invalidate(ctx, domain.DeckPath(card.DeckID))

	s.log.InfoContext(ctx, "card created",
		slog.String("user_id", userID),
		slog.Int64("deck_id", card.DeckID),
		slog.Int64("card_id", card.ID),
	)

	return card, nil
}
