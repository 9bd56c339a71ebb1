package card

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/flashcards-backend/internal/domain"
	"github.com/heartmarshall/flashcards-backend/pkg/ctxutil"
)

// UpdateCard replaces both faces of a card whose deck the authenticated user
// owns. Fails with domain.ErrNotFound when the card is missing or its deck
// belongs to someone else.
func (s *Service) UpdateCard(ctx context.Context, input UpdateCardInput) (*domain.Card, error) {
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
		owned, err := s.cards.GetOwned(txCtx, userID, input.CardID)
		if err != nil {
			return fmt.Errorf("get card: %w", err)
		}

		card, err = s.cards.Update(txCtx, owned.ID, input.Front, input.Back)
		if err != nil {
			return fmt.Errorf("update card: %w", err)
		}

		if err := s.decks.Touch(txCtx, owned.DeckID); err != nil {
			return fmt.Errorf("touch deck: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.notify.Invalidate(ctx, domain.DeckPath(card.DeckID))

	s.log.InfoContext(ctx, "card updated",
		slog.String("user_id", userID),
		slog.Int64("deck_id", card.DeckID),
		slog.Int64("card_id", card.ID),
	)

	return card, nil
}
