package card

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/flashcards-backend/internal/domain"
	"github.com/heartmarshall/flashcards-backend/pkg/ctxutil"
)

// DeleteCard removes a card whose deck the authenticated user owns and
// returns the card as it was before deletion.
func (s *Service) DeleteCard(ctx context.Context, input DeleteCardInput) (*domain.Card, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	var card *domain.Card
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		card, err = s.cards.GetOwned(txCtx, userID, input.CardID)
		if err != nil {
			return fmt.Errorf("get card: %w", err)
		}

		if err := s.cards.Delete(txCtx, card.ID); err != nil {
			return fmt.Errorf("delete card: %w", err)
		}

		if err := s.decks.Touch(txCtx, card.DeckID); err != nil {
			return fmt.Errorf("touch deck: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.notify.Invalidate(ctx, domain.DeckPath(card.DeckID))

	s.log.InfoContext(ctx, "card deleted",
		slog.String("user_id", userID),
		slog.Int64("deck_id", card.DeckID),
		slog.Int64("card_id", card.ID),
	)

	return card, nil
}
