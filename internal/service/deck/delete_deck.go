package deck

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/flashcards-backend/internal/domain"
	"github.com/heartmarshall/flashcards-backend/pkg/ctxutil"
)

// DeleteDeck deletes a deck of the authenticated user together with all of
// its cards, then sends the client back to the deck listing.
func (s *Service) DeleteDeck(ctx context.Context, input DeleteDeckInput) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return err
	}

	if err := s.decks.Delete(ctx, userID, input.DeckID); err != nil {
		return fmt.Errorf("delete deck: %w", err)
	}

	s.notify.Invalidate(ctx, domain.DashboardPath)
	s.notify.Invalidate(ctx, domain.DeckPath(input.DeckID))
	s.notify.Navigate(ctx, domain.DashboardPath)

	s.log.InfoContext(ctx, "deck deleted",
		slog.String("user_id", userID),
		slog.Int64("deck_id", input.DeckID),
	)

	return nil
}
