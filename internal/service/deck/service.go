// Package deck implements the deck-level actions: listing and reading a
// user's decks and creating, editing and deleting them.
package deck

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/flashcards-backend/internal/domain"
)

type deckRepo interface {
	ListByUser(ctx context.Context, userID string) ([]domain.Deck, error)
	GetByID(ctx context.Context, userID string, deckID int64) (*domain.Deck, error)
	Create(ctx context.Context, userID, name string, description *string) (*domain.Deck, error)
	Update(ctx context.Context, userID string, deckID int64, name string, description *string) (*domain.Deck, error)
	Delete(ctx context.Context, userID string, deckID int64) error
}

type cardRepo interface {
	ListByDeck(ctx context.Context, deckID int64) ([]domain.Card, error)
	ListByDecks(ctx context.Context, deckIDs []int64) ([]domain.Card, error)
}

// notifier receives view invalidation and navigation signals after a
// successful mutation.
type notifier interface {
	Invalidate(ctx context.Context, path string)
	Navigate(ctx context.Context, path string)
}

// Service provides deck operations scoped to the authenticated user.
type Service struct {
	decks  deckRepo
	cards  cardRepo
	notify notifier
	log    *slog.Logger
}

// NewService creates a new deck service.
func NewService(
	log *slog.Logger,
	decks deckRepo,
	cards cardRepo,
	notify notifier,
) *Service {
	return &Service{
		decks:  decks,
		cards:  cards,
		notify: notify,
		log:    log.With("service", "deck"),
	}
}
