// Package card implements the card-level actions. Every mutation resolves the
// parent deck through an ownership-filtered read and bumps that deck's
// last-modified timestamp in the same transaction as the card write.
package card

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/flashcards-backend/internal/domain"
)

type deckRepo interface {
	GetByID(ctx context.Context, userID string, deckID int64) (*domain.Deck, error)
	Touch(ctx context.Context, deckID int64) error
}

type cardRepo interface {
	GetOwned(ctx context.Context, userID string, cardID int64) (*domain.Card, error)
	Create(ctx context.Context, deckID int64, front, back string) (*domain.Card, error)
	Update(ctx context.Context, cardID int64, front, back string) (*domain.Card, error)
	Delete(ctx context.Context, cardID int64) error
}

type notifier interface {
	Invalidate(ctx context.Context, path string)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides card operations scoped to the authenticated user.
type Service struct {
	decks  deckRepo
	cards  cardRepo
	notify notifier
	tx     txManager
	log    *slog.Logger
}

// NewService creates a new card service.
func NewService(
	log *slog.Logger,
	decks deckRepo,
	cards cardRepo,
	notify notifier,
	tx txManager,
) *Service {
	return &Service{
		decks:  decks,
		cards:  cards,
		notify: notify,
		tx:     tx,
		log:    log.With("service", "card"),
	}
}
