package testhelper

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/flashcards-backend/internal/domain"
)

// NewUserID returns a fresh opaque user identifier so tests sharing the
// container never see each other's rows.
func NewUserID() string {
	return "user_" + uuid.New().String()[:8]
}

// SeedDeck inserts a deck owned by userID and returns it.
func SeedDeck(t *testing.T, pool *pgxpool.Pool, userID, name string) domain.Deck {
	t.Helper()

	d := domain.Deck{UserID: userID, Name: name}
	err := pool.QueryRow(context.Background(),
		`INSERT INTO decks (user_id, name) VALUES ($1, $2)
		 RETURNING id, created_at, updated_at`,
		userID, name,
	).Scan(&d.ID, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedDeck: %v", err)
	}
	return d
}

// SeedCard inserts a card into deckID without touching the deck.
func SeedCard(t *testing.T, pool *pgxpool.Pool, deckID int64, front, back string) domain.Card {
	t.Helper()

	c := domain.Card{DeckID: deckID, Front: front, Back: back}
	err := pool.QueryRow(context.Background(),
		`INSERT INTO cards (deck_id, front, back) VALUES ($1, $2, $3)
		 RETURNING id, created_at, updated_at`,
		deckID, front, back,
	).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedCard: %v", err)
	}
	return c
}

// CountCards returns how many cards reference deckID.
func CountCards(t *testing.T, pool *pgxpool.Pool, deckID int64) int {
	t.Helper()

	var n int
	err := pool.QueryRow(context.Background(),
		`SELECT count(*) FROM cards WHERE deck_id = $1`, deckID,
	).Scan(&n)
	if err != nil {
		t.Fatalf("testhelper: CountCards: %v", err)
	}
	return n
}
