package client

import (
	"time"

	"github.com/heartmarshall/flashcards-backend/internal/domain"
)

type errorResponse struct {
	Error string `json:"error"`
}

type cardResponse struct {
	ID        int64     `json:"id"`
	DeckID    int64     `json:"deckId"`
	Front     string    `json:"front"`
	Back      string    `json:"back"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type deckResponse struct {
	ID          int64          `json:"id"`
	Name        string         `json:"name"`
	Description *string        `json:"description"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
	Cards       []cardResponse `json:"cards"`
}

type deckListResponse struct {
	Decks []deckResponse `json:"decks"`
}

type studyResponse struct {
	Deck  deckResponse   `json:"deck"`
	Cards []cardResponse `json:"cards"`
}

func (c cardResponse) toDomain() domain.Card {
	return domain.Card{
		ID:        c.ID,
		DeckID:    c.DeckID,
		Front:     c.Front,
		Back:      c.Back,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func toCards(in []cardResponse) []domain.Card {
	out := make([]domain.Card, len(in))
	for i, c := range in {
		out[i] = c.toDomain()
	}
	return out
}

func (d deckResponse) toDomain() domain.Deck {
	return domain.Deck{
		ID:          d.ID,
		Name:        d.Name,
		Description: d.Description,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
		Cards:       toCards(d.Cards),
	}
}
