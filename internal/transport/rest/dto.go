package rest

import (
	"time"

	"github.com/heartmarshall/flashcards-backend/internal/domain"
)

type deckRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

type cardRequest struct {
	Front string `json:"front"`
	Back  string `json:"back"`
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

func toCardResponse(c domain.Card) cardResponse {
	return cardResponse{
		ID:        c.ID,
		DeckID:    c.DeckID,
		Front:     c.Front,
		Back:      c.Back,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func toCardResponses(cards []domain.Card) []cardResponse {
	out := make([]cardResponse, len(cards))
	for i, c := range cards {
		out[i] = toCardResponse(c)
	}
	return out
}

func toDeckResponse(d domain.Deck) deckResponse {
	return deckResponse{
		ID:          d.ID,
		Name:        d.Name,
		Description: d.Description,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
		Cards:       toCardResponses(d.Cards),
	}
}
