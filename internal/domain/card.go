package domain

import "time"

// Card is one question/answer pair belonging to exactly one Deck.
type Card struct {
	ID        int64
	DeckID    int64
	Front     string
	Back      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
