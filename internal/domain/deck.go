package domain

import "time"

// Field bounds shared by validation and the schema CHECK constraints.
const (
	MaxDeckNameLength        = 255
	MaxDeckDescriptionLength = 1000
	MaxCardTextLength        = 1000
)

// Deck is a named collection of flashcards owned by one user.
type Deck struct {
	ID          int64
	UserID      string
	Name        string
	Description *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
	Cards       []Card // populated by reads that attach cards, nil otherwise
}
