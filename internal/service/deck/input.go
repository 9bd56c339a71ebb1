package deck

import (
	"github.com/heartmarshall/flashcards-backend/internal/domain"
	"github.com/heartmarshall/flashcards-backend/internal/validation"
)

// CreateDeckInput holds the parameters for creating a deck.
type CreateDeckInput struct {
	Name        string  `field:"name" validate:"required,nonul,max=255"`
	Description *string `field:"description" validate:"omitempty,nonul,max=1000"`
}

// Normalize trims the text fields; a blank description becomes nil.
func (i CreateDeckInput) Normalize() CreateDeckInput {
	return CreateDeckInput{
		Name:        domain.CleanText(i.Name),
		Description: domain.CleanOptional(i.Description),
	}
}

// Validate checks all fields and collects all errors.
func (i CreateDeckInput) Validate() error {
	return validation.Struct(i.Normalize())
}

// UpdateDeckInput holds the parameters for editing a deck.
// Description nil clears it.
type UpdateDeckInput struct {
	DeckID      int64   `field:"deck_id" validate:"gt=0"`
	Name        string  `field:"name" validate:"required,nonul,max=255"`
	Description *string `field:"description" validate:"omitempty,nonul,max=1000"`
}

// Normalize trims the text fields; a blank description becomes nil.
func (i UpdateDeckInput) Normalize() UpdateDeckInput {
	return UpdateDeckInput{
		DeckID:      i.DeckID,
		Name:        domain.CleanText(i.Name),
		Description: domain.CleanOptional(i.Description),
	}
}

// Validate checks all fields and collects all errors.
func (i UpdateDeckInput) Validate() error {
	return validation.Struct(i.Normalize())
}

// DeleteDeckInput holds the parameters for deleting a deck.
type DeleteDeckInput struct {
	DeckID int64 `field:"deck_id" validate:"gt=0"`
}

// Validate checks all fields and collects all errors.
func (i DeleteDeckInput) Validate() error {
	return validation.Struct(i)
}
