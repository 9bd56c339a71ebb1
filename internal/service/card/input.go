package card

import (
	"github.com/heartmarshall/flashcards-backend/internal/domain"
	"github.com/heartmarshall/flashcards-backend/internal/validation"
)

// CreateCardInput holds the parameters for adding a card to a deck.
type CreateCardInput struct {
	DeckID int64  `field:"deck_id" validate:"gt=0"`
	Front  string `field:"front" validate:"required,nonul,max=1000"`
	Back   string `field:"back" validate:"required,nonul,max=1000"`
}

// Normalize trims both faces.
func (i CreateCardInput) Normalize() CreateCardInput {
	return CreateCardInput{DeckID: i.DeckID, Front: domain.CleanText(i.Front), Back: domain.CleanText(i.Back)}
}

// Validate checks all fields and collects all errors.
func (i CreateCardInput) Validate() error {
	return validation.Struct(i.Normalize())
}

// UpdateCardInput holds the parameters for editing a card.
type UpdateCardInput struct {
	CardID int64  `field:"card_id" validate:"gt=0"`
	Front  string `field:"front" validate:"required,nonul,max=1000"`
	Back   string `field:"back" validate:"required,nonul,max=1000"`
}

// Normalize trims both faces.
func (i UpdateCardInput) Normalize() UpdateCardInput {
	return UpdateCardInput{CardID: i.CardID, Front: domain.CleanText(i.Front), Back: domain.CleanText(i.Back)}
}

// Validate checks all fields and collects all errors.
func (i UpdateCardInput) Validate() error {
	return validation.Struct(i.Normalize())
}

// DeleteCardInput holds the parameters for deleting a card. The parent deck
// is looked up from the card, not taken from the caller.
type DeleteCardInput struct {
	CardID int64 `field:"card_id" validate:"gt=0"`
}

// Validate checks all fields and collects all errors.
func (i DeleteCardInput) Validate() error {
	return validation.Struct(i)
}
