package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/flashcards-backend/internal/domain"
	"github.com/heartmarshall/flashcards-backend/internal/service/card"
)

type cardService interface {
	CreateCard(ctx context.Context, input card.CreateCardInput) (*domain.Card, error)
	UpdateCard(ctx context.Context, input card.UpdateCardInput) (*domain.Card, error)
	DeleteCard(ctx context.Context, input card.DeleteCardInput) (*domain.Card, error)
}

// CardHandler serves the card endpoints.
type CardHandler struct {
	svc cardService
	log *slog.Logger
}

// NewCardHandler creates a CardHandler.
func NewCardHandler(svc cardService, logger *slog.Logger) *CardHandler {
	return &CardHandler{svc: svc, log: logger.With("handler", "card")}
}

// Create handles POST /api/decks/{deckID}/cards.
func (h *CardHandler) Create(w http.ResponseWriter, r *http.Request) {
	deckID, err := pathID(r, "deckID", "deck_id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	var req cardRequest
	if !decodeBody(w, r, &req) {
		return
	}

	c, err := h.svc.CreateCard(r.Context(), card.CreateCardInput{
		DeckID: deckID,
		Front:  req.Front,
		Back:   req.Back,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toCardResponse(*c))
}

// Update handles PUT /api/cards/{cardID}.
func (h *CardHandler) Update(w http.ResponseWriter, r *http.Request) {
	cardID, err := pathID(r, "cardID", "card_id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	var req cardRequest
	if !decodeBody(w, r, &req) {
		return
	}

	c, err := h.svc.UpdateCard(r.Context(), card.UpdateCardInput{
		CardID: cardID,
		Front:  req.Front,
		Back:   req.Back,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toCardResponse(*c))
}

// Delete handles DELETE /api/cards/{cardID}.
func (h *CardHandler) Delete(w http.ResponseWriter, r *http.Request) {
	cardID, err := pathID(r, "cardID", "card_id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	if _, err := h.svc.DeleteCard(r.Context(), card.DeleteCardInput{CardID: cardID}); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
