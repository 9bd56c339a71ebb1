package rest

import (
	"context"
	"log/slog"
	"net/http"
	"slices"

	"github.com/heartmarshall/flashcards-backend/internal/domain"
	"github.com/heartmarshall/flashcards-backend/internal/service/deck"
	"github.com/heartmarshall/flashcards-backend/internal/study"
)

type deckService interface {
	ListDecks(ctx context.Context) ([]domain.Deck, error)
	GetDeck(ctx context.Context, deckID int64) (*domain.Deck, bool, error)
	CreateDeck(ctx context.Context, input deck.CreateDeckInput) (*domain.Deck, error)
	UpdateDeck(ctx context.Context, input deck.UpdateDeckInput) (*domain.Deck, error)
	DeleteDeck(ctx context.Context, input deck.DeleteDeckInput) error
}

// DeckHandler serves the deck endpoints under /api/decks.
type DeckHandler struct {
	svc deckService
	rng study.Rand
	log *slog.Logger
}

// NewDeckHandler creates a DeckHandler. rng shuffles study sessions; nil
// uses the global source.
func NewDeckHandler(svc deckService, rng study.Rand, logger *slog.Logger) *DeckHandler {
	return &DeckHandler{svc: svc, rng: rng, log: logger.With("handler", "deck")}
}

// List handles GET /api/decks.
func (h *DeckHandler) List(w http.ResponseWriter, r *http.Request) {
	decks, err := h.svc.ListDecks(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	resp := deckListResponse{Decks: make([]deckResponse, len(decks))}
	for i, d := range decks {
		resp.Decks[i] = toDeckResponse(d)
	}
	writeJSON(w, http.StatusOK, resp)
}

// Get handles GET /api/decks/{deckID}.
func (h *DeckHandler) Get(w http.ResponseWriter, r *http.Request) {
	d, ok := h.load(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, toDeckResponse(*d))
}

// Study handles GET /api/decks/{deckID}/study: the deck with its cards in a
// fresh random order. An empty deck yields an empty card list.
func (h *DeckHandler) Study(w http.ResponseWriter, r *http.Request) {
	d, ok := h.load(w, r)
	if !ok {
		return
	}

	shuffled := slices.Clone(d.Cards)
	study.Shuffle(shuffled, h.rng)

	writeJSON(w, http.StatusOK, studyResponse{
		Deck:  toDeckResponse(*d),
		Cards: toCardResponses(shuffled),
	})
}

// load reads the deck named by the path, answering 404 when it is absent.
func (h *DeckHandler) load(w http.ResponseWriter, r *http.Request) (*domain.Deck, bool) {
	deckID, err := pathID(r, "deckID", "deck_id")
	if err != nil {
		handleError(w, r, h.log, err)
		return nil, false
	}

	d, found, err := h.svc.GetDeck(r.Context(), deckID)
	if err != nil {
		handleError(w, r, h.log, err)
		return nil, false
	}
	if !found {
		writeError(w, http.StatusNotFound, "not found")
		return nil, false
	}
	return d, true
}

// Create handles POST /api/decks.
func (h *DeckHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req deckRequest
	if !decodeBody(w, r, &req) {
		return
	}

	d, err := h.svc.CreateDeck(r.Context(), deck.CreateDeckInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toDeckResponse(*d))
}

// Update handles PUT /api/decks/{deckID}. The body replaces name and
// description; an absent description clears it.
func (h *DeckHandler) Update(w http.ResponseWriter, r *http.Request) {
	deckID, err := pathID(r, "deckID", "deck_id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	var req deckRequest
	if !decodeBody(w, r, &req) {
		return
	}

	d, err := h.svc.UpdateDeck(r.Context(), deck.UpdateDeckInput{
		DeckID:      deckID,
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toDeckResponse(*d))
}

// Delete handles DELETE /api/decks/{deckID}.
func (h *DeckHandler) Delete(w http.ResponseWriter, r *http.Request) {
	deckID, err := pathID(r, "deckID", "deck_id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	if err := h.svc.DeleteDeck(r.Context(), deck.DeleteDeckInput{DeckID: deckID}); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
