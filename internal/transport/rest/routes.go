package rest

import (
	"net/http"

	"github.com/heartmarshall/flashcards-backend/pkg/ctxutil"
)

// Register mounts every endpoint on mux. The /api routes answer 401 to
// anonymous callers before any path or body parsing.
func Register(mux *http.ServeMux, decks *DeckHandler, cards *CardHandler, health *HealthHandler) {
	mux.HandleFunc("GET /live", health.Live)
	mux.HandleFunc("GET /ready", health.Ready)
	mux.HandleFunc("GET /health", health.Health)

	mux.HandleFunc("GET /api/decks", requireUser(decks.List))
	mux.HandleFunc("POST /api/decks", requireUser(decks.Create))
	mux.HandleFunc("GET /api/decks/{deckID}", requireUser(decks.Get))
	mux.HandleFunc("PUT /api/decks/{deckID}", requireUser(decks.Update))
	mux.HandleFunc("DELETE /api/decks/{deckID}", requireUser(decks.Delete))
	mux.HandleFunc("GET /api/decks/{deckID}/study", requireUser(decks.Study))

	mux.HandleFunc("POST /api/decks/{deckID}/cards", requireUser(cards.Create))
	mux.HandleFunc("PUT /api/cards/{cardID}", requireUser(cards.Update))
	mux.HandleFunc("DELETE /api/cards/{cardID}", requireUser(cards.Delete))
}

func requireUser(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := ctxutil.UserIDFromCtx(r.Context()); !ok {
			writeError(w, http.StatusUnauthorized, "unauthorized")
			return
		}
		next(w, r)
	}
}
