package domain

import "strconv"

// DashboardPath identifies the deck listing view.
const DashboardPath = "/dashboard"

// DeckPath identifies the detail view of a single deck.
func DeckPath(deckID int64) string {
	return "/decks/" + strconv.FormatInt(deckID, 10)
}
