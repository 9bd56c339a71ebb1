// Package study holds the study-mode state machine: a deck's cards in a
// random order, a cursor into that order, and which face is showing.
//
// A Session is an immutable value. Every transition returns a new Session and
// leaves the receiver untouched, so it can be driven from any UI loop and
// tested without one.
package study

import (
	"fmt"
	"math/rand/v2"
	"slices"
)

// EmptyMessage is shown instead of a card when a deck has nothing to study.
const EmptyMessage = "No Cards to Study"

// Rand is the randomness a shuffle needs. *rand.Rand satisfies it.
type Rand interface {
	IntN(n int) int
}

type globalRand struct{}

func (globalRand) IntN(n int) int { return rand.IntN(n) }

// Session is either Empty (no cards) or Active with a shuffled order,
// an index within [0, Len()) and a flipped flag.
type Session[T any] struct {
	source  []T
	order   []T
	index   int
	flipped bool
}

// New starts a session over cards in a fresh random order, showing the front
// of the first card. An empty input yields an Empty session. cards is copied.
// A nil rng uses the process-wide generator.
func New[T any](cards []T, rng Rand) Session[T] {
	if len(cards) == 0 {
		return Session[T]{}
	}
	source := slices.Clone(cards)
	return Session[T]{source: source, order: shuffled(source, rng)}
}

// Shuffle permutes items in place with the Fisher-Yates algorithm: for i from
// the last position down to 1, swap items[i] with items[j], j uniform in [0, i].
// Every permutation is equally likely given a uniform rng.
func Shuffle[T any](items []T, rng Rand) {
	if rng == nil {
		rng = globalRand{}
	}
	for i := len(items) - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		items[i], items[j] = items[j], items[i]
	}
}

func shuffled[T any](source []T, rng Rand) []T {
	order := slices.Clone(source)
	Shuffle(order, rng)
	return order
}

// Empty reports whether the session has no cards. Empty is terminal.
func (s Session[T]) Empty() bool { return len(s.order) == 0 }

// Len is the number of cards in the session.
func (s Session[T]) Len() int { return len(s.order) }

// Index is the zero-based position of the current card.
func (s Session[T]) Index() int { return s.index }

// Flipped reports whether the back of the current card is showing.
func (s Session[T]) Flipped() bool { return s.flipped }

// Current returns the card at the cursor; ok is false for an Empty session.
func (s Session[T]) Current() (card T, ok bool) {
	if s.Empty() {
		return card, false
	}
	return s.order[s.index], true
}

// Order returns a copy of the shuffled order.
func (s Session[T]) Order() []T { return slices.Clone(s.order) }

// Progress renders the cursor as "Card X of N", or EmptyMessage.
func (s Session[T]) Progress() string {
	if s.Empty() {
		return EmptyMessage
	}
	return fmt.Sprintf("Card %d of %d", s.index+1, len(s.order))
}

// Flip toggles which face is showing. The index never changes.
func (s Session[T]) Flip() Session[T] {
	if s.Empty() {
		return s
	}
	s.flipped = !s.flipped
	return s
}

// Next advances to the following card and shows its front.
// On the last card it is a no-op and keeps the flipped flag.
func (s Session[T]) Next() Session[T] {
	if s.index >= len(s.order)-1 {
		return s
	}
	s.index++
	s.flipped = false
	return s
}

// Previous steps back to the preceding card and shows its front.
// On the first card it is a no-op and keeps the flipped flag.
func (s Session[T]) Previous() Session[T] {
	if s.index <= 0 {
		return s
	}
	s.index--
	s.flipped = false
	return s
}

// Reshuffle draws a new random order of the original cards and returns to
// the front of the first one.
func (s Session[T]) Reshuffle(rng Rand) Session[T] {
	if s.Empty() {
		return s
	}
	s.order = shuffled(s.source, rng)
	s.index = 0
	s.flipped = false
	return s
}
