// Package card implements the flashcard repository using PostgreSQL.
// Cards carry no owner column; ownership is always resolved through the
// parent deck.
package card

import (
	"context"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"

	"github.com/heartmarshall/flashcards-backend/internal/adapter/postgres"
	"github.com/heartmarshall/flashcards-backend/internal/domain"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var columns = []string{"id", "deck_id", "front", "back", "created_at", "updated_at"}

// Repo provides card persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new card repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type row struct {
	ID        int64     `db:"id"`
	DeckID    int64     `db:"deck_id"`
	Front     string    `db:"front"`
	Back      string    `db:"back"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// ListByDeck returns the cards of one deck in creation order.
func (r *Repo) ListByDeck(ctx context.Context, deckID int64) ([]domain.Card, error) {
	return r.list(ctx, sq.Eq{"deck_id": deckID})
}

// ListByDecks returns the cards of several decks (batch for deck listings),
// grouped by deck and in creation order within each deck.
func (r *Repo) ListByDecks(ctx context.Context, deckIDs []int64) ([]domain.Card, error) {
	if len(deckIDs) == 0 {
		return []domain.Card{}, nil
	}
	return r.list(ctx, sq.Eq{"deck_id": deckIDs})
}

func (r *Repo) list(ctx context.Context, where sq.Eq) ([]domain.Card, error) {
	query, args, err := psql.
		Select(columns...).
		From("cards").
		Where(where).
		OrderBy("deck_id", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list cards query: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list cards: %w", err)
	}

	cards := make([]domain.Card, len(rows))
	for i, rw := range rows {
		cards[i] = rw.toDomain()
	}
	return cards, nil
}

// GetOwned returns a card whose parent deck is owned by userID.
// The owner is read from the joined deck row, never from caller input.
// Returns domain.ErrNotFound if the card does not exist or its deck belongs
// to another user.
func (r *Repo) GetOwned(ctx context.Context, userID string, cardID int64) (*domain.Card, error) {
	query, args, err := psql.
		Select(qualified("c")...).
		From("cards c").
		Join("decks d ON d.id = c.deck_id").
		Where(sq.Eq{"c.id": cardID, "d.user_id": userID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get card query: %w", err)
	}

	c, err := scanCard(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "card", cardID)
	}
	return c, nil
}

// Create inserts a card into deckID. A missing deck surfaces as
// domain.ErrNotFound through the foreign key.
func (r *Repo) Create(ctx context.Context, deckID int64, front, back string) (*domain.Card, error) {
	query, args, err := psql.
		Insert("cards").
		Columns("deck_id", "front", "back").
		Values(deckID, front, back).
		Suffix(returning()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build create card query: %w", err)
	}

	c, err := scanCard(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "deck", deckID)
	}
	return c, nil
}

// Update replaces both faces of a card and bumps its updated_at.
func (r *Repo) Update(ctx context.Context, cardID int64, front, back string) (*domain.Card, error) {
	query, args, err := psql.
		Update("cards").
		Set("front", front).
		Set("back", back).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": cardID}).
		Suffix(returning()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update card query: %w", err)
	}

	c, err := scanCard(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "card", cardID)
	}
	return c, nil
}

// Delete removes a card. Returns domain.ErrNotFound if zero rows were affected.
func (r *Repo) Delete(ctx context.Context, cardID int64) error {
	query, args, err := psql.
		Delete("cards").
		Where(sq.Eq{"id": cardID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete card query: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "card", cardID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("card %d: %w", cardID, domain.ErrNotFound)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Scan helpers
// ---------------------------------------------------------------------------

func returning() string {
	return "RETURNING " + strings.Join(columns, ", ")
}

func qualified(alias string) []string {
	out := make([]string, len(columns))
	for i, c := range columns {
		out[i] = alias + "." + c
	}
	return out
}

func scanCard(rw pgx.Row) (*domain.Card, error) {
	var r row
	if err := rw.Scan(&r.ID, &r.DeckID, &r.Front, &r.Back, &r.CreatedAt, &r.UpdatedAt); err != nil {
		return nil, err
	}
	c := r.toDomain()
	return &c, nil
}

func (r row) toDomain() domain.Card {
	return domain.Card{
		ID:        r.ID,
		DeckID:    r.DeckID,
		Front:     r.Front,
		Back:      r.Back,
		CreatedAt: r.CreatedAt.UTC(),
		UpdatedAt: r.UpdatedAt.UTC(),
	}
}
