// Package deck implements the Deck repository using PostgreSQL.
// Every query that takes a userID filters on decks.user_id, so a deck owned by
// someone else is indistinguishable from a missing one.
package deck

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

var columns = []string{"id", "user_id", "name", "description", "created_at", "updated_at"}

// bumpUpdatedAt never moves updated_at backwards, even if the server clock does.
var bumpUpdatedAt = sq.Expr("GREATEST(updated_at, now())")

// Repo provides deck persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new deck repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type row struct {
	ID          int64     `db:"id"`
	UserID      string    `db:"user_id"`
	Name        string    `db:"name"`
	Description *string   `db:"description"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

// ListByUser returns all decks owned by userID, most recently touched first.
// Ties on updated_at are broken by id descending.
// Returns an empty slice (not nil) when the user has no decks.
func (r *Repo) ListByUser(ctx context.Context, userID string) ([]domain.Deck, error) {
	query, args, err := psql.
		Select(columns...).
		From("decks").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("updated_at DESC", "id DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list decks query: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list decks: %w", err)
	}

	decks := make([]domain.Deck, len(rows))
	for i, rw := range rows {
		decks[i] = rw.toDomain()
	}
	return decks, nil
}

// GetByID returns a deck owned by userID without its cards.
// Returns domain.ErrNotFound if the deck does not exist or belongs to another user.
func (r *Repo) GetByID(ctx context.Context, userID string, deckID int64) (*domain.Deck, error) {
	query, args, err := psql.
		Select(columns...).
		From("decks").
		Where(sq.Eq{"id": deckID, "user_id": userID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get deck query: %w", err)
	}

	d, err := scanDeck(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "deck", deckID)
	}
	return d, nil
}

// Create inserts a new deck owned by userID.
func (r *Repo) Create(ctx context.Context, userID, name string, description *string) (*domain.Deck, error) {
	query, args, err := psql.
		Insert("decks").
		Columns("user_id", "name", "description").
		Values(userID, name, description).
		Suffix(returning()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build create deck query: %w", err)
	}

	d, err := scanDeck(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "deck", 0)
	}
	return d, nil
}

// Update replaces name and description of a deck owned by userID and bumps
// its updated_at. Returns domain.ErrNotFound when no such deck is owned by userID.
func (r *Repo) Update(ctx context.Context, userID string, deckID int64, name string, description *string) (*domain.Deck, error) {
	query, args, err := psql.
		Update("decks").
		Set("name", name).
		Set("description", description).
		Set("updated_at", bumpUpdatedAt).
		Where(sq.Eq{"id": deckID, "user_id": userID}).
		Suffix(returning()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update deck query: %w", err)
	}

	d, err := scanDeck(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "deck", deckID)
	}
	return d, nil
}

// Delete removes a deck owned by userID. Its cards go with it through the
// ON DELETE CASCADE foreign key, inside the same statement.
// Returns domain.ErrNotFound if zero rows were affected.
func (r *Repo) Delete(ctx context.Context, userID string, deckID int64) error {
	query, args, err := psql.
		Delete("decks").
		Where(sq.Eq{"id": deckID, "user_id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete deck query: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "deck", deckID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("deck %d: %w", deckID, domain.ErrNotFound)
	}
	return nil
}

// Touch bumps updated_at of a deck after one of its cards changed.
// It does not check ownership: callers resolve the deck through an
// ownership-filtered read in the same transaction first.
func (r *Repo) Touch(ctx context.Context, deckID int64) error {
	query, args, err := psql.
		Update("decks").
		Set("updated_at", bumpUpdatedAt).
		Where(sq.Eq{"id": deckID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build touch deck query: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "deck", deckID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("deck %d: %w", deckID, domain.ErrNotFound)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Scan helpers
// ---------------------------------------------------------------------------

func returning() string {
	return "RETURNING " + strings.Join(columns, ", ")
}

func scanDeck(rw pgx.Row) (*domain.Deck, error) {
	var r row
	err := rw.Scan(&r.ID, &r.UserID, &r.Name, &r.Description, &r.CreatedAt, &r.UpdatedAt)
	if err != nil {
		return nil, err
	}
	d := r.toDomain()
	return &d, nil
}

func (r row) toDomain() domain.Deck {
	return domain.Deck{
		ID:          r.ID,
		UserID:      r.UserID,
		Name:        r.Name,
		Description: r.Description,
		CreatedAt:   r.CreatedAt.UTC(),
		UpdatedAt:   r.UpdatedAt.UTC(),
	}
}
