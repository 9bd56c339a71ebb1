// Package client is a small HTTP client for the flashcards JSON API, used by
// the terminal client.
package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/heartmarshall/flashcards-backend/internal/domain"
)

const retryDelay = 500 * time.Millisecond

// APIError is a non-2xx answer the client has no sentinel for.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api: status %d", e.Status)
	}
	return fmt.Sprintf("api: status %d: %s", e.Status, e.Message)
}

// Client talks to one flashcards server on behalf of one bearer token.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	log        *slog.Logger
}

// New creates a Client for the server at baseURL. An empty token sends
// anonymous requests, which the API rejects for every deck endpoint.
func New(baseURL, token string, logger *slog.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		token:      token,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		log:        logger.With("adapter", "client"),
	}
}

// ListDecks returns the caller's decks, most recently modified first, with
// their cards attached.
func (c *Client) ListDecks(ctx context.Context) ([]domain.Deck, error) {
	var resp deckListResponse
	if err := c.get(ctx, "/api/decks", &resp); err != nil {
		return nil, fmt.Errorf("list decks: %w", err)
	}

	decks := make([]domain.Deck, len(resp.Decks))
	for i, d := range resp.Decks {
		decks[i] = d.toDomain()
	}
	return decks, nil
}

// GetDeck returns one deck with its cards in id order. A deck that does not
// exist or belongs to someone else yields domain.ErrNotFound.
func (c *Client) GetDeck(ctx context.Context, deckID int64) (*domain.Deck, error) {
	var resp deckResponse
	if err := c.get(ctx, deckPath(deckID), &resp); err != nil {
		return nil, fmt.Errorf("get deck %d: %w", deckID, err)
	}
	d := resp.toDomain()
	return &d, nil
}

// StudyDeck returns the deck and its cards in the server's shuffled order.
func (c *Client) StudyDeck(ctx context.Context, deckID int64) (*domain.Deck, []domain.Card, error) {
	var resp studyResponse
	if err := c.get(ctx, deckPath(deckID)+"/study", &resp); err != nil {
		return nil, nil, fmt.Errorf("study deck %d: %w", deckID, err)
	}
	d := resp.Deck.toDomain()
	return &d, toCards(resp.Cards), nil
}

func deckPath(deckID int64) string {
	return "/api/decks/" + strconv.FormatInt(deckID, 10)
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.doWithRetry(ctx, req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return statusError(resp)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode json: %w", err)
	}
	return nil
}

// doWithRetry executes a GET with a single retry on 5xx or network errors.
func (c *Client) doWithRetry(ctx context.Context, req *http.Request) (*http.Response, error) {
	resp, err := c.httpClient.Do(req)

	shouldRetry := err != nil || resp.StatusCode >= http.StatusInternalServerError
	if !shouldRetry || ctx.Err() != nil {
		return resp, err
	}

	reason := "network error"
	if err == nil {
		reason = "status " + strconv.Itoa(resp.StatusCode)
		resp.Body.Close()
	}
	c.log.WarnContext(ctx, "api retry", slog.String("path", req.URL.Path), slog.String("reason", reason))

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-time.After(retryDelay):
	}

	return c.httpClient.Do(req)
}

// statusError maps an error response onto the domain sentinels so callers can
// branch with errors.Is.
func statusError(resp *http.Response) error {
	var body errorResponse
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	_ = json.Unmarshal(raw, &body)

	apiErr := &APIError{Status: resp.StatusCode, Message: body.Error}
	switch resp.StatusCode {
	case http.StatusNotFound:
		return errors.Join(domain.ErrNotFound, apiErr)
	case http.StatusUnauthorized:
		return errors.Join(domain.ErrUnauthorized, apiErr)
	case http.StatusBadRequest:
		return errors.Join(domain.ErrValidation, apiErr)
	default:
		return apiErr
	}
}
