// Package app wires the configuration, the deck store and the HTTP surface
// together and runs the server until the context is cancelled.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/flashcards-backend/internal/adapter/postgres"
	cardrepo "github.com/heartmarshall/flashcards-backend/internal/adapter/postgres/card"
	deckrepo "github.com/heartmarshall/flashcards-backend/internal/adapter/postgres/deck"
	"github.com/heartmarshall/flashcards-backend/internal/auth"
	"github.com/heartmarshall/flashcards-backend/internal/config"
	cardsvc "github.com/heartmarshall/flashcards-backend/internal/service/card"
	decksvc "github.com/heartmarshall/flashcards-backend/internal/service/deck"
	"github.com/heartmarshall/flashcards-backend/internal/transport/middleware"
	"github.com/heartmarshall/flashcards-backend/internal/transport/rest"
	"github.com/heartmarshall/flashcards-backend/internal/transport/revalidate"
)

// Run loads the configuration, connects to PostgreSQL and serves HTTP until
// ctx is done, then shuts the server down within the configured timeout.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log, os.Stderr)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer pool.Close()

	if cfg.Database.AutoMigrate {
		if err := postgres.Migrate(ctx, pool, logger); err != nil {
			return err
		}
	}

	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      NewHTTPHandler(pool, cfg, logger),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down", slog.Duration("timeout", cfg.Server.ShutdownTimeout))

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.Server.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}
	logger.Info("stopped")
	return nil
}

// NewHTTPHandler builds the full middleware chain and routes on top of pool.
func NewHTTPHandler(pool *pgxpool.Pool, cfg *config.Config, logger *slog.Logger) http.Handler {
	decks := deckrepo.New(pool)
	cards := cardrepo.New(pool)
	txm := postgres.NewTxManager(pool)
	notify := revalidate.Notifier{}

	deckService := decksvc.NewService(logger, decks, cards, notify)
	cardService := cardsvc.NewService(logger, decks, cards, notify, txm)

	jwt := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.Issuer, cfg.Auth.Audience, cfg.Auth.TokenTTL)

	mux := http.NewServeMux()
	rest.Register(mux,
		rest.NewDeckHandler(deckService, nil, logger),
		rest.NewCardHandler(cardService, logger),
		rest.NewHealthHandler(pool, BuildVersion(), logger),
	)

	return middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID,
		middleware.CORS(cfg.CORS),
		middleware.Auth(jwt),
		middleware.Logger(logger),
		revalidate.Middleware,
	)(mux)
}
