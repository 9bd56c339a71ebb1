package middleware

import (
	"net/http"
	"slices"

	"github.com/rs/cors"

	"github.com/heartmarshall/flashcards-backend/internal/config"
	"github.com/heartmarshall/flashcards-backend/internal/transport/revalidate"
)

// CORS returns middleware that handles Cross-Origin Resource Sharing.
// The revalidation and request id headers are exposed to browser clients.
func CORS(cfg config.CORSConfig) Middleware {
	origins := cfg.Origins()
	c := cors.New(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   cfg.Methods(),
		AllowedHeaders:   cfg.Headers(),
		ExposedHeaders:   []string{revalidate.HeaderRevalidate, revalidate.HeaderNavigate, HeaderRequestID},
		AllowCredentials: cfg.AllowCredentials && !slices.Contains(origins, "*"),
		MaxAge:           cfg.MaxAge,
	})
	return func(next http.Handler) http.Handler {
		return c.Handler(next)
	}
}
