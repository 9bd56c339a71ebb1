// Package revalidate carries view invalidation and navigation signals from
// the services to the HTTP response.
//
// Middleware installs a per-request collector in the context. Services call
// Notifier.Invalidate and Notifier.Navigate; the collected signals are written
// as X-Revalidate and X-Navigate headers right before the status line.
package revalidate

import (
	"context"
	"net/http"
	"sync"
)

const (
	HeaderRevalidate = "X-Revalidate"
	HeaderNavigate   = "X-Navigate"
)

type ctxKey struct{}

// Collector accumulates the signals of a single request.
type Collector struct {
	mu       sync.Mutex
	paths    []string
	seen     map[string]struct{}
	navigate string
}

func newCollector() *Collector {
	return &Collector{seen: make(map[string]struct{})}
}

func (c *Collector) invalidate(path string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.seen[path]; ok {
		return
	}
	c.seen[path] = struct{}{}
	c.paths = append(c.paths, path)
}

func (c *Collector) setNavigate(path string) {
	c.mu.Lock()
	c.navigate = path
	c.mu.Unlock()
}

// Paths returns the invalidated paths in emission order, without duplicates.
func (c *Collector) Paths() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]string, len(c.paths))
	copy(out, c.paths)
	return out
}

// Navigation returns the navigation target, or "" when none was requested.
func (c *Collector) Navigation() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.navigate
}

// WithCollector returns a context carrying a fresh collector.
func WithCollector(ctx context.Context) (context.Context, *Collector) {
	c := newCollector()
	return context.WithValue(ctx, ctxKey{}, c), c
}

// FromContext returns the collector stored in ctx, if any.
func FromContext(ctx context.Context) (*Collector, bool) {
	c, ok := ctx.Value(ctxKey{}).(*Collector)
	return c, ok
}

// Notifier records signals into the request's collector. Calls on a context
// without a collector are dropped.
type Notifier struct{}

// Invalidate marks the view at path as stale.
func (Notifier) Invalidate(ctx context.Context, path string) {
	if c, ok := FromContext(ctx); ok {
		c.invalidate(path)
	}
}

// Navigate asks the client to move to path. The last call wins.
func (Notifier) Navigate(ctx context.Context, path string) {
	if c, ok := FromContext(ctx); ok {
		c.setNavigate(path)
	}
}

// Middleware installs a collector for each request and flushes it into the
// response headers on the first WriteHeader or Write.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, c := WithCollector(r.Context())
		hw := &headerWriter{ResponseWriter: w, collector: c}
		next.ServeHTTP(hw, r.WithContext(ctx))
	})
}

// headerWriter wraps http.ResponseWriter to emit the collected signals.
type headerWriter struct {
	http.ResponseWriter
	collector   *Collector
	wroteHeader bool
}

func (w *headerWriter) WriteHeader(code int) {
	if !w.wroteHeader {
		w.wroteHeader = true
		h := w.Header()
		for _, p := range w.collector.Paths() {
			h.Add(HeaderRevalidate, p)
		}
		if nav := w.collector.Navigation(); nav != "" {
			h.Set(HeaderNavigate, nav)
		}
	}
	w.ResponseWriter.WriteHeader(code)
}

func (w *headerWriter) Write(b []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	return w.ResponseWriter.Write(b)
}

// Unwrap lets http.ResponseController reach the underlying writer.
func (w *headerWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}
