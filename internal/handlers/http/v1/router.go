package v1

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/KirkDiggler/rpg-tale/internal/errors"
	mw "github.com/KirkDiggler/rpg-tale/internal/handlers/http/middleware"
)

const maxBodyBytes = 64 << 10

// RouterConfig holds what the HTTP API needs
type RouterConfig struct {
	SessionHandler *SessionHandler
	RateLimit      mw.RateLimiterConfig
	Logger         *slog.Logger
}

// NewRouter builds the HTTP API: /healthz plus the session API under /api/v1.
func NewRouter(cfg *RouterConfig) (http.Handler, error) {
	if cfg == nil || cfg.SessionHandler == nil {
		return nil, errors.InvalidArgument("session handler is required")
	}

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(mw.RequestLogger(cfg.Logger))
	r.Use(chimw.Recoverer)
	r.Use(mw.NewRateLimiter(cfg.RateLimit).Middleware)
	r.Use(mw.MaxBodySize(maxBodyBytes))

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Route("/api/v1", cfg.SessionHandler.Routes)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, errors.NotFoundf("no route for %s %s", r.Method, r.URL.Path))
	})

	return r, nil
}
