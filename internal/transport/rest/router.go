package rest

import (
	"log/slog"
	"net/http"

	"github.com/foundersapp/founders-backend/internal/config"
	"github.com/foundersapp/founders-backend/internal/transport/middleware"
)

// Handlers aggregates all REST handlers needed by the router.
type Handlers struct {
	Auth    *AuthHandler
	Feed    *FeedHandler
	Post    *PostHandler
	Search  *SearchHandler
	Profile *ProfileHandler
	Health  *HealthHandler
}

// authRatePerMinute bounds credential-guessing on the auth endpoints.
const authRatePerMinute = 30

// NewRouter builds the HTTP routing table and wraps it in the middleware
// chain: RequestID -> Recovery -> CORS -> Logger -> Auth. Auth is
// pass-through for anonymous requests; handlers that need an identity
// enforce it themselves.
func NewRouter(h Handlers, validator authService, rl *middleware.RateLimiter, logger *slog.Logger, cfg config.CORSConfig) http.Handler {
	mux := http.NewServeMux()

	// Auth endpoints are rate limited per IP.
	authLimit := rl.Limit(authRatePerMinute)
	mux.Handle("POST /api/auth/register", authLimit(http.HandlerFunc(h.Auth.Register)))
	mux.Handle("POST /api/auth/login", authLimit(http.HandlerFunc(h.Auth.Login)))
	mux.Handle("POST /api/auth/refresh", authLimit(http.HandlerFunc(h.Auth.Refresh)))
	mux.HandleFunc("POST /api/auth/logout", h.Auth.Logout)

	// Feed and posts
	mux.HandleFunc("GET /api/feed", h.Feed.List)
	mux.HandleFunc("POST /api/posts", h.Post.Create)
	mux.HandleFunc("DELETE /api/posts/{id}", h.Post.Delete)

	// Directory
	mux.HandleFunc("GET /api/search", h.Search.Search)
	mux.HandleFunc("GET /api/profiles/me/badge", h.Profile.Badge)
	mux.HandleFunc("GET /api/profiles/{id}", h.Profile.Get)
	mux.HandleFunc("PATCH /api/profiles/me", h.Profile.Update)
	mux.HandleFunc("PUT /api/profiles/me/picture", h.Profile.UpdatePicture)

	// Probes
	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)

	chain := middleware.Chain(
		middleware.RequestID,
		middleware.Recovery(logger),
		middleware.CORS(cfg),
		middleware.Logger(logger),
		middleware.Auth(validator),
	)
	return chain(mux)
}
