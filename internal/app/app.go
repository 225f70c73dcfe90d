// Package app wires configuration, storage, services, and transport into a
// running HTTP server.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/foundersapp/founders-backend/internal/adapter/postgres"
	postrepo "github.com/foundersapp/founders-backend/internal/adapter/postgres/post"
	profilerepo "github.com/foundersapp/founders-backend/internal/adapter/postgres/profile"
	tokenrepo "github.com/foundersapp/founders-backend/internal/adapter/postgres/token"
	userrepo "github.com/foundersapp/founders-backend/internal/adapter/postgres/user"
	jwtauth "github.com/foundersapp/founders-backend/internal/auth"
	"github.com/foundersapp/founders-backend/internal/config"
	authsvc "github.com/foundersapp/founders-backend/internal/service/auth"
	feedsvc "github.com/foundersapp/founders-backend/internal/service/feed"
	profilesvc "github.com/foundersapp/founders-backend/internal/service/profile"
	searchsvc "github.com/foundersapp/founders-backend/internal/service/search"
	"github.com/foundersapp/founders-backend/internal/transport/middleware"
	"github.com/foundersapp/founders-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, connects to
// the database, assembles services and the HTTP router, and serves until
// ctx is cancelled, then shuts down gracefully.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer pool.Close()

	// Repositories
	profiles := profilerepo.New(pool)
	posts := postrepo.New(pool)
	users := userrepo.New(pool)
	tokens := tokenrepo.New(pool)
	txManager := postgres.NewTxManager(pool)

	// Services
	jwtManager := jwtauth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
	authService := authsvc.NewService(logger, users, profiles, tokens, txManager, jwtManager, cfg.Auth)
	feedService := feedsvc.NewService(logger, posts, profiles, cfg.Feed)
	profileService := profilesvc.NewService(logger, profiles)
	searchService := searchsvc.NewService(logger, profiles)

	// Transport
	handlers := rest.Handlers{
		Auth:    rest.NewAuthHandler(authService, logger),
		Feed:    rest.NewFeedHandler(feedService, logger),
		Post:    rest.NewPostHandler(feedService, logger),
		Search:  rest.NewSearchHandler(searchService, logger),
		Profile: rest.NewProfileHandler(profileService, logger),
		Health:  rest.NewHealthHandler(pool, BuildVersion()),
	}
	rateLimiter := middleware.NewRateLimiter(5 * time.Minute)
	defer rateLimiter.Stop()

	router := rest.NewRouter(handlers, authService, rateLimiter, logger, cfg.CORS)

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	logger.Info("stopped")
	return nil
}
