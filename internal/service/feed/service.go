// Package feed implements feed assembly and post mutations.
//
// Profiles and posts are separate, independently mutable records; the feed
// is a denormalized read-time join of the two, never a stored join. The
// in-memory feed cache is the only shared mutable state: full loads replace
// it wholesale, mutations patch it optimistically under a version guard.
package feed

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/foundersapp/founders-backend/internal/config"
	"github.com/foundersapp/founders-backend/internal/domain"
)

// postRepo defines the post repository interface needed by this service.
type postRepo interface {
	ListOrdered(ctx context.Context) ([]domain.Post, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Post, error)
	Create(ctx context.Context, userID uuid.UUID, content string) (*domain.Post, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// profileRepo defines the profile repository interface needed by this service.
type profileRepo interface {
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Profile, error)
}

// Service assembles the feed and coordinates post mutations.
type Service struct {
	log      *slog.Logger
	posts    postRepo
	profiles profileRepo
	cache    *Cache
	cfg      config.FeedConfig
}

// NewService creates a new feed service instance.
func NewService(logger *slog.Logger, posts postRepo, profiles profileRepo, cfg config.FeedConfig) *Service {
	return &Service{
		log:      logger.With("service", "feed"),
		posts:    posts,
		profiles: profiles,
		cache:    NewCache(),
		cfg:      cfg,
	}
}

// Current returns the in-memory feed as of the last load or optimistic
// patch, with its version stamp. It never touches the store.
func (s *Service) Current() ([]domain.FeedEntry, uint64) {
	return s.cache.Snapshot()
}
