package profile

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/foundersapp/founders-backend/internal/domain"
)

// profileRepo defines the profile repository interface needed by this service.
type profileRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Profile, error)
	Update(ctx context.Context, id uuid.UUID, name *string, bio *string) (*domain.Profile, error)
	UpdatePicture(ctx context.Context, id uuid.UUID, url string) (*domain.Profile, error)
}

// Service resolves profiles by user id and handles owner-only profile
// edits. Resolution never caches across calls: every call re-fetches so the
// feed always joins against the current profile state.
type Service struct {
	log      *slog.Logger
	profiles profileRepo
}

// NewService creates a new profile service instance.
func NewService(logger *slog.Logger, profiles profileRepo) *Service {
	return &Service{
		log:      logger.With("service", "profile"),
		profiles: profiles,
	}
}
