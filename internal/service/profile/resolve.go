package profile

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/foundersapp/founders-backend/internal/domain"
	"github.com/foundersapp/founders-backend/pkg/ctxutil"
)

// Resolve fetches the profile document for userID. It returns the full
// record on success and domain.ErrNotFound when no profile exists; the
// caller decides fallback behavior because profile data is auxiliary to
// the content being shown.
func (s *Service) Resolve(ctx context.Context, userID uuid.UUID) (*domain.Profile, error) {
	p, err := s.profiles.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("profile.Resolve: %w", err)
	}
	return p, nil
}

// Badge returns the avatar-initial glyph for the signed-in user. Any
// resolution failure degrades to the unknown-initial sentinel: the badge is
// decoration and must never fail the session start.
func (s *Service) Badge(ctx context.Context) string {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.UnknownInitial
	}

	p, err := s.profiles.GetByID(ctx, userID)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			s.log.WarnContext(ctx, "badge resolution failed",
				slog.String("user_id", userID.String()),
				slog.String("error", err.Error()),
			)
		}
		return domain.UnknownInitial
	}

	return p.Initial()
}
