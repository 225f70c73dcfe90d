package profile

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/foundersapp/founders-backend/internal/domain"
	"github.com/foundersapp/founders-backend/pkg/ctxutil"
)

// Update modifies the signed-in user's display name and bio.
// Returns ErrUnauthorized if no identity is present in the context.
func (s *Service) Update(ctx context.Context, input UpdateInput) (*domain.Profile, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	p, err := s.profiles.Update(ctx, userID, input.Name, input.Bio)
	if err != nil {
		return nil, fmt.Errorf("profile.Update: %w", err)
	}

	s.log.InfoContext(ctx, "profile updated",
		slog.String("user_id", userID.String()))

	return p, nil
}

// UpdatePicture sets the signed-in user's profile picture URL.
func (s *Service) UpdatePicture(ctx context.Context, input UpdatePictureInput) (*domain.Profile, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	p, err := s.profiles.UpdatePicture(ctx, userID, input.URL)
	if err != nil {
		return nil, fmt.Errorf("profile.UpdatePicture: %w", err)
	}

	s.log.InfoContext(ctx, "profile picture updated",
		slog.String("user_id", userID.String()))

	return p, nil
}
