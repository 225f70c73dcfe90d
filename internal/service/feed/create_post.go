package feed

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/foundersapp/founders-backend/internal/domain"
	"github.com/foundersapp/founders-backend/pkg/ctxutil"
)

// CreatePost validates and persists a new post by the authenticated user,
// then optimistically prepends the joined entry to the cached feed.
//
// Blank content (empty or whitespace-only) is rejected before any store
// call. The author snapshot for the optimistic entry is resolved inline so
// the new entry carries the same fallback semantics as a full load.
func (s *Service) CreatePost(ctx context.Context, content string) (*domain.FeedEntry, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if strings.TrimSpace(content) == "" {
		return nil, domain.NewValidationError("content", "cannot be empty")
	}
	if utf8.RuneCountInString(content) > s.cfg.MaxPostLength {
		return nil, domain.NewValidationError("content",
			fmt.Sprintf("must be at most %d characters", s.cfg.MaxPostLength))
	}

	// Version observed before the write; a full reload finishing after this
	// point owns the cache and the optimistic patch is dropped.
	version := s.cache.Version()

	post, err := s.posts.Create(ctx, userID, content)
	if err != nil {
		return nil, fmt.Errorf("feed: create post: %w", err)
	}

	entry := domain.NewFeedEntry(*post, s.resolveAuthor(ctx, post))

	if !s.cache.PrependIf(version, entry) {
		s.log.InfoContext(ctx, "feed reloaded during create, optimistic patch dropped",
			slog.String("post_id", post.ID.String()),
		)
	}

	s.log.InfoContext(ctx, "post created",
		slog.String("post_id", post.ID.String()),
		slog.String("user_id", userID.String()),
	)
	return &entry, nil
}

// resolveAuthor fetches the author profile for a just-created post. Failures
// degrade to a nil author so the entry renders with fallback defaults.
func (s *Service) resolveAuthor(ctx context.Context, post *domain.Post) *domain.Profile {
	profiles, err := s.profiles.GetByIDs(ctx, []uuid.UUID{post.UserID})
	if err != nil || len(profiles) == 0 {
		if err != nil {
			s.log.WarnContext(ctx, "author resolution failed, using fallback",
				slog.String("post_id", post.ID.String()),
				slog.Any("error", err),
			)
		}
		return nil
	}
	return &profiles[0]
}
