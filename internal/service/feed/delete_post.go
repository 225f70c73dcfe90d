package feed

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/foundersapp/founders-backend/internal/domain"
	"github.com/foundersapp/founders-backend/pkg/ctxutil"
)

// DeletePost removes a post owned by the authenticated user and
// optimistically drops it from the cached feed.
//
// Ownership is re-verified here against the stored record, not trusted from
// the caller. A non-owner gets ErrForbidden and the store is untouched.
func (s *Service) DeletePost(ctx context.Context, postID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	post, err := s.posts.GetByID(ctx, postID)
	if err != nil {
		return fmt.Errorf("feed: get post: %w", err)
	}
	if post.UserID != userID {
		return domain.ErrForbidden
	}

	version := s.cache.Version()

	if err := s.posts.Delete(ctx, postID); err != nil {
		return fmt.Errorf("feed: delete post: %w", err)
	}

	if !s.cache.RemoveIf(version, postID) {
		s.log.InfoContext(ctx, "feed reloaded during delete, optimistic patch dropped",
			slog.String("post_id", postID.String()),
		)
	}

	s.log.InfoContext(ctx, "post deleted",
		slog.String("post_id", postID.String()),
		slog.String("user_id", userID.String()),
	)
	return nil
}
