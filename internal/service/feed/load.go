package feed

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/foundersapp/founders-backend/internal/domain"
)

// Load performs a fresh full feed assembly: list every post newest-first,
// batch-resolve the authors, and join each post with its author snapshot.
// The result replaces the cache wholesale.
//
// A post query failure aborts the load and leaves the cache untouched. An
// author resolution failure degrades that post's entries to fallback
// defaults instead of failing the feed.
func (s *Service) Load(ctx context.Context) ([]domain.FeedEntry, error) {
	posts, err := s.posts.ListOrdered(ctx)
	if err != nil {
		return nil, fmt.Errorf("feed: list posts: %w", err)
	}

	loader := s.newAuthorLoader()

	// Register every key before resolving any thunk so the loader can
	// collapse the lookups into one batched query.
	thunks := make([]func() (*domain.Profile, error), len(posts))
	for i, p := range posts {
		thunks[i] = loader.Load(ctx, p.UserID)
	}

	entries := make([]domain.FeedEntry, len(posts))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.cfg.ResolveConcurrency)
	for i := range posts {
		g.Go(func() error {
			author, err := thunks[i]()
			if err != nil {
				s.log.WarnContext(gctx, "author resolution failed, using fallback",
					slog.String("post_id", posts[i].ID.String()),
					slog.String("user_id", posts[i].UserID.String()),
					slog.Any("error", err),
				)
				author = nil
			}
			entries[i] = domain.NewFeedEntry(posts[i], author)
			return nil
		})
	}
	// Workers never return errors; degraded authors become fallbacks.
	_ = g.Wait()

	s.cache.Replace(entries)

	out := make([]domain.FeedEntry, len(entries))
	copy(out, entries)
	return out, nil
}
