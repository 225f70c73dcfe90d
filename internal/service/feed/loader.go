package feed

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/graph-gophers/dataloader/v7"

	"github.com/foundersapp/founders-backend/internal/domain"
)

const (
	maxBatch = 100
	wait     = 2 * time.Millisecond
)

// newAuthorLoader creates a per-call loader that batches author lookups for
// a feed assembly into a single profile query. A missing author resolves to
// a nil profile rather than an error; the entry falls back to defaults.
func (s *Service) newAuthorLoader() *dataloader.Loader[uuid.UUID, *domain.Profile] {
	batchFn := func(ctx context.Context, keys []uuid.UUID) []*dataloader.Result[*domain.Profile] {
		profiles, err := s.profiles.GetByIDs(ctx, keys)
		if err != nil {
			return errorResults[*domain.Profile](len(keys), err)
		}

		byID := make(map[uuid.UUID]*domain.Profile, len(profiles))
		for i := range profiles {
			p := profiles[i] // copy to avoid aliasing
			byID[p.ID] = &p
		}

		results := make([]*dataloader.Result[*domain.Profile], len(keys))
		for i, key := range keys {
			results[i] = &dataloader.Result[*domain.Profile]{Data: byID[key]}
		}
		return results
	}

	return dataloader.NewBatchedLoader(
		batchFn,
		dataloader.WithWait[uuid.UUID, *domain.Profile](wait),
		dataloader.WithBatchCapacity[uuid.UUID, *domain.Profile](maxBatch),
	)
}

// errorResults returns a slice of error results for all keys.
func errorResults[V any](n int, err error) []*dataloader.Result[V] {
	results := make([]*dataloader.Result[V], n)
	for i := range results {
		results[i] = &dataloader.Result[V]{Error: err}
	}
	return results
}
