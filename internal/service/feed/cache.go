package feed

import (
	"sync"

	"github.com/google/uuid"

	"github.com/foundersapp/founders-backend/internal/domain"
)

// Cache is the versioned in-memory feed replica.
//
// Replace installs a full reload and bumps the version. Optimistic patches
// (PrependIf, RemoveIf) carry the version observed when the mutation began
// and are dropped if a reload completed in between, so a patch can never
// clobber a newer full snapshot.
type Cache struct {
	mu      sync.RWMutex
	version uint64
	entries []domain.FeedEntry
}

func NewCache() *Cache {
	return &Cache{entries: []domain.FeedEntry{}}
}

// Snapshot returns a copy of the cached feed and its version.
func (c *Cache) Snapshot() ([]domain.FeedEntry, uint64) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]domain.FeedEntry, len(c.entries))
	copy(out, c.entries)
	return out, c.version
}

// Version returns the current version without copying entries.
func (c *Cache) Version() uint64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.version
}

// Replace installs entries as the new feed and returns the new version.
func (c *Cache) Replace(entries []domain.FeedEntry) uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = entries
	c.version++
	return c.version
}

// PrependIf puts entry at the head of the feed if the version still matches.
// It reports whether the patch was applied.
func (c *Cache) PrependIf(version uint64, entry domain.FeedEntry) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.version != version {
		return false
	}
	c.entries = append([]domain.FeedEntry{entry}, c.entries...)
	return true
}

// RemoveIf removes the entry with the given post ID if the version still
// matches. It reports whether the patch was applied; a matching version with
// no such entry still counts as applied.
func (c *Cache) RemoveIf(version uint64, postID uuid.UUID) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.version != version {
		return false
	}
	kept := c.entries[:0]
	for _, e := range c.entries {
		if e.ID != postID {
			kept = append(kept, e)
		}
	}
	c.entries = kept
	return true
}
