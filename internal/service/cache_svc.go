package service

import (
	"context"
	"sync"
	"time"

	"github.com/lukastechs/youtube-backend/internal/model"
)

// DefaultCacheTTL bounds how long a stored snapshot is served before the
// upstream is consulted again.
const DefaultCacheTTL = 24 * time.Hour

// SnapshotCache memoizes normalized channel snapshots keyed by canonical
// channel ID. Implementations must be safe for concurrent use; the
// read-then-write sequence around a miss is deliberately not serialized
// (two concurrent misses may both fetch, last write wins).
type SnapshotCache interface {
	Get(ctx context.Context, channelID string) (*model.ChannelSnapshot, bool)
	Put(ctx context.Context, channelID string, snap *model.ChannelSnapshot)
}

type cacheEntry struct {
	snapshot *model.ChannelSnapshot
	storedAt time.Time
}

// MemoryCache is the default process-local SnapshotCache. Expiry is lazy: an
// entry older than the TTL reads as a miss but stays in the map until the
// next successful fetch for that key overwrites it. No size bound and no
// background sweep; unbounded growth is accepted at this scale.
type MemoryCache struct {
	mu      sync.RWMutex
	entries map[string]cacheEntry
	ttl     time.Duration
	now     func() time.Time
}

func NewMemoryCache(ttl time.Duration) *MemoryCache {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &MemoryCache{
		entries: make(map[string]cacheEntry),
		ttl:     ttl,
		now:     time.Now,
	}
}

// Get returns the stored snapshot, or a miss when the key is absent or the
// entry has aged past the TTL. Expired entries are not evicted here.
func (c *MemoryCache) Get(_ context.Context, channelID string) (*model.ChannelSnapshot, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, ok := c.entries[channelID]
	if !ok {
		return nil, false
	}
	if c.now().Sub(entry.storedAt) >= c.ttl {
		return nil, false
	}
	return entry.snapshot, true
}

// Put overwrites any existing entry for the key, stamped at the current
// instant.
func (c *MemoryCache) Put(_ context.Context, channelID string, snap *model.ChannelSnapshot) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[channelID] = cacheEntry{
		snapshot: snap,
		storedAt: c.now(),
	}
}

// Len reports the number of stored entries, expired ones included.
func (c *MemoryCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
