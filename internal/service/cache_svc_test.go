package service

import (
	"context"
	"testing"
	"time"

	"github.com/lukastechs/youtube-backend/internal/model"
)

func TestMemoryCacheRoundTrip(t *testing.T) {
	ctx := context.Background()
	cache := NewMemoryCache(DefaultCacheTTL)

	snap := &model.ChannelSnapshot{ChannelID: mrBeastID, ChannelName: "MrBeast", Subscribers: 250_000_000}
	cache.Put(ctx, mrBeastID, snap)

	got, ok := cache.Get(ctx, mrBeastID)
	if !ok {
		t.Fatal("expected hit")
	}
	if *got != *snap {
		t.Errorf("retrieved snapshot differs: %+v vs %+v", got, snap)
	}
}

func TestMemoryCacheMissOnAbsent(t *testing.T) {
	cache := NewMemoryCache(DefaultCacheTTL)
	if _, ok := cache.Get(context.Background(), mrBeastID); ok {
		t.Error("expected miss for absent key")
	}
}

func TestMemoryCacheTTLBoundary(t *testing.T) {
	ctx := context.Background()
	storedAt := date("2024-03-10T00:00:00Z")

	tests := []struct {
		name    string
		readAt  time.Time
		wantHit bool
	}{
		{"one millisecond before expiry", storedAt.Add(DefaultCacheTTL - time.Millisecond), true},
		{"at exactly the TTL", storedAt.Add(DefaultCacheTTL), false},
		{"well past expiry", storedAt.Add(48 * time.Hour), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cache := NewMemoryCache(DefaultCacheTTL)
			cache.now = func() time.Time { return storedAt }
			cache.Put(ctx, mrBeastID, &model.ChannelSnapshot{ChannelID: mrBeastID})

			cache.now = func() time.Time { return tt.readAt }
			_, ok := cache.Get(ctx, mrBeastID)
			if ok != tt.wantHit {
				t.Errorf("hit = %v, want %v", ok, tt.wantHit)
			}
		})
	}
}

func TestMemoryCacheExpiredEntryStaysUntilOverwritten(t *testing.T) {
	ctx := context.Background()
	now := date("2024-03-10T00:00:00Z")
	cache := NewMemoryCache(DefaultCacheTTL)
	cache.now = func() time.Time { return now }

	cache.Put(ctx, mrBeastID, &model.ChannelSnapshot{ChannelID: mrBeastID, Subscribers: 1})

	// Past expiry: reads miss, but the entry is not evicted.
	now = now.Add(DefaultCacheTTL + time.Hour)
	if _, ok := cache.Get(ctx, mrBeastID); ok {
		t.Fatal("expected miss after expiry")
	}
	if cache.Len() != 1 {
		t.Errorf("len = %d, want 1 (lazy invalidation keeps expired entries)", cache.Len())
	}

	// Overwrite re-stamps the entry and restores freshness.
	cache.Put(ctx, mrBeastID, &model.ChannelSnapshot{ChannelID: mrBeastID, Subscribers: 2})
	got, ok := cache.Get(ctx, mrBeastID)
	if !ok {
		t.Fatal("expected hit after overwrite")
	}
	if got.Subscribers != 2 {
		t.Errorf("subscribers = %d, want 2 (overwrite wins)", got.Subscribers)
	}
	if cache.Len() != 1 {
		t.Errorf("len = %d, want 1", cache.Len())
	}
}
