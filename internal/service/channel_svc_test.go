package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/lukastechs/youtube-backend/internal/youtube"
)

var fixedNow = date("2024-03-10T00:00:00Z")

func mrBeastChannel() *youtube.Channel {
	return &youtube.Channel{
		ID:           mrBeastID,
		Title:        "MrBeast",
		Description:  "I make videos.",
		PublishedAt:  "2012-02-20T00:00:00Z",
		ThumbnailURL: "https://yt3.ggpht.com/mrbeast.jpg",
		Country:      "US",
		Subscribers:  250_000_000,
	}
}

func newTestService(api *fakeAPI) (*ChannelService, *MemoryCache) {
	cache := NewMemoryCache(DefaultCacheTTL)
	cache.now = func() time.Time { return fixedNow }
	svc := NewChannelService(NewResolverService(api), api, cache)
	svc.now = func() time.Time { return fixedNow }
	return svc, cache
}

func TestLookupCanonicalID(t *testing.T) {
	api := &fakeAPI{channels: map[string]*youtube.Channel{mrBeastID: mrBeastChannel()}}
	svc, _ := newTestService(api)

	snap, err := svc.Lookup(context.Background(), mrBeastID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if api.channelCalls != 1 || api.searchCalls != 0 {
		t.Errorf("calls = %d metadata / %d search, want 1 / 0", api.channelCalls, api.searchCalls)
	}
	if snap.ChannelID != mrBeastID {
		t.Errorf("channel_id = %q, want %q", snap.ChannelID, mrBeastID)
	}
	if snap.ChannelName != "MrBeast" {
		t.Errorf("channel_name = %q, want MrBeast", snap.ChannelName)
	}
	if snap.CreationDate != "2012-02-20T00:00:00Z" {
		t.Errorf("creation_date = %q", snap.CreationDate)
	}
	if snap.AccountAge != "12 years, 0 months, 19 days" {
		t.Errorf("account_age = %q, want %q", snap.AccountAge, "12 years, 0 months, 19 days")
	}
	if snap.AgeDays != 4402 {
		t.Errorf("age_days = %d, want 4402", snap.AgeDays)
	}
	if snap.VerificationStatus != "Verified" {
		t.Errorf("verification_status = %q, want Verified", snap.VerificationStatus)
	}
	if snap.Accuracy != AccuracyLabel {
		t.Errorf("accuracy = %q, want %q", snap.Accuracy, AccuracyLabel)
	}
	if snap.Country != "US" {
		t.Errorf("country = %q, want US", snap.Country)
	}
	if snap.IsCached {
		t.Error("fresh snapshot reported as cached")
	}
}

func TestLookupHandleResolvesThenFetches(t *testing.T) {
	api := &fakeAPI{
		channels: map[string]*youtube.Channel{mrBeastID: mrBeastChannel()},
		handles:  map[string]string{"MrBeast": mrBeastID},
	}
	svc, _ := newTestService(api)

	snap, err := svc.Lookup(context.Background(), "@MrBeast")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if api.searchCalls != 1 || api.channelCalls != 1 {
		t.Errorf("calls = %d search / %d metadata, want 1 / 1", api.searchCalls, api.channelCalls)
	}
	if snap.ChannelID != mrBeastID {
		t.Errorf("channel_id = %q, want %q", snap.ChannelID, mrBeastID)
	}
}

func TestLookupCacheHit(t *testing.T) {
	api := &fakeAPI{channels: map[string]*youtube.Channel{mrBeastID: mrBeastChannel()}}
	svc, _ := newTestService(api)
	ctx := context.Background()

	first, err := svc.Lookup(ctx, mrBeastID)
	if err != nil {
		t.Fatalf("first lookup: %v", err)
	}

	second, err := svc.Lookup(ctx, mrBeastID)
	if err != nil {
		t.Fatalf("second lookup: %v", err)
	}
	if api.channelCalls != 1 {
		t.Errorf("metadata calls = %d, want 1 (second served from cache)", api.channelCalls)
	}
	if !second.IsCached {
		t.Error("cache hit not marked is_cached")
	}

	// Aside from the cache-hit marker, the served snapshot is identical to
	// the one originally stored.
	cmp := *second
	cmp.IsCached = false
	if cmp != *first {
		t.Errorf("cached snapshot differs from stored: %+v vs %+v", cmp, *first)
	}
	if first.IsCached {
		t.Error("stored snapshot was mutated by the cache hit")
	}
}

func TestLookupCacheKeyedByResolvedID(t *testing.T) {
	api := &fakeAPI{
		channels: map[string]*youtube.Channel{mrBeastID: mrBeastChannel()},
		handles:  map[string]string{"MrBeast": mrBeastID},
	}
	svc, _ := newTestService(api)
	ctx := context.Background()

	if _, err := svc.Lookup(ctx, "@MrBeast"); err != nil {
		t.Fatalf("handle lookup: %v", err)
	}
	snap, err := svc.Lookup(ctx, mrBeastID)
	if err != nil {
		t.Fatalf("canonical lookup: %v", err)
	}

	// The handle and its canonical ID share one cache entry.
	if api.channelCalls != 1 {
		t.Errorf("metadata calls = %d, want 1", api.channelCalls)
	}
	if !snap.IsCached {
		t.Error("canonical lookup after handle lookup should hit the cache")
	}
}

func TestLookupCacheExpiryRefetches(t *testing.T) {
	api := &fakeAPI{channels: map[string]*youtube.Channel{mrBeastID: mrBeastChannel()}}
	svc, cache := newTestService(api)
	ctx := context.Background()

	if _, err := svc.Lookup(ctx, mrBeastID); err != nil {
		t.Fatalf("first lookup: %v", err)
	}

	later := fixedNow.Add(DefaultCacheTTL)
	cache.now = func() time.Time { return later }
	svc.now = func() time.Time { return later }

	snap, err := svc.Lookup(ctx, mrBeastID)
	if err != nil {
		t.Fatalf("second lookup: %v", err)
	}
	if api.channelCalls != 2 {
		t.Errorf("metadata calls = %d, want 2 (entry expired)", api.channelCalls)
	}
	if snap.IsCached {
		t.Error("refetched snapshot reported as cached")
	}
}

func TestLookupNotFound(t *testing.T) {
	api := &fakeAPI{channels: map[string]*youtube.Channel{}}
	svc, _ := newTestService(api)

	_, err := svc.Lookup(context.Background(), "UCdeadbeefdeadbeefdead00")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("error = %v, want ErrNotFound", err)
	}
}

func TestLookupUpstreamStatusForwarded(t *testing.T) {
	api := &fakeAPI{channelErr: &youtube.StatusError{Code: 403}}
	svc, _ := newTestService(api)

	_, err := svc.Lookup(context.Background(), mrBeastID)
	var statusErr *youtube.StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("error = %v, want *youtube.StatusError", err)
	}
	if statusErr.Code != 403 {
		t.Errorf("status = %d, want 403", statusErr.Code)
	}
}

func TestLookupVerificationThreshold(t *testing.T) {
	tests := []struct {
		name        string
		subscribers int64
		hidden      bool
		wantStatus  string
		wantSubs    int64
	}{
		{"at threshold", 100_000, false, "Verified", 100_000},
		{"below threshold", 99_999, false, "Not Verified", 99_999},
		{"hidden count defaults to zero", 5_000_000, true, "Not Verified", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ch := mrBeastChannel()
			ch.Subscribers = tt.subscribers
			ch.SubscribersHidden = tt.hidden
			api := &fakeAPI{channels: map[string]*youtube.Channel{mrBeastID: ch}}
			svc, _ := newTestService(api)

			snap, err := svc.Lookup(context.Background(), mrBeastID)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if snap.VerificationStatus != tt.wantStatus {
				t.Errorf("verification_status = %q, want %q", snap.VerificationStatus, tt.wantStatus)
			}
			if snap.Subscribers != tt.wantSubs {
				t.Errorf("subscribers = %d, want %d", snap.Subscribers, tt.wantSubs)
			}
		})
	}
}

func TestLookupMalformedCreationDate(t *testing.T) {
	ch := mrBeastChannel()
	ch.PublishedAt = "not-a-date"
	api := &fakeAPI{channels: map[string]*youtube.Channel{mrBeastID: ch}}
	svc, cache := newTestService(api)

	_, err := svc.Lookup(context.Background(), mrBeastID)
	if err == nil {
		t.Fatal("expected error for malformed creation date")
	}
	if errors.Is(err, ErrInvalidInput) || errors.Is(err, ErrNotFound) {
		t.Errorf("malformed upstream payload misclassified as client error: %v", err)
	}
	if cache.Len() != 0 {
		t.Error("failed normalization must not populate the cache")
	}
}

func TestLookupInvalidInputSkipsNetwork(t *testing.T) {
	api := &fakeAPI{}
	svc, _ := newTestService(api)

	_, err := svc.Lookup(context.Background(), "")
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("error = %v, want ErrInvalidInput", err)
	}
	if api.searchCalls != 0 || api.channelCalls != 0 {
		t.Errorf("calls = %d search / %d metadata, want 0 / 0", api.searchCalls, api.channelCalls)
	}
}
