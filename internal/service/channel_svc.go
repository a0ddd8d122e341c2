package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/lukastechs/youtube-backend/internal/model"
	"github.com/lukastechs/youtube-backend/internal/youtube"
)

var (
	// ErrInvalidInput marks an identifier that is empty, undecodable, or
	// unresolvable to a canonical channel ID.
	ErrInvalidInput = errors.New("invalid channel identifier")
	// ErrNotFound marks a resolved ID the upstream has no channel for.
	ErrNotFound = errors.New("channel not found")
)

// VerifiedSubscriberThreshold is the inclusive subscriber count at which a
// channel is reported as Verified.
const VerifiedSubscriberThreshold = 100_000

// AccuracyLabel is fixed: the creation date comes straight from the API
// rather than being estimated.
const AccuracyLabel = "exact"

// ChannelService orchestrates an age lookup: resolve the input, check the
// cache under the resolved canonical ID, fetch and normalize on a miss, then
// store the fresh snapshot.
type ChannelService struct {
	resolver *ResolverService
	api      youtube.API
	age      *AgeService
	cache    SnapshotCache
	now      func() time.Time
}

func NewChannelService(resolver *ResolverService, api youtube.API, cache SnapshotCache) *ChannelService {
	return &ChannelService{
		resolver: resolver,
		api:      api,
		age:      NewAgeService(),
		cache:    cache,
		now:      time.Now,
	}
}

// Lookup resolves raw input and returns the channel's age snapshot. Cache
// hits are served verbatim from the stored snapshot (derived fields are not
// recomputed); only the is_cached marker is added, on a copy.
func (s *ChannelService) Lookup(ctx context.Context, raw string) (*model.ChannelSnapshot, error) {
	channelID, err := s.resolver.Resolve(ctx, raw)
	if err != nil {
		return nil, err
	}

	if snap, ok := s.cache.Get(ctx, channelID); ok {
		hit := *snap
		hit.IsCached = true
		return &hit, nil
	}

	ch, err := s.api.ChannelByID(ctx, channelID)
	if err != nil {
		log.Error().Err(err).Str("input", raw).Str("channel_id", channelID).Msg("upstream channel fetch failed")
		return nil, err
	}
	if ch == nil {
		return nil, ErrNotFound
	}

	snap, err := s.normalize(ch)
	if err != nil {
		log.Error().Err(err).Str("channel_id", channelID).Msg("upstream payload normalization failed")
		return nil, err
	}

	s.cache.Put(ctx, channelID, snap)
	return snap, nil
}

func (s *ChannelService) normalize(ch *youtube.Channel) (*model.ChannelSnapshot, error) {
	created, err := time.Parse(time.RFC3339, ch.PublishedAt)
	if err != nil {
		return nil, fmt.Errorf("parse creation date %q: %w", ch.PublishedAt, err)
	}

	age := s.age.ComputeAge(created, s.now())

	subs := ch.Subscribers
	if ch.SubscribersHidden || subs < 0 {
		subs = 0
	}

	verification := "Not Verified"
	if subs >= VerifiedSubscriberThreshold {
		verification = "Verified"
	}

	return &model.ChannelSnapshot{
		ChannelID:          ch.ID,
		ChannelName:        ch.Title,
		ProfileImageURL:    ch.ThumbnailURL,
		CreationDate:       ch.PublishedAt,
		AccountAge:         age.Formatted,
		AgeDays:            age.Days,
		Country:            ch.Country,
		VerificationStatus: verification,
		Accuracy:           AccuracyLabel,
		Subscribers:        subs,
		Description:        ch.Description,
	}, nil
}
