package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/lukastechs/youtube-backend/internal/model"
)

// RedisCache is an optional SnapshotCache backend for multi-instance
// deployments. If the URL is empty or the connection fails, the client stays
// nil and every operation is a no-op, leaving the caller to fall back to the
// in-memory store.
type RedisCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisCache(redisURL string, ttl time.Duration) *RedisCache {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	cache := &RedisCache{ttl: ttl}

	if redisURL == "" {
		return cache
	}

	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Warn().Err(err).Msg("redis: invalid URL, shared caching disabled")
		return cache
	}

	rdb := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Warn().Err(err).Msg("redis: connection failed, shared caching disabled")
		return cache
	}

	log.Info().Msg("redis: connected, shared caching enabled")
	cache.rdb = rdb
	return cache
}

// Enabled reports whether a Redis connection is active.
func (c *RedisCache) Enabled() bool {
	return c.rdb != nil
}

// Client returns the underlying Redis client for health checks. May be nil.
func (c *RedisCache) Client() *redis.Client {
	return c.rdb
}

func (c *RedisCache) Get(ctx context.Context, channelID string) (*model.ChannelSnapshot, bool) {
	if c.rdb == nil {
		return nil, false
	}
	data, err := c.rdb.Get(ctx, snapshotKey(channelID)).Bytes()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		log.Warn().Err(err).Str("channel_id", channelID).Msg("redis: snapshot get failed")
		return nil, false
	}

	var snap model.ChannelSnapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		log.Warn().Err(err).Str("channel_id", channelID).Msg("redis: snapshot decode failed")
		return nil, false
	}
	return &snap, true
}

func (c *RedisCache) Put(ctx context.Context, channelID string, snap *model.ChannelSnapshot) {
	if c.rdb == nil {
		return
	}
	b, err := json.Marshal(snap)
	if err != nil {
		log.Warn().Err(err).Str("channel_id", channelID).Msg("redis: snapshot encode failed")
		return
	}
	if err := c.rdb.Set(ctx, snapshotKey(channelID), b, c.ttl).Err(); err != nil {
		log.Warn().Err(err).Str("channel_id", channelID).Msg("redis: snapshot set failed")
	}
}

// Close shuts down the Redis connection.
func (c *RedisCache) Close() error {
	if c.rdb == nil {
		return nil
	}
	return c.rdb.Close()
}

func snapshotKey(channelID string) string {
	return fmt.Sprintf("channel_age:%s", channelID)
}
