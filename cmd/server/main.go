package main

import (
	"github.com/gofiber/fiber/v3"
	"github.com/redis/go-redis/v9"

	"github.com/lukastechs/youtube-backend/internal/config"
	"github.com/lukastechs/youtube-backend/internal/handler"
	"github.com/lukastechs/youtube-backend/internal/middleware"
	"github.com/lukastechs/youtube-backend/internal/router"
	"github.com/lukastechs/youtube-backend/internal/service"
	"github.com/lukastechs/youtube-backend/internal/youtube"
)

func main() {
	cfg := config.Load()
	middleware.InitLogger(cfg.LogLevel, "youtube-age-api")

	if cfg.YouTubeAPIKey == "" {
		middleware.Logger.Warn().Msg("YOUTUBE_API_KEY is empty; upstream lookups will fail")
	}

	// Cache backend: Redis when configured and reachable, otherwise the
	// in-memory store.
	var cache service.SnapshotCache
	var rdb *redis.Client
	redisCache := service.NewRedisCache(cfg.RedisURL, cfg.CacheTTL)
	if redisCache.Enabled() {
		cache = redisCache
		rdb = redisCache.Client()
		defer redisCache.Close()
	} else {
		cache = service.NewMemoryCache(cfg.CacheTTL)
	}

	ytClient := youtube.NewClient(cfg.YouTubeAPIKey)
	resolver := service.NewResolverService(ytClient)
	channelSvc := service.NewChannelService(resolver, ytClient, cache)

	handler.InitMetrics()

	app := fiber.New(fiber.Config{
		AppName:      "YouTube Channel Age API",
		ServerHeader: "youtube-age-api",
	})

	router.Setup(app, &router.Handlers{
		Channel: handler.NewChannelHandler(channelSvc),
		Health:  handler.NewHealthHandler(rdb),
	}, cfg.CORSOrigin)

	middleware.Logger.Info().
		Str("port", cfg.Port).
		Str("env", cfg.Environment).
		Dur("cache_ttl", cfg.CacheTTL).
		Msg("starting server")

	if err := app.Listen(":" + cfg.Port); err != nil {
		middleware.Logger.Fatal().Err(err).Msg("server exited")
	}
}
