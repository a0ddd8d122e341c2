package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port          string
	YouTubeAPIKey string
	RedisURL      string
	CacheTTL      time.Duration
	LogLevel      string
	Environment   string
	CORSOrigin    string
}

func Load() *Config {
	// Best-effort .env loading for local development; deployments set
	// the environment directly.
	_ = godotenv.Load()

	return &Config{
		Port:          getEnv("PORT", "8080"),
		YouTubeAPIKey: getEnv("YOUTUBE_API_KEY", ""),
		RedisURL:      getEnv("REDIS_URL", ""),
		CacheTTL:      getDuration("CACHE_TTL", 24*time.Hour),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		Environment:   getEnv("ENVIRONMENT", "development"),
		CORSOrigin:    getEnv("CORS_ORIGIN", "https://lukastechs.net"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			return d
		}
	}
	return fallback
}
