package handler

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/redis/go-redis/v9"
)

type HealthHandler struct {
	rdb     *redis.Client
	startAt time.Time
}

// NewHealthHandler creates the health probe handler. rdb may be nil when the
// in-memory cache backend is active.
func NewHealthHandler(rdb *redis.Client) *HealthHandler {
	return &HealthHandler{
		rdb:     rdb,
		startAt: time.Now(),
	}
}

// Live handles GET /health — liveness probe.
func (h *HealthHandler) Live(c fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "OK"})
}

// Ready handles GET /health/ready — readiness probe with cache backend check.
func (h *HealthHandler) Ready(c fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 3*time.Second)
	defer cancel()

	checks := make(fiber.Map)
	overallStatus := "healthy"

	checks["cache"] = checkCache(ctx, h.rdb)
	if cacheCheck, ok := checks["cache"].(fiber.Map); ok {
		if cacheCheck["status"] == "down" {
			overallStatus = "degraded"
		}
	}

	uptimeSeconds := int(time.Since(h.startAt).Seconds())

	resp := fiber.Map{
		"status":         overallStatus,
		"checks":         checks,
		"uptime_seconds": uptimeSeconds,
		"version":        "1.0.0",
	}

	status := fiber.StatusOK
	if overallStatus != "healthy" {
		status = fiber.StatusServiceUnavailable
	}

	return c.Status(status).JSON(resp)
}

func checkCache(ctx context.Context, rdb *redis.Client) fiber.Map {
	if rdb == nil {
		return fiber.Map{
			"status":  "up",
			"backend": "memory",
		}
	}

	start := time.Now()
	err := rdb.Ping(ctx).Err()
	latency := time.Since(start).Milliseconds()

	if err != nil {
		return fiber.Map{
			"status":     "down",
			"backend":    "redis",
			"latency_ms": latency,
			"error":      "connection failed",
		}
	}
	return fiber.Map{
		"status":     "up",
		"backend":    "redis",
		"latency_ms": latency,
	}
}
