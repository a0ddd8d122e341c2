package handler

import "github.com/gofiber/fiber/v3"

// Root handles GET / — informational index.
func Root(c fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "OK",
		"message": "YouTube Channel Age API",
		"endpoints": []string{
			"GET /health",
			"GET /health/ready",
			"GET /metrics",
			"GET /api/age/:channelInput",
			"POST /api/age",
		},
	})
}
