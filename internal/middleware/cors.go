package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
)

// NewCORS returns a CORS middleware restricted to a single fixed origin.
// Use "*" to allow all origins (development default when unset).
func NewCORS(origin string) fiber.Handler {
	origins := []string{"*"}
	if o := strings.TrimSpace(origin); o != "" && o != "*" {
		origins = []string{o}
	}

	return cors.New(cors.Config{
		AllowOrigins: origins,
		AllowMethods: []string{
			fiber.MethodGet,
			fiber.MethodPost,
			fiber.MethodOptions,
		},
		AllowHeaders: []string{
			"Content-Type",
		},
		MaxAge: 86400,
	})
}
