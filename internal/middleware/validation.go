package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v3"
)

// MaxInputLen caps the raw identifier length. Canonical IDs are 24 chars;
// full channel URLs stay well under this.
const MaxInputLen = 256

// ErrorResponse is a helper that returns a standard API error response.
func ErrorResponse(c fiber.Ctx, status int, code, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"error": fiber.Map{
			"code":    code,
			"message": message,
		},
	})
}

// ValidateChannelInput checks the raw identifier before it reaches the
// resolver. Shape validation (ID vs URL vs handle) is the resolver's job;
// this only rejects what no form could ever accept.
func ValidateChannelInput(raw string) (string, string) {
	input := strings.TrimSpace(raw)
	if input == "" {
		return "", "channel is required"
	}
	if len(input) > MaxInputLen {
		return "", "channel must be at most 256 characters"
	}
	return input, ""
}
