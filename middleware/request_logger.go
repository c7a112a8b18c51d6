package middleware

import (
	"time"

	"cargo-logistics/logger"
	"cargo-logistics/types"

	"github.com/gofiber/fiber/v2"
)

// RequestLogger records every request/response pair through the async logger.
func RequestLogger(asyncLogger *logger.AsyncLogger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		asyncLogger.Log(types.LogEntry{
			Method:     c.Method(),
			Path:       c.Path(),
			ClientIP:   c.IP(),
			StatusCode: c.Response().StatusCode(),
			DurationMs: time.Since(start).Milliseconds(),
			CreatedAt:  time.Now(),
		})

		return err
	}
}
