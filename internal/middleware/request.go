package middleware

import (
	"time"

	"news-quiz/internal/logger"
	"news-quiz/internal/metrics"
	"news-quiz/internal/util"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const (
	RequestIDHeader = "X-Request-ID"
	RequestIDKey    = "requestID"
)

// RequestID tags every request with a ULID, reusing a client supplied
// X-Request-ID when present.
func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get(RequestIDHeader)
		if id == "" {
			id = util.NewULID()
		}
		c.Locals(RequestIDKey, id)
		c.Set(RequestIDHeader, id)
		return c.Next()
	}
}

// RequestLogger logs one line per request and records HTTP metrics. It runs
// the error handler itself so the logged status is the one sent.
func RequestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		if err != nil {
			if herr := c.App().ErrorHandler(c, err); herr != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}

		status := c.Response().StatusCode()
		duration := time.Since(start)
		route := c.Path()
		if r := c.Route(); r != nil && r.Path != "" {
			route = r.Path
		}
		metrics.RecordHTTPRequest(c.Method(), route, status, duration)

		fields := []zap.Field{
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Int("status", status),
			zap.Duration("duration", duration),
			zap.String("ip", c.IP()),
			zap.Any("requestID", c.Locals(RequestIDKey)),
		}
		if status >= fiber.StatusInternalServerError {
			logger.Get().Error("HTTP request", fields...)
		} else {
			logger.Get().Info("HTTP request", fields...)
		}
		return nil
	}
}
