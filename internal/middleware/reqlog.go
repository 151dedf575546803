package middleware

import (
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/rolodex-app/rolodex/internal/logging"
)

// RequestLogger logs each request on the way in (with a redacted body) and
// its status and duration on the way out. Errors returned by downstream
// handlers are logged by the terminal error handler instead.
func RequestLogger(logger *slog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		attrs := []any{
			slog.String("request_id", GetRequestID(c)),
			slog.String("method", c.Method()),
			slog.String("path", c.Path()),
			slog.String("ip", c.IP()),
			slog.String("user_agent", c.Get(fiber.HeaderUserAgent)),
		}
		if body := RedactedBody(c); body != nil {
			attrs = append(attrs, slog.Any("body", body))
		}
		logger.Info("request", attrs...)

		if err := c.Next(); err != nil {
			return err
		}

		status := c.Response().StatusCode()
		respAttrs := []any{
			slog.String("request_id", GetRequestID(c)),
			slog.String("method", c.Method()),
			slog.String("path", c.Path()),
			slog.Int("status", status),
			slog.Duration("duration", time.Since(start)),
		}
		if status >= fiber.StatusBadRequest {
			logger.Warn("response", respAttrs...)
		} else {
			logger.Info("response", respAttrs...)
		}

		return nil
	}
}

// RedactedBody decodes a JSON request body and strips sensitive values for
// logging. Returns nil for empty or non-JSON bodies.
func RedactedBody(c *fiber.Ctx) any {
	body := c.Body()
	if len(body) == 0 {
		return nil
	}
	if !strings.Contains(c.Get(fiber.HeaderContentType), fiber.MIMEApplicationJSON) {
		return nil
	}
	var decoded any
	if err := json.Unmarshal(body, &decoded); err != nil {
		return nil
	}
	return logging.Redact(decoded)
}
