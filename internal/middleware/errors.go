package middleware

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/rolodex-app/rolodex/internal/apperr"
)

const genericServerMessage = "Something went wrong on the server."

type errorBody struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	Details   any    `json:"details,omitempty"`
	RequestID string `json:"requestId"`
}

// ErrorHandler is the terminal handler normalizing every error to the wire
// envelope {error: {code, message, details?, requestId}}. Unexpected errors
// become 500s whose client message is generic while the real message is
// logged with full detail; 4xx errors are logged without replacement.
func ErrorHandler(logger *slog.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status := http.StatusInternalServerError
		code := apperr.CodeInternal
		message := genericServerMessage
		var details any

		var apiErr *apperr.Error
		var fiberErr *fiber.Error
		switch {
		case errors.As(err, &apiErr):
			status = apiErr.Status
			code = apiErr.Code
			details = apiErr.Details
			if status < http.StatusInternalServerError {
				message = apiErr.Message
			}
		case errors.As(err, &fiberErr):
			status = fiberErr.Code
			code = apperr.CodeForStatus(status)
			if status < http.StatusInternalServerError {
				message = fiberErr.Message
			}
		}

		reqID := GetRequestID(c)
		attrs := []any{
			slog.String("request_id", reqID),
			slog.String("method", c.Method()),
			slog.String("path", c.Path()),
			slog.String("ip", c.IP()),
			slog.Int("status", status),
			slog.String("error_code", code),
			slog.String("error", err.Error()),
		}
		if body := RedactedBody(c); body != nil {
			attrs = append(attrs, slog.Any("body", body))
		}
		if status >= http.StatusInternalServerError {
			logger.Error("request failed", attrs...)
		} else {
			logger.Warn("request failed", attrs...)
		}

		c.Set(RequestIDHeader, reqID)
		return c.Status(status).JSON(fiber.Map{"error": errorBody{
			Code:      code,
			Message:   message,
			Details:   details,
			RequestID: reqID,
		}})
	}
}
