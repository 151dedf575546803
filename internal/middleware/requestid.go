package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// RequestIDHeader is the correlation header propagated from inbound requests
// and echoed on every response.
const RequestIDHeader = "X-Request-Id"

const localRequestID = "request_id"

// RequestID ensures each request has a stable correlation identifier:
// the inbound header value when present, a fresh UUID otherwise. It runs
// before any other processing so every log line can carry the identifier.
func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqID := c.Get(RequestIDHeader)
		if reqID == "" {
			reqID = uuid.NewString()
		}

		c.Locals(localRequestID, reqID)
		c.Set(RequestIDHeader, reqID)

		return c.Next()
	}
}

// GetRequestID returns the correlation identifier assigned to this request.
func GetRequestID(c *fiber.Ctx) string {
	reqID, _ := c.Locals(localRequestID).(string)
	return reqID
}
