package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/rolodex-app/rolodex/internal/apperr"
	"github.com/rolodex-app/rolodex/internal/token"
)

const localUserID = "user_id"

// RequiredAuth validates the bearer token and halts the request with 401
// when the header is missing, malformed, or the token does not verify.
// On success the token's subject is attached to the request context.
func RequiredAuth(issuer *token.Issuer) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenStr, ok := bearerToken(c)
		if !ok {
			return apperr.Unauthorized("Access denied. Missing or invalid authorization header.")
		}
		userID, err := issuer.Verify(tokenStr)
		if err != nil {
			return apperr.Unauthorized("Invalid or expired token.")
		}
		c.Locals(localUserID, userID)
		return c.Next()
	}
}

// OptionalAuth performs the same checks but never rejects: on any failure
// the request proceeds with no identity attached.
func OptionalAuth(issuer *token.Issuer) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if tokenStr, ok := bearerToken(c); ok {
			if userID, err := issuer.Verify(tokenStr); err == nil {
				c.Locals(localUserID, userID)
			}
		}
		return c.Next()
	}
}

// UserID returns the authenticated user identifier, or "" when the request
// carries no verified identity.
func UserID(c *fiber.Ctx) string {
	userID, _ := c.Locals(localUserID).(string)
	return userID
}

func bearerToken(c *fiber.Ctx) (string, bool) {
	authz := c.Get(fiber.HeaderAuthorization)
	if !strings.HasPrefix(authz, "Bearer ") {
		return "", false
	}
	return strings.TrimSpace(authz[len("Bearer "):]), true
}
