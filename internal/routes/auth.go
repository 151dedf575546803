package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/rolodex-app/rolodex/internal/auth"
)

// RegisterAuthRoutes wires authentication endpoints.
func RegisterAuthRoutes(r fiber.Router, h *auth.Handler, requireAuth fiber.Handler) {
	group := r.Group("/auth")
	group.Post("/register", h.Register)
	group.Post("/login", h.Login)
	group.Get("/me", requireAuth, h.Me)
}
