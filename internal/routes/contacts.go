package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/rolodex-app/rolodex/internal/contact"
)

// RegisterContactRoutes wires the per-user contact CRUD endpoints; every
// route requires an authenticated caller.
func RegisterContactRoutes(r fiber.Router, h *contact.Handler, requireAuth fiber.Handler) {
	group := r.Group("/contacts", requireAuth)
	group.Post("/", h.Create)
	group.Get("/", h.List)
	group.Get("/:id", h.Get)
	group.Put("/:id", h.Update)
	group.Delete("/:id", h.Delete)
}
