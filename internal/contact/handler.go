package contact

import (
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/rolodex-app/rolodex/internal/apperr"
	"github.com/rolodex-app/rolodex/internal/middleware"
	"github.com/rolodex-app/rolodex/internal/validation"
)

// Handler exposes contact HTTP endpoints.
type Handler struct {
	service *Service
}

// NewHandler builds a contact HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

type contactResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	UserID    string    `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func toResponse(contact Contact) contactResponse {
	return contactResponse{
		ID:        contact.ID,
		Name:      contact.Name,
		Email:     contact.Email,
		Phone:     contact.Phone,
		UserID:    contact.UserID,
		CreatedAt: contact.CreatedAt,
		UpdatedAt: contact.UpdatedAt,
	}
}

// Create handles POST /contacts.
func (h *Handler) Create(c *fiber.Ctx) error {
	userID := middleware.UserID(c)
	if userID == "" {
		return apperr.Unauthorized("Not authenticated")
	}

	var req CreateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.Validation(validation.Violations{{Path: "body", Message: "Invalid JSON body"}})
	}
	if err := req.Validate().Err(); err != nil {
		return err
	}

	contact, err := h.service.Create(c.UserContext(), userID, CreateInput{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
	})
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    toResponse(contact),
	})
}

// List handles GET /contacts with pagination, search and sorting.
func (h *Handler) List(c *fiber.Ctx) error {
	userID := middleware.UserID(c)
	if userID == "" {
		return apperr.Unauthorized("Not authenticated")
	}

	query, violations := ParseListQuery(
		c.Query("page"),
		c.Query("limit"),
		c.Query("search"),
		c.Query("sortBy"),
		c.Query("sortOrder"),
	)
	if err := violations.Err(); err != nil {
		return err
	}

	contacts, pagination, err := h.service.List(c.UserContext(), userID, query)
	if err != nil {
		return err
	}

	data := make([]contactResponse, 0, len(contacts))
	for _, contact := range contacts {
		data = append(data, toResponse(contact))
	}

	return c.Status(http.StatusOK).JSON(fiber.Map{
		"success":    true,
		"data":       data,
		"pagination": pagination,
	})
}

// Get handles GET /contacts/:id.
func (h *Handler) Get(c *fiber.Ctx) error {
	userID := middleware.UserID(c)
	if userID == "" {
		return apperr.Unauthorized("Not authenticated")
	}

	contact, err := h.service.Get(c.UserContext(), userID, c.Params("id"))
	if err != nil {
		return err
	}

	return c.Status(http.StatusOK).JSON(fiber.Map{
		"success": true,
		"data":    toResponse(contact),
	})
}

// Update handles PUT /contacts/:id with a partial patch body.
func (h *Handler) Update(c *fiber.Ctx) error {
	userID := middleware.UserID(c)
	if userID == "" {
		return apperr.Unauthorized("Not authenticated")
	}

	var req UpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.Validation(validation.Violations{{Path: "body", Message: "Invalid JSON body"}})
	}
	if err := req.Validate().Err(); err != nil {
		return err
	}

	contact, err := h.service.Update(c.UserContext(), userID, c.Params("id"), UpdateInput{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
	})
	if err != nil {
		return err
	}

	return c.Status(http.StatusOK).JSON(fiber.Map{
		"success": true,
		"data":    toResponse(contact),
	})
}

// Delete handles DELETE /contacts/:id.
func (h *Handler) Delete(c *fiber.Ctx) error {
	userID := middleware.UserID(c)
	if userID == "" {
		return apperr.Unauthorized("Not authenticated")
	}

	if err := h.service.Delete(c.UserContext(), userID, c.Params("id")); err != nil {
		return err
	}

	return c.Status(http.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Contact deleted successfully",
	})
}
