// Package auth exposes the registration, login and identity-lookup
// endpoints. Tokens are stateless; login failures never reveal whether the
// email or the password was wrong.
package auth

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/rolodex-app/rolodex/internal/apperr"
	"github.com/rolodex-app/rolodex/internal/identity"
	"github.com/rolodex-app/rolodex/internal/middleware"
	"github.com/rolodex-app/rolodex/internal/token"
	"github.com/rolodex-app/rolodex/internal/validation"
)

// Handler exposes auth endpoints for register/login/me.
type Handler struct {
	users  *identity.Service
	issuer *token.Issuer
}

// NewHandler builds the auth HTTP handler.
func NewHandler(users *identity.Service, issuer *token.Issuer) *Handler {
	return &Handler{users: users, issuer: issuer}
}

// userResponse is the client-facing user shape; the password hash is never
// serialized.
type userResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func toUserResponse(user identity.User) userResponse {
	return userResponse{ID: user.ID, Name: user.Name, Email: user.Email}
}

func invalidCredentials() error {
	return apperr.New(http.StatusUnauthorized, apperr.CodeInvalidCreds, "Invalid email or password.")
}

// Register creates an account and issues an access token.
func (h *Handler) Register(c *fiber.Ctx) error {
	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.Validation(validation.Violations{{Path: "body", Message: "Invalid JSON body"}})
	}
	if err := req.Validate().Err(); err != nil {
		return err
	}

	user, err := h.users.CreateUser(c.UserContext(), req.Name, req.Email, req.Password)
	if err != nil {
		return err
	}

	signed, err := h.issuer.Issue(user.ID)
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"token": signed,
		"user":  toUserResponse(user),
	})
}

// Login verifies credentials and issues an access token. Unknown email and
// wrong password produce an identical error on purpose.
func (h *Handler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.Validation(validation.Violations{{Path: "body", Message: "Invalid JSON body"}})
	}
	if err := req.Validate().Err(); err != nil {
		return err
	}

	user, err := h.users.FindByEmail(c.UserContext(), req.Email)
	if err != nil {
		if errors.Is(err, identity.ErrNotFound) {
			return invalidCredentials()
		}
		return err
	}

	if !h.users.ValidatePassword(user, req.Password) {
		return invalidCredentials()
	}

	signed, err := h.issuer.Issue(user.ID)
	if err != nil {
		return err
	}

	return c.Status(http.StatusOK).JSON(fiber.Map{
		"token": signed,
		"user":  toUserResponse(user),
	})
}

// Me returns the authenticated user's record, or 404 when the token's
// subject no longer exists.
func (h *Handler) Me(c *fiber.Ctx) error {
	userID := middleware.UserID(c)
	if userID == "" {
		return apperr.Unauthorized("Not authenticated.")
	}

	user, err := h.users.GetByID(c.UserContext(), userID)
	if err != nil {
		if errors.Is(err, identity.ErrNotFound) {
			return apperr.NotFound(apperr.CodeUserNotFound, "User not found.")
		}
		return err
	}

	return c.Status(http.StatusOK).JSON(toUserResponse(user))
}
