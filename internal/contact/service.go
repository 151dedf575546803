package contact

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/rolodex-app/rolodex/internal/apperr"
)

// Service implements per-user contact CRUD with the (email, userID)
// uniqueness invariant. Every operation is scoped by the authenticated
// user identifier; one user can never reach another user's contacts.
type Service struct {
	repo Repository
}

// NewService builds a contact service instance.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// CreateInput captures data required to create a contact.
type CreateInput struct {
	Name  string
	Email string
	Phone string
}

// UpdateInput is a partial patch; nil fields are left unchanged.
type UpdateInput struct {
	Name  *string
	Email *string
	Phone *string
}

// Create inserts a contact unless the user already holds one with the same email.
func (s *Service) Create(ctx context.Context, userID string, input CreateInput) (Contact, error) {
	_, err := s.repo.FindByEmail(ctx, userID, input.Email)
	switch {
	case err == nil:
		return Contact{}, apperr.Conflict(apperr.CodeDuplicateEmail, "A contact with this email already exists")
	case !errors.Is(err, ErrNotFound):
		return Contact{}, fmt.Errorf("check duplicate email: %w", err)
	}

	now := time.Now().UTC()
	contact := Contact{
		ID:        uuid.New().String(),
		UserID:    userID,
		Name:      input.Name,
		Email:     input.Email,
		Phone:     input.Phone,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, contact); err != nil {
		return Contact{}, fmt.Errorf("create contact: %w", err)
	}

	return contact, nil
}

// List returns one page of the user's contacts with pagination metadata.
func (s *Service) List(ctx context.Context, userID string, query ListQuery) ([]Contact, Pagination, error) {
	contacts, total, err := s.repo.List(ctx, userID, query)
	if err != nil {
		return nil, Pagination{}, fmt.Errorf("list contacts: %w", err)
	}

	totalPages := (total + query.Limit - 1) / query.Limit
	return contacts, Pagination{
		Page:       query.Page,
		Limit:      query.Limit,
		Total:      total,
		TotalPages: totalPages,
	}, nil
}

// Get fetches a single contact; absence and foreign ownership are both
// CONTACT_NOT_FOUND so callers cannot probe for other users' contacts.
func (s *Service) Get(ctx context.Context, userID, id string) (Contact, error) {
	contact, err := s.repo.FindByID(ctx, userID, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Contact{}, apperr.NotFound(apperr.CodeContactNotFound, "Contact not found")
		}
		return Contact{}, fmt.Errorf("get contact: %w", err)
	}
	return contact, nil
}

// Update applies a partial patch. When the patch changes the email, the
// uniqueness invariant is re-checked; keeping the current email is not a
// conflict.
func (s *Service) Update(ctx context.Context, userID, id string, patch UpdateInput) (Contact, error) {
	existing, err := s.repo.FindByID(ctx, userID, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Contact{}, apperr.NotFound(apperr.CodeContactNotFound, "Contact not found")
		}
		return Contact{}, fmt.Errorf("get contact: %w", err)
	}

	if patch.Email != nil && *patch.Email != existing.Email {
		_, err := s.repo.FindByEmail(ctx, userID, *patch.Email)
		switch {
		case err == nil:
			return Contact{}, apperr.Conflict(apperr.CodeDuplicateEmail, "A contact with this email already exists")
		case !errors.Is(err, ErrNotFound):
			return Contact{}, fmt.Errorf("check duplicate email: %w", err)
		}
	}

	if patch.Name != nil {
		existing.Name = *patch.Name
	}
	if patch.Email != nil {
		existing.Email = *patch.Email
	}
	if patch.Phone != nil {
		existing.Phone = *patch.Phone
	}
	existing.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, existing); err != nil {
		if errors.Is(err, ErrNotFound) {
			return Contact{}, apperr.NotFound(apperr.CodeContactNotFound, "Contact not found")
		}
		return Contact{}, fmt.Errorf("update contact: %w", err)
	}

	return existing, nil
}

// Delete removes the user's contact with the same not-found semantics as Get.
func (s *Service) Delete(ctx context.Context, userID, id string) error {
	if err := s.repo.Delete(ctx, userID, id); err != nil {
		if errors.Is(err, ErrNotFound) {
			return apperr.NotFound(apperr.CodeContactNotFound, "Contact not found")
		}
		return fmt.Errorf("delete contact: %w", err)
	}
	return nil
}
