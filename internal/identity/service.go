package identity

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/rolodex-app/rolodex/internal/apperr"
)

// Service manages user lifecycle and credential checks.
type Service struct {
	repo Repository
}

// NewService creates a new identity service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// CreateUser registers a new account. The email must not already be taken;
// the password is stored only as a bcrypt hash.
func (s *Service) CreateUser(ctx context.Context, name, email, password string) (User, error) {
	_, err := s.repo.FindByEmail(ctx, email)
	switch {
	case err == nil:
		return User{}, apperr.Conflict(apperr.CodeUserExists, "User already exists with this email.")
	case !errors.Is(err, ErrNotFound):
		return User{}, fmt.Errorf("lookup user by email: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return User{}, fmt.Errorf("hash password: %w", err)
	}

	user := User{
		ID:           uuid.New().String(),
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return User{}, fmt.Errorf("create user: %w", err)
	}

	return user, nil
}

// FindByEmail looks a user up by email; absence surfaces as ErrNotFound and
// the caller decides how to respond.
func (s *Service) FindByEmail(ctx context.Context, email string) (User, error) {
	return s.repo.FindByEmail(ctx, email)
}

// GetByID looks a user up by identifier; absence surfaces as ErrNotFound.
func (s *Service) GetByID(ctx context.Context, id string) (User, error) {
	return s.repo.FindByID(ctx, id)
}

// ValidatePassword reports whether the plaintext matches the stored hash.
func (s *Service) ValidatePassword(user User, password string) bool {
	return bcrypt.CompareHashAndPassword(user.PasswordHash, []byte(password)) == nil
}
