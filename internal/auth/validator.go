package auth

import (
	"unicode/utf8"

	"github.com/rolodex-app/rolodex/internal/validation"
)

const (
	maxNameLen     = 120
	maxEmailLen    = 200
	minPasswordLen = 8
	maxPasswordLen = 128
)

// RegisterRequest is the POST /auth/register body.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate checks every field and reports all violations at once.
func (r RegisterRequest) Validate() validation.Violations {
	var v validation.Violations
	switch {
	case r.Name == "":
		v.Add("body.name", "Name is required")
	case utf8.RuneCountInString(r.Name) > maxNameLen:
		v.Add("body.name", "Name must be less than 120 characters")
	}
	validateEmail(&v, r.Email)
	switch {
	case r.Password == "":
		v.Add("body.password", "Password is required")
	case utf8.RuneCountInString(r.Password) < minPasswordLen:
		v.Add("body.password", "Password must be at least 8 characters")
	case utf8.RuneCountInString(r.Password) > maxPasswordLen:
		v.Add("body.password", "Password must be less than 128 characters")
	}
	return v
}

// LoginRequest is the POST /auth/login body.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate requires both credentials to be present and plausibly shaped.
func (r LoginRequest) Validate() validation.Violations {
	var v validation.Violations
	validateEmail(&v, r.Email)
	if r.Password == "" {
		v.Add("body.password", "Password is required")
	}
	return v
}

func validateEmail(v *validation.Violations, email string) {
	switch {
	case email == "":
		v.Add("body.email", "Email is required")
	case utf8.RuneCountInString(email) > maxEmailLen:
		v.Add("body.email", "Email must be less than 200 characters")
	case !validation.IsPlausibleEmail(email):
		v.Add("body.email", "Invalid email format")
	}
}
