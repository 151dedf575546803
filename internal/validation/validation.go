// Package validation provides the field-violation collector shared by the
// per-request validators. Validators accumulate every violation before
// failing so the client sees all problems in a single response.
package validation

import (
	"regexp"

	"github.com/rolodex-app/rolodex/internal/apperr"
)

// FieldError names a single invalid field and why it was rejected.
type FieldError struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

// Violations collects field errors across a whole request.
type Violations []FieldError

// Add records a violation for the given field path.
func (v *Violations) Add(path, message string) {
	*v = append(*v, FieldError{Path: path, Message: message})
}

// Err converts the accumulated violations into a VALIDATION_ERROR, or nil
// when the request was clean.
func (v Violations) Err() error {
	if len(v) == 0 {
		return nil
	}
	return apperr.Validation(v)
}

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// IsPlausibleEmail reports whether the string has an RFC-plausible email
// shape. It is a shape check, not a deliverability check.
func IsPlausibleEmail(email string) bool {
	return emailPattern.MatchString(email)
}
