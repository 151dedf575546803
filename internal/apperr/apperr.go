// Package apperr defines the typed error values services and middleware
// return, and the code taxonomy the HTTP layer maps them onto.
package apperr

import "net/http"

// Error codes carried on the wire inside the error envelope.
const (
	CodeValidation        = "VALIDATION_ERROR"
	CodeUnauthorized      = "UNAUTHORIZED"
	CodeInvalidCreds      = "INVALID_CREDENTIALS"
	CodeUserExists        = "USER_EXISTS"
	CodeUserNotFound      = "USER_NOT_FOUND"
	CodeContactNotFound   = "CONTACT_NOT_FOUND"
	CodeDuplicateEmail    = "DUPLICATE_EMAIL"
	CodeRateLimitExceeded = "RATE_LIMIT_EXCEEDED"
	CodeInternal          = "INTERNAL_SERVER_ERROR"
)

// Error is an API error with an HTTP status, a stable machine code, a
// human-readable message and optional structured details.
type Error struct {
	Status  int
	Code    string
	Message string
	Details any
}

func (e *Error) Error() string {
	return e.Message
}

// New builds an Error with the given status, code and message.
func New(status int, code, message string) *Error {
	return &Error{Status: status, Code: code, Message: message}
}

// WithDetails returns a copy of the error carrying structured details.
func (e *Error) WithDetails(details any) *Error {
	clone := *e
	clone.Details = details
	return &clone
}

// Validation builds the single 400 returned for request shape failures;
// details holds every field violation, not just the first.
func Validation(details any) *Error {
	return &Error{
		Status:  http.StatusBadRequest,
		Code:    CodeValidation,
		Message: "Invalid request data",
		Details: details,
	}
}

// Unauthorized builds a 401 with the generic UNAUTHORIZED code.
func Unauthorized(message string) *Error {
	return New(http.StatusUnauthorized, CodeUnauthorized, message)
}

// NotFound builds a 404 with a resource-specific code.
func NotFound(code, message string) *Error {
	return New(http.StatusNotFound, code, message)
}

// Conflict builds a 409 with a resource-specific code.
func Conflict(code, message string) *Error {
	return New(http.StatusConflict, code, message)
}

// CodeForStatus maps a bare HTTP status onto a taxonomy code. Used when
// normalizing framework errors that carry a status but no code.
func CodeForStatus(status int) string {
	switch status {
	case http.StatusBadRequest:
		return CodeValidation
	case http.StatusUnauthorized:
		return CodeUnauthorized
	case http.StatusNotFound:
		return "NOT_FOUND"
	case http.StatusConflict:
		return "CONFLICT"
	case http.StatusTooManyRequests:
		return CodeRateLimitExceeded
	default:
		return CodeInternal
	}
}
