package contact

import (
	"regexp"
	"strconv"
	"unicode/utf8"

	"github.com/rolodex-app/rolodex/internal/validation"
)

// Field rules: name 1-120 chars, email plausible and <=200 chars, phone
// 10-25 chars drawn from digits and + - ( ) space. Length limits count
// characters, not bytes.
var phonePattern = regexp.MustCompile(`^[0-9+\-\s()]+$`)

const (
	maxNameLen   = 120
	maxEmailLen  = 200
	minPhoneLen  = 10
	maxPhoneLen  = 25
	maxSearchLen = 200
	maxListLimit = 100
)

// CreateRequest is the POST /contacts body.
type CreateRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// Validate checks every field and reports all violations at once.
func (r CreateRequest) Validate() validation.Violations {
	var v validation.Violations
	validateName(&v, "body.name", r.Name)
	validateEmail(&v, "body.email", r.Email)
	validatePhone(&v, "body.phone", r.Phone)
	return v
}

// UpdateRequest is the PUT /contacts/:id body; nil fields are not patched.
type UpdateRequest struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
	Phone *string `json:"phone"`
}

// Validate requires at least one field and applies the field rules to
// whichever fields are present.
func (r UpdateRequest) Validate() validation.Violations {
	var v validation.Violations
	if r.Name == nil && r.Email == nil && r.Phone == nil {
		v.Add("body", "At least one field (name, email, or phone) must be provided for update")
		return v
	}
	if r.Name != nil {
		validateName(&v, "body.name", *r.Name)
	}
	if r.Email != nil {
		validateEmail(&v, "body.email", *r.Email)
	}
	if r.Phone != nil {
		validatePhone(&v, "body.phone", *r.Phone)
	}
	return v
}

// ParseListQuery validates and coerces the raw GET /contacts query strings,
// applying defaults for absent parameters.
func ParseListQuery(page, limit, search, sortBy, sortOrder string) (ListQuery, validation.Violations) {
	var v validation.Violations
	query := ListQuery{Page: 1, Limit: 10, SortBy: "createdAt", SortOrder: "desc"}

	if page != "" {
		n, err := strconv.Atoi(page)
		if err != nil || n <= 0 {
			v.Add("query.page", "Page must be a positive integer")
		} else {
			query.Page = n
		}
	}
	if limit != "" {
		n, err := strconv.Atoi(limit)
		switch {
		case err != nil || n <= 0:
			v.Add("query.limit", "Limit must be a positive integer")
		case n > maxListLimit:
			v.Add("query.limit", "Limit must be at most 100")
		default:
			query.Limit = n
		}
	}
	if utf8.RuneCountInString(search) > maxSearchLen {
		v.Add("query.search", "Search must be less than 200 characters")
	} else {
		query.Search = search
	}
	if sortBy != "" {
		if _, ok := sortColumns[sortBy]; !ok {
			v.Add("query.sortBy", "SortBy must be one of name, email, createdAt")
		} else {
			query.SortBy = sortBy
		}
	}
	if sortOrder != "" {
		if sortOrder != "asc" && sortOrder != "desc" {
			v.Add("query.sortOrder", "SortOrder must be asc or desc")
		} else {
			query.SortOrder = sortOrder
		}
	}

	return query, v
}

func validateName(v *validation.Violations, path, name string) {
	switch {
	case name == "":
		v.Add(path, "Name is required")
	case utf8.RuneCountInString(name) > maxNameLen:
		v.Add(path, "Name must be less than 120 characters")
	}
}

func validateEmail(v *validation.Violations, path, email string) {
	switch {
	case email == "":
		v.Add(path, "Email is required")
	case utf8.RuneCountInString(email) > maxEmailLen:
		v.Add(path, "Email must be less than 200 characters")
	case !validation.IsPlausibleEmail(email):
		v.Add(path, "Invalid email format")
	}
}

func validatePhone(v *validation.Violations, path, phone string) {
	switch {
	case len(phone) < minPhoneLen:
		v.Add(path, "Phone must be at least 10 characters")
	case len(phone) > maxPhoneLen:
		v.Add(path, "Phone must be less than 25 characters")
	case !phonePattern.MatchString(phone):
		v.Add(path, "Phone must contain only numbers and standard formatting characters (+, -, spaces, parentheses)")
	}
}
