package contact

import "time"

// Contact is an address-book entry fully owned by one user. A user cannot
// hold two contacts with the same email, but different users can.
type Contact struct {
	ID        string
	UserID    string
	Name      string
	Email     string
	Phone     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ListQuery describes pagination, search and sorting for contact listings.
// Values are assumed validated (see validator.go) before reaching a repository.
type ListQuery struct {
	Page      int
	Limit     int
	Search    string
	SortBy    string
	SortOrder string
}

// Pagination summarizes a page of results; Total and TotalPages are
// recomputed on every list call.
type Pagination struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}
