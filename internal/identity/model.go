package identity

import "time"

// User represents a registered account owning contacts.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash []byte
	CreatedAt    time.Time
}
