package contact

import (
	"context"
	"sort"
	"strings"
	"sync"
)

type memoryRepository struct {
	mu       sync.RWMutex
	contacts map[string]Contact // keyed by contact ID
}

// NewMemoryRepository builds an in-memory contact store for development and tests.
func NewMemoryRepository() Repository {
	return &memoryRepository{contacts: make(map[string]Contact)}
}

func (r *memoryRepository) Create(_ context.Context, contact Contact) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.contacts[contact.ID] = contact
	return nil
}

func (r *memoryRepository) FindByID(_ context.Context, userID, id string) (Contact, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	contact, ok := r.contacts[id]
	if !ok || contact.UserID != userID {
		return Contact{}, ErrNotFound
	}
	return contact, nil
}

func (r *memoryRepository) FindByEmail(_ context.Context, userID, email string) (Contact, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, contact := range r.contacts {
		if contact.UserID == userID && contact.Email == email {
			return contact, nil
		}
	}
	return Contact{}, ErrNotFound
}

func (r *memoryRepository) List(_ context.Context, userID string, query ListQuery) ([]Contact, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	needle := strings.ToLower(query.Search)
	var matched []Contact
	for _, contact := range r.contacts {
		if contact.UserID != userID {
			continue
		}
		if needle != "" &&
			!strings.Contains(strings.ToLower(contact.Name), needle) &&
			!strings.Contains(strings.ToLower(contact.Email), needle) {
			continue
		}
		matched = append(matched, contact)
	}

	sort.Slice(matched, func(i, j int) bool {
		a, b := matched[i], matched[j]
		if query.SortOrder != "asc" {
			a, b = b, a
		}
		switch query.SortBy {
		case "name":
			return a.Name < b.Name
		case "email":
			return a.Email < b.Email
		default:
			return a.CreatedAt.Before(b.CreatedAt)
		}
	})

	total := len(matched)
	start := (query.Page - 1) * query.Limit
	if start > total {
		start = total
	}
	end := start + query.Limit
	if end > total {
		end = total
	}

	return matched[start:end], total, nil
}

func (r *memoryRepository) Update(_ context.Context, contact Contact) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.contacts[contact.ID]
	if !ok || existing.UserID != contact.UserID {
		return ErrNotFound
	}
	r.contacts[contact.ID] = contact
	return nil
}

func (r *memoryRepository) Delete(_ context.Context, userID, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.contacts[id]
	if !ok || existing.UserID != userID {
		return ErrNotFound
	}
	delete(r.contacts, id)
	return nil
}
