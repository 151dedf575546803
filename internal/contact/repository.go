package contact

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrNotFound is returned when a contact does not exist for the given user.
// Ownership mismatches surface as ErrNotFound too, so callers cannot probe
// for other users' contacts.
var ErrNotFound = errors.New("contact not found")

// Repository persists contacts. Every method is scoped by the owning user.
type Repository interface {
	Create(ctx context.Context, contact Contact) error
	FindByID(ctx context.Context, userID, id string) (Contact, error)
	FindByEmail(ctx context.Context, userID, email string) (Contact, error)
	List(ctx context.Context, userID string, query ListQuery) ([]Contact, int, error)
	Update(ctx context.Context, contact Contact) error
	Delete(ctx context.Context, userID, id string) error
}

// Sort keys accepted by List, mapped to their column names.
var sortColumns = map[string]string{
	"name":      "name",
	"email":     "email",
	"createdAt": "created_at",
}

// PostgresRepository stores contacts in PostgreSQL.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository builds a repository backed by PostgreSQL.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts a contact record.
func (r *PostgresRepository) Create(ctx context.Context, contact Contact) error {
	contactID, err := uuid.Parse(contact.ID)
	if err != nil {
		return err
	}
	userID, err := uuid.Parse(contact.UserID)
	if err != nil {
		return err
	}
	_, err = r.db.Exec(ctx, `INSERT INTO contacts (id, user_id, name, email, phone, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		contactID, userID, contact.Name, contact.Email, contact.Phone,
		contact.CreatedAt.UTC(), contact.UpdatedAt.UTC())
	return err
}

// FindByID fetches a contact owned by the given user.
func (r *PostgresRepository) FindByID(ctx context.Context, userID, id string) (Contact, error) {
	contactID, err := uuid.Parse(id)
	if err != nil {
		return Contact{}, ErrNotFound
	}
	ownerID, err := uuid.Parse(userID)
	if err != nil {
		return Contact{}, ErrNotFound
	}
	row := r.db.QueryRow(ctx, `SELECT id, user_id, name, email, phone, created_at, updated_at
        FROM contacts WHERE id = $1 AND user_id = $2`, contactID, ownerID)
	return scanContact(row)
}

// FindByEmail fetches the user's contact holding the given email, if any.
func (r *PostgresRepository) FindByEmail(ctx context.Context, userID, email string) (Contact, error) {
	ownerID, err := uuid.Parse(userID)
	if err != nil {
		return Contact{}, ErrNotFound
	}
	row := r.db.QueryRow(ctx, `SELECT id, user_id, name, email, phone, created_at, updated_at
        FROM contacts WHERE email = $1 AND user_id = $2`, email, ownerID)
	return scanContact(row)
}

// List returns one page of the user's contacts plus the total match count.
// Search is a case-insensitive substring match over name OR email.
func (r *PostgresRepository) List(ctx context.Context, userID string, query ListQuery) ([]Contact, int, error) {
	ownerID, err := uuid.Parse(userID)
	if err != nil {
		return nil, 0, fmt.Errorf("parse user id: %w", err)
	}

	where := `WHERE user_id = $1`
	args := []any{ownerID}
	if query.Search != "" {
		where += ` AND (name ILIKE $2 OR email ILIKE $2)`
		args = append(args, "%"+query.Search+"%")
	}

	var total int
	if err := r.db.QueryRow(ctx, `SELECT count(*) FROM contacts `+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count contacts: %w", err)
	}

	column, ok := sortColumns[query.SortBy]
	if !ok {
		column = "created_at"
	}
	direction := "DESC"
	if query.SortOrder == "asc" {
		direction = "ASC"
	}

	offset := (query.Page - 1) * query.Limit
	sql := fmt.Sprintf(`SELECT id, user_id, name, email, phone, created_at, updated_at
        FROM contacts %s ORDER BY %s %s LIMIT $%d OFFSET $%d`,
		where, column, direction, len(args)+1, len(args)+2)
	args = append(args, query.Limit, offset)

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list contacts: %w", err)
	}
	defer rows.Close()

	var contacts []Contact
	for rows.Next() {
		contact, err := scanContact(rows)
		if err != nil {
			return nil, 0, err
		}
		contacts = append(contacts, contact)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return contacts, total, nil
}

// Update rewrites the mutable fields of an existing contact.
func (r *PostgresRepository) Update(ctx context.Context, contact Contact) error {
	contactID, err := uuid.Parse(contact.ID)
	if err != nil {
		return ErrNotFound
	}
	ownerID, err := uuid.Parse(contact.UserID)
	if err != nil {
		return ErrNotFound
	}
	cmd, err := r.db.Exec(ctx, `UPDATE contacts SET name = $1, email = $2, phone = $3, updated_at = $4
        WHERE id = $5 AND user_id = $6`,
		contact.Name, contact.Email, contact.Phone, contact.UpdatedAt.UTC(), contactID, ownerID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes the user's contact. Hard delete, no tombstone.
func (r *PostgresRepository) Delete(ctx context.Context, userID, id string) error {
	contactID, err := uuid.Parse(id)
	if err != nil {
		return ErrNotFound
	}
	ownerID, err := uuid.Parse(userID)
	if err != nil {
		return ErrNotFound
	}
	cmd, err := r.db.Exec(ctx, `DELETE FROM contacts WHERE id = $1 AND user_id = $2`, contactID, ownerID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func scanContact(row pgx.Row) (Contact, error) {
	var (
		id        uuid.UUID
		userID    uuid.UUID
		createdAt time.Time
		updatedAt time.Time
		contact   Contact
	)
	if err := row.Scan(&id, &userID, &contact.Name, &contact.Email, &contact.Phone, &createdAt, &updatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Contact{}, ErrNotFound
		}
		return Contact{}, err
	}
	contact.ID = id.String()
	contact.UserID = userID.String()
	contact.CreatedAt = createdAt.UTC()
	contact.UpdatedAt = updatedAt.UTC()
	return contact, nil
}
