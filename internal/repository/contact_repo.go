package repository

import (
	"blog_backend/internal/models"
	"context"
	"database/sql"
	"fmt"
)

type ContactRepository struct {
	db *sql.DB
}

func NewContactRepository(db *sql.DB) *ContactRepository {
	return &ContactRepository{db: db}
}

var _ Contacts = (*ContactRepository)(nil)

const insertContactSQL = `INSERT INTO contact_messages (id, name, email, contact_number, message, submitted_at)
	VALUES (?, ?, ?, ?, ?, ?)`

// Insert stores a contact-form submission.
func (r *ContactRepository) Insert(ctx context.Context, m models.ContactMessage) error {
	_, err := r.db.ExecContext(ctx, insertContactSQL,
		m.ID,
		m.Name,
		m.Email,
		m.ContactNumber,
		m.Message,
		m.SubmittedAt.UTC().Format(timestampLayout),
	)
	if err != nil {
		return fmt.Errorf("insert contact message %q: %w", m.ID, err)
	}
	return nil
}
