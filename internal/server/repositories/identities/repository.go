// Package identities stores identity records keyed by ID with a secondary
// index on normalized email. Every backend applies a record write and its
// email-index update as one atomic unit and rejects an email already owned
// by a different record with common.ErrDuplicateEmail.
package identities

import (
	"context"

	"github.com/dmitrijs2005/greencareers/internal/server/models"
	"github.com/google/uuid"
)

type Repository interface {
	// Put inserts or overwrites the record with identity.ID.
	Put(ctx context.Context, identity *models.Identity) error
	// GetByID returns common.ErrorNotFound for unknown or malformed IDs.
	GetByID(ctx context.Context, id string) (*models.Identity, error)
	// GetByEmail looks the email up case-insensitively.
	GetByEmail(ctx context.Context, email string) (*models.Identity, error)
}

// validID reports whether id is a well-formed identity identifier.
func validID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
