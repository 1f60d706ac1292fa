// Package users implements storage for credential records.
package users

import (
	"context"

	"github.com/joshradin/federeddit/internal/server/models"
)

// Repository is the storage boundary for credential records.
type Repository interface {
	// Create stores a new user. Returns common.ErrorAlreadyExists when
	// the email is taken.
	Create(ctx context.Context, user *models.User) (*models.User, error)

	// GetByEmail returns the user with the given email, or
	// common.ErrorNotFound.
	GetByEmail(ctx context.Context, email string) (*models.User, error)

	// Delete removes the user with the given email, or returns
	// common.ErrorNotFound.
	Delete(ctx context.Context, email string) error
}
