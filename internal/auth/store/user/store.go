// Package user persists identity records behind a narrow store interface.
package user

import (
	"context"

	"classroom/internal/auth/models"
	dErrors "classroom/pkg/domain-errors"
)

// Store is the user persistence capability the auth service consumes.
type Store interface {
	// Create persists a new user. A duplicate email fails with conflict.
	Create(ctx context.Context, u models.User) error

	// FindByEmail returns the user owning the email, or not_found.
	FindByEmail(ctx context.Context, email string) (models.User, error)
}

var (
	// ErrNotFound keeps store-level 404s consistent across implementations.
	ErrNotFound = dErrors.New(dErrors.CodeNotFound, "user not found")

	// ErrDuplicateEmail reports a registration against a taken email.
	ErrDuplicateEmail = dErrors.New(dErrors.CodeConflict, "email already registered")
)
