// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"titlecheck/internal/domain/entity"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository is the credential store.
// Implementations must enforce uniqueness of both username and email.
type UserRepository interface {
	// FindByEmail retrieves a single user by their normalized email address.
	// It returns ErrUserNotFound when no user matches.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Create persists a new user and fills in its ID and CreatedAt.
	// A uniqueness violation is reported as domainerrors.ErrEmailAlreadyRegistered
	// or domainerrors.ErrUsernameTaken.
	Create(ctx context.Context, user *entity.User) error
}
