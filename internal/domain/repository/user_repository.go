// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"yatai/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for user persistence.
var (
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrDuplicateUser is returned when a user with the same LINE id already exists.
	ErrDuplicateUser = errors.New("user already exists")
)

// UserRepository defines the interface for user-related database operations.
type UserRepository interface {
	// Create persists a new user.
	Create(ctx context.Context, user *entity.User) error

	// FindByID retrieves a user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByLineUserID retrieves a user by their LINE platform id.
	FindByLineUserID(ctx context.Context, lineUserID string) (*entity.User, error)

	// Update modifies an existing user.
	Update(ctx context.Context, user *entity.User) error
}
