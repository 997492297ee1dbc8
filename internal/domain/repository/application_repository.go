package repository

import (
	"context"

	"yatai/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for application persistence.
var (
	// ErrApplicationNotFound is returned when an application is not found.
	ErrApplicationNotFound = errors.New("application not found")
	// ErrDuplicateApplication is returned when the (event, store) pair already
	// has an application.
	ErrDuplicateApplication = errors.New("application already exists for this event and store")
)

// ApplicationRepository defines the interface for event-application database
// operations.
type ApplicationRepository interface {
	// Create persists a new application.
	Create(ctx context.Context, application *entity.Application) error

	// FindByID retrieves an application by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Application, error)

	// FindByEvent retrieves all applications for an event, oldest first.
	FindByEvent(ctx context.Context, eventID uuid.UUID) ([]*entity.Application, error)

	// FindByStoreProfile retrieves all applications a store has made, newest first.
	FindByStoreProfile(ctx context.Context, storeProfileID uuid.UUID) ([]*entity.Application, error)

	// FindByEventAndStore retrieves the application a store made to an event, if any.
	FindByEventAndStore(ctx context.Context, eventID, storeProfileID uuid.UUID) (*entity.Application, error)

	// Update persists the full application record.
	Update(ctx context.Context, application *entity.Application) error
}
