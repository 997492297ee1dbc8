package repository

import (
	"context"
	"time"

	"yatai/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrEventNotFound is returned when an event is not found.
var ErrEventNotFound = errors.New("event not found")

// EventRepository defines the interface for event-related database operations.
type EventRepository interface {
	// Create persists a new event.
	Create(ctx context.Context, event *entity.Event) error

	// FindByID retrieves an event by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Event, error)

	// FindByOrganizer retrieves all events owned by an organizer profile,
	// newest first.
	FindByOrganizer(ctx context.Context, organizerProfileID uuid.UUID) ([]*entity.Event, error)

	// ListPublished retrieves published events whose application deadline has
	// not passed at the given moment, ordered by event date.
	ListPublished(ctx context.Context, now time.Time) ([]*entity.Event, error)

	// Update persists the full event record.
	Update(ctx context.Context, event *entity.Event) error
}
