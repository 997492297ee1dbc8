package usecase

import (
	"context"
	"time"

	"yatai/internal/domain/entity"

	"github.com/google/uuid"
)

// EventImageInput carries an uploaded event main image.
type EventImageInput struct {
	FileName string
	MimeType string
	Content  []byte
}

// EventInput carries the organizer-editable event fields.
type EventInput struct {
	Title               string     `json:"title" validate:"required"`
	Description         string     `json:"description"`
	EventDate           time.Time  `json:"event_date" validate:"required"`
	StartTime           string     `json:"start_time"`
	EndTime             string     `json:"end_time"`
	Location            string     `json:"location"`
	Address             string     `json:"address"`
	MaxStores           int        `json:"max_stores" validate:"gte=0"`
	EntryFee            int64      `json:"entry_fee" validate:"gte=0"`
	RequiredDocuments   []string   `json:"required_documents"`
	ApplicationDeadline *time.Time `json:"application_deadline"`
}

// EventUsecase governs the organizer-driven event lifecycle.
type EventUsecase interface {
	// CreateEvent creates a new draft event owned by the organizer profile.
	CreateEvent(ctx context.Context, organizerProfileID uuid.UUID, input *EventInput) (*entity.Event, error)

	// UpdateEvent applies the editable fields to an event the organizer owns.
	UpdateEvent(ctx context.Context, organizerProfileID, eventID uuid.UUID, input *EventInput) (*entity.Event, error)

	// PublishEvent transitions a draft event to published.
	PublishEvent(ctx context.Context, organizerProfileID, eventID uuid.UUID) (*entity.Event, error)

	// CancelEvent transitions a published event to cancelled.
	CancelEvent(ctx context.Context, organizerProfileID, eventID uuid.UUID) (*entity.Event, error)

	// CompleteEvent marks a published event as having taken place.
	CompleteEvent(ctx context.Context, organizerProfileID, eventID uuid.UUID) (*entity.Event, error)

	// GetEvent retrieves a single event.
	GetEvent(ctx context.Context, eventID uuid.UUID) (*entity.Event, error)

	// ListPublishedEvents lists events stores can currently browse and apply to.
	ListPublishedEvents(ctx context.Context) ([]*entity.Event, error)

	// ListOrganizerEvents lists all events owned by an organizer profile.
	ListOrganizerEvents(ctx context.Context, organizerProfileID uuid.UUID) ([]*entity.Event, error)

	// AttachMainImage runs the image through the upload orchestrator (image
	// size and MIME constraints apply) and records its public URL on the event.
	AttachMainImage(ctx context.Context, organizerProfileID, eventID uuid.UUID, input *EventImageInput) (*entity.Event, error)

	// EventQR renders a PNG QR code linking to the event's page.
	EventQR(ctx context.Context, eventID uuid.UUID) ([]byte, error)
}
