package usecase

import (
	"context"

	"yatai/internal/domain/entity"

	"github.com/google/uuid"
)

// ApplyInput carries the fields a store fills in when applying to an event.
type ApplyInput struct {
	ContactName        string   `json:"contact_name" validate:"required"`
	Phone              string   `json:"phone"`
	Email              string   `json:"email" validate:"omitempty,email"`
	ProductDescription string   `json:"product_description" validate:"required"`
	BoothSize          string   `json:"booth_size"`
	EquipmentNeeded    []string `json:"equipment_needed"`
	AdditionalInfo     string   `json:"additional_info"`
}

// ApplicationUsecase governs the application state machine.
type ApplicationUsecase interface {
	// Apply creates a pending application from a store to a published event.
	// Fails when the event is not accepting applications, the deadline has
	// passed, or the store has already applied.
	Apply(ctx context.Context, eventID, storeProfileID uuid.UUID, input *ApplyInput) (*entity.Application, error)

	// Decide records the organizer's approve/reject outcome. Approved and
	// rejected are terminal; repeating the same outcome is a no-op.
	Decide(ctx context.Context, organizerProfileID, applicationID uuid.UUID, outcome entity.ApplicationOutcome) (*entity.Application, error)

	// Cancel lets a store withdraw its own pending application.
	Cancel(ctx context.Context, storeProfileID, applicationID uuid.UUID) (*entity.Application, error)

	// ListForEvent lists an event's applications for its organizer.
	ListForEvent(ctx context.Context, organizerProfileID, eventID uuid.UUID) ([]*entity.Application, error)

	// ListForStore lists the applications a store has made.
	ListForStore(ctx context.Context, storeProfileID uuid.UUID) ([]*entity.Application, error)
}
