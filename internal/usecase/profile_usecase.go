package usecase

import (
	"context"

	"yatai/internal/domain/entity"

	"github.com/google/uuid"
)

// UpdateProfileInput carries the editable profile fields.
type UpdateProfileInput struct {
	Name        string `json:"name" validate:"required"`
	ContactName string `json:"contact_name" validate:"required"`
	Phone       string `json:"phone"`
	Email       string `json:"email" validate:"omitempty,email"`
	Address     string `json:"address"`
	Description string `json:"description"`
	Website     string `json:"website" validate:"omitempty,url"`
	Instagram   string `json:"instagram"`
	Twitter     string `json:"twitter"`
}

// ProfileUsecase governs profiles and their verification state machine.
type ProfileUsecase interface {
	// GetOrCreateProfile returns the user's profile for a role, creating an
	// empty not_submitted profile on first access.
	GetOrCreateProfile(ctx context.Context, userID uuid.UUID, role entity.Role) (*entity.Profile, error)

	// UpdateProfile applies the editable fields to the user's profile.
	UpdateProfile(ctx context.Context, userID uuid.UUID, role entity.Role, input *UpdateProfileInput) (*entity.Profile, error)

	// SubmitForVerification moves the profile to pending once every required
	// document type has been uploaded. On failure the stored profile is
	// untouched and the error names the missing types.
	SubmitForVerification(ctx context.Context, userID uuid.UUID, role entity.Role) (*entity.Profile, error)

	// DecideVerification records a reviewer's approve/reject outcome on a
	// pending profile and publishes a status-change event.
	DecideVerification(ctx context.Context, profileID uuid.UUID, outcome entity.VerificationOutcome) (*entity.Profile, error)
}
