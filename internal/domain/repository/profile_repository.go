package repository

import (
	"context"

	"yatai/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrProfileNotFound is returned when a profile is not found.
var ErrProfileNotFound = errors.New("profile not found")

// ProfileRepository defines the interface for profile-related database
// operations. Verification transitions always persist the full record
// through Update; partial-field updates are deliberately not offered so the
// is_verified flag and verification status can never be written separately.
type ProfileRepository interface {
	// Create persists a new profile.
	Create(ctx context.Context, profile *entity.Profile) error

	// FindByID retrieves a profile by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Profile, error)

	// FindByUser retrieves the profile a user owns for a given role.
	FindByUser(ctx context.Context, userID uuid.UUID, role entity.Role) (*entity.Profile, error)

	// Update persists the full profile record.
	Update(ctx context.Context, profile *entity.Profile) error
}
