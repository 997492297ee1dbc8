package postgres

import (
	"context"

	"yatai/internal/domain/entity"
	"yatai/internal/domain/repository"
	"yatai/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// profileRepository implements the domain's ProfileRepository interface using GORM.
type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository is the constructor for profileRepository.
func NewProfileRepository(db *gorm.DB) repository.ProfileRepository {
	return &profileRepository{db: db}
}

// Create persists a new profile entity to the database.
func (repo *profileRepository) Create(ctx context.Context, profile *entity.Profile) error {
	profileM := model.ToProfileModel(profile)

	if err := repo.db.WithContext(ctx).Create(profileM).Error; err != nil {
		// The profiles table references users; a violated foreign key means
		// the owning user row is gone.
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}

		return errors.Wrap(err, "failed to create profile")
	}

	profile.ID = profileM.ID
	profile.CreatedAt = profileM.CreatedAt
	profile.UpdatedAt = profileM.UpdatedAt

	return nil
}

// FindByID retrieves a single profile by its unique ID.
func (repo *profileRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Profile, error) {
	var profileM model.ProfileModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&profileM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find profile by id")
	}

	return profileM.ToProfileDomain(), nil
}

// FindByUser retrieves the profile a user owns for a given role.
func (repo *profileRepository) FindByUser(ctx context.Context, userID uuid.UUID, role entity.Role) (*entity.Profile, error) {
	var profileM model.ProfileModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ? AND role = ?", userID, role.String()).
		First(&profileM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find profile by user")
	}

	return profileM.ToProfileDomain(), nil
}

// Update persists the full profile record. Writing the whole record keeps the
// verification status and is_verified flag consistent with each other.
func (repo *profileRepository) Update(ctx context.Context, profile *entity.Profile) error {
	profileM := model.ToProfileModel(profile)

	result := repo.db.WithContext(ctx).
		Model(&model.ProfileModel{}).
		Where("id = ?", profileM.ID).
		Select("*").
		Omit("id", "user_id", "role", "created_at").
		Updates(profileM)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update profile")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProfileNotFound
	}

	return nil
}
