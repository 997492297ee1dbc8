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

// applicationRepository implements the domain's ApplicationRepository interface using GORM.
type applicationRepository struct {
	db *gorm.DB
}

// NewApplicationRepository is the constructor for applicationRepository.
func NewApplicationRepository(db *gorm.DB) repository.ApplicationRepository {
	return &applicationRepository{db: db}
}

// Create persists a new application. The unique index on (event, store) is the
// final arbiter against concurrent double-applies.
func (repo *applicationRepository) Create(ctx context.Context, application *entity.Application) error {
	applicationM := model.ToApplicationModel(application)

	if err := repo.db.WithContext(ctx).Create(applicationM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateApplication
		}

		return errors.Wrap(err, "failed to create application")
	}

	application.ID = applicationM.ID
	application.CreatedAt = applicationM.CreatedAt
	application.UpdatedAt = applicationM.UpdatedAt

	return nil
}

// FindByID retrieves a single application by its unique ID.
func (repo *applicationRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Application, error) {
	var applicationM model.ApplicationModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&applicationM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrApplicationNotFound
		}

		return nil, errors.Wrap(err, "failed to find application by id")
	}

	return applicationM.ToApplicationDomain(), nil
}

// FindByEvent retrieves all applications for an event, oldest first.
func (repo *applicationRepository) FindByEvent(ctx context.Context, eventID uuid.UUID) ([]*entity.Application, error) {
	var applicationMs []*model.ApplicationModel
	err := repo.db.WithContext(ctx).
		Where("event_id = ?", eventID).
		Order("applied_at ASC").
		Find(&applicationMs).Error

	if err != nil {
		return nil, errors.Wrap(err, "failed to find applications by event")
	}

	applications := make([]*entity.Application, 0, len(applicationMs))
	for _, applicationM := range applicationMs {
		applications = append(applications, applicationM.ToApplicationDomain())
	}

	return applications, nil
}

// FindByStoreProfile retrieves all applications a store has made, newest first.
func (repo *applicationRepository) FindByStoreProfile(ctx context.Context, storeProfileID uuid.UUID) ([]*entity.Application, error) {
	var applicationMs []*model.ApplicationModel
	err := repo.db.WithContext(ctx).
		Where("store_profile_id = ?", storeProfileID).
		Order("applied_at DESC").
		Find(&applicationMs).Error

	if err != nil {
		return nil, errors.Wrap(err, "failed to find applications by store profile")
	}

	applications := make([]*entity.Application, 0, len(applicationMs))
	for _, applicationM := range applicationMs {
		applications = append(applications, applicationM.ToApplicationDomain())
	}

	return applications, nil
}

// FindByEventAndStore retrieves the application a store made to an event, if any.
func (repo *applicationRepository) FindByEventAndStore(ctx context.Context, eventID, storeProfileID uuid.UUID) (*entity.Application, error) {
	var applicationM model.ApplicationModel
	err := repo.db.WithContext(ctx).
		Where("event_id = ? AND store_profile_id = ?", eventID, storeProfileID).
		First(&applicationM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrApplicationNotFound
		}

		return nil, errors.Wrap(err, "failed to find application by event and store")
	}

	return applicationM.ToApplicationDomain(), nil
}

// Update persists the full application record.
func (repo *applicationRepository) Update(ctx context.Context, application *entity.Application) error {
	applicationM := model.ToApplicationModel(application)

	result := repo.db.WithContext(ctx).
		Model(&model.ApplicationModel{}).
		Where("id = ?", applicationM.ID).
		Select("*").
		Omit("id", "event_id", "store_profile_id", "applied_at", "created_at").
		Updates(applicationM)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update application")
	}
	if result.RowsAffected == 0 {
		return repository.ErrApplicationNotFound
	}

	return nil
}
