package postgres

import (
	"context"
	"time"

	"yatai/internal/domain/entity"
	"yatai/internal/domain/repository"
	"yatai/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// eventRepository implements the domain's EventRepository interface using GORM.
type eventRepository struct {
	db *gorm.DB
}

// NewEventRepository is the constructor for eventRepository.
func NewEventRepository(db *gorm.DB) repository.EventRepository {
	return &eventRepository{db: db}
}

// Create persists a new event entity to the database.
func (repo *eventRepository) Create(ctx context.Context, event *entity.Event) error {
	eventM := model.ToEventModel(event)

	if err := repo.db.WithContext(ctx).Create(eventM).Error; err != nil {
		return errors.Wrap(err, "failed to create event")
	}

	event.ID = eventM.ID
	event.CreatedAt = eventM.CreatedAt
	event.UpdatedAt = eventM.UpdatedAt

	return nil
}

// FindByID retrieves a single event by its unique ID.
func (repo *eventRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Event, error) {
	var eventM model.EventModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&eventM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrEventNotFound
		}

		return nil, errors.Wrap(err, "failed to find event by id")
	}

	return eventM.ToEventDomain(), nil
}

// FindByOrganizer retrieves all events owned by an organizer profile, newest first.
func (repo *eventRepository) FindByOrganizer(ctx context.Context, organizerProfileID uuid.UUID) ([]*entity.Event, error) {
	var eventMs []*model.EventModel
	err := repo.db.WithContext(ctx).
		Where("organizer_profile_id = ?", organizerProfileID).
		Order("created_at DESC").
		Find(&eventMs).Error

	if err != nil {
		return nil, errors.Wrap(err, "failed to find events by organizer")
	}

	events := make([]*entity.Event, 0, len(eventMs))
	for _, eventM := range eventMs {
		events = append(events, eventM.ToEventDomain())
	}

	return events, nil
}

// ListPublished retrieves published events that still accept applications at
// the given moment. Events without a deadline stay listed until completed.
func (repo *eventRepository) ListPublished(ctx context.Context, now time.Time) ([]*entity.Event, error) {
	var eventMs []*model.EventModel
	err := repo.db.WithContext(ctx).
		Where("status = ?", entity.EventStatusPublished.String()).
		Where("application_deadline IS NULL OR application_deadline >= ?", now).
		Order("event_date ASC").
		Find(&eventMs).Error

	if err != nil {
		return nil, errors.Wrap(err, "failed to list published events")
	}

	events := make([]*entity.Event, 0, len(eventMs))
	for _, eventM := range eventMs {
		events = append(events, eventM.ToEventDomain())
	}

	return events, nil
}

// Update persists the full event record.
func (repo *eventRepository) Update(ctx context.Context, event *entity.Event) error {
	eventM := model.ToEventModel(event)

	result := repo.db.WithContext(ctx).
		Model(&model.EventModel{}).
		Where("id = ?", eventM.ID).
		Select("*").
		Omit("id", "organizer_profile_id", "created_at").
		Updates(eventM)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update event")
	}
	if result.RowsAffected == 0 {
		return repository.ErrEventNotFound
	}

	return nil
}
