package impl

import (
	"context"
	"log/slog"
	"time"

	"yatai/internal/domain/entity"
	domainerrors "yatai/internal/domain/errors"
	"yatai/internal/domain/repository"
	"yatai/internal/domain/service"
	"yatai/internal/errors"
	"yatai/internal/usecase"

	"github.com/google/uuid"
)

type applicationService struct {
	applicationRepo repository.ApplicationRepository
	eventRepo       repository.EventRepository
	profileRepo     repository.ProfileRepository
	publisher       service.EventPublisher
	logger          *slog.Logger
}

// NewApplicationService creates a new application service instance
func NewApplicationService(
	applicationRepo repository.ApplicationRepository,
	eventRepo repository.EventRepository,
	profileRepo repository.ProfileRepository,
	publisher service.EventPublisher,
	logger *slog.Logger,
) usecase.ApplicationUsecase {
	return &applicationService{
		applicationRepo: applicationRepo,
		eventRepo:       eventRepo,
		profileRepo:     profileRepo,
		publisher:       publisher,
		logger:          logger,
	}
}

// Apply creates a pending application from a store to a published event. The
// deadline is checked against the wall clock; the database's unique index on
// (event, store) backs the duplicate check against races.
func (s *applicationService) Apply(ctx context.Context, eventID, storeProfileID uuid.UUID, input *usecase.ApplyInput) (*entity.Application, error) {
	event, err := s.eventRepo.FindByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, repository.ErrEventNotFound) {
			return nil, domainerrors.ErrEventNotFound
		}

		return nil, errors.Wrap(err, "failed to find event")
	}

	if err := event.CanAcceptApplications(time.Now()); err != nil {
		return nil, err
	}

	if _, err := s.applicationRepo.FindByEventAndStore(ctx, eventID, storeProfileID); err == nil {
		return nil, domainerrors.ErrAlreadyApplied
	} else if !errors.Is(err, repository.ErrApplicationNotFound) {
		return nil, errors.Wrap(err, "failed to check existing application")
	}

	profile, err := s.profileRepo.FindByID(ctx, storeProfileID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, domainerrors.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find store profile")
	}

	application := &entity.Application{
		ID:                 uuid.New(),
		EventID:            eventID,
		StoreProfileID:     storeProfileID,
		StoreName:          profile.Name,
		ContactName:        input.ContactName,
		Phone:              input.Phone,
		Email:              input.Email,
		ProductDescription: input.ProductDescription,
		BoothSize:          input.BoothSize,
		EquipmentNeeded:    input.EquipmentNeeded,
		AdditionalInfo:     input.AdditionalInfo,
		Status:             entity.ApplicationStatusPending,
		AppliedAt:          time.Now(),
	}

	if err := s.applicationRepo.Create(ctx, application); err != nil {
		if errors.Is(err, repository.ErrDuplicateApplication) {
			return nil, domainerrors.ErrAlreadyApplied
		}

		return nil, errors.Wrap(err, "failed to create application")
	}

	s.logger.Info("application submitted",
		slog.String("application_id", application.ID.String()),
		slog.String("event_id", eventID.String()),
		slog.String("store_profile_id", storeProfileID.String()),
	)

	return application, nil
}

// Decide records the organizer's approve/reject outcome. Repeating the same
// decision is a no-op and publishes nothing.
func (s *applicationService) Decide(ctx context.Context, organizerProfileID, applicationID uuid.UUID, outcome entity.ApplicationOutcome) (*entity.Application, error) {
	application, err := s.findApplication(ctx, applicationID)
	if err != nil {
		return nil, err
	}

	event, err := s.eventRepo.FindByID(ctx, application.EventID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find event")
	}
	if event.OrganizerProfileID != organizerProfileID {
		return nil, domainerrors.ErrForbidden
	}

	oldStatus := application.Status
	changed, err := application.Decide(outcome)
	if err != nil {
		return nil, err
	}
	if !changed {
		return application, nil
	}

	if err := s.applicationRepo.Update(ctx, application); err != nil {
		return nil, errors.Wrap(err, "failed to update application")
	}

	s.publishStatusChange(ctx, application, oldStatus)

	return application, nil
}

// Cancel lets a store withdraw its own pending application.
func (s *applicationService) Cancel(ctx context.Context, storeProfileID, applicationID uuid.UUID) (*entity.Application, error) {
	application, err := s.findApplication(ctx, applicationID)
	if err != nil {
		return nil, err
	}
	if application.StoreProfileID != storeProfileID {
		return nil, domainerrors.ErrForbidden
	}

	if err := application.Cancel(); err != nil {
		return nil, err
	}

	if err := s.applicationRepo.Update(ctx, application); err != nil {
		return nil, errors.Wrap(err, "failed to update application")
	}

	return application, nil
}

// ListForEvent lists an event's applications for its organizer.
func (s *applicationService) ListForEvent(ctx context.Context, organizerProfileID, eventID uuid.UUID) ([]*entity.Application, error) {
	event, err := s.eventRepo.FindByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, repository.ErrEventNotFound) {
			return nil, domainerrors.ErrEventNotFound
		}

		return nil, errors.Wrap(err, "failed to find event")
	}
	if event.OrganizerProfileID != organizerProfileID {
		return nil, domainerrors.ErrForbidden
	}

	applications, err := s.applicationRepo.FindByEvent(ctx, eventID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list event applications")
	}

	return applications, nil
}

// ListForStore lists the applications a store has made.
func (s *applicationService) ListForStore(ctx context.Context, storeProfileID uuid.UUID) ([]*entity.Application, error) {
	applications, err := s.applicationRepo.FindByStoreProfile(ctx, storeProfileID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list store applications")
	}

	return applications, nil
}

func (s *applicationService) findApplication(ctx context.Context, applicationID uuid.UUID) (*entity.Application, error) {
	application, err := s.applicationRepo.FindByID(ctx, applicationID)
	if err != nil {
		if errors.Is(err, repository.ErrApplicationNotFound) {
			return nil, domainerrors.ErrApplicationNotFound
		}

		return nil, errors.Wrap(err, "failed to find application")
	}

	return application, nil
}

// publishStatusChange notifies the store's user of a decision. Failures are
// logged and swallowed; the decision itself is already durable.
func (s *applicationService) publishStatusChange(ctx context.Context, application *entity.Application, oldStatus entity.ApplicationStatus) {
	profile, err := s.profileRepo.FindByID(ctx, application.StoreProfileID)
	if err != nil {
		s.logger.Error("failed to resolve application recipient",
			slog.String("application_id", application.ID.String()),
			slog.Any("error", err),
		)

		return
	}

	event := &service.StatusChangeEvent{
		Kind:            service.StatusChangeApplication,
		SubjectID:       application.ID.String(),
		RecipientUserID: profile.UserID.String(),
		OldStatus:       oldStatus.String(),
		NewStatus:       application.Status.String(),
		OccurredAt:      time.Now().UTC().Format(time.RFC3339),
	}
	if err := s.publisher.PublishStatusChange(ctx, event); err != nil {
		s.logger.Error("failed to publish application status change",
			slog.String("application_id", application.ID.String()),
			slog.Any("error", err),
		)
	}
}
