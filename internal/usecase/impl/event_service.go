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

type eventService struct {
	eventRepo repository.EventRepository
	documents usecase.DocumentUsecase
	storage   service.FileStorage
	qrSvc     service.QRCodeService
	logger    *slog.Logger
}

// NewEventService creates a new event service instance
func NewEventService(
	eventRepo repository.EventRepository,
	documents usecase.DocumentUsecase,
	storage service.FileStorage,
	qrSvc service.QRCodeService,
	logger *slog.Logger,
) usecase.EventUsecase {
	return &eventService{
		eventRepo: eventRepo,
		documents: documents,
		storage:   storage,
		qrSvc:     qrSvc,
		logger:    logger,
	}
}

// CreateEvent creates a new draft event owned by the organizer profile.
func (s *eventService) CreateEvent(ctx context.Context, organizerProfileID uuid.UUID, input *usecase.EventInput) (*entity.Event, error) {
	event := &entity.Event{
		ID:                 uuid.New(),
		OrganizerProfileID: organizerProfileID,
		Status:             entity.EventStatusDraft,
	}
	applyEventInput(event, input)

	if err := s.eventRepo.Create(ctx, event); err != nil {
		return nil, errors.Wrap(err, "failed to create event")
	}

	s.logger.Info("event created",
		slog.String("event_id", event.ID.String()),
		slog.String("organizer_profile_id", organizerProfileID.String()),
	)

	return event, nil
}

// UpdateEvent applies the editable fields to an event the organizer owns.
func (s *eventService) UpdateEvent(ctx context.Context, organizerProfileID, eventID uuid.UUID, input *usecase.EventInput) (*entity.Event, error) {
	event, err := s.findOwned(ctx, organizerProfileID, eventID)
	if err != nil {
		return nil, err
	}

	if err := event.CanBeEdited(); err != nil {
		return nil, err
	}

	applyEventInput(event, input)

	if err := s.eventRepo.Update(ctx, event); err != nil {
		return nil, errors.Wrap(err, "failed to update event")
	}

	return event, nil
}

// PublishEvent transitions a draft event to published.
func (s *eventService) PublishEvent(ctx context.Context, organizerProfileID, eventID uuid.UUID) (*entity.Event, error) {
	return s.transition(ctx, organizerProfileID, eventID, (*entity.Event).Publish)
}

// CancelEvent transitions a published event to cancelled.
func (s *eventService) CancelEvent(ctx context.Context, organizerProfileID, eventID uuid.UUID) (*entity.Event, error) {
	return s.transition(ctx, organizerProfileID, eventID, (*entity.Event).Cancel)
}

// CompleteEvent marks a published event as having taken place.
func (s *eventService) CompleteEvent(ctx context.Context, organizerProfileID, eventID uuid.UUID) (*entity.Event, error) {
	return s.transition(ctx, organizerProfileID, eventID, (*entity.Event).Complete)
}

// GetEvent retrieves a single event.
func (s *eventService) GetEvent(ctx context.Context, eventID uuid.UUID) (*entity.Event, error) {
	event, err := s.eventRepo.FindByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, repository.ErrEventNotFound) {
			return nil, domainerrors.ErrEventNotFound
		}

		return nil, errors.Wrap(err, "failed to find event")
	}

	return event, nil
}

// ListPublishedEvents lists events stores can currently browse and apply to.
func (s *eventService) ListPublishedEvents(ctx context.Context) ([]*entity.Event, error) {
	events, err := s.eventRepo.ListPublished(ctx, time.Now())
	if err != nil {
		return nil, errors.Wrap(err, "failed to list published events")
	}

	return events, nil
}

// ListOrganizerEvents lists all events owned by an organizer profile.
func (s *eventService) ListOrganizerEvents(ctx context.Context, organizerProfileID uuid.UUID) ([]*entity.Event, error) {
	events, err := s.eventRepo.FindByOrganizer(ctx, organizerProfileID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list organizer events")
	}

	return events, nil
}

// AttachMainImage stores the image through the document orchestrator, so the
// image size and MIME constraints and the blob-first compensation apply, then
// records the stored blob's public URL on the event.
func (s *eventService) AttachMainImage(ctx context.Context, organizerProfileID, eventID uuid.UUID, input *usecase.EventImageInput) (*entity.Event, error) {
	event, err := s.findOwned(ctx, organizerProfileID, eventID)
	if err != nil {
		return nil, err
	}

	if err := event.CanBeEdited(); err != nil {
		return nil, err
	}

	document, err := s.documents.Upload(ctx, &usecase.UploadInput{
		OwnerKind:    entity.DocumentOwnerEvent,
		OwnerID:      event.ID,
		DocumentType: entity.DocumentTypeEventImage,
		FileName:     input.FileName,
		MimeType:     input.MimeType,
		Content:      input.Content,
		Purpose:      usecase.UploadPurposeEventImage,
	})
	if err != nil {
		return nil, err
	}

	imageURL, err := s.storage.PublicURL(ctx, document.FilePath)
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve event image URL")
	}

	event.MainImageURL = imageURL

	if err := s.eventRepo.Update(ctx, event); err != nil {
		return nil, errors.Wrap(err, "failed to update event")
	}

	return event, nil
}

// EventQR renders a PNG QR code linking to the event's page. Any event that
// exists can be rendered; the landing page handles non-published states.
func (s *eventService) EventQR(ctx context.Context, eventID uuid.UUID) ([]byte, error) {
	event, err := s.GetEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}

	png, err := s.qrSvc.GenerateEventQR(event.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate event QR code")
	}

	return png, nil
}

// findOwned loads an event and verifies the organizer owns it.
func (s *eventService) findOwned(ctx context.Context, organizerProfileID, eventID uuid.UUID) (*entity.Event, error) {
	event, err := s.GetEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if event.OrganizerProfileID != organizerProfileID {
		return nil, domainerrors.ErrForbidden
	}

	return event, nil
}

// transition loads an owned event, applies a lifecycle guard and persists
// the result.
func (s *eventService) transition(ctx context.Context, organizerProfileID, eventID uuid.UUID, fn func(*entity.Event) error) (*entity.Event, error) {
	event, err := s.findOwned(ctx, organizerProfileID, eventID)
	if err != nil {
		return nil, err
	}

	if err := fn(event); err != nil {
		return nil, err
	}

	if err := s.eventRepo.Update(ctx, event); err != nil {
		return nil, errors.Wrap(err, "failed to update event")
	}

	s.logger.Info("event status changed",
		slog.String("event_id", event.ID.String()),
		slog.String("status", event.Status.String()),
	)

	return event, nil
}

func applyEventInput(event *entity.Event, input *usecase.EventInput) {
	event.Title = input.Title
	event.Description = input.Description
	event.EventDate = input.EventDate
	event.StartTime = input.StartTime
	event.EndTime = input.EndTime
	event.Location = input.Location
	event.Address = input.Address
	event.MaxStores = input.MaxStores
	event.EntryFee = input.EntryFee
	event.RequiredDocuments = input.RequiredDocuments
	event.ApplicationDeadline = input.ApplicationDeadline
}
