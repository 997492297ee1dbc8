package impl

import (
	"context"
	"testing"
	"time"

	"yatai/internal/domain/entity"
	domainerrors "yatai/internal/domain/errors"
	"yatai/internal/domain/repository"
	mockRepo "yatai/internal/mocks/repository"
	mockService "yatai/internal/mocks/service"
	mockUsecase "yatai/internal/mocks/usecase"
	"yatai/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type eventFixture struct {
	eventRepo *mockRepo.MockEventRepository
	documents *mockUsecase.MockDocumentUsecase
	storage   *mockService.MockFileStorage
	qr        *mockService.MockQRCodeService
	svc       usecase.EventUsecase
}

func newEventFixture(t *testing.T) *eventFixture {
	f := &eventFixture{
		eventRepo: mockRepo.NewMockEventRepository(t),
		documents: mockUsecase.NewMockDocumentUsecase(t),
		storage:   mockService.NewMockFileStorage(t),
		qr:        mockService.NewMockQRCodeService(t),
	}
	f.svc = NewEventService(f.eventRepo, f.documents, f.storage, f.qr, newTestLogger())

	return f
}

func newEventInput() *usecase.EventInput {
	return &usecase.EventInput{
		Title:     "Summer Night Market",
		EventDate: time.Date(2026, 7, 18, 0, 0, 0, 0, time.UTC),
		Location:  "Riverside Park",
		MaxStores: 30,
		EntryFee:  5000,
	}
}

func TestEventService_CreateEvent_StartsAsDraft(t *testing.T) {
	f := newEventFixture(t)

	ctx := context.Background()
	organizerID := uuid.New()

	f.eventRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Event")).
		Return(nil)

	event, err := f.svc.CreateEvent(ctx, organizerID, newEventInput())
	require.NoError(t, err)
	assert.Equal(t, entity.EventStatusDraft, event.Status)
	assert.Equal(t, organizerID, event.OrganizerProfileID)
	assert.Equal(t, "Summer Night Market", event.Title)
}

func TestEventService_UpdateEvent_Success(t *testing.T) {
	f := newEventFixture(t)

	ctx := context.Background()
	organizerID := uuid.New()
	event := &entity.Event{
		ID:                 uuid.New(),
		OrganizerProfileID: organizerID,
		Title:              "Old Title",
		Status:             entity.EventStatusPublished,
	}

	f.eventRepo.EXPECT().FindByID(ctx, event.ID).Return(event, nil)
	f.eventRepo.EXPECT().Update(ctx, event).Return(nil)

	result, err := f.svc.UpdateEvent(ctx, organizerID, event.ID, newEventInput())
	require.NoError(t, err)
	assert.Equal(t, "Summer Night Market", result.Title)
}

func TestEventService_UpdateEvent_TerminalStatusRejected(t *testing.T) {
	for _, status := range []entity.EventStatus{
		entity.EventStatusCancelled,
		entity.EventStatusCompleted,
	} {
		t.Run(status.String(), func(t *testing.T) {
			f := newEventFixture(t)

			ctx := context.Background()
			organizerID := uuid.New()
			event := &entity.Event{
				ID:                 uuid.New(),
				OrganizerProfileID: organizerID,
				Title:              "Summer Night Market",
				Status:             status,
			}

			f.eventRepo.EXPECT().FindByID(ctx, event.ID).Return(event, nil)

			result, err := f.svc.UpdateEvent(ctx, organizerID, event.ID, newEventInput())
			require.Error(t, err)
			assert.Nil(t, result)
			assert.ErrorIs(t, err, domainerrors.ErrEventNotEditable)
			assert.Equal(t, "Summer Night Market", event.Title)
		})
	}
}

func TestEventService_PublishEvent_Success(t *testing.T) {
	f := newEventFixture(t)

	ctx := context.Background()
	organizerID := uuid.New()
	event := &entity.Event{
		ID:                 uuid.New(),
		OrganizerProfileID: organizerID,
		Title:              "Summer Night Market",
		EventDate:          time.Date(2026, 7, 18, 0, 0, 0, 0, time.UTC),
		Location:           "Riverside Park",
		Status:             entity.EventStatusDraft,
	}

	f.eventRepo.EXPECT().FindByID(ctx, event.ID).Return(event, nil)
	f.eventRepo.EXPECT().Update(ctx, event).Return(nil)

	result, err := f.svc.PublishEvent(ctx, organizerID, event.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.EventStatusPublished, result.Status)
}

func TestEventService_PublishEvent_IncompleteDraft(t *testing.T) {
	f := newEventFixture(t)

	ctx := context.Background()
	organizerID := uuid.New()
	event := &entity.Event{
		ID:                 uuid.New(),
		OrganizerProfileID: organizerID,
		Title:              "Summer Night Market",
		Status:             entity.EventStatusDraft,
	}

	f.eventRepo.EXPECT().FindByID(ctx, event.ID).Return(event, nil)

	result, err := f.svc.PublishEvent(ctx, organizerID, event.ID)
	require.Error(t, err)
	assert.Nil(t, result)

	var missingErr *domainerrors.MissingFieldsError
	require.ErrorAs(t, err, &missingErr)
	assert.Contains(t, missingErr.Fields, "event_date")
	assert.Contains(t, missingErr.Fields, "location")
	assert.Equal(t, entity.EventStatusDraft, event.Status)
}

func TestEventService_PublishEvent_NotOwner(t *testing.T) {
	f := newEventFixture(t)

	ctx := context.Background()
	event := &entity.Event{
		ID:                 uuid.New(),
		OrganizerProfileID: uuid.New(),
		Status:             entity.EventStatusDraft,
	}

	f.eventRepo.EXPECT().FindByID(ctx, event.ID).Return(event, nil)

	result, err := f.svc.PublishEvent(ctx, uuid.New(), event.ID)
	require.Error(t, err)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestEventService_CancelEvent_DraftRejected(t *testing.T) {
	f := newEventFixture(t)

	ctx := context.Background()
	organizerID := uuid.New()
	event := &entity.Event{
		ID:                 uuid.New(),
		OrganizerProfileID: organizerID,
		Status:             entity.EventStatusDraft,
	}

	f.eventRepo.EXPECT().FindByID(ctx, event.ID).Return(event, nil)

	result, err := f.svc.CancelEvent(ctx, organizerID, event.ID)
	require.Error(t, err)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, domainerrors.ErrEventNotPublished)
}

func TestEventService_CompleteEvent_Success(t *testing.T) {
	f := newEventFixture(t)

	ctx := context.Background()
	organizerID := uuid.New()
	event := &entity.Event{
		ID:                 uuid.New(),
		OrganizerProfileID: organizerID,
		Status:             entity.EventStatusPublished,
	}

	f.eventRepo.EXPECT().FindByID(ctx, event.ID).Return(event, nil)
	f.eventRepo.EXPECT().Update(ctx, event).Return(nil)

	result, err := f.svc.CompleteEvent(ctx, organizerID, event.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.EventStatusCompleted, result.Status)
}

func TestEventService_GetEvent_NotFound(t *testing.T) {
	f := newEventFixture(t)

	ctx := context.Background()
	id := uuid.New()

	f.eventRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrEventNotFound)

	event, err := f.svc.GetEvent(ctx, id)
	require.Error(t, err)
	assert.Nil(t, event)
	assert.ErrorIs(t, err, domainerrors.ErrEventNotFound)
}

func TestEventService_ListPublishedEvents(t *testing.T) {
	f := newEventFixture(t)

	ctx := context.Background()
	expected := []*entity.Event{
		{ID: uuid.New(), Status: entity.EventStatusPublished},
	}

	f.eventRepo.EXPECT().
		ListPublished(ctx, mock.AnythingOfType("time.Time")).
		Return(expected, nil)

	events, err := f.svc.ListPublishedEvents(ctx)
	require.NoError(t, err)
	assert.Equal(t, expected, events)
}

func TestEventService_EventQR(t *testing.T) {
	f := newEventFixture(t)

	ctx := context.Background()
	event := &entity.Event{ID: uuid.New(), Status: entity.EventStatusPublished}
	png := []byte{0x89, 'P', 'N', 'G'}

	f.eventRepo.EXPECT().FindByID(ctx, event.ID).Return(event, nil)
	f.qr.EXPECT().GenerateEventQR(event.ID).Return(png, nil)

	result, err := f.svc.EventQR(ctx, event.ID)
	require.NoError(t, err)
	assert.Equal(t, png, result)
}

func TestEventService_AttachMainImage_UploadsThroughOrchestrator(t *testing.T) {
	f := newEventFixture(t)

	ctx := context.Background()
	organizerID := uuid.New()
	event := &entity.Event{
		ID:                 uuid.New(),
		OrganizerProfileID: organizerID,
		Status:             entity.EventStatusDraft,
	}
	stored := &entity.Document{
		ID:       uuid.New(),
		FilePath: "documents/event_image/1_abc_poster.png",
	}

	f.eventRepo.EXPECT().FindByID(ctx, event.ID).Return(event, nil)
	f.documents.EXPECT().
		Upload(ctx, mock.AnythingOfType("*usecase.UploadInput")).
		Run(func(_ context.Context, input *usecase.UploadInput) {
			assert.Equal(t, entity.DocumentOwnerEvent, input.OwnerKind)
			assert.Equal(t, event.ID, input.OwnerID)
			assert.Equal(t, entity.DocumentTypeEventImage, input.DocumentType)
			assert.Equal(t, usecase.UploadPurposeEventImage, input.Purpose)
			assert.Equal(t, "image/png", input.MimeType)
		}).
		Return(stored, nil)
	f.storage.EXPECT().
		PublicURL(ctx, stored.FilePath).
		Return("https://cdn.example.com/"+stored.FilePath, nil)
	f.eventRepo.EXPECT().Update(ctx, event).Return(nil)

	result, err := f.svc.AttachMainImage(ctx, organizerID, event.ID, &usecase.EventImageInput{
		FileName: "poster.png",
		MimeType: "image/png",
		Content:  []byte{0x89, 'P', 'N', 'G'},
	})
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/"+stored.FilePath, result.MainImageURL)
}

func TestEventService_AttachMainImage_RejectedUploadLeavesEventUntouched(t *testing.T) {
	f := newEventFixture(t)

	ctx := context.Background()
	organizerID := uuid.New()
	event := &entity.Event{
		ID:                 uuid.New(),
		OrganizerProfileID: organizerID,
		Status:             entity.EventStatusPublished,
	}

	f.eventRepo.EXPECT().FindByID(ctx, event.ID).Return(event, nil)
	f.documents.EXPECT().
		Upload(ctx, mock.AnythingOfType("*usecase.UploadInput")).
		Return(nil, domainerrors.ErrUnsupportedFileType)

	result, err := f.svc.AttachMainImage(ctx, organizerID, event.ID, &usecase.EventImageInput{
		FileName: "notes.pdf",
		MimeType: "application/pdf",
		Content:  []byte("%PDF-1.4"),
	})
	require.Error(t, err)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, domainerrors.ErrUnsupportedFileType)
	assert.Empty(t, event.MainImageURL)
}

func TestEventService_AttachMainImage_CancelledRejected(t *testing.T) {
	f := newEventFixture(t)

	ctx := context.Background()
	organizerID := uuid.New()
	event := &entity.Event{
		ID:                 uuid.New(),
		OrganizerProfileID: organizerID,
		Status:             entity.EventStatusCancelled,
	}

	f.eventRepo.EXPECT().FindByID(ctx, event.ID).Return(event, nil)

	result, err := f.svc.AttachMainImage(ctx, organizerID, event.ID, &usecase.EventImageInput{
		FileName: "poster.png",
		MimeType: "image/png",
		Content:  []byte{0x89, 'P', 'N', 'G'},
	})
	require.Error(t, err)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, domainerrors.ErrEventNotEditable)
}
