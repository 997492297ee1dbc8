package impl

import (
	"context"
	"testing"
	"time"

	"yatai/internal/domain/entity"
	domainerrors "yatai/internal/domain/errors"
	"yatai/internal/domain/repository"
	"yatai/internal/domain/service"
	mockRepo "yatai/internal/mocks/repository"
	mockService "yatai/internal/mocks/service"
	"yatai/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type applicationFixture struct {
	applicationRepo *mockRepo.MockApplicationRepository
	eventRepo       *mockRepo.MockEventRepository
	profileRepo     *mockRepo.MockProfileRepository
	publisher       *mockService.MockEventPublisher
	svc             usecase.ApplicationUsecase
}

func newApplicationFixture(t *testing.T) *applicationFixture {
	f := &applicationFixture{
		applicationRepo: mockRepo.NewMockApplicationRepository(t),
		eventRepo:       mockRepo.NewMockEventRepository(t),
		profileRepo:     mockRepo.NewMockProfileRepository(t),
		publisher:       mockService.NewMockEventPublisher(t),
	}
	f.svc = NewApplicationService(f.applicationRepo, f.eventRepo, f.profileRepo, f.publisher, newTestLogger())

	return f
}

func TestApplicationService_Apply_Success(t *testing.T) {
	f := newApplicationFixture(t)

	ctx := context.Background()
	storeProfile := &entity.Profile{ID: uuid.New(), UserID: uuid.New(), Name: "Takoyaki Taro"}
	deadline := time.Now().Add(24 * time.Hour)
	event := &entity.Event{
		ID:                  uuid.New(),
		OrganizerProfileID:  uuid.New(),
		Status:              entity.EventStatusPublished,
		ApplicationDeadline: &deadline,
	}

	f.eventRepo.EXPECT().FindByID(ctx, event.ID).Return(event, nil)
	f.applicationRepo.EXPECT().
		FindByEventAndStore(ctx, event.ID, storeProfile.ID).
		Return(nil, repository.ErrApplicationNotFound)
	f.profileRepo.EXPECT().FindByID(ctx, storeProfile.ID).Return(storeProfile, nil)
	f.applicationRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Application")).
		Return(nil)

	application, err := f.svc.Apply(ctx, event.ID, storeProfile.ID, &usecase.ApplyInput{
		ContactName:        "Taro Yamada",
		ProductDescription: "Octopus balls, eight per serving",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.ApplicationStatusPending, application.Status)
	assert.Equal(t, "Takoyaki Taro", application.StoreName)
	assert.Equal(t, event.ID, application.EventID)
	assert.False(t, application.AppliedAt.IsZero())
}

func TestApplicationService_Apply_DeadlinePassed(t *testing.T) {
	f := newApplicationFixture(t)

	ctx := context.Background()
	deadline := time.Now().Add(-time.Hour)
	event := &entity.Event{
		ID:                  uuid.New(),
		Status:              entity.EventStatusPublished,
		ApplicationDeadline: &deadline,
	}

	f.eventRepo.EXPECT().FindByID(ctx, event.ID).Return(event, nil)

	application, err := f.svc.Apply(ctx, event.ID, uuid.New(), &usecase.ApplyInput{})
	require.Error(t, err)
	assert.Nil(t, application)
	assert.ErrorIs(t, err, domainerrors.ErrApplicationDeadlinePassed)
}

func TestApplicationService_Apply_EventNotPublished(t *testing.T) {
	f := newApplicationFixture(t)

	ctx := context.Background()
	event := &entity.Event{ID: uuid.New(), Status: entity.EventStatusDraft}

	f.eventRepo.EXPECT().FindByID(ctx, event.ID).Return(event, nil)

	application, err := f.svc.Apply(ctx, event.ID, uuid.New(), &usecase.ApplyInput{})
	require.Error(t, err)
	assert.Nil(t, application)
	assert.ErrorIs(t, err, domainerrors.ErrEventNotAcceptingApplications)
}

func TestApplicationService_Apply_AlreadyApplied(t *testing.T) {
	f := newApplicationFixture(t)

	ctx := context.Background()
	storeProfileID := uuid.New()
	event := &entity.Event{ID: uuid.New(), Status: entity.EventStatusPublished}

	f.eventRepo.EXPECT().FindByID(ctx, event.ID).Return(event, nil)
	f.applicationRepo.EXPECT().
		FindByEventAndStore(ctx, event.ID, storeProfileID).
		Return(&entity.Application{ID: uuid.New(), Status: entity.ApplicationStatusPending}, nil)

	application, err := f.svc.Apply(ctx, event.ID, storeProfileID, &usecase.ApplyInput{})
	require.Error(t, err)
	assert.Nil(t, application)
	assert.ErrorIs(t, err, domainerrors.ErrAlreadyApplied)
}

func TestApplicationService_Apply_DuplicateRace(t *testing.T) {
	f := newApplicationFixture(t)

	ctx := context.Background()
	storeProfile := &entity.Profile{ID: uuid.New(), Name: "Takoyaki Taro"}
	event := &entity.Event{ID: uuid.New(), Status: entity.EventStatusPublished}

	f.eventRepo.EXPECT().FindByID(ctx, event.ID).Return(event, nil)
	f.applicationRepo.EXPECT().
		FindByEventAndStore(ctx, event.ID, storeProfile.ID).
		Return(nil, repository.ErrApplicationNotFound)
	f.profileRepo.EXPECT().FindByID(ctx, storeProfile.ID).Return(storeProfile, nil)
	f.applicationRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Application")).
		Return(repository.ErrDuplicateApplication)

	application, err := f.svc.Apply(ctx, event.ID, storeProfile.ID, &usecase.ApplyInput{})
	require.Error(t, err)
	assert.Nil(t, application)
	assert.ErrorIs(t, err, domainerrors.ErrAlreadyApplied)
}

func TestApplicationService_Decide_Approve(t *testing.T) {
	f := newApplicationFixture(t)

	ctx := context.Background()
	organizerID := uuid.New()
	storeProfile := &entity.Profile{ID: uuid.New(), UserID: uuid.New()}
	event := &entity.Event{ID: uuid.New(), OrganizerProfileID: organizerID, Status: entity.EventStatusPublished}
	application := &entity.Application{
		ID:             uuid.New(),
		EventID:        event.ID,
		StoreProfileID: storeProfile.ID,
		Status:         entity.ApplicationStatusPending,
	}

	f.applicationRepo.EXPECT().FindByID(ctx, application.ID).Return(application, nil)
	f.eventRepo.EXPECT().FindByID(ctx, event.ID).Return(event, nil)
	f.applicationRepo.EXPECT().Update(ctx, application).Return(nil)
	f.profileRepo.EXPECT().FindByID(ctx, storeProfile.ID).Return(storeProfile, nil)
	f.publisher.EXPECT().
		PublishStatusChange(ctx, mock.AnythingOfType("*service.StatusChangeEvent")).
		RunAndReturn(func(_ context.Context, change *service.StatusChangeEvent) error {
			assert.Equal(t, service.StatusChangeApplication, change.Kind)
			assert.Equal(t, application.ID.String(), change.SubjectID)
			assert.Equal(t, storeProfile.UserID.String(), change.RecipientUserID)
			assert.Equal(t, "pending", change.OldStatus)
			assert.Equal(t, "approved", change.NewStatus)

			return nil
		})

	result, err := f.svc.Decide(ctx, organizerID, application.ID, entity.ApplicationOutcomeApprove)
	require.NoError(t, err)
	assert.Equal(t, entity.ApplicationStatusApproved, result.Status)
}

func TestApplicationService_Decide_RepeatIsNoOp(t *testing.T) {
	f := newApplicationFixture(t)

	ctx := context.Background()
	organizerID := uuid.New()
	event := &entity.Event{ID: uuid.New(), OrganizerProfileID: organizerID}
	application := &entity.Application{
		ID:      uuid.New(),
		EventID: event.ID,
		Status:  entity.ApplicationStatusApproved,
	}

	f.applicationRepo.EXPECT().FindByID(ctx, application.ID).Return(application, nil)
	f.eventRepo.EXPECT().FindByID(ctx, event.ID).Return(event, nil)

	// No Update and no publish expected for a repeated decision.
	result, err := f.svc.Decide(ctx, organizerID, application.ID, entity.ApplicationOutcomeApprove)
	require.NoError(t, err)
	assert.Equal(t, entity.ApplicationStatusApproved, result.Status)
}

func TestApplicationService_Decide_ConflictingDecision(t *testing.T) {
	f := newApplicationFixture(t)

	ctx := context.Background()
	organizerID := uuid.New()
	event := &entity.Event{ID: uuid.New(), OrganizerProfileID: organizerID}
	application := &entity.Application{
		ID:      uuid.New(),
		EventID: event.ID,
		Status:  entity.ApplicationStatusApproved,
	}

	f.applicationRepo.EXPECT().FindByID(ctx, application.ID).Return(application, nil)
	f.eventRepo.EXPECT().FindByID(ctx, event.ID).Return(event, nil)

	result, err := f.svc.Decide(ctx, organizerID, application.ID, entity.ApplicationOutcomeReject)
	require.Error(t, err)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, domainerrors.ErrApplicationAlreadyDecided)
	assert.Equal(t, entity.ApplicationStatusApproved, application.Status)
}

func TestApplicationService_Decide_NotOwner(t *testing.T) {
	f := newApplicationFixture(t)

	ctx := context.Background()
	event := &entity.Event{ID: uuid.New(), OrganizerProfileID: uuid.New()}
	application := &entity.Application{ID: uuid.New(), EventID: event.ID, Status: entity.ApplicationStatusPending}

	f.applicationRepo.EXPECT().FindByID(ctx, application.ID).Return(application, nil)
	f.eventRepo.EXPECT().FindByID(ctx, event.ID).Return(event, nil)

	result, err := f.svc.Decide(ctx, uuid.New(), application.ID, entity.ApplicationOutcomeApprove)
	require.Error(t, err)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestApplicationService_Cancel_Pending(t *testing.T) {
	f := newApplicationFixture(t)

	ctx := context.Background()
	storeProfileID := uuid.New()
	application := &entity.Application{
		ID:             uuid.New(),
		StoreProfileID: storeProfileID,
		Status:         entity.ApplicationStatusPending,
	}

	f.applicationRepo.EXPECT().FindByID(ctx, application.ID).Return(application, nil)
	f.applicationRepo.EXPECT().Update(ctx, application).Return(nil)

	result, err := f.svc.Cancel(ctx, storeProfileID, application.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.ApplicationStatusCancelled, result.Status)
}

func TestApplicationService_Cancel_DecidedRejected(t *testing.T) {
	f := newApplicationFixture(t)

	ctx := context.Background()
	storeProfileID := uuid.New()
	application := &entity.Application{
		ID:             uuid.New(),
		StoreProfileID: storeProfileID,
		Status:         entity.ApplicationStatusApproved,
	}

	f.applicationRepo.EXPECT().FindByID(ctx, application.ID).Return(application, nil)

	result, err := f.svc.Cancel(ctx, storeProfileID, application.ID)
	require.Error(t, err)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, domainerrors.ErrApplicationAlreadyDecided)
}

func TestApplicationService_ListForEvent_NotOwner(t *testing.T) {
	f := newApplicationFixture(t)

	ctx := context.Background()
	event := &entity.Event{ID: uuid.New(), OrganizerProfileID: uuid.New()}

	f.eventRepo.EXPECT().FindByID(ctx, event.ID).Return(event, nil)

	result, err := f.svc.ListForEvent(ctx, uuid.New(), event.ID)
	require.Error(t, err)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestApplicationService_ListForStore(t *testing.T) {
	f := newApplicationFixture(t)

	ctx := context.Background()
	storeProfileID := uuid.New()
	expected := []*entity.Application{
		{ID: uuid.New(), StoreProfileID: storeProfileID},
	}

	f.applicationRepo.EXPECT().FindByStoreProfile(ctx, storeProfileID).Return(expected, nil)

	result, err := f.svc.ListForStore(ctx, storeProfileID)
	require.NoError(t, err)
	assert.Equal(t, expected, result)
}
