package entity

import (
	"testing"
	"time"

	domainerrors "yatai/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func completeDraft() *Event {
	return &Event{
		Title:     "Autumn Food Festival",
		EventDate: time.Date(2026, 10, 10, 0, 0, 0, 0, time.UTC),
		Location:  "Riverside Park",
		Status:    EventStatusDraft,
	}
}

func TestEvent_Publish(t *testing.T) {
	event := completeDraft()

	require.NoError(t, event.Publish())
	assert.Equal(t, EventStatusPublished, event.Status)
}

func TestEvent_Publish_IncompleteDraft(t *testing.T) {
	event := &Event{Status: EventStatusDraft, Title: "Night Market"}

	err := event.Publish()
	require.Error(t, err)

	var missingErr *domainerrors.MissingFieldsError
	require.ErrorAs(t, err, &missingErr)
	assert.Contains(t, missingErr.Fields, "event_date")
	assert.Contains(t, missingErr.Fields, "location")

	// An incomplete draft stays in draft.
	assert.Equal(t, EventStatusDraft, event.Status)
}

func TestEvent_Publish_NonDraft(t *testing.T) {
	for _, status := range []EventStatus{EventStatusPublished, EventStatusCancelled, EventStatusCompleted} {
		event := completeDraft()
		event.Status = status

		assert.ErrorIs(t, event.Publish(), domainerrors.ErrEventNotDraft)
		assert.Equal(t, status, event.Status)
	}
}

func TestEvent_Cancel(t *testing.T) {
	event := completeDraft()
	require.NoError(t, event.Publish())

	require.NoError(t, event.Cancel())
	assert.Equal(t, EventStatusCancelled, event.Status)

	// Cancelled is terminal.
	assert.ErrorIs(t, event.Cancel(), domainerrors.ErrEventNotPublished)
}

func TestEvent_Cancel_Draft(t *testing.T) {
	event := completeDraft()

	assert.ErrorIs(t, event.Cancel(), domainerrors.ErrEventNotPublished)
	assert.Equal(t, EventStatusDraft, event.Status)
}

func TestEvent_Complete(t *testing.T) {
	event := completeDraft()
	require.NoError(t, event.Publish())

	require.NoError(t, event.Complete())
	assert.Equal(t, EventStatusCompleted, event.Status)

	// Completed is terminal.
	assert.ErrorIs(t, event.Complete(), domainerrors.ErrEventNotPublished)
}

func TestEvent_CanAcceptApplications(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	deadline := now.Add(24 * time.Hour)
	passed := now.Add(-time.Second)

	tests := []struct {
		name     string
		status   EventStatus
		deadline *time.Time
		wantErr  error
	}{
		{
			name:     "published with open deadline",
			status:   EventStatusPublished,
			deadline: &deadline,
		},
		{
			name:   "published without deadline",
			status: EventStatusPublished,
		},
		{
			name:     "deadline hit exactly is still eligible",
			status:   EventStatusPublished,
			deadline: &now,
		},
		{
			name:     "deadline passed",
			status:   EventStatusPublished,
			deadline: &passed,
			wantErr:  domainerrors.ErrApplicationDeadlinePassed,
		},
		{
			name:    "draft event",
			status:  EventStatusDraft,
			wantErr: domainerrors.ErrEventNotAcceptingApplications,
		},
		{
			name:    "cancelled event",
			status:  EventStatusCancelled,
			wantErr: domainerrors.ErrEventNotAcceptingApplications,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			event := completeDraft()
			event.Status = tt.status
			event.ApplicationDeadline = tt.deadline

			err := event.CanAcceptApplications(now)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestEvent_CanBeEdited(t *testing.T) {
	tests := []struct {
		status  EventStatus
		wantErr error
	}{
		{status: EventStatusDraft},
		{status: EventStatusPublished},
		{status: EventStatusCancelled, wantErr: domainerrors.ErrEventNotEditable},
		{status: EventStatusCompleted, wantErr: domainerrors.ErrEventNotEditable},
	}

	for _, tt := range tests {
		t.Run(tt.status.String(), func(t *testing.T) {
			event := completeDraft()
			event.Status = tt.status

			err := event.CanBeEdited()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
