package entity

import (
	"testing"

	domainerrors "yatai/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplication_Decide(t *testing.T) {
	tests := []struct {
		name        string
		status      ApplicationStatus
		outcome     ApplicationOutcome
		wantChanged bool
		wantErr     error
		wantStatus  ApplicationStatus
	}{
		{
			name:        "approve pending",
			status:      ApplicationStatusPending,
			outcome:     ApplicationOutcomeApprove,
			wantChanged: true,
			wantStatus:  ApplicationStatusApproved,
		},
		{
			name:        "reject pending",
			status:      ApplicationStatusPending,
			outcome:     ApplicationOutcomeReject,
			wantChanged: true,
			wantStatus:  ApplicationStatusRejected,
		},
		{
			name:       "repeat approve is a no-op",
			status:     ApplicationStatusApproved,
			outcome:    ApplicationOutcomeApprove,
			wantStatus: ApplicationStatusApproved,
		},
		{
			name:       "repeat reject is a no-op",
			status:     ApplicationStatusRejected,
			outcome:    ApplicationOutcomeReject,
			wantStatus: ApplicationStatusRejected,
		},
		{
			name:       "conflicting decision on approved",
			status:     ApplicationStatusApproved,
			outcome:    ApplicationOutcomeReject,
			wantErr:    domainerrors.ErrApplicationAlreadyDecided,
			wantStatus: ApplicationStatusApproved,
		},
		{
			name:       "conflicting decision on rejected",
			status:     ApplicationStatusRejected,
			outcome:    ApplicationOutcomeApprove,
			wantErr:    domainerrors.ErrApplicationAlreadyDecided,
			wantStatus: ApplicationStatusRejected,
		},
		{
			name:       "decision on cancelled application",
			status:     ApplicationStatusCancelled,
			outcome:    ApplicationOutcomeApprove,
			wantErr:    domainerrors.ErrApplicationAlreadyDecided,
			wantStatus: ApplicationStatusCancelled,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			application := &Application{Status: tt.status}

			changed, err := application.Decide(tt.outcome)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.wantChanged, changed)
			assert.Equal(t, tt.wantStatus, application.Status)
		})
	}
}

func TestApplication_Decide_UnknownOutcome(t *testing.T) {
	application := &Application{Status: ApplicationStatusPending}

	changed, err := application.Decide(ApplicationOutcome("waitlist"))
	require.Error(t, err)
	assert.False(t, changed)
	assert.Equal(t, ApplicationStatusPending, application.Status)
}

func TestApplication_Cancel(t *testing.T) {
	application := &Application{Status: ApplicationStatusPending}

	require.NoError(t, application.Cancel())
	assert.Equal(t, ApplicationStatusCancelled, application.Status)
}

func TestApplication_Cancel_Decided(t *testing.T) {
	for _, status := range []ApplicationStatus{ApplicationStatusApproved, ApplicationStatusRejected, ApplicationStatusCancelled} {
		application := &Application{Status: status}

		assert.ErrorIs(t, application.Cancel(), domainerrors.ErrApplicationAlreadyDecided)
		assert.Equal(t, status, application.Status)
	}
}
