package entity

import (
	"testing"

	domainerrors "yatai/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfile_SubmitForVerification(t *testing.T) {
	allDocs := RequiredVerificationDocuments()

	tests := []struct {
		name       string
		status     VerificationStatus
		uploaded   []DocumentType
		wantErr    error
		wantStatus VerificationStatus
	}{
		{
			name:       "first submission with all documents",
			status:     VerificationNotSubmitted,
			uploaded:   allDocs,
			wantStatus: VerificationPending,
		},
		{
			name:       "resubmission after rejection",
			status:     VerificationRejected,
			uploaded:   allDocs,
			wantStatus: VerificationPending,
		},
		{
			name:       "already pending",
			status:     VerificationPending,
			uploaded:   allDocs,
			wantErr:    domainerrors.ErrVerificationAlreadyPending,
			wantStatus: VerificationPending,
		},
		{
			name:       "already approved",
			status:     VerificationApproved,
			uploaded:   allDocs,
			wantErr:    domainerrors.ErrProfileAlreadyVerified,
			wantStatus: VerificationApproved,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profile := &Profile{VerificationStatus: tt.status}

			err := profile.SubmitForVerification(tt.uploaded)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.wantStatus, profile.VerificationStatus)
		})
	}
}

func TestProfile_SubmitForVerification_MissingDocuments(t *testing.T) {
	profile := &Profile{VerificationStatus: VerificationNotSubmitted}

	err := profile.SubmitForVerification([]DocumentType{DocumentTypeBusinessLicense})
	require.Error(t, err)

	var missingErr *domainerrors.MissingDocumentsError
	require.ErrorAs(t, err, &missingErr)
	assert.Equal(t, []string{DocumentTypeTaxCertificate.String()}, missingErr.Missing)

	// A failed submission leaves the profile untouched.
	assert.Equal(t, VerificationNotSubmitted, profile.VerificationStatus)
	assert.False(t, profile.IsVerified)
}

func TestProfile_SubmitForVerification_NoDocuments(t *testing.T) {
	profile := &Profile{VerificationStatus: VerificationNotSubmitted}

	err := profile.SubmitForVerification(nil)
	require.Error(t, err)

	var missingErr *domainerrors.MissingDocumentsError
	require.ErrorAs(t, err, &missingErr)
	assert.Len(t, missingErr.Missing, len(RequiredVerificationDocuments()))
}

func TestProfile_ApplyVerificationDecision(t *testing.T) {
	tests := []struct {
		name         string
		status       VerificationStatus
		outcome      VerificationOutcome
		wantErr      bool
		wantStatus   VerificationStatus
		wantVerified bool
	}{
		{
			name:         "approve pending",
			status:       VerificationPending,
			outcome:      VerificationOutcomeApprove,
			wantStatus:   VerificationApproved,
			wantVerified: true,
		},
		{
			name:       "reject pending",
			status:     VerificationPending,
			outcome:    VerificationOutcomeReject,
			wantStatus: VerificationRejected,
		},
		{
			name:       "decision on not submitted profile",
			status:     VerificationNotSubmitted,
			outcome:    VerificationOutcomeApprove,
			wantErr:    true,
			wantStatus: VerificationNotSubmitted,
		},
		{
			name:       "decision on already approved profile",
			status:     VerificationApproved,
			outcome:    VerificationOutcomeReject,
			wantErr:    true,
			wantStatus: VerificationApproved,
		},
		{
			name:       "unknown outcome",
			status:     VerificationPending,
			outcome:    VerificationOutcome("defer"),
			wantErr:    true,
			wantStatus: VerificationPending,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profile := &Profile{VerificationStatus: tt.status}

			err := profile.ApplyVerificationDecision(tt.outcome)
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.wantStatus, profile.VerificationStatus)
			assert.Equal(t, tt.wantVerified, profile.IsVerified)
		})
	}
}

func TestProfile_RejectionClearsVerifiedFlag(t *testing.T) {
	profile := &Profile{VerificationStatus: VerificationPending, IsVerified: true}

	require.NoError(t, profile.ApplyVerificationDecision(VerificationOutcomeReject))
	assert.False(t, profile.IsVerified)
	assert.Equal(t, VerificationRejected, profile.VerificationStatus)
}
