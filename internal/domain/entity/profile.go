package entity

import (
	"time"

	domainerrors "yatai/internal/domain/errors"

	"github.com/google/uuid"
)

// VerificationStatus represents the review state of a profile's documents.
type VerificationStatus string

const (
	// VerificationNotSubmitted means no verification request has been made yet.
	VerificationNotSubmitted VerificationStatus = "not_submitted"
	// VerificationPending means documents were submitted and await review.
	VerificationPending VerificationStatus = "pending"
	// VerificationApproved means the reviewer accepted the documents.
	VerificationApproved VerificationStatus = "approved"
	// VerificationRejected means the reviewer rejected the documents.
	VerificationRejected VerificationStatus = "rejected"
)

// String returns the string representation of the VerificationStatus.
func (s VerificationStatus) String() string {
	return string(s)
}

// IsValid checks if the VerificationStatus is a valid value.
func (s VerificationStatus) IsValid() bool {
	switch s {
	case VerificationNotSubmitted, VerificationPending, VerificationApproved, VerificationRejected:
		return true
	default:
		return false
	}
}

// VerificationOutcome is a reviewer's decision on a pending profile.
type VerificationOutcome string

const (
	// VerificationOutcomeApprove marks the profile as verified.
	VerificationOutcomeApprove VerificationOutcome = "approve"
	// VerificationOutcomeReject sends the profile back for resubmission.
	VerificationOutcomeReject VerificationOutcome = "reject"
)

// Profile is the business-facing record of a store or organizer, distinct
// from the underlying User identity record. One profile exists per user per
// role; it is created lazily on the first profile read.
type Profile struct {
	ID                 uuid.UUID          // The Global Unique Identifier (GUID) for the profile.
	UserID             uuid.UUID          // Foreign Key that links this profile to its owning User.
	Role               Role               // Mirrors the owner's role; determines the document enum.
	Name               string             // The store's or organizer's business name.
	ContactName        string             // Name of the person handling inquiries.
	Phone              string             // Contact phone number.
	Email              string             // Contact email address.
	Address            string             // Business address.
	Description        string             // Free-form description of the business.
	Website            string             // Optional website URL.
	Instagram          string             // Optional Instagram handle or URL.
	Twitter            string             // Optional Twitter/X handle or URL.
	IsVerified         bool               // True iff VerificationStatus == approved.
	VerificationStatus VerificationStatus // Current position in the verification state machine.
	CreatedAt          time.Time          // Timestamp of when this profile was created.
	UpdatedAt          time.Time          // Timestamp of the last modification to this profile.
}

// RequiredVerificationDocuments returns the document types a profile must
// have uploaded before it can be submitted for verification.
func RequiredVerificationDocuments() []DocumentType {
	return []DocumentType{DocumentTypeBusinessLicense, DocumentTypeTaxCertificate}
}

// SubmitForVerification moves the profile to pending, provided every
// required document type is present among the uploaded ones. On failure the
// profile is left untouched and the error names the missing types.
// Allowed from not_submitted and from rejected (resubmission); submitting an
// already pending or approved profile is not a valid transition.
func (p *Profile) SubmitForVerification(uploaded []DocumentType) error {
	switch p.VerificationStatus {
	case VerificationNotSubmitted, VerificationRejected:
	case VerificationPending:
		return domainerrors.ErrVerificationAlreadyPending
	case VerificationApproved:
		return domainerrors.ErrProfileAlreadyVerified
	}

	present := make(map[DocumentType]bool, len(uploaded))
	for _, t := range uploaded {
		present[t] = true
	}

	var missing []string
	for _, required := range RequiredVerificationDocuments() {
		if !present[required] {
			missing = append(missing, required.String())
		}
	}
	if len(missing) > 0 {
		return domainerrors.NewMissingDocumentsError(missing)
	}

	p.VerificationStatus = VerificationPending
	p.IsVerified = false

	return nil
}

// ApplyVerificationDecision records a reviewer's decision on a pending
// profile. The is_verified flag is derived from the resulting status so the
// two fields can never disagree.
func (p *Profile) ApplyVerificationDecision(outcome VerificationOutcome) error {
	if p.VerificationStatus != VerificationPending {
		return domainerrors.ErrVerificationNotPending
	}

	switch outcome {
	case VerificationOutcomeApprove:
		p.VerificationStatus = VerificationApproved
	case VerificationOutcomeReject:
		p.VerificationStatus = VerificationRejected
	default:
		return domainerrors.ErrValidationFailed.WrapMessage("unknown verification outcome")
	}

	p.IsVerified = p.VerificationStatus == VerificationApproved

	return nil
}
