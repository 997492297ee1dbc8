package entity

import (
	"time"

	domainerrors "yatai/internal/domain/errors"

	"github.com/google/uuid"
)

// ApplicationStatus represents the state of a store's application to an event.
type ApplicationStatus string

const (
	// ApplicationStatusPending means the application awaits the organizer's decision.
	ApplicationStatusPending ApplicationStatus = "pending"
	// ApplicationStatusApproved means the organizer accepted the application. Terminal.
	ApplicationStatusApproved ApplicationStatus = "approved"
	// ApplicationStatusRejected means the organizer declined the application. Terminal.
	ApplicationStatusRejected ApplicationStatus = "rejected"
	// ApplicationStatusCancelled means the store withdrew before a decision. Terminal.
	ApplicationStatusCancelled ApplicationStatus = "cancelled"
)

// String returns the string representation of the ApplicationStatus.
func (s ApplicationStatus) String() string {
	return string(s)
}

// IsValid checks if the ApplicationStatus is a valid value.
func (s ApplicationStatus) IsValid() bool {
	switch s {
	case ApplicationStatusPending, ApplicationStatusApproved, ApplicationStatusRejected, ApplicationStatusCancelled:
		return true
	default:
		return false
	}
}

// ApplicationOutcome is an organizer's decision on a pending application.
type ApplicationOutcome string

const (
	// ApplicationOutcomeApprove accepts the store into the event.
	ApplicationOutcomeApprove ApplicationOutcome = "approve"
	// ApplicationOutcomeReject declines the application.
	ApplicationOutcomeReject ApplicationOutcome = "reject"
)

// Application is a store's request to participate in a specific event.
// One application exists per (event, store) pair.
type Application struct {
	ID                 uuid.UUID         // The Global Unique Identifier (GUID) for the application.
	EventID            uuid.UUID         // Foreign Key to the event being applied to.
	StoreProfileID     uuid.UUID         // Foreign Key to the applying store's profile.
	StoreName          string            // Store name snapshot taken at application time.
	ContactName        string            // Contact person for this application.
	Phone              string            // Contact phone number.
	Email              string            // Contact email address.
	ProductDescription string            // What the store plans to sell at the event.
	BoothSize          string            // Requested booth size, free-form.
	EquipmentNeeded    []string          // Equipment the store needs from the organizer.
	AdditionalInfo     string            // Anything else the store wants to mention.
	Status             ApplicationStatus // Current position in the application state machine.
	AppliedAt          time.Time         // When the application was submitted.
	CreatedAt          time.Time         // Timestamp of when this record was created.
	UpdatedAt          time.Time         // Timestamp of the last modification to this record.
}

// Decide records the organizer's outcome on the application. Approved and
// rejected are terminal: repeating the decision that was already made is a
// no-op (changed is false), while a conflicting decision is an error. The
// status can never change again after the first transition.
func (a *Application) Decide(outcome ApplicationOutcome) (changed bool, err error) {
	var target ApplicationStatus
	switch outcome {
	case ApplicationOutcomeApprove:
		target = ApplicationStatusApproved
	case ApplicationOutcomeReject:
		target = ApplicationStatusRejected
	default:
		return false, domainerrors.ErrValidationFailed.WrapMessage("unknown application outcome")
	}

	switch a.Status {
	case ApplicationStatusPending:
		a.Status = target

		return true, nil
	case target:
		// Idempotent repeat of the same decision.
		return false, nil
	default:
		return false, domainerrors.ErrApplicationAlreadyDecided
	}
}

// Cancel withdraws a pending application. Only the pending state can be
// cancelled; decided applications stay as decided.
func (a *Application) Cancel() error {
	if a.Status != ApplicationStatusPending {
		return domainerrors.ErrApplicationAlreadyDecided
	}

	a.Status = ApplicationStatusCancelled

	return nil
}
