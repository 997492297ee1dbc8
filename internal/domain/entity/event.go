package entity

import (
	"time"

	domainerrors "yatai/internal/domain/errors"

	"github.com/google/uuid"
)

// EventStatus represents the lifecycle state of an event.
type EventStatus string

const (
	// EventStatusDraft means the event is being edited and is not visible to stores.
	EventStatusDraft EventStatus = "draft"
	// EventStatusPublished means the event is open and visible to stores.
	EventStatusPublished EventStatus = "published"
	// EventStatusCancelled means the organizer cancelled the event.
	EventStatusCancelled EventStatus = "cancelled"
	// EventStatusCompleted means the event has taken place.
	EventStatusCompleted EventStatus = "completed"
)

// String returns the string representation of the EventStatus.
func (s EventStatus) String() string {
	return string(s)
}

// IsValid checks if the EventStatus is a valid value.
func (s EventStatus) IsValid() bool {
	switch s {
	case EventStatusDraft, EventStatusPublished, EventStatusCancelled, EventStatusCompleted:
		return true
	default:
		return false
	}
}

// Event is an organizer-created happening that stores can apply to.
type Event struct {
	ID                  uuid.UUID   // The Global Unique Identifier (GUID) for the event.
	OrganizerProfileID  uuid.UUID   // Foreign Key to the organizer profile that owns the event.
	Title               string      // Event title.
	Description         string      // Free-form description shown to stores.
	MainImageURL        string      // URL of the event's main image, if uploaded.
	EventDate           time.Time   // The day the event takes place.
	StartTime           string      // Opening time, "HH:MM", optional.
	EndTime             string      // Closing time, "HH:MM", optional.
	Location            string      // Venue name.
	Address             string      // Venue address.
	MaxStores           int         // Maximum number of participating stores; 0 means unlimited.
	EntryFee            int64       // Participation fee in the smallest currency unit.
	RequiredDocuments   []string    // Labels of documents the organizer requires from applicants.
	ApplicationDeadline *time.Time  // Last moment applications are accepted; nil means no deadline.
	Status              EventStatus // Current position in the event lifecycle.
	CreatedAt           time.Time   // Timestamp of when this event was created.
	UpdatedAt           time.Time   // Timestamp of the last modification to this event.
}

// Publish transitions a draft event to published. Title, date and location
// must be populated; an incomplete draft stays in draft.
func (e *Event) Publish() error {
	if e.Status != EventStatusDraft {
		return domainerrors.ErrEventNotDraft
	}

	var missing []string
	if e.Title == "" {
		missing = append(missing, "title")
	}
	if e.EventDate.IsZero() {
		missing = append(missing, "event_date")
	}
	if e.Location == "" {
		missing = append(missing, "location")
	}
	if len(missing) > 0 {
		return domainerrors.NewMissingFieldsError(missing)
	}

	e.Status = EventStatusPublished

	return nil
}

// Cancel transitions a published event to cancelled. Cancelled and completed
// are terminal; a draft is simply deleted rather than cancelled.
func (e *Event) Cancel() error {
	if e.Status != EventStatusPublished {
		return domainerrors.ErrEventNotPublished
	}

	e.Status = EventStatusCancelled

	return nil
}

// Complete marks a published event as having taken place.
func (e *Event) Complete() error {
	if e.Status != EventStatusPublished {
		return domainerrors.ErrEventNotPublished
	}

	e.Status = EventStatusCompleted

	return nil
}

// CanBeEdited reports whether the organizer may still change the event's
// fields. Cancelled and completed events are frozen.
func (e *Event) CanBeEdited() error {
	if e.Status != EventStatusDraft && e.Status != EventStatusPublished {
		return domainerrors.ErrEventNotEditable
	}

	return nil
}

// CanAcceptApplications reports whether a store may apply to this event at
// the given moment. The event must be published and the deadline, when set,
// must not have passed; a deadline hit exactly is still eligible.
func (e *Event) CanAcceptApplications(now time.Time) error {
	if e.Status != EventStatusPublished {
		return domainerrors.ErrEventNotAcceptingApplications
	}
	if e.ApplicationDeadline != nil && now.After(*e.ApplicationDeadline) {
		return domainerrors.ErrApplicationDeadlinePassed
	}

	return nil
}
