package service

import (
	"context"
)

// Status-change kinds carried by StatusChangeEvent.
const (
	// StatusChangeVerification marks a profile verification status transition.
	StatusChangeVerification = "verification_status"
	// StatusChangeApplication marks an event-application status transition.
	StatusChangeApplication = "application_status"
)

// StatusChangeEvent describes a state-machine transition other systems may
// want to react to, e.g. a notification sender pushing a LINE message.
type StatusChangeEvent struct {
	RequestID       string `json:"request_id,omitempty"` // For distributed tracing
	Kind            string `json:"kind"`                 // StatusChangeVerification or StatusChangeApplication
	SubjectID       string `json:"subject_id"`           // Profile or application id that transitioned
	RecipientUserID string `json:"recipient_user_id"`    // User the change concerns
	OldStatus       string `json:"old_status"`
	NewStatus       string `json:"new_status"`
	OccurredAt      string `json:"occurred_at"` // RFC3339
}

// EventPublisher defines the interface for publishing status-change events
// to a message queue for asynchronous processing.
type EventPublisher interface {
	// PublishStatusChange publishes a status-change event.
	PublishStatusChange(ctx context.Context, event *StatusChangeEvent) error

	// Close releases any resources held by the publisher.
	Close() error
}
