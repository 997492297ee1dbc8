// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core identity record, created on a user's first LINE login.
// The role is fixed at creation time; switching from store to organizer (or
// back) requires the re-registration flow, not an update.
type User struct {
	ID          uuid.UUID // The Global Unique Identifier (GUID) for the user.
	LineUserID  string    // The stable user id issued by the LINE platform.
	Role        Role      // Either store or organizer, immutable once set.
	DisplayName string    // Display name taken from the LINE profile at first login.
	PictureURL  string    // Avatar URL taken from the LINE profile.
	Phone       string    // Contact phone number, filled in during registration.
	Email       string    // Contact email, filled in during registration.
	CreatedAt   time.Time // Timestamp of when this user account was created.
	UpdatedAt   time.Time // Timestamp of the last modification to this user's data.
}
