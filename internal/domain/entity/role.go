// Package entity contains the core business objects of the project.
package entity

import "slices"

// Role represents the type of role a user can have on the platform.
type Role string

const (
	// RoleStore indicates a vendor store (kitchen car / stall) account.
	RoleStore Role = "store"
	// RoleOrganizer indicates an event organizer account.
	RoleOrganizer Role = "organizer"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleStore, RoleOrganizer:
		return true
	default:
		return false
	}
}

// Roles is a slice of Role for convenience.
type Roles []Role

// Contains checks if the roles slice contains a specific role.
func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}
