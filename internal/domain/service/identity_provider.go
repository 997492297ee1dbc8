// Package service defines the contracts for external collaborators the
// domain depends on: identity, file storage, document classification,
// tokens, notifications and QR codes.
package service

import "context"

// IdentityToken holds the claims extracted from a verified LINE ID token.
type IdentityToken struct {
	LineUserID  string // The stable user id ("sub" claim) issued by LINE.
	DisplayName string // Display name claim, present when the profile scope was granted.
	PictureURL  string // Avatar URL claim, present when the profile scope was granted.
}

// IdentityProfile is the display profile of a logged-in LINE user.
type IdentityProfile struct {
	LineUserID    string // The stable user id issued by LINE.
	DisplayName   string // The user's display name.
	PictureURL    string // The user's avatar URL.
	StatusMessage string // The user's status message, if set.
}

// IdentityProvider verifies LINE-issued credentials and resolves display
// profiles. It is the only component that talks to the LINE platform.
type IdentityProvider interface {
	// VerifyIDToken checks an ID token against the LINE verify endpoint and
	// returns its claims. An invalid or expired token yields
	// domainerrors.ErrIdentityTokenInvalid; an unreachable endpoint yields a
	// ServiceUnavailableError.
	VerifyIDToken(ctx context.Context, idToken string) (*IdentityToken, error)

	// GetProfile fetches the display profile for a LINE access token.
	GetProfile(ctx context.Context, accessToken string) (*IdentityProfile, error)
}
