// Package usecase defines the application's use case interfaces and their
// input/output DTOs.
package usecase

import (
	"context"

	"yatai/internal/domain/entity"
)

// LoginInput carries the LINE ID token obtained by the LIFF front end and
// the role the user is logging in as.
type LoginInput struct {
	IDToken string `json:"id_token" validate:"required"`
	Role    string `json:"role" validate:"required,oneof=store organizer"`
}

// LoginOutput is the result of a successful login.
type LoginOutput struct {
	User        *entity.User `json:"user"`
	AccessToken string       `json:"access_token"`
	NewUser     bool         `json:"new_user"` // True when this login created the account.
}

// UserUsecase defines the identity-related use cases.
type UserUsecase interface {
	// Login verifies a LINE ID token, finds or creates the user for the
	// requested role, and mints an app session token. Logging into an
	// existing account with the other role fails; the role is immutable.
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)

	// GetUser retrieves a user by id.
	GetUser(ctx context.Context, id string) (*entity.User, error)
}
