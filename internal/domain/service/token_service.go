package service

import (
	"yatai/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenService defines the contract for issuing and validating the app's own
// session tokens, minted after a successful LINE login.
type TokenService interface {
	// GenerateAccessToken creates a signed access token carrying the user id
	// and role.
	GenerateAccessToken(userID uuid.UUID, role entity.Role) (string, error)

	// ValidateToken checks the validity of a token string against a secret.
	ValidateToken(tokenString string, secret string) (*jwt.Token, error)
}
