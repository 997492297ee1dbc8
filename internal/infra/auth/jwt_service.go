// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"yatai/config"
	"yatai/internal/domain/entity"
	"yatai/internal/domain/service"
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
// The app mints its own session tokens after a LINE login so later requests
// do not have to round-trip to the LINE platform.
type jwtService struct {
	accessSecret string        // Secret key for signing access tokens.
	accessTTL    time.Duration // Time-to-live for access tokens.
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" {
		return nil, errors.New("jwt access secret must be provided")
	}

	return &jwtService{
		accessSecret: cfg.SecretKey.Access,
		accessTTL:    time.Hour * 24, // LIFF sessions are short-lived; one day is plenty.
	}, nil
}

// GenerateAccessToken creates a signed access token carrying the user id and role.
func (s *jwtService) GenerateAccessToken(userID uuid.UUID, role entity.Role) (string, error) {
	claims := jwt.MapClaims{
		"sub":  userID,                             // Subject (who the token is for)
		"role": role.String(),                      // Role for stateless authorization
		"iat":  time.Now().Unix(),                  // Issued At
		"exp":  time.Now().Add(s.accessTTL).Unix(), // Expiration Time
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString([]byte(s.accessSecret))
}

// ValidateToken checks the validity of a token string against a secret.
func (s *jwtService) ValidateToken(tokenString string, secret string) (*jwt.Token, error) {
	return jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(secret), nil
	})
}
