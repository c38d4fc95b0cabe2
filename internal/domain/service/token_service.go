// Package service defines interfaces for domain services whose concrete
// implementations live in the infrastructure layer.
package service

import (
	"github.com/golang-jwt/jwt/v5"
)

// TokenService defines the contract for issuing and validating admin session tokens.
type TokenService interface {
	// GenerateAdminToken creates a signed, time-limited token asserting the
	// admin role for the given email.
	GenerateAdminToken(email string) (string, error)

	// ValidateToken checks the validity of a token string.
	ValidateToken(tokenString string) (*jwt.Token, error)
}
