package service

import (
	"github.com/golang-jwt/jwt/v5"

	"scout/internal/domain/entity"
)

// Claims defines the custom claims for the JWT tokens.
// The registered subject carries the decimal AccountID.
type Claims struct {
	AccountID entity.AccountID `json:"-"`
	Roles     []string         `json:"roles,omitempty"`
	Type      string           `json:"type"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for generating and validating JWTs.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// GenerateAccessToken creates a signed access token for an account.
	GenerateAccessToken(accountID entity.AccountID, roles []string) (string, error)

	// ValidateToken checks the validity of an access token string.
	ValidateToken(tokenString string) (*Claims, error)
}
