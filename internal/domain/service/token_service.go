package service

import (
	"github.com/golang-jwt/jwt/v5"
)

// AccessClaims are the claims carried by an account access token.
type AccessClaims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

// TokenService decodes access tokens issued by the account platform.
type TokenService interface {
	// Inspect decodes a token, verifying its signature when a signing secret is configured.
	Inspect(tokenString string) (*AccessClaims, error)
}
