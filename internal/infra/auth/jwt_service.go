// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"storefront/config"
	"storefront/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

// jwtService decodes access tokens issued by the account platform.
type jwtService struct {
	secret string // Shared signing secret; empty means signatures are not checked locally.
	parser *jwt.Parser
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) service.TokenService {
	secret := ""
	if cfg.Supabase != nil {
		secret = cfg.Supabase.JWTSecret
	}

	return &jwtService{
		secret: secret,
		// Expiry is judged by the caller, so expired tokens still decode.
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			jwt.WithoutClaimsValidation(),
		),
	}
}

// Inspect decodes the token claims, verifying the signature when a secret is configured.
func (s *jwtService) Inspect(tokenString string) (*service.AccessClaims, error) {
	claims := &service.AccessClaims{}

	if s.secret == "" {
		if _, _, err := s.parser.ParseUnverified(tokenString, claims); err != nil {
			return nil, errors.Wrap(err, "failed to parse token structure")
		}

		return claims, nil
	}

	_, err := s.parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(s.secret), nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to verify token")
	}

	return claims, nil
}
