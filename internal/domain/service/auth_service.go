package service

import (
	"context"

	"storefront/internal/domain/entity"
)

// SignUpResult is the outcome of an account registration. Identity is nil
// when the platform requires email confirmation before issuing a session.
type SignUpResult struct {
	Identity             *entity.Identity
	ConfirmationRequired bool
}

// AuthService is the remote account platform.
type AuthService interface {
	SignUp(ctx context.Context, email, password, fullName string) (*SignUpResult, error)
	SignInWithPassword(ctx context.Context, email, password string) (*entity.Identity, error)
	RefreshSession(ctx context.Context, refreshToken string) (*entity.Identity, error)
	SignOut(ctx context.Context, accessToken string) error

	// User retrieves the account behind an access token.
	User(ctx context.Context, accessToken string) (*entity.Identity, error)

	// OAuthURL builds the redirect URL that starts provider sign-in.
	OAuthURL(provider, redirectTo string) (string, error)

	ResetPassword(ctx context.Context, email, redirectTo string) error
	UpdatePassword(ctx context.Context, accessToken, password string) error
}

// TokenSource yields the access token to attach to row-level requests, or "" when anonymous.
type TokenSource interface {
	AccessToken() string
}
