// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// SignUpInput carries a registration form.
type SignUpInput struct {
	Email    string
	Password string
	FullName string
}

// SignUpOutcome is the result of a registration. Identity is nil while the
// account waits for email confirmation.
type SignUpOutcome struct {
	Identity             *entity.Identity
	ConfirmationRequired bool
}

// SessionUsecase defines the interface for sign-in state management.
type SessionUsecase interface {
	// SignUp registers an account and signs it in when the platform issues a session.
	SignUp(ctx context.Context, input SignUpInput) (*SignUpOutcome, error)

	// SignIn authenticates with email and password.
	SignIn(ctx context.Context, email, password string) (*entity.Identity, error)

	// SignOut clears the identity. Remote failures are logged, never returned.
	SignOut(ctx context.Context) error

	// SignInWithOAuth returns the provider redirect URL that starts sign-in.
	SignInWithOAuth(provider string) (string, error)

	// CompleteOAuth adopts the tokens handed back by the provider callback.
	CompleteOAuth(ctx context.Context, accessToken, refreshToken string) (*entity.Identity, error)

	// Restore adopts the session persisted by a previous process, refreshing it when expired.
	Restore(ctx context.Context) (*entity.Identity, error)

	// EnsureFresh refreshes the access token when it is about to expire.
	EnsureFresh(ctx context.Context) error

	// Current returns the signed-in identity, or nil.
	Current() *entity.Identity

	// ResetPassword sends a recovery email.
	ResetPassword(ctx context.Context, email string) error

	// UpdatePassword changes the signed-in user's password.
	UpdatePassword(ctx context.Context, password string) error
}
