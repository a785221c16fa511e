// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"net/mail"
	"strings"
	"sync"
	"time"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/domain/session"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	// expiryLeeway refreshes tokens this close to expiring.
	expiryLeeway      = 90 * time.Second
	minPasswordLength = 6
)

// sessionService implements the SessionUsecase interface.
type sessionService struct {
	auth   service.AuthService
	tokens service.TokenService
	holder *session.Holder

	oauthRedirectURL string
	resetRedirectURL string

	refreshMu sync.Mutex

	logger *slog.Logger
	now    func() time.Time
}

// SessionServiceParams holds dependencies for SessionService, injected by Fx.
type SessionServiceParams struct {
	fx.In

	Auth   service.AuthService
	Tokens service.TokenService
	Holder *session.Holder
	Config *config.Config
	Logger *slog.Logger
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(params SessionServiceParams) usecase.SessionUsecase {
	srv := &sessionService{
		auth:   params.Auth,
		tokens: params.Tokens,
		holder: params.Holder,
		logger: params.Logger,
		now:    time.Now,
	}
	if params.Config != nil && params.Config.Supabase != nil {
		srv.oauthRedirectURL = params.Config.Supabase.OAuthRedirectURL
		srv.resetRedirectURL = params.Config.Supabase.PasswordResetRedirectURL
	}

	return srv
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *sessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *sessionService) SignUp(ctx context.Context, input usecase.SignUpInput) (*usecase.SignUpOutcome, error) {
	email, err := normalizeEmail(input.Email)
	if err != nil {
		return nil, err
	}
	if err := validatePassword(input.Password); err != nil {
		return nil, err
	}

	result, err := srv.auth.SignUp(ctx, email, input.Password, strings.TrimSpace(input.FullName))
	if err != nil {
		return nil, err
	}

	if result.Identity == nil {
		srv.log(ctx).Info("Sign-up awaiting email confirmation", slog.String("email", email))

		return &usecase.SignUpOutcome{ConfirmationRequired: true}, nil
	}

	srv.holder.SetIdentity(ctx, result.Identity)

	return &usecase.SignUpOutcome{Identity: srv.holder.Identity()}, nil
}

func (srv *sessionService) SignIn(ctx context.Context, email, password string) (*entity.Identity, error) {
	email, err := normalizeEmail(email)
	if err != nil {
		return nil, err
	}
	if password == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("password is required")
	}

	identity, err := srv.auth.SignInWithPassword(ctx, email, password)
	if err != nil {
		return nil, err
	}

	srv.holder.SetIdentity(ctx, identity)
	srv.log(ctx).Info("Signed in", slog.String("user_id", identity.UserID.String()))

	return srv.holder.Identity(), nil
}

func (srv *sessionService) SignOut(ctx context.Context) error {
	identity := srv.holder.Identity()
	if identity == nil {
		return nil
	}

	if err := srv.auth.SignOut(ctx, identity.AccessToken); err != nil {
		srv.log(ctx).Warn("Remote sign-out failed, clearing local session anyway", slog.Any("error", err))
	}

	srv.holder.ClearIdentity(ctx)

	return nil
}

func (srv *sessionService) SignInWithOAuth(provider string) (string, error) {
	provider = strings.ToLower(strings.TrimSpace(provider))
	if provider == "" {
		return "", domainerrors.ErrValidationFailed.WithDetails("provider is required")
	}

	return srv.auth.OAuthURL(provider, srv.oauthRedirectURL)
}

func (srv *sessionService) CompleteOAuth(ctx context.Context, accessToken, refreshToken string) (*entity.Identity, error) {
	if accessToken == "" || refreshToken == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("access and refresh tokens are required")
	}

	identity, err := srv.auth.User(ctx, accessToken)
	if err != nil {
		return nil, err
	}

	claims, err := srv.tokens.Inspect(accessToken)
	if err != nil {
		return nil, domainerrors.ErrInvalidCredentials.WithDetails("access token could not be read")
	}
	if claims.Subject != "" && claims.Subject != identity.UserID.String() {
		return nil, domainerrors.ErrInvalidCredentials.WithDetails("access token belongs to another user")
	}

	identity.RefreshToken = refreshToken
	if claims.ExpiresAt != nil {
		identity.ExpiresAt = claims.ExpiresAt.UTC()
	}

	srv.holder.SetIdentity(ctx, identity)

	return srv.holder.Identity(), nil
}

func (srv *sessionService) Restore(ctx context.Context) (*entity.Identity, error) {
	persisted, err := srv.holder.PersistedSession(ctx)
	if errors.Is(err, repository.ErrLocalStateNotFound) {
		return nil, nil
	}
	if err != nil {
		srv.log(ctx).Warn("Discarding unreadable persisted session", slog.Any("error", err))
		srv.holder.ClearIdentity(ctx)

		return nil, nil
	}

	identity := persisted.ToIdentity()
	if identity.ExpiresAt.IsZero() {
		if claims, err := srv.tokens.Inspect(identity.AccessToken); err == nil && claims.ExpiresAt != nil {
			identity.ExpiresAt = claims.ExpiresAt.UTC()
		}
	}

	if identity.Expired(srv.now().Add(expiryLeeway)) {
		refreshed, err := srv.refresh(ctx, identity.RefreshToken)
		if err != nil {
			srv.log(ctx).Warn("Persisted session could not be refreshed", slog.Any("error", err))
			srv.holder.ClearIdentity(ctx)

			return nil, nil
		}
		identity = refreshed
	}

	srv.holder.SetIdentity(ctx, identity)
	srv.log(ctx).Info("Session restored", slog.String("user_id", identity.UserID.String()))

	return srv.holder.Identity(), nil
}

// EnsureFresh refreshes the access token once it is within expiryLeeway of
// expiring. A rejected refresh token signs the user out; any other failure
// keeps the session for the next attempt.
func (srv *sessionService) EnsureFresh(ctx context.Context) error {
	srv.refreshMu.Lock()
	defer srv.refreshMu.Unlock()

	identity := srv.holder.Identity()
	if identity == nil || !identity.Expired(srv.now().Add(expiryLeeway)) {
		return nil
	}

	refreshed, err := srv.refresh(ctx, identity.RefreshToken)

	// Signed out or switched users while the refresh was in flight.
	if !entity.SameUser(srv.holder.Identity(), identity) {
		return nil
	}

	switch {
	case errors.Is(err, domainerrors.ErrInvalidCredentials):
		srv.log(ctx).Info("Session refresh rejected, signing out",
			slog.String("user_id", identity.UserID.String()),
			slog.Any("error", err),
		)
		srv.holder.ClearIdentity(ctx)

		return errors.Wrap(err, "failed to refresh session")
	case err != nil:
		return errors.Wrap(err, "failed to refresh session")
	}

	srv.holder.SetIdentity(ctx, refreshed)
	srv.log(ctx).Debug("Session refreshed", slog.String("user_id", refreshed.UserID.String()))

	return nil
}

func (srv *sessionService) refresh(ctx context.Context, refreshToken string) (*entity.Identity, error) {
	if refreshToken == "" {
		return nil, domainerrors.ErrInvalidCredentials.WithDetails("no refresh token")
	}

	return srv.auth.RefreshSession(ctx, refreshToken)
}

func (srv *sessionService) Current() *entity.Identity {
	return srv.holder.Identity()
}

func (srv *sessionService) ResetPassword(ctx context.Context, email string) error {
	email, err := normalizeEmail(email)
	if err != nil {
		return err
	}

	return srv.auth.ResetPassword(ctx, email, srv.resetRedirectURL)
}

func (srv *sessionService) UpdatePassword(ctx context.Context, password string) error {
	identity := srv.holder.Identity()
	if identity == nil {
		return domainerrors.ErrAuthRequired
	}
	if err := validatePassword(password); err != nil {
		return err
	}

	return srv.auth.UpdatePassword(ctx, identity.AccessToken, password)
}

func normalizeEmail(email string) (string, error) {
	addr, err := mail.ParseAddress(strings.TrimSpace(email))
	if err != nil {
		return "", domainerrors.ErrValidationFailed.WithDetails("a valid email is required")
	}

	return strings.ToLower(addr.Address), nil
}

func validatePassword(password string) error {
	if len(password) < minPasswordLength {
		return domainerrors.ErrValidationFailed.WithDetails("password must be at least 6 characters")
	}

	return nil
}
