// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"storefront/internal/delivery/http/response"
	"storefront/internal/domain/entity"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

type signUpRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	FullName string `json:"full_name" validate:"max=200"`
}

type signInRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type oauthCallbackRequest struct {
	AccessToken  string `json:"access_token" validate:"required"`
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type resetPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type updatePasswordRequest struct {
	Password string `json:"password" validate:"required,min=6"`
}

type sessionResponse struct {
	SignedIn bool             `json:"signed_in"`
	Identity *entity.Identity `json:"identity,omitempty"`
}

// AuthHandler exposes the session usecase.
type AuthHandler struct {
	uc     usecase.SessionUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.SessionUsecase, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		uc:     uc,
		logger: logger,
	}
}

// SignUp registers an account. A pending email confirmation answers 202 without a session.
func (h *AuthHandler) SignUp(c echo.Context) error {
	var req signUpRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid sign-up input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	outcome, err := h.uc.SignUp(c.Request().Context(), usecase.SignUpInput{
		Email:    req.Email,
		Password: req.Password,
		FullName: req.FullName,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	if outcome.ConfirmationRequired {
		return response.Success(c, http.StatusAccepted, sessionResponse{}, "Check your email to confirm the account")
	}

	return response.Success(c, http.StatusCreated, sessionResponse{SignedIn: true, Identity: outcome.Identity}, "Account created")
}

// SignIn handles email and password sign-in.
func (h *AuthHandler) SignIn(c echo.Context) error {
	var req signInRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid sign-in input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	identity, err := h.uc.SignIn(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, sessionResponse{SignedIn: true, Identity: identity}, "Signed in")
}

// SignOut clears the session. It succeeds even when the remote sign-out fails.
func (h *AuthHandler) SignOut(c echo.Context) error {
	if err := h.uc.SignOut(c.Request().Context()); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, sessionResponse{}, "Signed out")
}

// Session reports the current identity.
func (h *AuthHandler) Session(c echo.Context) error {
	identity := h.uc.Current()

	return response.Success(c, http.StatusOK, sessionResponse{SignedIn: identity != nil, Identity: identity}, "")
}

// OAuthStart returns the provider sign-in URL, or redirects to it with ?redirect=true.
func (h *AuthHandler) OAuthStart(c echo.Context) error {
	url, err := h.uc.SignInWithOAuth(c.Param("provider"))
	if err != nil {
		return errors.WithStack(err)
	}

	if c.QueryParam("redirect") == "true" {
		return c.Redirect(http.StatusTemporaryRedirect, url)
	}

	return response.Success(c, http.StatusOK, map[string]string{"url": url}, "")
}

// OAuthCallback completes a redirect-based sign-in with the tokens handed back by the provider flow.
func (h *AuthHandler) OAuthCallback(c echo.Context) error {
	var req oauthCallbackRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid OAuth callback input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	identity, err := h.uc.CompleteOAuth(c.Request().Context(), req.AccessToken, req.RefreshToken)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, sessionResponse{SignedIn: true, Identity: identity}, "Signed in")
}

// ResetPassword sends a recovery email.
func (h *AuthHandler) ResetPassword(c echo.Context) error {
	var req resetPasswordRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid password reset input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := h.uc.ResetPassword(c.Request().Context(), req.Email); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusAccepted, nil, "Password reset email sent")
}

// UpdatePassword changes the signed-in user's password.
func (h *AuthHandler) UpdatePassword(c echo.Context) error {
	var req updatePasswordRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid password input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := h.uc.UpdatePassword(c.Request().Context(), req.Password); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Password updated")
}
