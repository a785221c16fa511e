package supabase

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type authService struct {
	client *Client
	now    func() time.Time
}

// NewAuthService exposes the GoTrue endpoints as the domain auth service.
func NewAuthService(client *Client) service.AuthService {
	return &authService{
		client: client,
		now:    time.Now,
	}
}

type userPayload struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	UserMetadata struct {
		FullName string `json:"full_name"`
	} `json:"user_metadata"`
}

type sessionPayload struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	ExpiresIn    int64        `json:"expires_in"`
	ExpiresAt    int64        `json:"expires_at"`
	User         *userPayload `json:"user"`
}

func (s *authService) SignUp(ctx context.Context, email, password, fullName string) (*service.SignUpResult, error) {
	body := map[string]any{
		"email":    email,
		"password": password,
		"data":     map[string]any{"full_name": fullName},
	}

	raw, err := s.post(ctx, "signUp", "signup", nil, body, "")
	if err != nil {
		return nil, s.mapAuthError(err, "signUp")
	}

	var session sessionPayload
	if err := json.Unmarshal(raw, &session); err != nil {
		return nil, errors.Wrap(err, "decode sign-up response")
	}

	// Without auto-confirm the platform answers with the bare user object.
	if session.AccessToken == "" {
		return &service.SignUpResult{ConfirmationRequired: true}, nil
	}

	identity, err := s.toIdentity(&session)
	if err != nil {
		return nil, err
	}

	return &service.SignUpResult{Identity: identity}, nil
}

func (s *authService) SignInWithPassword(ctx context.Context, email, password string) (*entity.Identity, error) {
	query := url.Values{"grant_type": {"password"}}
	body := map[string]any{"email": email, "password": password}

	return s.tokenGrant(ctx, "signInWithPassword", query, body)
}

func (s *authService) RefreshSession(ctx context.Context, refreshToken string) (*entity.Identity, error) {
	query := url.Values{"grant_type": {"refresh_token"}}
	body := map[string]any{"refresh_token": refreshToken}

	return s.tokenGrant(ctx, "refreshSession", query, body)
}

func (s *authService) SignOut(ctx context.Context, accessToken string) error {
	if _, err := s.post(ctx, "signOut", "logout", nil, nil, accessToken); err != nil {
		return s.mapAuthError(err, "signOut")
	}

	return nil
}

func (s *authService) User(ctx context.Context, accessToken string) (*entity.Identity, error) {
	req, err := s.client.newRequest(ctx, http.MethodGet, s.client.baseURL+authPath+"user", nil, accessToken)
	if err != nil {
		return nil, err
	}

	_, raw, err := s.client.do(req, "getUser")
	if err != nil {
		return nil, s.mapAuthError(err, "getUser")
	}

	var user userPayload
	if err := json.Unmarshal(raw, &user); err != nil {
		return nil, errors.Wrap(err, "decode user")
	}

	userID, err := uuid.Parse(user.ID)
	if err != nil {
		return nil, errors.Wrapf(err, "parse user id %q", user.ID)
	}

	return &entity.Identity{
		UserID:      userID,
		Email:       user.Email,
		FullName:    user.UserMetadata.FullName,
		AccessToken: accessToken,
	}, nil
}

func (s *authService) OAuthURL(provider, redirectTo string) (string, error) {
	if provider == "" {
		return "", domainerrors.ErrValidationFailed.WithDetails("provider is required")
	}

	query := url.Values{"provider": {provider}}
	if redirectTo != "" {
		query.Set("redirect_to", redirectTo)
	}

	return s.client.baseURL + authPath + "authorize?" + query.Encode(), nil
}

func (s *authService) ResetPassword(ctx context.Context, email, redirectTo string) error {
	var query url.Values
	if redirectTo != "" {
		query = url.Values{"redirect_to": {redirectTo}}
	}

	if _, err := s.post(ctx, "resetPassword", "recover", query, map[string]any{"email": email}, ""); err != nil {
		return s.mapAuthError(err, "resetPassword")
	}

	return nil
}

func (s *authService) UpdatePassword(ctx context.Context, accessToken, password string) error {
	payload, err := json.Marshal(map[string]any{"password": password})
	if err != nil {
		return errors.Wrap(err, "encode password update")
	}

	req, err := s.client.newRequest(ctx, http.MethodPut, s.client.baseURL+authPath+"user", bytes.NewReader(payload), accessToken)
	if err != nil {
		return err
	}

	if _, _, err := s.client.do(req, "updatePassword"); err != nil {
		return s.mapAuthError(err, "updatePassword")
	}

	return nil
}

func (s *authService) tokenGrant(ctx context.Context, operation string, query url.Values, body map[string]any) (*entity.Identity, error) {
	raw, err := s.post(ctx, operation, "token", query, body, "")
	if err != nil {
		return nil, s.mapAuthError(err, operation)
	}

	var session sessionPayload
	if err := json.Unmarshal(raw, &session); err != nil {
		return nil, errors.Wrap(err, "decode session")
	}

	return s.toIdentity(&session)
}

func (s *authService) post(ctx context.Context, operation, path string, query url.Values, body any, accessToken string) ([]byte, error) {
	endpoint := s.client.baseURL + authPath + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, errors.Wrapf(err, "encode %s request", operation)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := s.client.newRequest(ctx, http.MethodPost, endpoint, reader, accessToken)
	if err != nil {
		return nil, err
	}

	_, raw, err := s.client.do(req, operation)

	return raw, err
}

func (s *authService) toIdentity(session *sessionPayload) (*entity.Identity, error) {
	if session.AccessToken == "" || session.User == nil {
		return nil, domainerrors.NewRemoteValidationError("session missing from response")
	}

	userID, err := uuid.Parse(session.User.ID)
	if err != nil {
		return nil, errors.Wrapf(err, "parse user id %q", session.User.ID)
	}

	expiresAt := time.Time{}
	switch {
	case session.ExpiresAt > 0:
		expiresAt = time.Unix(session.ExpiresAt, 0).UTC()
	case session.ExpiresIn > 0:
		expiresAt = s.now().Add(time.Duration(session.ExpiresIn) * time.Second).UTC()
	}

	return &entity.Identity{
		UserID:       userID,
		Email:        session.User.Email,
		FullName:     session.User.UserMetadata.FullName,
		AccessToken:  session.AccessToken,
		RefreshToken: session.RefreshToken,
		ExpiresAt:    expiresAt,
	}, nil
}

// mapAuthError turns GoTrue answers into domain errors. Credential and
// refresh-token rejections become ErrInvalidCredentials.
func (s *authService) mapAuthError(err error, operation string) error {
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		return err
	}

	switch {
	case apiErr.Status >= http.StatusInternalServerError:
		return domainerrors.NewNetworkError(apiErr, serviceName, operation)
	case operation == "signInWithPassword" || operation == "refreshSession":
		if apiErr.Status == http.StatusBadRequest || apiErr.Status == http.StatusUnauthorized {
			return domainerrors.ErrInvalidCredentials.WithDetails(apiErr.Message)
		}
	case apiErr.Status == http.StatusUnauthorized || apiErr.Status == http.StatusForbidden:
		return domainerrors.ErrAuthRequired.WithDetails(apiErr.Message)
	case apiErr.Status == http.StatusUnprocessableEntity && apiErr.Code == "user_already_exists":
		return domainerrors.ErrConflict.WithDetails(apiErr.Message)
	}

	return domainerrors.NewRemoteValidationError(apiErr.Message)
}
