package middleware

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/delivery/http/response"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	mockUsecase "storefront/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func serve(e *echo.Echo, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) response.Response {
	t.Helper()
	var env response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))

	return env
}

func TestErrorMiddleware_HandleHTTPError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantErr  string
	}{
		{
			name:     "app error",
			err:      errors.WithStack(domainerrors.ErrCartEmpty),
			wantCode: http.StatusConflict,
			wantErr:  "CART_EMPTY",
		},
		{
			name:     "remote call error",
			err:      errors.Wrap(domainerrors.NewNetworkError(errors.New("dial tcp: timeout"), "commerce", "timeout"), "failed to load cart"),
			wantCode: http.StatusBadGateway,
			wantErr:  "NETWORK_ERROR",
		},
		{
			name:     "echo error",
			err:      echo.ErrNotFound,
			wantCode: http.StatusNotFound,
			wantErr:  "HTTP_ERROR",
		},
		{
			name:     "unknown error",
			err:      errors.New("boom"),
			wantCode: http.StatusInternalServerError,
			wantErr:  "INTERNAL_ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			e.HTTPErrorHandler = NewErrorMiddleware(newDiscardLogger()).HandleHTTPError
			e.GET("/", func(echo.Context) error { return tt.err })

			rec := serve(e, httptest.NewRequest(http.MethodGet, "/", nil))
			require.Equal(t, tt.wantCode, rec.Code)

			env := decode(t, rec)
			assert.False(t, env.Success)
			assert.Equal(t, tt.wantErr, env.Error.Code)
		})
	}
}

func TestErrorMiddleware_HidesInternalDetails(t *testing.T) {
	e := echo.New()
	e.HTTPErrorHandler = NewErrorMiddleware(newDiscardLogger()).HandleHTTPError
	e.GET("/", func(echo.Context) error { return errors.New("password=hunter2") })

	rec := serve(e, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.NotContains(t, rec.Body.String(), "hunter2")
}

func TestRequestIDMiddleware_Process(t *testing.T) {
	e := echo.New()
	e.Use(NewRequestIDMiddleware(newDiscardLogger()).Process)

	var fromCtx string
	e.GET("/", func(c echo.Context) error {
		fromCtx = deliverycontext.RequestIDFromContext(c.Request().Context())

		return c.NoContent(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(deliverycontext.HeaderXRequestID, "req-42")
	rec := serve(e, req)
	assert.Equal(t, "req-42", rec.Header().Get(deliverycontext.HeaderXRequestID))
	assert.Equal(t, "req-42", fromCtx)

	rec = serve(e, httptest.NewRequest(http.MethodGet, "/", nil))
	_, err := uuid.Parse(rec.Header().Get(deliverycontext.HeaderXRequestID))
	assert.NoError(t, err)
}

func TestLoggerMiddleware_ResolvesErrorStatus(t *testing.T) {
	cfg := &config.Config{}
	cfg.Env.Debug = true

	e := echo.New()
	e.HTTPErrorHandler = NewErrorMiddleware(newDiscardLogger()).HandleHTTPError
	e.Use(NewLoggerMiddleware(newDiscardLogger(), cfg).Handle)
	e.GET("/", func(echo.Context) error { return domainerrors.ErrAuthRequired })

	rec := serve(e, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "AUTH_REQUIRED", decode(t, rec).Error.Code)
}

func TestSessionMiddleware_RequireIdentity(t *testing.T) {
	session := mockUsecase.NewMockSessionUsecase(t)
	identity := &entity.Identity{UserID: uuid.New()}

	e := echo.New()
	e.HTTPErrorHandler = NewErrorMiddleware(newDiscardLogger()).HandleHTTPError
	e.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, c.Get(KeyUserID).(uuid.UUID).String())
	}, NewSessionMiddleware(session, newDiscardLogger()).RequireIdentity)

	session.EXPECT().Current().Return(nil).Once()
	rec := serve(e, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	session.EXPECT().Current().Return(identity).Once()
	rec = serve(e, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, identity.UserID.String(), rec.Body.String())
}

func TestSessionMiddleware_KeepFresh(t *testing.T) {
	session := mockUsecase.NewMockSessionUsecase(t)

	e := echo.New()
	e.HTTPErrorHandler = NewErrorMiddleware(newDiscardLogger()).HandleHTTPError
	e.Use(NewSessionMiddleware(session, newDiscardLogger()).KeepFresh)
	e.GET("/", func(c echo.Context) error { return c.NoContent(http.StatusNoContent) })

	session.EXPECT().EnsureFresh(mock.Anything).Return(nil).Once()
	rec := serve(e, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusNoContent, rec.Code)

	session.EXPECT().EnsureFresh(mock.Anything).
		Return(domainerrors.NewNetworkError(errors.New("connection reset"), "auth", "refreshSession")).Once()
	rec = serve(e, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusNoContent, rec.Code, "a failed refresh must not fail the request")
}
