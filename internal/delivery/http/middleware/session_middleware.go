package middleware

import (
	"log/slog"

	deliverycontext "storefront/internal/delivery/context"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
)

// KeyUserID is the echo.Context key holding the signed-in user's ID.
const KeyUserID = "userID"

// SessionMiddleware keeps the access token fresh and guards routes that need a signed-in identity.
type SessionMiddleware struct {
	session usecase.SessionUsecase
	logger  *slog.Logger
}

// NewSessionMiddleware is the constructor for SessionMiddleware.
func NewSessionMiddleware(session usecase.SessionUsecase, logger *slog.Logger) *SessionMiddleware {
	return &SessionMiddleware{session: session, logger: logger}
}

// KeepFresh refreshes an expiring access token before the handler makes
// remote calls with it. A failed refresh never fails the request.
func (m *SessionMiddleware) KeepFresh(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		if err := m.session.EnsureFresh(ctx); err != nil {
			deliverycontext.GetLoggerOrDefault(ctx, m.logger).Warn("Failed to refresh session", slog.Any("error", err))
		}

		return next(c)
	}
}

// RequireIdentity rejects the request with AUTH_REQUIRED when nobody is signed in.
func (m *SessionMiddleware) RequireIdentity(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		identity := m.session.Current()
		if identity == nil {
			return domainerrors.ErrAuthRequired
		}

		c.Set(KeyUserID, identity.UserID)

		return next(c)
	}
}
