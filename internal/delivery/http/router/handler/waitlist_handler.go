package handler

import (
	"net/http"

	"storefront/internal/delivery/http/response"
	"storefront/internal/domain/entity"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

type joinWaitlistRequest struct {
	FirstName   string `json:"first_name" validate:"max=100"`
	LastName    string `json:"last_name" validate:"max=100"`
	PhoneNumber string `json:"phone_number" validate:"required"`
	CountryCode string `json:"country_code" validate:"max=5"`
	BoxType     string `json:"box_type" validate:"omitempty,oneof=general explore glow custom"`
}

// WaitlistHandler captures subscription box interest.
type WaitlistHandler struct {
	uc usecase.WaitlistUsecase
}

// NewWaitlistHandler is the constructor for WaitlistHandler, injected by Fx.
func NewWaitlistHandler(uc usecase.WaitlistUsecase) *WaitlistHandler {
	return &WaitlistHandler{uc: uc}
}

// Join stores a waitlist signup.
func (h *WaitlistHandler) Join(c echo.Context) error {
	var req joinWaitlistRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid waitlist input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	signup, err := h.uc.Join(c.Request().Context(), usecase.JoinWaitlistInput{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		PhoneNumber: req.PhoneNumber,
		CountryCode: req.CountryCode,
		BoxType:     entity.BoxType(req.BoxType),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, signup, "You're on the list")
}

// Count returns the number of signups for ?box_type=, or all signups when
// the filter is omitted.
func (h *WaitlistHandler) Count(c echo.Context) error {
	boxType := entity.BoxType(c.QueryParam("box_type"))

	count, err := h.uc.Count(c.Request().Context(), boxType)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{"box_type": boxType, "count": count}, "")
}
