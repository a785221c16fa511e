package handler

import (
	"net/http"

	"storefront/internal/delivery/http/response"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

type addLineRequest struct {
	MerchandiseID string `json:"merchandise_id" validate:"required"`
	Quantity      int    `json:"quantity" validate:"required,min=1"`
}

type changeLineRequest struct {
	LineID   string `json:"line_id" validate:"required"`
	Quantity int    `json:"quantity"`
}

type removeLinesRequest struct {
	LineIDs []string `json:"line_ids" validate:"required,min=1,dive,required"`
}

type cartResponse struct {
	Cart     *entity.Cart `json:"cart"`
	Revision uint64       `json:"revision"`
	State    string       `json:"state"`
	Count    int          `json:"count"`
}

// CartHandler exposes the cart coordinator and the checkout handoff.
type CartHandler struct {
	cart     usecase.CartUsecase
	checkout usecase.CheckoutUsecase
}

// NewCartHandler is the constructor for CartHandler, injected by Fx.
func NewCartHandler(cart usecase.CartUsecase, checkout usecase.CheckoutUsecase) *CartHandler {
	return &CartHandler{
		cart:     cart,
		checkout: checkout,
	}
}

// GetCart returns the current snapshot. Its version doubles as an ETag so
// observers can poll with If-None-Match and receive 304 while nothing changed.
func (h *CartHandler) GetCart(c echo.Context) error {
	snapshot := h.cart.Snapshot()
	if snapshot.State == usecase.CartUninitialized {
		if err := h.cart.Init(c.Request().Context()); err != nil {
			return domainerrors.ErrCartUnavailable.WithDetails(err.Error())
		}
		snapshot = h.cart.Snapshot()
	}

	etag := versionETag(snapshot)
	if c.Request().Header.Get("If-None-Match") == etag {
		c.Response().Header().Set("ETag", etag)

		return c.NoContent(http.StatusNotModified)
	}

	return h.writeSnapshot(c, http.StatusOK, snapshot)
}

// AddLine adds merchandise to the cart.
func (h *CartHandler) AddLine(c echo.Context) error {
	var req addLineRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid cart line input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	snapshot, err := h.cart.AddLine(c.Request().Context(), req.MerchandiseID, req.Quantity)
	if err != nil {
		return errors.WithStack(err)
	}

	return h.writeSnapshot(c, http.StatusOK, snapshot)
}

// ChangeLine sets a line's quantity; zero removes the line.
func (h *CartHandler) ChangeLine(c echo.Context) error {
	var req changeLineRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid cart line input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	snapshot, err := h.cart.ChangeLineQuantity(c.Request().Context(), req.LineID, req.Quantity)
	if err != nil {
		return errors.WithStack(err)
	}

	return h.writeSnapshot(c, http.StatusOK, snapshot)
}

// RemoveLines removes lines in a single remote call.
func (h *CartHandler) RemoveLines(c echo.Context) error {
	var req removeLinesRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid cart line input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	snapshot, err := h.cart.RemoveLines(c.Request().Context(), req.LineIDs)
	if err != nil {
		return errors.WithStack(err)
	}

	return h.writeSnapshot(c, http.StatusOK, snapshot)
}

// Count returns the number of items in the cart.
func (h *CartHandler) Count(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]int{"count": h.cart.Count()}, "")
}

// Checkout returns the checkout URL, or redirects to it with ?redirect=true.
func (h *CartHandler) Checkout(c echo.Context) error {
	url, err := h.checkout.CheckoutURL(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	if c.QueryParam("redirect") == "true" {
		return c.Redirect(http.StatusSeeOther, url)
	}

	return response.Success(c, http.StatusOK, map[string]string{"checkout_url": url}, "")
}

// CheckoutQRCode renders the checkout URL as a PNG.
func (h *CartHandler) CheckoutQRCode(c echo.Context) error {
	png, err := h.checkout.CheckoutQRCode(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	c.Response().Header().Set(echo.HeaderCacheControl, "no-store")

	return c.Blob(http.StatusOK, "image/png", png)
}

func (h *CartHandler) writeSnapshot(c echo.Context, status int, snapshot usecase.CartSnapshot) error {
	c.Response().Header().Set("ETag", versionETag(snapshot))

	return response.Success(c, status, cartResponse{
		Cart:     snapshot.Cart,
		Revision: snapshot.Revision,
		State:    snapshot.State.String(),
		Count:    snapshot.Cart.TotalQuantity(),
	}, "")
}

func versionETag(snapshot usecase.CartSnapshot) string {
	return `"` + snapshot.Version() + `"`
}
