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

type wishlistItemRequest struct {
	ProductID     string  `json:"product_id" validate:"required"`
	ProductHandle string  `json:"product_handle"`
	VariantID     *string `json:"variant_id"`
}

type wishlistResponse struct {
	Items []*entity.WishlistItem `json:"items"`
	Count int                    `json:"count"`
}

type likedResponse struct {
	ProductID string `json:"product_id"`
	Liked     bool   `json:"liked"`
}

// WishlistHandler exposes the wishlist coordinator.
type WishlistHandler struct {
	uc usecase.WishlistUsecase
}

// NewWishlistHandler is the constructor for WishlistHandler, injected by Fx.
func NewWishlistHandler(uc usecase.WishlistUsecase) *WishlistHandler {
	return &WishlistHandler{uc: uc}
}

// List returns the liked products; empty when signed out.
func (h *WishlistHandler) List(c echo.Context) error {
	items := h.uc.Items()

	return response.Success(c, http.StatusOK, wishlistResponse{Items: items, Count: len(items)}, "")
}

// Liked answers whether ?product_id= is in the wishlist.
func (h *WishlistHandler) Liked(c echo.Context) error {
	productID := c.QueryParam("product_id")
	if productID == "" {
		return response.BindingError(c, "INVALID_INPUT", "product_id is required")
	}

	return response.Success(c, http.StatusOK, likedResponse{ProductID: productID, Liked: h.uc.IsLiked(productID)}, "")
}

// Add likes a product.
func (h *WishlistHandler) Add(c echo.Context) error {
	req, err := h.bindItem(c)
	if err != nil {
		return err
	}

	if err := h.uc.Add(c.Request().Context(), req.input()); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, likedResponse{ProductID: req.ProductID, Liked: true}, "Added to wishlist")
}

// Toggle flips a product's membership.
func (h *WishlistHandler) Toggle(c echo.Context) error {
	req, err := h.bindItem(c)
	if err != nil {
		return err
	}

	liked, err := h.uc.Toggle(c.Request().Context(), req.input())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, likedResponse{ProductID: req.ProductID, Liked: liked}, "")
}

// Remove unlikes ?product_id=.
func (h *WishlistHandler) Remove(c echo.Context) error {
	productID := c.QueryParam("product_id")
	if productID == "" {
		return response.BindingError(c, "INVALID_INPUT", "product_id is required")
	}

	if err := h.uc.Remove(c.Request().Context(), productID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, likedResponse{ProductID: productID, Liked: false}, "Removed from wishlist")
}

func (h *WishlistHandler) bindItem(c echo.Context) (*wishlistItemRequest, error) {
	var req wishlistItemRequest
	if err := c.Bind(&req); err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("invalid wishlist input")
	}
	if err := c.Validate(&req); err != nil {
		return nil, err
	}

	return &req, nil
}

func (r *wishlistItemRequest) input() usecase.AddWishlistInput {
	return usecase.AddWishlistInput{
		ProductID:     r.ProductID,
		ProductHandle: r.ProductHandle,
		VariantID:     r.VariantID,
	}
}
