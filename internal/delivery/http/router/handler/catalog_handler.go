package handler

import (
	"net/http"

	"storefront/internal/delivery/http/response"
	"storefront/internal/domain/entity"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

type productListResponse struct {
	Products []*entity.Product `json:"products"`
	Count    int               `json:"count"`
}

// CatalogHandler serves product reads.
type CatalogHandler struct {
	uc usecase.CatalogUsecase
}

// NewCatalogHandler is the constructor for CatalogHandler, injected by Fx.
func NewCatalogHandler(uc usecase.CatalogUsecase) *CatalogHandler {
	return &CatalogHandler{uc: uc}
}

// ListProducts lists products, optionally within ?collection=.
func (h *CatalogHandler) ListProducts(c echo.Context) error {
	var (
		collection string
		first      int
	)
	if err := echo.QueryParamsBinder(c).String("collection", &collection).Int("first", &first).BindError(); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product query")
	}

	products, err := h.uc.ListProducts(c.Request().Context(), collection, first)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, productListResponse{Products: products, Count: len(products)}, "")
}

// GetProduct returns one product by handle.
func (h *CatalogHandler) GetProduct(c echo.Context) error {
	product, err := h.uc.GetProduct(c.Request().Context(), c.Param("handle"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, product, "")
}

// Search matches ?q= against title, tag and product type.
func (h *CatalogHandler) Search(c echo.Context) error {
	var (
		query string
		first int
	)
	if err := echo.QueryParamsBinder(c).String("q", &query).Int("first", &first).BindError(); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid search query")
	}

	products, err := h.uc.Search(c.Request().Context(), query, first)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, productListResponse{Products: products, Count: len(products)}, "")
}
