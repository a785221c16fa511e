// Package service defines interfaces for remote collaborators and stateless domain logic.
package service

import (
	"context"

	"storefront/internal/domain/entity"
)

// CommerceService is the remote commerce platform: catalog reads and cart mutations.
// Every cart mutation returns the full cart snapshot computed by the platform.
type CommerceService interface {
	// Products lists products, optionally restricted to a collection handle.
	Products(ctx context.Context, first int, collection string) ([]*entity.Product, error)

	// Product fetches a single product by handle.
	Product(ctx context.Context, handle string) (*entity.Product, error)

	// SearchProducts matches title, tag or product type.
	SearchProducts(ctx context.Context, query string, first int) ([]*entity.Product, error)

	// CreateCart creates an empty cart.
	CreateCart(ctx context.Context) (*entity.Cart, error)

	// Cart fetches a cart by identifier. Unknown or expired carts yield a not-found error.
	Cart(ctx context.Context, cartID string) (*entity.Cart, error)

	// AddCartLines adds merchandise to a cart.
	AddCartLines(ctx context.Context, cartID string, lines []entity.CartLineInput) (*entity.Cart, error)

	// UpdateCartLines changes line quantities. Quantities must be at least 1.
	UpdateCartLines(ctx context.Context, cartID string, lines []entity.CartLineUpdate) (*entity.Cart, error)

	// RemoveCartLines removes lines from a cart.
	RemoveCartLines(ctx context.Context, cartID string, lineIDs []string) (*entity.Cart, error)
}
