package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// AddWishlistInput identifies the product being liked.
type AddWishlistInput struct {
	ProductID     string
	ProductHandle string
	VariantID     *string
}

// WishlistUsecase keeps the signed-in user's liked products in memory.
type WishlistUsecase interface {
	// IsLiked checks membership without a remote call.
	IsLiked(productID string) bool

	// Add likes a product. Requires a signed-in identity.
	Add(ctx context.Context, input AddWishlistInput) error

	// Remove unlikes a product. Requires a signed-in identity.
	Remove(ctx context.Context, productID string) error

	// Toggle flips membership and reports the resulting state.
	Toggle(ctx context.Context, input AddWishlistInput) (bool, error)

	// Items lists liked products, newest first.
	Items() []*entity.WishlistItem

	// Count is the number of liked products.
	Count() int

	// Refresh reloads the set for the current identity.
	Refresh(ctx context.Context) error

	// OnIdentityChange reloads on sign-in and clears on sign-out.
	OnIdentityChange(ctx context.Context, prev, next *entity.Identity)
}
