package repository

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrDuplicateWishlistItem is returned when the store enforces uniqueness of (user, product) and the row already exists.
var ErrDuplicateWishlistItem = errors.New("wishlist item already exists")

// WishlistRepository persists liked products.
type WishlistRepository interface {
	// FindByUserID lists a user's items, newest first.
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.WishlistItem, error)

	// Create inserts a new item.
	Create(ctx context.Context, item *entity.WishlistItem) error

	// DeleteByProduct removes every row for the (user, product) pair.
	DeleteByProduct(ctx context.Context, userID uuid.UUID, productID string) error
}
