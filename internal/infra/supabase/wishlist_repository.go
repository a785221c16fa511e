package supabase

import (
	"context"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const wishlistItemsTable = "wishlist_items"

type wishlistRepository struct {
	client *Client
}

// NewWishlistRepository creates the wishlist repository backed by the wishlist_items table.
func NewWishlistRepository(client *Client) repository.WishlistRepository {
	return &wishlistRepository{client: client}
}

func (r *wishlistRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.WishlistItem, error) {
	var rows []*entity.WishlistItem
	err := r.client.From(wishlistItemsTable).
		Select("*").
		Eq("user_id", userID).
		Order("created_at", false).
		Fetch(ctx, "listWishlist", &rows)
	if err != nil {
		return nil, err
	}

	return rows, nil
}

func (r *wishlistRepository) Create(ctx context.Context, item *entity.WishlistItem) error {
	err := r.client.From(wishlistItemsTable).Insert(ctx, "addWishlistItem", item, "")
	if errors.Is(err, domainerrors.ErrConflict) {
		return repository.ErrDuplicateWishlistItem
	}

	return err
}

func (r *wishlistRepository) DeleteByProduct(ctx context.Context, userID uuid.UUID, productID string) error {
	return r.client.From(wishlistItemsTable).
		Eq("user_id", userID).
		Eq("product_id", productID).
		Delete(ctx, "removeWishlistItem")
}
