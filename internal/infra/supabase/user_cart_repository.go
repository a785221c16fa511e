package supabase

import (
	"context"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const userCartsTable = "user_carts"

type userCartRepository struct {
	client *Client
}

// NewUserCartRepository creates the pointer repository backed by the user_carts table.
func NewUserCartRepository(client *Client) repository.UserCartRepository {
	return &userCartRepository{client: client}
}

func (r *userCartRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.UserCart, error) {
	var row entity.UserCart
	err := r.client.From(userCartsTable).
		Select("*").
		Eq("user_id", userID).
		Single().
		Fetch(ctx, "findUserCart", &row)
	if errors.Is(err, domainerrors.ErrNotFound) {
		return nil, repository.ErrUserCartNotFound
	}
	if err != nil {
		return nil, err
	}

	return &row, nil
}

type userCartUpsertRow struct {
	UserID    uuid.UUID `json:"user_id"`
	CartID    string    `json:"shopify_cart_id"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (r *userCartRepository) Upsert(ctx context.Context, userID uuid.UUID, cartID string) error {
	row := userCartUpsertRow{
		UserID:    userID,
		CartID:    cartID,
		UpdatedAt: time.Now().UTC(),
	}

	return r.client.From(userCartsTable).Insert(ctx, "upsertUserCart", row, "user_id")
}
