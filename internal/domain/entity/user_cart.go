package entity

import (
	"time"

	"github.com/google/uuid"
)

// UserCart is the per-user pointer to the remote cart last associated with that user.
type UserCart struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	CartID    string    `json:"shopify_cart_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
