package model

import (
	"time"

	"github.com/google/uuid"
)

// UserCartModel is the GORM-specific struct for the 'user_carts' table.
// One row per user names the remote cart last associated with that user.
type UserCartModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	CartID    string    `gorm:"column:shopify_cart_id;type:text;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserCartModel) TableName() string {
	return "user_carts"
}
