package model

import (
	"time"

	"github.com/google/uuid"
)

// WishlistItemModel is the GORM-specific struct for the 'wishlist_items' table.
type WishlistItemModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key"`
	UserID        uuid.UUID `gorm:"type:uuid;not null;index"`
	ProductID     string    `gorm:"type:text;not null"`
	ProductHandle string    `gorm:"type:text;not null"`
	VariantID     *string   `gorm:"type:text"`
	CreatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (WishlistItemModel) TableName() string {
	return "wishlist_items"
}
