package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

const globalIDScheme = "gid://"

// WishlistItem is one liked product of a user.
type WishlistItem struct {
	ID            uuid.UUID `json:"id"`
	UserID        uuid.UUID `json:"user_id"`
	ProductID     string    `json:"product_id"`
	ProductHandle string    `json:"product_handle"`
	VariantID     *string   `json:"variant_id,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// CanonicalProductID strips a global ID down to its trailing path segment,
// so "gid://shopify/Product/123" and "123" compare equal.
func CanonicalProductID(productID string) string {
	productID = strings.TrimSpace(productID)
	if !strings.Contains(productID, globalIDScheme) {
		return productID
	}

	idx := strings.LastIndex(productID, "/")
	if idx < 0 || idx == len(productID)-1 {
		return productID
	}

	return productID[idx+1:]
}
