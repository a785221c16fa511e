// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrUserCartNotFound is returned when a user has no cart pointer row yet.
var ErrUserCartNotFound = errors.New("user cart not found")

// UserCartRepository persists the one-row-per-user pointer to a remote cart.
type UserCartRepository interface {
	// FindByUserID returns the pointer row for a user, or ErrUserCartNotFound.
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.UserCart, error)

	// Upsert creates or overwrites the pointer row so that it names cartID.
	Upsert(ctx context.Context, userID uuid.UUID, cartID string) error
}
