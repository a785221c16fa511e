package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// CatalogUsecase reads products from the commerce platform.
type CatalogUsecase interface {
	ListProducts(ctx context.Context, collection string, first int) ([]*entity.Product, error)
	GetProduct(ctx context.Context, handle string) (*entity.Product, error)

	// Search returns an empty list for a blank query without calling the platform.
	Search(ctx context.Context, query string, first int) ([]*entity.Product, error)
}
