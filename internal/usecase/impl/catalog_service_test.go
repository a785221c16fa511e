package impl

import (
	"context"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	mockSvc "storefront/internal/mocks/service"
	"storefront/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type catalogServiceFixtures struct {
	service  usecase.CatalogUsecase
	commerce *mockSvc.MockCommerceService
}

func createTestCatalogService(t *testing.T) catalogServiceFixtures {
	commerce := mockSvc.NewMockCommerceService(t)

	return catalogServiceFixtures{
		service:  NewCatalogService(CatalogServiceParams{Commerce: commerce, Logger: newDiscardLogger()}),
		commerce: commerce,
	}
}

func TestCatalogService_ListProducts(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()

	fx.commerce.EXPECT().Products(ctx, 12, "skincare").
		Return([]*entity.Product{{ID: "gid://shopify/Product/1", Handle: "snail-essence"}}, nil)

	products, err := fx.service.ListProducts(ctx, " skincare ", 12)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "snail-essence", products[0].Handle)
}

func TestCatalogService_ListProducts_Error(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()

	fx.commerce.EXPECT().Products(ctx, 20, "").Return(nil, domainerrors.ErrNetwork)

	_, err := fx.service.ListProducts(ctx, "", 20)
	assert.ErrorIs(t, err, domainerrors.ErrNetwork)
	assert.Contains(t, err.Error(), "failed to list products")
}

func TestCatalogService_GetProduct(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()

	_, err := fx.service.GetProduct(ctx, "  ")
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	fx.commerce.EXPECT().Product(ctx, "missing").Return(nil, domainerrors.ErrNotFound)

	_, err = fx.service.GetProduct(ctx, "missing")
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestCatalogService_Search(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()

	products, err := fx.service.Search(ctx, "   ", 10)
	require.NoError(t, err)
	assert.NotNil(t, products)
	assert.Empty(t, products)

	fx.commerce.EXPECT().SearchProducts(ctx, "serum", 10).
		Return([]*entity.Product{{Handle: "vitamin-serum"}, {Handle: "peptide-serum"}}, nil)

	products, err = fx.service.Search(ctx, " serum ", 10)
	require.NoError(t, err)
	assert.Len(t, products, 2)
}
