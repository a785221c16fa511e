package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type catalogService struct {
	commerce service.CommerceService
	logger   *slog.Logger
}

// CatalogServiceParams holds dependencies for CatalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	Commerce service.CommerceService
	Logger   *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		commerce: params.Commerce,
		logger:   params.Logger,
	}
}

func (srv *catalogService) ListProducts(ctx context.Context, collection string, first int) ([]*entity.Product, error) {
	products, err := srv.commerce.Products(ctx, first, strings.TrimSpace(collection))
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return products, nil
}

func (srv *catalogService) GetProduct(ctx context.Context, handle string) (*entity.Product, error) {
	handle = strings.TrimSpace(handle)
	if handle == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("product handle is required")
	}

	product, err := srv.commerce.Product(ctx, handle)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get product")
	}

	return product, nil
}

func (srv *catalogService) Search(ctx context.Context, query string, first int) ([]*entity.Product, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []*entity.Product{}, nil
	}

	products, err := srv.commerce.SearchProducts(ctx, query, first)
	if err != nil {
		return nil, errors.Wrap(err, "failed to search products")
	}
	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Debug("Product search",
		slog.String("query", query),
		slog.Int("results", len(products)),
	)

	return products, nil
}
