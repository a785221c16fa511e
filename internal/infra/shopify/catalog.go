package shopify

import (
	"context"
	"fmt"
	"strings"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
)

// Products lists products, or the products of a collection when a handle is given.
// An unknown collection yields an empty list.
func (c *Client) Products(ctx context.Context, first int, collection string) ([]*entity.Product, error) {
	first = c.resolvePageSize(first)

	if collection == "" {
		var data struct {
			Products productConnection `json:"products"`
		}
		if err := c.execute(ctx, "products", productsQuery, map[string]any{"first": first}, &data); err != nil {
			return nil, err
		}

		return data.Products.toEntities(), nil
	}

	var data struct {
		Collection *struct {
			Products productConnection `json:"products"`
		} `json:"collection"`
	}
	variables := map[string]any{"handle": collection, "first": first}
	if err := c.execute(ctx, "collectionProducts", collectionProductsQuery, variables, &data); err != nil {
		return nil, err
	}
	if data.Collection == nil {
		return []*entity.Product{}, nil
	}

	return data.Collection.Products.toEntities(), nil
}

// Product fetches a product by handle.
func (c *Client) Product(ctx context.Context, handle string) (*entity.Product, error) {
	var data struct {
		Product *productNode `json:"product"`
	}
	if err := c.execute(ctx, "product", productQuery, map[string]any{"handle": handle}, &data); err != nil {
		return nil, err
	}
	if data.Product == nil {
		return nil, domainerrors.ErrNotFound.WithDetails("product " + handle)
	}

	return data.Product.toEntity(), nil
}

// SearchProducts matches the term against title, tag and product type.
func (c *Client) SearchProducts(ctx context.Context, query string, first int) ([]*entity.Product, error) {
	var data struct {
		Products productConnection `json:"products"`
	}
	variables := map[string]any{
		"query": searchExpression(query),
		"first": c.resolvePageSize(first),
	}
	if err := c.execute(ctx, "searchProducts", searchProductsQuery, variables, &data); err != nil {
		return nil, err
	}

	return data.Products.toEntities(), nil
}

func searchExpression(term string) string {
	term = strings.TrimSpace(term)

	return fmt.Sprintf("title:*%[1]s* OR tag:*%[1]s* OR product_type:*%[1]s*", term)
}
