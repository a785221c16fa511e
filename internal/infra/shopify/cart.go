package shopify

import (
	"context"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"

	"github.com/pkg/errors"
)

// CreateCart creates an empty cart.
func (c *Client) CreateCart(ctx context.Context) (*entity.Cart, error) {
	var data struct {
		CartCreate cartPayload `json:"cartCreate"`
	}
	if err := c.execute(ctx, "cartCreate", cartCreateMutation, map[string]any{}, &data); err != nil {
		return nil, err
	}

	return data.CartCreate.result("cartCreate")
}

// Cart fetches a cart. The storefront answers null for unknown or expired carts.
func (c *Client) Cart(ctx context.Context, cartID string) (*entity.Cart, error) {
	var data struct {
		Cart *cartNode `json:"cart"`
	}
	if err := c.execute(ctx, "cart", cartQuery, map[string]any{"cartId": cartID}, &data); err != nil {
		return nil, err
	}
	if data.Cart == nil {
		return nil, domainerrors.ErrNotFound.WithDetails("cart " + cartID)
	}

	return data.Cart.toEntity(), nil
}

// AddCartLines adds merchandise lines to a cart.
func (c *Client) AddCartLines(ctx context.Context, cartID string, lines []entity.CartLineInput) (*entity.Cart, error) {
	inputs := make([]map[string]any, 0, len(lines))
	for _, line := range lines {
		inputs = append(inputs, map[string]any{
			"merchandiseId": line.MerchandiseID,
			"quantity":      line.Quantity,
		})
	}

	var data struct {
		CartLinesAdd cartPayload `json:"cartLinesAdd"`
	}
	variables := map[string]any{"cartId": cartID, "lines": inputs}
	if err := c.execute(ctx, "cartLinesAdd", cartLinesAddMutation, variables, &data); err != nil {
		return nil, err
	}

	return data.CartLinesAdd.result("cartLinesAdd")
}

// UpdateCartLines sets line quantities.
func (c *Client) UpdateCartLines(ctx context.Context, cartID string, lines []entity.CartLineUpdate) (*entity.Cart, error) {
	inputs := make([]map[string]any, 0, len(lines))
	for _, line := range lines {
		if line.Quantity < 1 {
			return nil, domainerrors.ErrValidationFailed.WithDetails("line quantity must be at least 1")
		}
		inputs = append(inputs, map[string]any{
			"id":       line.LineID,
			"quantity": line.Quantity,
		})
	}

	var data struct {
		CartLinesUpdate cartPayload `json:"cartLinesUpdate"`
	}
	variables := map[string]any{"cartId": cartID, "lines": inputs}
	if err := c.execute(ctx, "cartLinesUpdate", cartLinesUpdateMutation, variables, &data); err != nil {
		return nil, err
	}

	return data.CartLinesUpdate.result("cartLinesUpdate")
}

// RemoveCartLines removes lines from a cart.
func (c *Client) RemoveCartLines(ctx context.Context, cartID string, lineIDs []string) (*entity.Cart, error) {
	var data struct {
		CartLinesRemove cartPayload `json:"cartLinesRemove"`
	}
	variables := map[string]any{"cartId": cartID, "lineIds": lineIDs}
	if err := c.execute(ctx, "cartLinesRemove", cartLinesRemoveMutation, variables, &data); err != nil {
		return nil, err
	}

	return data.CartLinesRemove.result("cartLinesRemove")
}

func (p cartPayload) result(operation string) (*entity.Cart, error) {
	if len(p.UserErrors) > 0 {
		return nil, domainerrors.NewRemoteValidationError(p.UserErrors[0].Message)
	}
	if p.Cart == nil {
		return nil, domainerrors.NewNetworkError(errors.New("mutation returned no cart"), serviceName, operation)
	}

	return p.Cart.toEntity(), nil
}
