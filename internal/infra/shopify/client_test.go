package shopify

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/infra/metrics"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const cartJSON = `{
  "id": "gid://shopify/Cart/B",
  "checkoutUrl": "https://shop.app/checkout/123/cn/abc?key=1",
  "lines": {"edges": [{"node": {
    "id": "gid://shopify/CartLine/1",
    "quantity": 1,
    "merchandise": {
      "id": "gid://shopify/ProductVariant/Y",
      "title": "50ml",
      "priceV2": {"amount": "24.0", "currencyCode": "USD"},
      "product": {"title": "Snail Essence", "handle": "snail-essence",
        "images": {"edges": [{"node": {"url": "https://cdn.example.com/snail.jpg", "altText": null}}]}}
    }
  }}]},
  "cost": {
    "totalAmount": {"amount": "24.0", "currencyCode": "USD"},
    "subtotalAmount": {"amount": "24.0", "currencyCode": "USD"}
  }
}`

type capturedRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables"`
}

func newTestClient(t *testing.T, handler func(w http.ResponseWriter, req capturedRequest)) *Client {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "test-token", r.Header.Get(tokenHeader))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req capturedRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		w.Header().Set("Content-Type", "application/json")
		handler(w, req)
	}))
	t.Cleanup(server.Close)

	client, err := NewClient(Options{
		Endpoint: server.URL,
		Token:    "test-token",
		PageSize: 20,
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		Metrics:  metrics.New(),
	})
	require.NoError(t, err)

	return client
}

func TestNewClient_Validation(t *testing.T) {
	_, err := NewClient(Options{Token: "token"})
	assert.Error(t, err)

	_, err = NewClient(Options{StoreDomain: "shop.example.com"})
	assert.Error(t, err)

	client, err := NewClient(Options{StoreDomain: "shop.example.com", Token: "token", APIVersion: "2026-01"})
	require.NoError(t, err)
	assert.Equal(t, "https://shop.example.com/api/2026-01/graphql.json", client.endpoint)
}

func TestClient_Cart(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, req capturedRequest) {
		assert.Contains(t, req.Query, "cart(id: $cartId)")
		assert.Equal(t, "gid://shopify/Cart/B", req.Variables["cartId"])
		_, _ = io.WriteString(w, `{"data": {"cart": `+cartJSON+`}}`)
	})

	cart, err := client.Cart(context.Background(), "gid://shopify/Cart/B")
	require.NoError(t, err)

	assert.Equal(t, "gid://shopify/Cart/B", cart.ID)
	require.Len(t, cart.Lines, 1)
	line := cart.Lines[0]
	assert.Equal(t, 1, line.Quantity)
	assert.Equal(t, "gid://shopify/ProductVariant/Y", line.Merchandise.ID)
	assert.Equal(t, "snail-essence", line.Merchandise.Product.Handle)
	require.NotNil(t, line.Merchandise.Product.Image)
	assert.Equal(t, "https://cdn.example.com/snail.jpg", line.Merchandise.Product.Image.URL)
	assert.Equal(t, entity.Money{Amount: "24.0", CurrencyCode: "USD"}, cart.Cost.TotalAmount)
}

func TestClient_Cart_NullIsNotFound(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ capturedRequest) {
		_, _ = io.WriteString(w, `{"data": {"cart": null}}`)
	})

	_, err := client.Cart(context.Background(), "gid://shopify/Cart/expired")
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestClient_GraphQLErrorIsRemoteValidation(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ capturedRequest) {
		_, _ = io.WriteString(w, `{"errors": [{"message": "Variable $cartId of type ID! was provided invalid value"}, {"message": "second"}]}`)
	})

	_, err := client.Cart(context.Background(), "bad")
	require.ErrorIs(t, err, domainerrors.ErrRemoteValidation)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "Variable $cartId of type ID! was provided invalid value", appErr.Details())
}

func TestClient_HTTPFailureIsNetworkError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ capturedRequest) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = io.WriteString(w, `{"errors": "[API] Invalid API key or access token"}`)
	})

	_, err := client.CreateCart(context.Background())
	require.ErrorIs(t, err, domainerrors.ErrNetwork)
	assert.Contains(t, err.Error(), "Invalid API key")
}

func TestClient_UnreachableIsNetworkError(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	endpoint := server.URL
	server.Close()

	client, err := NewClient(Options{Endpoint: endpoint, Token: "token"})
	require.NoError(t, err)

	_, err = client.CreateCart(context.Background())
	assert.ErrorIs(t, err, domainerrors.ErrNetwork)
}

func TestClient_AddCartLines(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, req capturedRequest) {
		assert.Contains(t, req.Query, "cartLinesAdd")
		lines, ok := req.Variables["lines"].([]any)
		require.True(t, ok)
		require.Len(t, lines, 1)
		line := lines[0].(map[string]any)
		assert.Equal(t, "gid://shopify/ProductVariant/Y", line["merchandiseId"])
		assert.Equal(t, float64(1), line["quantity"])
		_, _ = io.WriteString(w, `{"data": {"cartLinesAdd": {"cart": `+cartJSON+`, "userErrors": []}}}`)
	})

	cart, err := client.AddCartLines(context.Background(), "gid://shopify/Cart/B", []entity.CartLineInput{
		{MerchandiseID: "gid://shopify/ProductVariant/Y", Quantity: 1},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, cart.TotalQuantity())
}

func TestClient_UserErrorsAreRemoteValidation(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ capturedRequest) {
		_, _ = io.WriteString(w, `{"data": {"cartLinesAdd": {"cart": null, "userErrors": [{"field": ["lines"], "message": "The merchandise with id X does not exist."}]}}}`)
	})

	_, err := client.AddCartLines(context.Background(), "gid://shopify/Cart/B", []entity.CartLineInput{
		{MerchandiseID: "X", Quantity: 1},
	})
	assert.ErrorIs(t, err, domainerrors.ErrRemoteValidation)
}

func TestClient_UpdateCartLines_RejectsQuantityBelowOne(t *testing.T) {
	client := newTestClient(t, func(http.ResponseWriter, capturedRequest) {
		t.Error("no request expected")
	})

	_, err := client.UpdateCartLines(context.Background(), "cart", []entity.CartLineUpdate{{LineID: "line", Quantity: 0}})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestClient_RemoveCartLines(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, req capturedRequest) {
		assert.Contains(t, req.Query, "cartLinesRemove")
		assert.Equal(t, []any{"gid://shopify/CartLine/9"}, req.Variables["lineIds"])
		_, _ = io.WriteString(w, `{"data": {"cartLinesRemove": {"cart": `+cartJSON+`, "userErrors": []}}}`)
	})

	cart, err := client.RemoveCartLines(context.Background(), "gid://shopify/Cart/B", []string{"gid://shopify/CartLine/9"})
	require.NoError(t, err)
	assert.Equal(t, "gid://shopify/Cart/B", cart.ID)
}

func TestClient_Products(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, req capturedRequest) {
		assert.Equal(t, float64(50), req.Variables["first"])
		_, _ = io.WriteString(w, `{"data": {"products": {"edges": [{"node": {
			"id": "gid://shopify/Product/42", "title": "Serum", "handle": "serum-42", "tags": ["glow"],
			"images": {"edges": []},
			"priceRange": {"minVariantPrice": {"amount": "18.0", "currencyCode": "USD"}},
			"compareAtPriceRange": {"minVariantPrice": {"amount": "0.0", "currencyCode": "USD"}},
			"variants": {"edges": [{"node": {"id": "gid://shopify/ProductVariant/1", "title": "Default", "availableForSale": true,
				"priceV2": {"amount": "18.0", "currencyCode": "USD"}}}]}
		}}]}}}`)
	})

	products, err := client.Products(context.Background(), 500, "")
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "serum-42", products[0].Handle)
	assert.Nil(t, products[0].CompareAtPrice)
	require.Len(t, products[0].Variants, 1)
	assert.True(t, products[0].Variants[0].AvailableForSale)
}

func TestClient_Products_UnknownCollection(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, req capturedRequest) {
		assert.Equal(t, "new-arrivals", req.Variables["handle"])
		assert.Equal(t, float64(20), req.Variables["first"])
		_, _ = io.WriteString(w, `{"data": {"collection": null}}`)
	})

	products, err := client.Products(context.Background(), 0, "new-arrivals")
	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestClient_Product_NotFound(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ capturedRequest) {
		_, _ = io.WriteString(w, `{"data": {"product": null}}`)
	})

	_, err := client.Product(context.Background(), "missing")
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestClient_SearchProducts(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, req capturedRequest) {
		assert.Equal(t, "title:*toner* OR tag:*toner* OR product_type:*toner*", req.Variables["query"])
		_, _ = io.WriteString(w, `{"data": {"products": {"edges": []}}}`)
	})

	products, err := client.SearchProducts(context.Background(), " toner ", 10)
	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestClampPageSize(t *testing.T) {
	assert.Equal(t, 20, clampPageSize(0))
	assert.Equal(t, 1, clampPageSize(1))
	assert.Equal(t, 50, clampPageSize(51))
}

func TestFirstErrorMessage(t *testing.T) {
	assert.Empty(t, firstErrorMessage([]byte(`{"data": {}}`)))
	assert.Equal(t, "boom", firstErrorMessage([]byte(`{"errors": [{"message": "boom"}]}`)))
	assert.Equal(t, "denied", firstErrorMessage([]byte(`{"errors": "denied"}`)))
	assert.True(t, strings.HasPrefix(searchExpression("a"), "title:*a*"))
}
