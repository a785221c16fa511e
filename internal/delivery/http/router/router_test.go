package router

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"storefront/config"
	"storefront/internal/delivery/http/middleware"
	"storefront/internal/delivery/http/response"
	"storefront/internal/delivery/http/router/handler"
	"storefront/internal/delivery/http/validator"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/infra/metrics"
	mockUsecase "storefront/internal/mocks/usecase"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type routerFixtures struct {
	e        *echo.Echo
	session  *mockUsecase.MockSessionUsecase
	catalog  *mockUsecase.MockCatalogUsecase
	cart     *mockUsecase.MockCartUsecase
	checkout *mockUsecase.MockCheckoutUsecase
	wishlist *mockUsecase.MockWishlistUsecase
	waitlist *mockUsecase.MockWaitlistUsecase
}

func createTestRouter(t *testing.T) routerFixtures {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	fx := routerFixtures{
		e:        echo.New(),
		session:  mockUsecase.NewMockSessionUsecase(t),
		catalog:  mockUsecase.NewMockCatalogUsecase(t),
		cart:     mockUsecase.NewMockCartUsecase(t),
		checkout: mockUsecase.NewMockCheckoutUsecase(t),
		wishlist: mockUsecase.NewMockWishlistUsecase(t),
		waitlist: mockUsecase.NewMockWaitlistUsecase(t),
	}
	fx.e.Validator = validator.New()
	fx.e.HTTPErrorHandler = middleware.NewErrorMiddleware(logger).HandleHTTPError

	cfg := &config.Config{Metrics: &config.MetricsConfig{Enabled: true, Path: "/metrics"}}
	NewRouter(RouterParams{
		Config:            cfg,
		AuthHandler:       handler.NewAuthHandler(fx.session, logger),
		CatalogHandler:    handler.NewCatalogHandler(fx.catalog),
		CartHandler:       handler.NewCartHandler(fx.cart, fx.checkout),
		WishlistHandler:   handler.NewWishlistHandler(fx.wishlist),
		WaitlistHandler:   handler.NewWaitlistHandler(fx.waitlist),
		SessionMiddleware: middleware.NewSessionMiddleware(fx.session, slog.New(slog.NewTextHandler(io.Discard, nil))),
		Metrics:           metrics.New(),
	}).RegisterRoutes(fx.e)

	return fx
}

func (fx routerFixtures) do(method, target, body string, headers ...string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	rec := httptest.NewRecorder()
	fx.e.ServeHTTP(rec, req)

	return rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) (response.Response, map[string]any) {
	t.Helper()
	var raw struct {
		response.Response
		Data map[string]any `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &raw))

	return raw.Response, raw.Data
}

func testIdentity() *entity.Identity {
	return &entity.Identity{UserID: uuid.New(), Email: "mina@example.com", AccessToken: "secret-access"}
}

func TestRouter_Health(t *testing.T) {
	fx := createTestRouter(t)

	rec := fx.do(http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_Metrics(t *testing.T) {
	fx := createTestRouter(t)

	rec := fx.do(http.MethodGet, "/metrics", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "storefront_cart_stale_responses_total")
}

func TestRouter_SignIn(t *testing.T) {
	fx := createTestRouter(t)
	identity := testIdentity()

	fx.session.EXPECT().SignIn(mock.Anything, "mina@example.com", "secret123").Return(identity, nil)

	rec := fx.do(http.MethodPost, "/auth/signin", `{"email":"mina@example.com","password":"secret123"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	env, data := decodeEnvelope(t, rec)
	assert.True(t, env.Success)
	assert.Equal(t, true, data["signed_in"])
	assert.NotContains(t, rec.Body.String(), "secret-access", "tokens never leave the process")
}

func TestRouter_SignIn_ValidationFailed(t *testing.T) {
	fx := createTestRouter(t)

	rec := fx.do(http.MethodPost, "/auth/signin", `{"email":"nope","password":""}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	env, _ := decodeEnvelope(t, rec)
	assert.False(t, env.Success)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
}

func TestRouter_SignIn_InvalidCredentials(t *testing.T) {
	fx := createTestRouter(t)

	fx.session.EXPECT().SignIn(mock.Anything, "mina@example.com", "wrong").Return(nil, domainerrors.ErrInvalidCredentials)

	rec := fx.do(http.MethodPost, "/auth/signin", `{"email":"mina@example.com","password":"wrong"}`)
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	env, _ := decodeEnvelope(t, rec)
	assert.Equal(t, "INVALID_CREDENTIALS", env.Error.Code)
}

func TestRouter_SignIn_MalformedBody(t *testing.T) {
	fx := createTestRouter(t)

	rec := fx.do(http.MethodPost, "/auth/signin", `{"email":`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	env, _ := decodeEnvelope(t, rec)
	assert.Equal(t, "INVALID_INPUT", env.Error.Code)
}

func TestRouter_SignUp_ConfirmationPending(t *testing.T) {
	fx := createTestRouter(t)

	fx.session.EXPECT().SignUp(mock.Anything, usecase.SignUpInput{Email: "mina@example.com", Password: "secret123", FullName: "Mina"}).
		Return(&usecase.SignUpOutcome{ConfirmationRequired: true}, nil)

	rec := fx.do(http.MethodPost, "/auth/signup", `{"email":"mina@example.com","password":"secret123","full_name":"Mina"}`)
	assert.Equal(t, http.StatusAccepted, rec.Code)
}

func TestRouter_Session(t *testing.T) {
	fx := createTestRouter(t)

	fx.session.EXPECT().Current().Return(nil)

	rec := fx.do(http.MethodGet, "/auth/session", "")
	require.Equal(t, http.StatusOK, rec.Code)

	_, data := decodeEnvelope(t, rec)
	assert.Equal(t, false, data["signed_in"])
}

func TestRouter_OAuthStart(t *testing.T) {
	fx := createTestRouter(t)
	url := "https://project.supabase.co/auth/v1/authorize?provider=google"

	fx.session.EXPECT().SignInWithOAuth("google").Return(url, nil).Twice()

	rec := fx.do(http.MethodGet, "/auth/oauth/google?redirect=true", "")
	assert.Equal(t, http.StatusTemporaryRedirect, rec.Code)
	assert.Equal(t, url, rec.Header().Get(echo.HeaderLocation))

	rec = fx.do(http.MethodGet, "/auth/oauth/google", "")
	require.Equal(t, http.StatusOK, rec.Code)
	_, data := decodeEnvelope(t, rec)
	assert.Equal(t, url, data["url"])
}

func TestRouter_UpdatePassword_RequiresIdentity(t *testing.T) {
	fx := createTestRouter(t)

	fx.session.EXPECT().Current().Return(nil)

	rec := fx.do(http.MethodPut, "/auth/password", `{"password":"new-secret"}`)
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	env, _ := decodeEnvelope(t, rec)
	assert.Equal(t, "AUTH_REQUIRED", env.Error.Code)
}

func TestRouter_ListProducts(t *testing.T) {
	fx := createTestRouter(t)

	fx.catalog.EXPECT().ListProducts(mock.Anything, "skincare", 5).
		Return([]*entity.Product{{Handle: "snail-essence"}}, nil)

	rec := fx.do(http.MethodGet, "/products?collection=skincare&first=5", "")
	require.Equal(t, http.StatusOK, rec.Code)

	_, data := decodeEnvelope(t, rec)
	assert.Equal(t, float64(1), data["count"])

	rec = fx.do(http.MethodGet, "/products?first=several", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRouter_GetProduct_NotFound(t *testing.T) {
	fx := createTestRouter(t)

	fx.catalog.EXPECT().GetProduct(mock.Anything, "missing").Return(nil, domainerrors.ErrNotFound)

	rec := fx.do(http.MethodGet, "/products/missing", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

const testEpoch = "7d3c1f0e"

func readySnapshot(revision uint64, quantities ...int) usecase.CartSnapshot {
	cart := &entity.Cart{ID: "cart-1", CheckoutURL: "https://seoulglow.com/cart/c/1"}
	for _, q := range quantities {
		cart.Lines = append(cart.Lines, entity.CartLine{ID: uuid.NewString(), Quantity: q})
	}

	return usecase.CartSnapshot{Cart: cart, Epoch: testEpoch, Revision: revision, State: usecase.CartReady}
}

func TestRouter_GetCart_ETag(t *testing.T) {
	fx := createTestRouter(t)

	fx.cart.EXPECT().Snapshot().Return(readySnapshot(3, 2, 1))

	rec := fx.do(http.MethodGet, "/cart", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, `"7d3c1f0e-3"`, rec.Header().Get("ETag"))

	_, data := decodeEnvelope(t, rec)
	assert.Equal(t, float64(3), data["count"])
	assert.Equal(t, "ready", data["state"])

	rec = fx.do(http.MethodGet, "/cart", "", "If-None-Match", `"7d3c1f0e-3"`)
	assert.Equal(t, http.StatusNotModified, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestRouter_GetCart_InitializesLazily(t *testing.T) {
	fx := createTestRouter(t)

	fx.cart.EXPECT().Snapshot().Return(usecase.CartSnapshot{State: usecase.CartUninitialized}).Once()
	fx.cart.EXPECT().Init(mock.Anything).Return(nil)
	fx.cart.EXPECT().Snapshot().Return(readySnapshot(1)).Once()

	rec := fx.do(http.MethodGet, "/cart", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_GetCart_Unavailable(t *testing.T) {
	fx := createTestRouter(t)

	fx.cart.EXPECT().Snapshot().Return(usecase.CartSnapshot{State: usecase.CartUninitialized})
	fx.cart.EXPECT().Init(mock.Anything).Return(domainerrors.ErrNetwork)

	rec := fx.do(http.MethodGet, "/cart", "")
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)

	env, _ := decodeEnvelope(t, rec)
	assert.Equal(t, "CART_UNAVAILABLE", env.Error.Code)
}

func TestRouter_CartLines(t *testing.T) {
	fx := createTestRouter(t)

	fx.cart.EXPECT().AddLine(mock.Anything, "gid://shopify/ProductVariant/7", 2).Return(readySnapshot(2, 2), nil)
	fx.cart.EXPECT().ChangeLineQuantity(mock.Anything, "line-1", 0).Return(readySnapshot(3), nil)
	fx.cart.EXPECT().RemoveLines(mock.Anything, []string{"line-2", "line-3"}).Return(readySnapshot(4), nil)

	rec := fx.do(http.MethodPost, "/cart/lines", `{"merchandise_id":"gid://shopify/ProductVariant/7","quantity":2}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, `"7d3c1f0e-2"`, rec.Header().Get("ETag"))

	rec = fx.do(http.MethodPatch, "/cart/lines", `{"line_id":"line-1","quantity":0}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = fx.do(http.MethodDelete, "/cart/lines", `{"line_ids":["line-2","line-3"]}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, `"7d3c1f0e-4"`, rec.Header().Get("ETag"))
}

func TestRouter_GetCart_ETagFromEarlierProcess(t *testing.T) {
	fx := createTestRouter(t)

	snapshot := readySnapshot(1, 2)
	fx.cart.EXPECT().Snapshot().Return(snapshot)

	// Same revision number, issued before a restart.
	rec := fx.do(http.MethodGet, "/cart", "", "If-None-Match", `"0a9b8c7d-1"`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, `"7d3c1f0e-1"`, rec.Header().Get("ETag"))
}

func TestRouter_ChangeLine_NegativeQuantityRemoves(t *testing.T) {
	fx := createTestRouter(t)

	fx.cart.EXPECT().ChangeLineQuantity(mock.Anything, "line-1", -2).Return(readySnapshot(5), nil)

	rec := fx.do(http.MethodPatch, "/cart/lines", `{"line_id":"line-1","quantity":-2}`)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_AddLine_Validation(t *testing.T) {
	fx := createTestRouter(t)

	rec := fx.do(http.MethodPost, "/cart/lines", `{"merchandise_id":"v","quantity":0}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = fx.do(http.MethodDelete, "/cart/lines", `{"line_ids":[]}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRouter_AddLine_RemoteValidation(t *testing.T) {
	fx := createTestRouter(t)

	fx.cart.EXPECT().AddLine(mock.Anything, "v", 1).
		Return(readySnapshot(1), domainerrors.ErrRemoteValidation.WithDetails("Merchandise is sold out"))

	rec := fx.do(http.MethodPost, "/cart/lines", `{"merchandise_id":"v","quantity":1}`)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	env, _ := decodeEnvelope(t, rec)
	assert.Equal(t, "Merchandise is sold out", env.Error.Details)
}

func TestRouter_CartCount(t *testing.T) {
	fx := createTestRouter(t)

	fx.cart.EXPECT().Count().Return(7)

	rec := fx.do(http.MethodGet, "/cart/count", "")
	_, data := decodeEnvelope(t, rec)
	assert.Equal(t, float64(7), data["count"])
}

func TestRouter_Checkout(t *testing.T) {
	fx := createTestRouter(t)

	fx.checkout.EXPECT().CheckoutURL(mock.Anything).Return("https://seoulglow.com/checkouts/777", nil).Once()

	rec := fx.do(http.MethodGet, "/cart/checkout?redirect=true", "")
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "https://seoulglow.com/checkouts/777", rec.Header().Get(echo.HeaderLocation))

	fx.checkout.EXPECT().CheckoutURL(mock.Anything).Return("", domainerrors.ErrCartEmpty).Once()

	rec = fx.do(http.MethodGet, "/cart/checkout", "")
	require.Equal(t, http.StatusConflict, rec.Code)
	env, _ := decodeEnvelope(t, rec)
	assert.Equal(t, "CART_EMPTY", env.Error.Code)
}

func TestRouter_CheckoutQRCode(t *testing.T) {
	fx := createTestRouter(t)

	fx.checkout.EXPECT().CheckoutQRCode(mock.Anything).Return([]byte("\x89PNG"), nil)

	rec := fx.do(http.MethodGet, "/cart/checkout/qr", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, "\x89PNG", rec.Body.String())
}

func TestRouter_Wishlist(t *testing.T) {
	fx := createTestRouter(t)
	identity := testIdentity()

	fx.wishlist.EXPECT().Items().Return([]*entity.WishlistItem{{ProductID: "123"}})
	fx.wishlist.EXPECT().IsLiked("123").Return(true)
	fx.session.EXPECT().Current().Return(identity)
	fx.wishlist.EXPECT().Toggle(mock.Anything, usecase.AddWishlistInput{ProductID: "123", ProductHandle: "snail-essence"}).Return(false, nil)
	fx.wishlist.EXPECT().Remove(mock.Anything, "456").Return(nil)

	rec := fx.do(http.MethodGet, "/wishlist", "")
	_, data := decodeEnvelope(t, rec)
	assert.Equal(t, float64(1), data["count"])

	rec = fx.do(http.MethodGet, "/wishlist/liked?product_id=123", "")
	_, data = decodeEnvelope(t, rec)
	assert.Equal(t, true, data["liked"])

	rec = fx.do(http.MethodPost, "/wishlist/toggle", `{"product_id":"123","product_handle":"snail-essence"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	_, data = decodeEnvelope(t, rec)
	assert.Equal(t, false, data["liked"])

	rec = fx.do(http.MethodDelete, "/wishlist?product_id=456", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_WishlistAdd_RequiresIdentity(t *testing.T) {
	fx := createTestRouter(t)

	fx.session.EXPECT().Current().Return(nil)

	rec := fx.do(http.MethodPost, "/wishlist", `{"product_id":"123"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRouter_Waitlist(t *testing.T) {
	fx := createTestRouter(t)

	fx.waitlist.EXPECT().Join(mock.Anything, usecase.JoinWaitlistInput{PhoneNumber: "555 123 4567", BoxType: entity.BoxTypeGlow}).
		Return(&entity.WaitlistSignup{FormattedPhone: "+1 5551234567", BoxType: entity.BoxTypeGlow}, nil)
	fx.waitlist.EXPECT().Count(mock.Anything, entity.BoxType("")).Return(int64(12), nil)
	fx.waitlist.EXPECT().Count(mock.Anything, entity.BoxTypeExplore).Return(int64(5), nil)

	rec := fx.do(http.MethodPost, "/waitlist", `{"phone_number":"555 123 4567","box_type":"glow"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = fx.do(http.MethodGet, "/waitlist/count", "")
	_, data := decodeEnvelope(t, rec)
	assert.Equal(t, float64(12), data["count"])

	rec = fx.do(http.MethodGet, "/waitlist/count?box_type=explore", "")
	_, data = decodeEnvelope(t, rec)
	assert.Equal(t, float64(5), data["count"])

	rec = fx.do(http.MethodPost, "/waitlist", `{"phone_number":"5551234567","box_type":"deluxe"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
