package supabase

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/infra/metrics"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testAnonKey = "anon-key"

type staticTokens string

func (s staticTokens) AccessToken() string { return string(s) }

func newTestClient(t *testing.T, tokens staticTokens, handler http.HandlerFunc) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := NewClient(Options{
		URL:     server.URL + "/",
		AnonKey: testAnonKey,
		Tokens:  tokens,
		Logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		Metrics: metrics.New(),
	})
	require.NoError(t, err)

	return client
}

func TestNewClient_Validation(t *testing.T) {
	_, err := NewClient(Options{AnonKey: testAnonKey})
	assert.Error(t, err)

	_, err = NewClient(Options{URL: "https://project.supabase.co"})
	assert.Error(t, err)

	client, err := NewClient(Options{URL: "https://project.supabase.co/", AnonKey: testAnonKey})
	require.NoError(t, err)
	assert.Equal(t, "https://project.supabase.co", client.baseURL)
}

func TestClient_BearerPriority(t *testing.T) {
	client, err := NewClient(Options{URL: "https://x.supabase.co", AnonKey: testAnonKey, Tokens: staticTokens("user-token")})
	require.NoError(t, err)

	assert.Equal(t, "explicit", client.bearer("explicit"))
	assert.Equal(t, "user-token", client.bearer(""))

	client.tokens = staticTokens("")
	assert.Equal(t, testAnonKey, client.bearer(""))

	client.tokens = nil
	assert.Equal(t, testAnonKey, client.bearer(""))
}

func TestParseAPIError(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		code    string
		message string
	}{
		{
			name:    "postgrest error",
			status:  http.StatusNotAcceptable,
			body:    `{"code":"PGRST116","message":"JSON object requested, multiple (or no) rows returned"}`,
			code:    codeNoRows,
			message: "JSON object requested, multiple (or no) rows returned",
		},
		{
			name:    "gotrue error",
			status:  http.StatusBadRequest,
			body:    `{"code":400,"error_code":"invalid_credentials","msg":"Invalid login credentials"}`,
			code:    "invalid_credentials",
			message: "Invalid login credentials",
		},
		{
			name:    "oauth style error",
			status:  http.StatusBadRequest,
			body:    `{"error":"invalid_grant","error_description":"Invalid Refresh Token"}`,
			code:    "invalid_grant",
			message: "Invalid Refresh Token",
		},
		{
			name:    "plain text body",
			status:  http.StatusBadGateway,
			body:    "upstream unavailable",
			message: "upstream unavailable",
		},
		{
			name:    "empty json",
			status:  http.StatusInternalServerError,
			body:    `{}`,
			message: http.StatusText(http.StatusInternalServerError),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			apiErr := parseAPIError(tt.status, []byte(tt.body))
			assert.Equal(t, tt.status, apiErr.Status)
			assert.Equal(t, tt.code, apiErr.Code)
			assert.Equal(t, tt.message, apiErr.Message)
		})
	}
}

func TestToDomainError(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		target error
	}{
		{"no rows", &APIError{Status: http.StatusNotAcceptable, Code: codeNoRows}, domainerrors.ErrNotFound},
		{"unique violation", &APIError{Status: http.StatusConflict, Code: codeUniqueViolation}, domainerrors.ErrConflict},
		{"server error", &APIError{Status: http.StatusServiceUnavailable}, domainerrors.ErrNetwork},
		{"rejected", &APIError{Status: http.StatusBadRequest, Code: "22P02", Message: "invalid input syntax"}, domainerrors.ErrRemoteValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, errors.Is(toDomainError(tt.err, "op"), tt.target))
		})
	}

	plain := errors.New("boom")
	assert.Equal(t, plain, toDomainError(plain, "op"))
}

func TestClient_NetworkFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	client, err := NewClient(Options{URL: server.URL, AnonKey: testAnonKey})
	require.NoError(t, err)
	server.Close()

	var rows []map[string]any
	err = client.From("wishlist_items").Select("*").Fetch(context.Background(), "listWishlist", &rows)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrNetwork))
}

func TestParseContentRangeTotal(t *testing.T) {
	total, err := parseContentRangeTotal("0-9/42")
	require.NoError(t, err)
	assert.Equal(t, int64(42), total)

	total, err = parseContentRangeTotal("*/0")
	require.NoError(t, err)
	assert.Equal(t, int64(0), total)

	_, err = parseContentRangeTotal("0-9")
	assert.Error(t, err)

	_, err = parseContentRangeTotal("0-9/")
	assert.Error(t, err)

	_, err = parseContentRangeTotal("0-9/*")
	assert.Error(t, err)
}

func TestQueryBuilder_URL(t *testing.T) {
	client, err := NewClient(Options{URL: "https://x.supabase.co", AnonKey: testAnonKey})
	require.NoError(t, err)

	got := client.From("wishlist_items").
		Select("id").
		Eq("user_id", "u1").
		Order("created_at", false).
		url()

	assert.Equal(t,
		"https://x.supabase.co/rest/v1/wishlist_items?order=created_at.desc&select=id&user_id=eq.u1",
		got)
}

func TestQueryBuilder_DeleteRequiresFilters(t *testing.T) {
	client, err := NewClient(Options{URL: "https://x.supabase.co", AnonKey: testAnonKey})
	require.NoError(t, err)

	err = client.From("wishlist_items").Delete(context.Background(), "removeWishlistItem")
	assert.Error(t, err)
}
