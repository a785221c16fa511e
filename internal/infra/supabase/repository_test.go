package supabase

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserCartRepository_FindByUserID(t *testing.T) {
	userID := uuid.New()
	client := newTestClient(t, "user-token", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/rest/v1/user_carts", r.URL.Path)
		assert.Equal(t, "eq."+userID.String(), r.URL.Query().Get("user_id"))
		assert.Equal(t, "application/vnd.pgrst.object+json", r.Header.Get("Accept"))
		assert.Equal(t, testAnonKey, r.Header.Get("apikey"))
		assert.Equal(t, "Bearer user-token", r.Header.Get("Authorization"))

		_, _ = w.Write([]byte(`{"id":"` + uuid.NewString() + `","user_id":"` + userID.String() +
			`","shopify_cart_id":"gid://shopify/Cart/C","created_at":"2026-01-02T03:04:05Z","updated_at":"2026-01-02T03:04:05Z"}`))
	})

	row, err := NewUserCartRepository(client).FindByUserID(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, userID, row.UserID)
	assert.Equal(t, "gid://shopify/Cart/C", row.CartID)
}

func TestUserCartRepository_FindByUserID_NotFound(t *testing.T) {
	client := newTestClient(t, "", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotAcceptable)
		_, _ = w.Write([]byte(`{"code":"PGRST116","message":"JSON object requested, multiple (or no) rows returned"}`))
	})

	row, err := NewUserCartRepository(client).FindByUserID(context.Background(), uuid.New())
	assert.Nil(t, row)
	assert.ErrorIs(t, err, repository.ErrUserCartNotFound)
}

func TestUserCartRepository_FindByUserID_ServerError(t *testing.T) {
	client := newTestClient(t, "", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := NewUserCartRepository(client).FindByUserID(context.Background(), uuid.New())
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrNetwork))
	assert.NotErrorIs(t, err, repository.ErrUserCartNotFound)
}

func TestUserCartRepository_Upsert(t *testing.T) {
	userID := uuid.New()
	client := newTestClient(t, "user-token", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "user_id", r.URL.Query().Get("on_conflict"))
		assert.Equal(t, "resolution=merge-duplicates,return=minimal", r.Header.Get("Prefer"))

		var row map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&row))
		assert.Equal(t, userID.String(), row["user_id"])
		assert.Equal(t, "gid://shopify/Cart/B", row["shopify_cart_id"])
		assert.NotEmpty(t, row["updated_at"])

		w.WriteHeader(http.StatusCreated)
	})

	err := NewUserCartRepository(client).Upsert(context.Background(), userID, "gid://shopify/Cart/B")
	assert.NoError(t, err)
}

func TestWishlistRepository_FindByUserID(t *testing.T) {
	userID := uuid.New()
	client := newTestClient(t, "user-token", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/rest/v1/wishlist_items", r.URL.Path)
		assert.Equal(t, "created_at.desc", r.URL.Query().Get("order"))
		assert.Equal(t, "application/json", r.Header.Get("Accept"))

		_, _ = w.Write([]byte(`[
			{"id":"` + uuid.NewString() + `","user_id":"` + userID.String() + `","product_id":"123","product_handle":"snail-essence","variant_id":null,"created_at":"2026-02-01T00:00:00Z"},
			{"id":"` + uuid.NewString() + `","user_id":"` + userID.String() + `","product_id":"456","product_handle":"rice-toner","variant_id":"gid://shopify/ProductVariant/9","created_at":"2026-01-01T00:00:00Z"}
		]`))
	})

	items, err := NewWishlistRepository(client).FindByUserID(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "123", items[0].ProductID)
	assert.Nil(t, items[0].VariantID)
	require.NotNil(t, items[1].VariantID)
	assert.Equal(t, "gid://shopify/ProductVariant/9", *items[1].VariantID)
}

func TestWishlistRepository_Create(t *testing.T) {
	item := &entity.WishlistItem{
		ID:            uuid.New(),
		UserID:        uuid.New(),
		ProductID:     "123",
		ProductHandle: "snail-essence",
		CreatedAt:     time.Now().UTC(),
	}

	t.Run("inserted", func(t *testing.T) {
		client := newTestClient(t, "user-token", func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Empty(t, r.URL.Query().Get("on_conflict"))
			assert.Equal(t, "return=minimal", r.Header.Get("Prefer"))

			var row map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&row))
			assert.Equal(t, "123", row["product_id"])
			assert.NotContains(t, row, "variant_id")

			w.WriteHeader(http.StatusCreated)
		})

		assert.NoError(t, NewWishlistRepository(client).Create(context.Background(), item))
	})

	t.Run("duplicate", func(t *testing.T) {
		client := newTestClient(t, "user-token", func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusConflict)
			_, _ = w.Write([]byte(`{"code":"23505","message":"duplicate key value violates unique constraint"}`))
		})

		err := NewWishlistRepository(client).Create(context.Background(), item)
		assert.ErrorIs(t, err, repository.ErrDuplicateWishlistItem)
	})
}

func TestWishlistRepository_DeleteByProduct(t *testing.T) {
	userID := uuid.New()
	client := newTestClient(t, "user-token", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "eq."+userID.String(), r.URL.Query().Get("user_id"))
		assert.Equal(t, "eq.123", r.URL.Query().Get("product_id"))

		w.WriteHeader(http.StatusNoContent)
	})

	assert.NoError(t, NewWishlistRepository(client).DeleteByProduct(context.Background(), userID, "123"))
}

func TestWaitlistRepository_Create(t *testing.T) {
	client := newTestClient(t, "", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/rest/v1/waitlist_signups", r.URL.Path)
		assert.Equal(t, "Bearer "+testAnonKey, r.Header.Get("Authorization"))

		var row map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&row))
		assert.Equal(t, "glow", row["box_type"])
		assert.Equal(t, "+1 5551234567", row["formatted_phone"])

		w.WriteHeader(http.StatusCreated)
	})

	err := NewWaitlistRepository(client).Create(context.Background(), &entity.WaitlistSignup{
		FirstName:      "Jae",
		LastName:       "Kim",
		PhoneNumber:    "5551234567",
		FormattedPhone: "+1 5551234567",
		CountryCode:    "+1",
		BoxType:        entity.BoxTypeGlow,
	})
	assert.NoError(t, err)
}

func TestWaitlistRepository_CountByBoxType(t *testing.T) {
	client := newTestClient(t, "", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodHead, r.Method)
		assert.Equal(t, "count=exact", r.Header.Get("Prefer"))
		assert.Equal(t, "eq.explore", r.URL.Query().Get("box_type"))

		w.Header().Set("Content-Range", "*/17")
		w.WriteHeader(http.StatusOK)
	})

	count, err := NewWaitlistRepository(client).CountByBoxType(context.Background(), entity.BoxTypeExplore)
	require.NoError(t, err)
	assert.Equal(t, int64(17), count)
}

func TestWaitlistRepository_CountByBoxType_All(t *testing.T) {
	client := newTestClient(t, "", func(w http.ResponseWriter, r *http.Request) {
		assert.False(t, r.URL.Query().Has("box_type"))

		w.Header().Set("Content-Range", "0-0/240")
		w.WriteHeader(http.StatusOK)
	})

	count, err := NewWaitlistRepository(client).CountByBoxType(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, int64(240), count)
}
