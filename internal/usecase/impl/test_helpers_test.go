package impl

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"storefront/config"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/session"
	"storefront/internal/infra/localstore"

	"github.com/google/uuid"
	"gocloud.dev/blob/memblob"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestHolder(t *testing.T) *session.Holder {
	holder, _ := newTestHolderWithState(t)

	return holder
}

func newTestHolderWithState(t *testing.T) (*session.Holder, repository.LocalStateRepository) {
	t.Helper()
	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })
	local := localstore.NewWithBucket(bucket)

	return session.NewHolder(local, newDiscardLogger()), local
}

func newTestIdentity(email string) *entity.Identity {
	return &entity.Identity{
		UserID:       uuid.New(),
		Email:        email,
		AccessToken:  "access-" + email,
		RefreshToken: "refresh-" + email,
		ExpiresAt:    time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func newTestConfig() *config.Config {
	return &config.Config{
		Commerce: &config.CommerceConfig{StoreDomain: "seoulglow.com"},
		Supabase: &config.SupabaseConfig{
			OAuthRedirectURL:         "https://seoulglow.com/auth/callback",
			PasswordResetRedirectURL: "https://seoulglow.com/reset",
		},
	}
}

func testCart(id string, quantities ...int) *entity.Cart {
	cart := &entity.Cart{ID: id, CheckoutURL: "https://seoulglow.com/cart/c/" + id}
	for i, q := range quantities {
		cart.Lines = append(cart.Lines, entity.CartLine{
			ID:       id + "-line-" + string(rune('a'+i)),
			Quantity: q,
		})
	}

	return cart
}
