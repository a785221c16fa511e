package session

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/localstore"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
)

type transition struct {
	prev *entity.Identity
	next *entity.Identity
}

func newTestHolder(t *testing.T) (*Holder, repository.LocalStateRepository) {
	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })
	local := localstore.NewWithBucket(bucket)

	return NewHolder(local, slog.New(slog.NewTextHandler(io.Discard, nil))), local
}

func TestHolder_SetIdentityNotifiesAndPersists(t *testing.T) {
	ctx := context.Background()
	holder, _ := newTestHolder(t)

	var seen []transition
	holder.Subscribe(func(_ context.Context, prev, next *entity.Identity) {
		seen = append(seen, transition{prev: prev, next: next})
	})

	identity := &entity.Identity{
		UserID:       uuid.New(),
		Email:        "mina@example.com",
		AccessToken:  "access-1",
		RefreshToken: "refresh-1",
		ExpiresAt:    time.Unix(1900000000, 0).UTC(),
	}
	holder.SetIdentity(ctx, identity)

	require.Len(t, seen, 1)
	assert.Nil(t, seen[0].prev)
	assert.Equal(t, identity.UserID, seen[0].next.UserID)
	assert.Equal(t, "access-1", holder.AccessToken())

	stored, err := holder.PersistedSession(ctx)
	require.NoError(t, err)
	assert.Equal(t, identity, stored.ToIdentity())
}

func TestHolder_TokenRefreshForSameUserIsSilent(t *testing.T) {
	ctx := context.Background()
	holder, _ := newTestHolder(t)
	userID := uuid.New()

	calls := 0
	holder.Subscribe(func(context.Context, *entity.Identity, *entity.Identity) { calls++ })

	holder.SetIdentity(ctx, &entity.Identity{UserID: userID, AccessToken: "old"})
	holder.SetIdentity(ctx, &entity.Identity{UserID: userID, AccessToken: "new"})

	assert.Equal(t, 1, calls)
	assert.Equal(t, "new", holder.AccessToken())
}

func TestHolder_ClearIdentityKeepsCartReference(t *testing.T) {
	ctx := context.Background()
	holder, _ := newTestHolder(t)

	var seen []transition
	holder.Subscribe(func(_ context.Context, prev, next *entity.Identity) {
		seen = append(seen, transition{prev: prev, next: next})
	})

	require.NoError(t, holder.SetCartReference(ctx, "cart_A"))
	holder.SetIdentity(ctx, &entity.Identity{UserID: uuid.New(), AccessToken: "token"})
	holder.ClearIdentity(ctx)

	require.Len(t, seen, 2)
	assert.Nil(t, seen[1].next)
	assert.Nil(t, holder.Identity())
	assert.Empty(t, holder.AccessToken())

	_, err := holder.PersistedSession(ctx)
	assert.ErrorIs(t, err, repository.ErrLocalStateNotFound)

	ref, err := holder.CartReference(ctx)
	require.NoError(t, err)
	assert.Equal(t, "cart_A", ref)
}

func TestHolder_ClearIdentityWhenAnonymousDoesNotNotify(t *testing.T) {
	holder, _ := newTestHolder(t)

	calls := 0
	holder.Subscribe(func(context.Context, *entity.Identity, *entity.Identity) { calls++ })

	holder.ClearIdentity(context.Background())

	assert.Zero(t, calls)
}

func TestHolder_CartReference(t *testing.T) {
	ctx := context.Background()
	holder, _ := newTestHolder(t)

	ref, err := holder.CartReference(ctx)
	require.NoError(t, err)
	assert.Empty(t, ref)

	require.NoError(t, holder.SetCartReference(ctx, "cart_A"))
	require.NoError(t, holder.SetCartReference(ctx, "cart_B"))

	ref, err = holder.CartReference(ctx)
	require.NoError(t, err)
	assert.Equal(t, "cart_B", ref)

	require.NoError(t, holder.ClearCartReference(ctx))
	require.NoError(t, holder.ClearCartReference(ctx))

	ref, err = holder.CartReference(ctx)
	require.NoError(t, err)
	assert.Empty(t, ref)
}

func TestHolder_IdentityReturnsCopy(t *testing.T) {
	holder, _ := newTestHolder(t)
	holder.SetIdentity(context.Background(), &entity.Identity{UserID: uuid.New(), AccessToken: "token"})

	copied := holder.Identity()
	copied.AccessToken = "tampered"

	assert.Equal(t, "token", holder.AccessToken())
}
