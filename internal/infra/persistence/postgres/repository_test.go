package postgres

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"storefront/config"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(gormpostgres.New(gormpostgres.Config{Conn: sqlDB}), &gorm.Config{})
	require.NoError(t, err)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return configureSession(db, logger, &config.Config{}), mock
}

func TestUserCartRepository_FindByUserID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserCartRepository(db)

	userID := uuid.New()
	now := time.Now().UTC()
	mock.ExpectQuery(`SELECT \* FROM "user_carts" WHERE user_id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "shopify_cart_id", "created_at", "updated_at"}).
			AddRow(uuid.NewString(), userID.String(), "gid://shopify/Cart/C", now, now))

	cart, err := repo.FindByUserID(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, userID, cart.UserID)
	assert.Equal(t, "gid://shopify/Cart/C", cart.CartID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserCartRepository_FindByUserID_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserCartRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "user_carts" WHERE user_id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "shopify_cart_id", "created_at", "updated_at"}))

	cart, err := repo.FindByUserID(context.Background(), uuid.New())
	assert.Nil(t, cart)
	assert.ErrorIs(t, err, repository.ErrUserCartNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserCartRepository_FindByUserID_QueryError(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserCartRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "user_carts"`).WillReturnError(errors.New("connection reset"))

	_, err := repo.FindByUserID(context.Background(), uuid.New())
	require.Error(t, err)
	assert.NotErrorIs(t, err, repository.ErrUserCartNotFound)
	assert.Contains(t, err.Error(), "failed to find user cart")
}

func TestUserCartRepository_Upsert(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserCartRepository(db)

	mock.ExpectExec(`INSERT INTO "user_carts" .* ON CONFLICT \("user_id"\) DO UPDATE SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Upsert(context.Background(), uuid.New(), "gid://shopify/Cart/B")
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWishlistRepository_FindByUserID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewWishlistRepository(db)

	userID := uuid.New()
	variantID := "gid://shopify/ProductVariant/9"
	mock.ExpectQuery(`SELECT \* FROM "wishlist_items" WHERE user_id = \$1 ORDER BY created_at DESC`).
		WithArgs(userID.String()).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "product_id", "product_handle", "variant_id", "created_at"}).
			AddRow(uuid.NewString(), userID.String(), "456", "rice-toner", variantID, time.Now()).
			AddRow(uuid.NewString(), userID.String(), "123", "snail-essence", nil, time.Now().Add(-time.Hour)))

	items, err := repo.FindByUserID(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "456", items[0].ProductID)
	require.NotNil(t, items[0].VariantID)
	assert.Equal(t, variantID, *items[0].VariantID)
	assert.Nil(t, items[1].VariantID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWishlistRepository_FindByUserID_Empty(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewWishlistRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "wishlist_items"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "product_id", "product_handle", "variant_id", "created_at"}))

	items, err := repo.FindByUserID(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Empty(t, items)
	assert.NotNil(t, items)
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
		db, mock := newMockDB(t)
		mock.ExpectExec(`INSERT INTO "wishlist_items"`).WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, NewWishlistRepository(db).Create(context.Background(), item))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("duplicate", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectExec(`INSERT INTO "wishlist_items"`).
			WillReturnError(errors.New(`ERROR: duplicate key value violates unique constraint "wishlist_items_user_product_key" (SQLSTATE 23505)`))

		err := NewWishlistRepository(db).Create(context.Background(), item)
		assert.ErrorIs(t, err, repository.ErrDuplicateWishlistItem)
	})

	t.Run("other failure", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectExec(`INSERT INTO "wishlist_items"`).WillReturnError(errors.New("connection reset"))

		err := NewWishlistRepository(db).Create(context.Background(), item)
		require.Error(t, err)
		assert.NotErrorIs(t, err, repository.ErrDuplicateWishlistItem)
	})
}

func TestWishlistRepository_DeleteByProduct(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewWishlistRepository(db)

	userID := uuid.New()
	mock.ExpectExec(`DELETE FROM "wishlist_items" WHERE user_id = \$1 AND product_id = \$2`).
		WithArgs(userID.String(), "123").
		WillReturnResult(sqlmock.NewResult(0, 2))

	assert.NoError(t, repo.DeleteByProduct(context.Background(), userID, "123"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWaitlistRepository(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewWaitlistRepository(db)

	mock.ExpectExec(`INSERT INTO "waitlist_signups"`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "waitlist_signups" WHERE box_type = \$1`).
		WithArgs("glow").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(5))

	err := repo.Create(context.Background(), &entity.WaitlistSignup{
		FirstName:      "Jae",
		LastName:       "Kim",
		PhoneNumber:    "5551234567",
		FormattedPhone: "+1 5551234567",
		CountryCode:    "+1",
		BoxType:        entity.BoxTypeGlow,
		CreatedAt:      time.Now().UTC(),
	})
	require.NoError(t, err)

	count, err := repo.CountByBoxType(context.Background(), entity.BoxTypeGlow)
	require.NoError(t, err)
	assert.Equal(t, int64(5), count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWaitlistRepository_CountAll(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewWaitlistRepository(db)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "waitlist_signups"$`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(31))

	count, err := repo.CountByBoxType(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, int64(31), count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIsUniqueConstraintViolation(t *testing.T) {
	assert.True(t, isUniqueConstraintViolation(gorm.ErrDuplicatedKey))
	assert.True(t, isUniqueConstraintViolation(errors.Wrap(gorm.ErrDuplicatedKey, "create")))
	assert.True(t, isUniqueConstraintViolation(errors.New("SQLSTATE 23505")))
	assert.False(t, isUniqueConstraintViolation(errors.New("connection reset")))
}
