package postgres

import (
	"context"
	"time"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// userCartRepository implements the repository.UserCartRepository interface.
type userCartRepository struct {
	db *gorm.DB
}

// NewUserCartRepository is the constructor for userCartRepository.
func NewUserCartRepository(db *gorm.DB) repository.UserCartRepository {
	return &userCartRepository{
		db: db,
	}
}

// FindByUserID retrieves the pointer row of a user.
func (repo *userCartRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.UserCart, error) {
	var cartM model.UserCartModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Take(&cartM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserCartNotFound
		}

		return nil, errors.Wrap(err, "failed to find user cart")
	}

	return toUserCartDomain(&cartM), nil
}

// Upsert points the user's row at cartID, creating the row on first use.
func (repo *userCartRepository) Upsert(ctx context.Context, userID uuid.UUID, cartID string) error {
	now := time.Now().UTC()
	cartM := &model.UserCartModel{
		ID:        uuid.New(),
		UserID:    userID,
		CartID:    cartID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"shopify_cart_id", "updated_at"}),
		}).
		Create(cartM).Error

	return errors.Wrap(err, "failed to upsert user cart")
}

func toUserCartDomain(cartM *model.UserCartModel) *entity.UserCart {
	return &entity.UserCart{
		ID:        cartM.ID,
		UserID:    cartM.UserID,
		CartID:    cartM.CartID,
		CreatedAt: cartM.CreatedAt,
		UpdatedAt: cartM.UpdatedAt,
	}
}
