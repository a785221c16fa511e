package postgres

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type wishlistRepository struct {
	db *gorm.DB
}

// NewWishlistRepository is the constructor for wishlistRepository.
func NewWishlistRepository(db *gorm.DB) repository.WishlistRepository {
	return &wishlistRepository{
		db: db,
	}
}

func (repo *wishlistRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.WishlistItem, error) {
	var itemModels []*model.WishlistItemModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&itemModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list wishlist items")
	}

	items := make([]*entity.WishlistItem, 0, len(itemModels))
	for _, itemM := range itemModels {
		items = append(items, toWishlistItemDomain(itemM))
	}

	return items, nil
}

func (repo *wishlistRepository) Create(ctx context.Context, item *entity.WishlistItem) error {
	if err := repo.db.WithContext(ctx).Create(fromWishlistItemDomain(item)).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateWishlistItem
		}

		return errors.Wrap(err, "failed to create wishlist item")
	}

	return nil
}

func (repo *wishlistRepository) DeleteByProduct(ctx context.Context, userID uuid.UUID, productID string) error {
	err := repo.db.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Delete(&model.WishlistItemModel{}).Error

	return errors.Wrap(err, "failed to delete wishlist items")
}

func toWishlistItemDomain(itemM *model.WishlistItemModel) *entity.WishlistItem {
	return &entity.WishlistItem{
		ID:            itemM.ID,
		UserID:        itemM.UserID,
		ProductID:     itemM.ProductID,
		ProductHandle: itemM.ProductHandle,
		VariantID:     itemM.VariantID,
		CreatedAt:     itemM.CreatedAt,
	}
}

func fromWishlistItemDomain(item *entity.WishlistItem) *model.WishlistItemModel {
	return &model.WishlistItemModel{
		ID:            item.ID,
		UserID:        item.UserID,
		ProductID:     item.ProductID,
		ProductHandle: item.ProductHandle,
		VariantID:     item.VariantID,
		CreatedAt:     item.CreatedAt,
	}
}
