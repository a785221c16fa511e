package postgres

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type waitlistRepository struct {
	db *gorm.DB
}

// NewWaitlistRepository is the constructor for waitlistRepository.
func NewWaitlistRepository(db *gorm.DB) repository.WaitlistRepository {
	return &waitlistRepository{
		db: db,
	}
}

func (repo *waitlistRepository) Create(ctx context.Context, signup *entity.WaitlistSignup) error {
	signupM := &model.WaitlistSignupModel{
		FirstName:      signup.FirstName,
		LastName:       signup.LastName,
		PhoneNumber:    signup.PhoneNumber,
		FormattedPhone: signup.FormattedPhone,
		CountryCode:    signup.CountryCode,
		BoxType:        string(signup.BoxType),
		CreatedAt:      signup.CreatedAt,
	}

	return errors.Wrap(repo.db.WithContext(ctx).Create(signupM).Error, "failed to create waitlist signup")
}

func (repo *waitlistRepository) CountByBoxType(ctx context.Context, boxType entity.BoxType) (int64, error) {
	var count int64

	query := repo.db.WithContext(ctx).Model(&model.WaitlistSignupModel{})
	if boxType != "" {
		query = query.Where("box_type = ?", string(boxType))
	}

	if err := query.Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count waitlist signups")
	}

	return count, nil
}
