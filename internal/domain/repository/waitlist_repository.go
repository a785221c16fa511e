package repository

import (
	"context"

	"storefront/internal/domain/entity"
)

// WaitlistRepository captures waitlist form submissions.
type WaitlistRepository interface {
	// Create stores a signup.
	Create(ctx context.Context, signup *entity.WaitlistSignup) error

	// CountByBoxType counts signups for one box type, or every signup when
	// boxType is empty.
	CountByBoxType(ctx context.Context, boxType entity.BoxType) (int64, error)
}
