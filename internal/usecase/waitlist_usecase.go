package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// JoinWaitlistInput is a waitlist form submission.
type JoinWaitlistInput struct {
	FirstName   string
	LastName    string
	PhoneNumber string
	CountryCode string
	BoxType     entity.BoxType
}

// WaitlistUsecase captures interest in the subscription boxes.
type WaitlistUsecase interface {
	Join(ctx context.Context, input JoinWaitlistInput) (*entity.WaitlistSignup, error)
	// Count counts signups for boxType. An empty boxType counts all of them.
	Count(ctx context.Context, boxType entity.BoxType) (int64, error)
}
