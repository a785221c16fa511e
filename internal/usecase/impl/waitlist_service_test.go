package impl

import (
	"context"
	"testing"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	mockRepo "storefront/internal/mocks/repository"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type waitlistServiceFixtures struct {
	service usecase.WaitlistUsecase
	repo    *mockRepo.MockWaitlistRepository
}

func createTestWaitlistService(t *testing.T) waitlistServiceFixtures {
	repo := mockRepo.NewMockWaitlistRepository(t)
	service := NewWaitlistService(WaitlistServiceParams{Repo: repo, Logger: newDiscardLogger()})
	service.(*waitlistService).now = func() time.Time { return time.Date(2026, 2, 14, 8, 0, 0, 0, time.UTC) }

	return waitlistServiceFixtures{service: service, repo: repo}
}

func TestWaitlistService_Join(t *testing.T) {
	fx := createTestWaitlistService(t)
	ctx := context.Background()

	fx.repo.EXPECT().Create(ctx, mock.MatchedBy(func(s *entity.WaitlistSignup) bool {
		return s.PhoneNumber == "5551234567" &&
			s.FormattedPhone == "+1 5551234567" &&
			s.CountryCode == "+1" &&
			s.BoxType == entity.BoxTypeGlow &&
			s.FirstName == "Mina"
	})).Return(nil)

	signup, err := fx.service.Join(ctx, usecase.JoinWaitlistInput{
		FirstName:   " Mina ",
		PhoneNumber: "(555) 123-4567",
		BoxType:     "Glow",
	})
	require.NoError(t, err)
	assert.Equal(t, "+1 5551234567", signup.FormattedPhone)
	assert.Equal(t, time.Date(2026, 2, 14, 8, 0, 0, 0, time.UTC), signup.CreatedAt)
}

func TestWaitlistService_Join_CountryCodeAndDefaultBox(t *testing.T) {
	fx := createTestWaitlistService(t)
	ctx := context.Background()

	fx.repo.EXPECT().Create(ctx, mock.Anything).Return(nil)

	signup, err := fx.service.Join(ctx, usecase.JoinWaitlistInput{PhoneNumber: "010-1234-5678", CountryCode: "82"})
	require.NoError(t, err)
	assert.Equal(t, "+82 01012345678", signup.FormattedPhone)
	assert.Equal(t, entity.BoxTypeGeneral, signup.BoxType)
}

func TestWaitlistService_Join_Validation(t *testing.T) {
	tests := []struct {
		name  string
		input usecase.JoinWaitlistInput
	}{
		{name: "short phone", input: usecase.JoinWaitlistInput{PhoneNumber: "555-1234"}},
		{name: "unknown box", input: usecase.JoinWaitlistInput{PhoneNumber: "5551234567", BoxType: "deluxe"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestWaitlistService(t)

			_, err := fx.service.Join(context.Background(), tt.input)
			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
		})
	}
}

func TestWaitlistService_Join_StoreFailure(t *testing.T) {
	fx := createTestWaitlistService(t)
	ctx := context.Background()

	fx.repo.EXPECT().Create(ctx, mock.Anything).Return(errors.New("insert failed"))

	_, err := fx.service.Join(ctx, usecase.JoinWaitlistInput{PhoneNumber: "5551234567"})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to join waitlist")
}

func TestWaitlistService_Count(t *testing.T) {
	fx := createTestWaitlistService(t)
	ctx := context.Background()

	fx.repo.EXPECT().CountByBoxType(ctx, entity.BoxTypeExplore).Return(42, nil)

	count, err := fx.service.Count(ctx, entity.BoxTypeExplore)
	require.NoError(t, err)
	assert.Equal(t, int64(42), count)

	_, err = fx.service.Count(ctx, "deluxe")
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestWaitlistService_Count_AllBoxTypes(t *testing.T) {
	fx := createTestWaitlistService(t)
	ctx := context.Background()

	fx.repo.EXPECT().CountByBoxType(ctx, entity.BoxType("")).Return(97, nil)

	count, err := fx.service.Count(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, int64(97), count)
}
