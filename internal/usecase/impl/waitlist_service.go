package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultCountryCode = "+1"
	minPhoneDigits     = 10
)

type waitlistService struct {
	repo   repository.WaitlistRepository
	logger *slog.Logger
	now    func() time.Time
}

// WaitlistServiceParams holds dependencies for WaitlistService, injected by Fx.
type WaitlistServiceParams struct {
	fx.In

	Repo   repository.WaitlistRepository
	Logger *slog.Logger
}

// NewWaitlistService is the constructor for waitlistService.
func NewWaitlistService(params WaitlistServiceParams) usecase.WaitlistUsecase {
	return &waitlistService{
		repo:   params.Repo,
		logger: params.Logger,
		now:    time.Now,
	}
}

func (srv *waitlistService) Join(ctx context.Context, input usecase.JoinWaitlistInput) (*entity.WaitlistSignup, error) {
	boxType := entity.BoxType(strings.ToLower(strings.TrimSpace(string(input.BoxType))))
	if boxType == "" {
		boxType = entity.BoxTypeGeneral
	}
	if !boxType.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown box type: " + string(input.BoxType))
	}

	digits := digitsOnly(input.PhoneNumber)
	if len(digits) < minPhoneDigits {
		return nil, domainerrors.ErrValidationFailed.WithDetails("phone number must have at least 10 digits")
	}

	country := strings.TrimSpace(input.CountryCode)
	if country == "" {
		country = defaultCountryCode
	}
	if !strings.HasPrefix(country, "+") {
		country = "+" + country
	}

	signup := &entity.WaitlistSignup{
		FirstName:      strings.TrimSpace(input.FirstName),
		LastName:       strings.TrimSpace(input.LastName),
		PhoneNumber:    digits,
		FormattedPhone: country + " " + digits,
		CountryCode:    country,
		BoxType:        boxType,
		CreatedAt:      srv.now().UTC(),
	}

	if err := srv.repo.Create(ctx, signup); err != nil {
		return nil, errors.Wrap(err, "failed to join waitlist")
	}
	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Info("Waitlist signup captured", slog.String("box_type", string(boxType)))

	return signup, nil
}

func (srv *waitlistService) Count(ctx context.Context, boxType entity.BoxType) (int64, error) {
	if boxType != "" && !boxType.IsValid() {
		return 0, domainerrors.ErrValidationFailed.WithDetails("unknown box type: " + string(boxType))
	}

	count, err := srv.repo.CountByBoxType(ctx, boxType)
	if err != nil {
		return 0, errors.Wrap(err, "failed to count waitlist signups")
	}

	return count, nil
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}

	return b.String()
}
