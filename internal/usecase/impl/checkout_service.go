package impl

import (
	"context"
	"regexp"
	"strings"

	"storefront/config"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const shopAppHost = "shop.app"

var checkoutTokenPattern = regexp.MustCompile(`checkout/([^?]+)`)

type checkoutService struct {
	cart        usecase.CartUsecase
	qrcode      service.QRCodeService
	storeDomain string
}

// CheckoutServiceParams holds dependencies for CheckoutService, injected by Fx.
type CheckoutServiceParams struct {
	fx.In

	Cart   usecase.CartUsecase
	QRCode service.QRCodeService
	Config *config.Config
}

// NewCheckoutService is the constructor for checkoutService.
func NewCheckoutService(params CheckoutServiceParams) usecase.CheckoutUsecase {
	var domain string
	if params.Config != nil && params.Config.Commerce != nil {
		domain = params.Config.Commerce.StoreDomain
	}

	return &checkoutService{
		cart:        params.Cart,
		qrcode:      params.QRCode,
		storeDomain: domain,
	}
}

func (srv *checkoutService) CheckoutURL(_ context.Context) (string, error) {
	snapshot := srv.cart.Snapshot()
	if snapshot.Cart == nil {
		return "", domainerrors.ErrCartUnavailable
	}
	if snapshot.Cart.IsEmpty() || snapshot.Cart.CheckoutURL == "" {
		return "", domainerrors.ErrCartEmpty
	}

	return rewriteCheckoutURL(snapshot.Cart.CheckoutURL, srv.storeDomain), nil
}

func (srv *checkoutService) CheckoutQRCode(ctx context.Context) ([]byte, error) {
	checkoutURL, err := srv.CheckoutURL(ctx)
	if err != nil {
		return nil, err
	}

	png, err := srv.qrcode.GenerateURLQR(checkoutURL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to render checkout QR code")
	}

	return png, nil
}

// rewriteCheckoutURL points hosted shop.app checkout links at the store's own domain.
// Anything it cannot rewrite is returned unchanged.
func rewriteCheckoutURL(checkoutURL, storeDomain string) string {
	if storeDomain == "" || !strings.Contains(checkoutURL, shopAppHost) {
		return checkoutURL
	}

	match := checkoutTokenPattern.FindStringSubmatch(checkoutURL)
	if len(match) < 2 || match[1] == "" {
		return checkoutURL
	}

	return "https://" + storeDomain + "/checkouts/" + match[1]
}
