package usecase

import "context"

// CheckoutUsecase hands the current cart over to the hosted checkout.
type CheckoutUsecase interface {
	// CheckoutURL returns the cart's checkout link on the store's own domain when it can be rewritten.
	CheckoutURL(ctx context.Context) (string, error)

	// CheckoutQRCode renders the checkout link as a PNG for phone handoff.
	CheckoutQRCode(ctx context.Context) ([]byte, error)
}
