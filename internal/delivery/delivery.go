// Package delivery defines the outer surfaces that expose the storefront core.
package delivery

import "context"

// Delivery is a long-running entry point started by the application lifecycle.
type Delivery interface {
	Serve(ctx context.Context) error
}
