package usecase

import (
	"context"
	"strconv"

	"storefront/internal/domain/entity"
)

// CartState is the lifecycle state of the cart coordinator.
type CartState int

const (
	CartUninitialized CartState = iota
	CartReady
	CartReconciling
)

func (s CartState) String() string {
	switch s {
	case CartReady:
		return "ready"
	case CartReconciling:
		return "reconciling"
	default:
		return "uninitialized"
	}
}

// CartSnapshot is the authoritative in-memory cart at one point in time.
// Revision increases every time the cart value is replaced and restarts with
// the process; Epoch names the process that issued it.
type CartSnapshot struct {
	Cart     *entity.Cart
	Epoch    string
	Revision uint64
	State    CartState
}

// Version identifies this cart value, unique across process restarts.
func (s CartSnapshot) Version() string {
	return s.Epoch + "-" + strconv.FormatUint(s.Revision, 10)
}

// CartUsecase owns the device's cart and keeps it in sync with the signed-in user's pointer.
type CartUsecase interface {
	// Init loads the referenced cart or creates one. It may be retried after a network failure.
	Init(ctx context.Context) error

	// Snapshot returns the current cart without a remote call.
	Snapshot() CartSnapshot

	// AddLine adds merchandise with one remote call.
	AddLine(ctx context.Context, merchandiseID string, quantity int) (CartSnapshot, error)

	// ChangeLineQuantity sets a line quantity; quantities below 1 remove the line.
	ChangeLineQuantity(ctx context.Context, lineID string, quantity int) (CartSnapshot, error)

	// RemoveLines removes lines with one remote call.
	RemoveLines(ctx context.Context, lineIDs []string) (CartSnapshot, error)

	// Count is the total quantity across lines.
	Count() int

	// OnIdentityChange reconciles the cart with the pointer of a newly signed-in user.
	OnIdentityChange(ctx context.Context, prev, next *entity.Identity)
}
