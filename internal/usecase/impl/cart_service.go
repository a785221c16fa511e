package impl

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/domain/session"
	"storefront/internal/infra/metrics"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// cartService implements the CartUsecase interface.
//
// Every mutation takes the next operation number before its remote call. A
// response is installed only when its number is above the highest number
// installed so far and it names the cart currently held; switching carts
// during reconciliation retires every number issued before the switch.
type cartService struct {
	commerce service.CommerceService
	pointers repository.UserCartRepository
	holder   *session.Holder
	metrics  *metrics.Metrics
	logger   *slog.Logger

	initMu      sync.Mutex
	reconcileMu sync.Mutex

	epoch string

	mu       sync.Mutex
	state    usecase.CartState
	cart     *entity.Cart
	revision uint64
	seq      uint64
	applied  uint64
}

// CartServiceParams holds dependencies for CartService, injected by Fx.
type CartServiceParams struct {
	fx.In

	Commerce service.CommerceService
	Pointers repository.UserCartRepository
	Holder   *session.Holder
	Metrics  *metrics.Metrics `optional:"true"`
	Logger   *slog.Logger
}

// NewCartService is the constructor for cartService.
func NewCartService(params CartServiceParams) usecase.CartUsecase {
	return &cartService{
		commerce: params.Commerce,
		pointers: params.Pointers,
		holder:   params.Holder,
		metrics:  params.Metrics,
		logger:   params.Logger,
		epoch:    uuid.NewString(),
		state:    usecase.CartUninitialized,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *cartService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *cartService) Init(ctx context.Context) error {
	srv.initMu.Lock()
	defer srv.initMu.Unlock()

	if srv.currentState() != usecase.CartUninitialized {
		return nil
	}

	cart, err := srv.loadOrCreate(ctx)
	if err != nil {
		return err
	}

	srv.mu.Lock()
	srv.replaceLocked(cart)
	srv.applied = srv.seq
	srv.state = usecase.CartReady
	srv.mu.Unlock()

	srv.log(ctx).Info("Cart ready", slog.String("cart_id", cart.ID), slog.Int("quantity", cart.TotalQuantity()))

	// An identity restored before the cart existed is reconciled here.
	if identity := srv.holder.Identity(); identity != nil {
		srv.reconcile(ctx, identity)
	}

	return nil
}

func (srv *cartService) loadOrCreate(ctx context.Context) (*entity.Cart, error) {
	ref, err := srv.holder.CartReference(ctx)
	if err != nil {
		srv.log(ctx).Warn("Cart reference unreadable, starting a new cart", slog.Any("error", err))
		ref = ""
	}

	if ref != "" {
		cart, err := srv.commerce.Cart(ctx, ref)
		switch {
		case err == nil:
			return cart, nil
		case isCartGone(err):
			srv.log(ctx).Info("Stored cart is no longer available", slog.String("cart_id", ref), slog.Any("error", err))
			if err := srv.holder.ClearCartReference(ctx); err != nil {
				srv.log(ctx).Warn("Failed to clear cart reference", slog.Any("error", err))
			}
		default:
			return nil, errors.Wrap(err, "failed to load cart")
		}
	}

	cart, err := srv.commerce.CreateCart(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create cart")
	}
	srv.storeReference(ctx, cart.ID)

	return cart, nil
}

func (srv *cartService) Snapshot() usecase.CartSnapshot {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	return srv.snapshotLocked()
}

func (srv *cartService) Count() int {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	return srv.cart.TotalQuantity()
}

func (srv *cartService) AddLine(ctx context.Context, merchandiseID string, quantity int) (usecase.CartSnapshot, error) {
	merchandiseID = strings.TrimSpace(merchandiseID)
	if merchandiseID == "" {
		return srv.Snapshot(), domainerrors.ErrValidationFailed.WithDetails("merchandise id is required")
	}
	if quantity < 1 {
		return srv.Snapshot(), domainerrors.ErrValidationFailed.WithDetails("quantity must be at least 1")
	}

	return srv.mutate(ctx, "addLine", func(ctx context.Context, cartID string) (*entity.Cart, error) {
		return srv.commerce.AddCartLines(ctx, cartID, []entity.CartLineInput{{MerchandiseID: merchandiseID, Quantity: quantity}})
	})
}

func (srv *cartService) ChangeLineQuantity(ctx context.Context, lineID string, quantity int) (usecase.CartSnapshot, error) {
	lineID = strings.TrimSpace(lineID)
	if lineID == "" {
		return srv.Snapshot(), domainerrors.ErrValidationFailed.WithDetails("line id is required")
	}
	if quantity < 1 {
		return srv.RemoveLines(ctx, []string{lineID})
	}

	return srv.mutate(ctx, "changeLineQuantity", func(ctx context.Context, cartID string) (*entity.Cart, error) {
		return srv.commerce.UpdateCartLines(ctx, cartID, []entity.CartLineUpdate{{LineID: lineID, Quantity: quantity}})
	})
}

func (srv *cartService) RemoveLines(ctx context.Context, lineIDs []string) (usecase.CartSnapshot, error) {
	ids := make([]string, 0, len(lineIDs))
	for _, id := range lineIDs {
		if id = strings.TrimSpace(id); id != "" {
			ids = append(ids, id)
		}
	}
	if len(ids) == 0 {
		return srv.Snapshot(), domainerrors.ErrValidationFailed.WithDetails("at least one line id is required")
	}

	return srv.mutate(ctx, "removeLines", func(ctx context.Context, cartID string) (*entity.Cart, error) {
		return srv.commerce.RemoveCartLines(ctx, cartID, ids)
	})
}

func (srv *cartService) OnIdentityChange(ctx context.Context, prev, next *entity.Identity) {
	// Signing out keeps the device cart as it is.
	if next == nil || entity.SameUser(prev, next) {
		return
	}
	if srv.currentState() == usecase.CartUninitialized {
		return
	}

	srv.reconcile(ctx, next)
}

// mutate issues one remote cart call and installs its answer if it is still current.
func (srv *cartService) mutate(ctx context.Context, operation string, call func(ctx context.Context, cartID string) (*entity.Cart, error)) (usecase.CartSnapshot, error) {
	if srv.currentState() == usecase.CartUninitialized {
		if err := srv.Init(ctx); err != nil {
			return srv.Snapshot(), domainerrors.ErrCartUnavailable.WithDetails(err.Error())
		}
	}

	srv.mu.Lock()
	srv.seq++
	op := srv.seq
	cartID := srv.cart.ID
	srv.mu.Unlock()

	result, err := call(ctx, cartID)
	if err != nil {
		srv.log(ctx).Warn("Cart mutation failed", slog.String("operation", operation), slog.Any("error", err))

		return srv.Snapshot(), err
	}

	srv.mu.Lock()
	accepted := result != nil && op > srv.applied && result.ID == srv.cart.ID
	if accepted {
		srv.applied = op
		srv.replaceLocked(result)
	}
	snapshot := srv.snapshotLocked()
	srv.mu.Unlock()

	if !accepted {
		srv.metrics.IncStaleCartResponse()
		srv.log(ctx).Debug("Discarded stale cart response",
			slog.String("operation", operation),
			slog.Uint64("op", op),
			slog.String("cart_id", cartID),
		)

		return snapshot, nil
	}

	srv.syncPointer(ctx, result.ID)

	return snapshot, nil
}

// syncPointer records cartID as the signed-in user's cart unless a
// reconciliation has switched carts since the mutation was accepted.
func (srv *cartService) syncPointer(ctx context.Context, cartID string) {
	srv.reconcileMu.Lock()
	defer srv.reconcileMu.Unlock()

	identity := srv.holder.Identity()
	if identity == nil {
		return
	}

	srv.mu.Lock()
	current := srv.cart.ID
	srv.mu.Unlock()

	if current != cartID {
		srv.log(ctx).Debug("Skipped pointer update for a replaced cart",
			slog.String("cart_id", cartID),
			slog.String("current_cart_id", current),
		)

		return
	}

	srv.upsertPointer(ctx, identity.UserID, cartID)
}

// reconcile aligns the device cart with the user's pointer row.
func (srv *cartService) reconcile(ctx context.Context, identity *entity.Identity) {
	srv.reconcileMu.Lock()
	defer srv.reconcileMu.Unlock()

	srv.mu.Lock()
	if srv.state != usecase.CartReady {
		srv.mu.Unlock()

		return
	}
	srv.state = usecase.CartReconciling
	current := srv.cart
	srv.mu.Unlock()

	defer func() {
		srv.mu.Lock()
		srv.state = usecase.CartReady
		srv.mu.Unlock()
	}()

	logger := srv.log(ctx).With(slog.String("user_id", identity.UserID.String()))

	pointer, err := srv.pointers.FindByUserID(ctx, identity.UserID)
	switch {
	case errors.Is(err, repository.ErrUserCartNotFound):
		srv.upsertPointer(ctx, identity.UserID, current.ID)

		return
	case err != nil:
		logger.Warn("Cart pointer lookup failed, keeping device cart", slog.Any("error", err))

		return
	}

	if pointer.CartID == current.ID {
		return
	}

	remote, err := srv.commerce.Cart(ctx, pointer.CartID)
	if err != nil {
		logger.Info("Account cart unavailable, adopting device cart",
			slog.String("pointer_cart_id", pointer.CartID),
			slog.Any("error", err),
		)
		srv.upsertPointer(ctx, identity.UserID, current.ID)

		return
	}

	if !entity.SameUser(srv.holder.Identity(), identity) {
		logger.Info("Identity changed during reconciliation, keeping device cart")

		return
	}

	srv.mu.Lock()
	srv.replaceLocked(remote)
	srv.applied = srv.seq
	srv.mu.Unlock()

	srv.storeReference(ctx, remote.ID)
	logger.Info("Switched to account cart", slog.String("cart_id", remote.ID), slog.String("previous_cart_id", current.ID))
}

func (srv *cartService) upsertPointer(ctx context.Context, userID uuid.UUID, cartID string) {
	if err := srv.pointers.Upsert(ctx, userID, cartID); err != nil {
		srv.log(ctx).Warn("Failed to update cart pointer",
			slog.String("user_id", userID.String()),
			slog.String("cart_id", cartID),
			slog.Any("error", err),
		)
	}
}

func (srv *cartService) storeReference(ctx context.Context, cartID string) {
	if err := srv.holder.SetCartReference(ctx, cartID); err != nil {
		srv.log(ctx).Warn("Failed to persist cart reference", slog.String("cart_id", cartID), slog.Any("error", err))
	}
}

func (srv *cartService) currentState() usecase.CartState {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	return srv.state
}

// replaceLocked must be called with mu held.
func (srv *cartService) replaceLocked(cart *entity.Cart) {
	srv.cart = cart
	srv.revision++
}

func (srv *cartService) snapshotLocked() usecase.CartSnapshot {
	return usecase.CartSnapshot{
		Cart:     srv.cart,
		Epoch:    srv.epoch,
		Revision: srv.revision,
		State:    srv.state,
	}
}

// isCartGone reports errors meaning the referenced cart will never load again.
func isCartGone(err error) bool {
	return errors.Is(err, domainerrors.ErrNotFound) || errors.Is(err, domainerrors.ErrRemoteValidation)
}
