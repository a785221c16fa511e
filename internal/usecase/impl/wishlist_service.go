package impl

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/session"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// wishlistService implements the WishlistUsecase interface.
// generation increments on every identity change; remote answers captured
// under an older generation are dropped.
type wishlistService struct {
	repo   repository.WishlistRepository
	holder *session.Holder
	logger *slog.Logger
	now    func() time.Time

	mu         sync.RWMutex
	owner      uuid.UUID
	items      []*entity.WishlistItem
	generation uint64
}

// WishlistServiceParams holds dependencies for WishlistService, injected by Fx.
type WishlistServiceParams struct {
	fx.In

	Repo   repository.WishlistRepository
	Holder *session.Holder
	Logger *slog.Logger
}

// NewWishlistService is the constructor for wishlistService.
func NewWishlistService(params WishlistServiceParams) usecase.WishlistUsecase {
	return &wishlistService{
		repo:   params.Repo,
		holder: params.Holder,
		logger: params.Logger,
		now:    time.Now,
	}
}

func (srv *wishlistService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *wishlistService) IsLiked(productID string) bool {
	canonical := entity.CanonicalProductID(productID)
	if canonical == "" {
		return false
	}

	srv.mu.RLock()
	defer srv.mu.RUnlock()

	return srv.indexLocked(canonical) >= 0
}

func (srv *wishlistService) Add(ctx context.Context, input usecase.AddWishlistInput) error {
	identity := srv.holder.Identity()
	if identity == nil {
		return domainerrors.ErrAuthRequired
	}

	canonical := entity.CanonicalProductID(input.ProductID)
	if canonical == "" {
		return domainerrors.ErrValidationFailed.WithDetails("product id is required")
	}
	if srv.IsLiked(canonical) {
		return nil
	}

	generation := srv.currentGeneration()
	item := &entity.WishlistItem{
		ID:            uuid.New(),
		UserID:        identity.UserID,
		ProductID:     canonical,
		ProductHandle: strings.TrimSpace(input.ProductHandle),
		VariantID:     input.VariantID,
		CreatedAt:     srv.now().UTC(),
	}

	err := srv.repo.Create(ctx, item)
	switch {
	case errors.Is(err, repository.ErrDuplicateWishlistItem):
		srv.log(ctx).Debug("Wishlist item already stored", slog.String("product_id", canonical))
	case err != nil:
		return errors.Wrap(err, "failed to add wishlist item")
	}

	srv.mu.Lock()
	defer srv.mu.Unlock()

	if srv.generation != generation {
		return nil
	}
	if srv.indexLocked(canonical) < 0 {
		srv.items = append([]*entity.WishlistItem{item}, srv.items...)
	}

	return nil
}

func (srv *wishlistService) Remove(ctx context.Context, productID string) error {
	identity := srv.holder.Identity()
	if identity == nil {
		return domainerrors.ErrAuthRequired
	}

	canonical := entity.CanonicalProductID(productID)
	if canonical == "" {
		return domainerrors.ErrValidationFailed.WithDetails("product id is required")
	}

	generation := srv.currentGeneration()
	if err := srv.repo.DeleteByProduct(ctx, identity.UserID, canonical); err != nil {
		return errors.Wrap(err, "failed to remove wishlist item")
	}

	srv.mu.Lock()
	defer srv.mu.Unlock()

	if srv.generation != generation {
		return nil
	}
	kept := srv.items[:0:0]
	for _, item := range srv.items {
		if item.ProductID != canonical {
			kept = append(kept, item)
		}
	}
	srv.items = kept

	return nil
}

func (srv *wishlistService) Toggle(ctx context.Context, input usecase.AddWishlistInput) (bool, error) {
	if srv.IsLiked(input.ProductID) {
		if err := srv.Remove(ctx, input.ProductID); err != nil {
			return true, err
		}

		return false, nil
	}

	if err := srv.Add(ctx, input); err != nil {
		return false, err
	}

	return true, nil
}

func (srv *wishlistService) Items() []*entity.WishlistItem {
	srv.mu.RLock()
	defer srv.mu.RUnlock()

	out := make([]*entity.WishlistItem, len(srv.items))
	copy(out, srv.items)

	return out
}

func (srv *wishlistService) Count() int {
	srv.mu.RLock()
	defer srv.mu.RUnlock()

	return len(srv.items)
}

func (srv *wishlistService) Refresh(ctx context.Context) error {
	identity := srv.holder.Identity()
	if identity == nil {
		srv.reset(uuid.Nil)

		return nil
	}

	srv.mu.Lock()
	if srv.owner != identity.UserID {
		srv.generation++
		srv.owner = identity.UserID
		srv.items = nil
	}
	generation := srv.generation
	srv.mu.Unlock()

	return srv.load(ctx, identity.UserID, generation)
}

func (srv *wishlistService) OnIdentityChange(ctx context.Context, prev, next *entity.Identity) {
	if next == nil {
		srv.reset(uuid.Nil)

		return
	}
	if entity.SameUser(prev, next) {
		return
	}

	generation := srv.reset(next.UserID)
	if err := srv.load(ctx, next.UserID, generation); err != nil {
		srv.log(ctx).Warn("Failed to load wishlist",
			slog.String("user_id", next.UserID.String()),
			slog.Any("error", err),
		)
	}
}

func (srv *wishlistService) load(ctx context.Context, userID uuid.UUID, generation uint64) error {
	items, err := srv.repo.FindByUserID(ctx, userID)
	if err != nil {
		return errors.Wrap(err, "failed to load wishlist")
	}

	list := make([]*entity.WishlistItem, 0, len(items))
	seen := make(map[string]struct{}, len(items))
	for _, item := range items {
		item.ProductID = entity.CanonicalProductID(item.ProductID)
		if _, dup := seen[item.ProductID]; dup {
			continue
		}
		seen[item.ProductID] = struct{}{}
		list = append(list, item)
	}

	srv.mu.Lock()
	defer srv.mu.Unlock()

	if srv.generation != generation {
		srv.log(ctx).Debug("Discarded wishlist response for a previous identity", slog.String("user_id", userID.String()))

		return nil
	}
	srv.items = list

	return nil
}

// reset clears the set for a new owner and returns the new generation.
func (srv *wishlistService) reset(owner uuid.UUID) uint64 {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	srv.generation++
	srv.owner = owner
	srv.items = nil

	return srv.generation
}

func (srv *wishlistService) currentGeneration() uint64 {
	srv.mu.RLock()
	defer srv.mu.RUnlock()

	return srv.generation
}

func (srv *wishlistService) indexLocked(canonical string) int {
	for i, item := range srv.items {
		if item.ProductID == canonical {
			return i
		}
	}

	return -1
}
