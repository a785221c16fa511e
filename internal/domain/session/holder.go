// Package session holds the signed-in identity and the device's cart reference.
package session

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"

	"github.com/pkg/errors"
)

const (
	sessionKey     = "auth_session"
	cartPointerKey = "shopify_cart_id"
)

// Listener observes identity transitions. It runs synchronously on the
// goroutine that changed the identity, after the change is visible.
type Listener func(ctx context.Context, prev, next *entity.Identity)

// Holder owns the current identity (or none) and the Local Cart Reference.
// Both survive restarts through the local state repository.
type Holder struct {
	local  repository.LocalStateRepository
	logger *slog.Logger

	mu        sync.RWMutex
	identity  *entity.Identity
	listeners []Listener
}

// NewHolder creates an empty holder; identity starts as none.
func NewHolder(local repository.LocalStateRepository, logger *slog.Logger) *Holder {
	return &Holder{
		local:  local,
		logger: logger,
	}
}

// Subscribe registers a listener for identity transitions.
func (h *Holder) Subscribe(listener Listener) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.listeners = append(h.listeners, listener)
}

// Identity returns a copy of the current identity, or nil when anonymous.
func (h *Holder) Identity() *entity.Identity {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if h.identity == nil {
		return nil
	}

	identity := *h.identity

	return &identity
}

// AccessToken implements service.TokenSource.
func (h *Holder) AccessToken() string {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if h.identity == nil {
		return ""
	}

	return h.identity.AccessToken
}

// SetIdentity replaces the identity and persists the session. Listeners are
// notified only when the user changes; a refreshed token for the same user
// is stored silently.
func (h *Holder) SetIdentity(ctx context.Context, next *entity.Identity) {
	if next == nil {
		h.ClearIdentity(ctx)

		return
	}

	stored := *next

	h.mu.Lock()
	prev := h.identity
	h.identity = &stored
	listeners := h.snapshotListeners()
	h.mu.Unlock()

	if err := h.persistSession(ctx, &stored); err != nil {
		h.logger.Warn("Failed to persist session", slog.Any("error", err))
	}

	if !entity.SameUser(prev, &stored) {
		h.notify(ctx, listeners, prev, &stored)
	}
}

// ClearIdentity drops the identity and its persisted session. The Local
// Cart Reference is left untouched.
func (h *Holder) ClearIdentity(ctx context.Context) {
	h.mu.Lock()
	prev := h.identity
	h.identity = nil
	listeners := h.snapshotListeners()
	h.mu.Unlock()

	if err := h.local.Delete(ctx, sessionKey); err != nil && !errors.Is(err, repository.ErrLocalStateNotFound) {
		h.logger.Warn("Failed to remove persisted session", slog.Any("error", err))
	}

	if prev != nil {
		h.notify(ctx, listeners, prev, nil)
	}
}

// PersistedSession loads the session saved by a previous process.
func (h *Holder) PersistedSession(ctx context.Context) (*entity.PersistedSession, error) {
	raw, err := h.local.Get(ctx, sessionKey)
	if err != nil {
		return nil, err
	}

	var stored entity.PersistedSession
	if err := json.Unmarshal(raw, &stored); err != nil {
		return nil, errors.Wrap(err, "decode persisted session")
	}

	return &stored, nil
}

// CartReference returns the persisted cart identifier, or "" when none is stored.
func (h *Holder) CartReference(ctx context.Context) (string, error) {
	raw, err := h.local.Get(ctx, cartPointerKey)
	if errors.Is(err, repository.ErrLocalStateNotFound) {
		return "", nil
	}
	if err != nil {
		return "", errors.Wrap(err, "read cart reference")
	}

	return string(raw), nil
}

// SetCartReference overwrites the persisted cart identifier.
func (h *Holder) SetCartReference(ctx context.Context, cartID string) error {
	return errors.Wrap(h.local.Set(ctx, cartPointerKey, []byte(cartID)), "write cart reference")
}

// ClearCartReference removes the persisted cart identifier.
func (h *Holder) ClearCartReference(ctx context.Context) error {
	err := h.local.Delete(ctx, cartPointerKey)
	if errors.Is(err, repository.ErrLocalStateNotFound) {
		return nil
	}

	return errors.Wrap(err, "remove cart reference")
}

func (h *Holder) persistSession(ctx context.Context, identity *entity.Identity) error {
	raw, err := json.Marshal(identity.ToPersistedSession())
	if err != nil {
		return errors.Wrap(err, "encode session")
	}

	return errors.Wrap(h.local.Set(ctx, sessionKey, raw), "write session")
}

// snapshotListeners must be called with mu held.
func (h *Holder) snapshotListeners() []Listener {
	listeners := make([]Listener, len(h.listeners))
	copy(listeners, h.listeners)

	return listeners
}

func (h *Holder) notify(ctx context.Context, listeners []Listener, prev, next *entity.Identity) {
	for _, listener := range listeners {
		listener(ctx, prev, next)
	}
}
