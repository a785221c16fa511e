package repository

import (
	"context"

	"github.com/pkg/errors"
)

// ErrLocalStateNotFound is returned when a local key has never been written or was removed.
var ErrLocalStateNotFound = errors.New("local state key not found")

// LocalStateRepository is the device-local key/value storage that survives restarts.
type LocalStateRepository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
