// Package localstore keeps device-local state in a gocloud.dev blob bucket.
package localstore

import (
	"context"
	"log/slog"

	"storefront/config"
	"storefront/internal/domain/repository"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/memblob"
	"gocloud.dev/gcerrors"
)

const contentType = "application/octet-stream"

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

type blobStore struct {
	bucket *blob.Bucket
}

// New opens the bucket named by localState.bucketUrl and closes it on stop.
func New(ctx context.Context, params Params) (repository.LocalStateRepository, error) {
	bucketURL := params.Config.LocalState.BucketURL

	bucket, err := blob.OpenBucket(ctx, bucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "open local state bucket %s", bucketURL)
	}

	params.Logger.Info("Local state bucket opened", slog.String("url", bucketURL))

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return errors.WithStack(bucket.Close())
		},
	})

	return NewWithBucket(bucket), nil
}

// NewWithBucket wraps an already opened bucket.
func NewWithBucket(bucket *blob.Bucket) repository.LocalStateRepository {
	return &blobStore{bucket: bucket}
}

func (s *blobStore) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := s.bucket.ReadAll(ctx, key)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, repository.ErrLocalStateNotFound
		}

		return nil, errors.Wrapf(err, "read local key %s", key)
	}

	return data, nil
}

func (s *blobStore) Set(ctx context.Context, key string, value []byte) error {
	err := s.bucket.WriteAll(ctx, key, value, &blob.WriterOptions{ContentType: contentType})

	return errors.Wrapf(err, "write local key %s", key)
}

func (s *blobStore) Delete(ctx context.Context, key string) error {
	if err := s.bucket.Delete(ctx, key); err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return repository.ErrLocalStateNotFound
		}

		return errors.Wrapf(err, "delete local key %s", key)
	}

	return nil
}
