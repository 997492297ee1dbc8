// Package storage implements the FileStorage contract on top of
// gocloud.dev blob buckets, so the same code serves GCS in production and
// an in-memory bucket in tests.
package storage

import (
	"context"
	"strings"

	"yatai/config"
	"yatai/internal/domain/service"

	"github.com/pkg/errors"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // register file:// bucket driver
	_ "gocloud.dev/blob/gcsblob"  // register gs:// bucket driver
	_ "gocloud.dev/blob/memblob"  // register mem:// bucket driver
	"gocloud.dev/gcerrors"
)

// BlobStorage stores documents and event images in a blob bucket.
type BlobStorage struct {
	bucket        *blob.Bucket
	publicBaseURL string
}

// NewBlobStorage opens the configured bucket URL. The caller owns the
// returned storage and must Close it on shutdown.
func NewBlobStorage(ctx context.Context, cfg *config.Config) (*BlobStorage, error) {
	if cfg.Storage == nil || cfg.Storage.BucketURL == "" {
		return nil, errors.New("storage bucket URL must be configured")
	}

	bucket, err := blob.OpenBucket(ctx, cfg.Storage.BucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %s", cfg.Storage.BucketURL)
	}

	return &BlobStorage{
		bucket:        bucket,
		publicBaseURL: strings.TrimSuffix(cfg.Storage.PublicBaseURL, "/"),
	}, nil
}

var _ service.FileStorage = (*BlobStorage)(nil)

// Put stores a blob at the given path with its content type.
func (s *BlobStorage) Put(ctx context.Context, path string, data []byte, contentType string) error {
	opts := &blob.WriterOptions{ContentType: contentType}
	if err := s.bucket.WriteAll(ctx, path, data, opts); err != nil {
		return errors.Wrapf(err, "failed to write blob %s", path)
	}

	return nil
}

// Get reads the blob stored at the given path.
func (s *BlobStorage) Get(ctx context.Context, path string) ([]byte, error) {
	data, err := s.bucket.ReadAll(ctx, path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read blob %s", path)
	}

	return data, nil
}

// Exists reports whether a blob is stored at the given path.
func (s *BlobStorage) Exists(ctx context.Context, path string) (bool, error) {
	exists, err := s.bucket.Exists(ctx, path)
	if err != nil {
		return false, errors.Wrapf(err, "failed to stat blob %s", path)
	}

	return exists, nil
}

// Delete removes the blob stored at the given path. Deleting a blob that is
// already gone is not an error.
func (s *BlobStorage) Delete(ctx context.Context, path string) error {
	err := s.bucket.Delete(ctx, path)
	if err != nil && gcerrors.Code(err) != gcerrors.NotFound {
		return errors.Wrapf(err, "failed to delete blob %s", path)
	}

	return nil
}

// PublicURL returns the externally reachable URL for a stored blob.
func (s *BlobStorage) PublicURL(_ context.Context, path string) (string, error) {
	if s.publicBaseURL == "" {
		return "", errors.New("public base URL is not configured")
	}

	return s.publicBaseURL + "/" + strings.TrimPrefix(path, "/"), nil
}

// Close releases the underlying bucket.
func (s *BlobStorage) Close() error {
	return errors.Wrap(s.bucket.Close(), "failed to close bucket")
}
