package service

import "context"

// FileStorage is the blob store the platform keeps uploaded documents and
// event images in. Paths are bucket-relative and collision-free by
// construction (the caller appends a random suffix).
type FileStorage interface {
	// Put stores a blob at the given path with its content type.
	Put(ctx context.Context, path string, data []byte, contentType string) error

	// Get reads the blob stored at the given path.
	Get(ctx context.Context, path string) ([]byte, error)

	// Exists reports whether a blob is stored at the given path.
	Exists(ctx context.Context, path string) (bool, error)

	// Delete removes the blob stored at the given path.
	Delete(ctx context.Context, path string) error

	// PublicURL returns the externally reachable URL for a stored blob.
	PublicURL(ctx context.Context, path string) (string, error)
}
