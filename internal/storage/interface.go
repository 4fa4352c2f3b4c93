// Package storage abstracts where the registered-name list lives: a
// local file for development, an S3-compatible bucket in deployments.
// The list is read once at startup, so only read operations exist.
package storage

import (
	"context"
	"io"
)

// ObjectStorage defines read access to stored objects.
type ObjectStorage interface {
	// Download opens an object for reading
	Download(ctx context.Context, key string) (io.ReadCloser, error)

	// Exists checks if an object exists
	Exists(ctx context.Context, key string) (bool, error)
}
