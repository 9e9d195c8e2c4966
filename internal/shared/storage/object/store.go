package object

import (
	"context"
	"io"
)

// Store defines the contract for saving and retrieving binary objects.
type Store interface {
	// Save writes the reader under the given storage key and returns the
	// byte count and sniffed MIME type.
	Save(ctx context.Context, storageKey string, r io.Reader) (sizeBytes int64, mimeType string, err error)
	// Open opens a stored object for reading.
	Open(ctx context.Context, storageKey string) (io.ReadCloser, error)
	// FindByPrefix returns the storage key of the first object whose key
	// starts with the given prefix.
	FindByPrefix(ctx context.Context, prefix string) (string, error)
}
