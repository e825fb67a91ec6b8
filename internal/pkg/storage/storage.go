package storage

import (
	"context"
	"errors"
	"io"
)

var (
	ErrInvalidPath  = errors.New("invalid file path")
	ErrFileNotFound = errors.New("file not found")
)

// FileStorage keeps files produced by the gateway, such as attendance exports.
type FileStorage interface {
	// Save writes a file and returns its cleaned storage key
	Save(ctx context.Context, r io.Reader, key string) (string, error)

	// Open retrieves a file
	Open(ctx context.Context, key string) (io.ReadCloser, error)

	// Delete removes a file; deleting a missing file is not an error
	Delete(ctx context.Context, key string) error

	// URL returns the public URL of a key
	URL(key string) string
}
