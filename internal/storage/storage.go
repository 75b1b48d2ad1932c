package storage

import (
	"context"
	"errors"
	"io"
)

// ErrNotFound is returned by Open when no stored file has the given name.
var ErrNotFound = errors.New("file not found")

// FileStore persists uploaded files. Save returns the name the file was
// stored under (unique per call, derived from the original filename);
// that name is what Open accepts.
type FileStore interface {
	Save(ctx context.Context, filename string, r io.Reader) (string, error)
	Open(ctx context.Context, name string) (io.ReadCloser, error)
}
