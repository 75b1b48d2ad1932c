package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// LocalStore keeps uploads on the local filesystem under a single directory.
type LocalStore struct {
	dir string
}

func NewLocalStore(dir string) *LocalStore {
	return &LocalStore{dir: dir}
}

var _ FileStore = (*LocalStore)(nil)

// storageName builds a collision-free stored name: a uuid hex prefix plus the
// sanitized original filename.
func storageName(filename string) string {
	base := filepath.Base(filepath.Clean(filename))
	if base == "." || base == string(filepath.Separator) {
		base = "file"
	}
	prefix := strings.ReplaceAll(uuid.NewString(), "-", "")
	return prefix + "_" + base
}

// Save writes the file under a unique name and returns that name.
func (s *LocalStore) Save(ctx context.Context, filename string, r io.Reader) (string, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("create upload dir %q: %w", s.dir, err)
	}
	name := storageName(filename)
	path := filepath.Join(s.dir, name)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create upload file %q: %w", path, err)
	}
	if _, err := io.Copy(f, r); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return "", fmt.Errorf("write upload file %q: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close upload file %q: %w", path, err)
	}
	return name, nil
}

// Open streams a stored file. Names with path separators or traversal
// segments are rejected outright.
func (s *LocalStore) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	if name == "" || strings.ContainsAny(name, `/\`) || strings.Contains(name, "..") {
		return nil, ErrNotFound
	}
	f, err := os.Open(filepath.Join(s.dir, name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("open upload %q: %w", name, err)
	}
	return f, nil
}
