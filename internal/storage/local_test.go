package storage

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLocalStore_SaveAndOpenRoundTrip(t *testing.T) {
	store := NewLocalStore(t.TempDir())

	name, err := store.Save(context.Background(), "cover.png", strings.NewReader("png-bytes"))
	if err != nil {
		t.Fatalf("Save returned error: %v", err)
	}
	if !strings.HasSuffix(name, "_cover.png") {
		t.Fatalf("stored name should keep the original filename, got %q", name)
	}
	if strings.Contains(name, "/") {
		t.Fatalf("stored name must not contain separators: %q", name)
	}

	f, err := store.Open(context.Background(), name)
	if err != nil {
		t.Fatalf("Open returned error: %v", err)
	}
	defer f.Close()
	body, err := io.ReadAll(f)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(body) != "png-bytes" {
		t.Fatalf("content: got %q", body)
	}
}

func TestLocalStore_SaveGeneratesUniqueNames(t *testing.T) {
	store := NewLocalStore(t.TempDir())

	n1, err := store.Save(context.Background(), "a.png", strings.NewReader("1"))
	if err != nil {
		t.Fatalf("first Save: %v", err)
	}
	n2, err := store.Save(context.Background(), "a.png", strings.NewReader("2"))
	if err != nil {
		t.Fatalf("second Save: %v", err)
	}
	if n1 == n2 {
		t.Fatalf("same filename must store under distinct names")
	}
}

func TestLocalStore_SaveSanitizesFilename(t *testing.T) {
	dir := t.TempDir()
	store := NewLocalStore(dir)

	name, err := store.Save(context.Background(), "../../etc/passwd", strings.NewReader("x"))
	if err != nil {
		t.Fatalf("Save returned error: %v", err)
	}
	if strings.Contains(name, "..") || strings.Contains(name, "/") {
		t.Fatalf("stored name leaks path segments: %q", name)
	}
	// The file must live inside the store directory.
	if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
		t.Fatalf("stored file not in store dir: %v", err)
	}
}

func TestLocalStore_OpenRejectsTraversal(t *testing.T) {
	store := NewLocalStore(t.TempDir())

	for _, name := range []string{"", "../secret", "a/b.png", `..\x`, "has/../dots"} {
		if _, err := store.Open(context.Background(), name); !errors.Is(err, ErrNotFound) {
			t.Fatalf("expected ErrNotFound for %q, got: %v", name, err)
		}
	}
}

func TestLocalStore_OpenMissingFile(t *testing.T) {
	store := NewLocalStore(t.TempDir())

	if _, err := store.Open(context.Background(), "nope.png"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got: %v", err)
	}
}
