package kv

import (
	"context"
	"os"
	"path/filepath"
	"strings"
)

// FileStore keeps one file per key under a single directory. It mirrors the
// browser localStorage the storefront originally persisted carts to: single
// key, whole-value swap, unreadable value treated as absent by callers.
type FileStore struct {
	dir string
}

func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &FileStore{dir: dir}, nil
}

var keySanitizer = strings.NewReplacer(":", "_", "/", "_", "\\", "_")

func (s *FileStore) path(key string) string {
	return filepath.Join(s.dir, keySanitizer.Replace(key)+".json")
}

func (s *FileStore) Get(_ context.Context, key string) ([]byte, error) {
	b, err := os.ReadFile(s.path(key))
	if os.IsNotExist(err) {
		return nil, ErrNotFound
	}
	return b, err
}

func (s *FileStore) Set(_ context.Context, key string, value []byte) error {
	// Write-to-temp then rename keeps the swap atomic; a crash mid-write
	// leaves the previous value intact rather than a truncated blob.
	path := s.path(key)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, value, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

func (s *FileStore) Delete(_ context.Context, key string) error {
	err := os.Remove(s.path(key))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
