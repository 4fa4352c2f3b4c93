package storage

import (
	"context"
	"io"
	"os"
	"path/filepath"
)

// LocalStorage implements ObjectStorage over a directory on disk.
type LocalStorage struct {
	root string
}

// NewLocalStorage creates storage rooted at the given directory. Keys
// are resolved relative to the root.
func NewLocalStorage(root string) *LocalStorage {
	return &LocalStorage{root: root}
}

// Download opens a file for reading.
func (s *LocalStorage) Download(_ context.Context, key string) (io.ReadCloser, error) {
	return os.Open(filepath.Join(s.root, key))
}

// Exists checks if a file exists.
func (s *LocalStorage) Exists(_ context.Context, key string) (bool, error) {
	_, err := os.Stat(filepath.Join(s.root, key))
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
