// Package store provides durable single-slot token storage backends.
// Absence of a token means logged out.
package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FileTokenStore persists the bearer token in a single file. Writes go
// through a temp file and rename so the slot is always either the old
// value, the new value, or absent — never a torn write.
type FileTokenStore struct {
	path string
}

// NewFileTokenStore returns a store writing to path. The parent directory
// is created on first save.
func NewFileTokenStore(path string) *FileTokenStore {
	return &FileTokenStore{path: path}
}

func (s *FileTokenStore) Load(_ context.Context) (string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("token store: read %s: %w", s.path, err)
	}
	return strings.TrimSpace(string(data)), nil
}

func (s *FileTokenStore) Save(_ context.Context, token string) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("token store: mkdir %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".token-*")
	if err != nil {
		return fmt.Errorf("token store: create temp: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.WriteString(token); err != nil {
		tmp.Close()
		return fmt.Errorf("token store: write temp: %w", err)
	}
	if err := tmp.Chmod(0o600); err != nil {
		tmp.Close()
		return fmt.Errorf("token store: chmod temp: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("token store: close temp: %w", err)
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("token store: rename: %w", err)
	}
	return nil
}

func (s *FileTokenStore) Clear(_ context.Context) error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("token store: remove %s: %w", s.path, err)
	}
	return nil
}
