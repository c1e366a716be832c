// Package securestore is the local analog of the device secure store: a
// handful of fixed keys (session token, profile blob) written to disk with
// owner-only permissions. There is no schema versioning; values are opaque
// strings.
package securestore

import (
	"fmt"
	"os"
	"path/filepath"
)

type Store struct {
	dir string
}

// New opens (creating if needed) a store rooted at dir.
func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("securestore: create %s: %w", dir, err)
	}
	return &Store{dir: dir}, nil
}

func (s *Store) path(key string) string {
	return filepath.Join(s.dir, key)
}

// Set writes the value via a temp file + rename so a crash mid-write never
// leaves a truncated value behind.
func (s *Store) Set(key, value string) error {
	tmp := s.path(key) + ".tmp"
	if err := os.WriteFile(tmp, []byte(value), 0o600); err != nil {
		return fmt.Errorf("securestore: write %s: %w", key, err)
	}
	if err := os.Rename(tmp, s.path(key)); err != nil {
		return fmt.Errorf("securestore: commit %s: %w", key, err)
	}
	return nil
}

// Get returns the stored value. A missing key is absence, not failure.
func (s *Store) Get(key string) (string, bool, error) {
	data, err := os.ReadFile(s.path(key))
	if os.IsNotExist(err) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("securestore: read %s: %w", key, err)
	}
	return string(data), true, nil
}

// Delete removes the key; deleting a missing key is a no-op.
func (s *Store) Delete(key string) error {
	err := os.Remove(s.path(key))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("securestore: delete %s: %w", key, err)
	}
	return nil
}
