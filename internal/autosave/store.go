package autosave

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Store is a durable key-value slot for document snapshots.
type Store interface {
	Write(key, document string) error
	Read(key string) (string, bool, error)
}

// FileStore persists one snapshot file per key inside a directory. Writes go
// through a temp file and a rename so a crash can never leave a torn
// snapshot behind.
type FileStore struct {
	dir string
}

func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create autosave directory: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

func (s *FileStore) Write(key, document string) error {
	path := s.path(key)

	tmp, err := os.CreateTemp(s.dir, ".snapshot-*")
	if err != nil {
		return fmt.Errorf("failed to create snapshot temp file: %w", err)
	}

	if _, err := tmp.WriteString(document); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to close snapshot: %w", err)
	}

	return os.Rename(tmp.Name(), path)
}

func (s *FileStore) Read(key string) (string, bool, error) {
	data, err := os.ReadFile(s.path(key))
	if errors.Is(err, os.ErrNotExist) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return string(data), true, nil
}

func (s *FileStore) path(key string) string {
	return filepath.Join(s.dir, sanitizeKey(key)+".md")
}

// sanitizeKey flattens a document key (usually a vault-relative path) into a
// single filename.
func sanitizeKey(key string) string {
	key = strings.TrimSuffix(key, ".md")
	var b strings.Builder
	for _, r := range key {
		switch r {
		case '/', '\\', ':', ' ':
			b.WriteRune('_')
		default:
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return "snapshot"
	}
	return b.String()
}
