// Package storage implements the file store contracts on the local
// filesystem. One store instance manages one directory (uploads or exports).
package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/CrazyPrash007/Multilingual-Note-Taking/internal/pkg/logger"

	"github.com/google/uuid"
)

// LocalFileStore stores files in a single directory on the local filesystem.
// It satisfies both meetings.AudioStore and documents.DocumentStore.
type LocalFileStore struct {
	dir    string
	logger logger.Logger
}

// NewLocalFileStore creates a store rooted at dir, creating the directory when
// it does not exist.
func NewLocalFileStore(dir string, logger logger.Logger) (*LocalFileStore, error) {
	if dir == "" {
		return nil, fmt.Errorf("store directory must not be empty")
	}

	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	return &LocalFileStore{
		dir:    dir,
		logger: logger,
	}, nil
}

// Save writes content to a new file named after a fresh UUID plus the
// sanitized original name and returns the file's path.
func (s *LocalFileStore) Save(name string, content []byte) (string, error) {
	fileName := fmt.Sprintf("%s-%s", uuid.NewString(), sanitizeName(name))
	path := filepath.Join(s.dir, fileName)

	if err := os.WriteFile(path, content, 0600); err != nil {
		return "", fmt.Errorf("failed to write file %s: %w", path, err)
	}

	s.logger.Info("Stored file ", path)
	return path, nil
}

// Read retrieves a stored file's content by path.
func (s *LocalFileStore) Read(path string) ([]byte, error) {
	if err := s.checkPath(path); err != nil {
		return nil, err
	}

	content, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", path, err)
	}
	return content, nil
}

// Delete removes a stored file by path.
func (s *LocalFileStore) Delete(path string) error {
	if err := s.checkPath(path); err != nil {
		return err
	}

	if err := os.Remove(path); err != nil {
		return fmt.Errorf("failed to delete file %s: %w", path, err)
	}

	s.logger.Info("Deleted file ", path)
	return nil
}

// Dir returns the store's base directory.
func (s *LocalFileStore) Dir() string {
	return s.dir
}

// checkPath rejects paths outside the store's directory.
func (s *LocalFileStore) checkPath(path string) error {
	rel, err := filepath.Rel(s.dir, path)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return fmt.Errorf("path %s is outside the store directory %s", path, s.dir)
	}
	return nil
}

// sanitizeName strips any path components and unsafe characters from a client
// provided file name.
func sanitizeName(name string) string {
	base := filepath.Base(strings.ReplaceAll(name, "\\", "/"))
	if base == "." || base == string(filepath.Separator) || base == "" {
		return "file"
	}
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '.', r == '-', r == '_':
			return r
		default:
			return '_'
		}
	}, base)
}
