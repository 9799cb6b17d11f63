package persist

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/tubedeck/tubedeck/internal/events"
	"github.com/tubedeck/tubedeck/internal/models"
)

// JSONStore implements file-based key-value storage, one file per key.
// Writes are atomic (temp file + rename) and the previous blob is kept as
// a .backup used for recovery when the primary copy is unparsable.
type JSONStore struct {
	baseDir string
	logger  *events.Logger

	mu sync.RWMutex
}

// NewJSONStore creates a JSON-file-backed store rooted at baseDir.
func NewJSONStore(baseDir string, logger *events.Logger) (*JSONStore, error) {
	if err := os.MkdirAll(baseDir, 0700); err != nil {
		return nil, fmt.Errorf("create state directory: %w", err)
	}

	return &JSONStore{
		baseDir: baseDir,
		logger:  logger.WithField("component", "json_kv_store"),
	}, nil
}

// Load reads the blob for a key, falling back to the backup copy when the
// primary file holds invalid JSON.
func (s *JSONStore) Load(key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	path := s.keyPath(key)

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, models.ErrStateNotFound
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read state file: %w", err)
	}

	if !json.Valid(data) {
		if backup, err := os.ReadFile(path + ".backup"); err == nil && json.Valid(backup) {
			s.logger.WithField("key", key).Warn("Loaded state from backup due to corruption")
			return backup, nil
		}
		return nil, models.ErrStateCorrupt
	}

	return data, nil
}

// Save writes the blob atomically, preserving the previous copy as backup.
func (s *JSONStore) Save(key string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	path := s.keyPath(key)

	if _, err := os.Stat(path); err == nil {
		if err := copyFile(path, path+".backup"); err != nil {
			s.logger.WithError(err).Warn("Failed to create backup")
		}
	}

	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0600); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}

	if file, err := os.Open(tmpPath); err == nil {
		_ = file.Sync()
		_ = file.Close()
	}

	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("rename state file: %w", err)
	}

	return nil
}

// Delete removes a key and its backup.
func (s *JSONStore) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	path := s.keyPath(key)
	_ = os.Remove(path)
	_ = os.Remove(path + ".backup")
	return nil
}

// Close releases resources.
func (s *JSONStore) Close() error {
	return nil
}

func (s *JSONStore) keyPath(key string) string {
	return filepath.Join(s.baseDir, key+".json")
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	_, err = io.Copy(out, in)
	return err
}
