package storage

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sync"
)

// LegacyKey is the localStorage key the browser-only frontend kept its listings under.
const LegacyKey = "finques_lisa_properties"

// ErrNoLegacyData is returned by Load when there is nothing to migrate.
var ErrNoLegacyData = errors.New("no legacy data")

// LegacyStore is the client-side property store that predates the database.
// Records are returned undecoded so a malformed one fails on its own.
type LegacyStore interface {
	Load() ([]json.RawMessage, error)
	Clear() error
}

// FileStore reads an exported localStorage value: a JSON array of property records.
type FileStore struct {
	mu   sync.Mutex
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Path() string {
	return s.path
}

func (s *FileStore) Load() ([]json.RawMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrNoLegacyData
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read legacy store: %w", err)
	}

	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil, ErrNoLegacyData
	}

	var records []json.RawMessage
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("legacy store is not a JSON array: %w", err)
	}
	if len(records) == 0 {
		return nil, ErrNoLegacyData
	}
	return records, nil
}

// Clear removes the store file. Clearing an absent store is not an error.
func (s *FileStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to clear legacy store: %w", err)
	}
	return nil
}
