package storage

import (
	"context"
	"errors"
	"sync"
)

// StubObjectStorage is an in-memory implementation of ObjectStorage.
// Use this for development and tests when no S3-compatible backend is configured.
type StubObjectStorage struct {
	mu      sync.Mutex
	deleted []string
}

// NewStubObjectStorage creates a new StubObjectStorage
func NewStubObjectStorage() *StubObjectStorage {
	return &StubObjectStorage{}
}

// Ensure StubObjectStorage implements ObjectStorage
var _ ObjectStorage = (*StubObjectStorage)(nil)

// DeleteObject records the deletion and succeeds
func (s *StubObjectStorage) DeleteObject(ctx context.Context, storageKey string) error {
	if storageKey == "" {
		return errors.New("storage key is required")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.deleted = append(s.deleted, storageKey)
	return nil
}

// ObjectExists always returns true in stub mode
func (s *StubObjectStorage) ObjectExists(ctx context.Context, storageKey string) (bool, error) {
	if storageKey == "" {
		return false, errors.New("storage key is required")
	}
	return true, nil
}

// DeletedKeys returns the keys deleted through this stub
func (s *StubObjectStorage) DeletedKeys() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	keys := make([]string, len(s.deleted))
	copy(keys, s.deleted)
	return keys
}
