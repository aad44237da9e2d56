// Package memory provides an in-memory session store used for tests and
// ephemeral editing sessions.
package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"rankcore/pkg/domain"
)

// Compile-time contract assertion.
var _ domain.SessionStore = (*Store)(nil)

// Store keeps the latest snapshot serialized so callers cannot alias the
// stored state through retained pointers.
type Store struct {
	mu      sync.Mutex
	payload []byte
}

// NewStore constructs an empty in-memory session store.
func NewStore() *Store {
	return &Store{}
}

// SaveSnapshot serializes and retains the snapshot.
func (s *Store) SaveSnapshot(_ context.Context, snapshot domain.Snapshot) error {
	data, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	s.mu.Lock()
	s.payload = data
	s.mu.Unlock()
	return nil
}

// LoadSnapshot returns a structurally independent copy of the stored
// snapshot, or false when nothing was saved yet.
func (s *Store) LoadSnapshot(context.Context) (domain.Snapshot, bool, error) {
	s.mu.Lock()
	data := s.payload
	s.mu.Unlock()
	if data == nil {
		return domain.Snapshot{}, false, nil
	}
	var snapshot domain.Snapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return domain.Snapshot{}, false, fmt.Errorf("decode snapshot: %w", err)
	}
	return snapshot, true, nil
}

// Close is a no-op for the in-memory store.
func (s *Store) Close() error { return nil }
