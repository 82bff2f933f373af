package store

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/petarvukov/ttliga/internal/league"
)

// MemoryStore holds the blob in memory. Used by tests and as a throwaway
// backend; it round-trips through JSON so callers never share state with it,
// same as a real store.
type MemoryStore struct {
	mu   sync.RWMutex
	data []byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (m *MemoryStore) Load(_ context.Context) ([]league.Tournament, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.data == nil {
		return []league.Tournament{}, nil
	}
	var tournaments []league.Tournament
	if err := json.Unmarshal(m.data, &tournaments); err != nil {
		return nil, err
	}
	return tournaments, nil
}

func (m *MemoryStore) Save(_ context.Context, tournaments []league.Tournament) error {
	raw, err := json.Marshal(tournaments)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.data = raw
	return nil
}
