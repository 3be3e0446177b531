package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/oubliette-games/dungeon-escape/pkg/game"
)

// MemoryStore is an in-memory implementation of Store, used in tests
// and for running the API without Redis. Sessions round-trip through
// JSON so callers get the same copy semantics as the Redis store.
type MemoryStore struct {
	mu        sync.Mutex
	sessions  map[uuid.UUID][]byte
	locks     map[uuid.UUID]string
	pingError error
}

// Ensure MemoryStore implements Store interface
var _ Store = (*MemoryStore)(nil)

// NewMemoryStore creates a new in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		sessions: make(map[uuid.UUID][]byte),
		locks:    make(map[uuid.UUID]string),
	}
}

// SetPingError configures the store to fail on ping with the given error
func (m *MemoryStore) SetPingError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pingError = err
}

func (m *MemoryStore) SaveSession(ctx context.Context, s *game.Session) error {
	if s == nil {
		return errors.New("session cannot be nil")
	}

	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[s.ID] = data
	return nil
}

func (m *MemoryStore) LoadSession(ctx context.Context, id uuid.UUID) (*game.Session, error) {
	m.mu.Lock()
	data, exists := m.sessions[id]
	m.mu.Unlock()

	if !exists {
		return nil, nil // Return nil for not found
	}

	var s game.Session
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}

	return &s, nil
}

func (m *MemoryStore) DeleteSession(ctx context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
	return nil
}

func (m *MemoryStore) AcquireActionLock(ctx context.Context, id uuid.UUID, owner string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, held := m.locks[id]; held {
		return false, nil
	}
	m.locks[id] = owner
	return true, nil
}

func (m *MemoryStore) ReleaseActionLock(ctx context.Context, id uuid.UUID, owner string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	// Only delete if we own the lock
	if m.locks[id] == owner {
		delete(m.locks, id)
	}
}

func (m *MemoryStore) Ping(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.pingError
}

func (m *MemoryStore) Close() error {
	return nil
}
