package ledger

import (
	"bytes"
	"context"
	"sync"
)

// memoryClient is a process-local ledger backed by a map. It is the test
// workhorse and the default backend when no external store is configured.
type memoryClient struct {
	mu        sync.RWMutex
	data      map[string][]byte
	available bool
}

// NewMemory returns an empty in-memory ledger. It implements
// [ConditionalClient].
func NewMemory() *memoryClient { //nolint:revive // concrete type is the point here
	return &memoryClient{
		data:      make(map[string][]byte),
		available: true,
	}
}

// SetAvailable flips the availability flag. Tests use it to simulate an
// unreachable ledger.
func (m *memoryClient) SetAvailable(available bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.available = available
}

func (m *memoryClient) IsAvailable(ctx context.Context) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.available, nil
}

func (m *memoryClient) GetData(ctx context.Context, key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if !m.available {
		return nil, ErrUnavailable
	}

	value, ok := m.data[key]
	if !ok {
		return nil, nil
	}

	// Copy out so callers cannot mutate stored state.
	out := make([]byte, len(value))
	copy(out, value)
	return out, nil
}

func (m *memoryClient) SetData(ctx context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.available {
		return ErrUnavailable
	}

	stored := make([]byte, len(value))
	copy(stored, value)
	m.data[key] = stored
	return nil
}

// CompareAndSwap implements [ConditionalClient]. A nil expect matches only
// an absent key.
func (m *memoryClient) CompareAndSwap(ctx context.Context, key string, expect, value []byte) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.available {
		return false, ErrUnavailable
	}

	current, exists := m.data[key]
	if expect == nil {
		if exists {
			return false, nil
		}
	} else if !exists || !bytes.Equal(current, expect) {
		return false, nil
	}

	stored := make([]byte, len(value))
	copy(stored, value)
	m.data[key] = stored
	return true, nil
}
