package cache

import (
	"context"
	"sync"

	"github.com/johnquangdev/teamsync/internal/domain/repositories"
)

// MemoryStore is an in-memory StateStore for tests and local development
// without Redis. Append order and per-key linearizability match the Redis
// implementation.
type MemoryStore struct {
	mu      sync.RWMutex
	items   map[string][]byte
	indexes map[string][]string
}

// NewMemoryStore creates a new in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		items:   make(map[string][]byte),
		indexes: make(map[string][]string),
	}
}

// Get retrieves a value for collection/id
func (ms *MemoryStore) Get(_ context.Context, collection, id string) ([]byte, error) {
	ms.mu.RLock()
	defer ms.mu.RUnlock()

	value, exists := ms.items[entityKey(collection, id)]
	if !exists {
		return nil, repositories.ErrKeyNotFound
	}

	out := make([]byte, len(value))
	copy(out, value)
	return out, nil
}

// Set stores a value for collection/id
func (ms *MemoryStore) Set(_ context.Context, collection, id string, value []byte) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	stored := make([]byte, len(value))
	copy(stored, value)
	ms.items[entityKey(collection, id)] = stored
	return nil
}

// AppendIndex appends ids to the named index under the store lock
func (ms *MemoryStore) AppendIndex(_ context.Context, index string, ids ...string) error {
	if len(ids) == 0 {
		return nil
	}

	ms.mu.Lock()
	defer ms.mu.Unlock()

	ms.indexes[index] = append(ms.indexes[index], ids...)
	return nil
}

// Index returns all ids in the named index, in append order
func (ms *MemoryStore) Index(_ context.Context, index string) ([]string, error) {
	ms.mu.RLock()
	defer ms.mu.RUnlock()

	ids := ms.indexes[index]
	out := make([]string, len(ids))
	copy(out, ids)
	return out, nil
}
