package repositories

import (
	"context"
	"errors"
)

// ErrKeyNotFound is returned by StateStore.Get when no entry exists for the key
var ErrKeyNotFound = errors.New("state: key not found")

// StateStore is the boundary to the external key-value state store. The store
// provides linearizable read/write per key and an atomic index append, so
// application code never performs read-modify-write on the ID index.
type StateStore interface {
	// Get returns the raw value for collection/id, or ErrKeyNotFound
	Get(ctx context.Context, collection, id string) ([]byte, error)

	// Set writes the raw value for collection/id
	Set(ctx context.Context, collection, id string, value []byte) error

	// AppendIndex atomically appends ids to the named append-only index
	AppendIndex(ctx context.Context, index string, ids ...string) error

	// Index returns all ids ever appended to the named index, in append order
	Index(ctx context.Context, index string) ([]string, error)
}
