package cache

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johnquangdev/teamsync/internal/domain/repositories"
)

func TestMemoryStoreGetSet(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	_, err := store.Get(ctx, "meetings", "m1")
	require.ErrorIs(t, err, repositories.ErrKeyNotFound)

	require.NoError(t, store.Set(ctx, "meetings", "m1", []byte(`{"id":"m1"}`)))

	got, err := store.Get(ctx, "meetings", "m1")
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"id":"m1"}`), got)

	// Same id in a different collection is a different key
	_, err = store.Get(ctx, "actions", "m1")
	require.ErrorIs(t, err, repositories.ErrKeyNotFound)
}

func TestMemoryStoreIndexOrder(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.AppendIndex(ctx, "action_ids", "a1"))
	require.NoError(t, store.AppendIndex(ctx, "action_ids", "a2", "a3"))

	ids, err := store.Index(ctx, "action_ids")
	require.NoError(t, err)
	assert.Equal(t, []string{"a1", "a2", "a3"}, ids)

	// Unknown index is empty, not an error
	ids, err = store.Index(ctx, "missing")
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestMemoryStoreReturnsCopies(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	value := []byte("original")
	require.NoError(t, store.Set(ctx, "meetings", "m1", value))
	value[0] = 'X'

	got, err := store.Get(ctx, "meetings", "m1")
	require.NoError(t, err)
	assert.Equal(t, []byte("original"), got)

	got[0] = 'Y'
	again, err := store.Get(ctx, "meetings", "m1")
	require.NoError(t, err)
	assert.Equal(t, []byte("original"), again)
}

func TestMemoryStoreConcurrentAppend(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	const writers = 20
	var wg sync.WaitGroup
	wg.Add(writers)
	for i := 0; i < writers; i++ {
		go func(i int) {
			defer wg.Done()
			_ = store.AppendIndex(ctx, "ids", fmt.Sprintf("id_%d", i))
		}(i)
	}
	wg.Wait()

	ids, err := store.Index(ctx, "ids")
	require.NoError(t, err)
	assert.Len(t, ids, writers)
}
