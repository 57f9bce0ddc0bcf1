package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ethograph/pkg/log"
)

func openTestStore(t *testing.T, ttl time.Duration) *Store {
	t.Helper()
	store, err := Open("", ttl, log.NewLogger())
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreRoundTrip(t *testing.T) {
	store := openTestStore(t, 0)

	_, ok := store.Get("missing")
	assert.False(t, ok)

	require.NoError(t, store.Set("k", []byte("v")))
	val, ok := store.Get("k")
	assert.True(t, ok)
	assert.Equal(t, []byte("v"), val)

	require.NoError(t, store.Delete("k"))
	_, ok = store.Get("k")
	assert.False(t, ok)
}

func TestStoreJSON(t *testing.T) {
	store := openTestStore(t, 0)

	type window struct {
		AnimalId string `json:"animalId"`
		Total    int64  `json:"total"`
	}
	require.NoError(t, store.SetJSON("w", window{AnimalId: "ele-1", Total: 150}))

	var got window
	require.True(t, store.GetJSON("w", &got))
	assert.Equal(t, window{AnimalId: "ele-1", Total: 150}, got)

	assert.False(t, store.GetJSON("missing", &got))
}

func TestStoreTTLExpires(t *testing.T) {
	store := openTestStore(t, time.Second)

	require.NoError(t, store.Set("k", []byte("v")))
	_, ok := store.Get("k")
	assert.True(t, ok)

	time.Sleep(2100 * time.Millisecond)
	_, ok = store.Get("k")
	assert.False(t, ok)
}

func TestStoreOnDisk(t *testing.T) {
	store, err := Open(t.TempDir(), 0, log.NewLogger())
	require.NoError(t, err)
	defer store.Close()

	require.NoError(t, store.Set("k", []byte("v")))
	val, ok := store.Get("k")
	assert.True(t, ok)
	assert.Equal(t, []byte("v"), val)
}
