package memory

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hiddengems/gemstore/pkg/persistence"
)

func TestSaveAndLoad(t *testing.T) {
	store := NewStore[uint32, string]()

	require.NoError(t, store.Save(1, "one"))
	require.NoError(t, store.Save(2, "two"))

	val, err := store.Load(1)
	require.NoError(t, err)
	assert.Equal(t, "one", val)

	require.NoError(t, store.Save(1, "uno"))
	val, err = store.Load(1)
	require.NoError(t, err)
	assert.Equal(t, "uno", val)
}

func TestLoadMissingKey(t *testing.T) {
	store := NewStore[uint32, string]()

	_, err := store.Load(42)
	require.Error(t, err)
	assert.True(t, errors.Is(err, persistence.ErrKeyNotFound))
}

func TestLoadAllSnapshot(t *testing.T) {
	store := NewStore[uint32, string]()

	require.NoError(t, store.Save(1, "one"))
	require.NoError(t, store.Save(2, "two"))

	all, err := store.LoadAll()
	require.NoError(t, err)
	assert.Equal(t, map[uint32]string{1: "one", 2: "two"}, all)

	// mutating the snapshot must not touch the store
	delete(all, 1)
	val, err := store.Load(1)
	require.NoError(t, err)
	assert.Equal(t, "one", val)
}

func TestDelete(t *testing.T) {
	store := NewStore[uint32, string]()

	require.NoError(t, store.Save(1, "one"))
	require.NoError(t, store.Delete(1))

	_, err := store.Load(1)
	assert.True(t, errors.Is(err, persistence.ErrKeyNotFound))

	// deleting a missing key is not an error
	require.NoError(t, store.Delete(99))
}

func TestClear(t *testing.T) {
	store := NewStore[uint32, string]()

	require.NoError(t, store.Save(1, "one"))
	require.NoError(t, store.Save(2, "two"))
	require.NoError(t, store.Clear())

	all, err := store.LoadAll()
	require.NoError(t, err)
	assert.Empty(t, all)

	require.NoError(t, store.Save(3, "three"))
	val, err := store.Load(3)
	require.NoError(t, err)
	assert.Equal(t, "three", val)
}
