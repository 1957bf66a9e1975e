package storage_test

import (
	"context"
	"testing"

	"github.com/Lutefd/currency-widget/internal/model"
	"github.com/Lutefd/currency-widget/internal/storage"
	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRedis(t *testing.T) (*storage.RedisStore, *miniredis.Miniredis) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub redis server", err)
	}

	store, err := storage.NewRedisStore(mr.Addr(), "")
	if err != nil {
		t.Fatalf("failed to create Redis store: %v", err)
	}

	return store, mr
}

func TestNewRedisStore(t *testing.T) {
	store, mr := setupTestRedis(t)
	defer mr.Close()
	defer store.Close()

	assert.NotNil(t, store)
	assert.NoError(t, store.Ping(context.Background()))
}

func TestNewRedisStore_Unreachable(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	addr := mr.Addr()
	mr.Close()

	_, err = storage.NewRedisStore(addr, "")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to connect to Redis")
}

func TestGet(t *testing.T) {
	store, mr := setupTestRedis(t)
	defer mr.Close()
	defer store.Close()

	ctx := context.Background()

	_, err := store.Get(ctx, "non_existent_key")
	assert.ErrorIs(t, err, model.ErrKeyNotFound)

	mr.Set("cc_from", "EUR")
	value, err := store.Get(ctx, "cc_from")
	assert.NoError(t, err)
	assert.Equal(t, "EUR", value)
}

func TestSet(t *testing.T) {
	store, mr := setupTestRedis(t)
	defer mr.Close()
	defer store.Close()

	ctx := context.Background()

	err := store.Set(ctx, "cc_to", "JPY")
	assert.NoError(t, err)

	value, err := store.Get(ctx, "cc_to")
	assert.NoError(t, err)
	assert.Equal(t, "JPY", value)
	assert.Equal(t, "JPY", mustGet(t, mr, "cc_to"))
	assert.Zero(t, mr.TTL("cc_to"))
}

func TestClose(t *testing.T) {
	store, mr := setupTestRedis(t)
	defer mr.Close()

	err := store.Close()
	assert.NoError(t, err)

	_, err = store.Get(context.Background(), "cc_from")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, model.ErrKeyNotFound)
	assert.ErrorIs(t, err, model.ErrStorage)
}

func mustGet(t *testing.T, mr *miniredis.Miniredis, key string) string {
	t.Helper()
	value, err := mr.Get(key)
	require.NoError(t, err)
	return value
}
