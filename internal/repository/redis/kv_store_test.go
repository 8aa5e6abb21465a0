//go:build integration

package redis

import (
	"context"
	"errors"
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcredis "github.com/testcontainers/testcontainers-go/modules/redis"

	"poapregistry/internal/domain"
)

func newTestStore(t *testing.T) (*Store, *redis.Client) {
	t.Helper()
	ctx := context.Background()

	container, err := tcredis.Run(ctx, "redis:7-alpine")
	testcontainers.CleanupContainer(t, container)
	require.NoError(t, err)

	url, err := container.ConnectionString(ctx)
	require.NoError(t, err)

	client, err := NewClient(ctx, url)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	return NewStore(client, WithKeyPrefix("test:")), client
}

func TestStore_CommitAndRollback(t *testing.T) {
	ctx := context.Background()
	store, client := newTestStore(t)

	errBoom := errors.New("boom")
	err := store.RunInTx(ctx, func(kv domain.KVStore) error {
		require.NoError(t, kv.Set(ctx, []byte("a"), []byte("1")))
		return errBoom
	})
	require.ErrorIs(t, err, errBoom)
	n, err := client.Exists(ctx, "test:a").Result()
	require.NoError(t, err)
	require.Zero(t, n)

	err = store.RunInTx(ctx, func(kv domain.KVStore) error {
		require.NoError(t, kv.Set(ctx, []byte("a"), []byte("1")))
		got, err := kv.Get(ctx, []byte("a"))
		require.NoError(t, err)
		require.Equal(t, []byte("1"), got)
		return kv.Set(ctx, []byte("b"), []byte("2"))
	})
	require.NoError(t, err)

	require.NoError(t, store.View(ctx, func(kv domain.KVStore) error {
		ok, err := kv.Has(ctx, []byte("b"))
		require.NoError(t, err)
		require.True(t, ok)
		_, err = kv.Get(ctx, []byte("missing"))
		require.ErrorIs(t, err, domain.ErrNotFound)
		return nil
	}))
}

func TestStore_ConflictingWriteAbortsTx(t *testing.T) {
	ctx := context.Background()
	store, client := newTestStore(t)

	err := store.RunInTx(ctx, func(kv domain.KVStore) error {
		ok, err := kv.Has(ctx, []byte("event"))
		require.NoError(t, err)
		require.False(t, ok)

		// Another writer creates the key after it was watched.
		require.NoError(t, client.Set(ctx, "test:event", "other", 0).Err())

		return kv.Set(ctx, []byte("event"), []byte("mine"))
	})
	require.ErrorIs(t, err, domain.ErrConcurrentUpdate)

	got, err := client.Get(ctx, "test:event").Result()
	require.NoError(t, err)
	require.Equal(t, "other", got)
}
