package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)

	store, err := Open(ctx, Config{Addr: mr.Addr(), Prefix: "thrive:"})
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close(ctx) })

	_, ok, err := store.Load(ctx, "thrive_user")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Save(ctx, "thrive_user", []byte(`{"id":"user-1"}`)))
	require.NoError(t, store.Save(ctx, "thrive_user", []byte(`{"id":"user-2"}`)))

	data, ok, err := store.Load(ctx, "thrive_user")
	require.NoError(t, err)
	require.True(t, ok)
	assert.JSONEq(t, `{"id":"user-2"}`, string(data))

	raw, err := mr.Get("thrive:thrive_user")
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"user-2"}`, raw)
	assert.Zero(t, mr.TTL("thrive:thrive_user"), "snapshots must not expire")

	require.NoError(t, store.Delete(ctx, "thrive_user"))
	assert.False(t, mr.Exists("thrive:thrive_user"))
	_, ok, err = store.Load(ctx, "thrive_user")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Delete(ctx, "thrive_user"), "deleting a missing key is not an error")
}

func TestSnapshotStore_SelectsDatabase(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr(), DB: 2})
	store := NewSnapshotStore(client, "")
	t.Cleanup(func() { _ = store.Close(ctx) })

	require.NoError(t, store.Save(ctx, "k", []byte("v")))

	raw, err := mr.DB(2).Get("k")
	require.NoError(t, err)
	assert.Equal(t, "v", raw)
	assert.False(t, mr.Exists("k"))
}

func TestOpen_Password(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)
	mr.RequireAuth("s3cret")

	_, err := Open(ctx, Config{Addr: mr.Addr(), Password: "wrong", Timeout: time.Second})
	require.Error(t, err)

	store, err := Open(ctx, Config{Addr: mr.Addr(), Password: "s3cret", Timeout: time.Second})
	require.NoError(t, err)
	assert.NoError(t, store.Close(ctx))
}

func TestSnapshotStore_PingFailsWhenServerGone(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)
	addr := mr.Addr()

	store, err := Open(ctx, Config{Addr: addr, Timeout: 200 * time.Millisecond})
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close(ctx) })
	require.NoError(t, store.Ping(ctx))

	mr.Close()
	assert.Error(t, store.Ping(ctx))

	_, err = Open(ctx, Config{Addr: addr, Timeout: 200 * time.Millisecond})
	assert.ErrorContains(t, err, addr)
}
