package mongo

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.mongodb.org/mongo-driver/bson"
)

// mongoURI returns THRIVE_TEST_MONGO_URI when set and otherwise starts a
// throwaway MongoDB container. Without Docker the test is skipped.
func mongoURI(t *testing.T) string {
	t.Helper()
	if uri := os.Getenv("THRIVE_TEST_MONGO_URI"); uri != "" {
		return uri
	}
	if testing.Short() {
		t.Skip("skipping MongoDB container in short mode")
	}
	testcontainers.SkipIfProviderIsNotHealthy(t)

	ctx := context.Background()
	req := testcontainers.ContainerRequest{
		Image:        "mongo:7",
		ExposedPorts: []string{"27017/tcp"},
		WaitingFor: wait.ForListeningPort("27017/tcp").
			WithStartupTimeout(2 * time.Minute),
	}
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err, "failed to start mongo container")
	t.Cleanup(func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate mongo container: %v", err)
		}
	})

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "27017/tcp")
	require.NoError(t, err)
	return fmt.Sprintf("mongodb://%s:%s", host, port.Port())
}

func openTestStore(t *testing.T) *SnapshotStore {
	t.Helper()
	ctx := context.Background()

	store, err := Open(ctx, Config{
		URI:      mongoURI(t),
		Database: fmt.Sprintf("thrive_test_%d", time.Now().UnixNano()),
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = store.db.Drop(ctx)
		_ = store.Close(ctx)
	})
	return store
}

func TestSnapshotStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t)

	_, ok, err := store.Load(ctx, "thrive_user")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Save(ctx, "thrive_user", []byte(`{"id":"user-1"}`)))
	require.NoError(t, store.Save(ctx, "thrive_user", []byte(`{"id":"user-2"}`)))

	data, ok, err := store.Load(ctx, "thrive_user")
	require.NoError(t, err)
	require.True(t, ok)
	assert.JSONEq(t, `{"id":"user-2"}`, string(data))

	n, err := store.coll.CountDocuments(ctx, bson.M{"_id": "thrive_user"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), n, "save must upsert in place")

	require.NoError(t, store.Delete(ctx, "thrive_user"))
	_, ok, err = store.Load(ctx, "thrive_user")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Delete(ctx, "thrive_user"), "deleting a missing key is not an error")
	assert.NoError(t, store.Ping(ctx))
}

func TestOpen_Unreachable(t *testing.T) {
	_, err := Open(context.Background(), Config{
		URI:      "mongodb://127.0.0.1:1",
		Database: "thrive",
		Timeout:  200 * time.Millisecond,
	})
	assert.Error(t, err)
}
