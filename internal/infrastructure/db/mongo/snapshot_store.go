// Package mongo keeps session snapshots in a MongoDB collection.
package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	snapshotCollection = "session_snapshots"
	defaultTimeout     = 10 * time.Second
)

type Config struct {
	URI      string
	Database string
	Timeout  time.Duration
}

// SnapshotStore keeps one document per key in the session_snapshots
// collection. The key is the document _id.
type SnapshotStore struct {
	client  *mongo.Client
	db      *mongo.Database
	coll    *mongo.Collection
	timeout time.Duration
}

type snapshotDoc struct {
	Key       string `bson:"_id"`
	Data      string `bson:"data"`
	UpdatedAt int64  `bson:"updated_at"`
}

// Open connects to cfg.URI and pings the server. The returned store owns
// the client; Close disconnects it.
func Open(ctx context.Context, cfg Config) (*SnapshotStore, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	connectCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	opts := options.Client().
		ApplyURI(cfg.URI).
		SetServerSelectionTimeout(timeout).
		SetAppName("thrive-wellness-api")

	client, err := mongo.Connect(connectCtx, opts)
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}
	if err := client.Ping(connectCtx, nil); err != nil {
		_ = client.Disconnect(connectCtx)
		return nil, fmt.Errorf("mongo ping: %w", err)
	}

	db := client.Database(cfg.Database)
	return &SnapshotStore{
		client:  client,
		db:      db,
		coll:    db.Collection(snapshotCollection),
		timeout: timeout,
	}, nil
}

func (s *SnapshotStore) Load(ctx context.Context, key string) ([]byte, bool, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	var doc snapshotDoc
	err := s.coll.FindOne(ctx, bson.M{"_id": key}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("mongo load snapshot: %w", err)
	}
	return []byte(doc.Data), true, nil
}

// Save upserts the snapshot, replacing whatever was stored under key.
func (s *SnapshotStore) Save(ctx context.Context, key string, data []byte) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	doc := snapshotDoc{Key: key, Data: string(data), UpdatedAt: time.Now().UTC().Unix()}
	_, err := s.coll.ReplaceOne(ctx, bson.M{"_id": key}, doc, options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("mongo save snapshot: %w", err)
	}
	return nil
}

func (s *SnapshotStore) Delete(ctx context.Context, key string) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	if _, err := s.coll.DeleteOne(ctx, bson.M{"_id": key}); err != nil {
		return fmt.Errorf("mongo delete snapshot: %w", err)
	}
	return nil
}

func (s *SnapshotStore) Ping(ctx context.Context) error {
	return s.db.RunCommand(ctx, bson.D{{Key: "ping", Value: 1}}).Err()
}

func (s *SnapshotStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}
