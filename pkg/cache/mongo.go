package cache

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Default MongoDB database and collection names.
const (
	DefaultMongoDatabase   = "segaxis"
	DefaultMongoCollection = "cache"
)

type mongoEntry struct {
	Key       string    `bson:"_id"`
	Data      []byte    `bson:"data"`
	ExpiresAt time.Time `bson:"expires_at,omitempty"`
}

// MongoCache stores entries as documents keyed by _id. Expired documents
// are treated as misses; a TTL index on expires_at removes them server side.
type MongoCache struct {
	coll   *mongo.Collection
	client *mongo.Client
}

// NewMongoCache wraps an existing collection. Close does not disconnect
// the client of a wrapped collection.
func NewMongoCache(coll *mongo.Collection) *MongoCache {
	return &MongoCache{coll: coll}
}

// DialMongo connects to uri and opens the named collection, creating the
// expiry index if needed.
func DialMongo(ctx context.Context, uri, database, collection string) (*MongoCache, error) {
	if database == "" {
		database = DefaultMongoDatabase
	}
	if collection == "" {
		collection = DefaultMongoCollection
	}
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, networkError("ping", err)
	}
	coll := client.Database(database).Collection(collection)
	_, err = coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "expires_at", Value: 1}},
		Options: options.Index().SetExpireAfterSeconds(0),
	})
	if err != nil {
		_ = client.Disconnect(ctx)
		return nil, networkError("create index", err)
	}
	return &MongoCache{coll: coll, client: client}, nil
}

// Get returns the entry for key.
func (c *MongoCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var entry mongoEntry
	var found bool
	err := RetryWithBackoff(ctx, func() error {
		err := c.coll.FindOne(ctx, bson.M{"_id": key}).Decode(&entry)
		if errors.Is(err, mongo.ErrNoDocuments) {
			found = false
			return nil
		}
		if err != nil {
			return networkError("find", err)
		}
		found = true
		return nil
	})
	if err != nil || !found {
		return nil, false, err
	}
	if !entry.ExpiresAt.IsZero() && time.Now().After(entry.ExpiresAt) {
		return nil, false, nil
	}
	return entry.Data, true, nil
}

// Set upserts the entry for key.
func (c *MongoCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	// The TTL index would reap a zero expires_at immediately, so entries
	// without expiry drop the field instead.
	update := bson.M{
		"$set":   bson.M{"data": data},
		"$unset": bson.M{"expires_at": ""},
	}
	if ttl > 0 {
		update = bson.M{"$set": bson.M{"data": data, "expires_at": time.Now().Add(ttl).UTC()}}
	}
	return RetryWithBackoff(ctx, func() error {
		_, err := c.coll.UpdateOne(ctx, bson.M{"_id": key}, update, options.Update().SetUpsert(true))
		if err != nil {
			return networkError("upsert", err)
		}
		return nil
	})
}

// Delete removes the entry for key.
func (c *MongoCache) Delete(ctx context.Context, key string) error {
	return RetryWithBackoff(ctx, func() error {
		if _, err := c.coll.DeleteOne(ctx, bson.M{"_id": key}); err != nil {
			return networkError("delete", err)
		}
		return nil
	})
}

// Close disconnects the client if the cache was opened with DialMongo.
func (c *MongoCache) Close() error {
	if c.client == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return c.client.Disconnect(ctx)
}

var _ Cache = (*MongoCache)(nil)
