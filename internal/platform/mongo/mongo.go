// Package mongo opens the document store used by the person, detail and
// identity stores.
package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"askthem/internal/platform/config"
	"askthem/pkg/platform/sentinel"
)

// Collection names.
const (
	PeopleCollection     = "people"
	DetailsCollection    = "person_details"
	IdentitiesCollection = "identities"
)

// Connect dials MongoDB, verifies the connection and returns the configured
// database. Callers own client disconnect via db.Client().Disconnect.
func Connect(ctx context.Context, cfg config.MongoConfig) (*mongo.Database, error) {
	opts := options.Client().ApplyURI(cfg.URI)
	if cfg.Timeout > 0 {
		opts.SetTimeout(cfg.Timeout)
	}
	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("ping mongo: %w", err)
	}
	db := client.Database(cfg.Database)
	if err := EnsureIndexes(ctx, db); err != nil {
		_ = client.Disconnect(ctx)
		return nil, err
	}
	return db, nil
}

// EnsureIndexes creates the indexes the stores' queries rely on.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	people := []mongo.IndexModel{
		{Keys: bson.D{{Key: "jurisdiction_id", Value: 1}}},
		{Keys: bson.D{{Key: "type", Value: 1}}},
		{Keys: bson.D{{Key: "featured", Value: 1}}},
		{Keys: bson.D{{Key: "active", Value: 1}, {Key: "chamber", Value: 1}, {Key: "last_name", Value: 1}}},
		{Keys: bson.D{{Key: "roles.district", Value: 1}}},
	}
	if _, err := db.Collection(PeopleCollection).Indexes().CreateMany(ctx, people); err != nil {
		return fmt.Errorf("create people indexes: %w", err)
	}
	identities := []mongo.IndexModel{
		{Keys: bson.D{{Key: "person_id", Value: 1}}},
	}
	if _, err := db.Collection(IdentitiesCollection).Indexes().CreateMany(ctx, identities); err != nil {
		return fmt.Errorf("create identity indexes: %w", err)
	}
	return nil
}

// WrapError annotates a driver error with op. Network failures and timeouts
// also match sentinel.ErrUnavailable.
func WrapError(op string, err error) error {
	if mongo.IsNetworkError(err) || mongo.IsTimeout(err) {
		return fmt.Errorf("%s: %w: %w", op, sentinel.ErrUnavailable, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}
