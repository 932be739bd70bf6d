package database

import (
	"context"
	"errors"

	"storefront-service/pkg/config"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// ErrNotConfigured is returned by Connect when no connection string is set.
var ErrNotConfigured = errors.New("database: DATABASE_URL is not set")

// Connect opens a MongoDB client and verifies connectivity with a ping.
// Connection failure is an expected condition for this service: the caller is
// expected to log the error and keep serving in degraded mode with a nil database.
func Connect(ctx context.Context, cfg *config.Config) (*mongo.Database, error) {
	if cfg.Mongo.URL == "" {
		return nil, ErrNotConfigured
	}

	ctx, cancel := context.WithTimeout(ctx, cfg.Mongo.ConnectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.Mongo.URL))
	if err != nil {
		return nil, err
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		// Best effort: the client never worked, drop it.
		_ = client.Disconnect(context.Background())
		return nil, err
	}

	return client.Database(cfg.Mongo.Database), nil
}
