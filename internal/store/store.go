package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Collection names used by this service.
const (
	ProductCollection = "product"
	OrderCollection   = "order"
)

// Store wraps the document database and hands out per-collection accessors.
// It is constructed once in main and injected into handlers; a nil Store means
// the database was unreachable at startup and the service runs degraded.
type Store struct {
	db *mongo.Database
}

// New creates a Store over an established database handle
func New(db *mongo.Database) *Store {
	return &Store{db: db}
}

// Products returns the product collection accessor
func (s *Store) Products() *ProductStore {
	return &ProductStore{coll: s.db.Collection(ProductCollection)}
}

// Orders returns the order collection accessor
func (s *Store) Orders() *OrderStore {
	return &OrderStore{coll: s.db.Collection(OrderCollection)}
}

// Name returns the name of the underlying database
func (s *Store) Name() string {
	return s.db.Name()
}

// CollectionNames lists the collection names present in the database
func (s *Store) CollectionNames(ctx context.Context) ([]string, error) {
	return s.db.ListCollectionNames(ctx, bson.M{})
}
