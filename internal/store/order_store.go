package store

import (
	"context"
	"time"

	"storefront-service/internal/model"
	"storefront-service/prometheus"

	"go.mongodb.org/mongo-driver/mongo"
)

// OrderStore provides access to the order collection
type OrderStore struct {
	coll *mongo.Collection
}

// Insert stores a single order and returns its assigned identifier as a
// hex string.
func (s *OrderStore) Insert(ctx context.Context, order model.Order) (string, error) {
	defer prometheus.TrackDBOperation("insert_order")(time.Now())

	result, err := s.coll.InsertOne(ctx, order)
	if err != nil {
		return "", err
	}
	return insertedID(result), nil
}
