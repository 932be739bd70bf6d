package store

import (
	"context"
	"regexp"
	"sort"
	"time"

	"storefront-service/internal/model"
	"storefront-service/prometheus"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// ProductStore provides access to the product collection
type ProductStore struct {
	coll *mongo.Collection
}

// Find returns all product documents matching the given filters. An empty
// category and search return the whole collection, in natural store order.
func (s *ProductStore) Find(ctx context.Context, category, search string) ([]bson.M, error) {
	defer prometheus.TrackDBOperation("find_products")(time.Now())

	cursor, err := s.coll.Find(ctx, productFilter(category, search))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []bson.M
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

// Categories returns the distinct non-empty category values, sorted
// lexicographically.
func (s *ProductStore) Categories(ctx context.Context) ([]string, error) {
	defer prometheus.TrackDBOperation("distinct_categories")(time.Now())

	values, err := s.coll.Distinct(ctx, "category", bson.M{})
	if err != nil {
		return nil, err
	}
	return sortedCategories(values), nil
}

// Count returns the number of product documents
func (s *ProductStore) Count(ctx context.Context) (int64, error) {
	defer prometheus.TrackDBOperation("count_products")(time.Now())

	return s.coll.CountDocuments(ctx, bson.M{})
}

// Insert stores a single product and returns its assigned identifier as a
// hex string.
func (s *ProductStore) Insert(ctx context.Context, p model.Product) (string, error) {
	defer prometheus.TrackDBOperation("insert_product")(time.Now())

	result, err := s.coll.InsertOne(ctx, p)
	if err != nil {
		return "", err
	}
	return insertedID(result), nil
}

// productFilter builds the query filter for product listing. Category is an
// anchored case-insensitive equality match; search is an unanchored
// case-insensitive substring match over title, description and tags. Both
// clauses combine with logical AND. User input is matched literally, so regex
// metacharacters are escaped.
func productFilter(category, search string) bson.M {
	filter := bson.M{}
	if category != "" {
		filter["category"] = bson.M{
			"$regex":   "^" + regexp.QuoteMeta(category) + "$",
			"$options": "i",
		}
	}
	if search != "" {
		pattern := bson.M{
			"$regex":   regexp.QuoteMeta(search),
			"$options": "i",
		}
		filter["$or"] = bson.A{
			bson.M{"title": pattern},
			bson.M{"description": pattern},
			bson.M{"tags": pattern},
		}
	}
	return filter
}

// sortedCategories drops non-string and empty values from a distinct result
// and sorts the remainder.
func sortedCategories(values []interface{}) []string {
	categories := make([]string, 0, len(values))
	for _, v := range values {
		if s, ok := v.(string); ok && s != "" {
			categories = append(categories, s)
		}
	}
	sort.Strings(categories)
	return categories
}

// insertedID renders an insert result's assigned identifier as a string
func insertedID(result *mongo.InsertOneResult) string {
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		return oid.Hex()
	}
	if s, ok := result.InsertedID.(string); ok {
		return s
	}
	return ""
}
