package model_test

import (
	"testing"

	"storefront-service/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestSerializeDocumentRenamesNativeID(t *testing.T) {
	oid := primitive.NewObjectID()
	doc := bson.M{"_id": oid, "title": "Clear Whey"}

	out := model.SerializeDocument(doc)

	require.NotContains(t, out, "_id")
	assert.Equal(t, oid.Hex(), out["id"])
	assert.Equal(t, "Clear Whey", out["title"])
}

func TestSerializeDocumentConvertsNestedObjectIDs(t *testing.T) {
	ref := primitive.NewObjectID()
	doc := bson.M{"_id": primitive.NewObjectID(), "product_ref": ref}

	out := model.SerializeDocument(doc)

	assert.Equal(t, ref.Hex(), out["product_ref"])
}

func TestSerializeDocumentIsIdempotent(t *testing.T) {
	doc := bson.M{"_id": primitive.NewObjectID(), "title": "Vegan Protein"}

	once := model.SerializeDocument(doc)
	twice := model.SerializeDocument(once)

	assert.Equal(t, once, twice)
}

func TestSerializeDocumentDoesNotMutateInput(t *testing.T) {
	oid := primitive.NewObjectID()
	doc := bson.M{"_id": oid}

	_ = model.SerializeDocument(doc)

	assert.Equal(t, oid, doc["_id"])
	assert.NotContains(t, doc, "id")
}

func TestSerializeDocumentEmptyAndNil(t *testing.T) {
	assert.Nil(t, model.SerializeDocument(nil))
	assert.Empty(t, model.SerializeDocument(bson.M{}))
}

func TestSerializeDocumentNilIDLeftAlone(t *testing.T) {
	out := model.SerializeDocument(bson.M{"_id": nil, "title": "x"})

	assert.Contains(t, out, "_id")
	assert.NotContains(t, out, "id")
}

func TestSerializeDocumentStringifiesForeignIDTypes(t *testing.T) {
	out := model.SerializeDocument(bson.M{"_id": int64(42)})

	assert.Equal(t, "42", out["id"])
}
