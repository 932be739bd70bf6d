package model

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SerializeDocument converts a stored document into its transport form: the
// native "_id" key is renamed to "id" with its value in canonical string form,
// and any other ObjectID value in the document is converted to its hex string.
// The input is never mutated; a nil or empty document is returned unchanged.
// Applying SerializeDocument to an already-serialized document is a no-op.
func SerializeDocument(doc bson.M) bson.M {
	if len(doc) == 0 {
		return doc
	}

	out := make(bson.M, len(doc))
	for k, v := range doc {
		out[k] = v
	}

	if id, ok := out["_id"]; ok && id != nil {
		delete(out, "_id")
		out["id"] = stringifyID(id)
	}

	for k, v := range out {
		if oid, ok := v.(primitive.ObjectID); ok {
			out[k] = oid.Hex()
		}
	}

	return out
}

func stringifyID(v any) string {
	switch id := v.(type) {
	case primitive.ObjectID:
		return id.Hex()
	case string:
		return id
	default:
		return fmt.Sprintf("%v", id)
	}
}
