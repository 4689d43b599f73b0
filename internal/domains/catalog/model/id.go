package model

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// IDGenerator produces store identifiers.
type IDGenerator func() primitive.ObjectID

// NewID is the default IDGenerator.
func NewID() primitive.ObjectID {
	return primitive.NewObjectID()
}

// ParseID converts a path parameter into an ObjectID.
// Anything that is not 24 hex characters yields ErrInvalidIdentifier.
func ParseID(raw string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(raw)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: %q", ErrInvalidIdentifier, raw)
	}
	return id, nil
}

// SequentialIDs returns an IDGenerator that yields 000000000000000000000001, 000000000000000000000002, ...
// Used to get stable identifiers in tests and fixtures.
func SequentialIDs() IDGenerator {
	var n uint64
	return func() primitive.ObjectID {
		n++
		var id primitive.ObjectID
		for i := 0; i < 8; i++ {
			id[len(id)-1-i] = byte(n >> (8 * i))
		}
		return id
	}
}
