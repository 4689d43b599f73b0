package model

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Author is a stored author document.
// Names are free text; duplicates are allowed.
type Author struct {
	ID   primitive.ObjectID `json:"_id" bson:"_id"`
	Name string             `json:"name" bson:"name"`
}
