package model

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Book is a stored book document.
// Author holds the referenced author's ID; it is not checked against the authors collection.
type Book struct {
	ID     primitive.ObjectID `json:"_id" bson:"_id"`
	Title  string             `json:"title" bson:"title"`
	Author primitive.ObjectID `json:"author" bson:"author"`
}

// PopulatedBook is a Book whose author reference has been expanded at read time.
// Author is nil when the reference does not resolve.
type PopulatedBook struct {
	ID     primitive.ObjectID `json:"_id" bson:"_id"`
	Title  string             `json:"title" bson:"title"`
	Author *Author            `json:"author" bson:"author,omitempty"`
}

// Populate expands the book's author reference with a.
func (b *Book) Populate(a *Author) PopulatedBook {
	return PopulatedBook{
		ID:     b.ID,
		Title:  b.Title,
		Author: a,
	}
}
