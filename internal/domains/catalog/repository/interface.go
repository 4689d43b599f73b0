package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"bookshelf-api/internal/domains/catalog/model"
)

//go:generate mockgen -source=interface.go -destination=mocks/mock_repository.go -package=mocks

// RepositoryInterface defines data access for the authors and books collections.
// Every backend (mongo, postgres, memory) implements the same contract.
type RepositoryInterface interface {
	// ListAuthors returns every stored author, never nil.
	ListAuthors(ctx context.Context) ([]model.Author, error)

	// GetAuthorByID returns model.ErrAuthorNotFound when no author has the ID.
	GetAuthorByID(ctx context.Context, id primitive.ObjectID) (*model.Author, error)

	// ListBooksByAuthor returns the books whose author reference equals authorID, never nil.
	ListBooksByAuthor(ctx context.Context, authorID primitive.ObjectID) ([]model.Book, error)

	// ListBooksWithAuthors returns every book with its author reference expanded.
	// Unresolved references leave Author nil.
	ListBooksWithAuthors(ctx context.Context) ([]model.PopulatedBook, error)

	// CreateAuthor stores a, assigning an ID when a.ID is zero.
	CreateAuthor(ctx context.Context, a *model.Author) (*model.Author, error)

	// CreateBook stores b, assigning an ID when b.ID is zero.
	CreateBook(ctx context.Context, b *model.Book) (*model.Book, error)

	// DeleteAllAuthors empties the authors collection and reports how many were removed.
	DeleteAllAuthors(ctx context.Context) (int64, error)

	// DeleteAllBooks empties the books collection and reports how many were removed.
	DeleteAllBooks(ctx context.Context) (int64, error)

	// Ping checks that the backing store is reachable.
	Ping(ctx context.Context) error
}

// Option configures a repository.
type Option func(*options)

type options struct {
	newID model.IDGenerator
}

// WithIDGenerator overrides how identifiers are assigned on create.
func WithIDGenerator(gen model.IDGenerator) Option {
	return func(o *options) {
		o.newID = gen
	}
}

func buildOptions(opts []Option) options {
	o := options{newID: model.NewID}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
