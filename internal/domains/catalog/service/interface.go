package service

import (
	"context"

	"bookshelf-api/internal/domains/catalog/model"
)

// ServiceInterface exposes the read operations behind the HTTP routes.
// Identifiers arrive as raw path strings; malformed ones fail with model.ErrInvalidIdentifier.
type ServiceInterface interface {
	ListAuthors(ctx context.Context) ([]model.Author, error)
	GetAuthor(ctx context.Context, rawID string) (*model.Author, error)
	ListAuthorBooks(ctx context.Context, rawID string) ([]model.Book, error)
	ListBooks(ctx context.Context) ([]model.PopulatedBook, error)
	Ping(ctx context.Context) error
}
