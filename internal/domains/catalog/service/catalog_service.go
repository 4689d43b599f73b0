package service

import (
	"context"

	"bookshelf-api/internal/domains/catalog/model"
	"bookshelf-api/internal/domains/catalog/repository"
)

// catalogService implements ServiceInterface as direct pass-through queries.
type catalogService struct {
	repo repository.RepositoryInterface
}

// NewCatalogService creates a catalog service over repo.
func NewCatalogService(repo repository.RepositoryInterface) ServiceInterface {
	return &catalogService{
		repo: repo,
	}
}

func (s *catalogService) ListAuthors(ctx context.Context) ([]model.Author, error) {
	return s.repo.ListAuthors(ctx)
}

func (s *catalogService) GetAuthor(ctx context.Context, rawID string) (*model.Author, error) {
	id, err := model.ParseID(rawID)
	if err != nil {
		return nil, err
	}
	return s.repo.GetAuthorByID(ctx, id)
}

// ListAuthorBooks looks the author up first so that an unknown author is a 404, not an empty list.
func (s *catalogService) ListAuthorBooks(ctx context.Context, rawID string) ([]model.Book, error) {
	a, err := s.GetAuthor(ctx, rawID)
	if err != nil {
		return nil, err
	}
	return s.repo.ListBooksByAuthor(ctx, a.ID)
}

func (s *catalogService) ListBooks(ctx context.Context) ([]model.PopulatedBook, error) {
	return s.repo.ListBooksWithAuthors(ctx)
}

func (s *catalogService) Ping(ctx context.Context) error {
	return s.repo.Ping(ctx)
}
