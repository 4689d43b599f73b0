package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"bookshelf-api/internal/domains/catalog/model"
	"bookshelf-api/internal/domains/catalog/repository"
)

// Fixed sample data. The trailing space in Tolkien's name and the duplicate "B" title are intentional.
var (
	SeedAuthorNames = []string{"J.R.R Tolkien ", "J.K. Rowling"}
	SeedBookTitles  = []string{"A", "B", "B"}
)

// SeedOptions controls what is wiped before the sample data is inserted.
type SeedOptions struct {
	// WipeBooks deletes books as well as authors. Without it, reseeding leaves the previous
	// books behind pointing at authors that no longer exist.
	WipeBooks bool
}

// SeedResult reports what a seed run removed and inserted.
type SeedResult struct {
	DeletedAuthors int64
	DeletedBooks   int64
	Authors        []model.Author
	Books          []model.Book
}

// Seeder resets the catalog to the fixed sample data.
type Seeder struct {
	repo repository.RepositoryInterface
	opts SeedOptions
}

func NewSeeder(repo repository.RepositoryInterface, opts SeedOptions) *Seeder {
	return &Seeder{repo: repo, opts: opts}
}

// Seed wipes the collections and inserts the sample authors and books one at a time.
// It stops at the first failure and does not roll back what was already written.
func (s *Seeder) Seed(ctx context.Context) (*SeedResult, error) {
	log.Warn().Bool("wipe_books", s.opts.WipeBooks).Msg("Resetting database!")

	res := &SeedResult{}
	var err error

	if s.opts.WipeBooks {
		if res.DeletedBooks, err = s.repo.DeleteAllBooks(ctx); err != nil {
			return res, fmt.Errorf("%w: %w", model.ErrSeedFailed, err)
		}
	}
	if res.DeletedAuthors, err = s.repo.DeleteAllAuthors(ctx); err != nil {
		return res, fmt.Errorf("%w: %w", model.ErrSeedFailed, err)
	}

	for _, name := range SeedAuthorNames {
		a, err := s.repo.CreateAuthor(ctx, &model.Author{Name: name})
		if err != nil {
			return res, fmt.Errorf("%w: author %q: %w", model.ErrSeedFailed, name, err)
		}
		res.Authors = append(res.Authors, *a)
	}

	// Every sample book belongs to the last author inserted.
	owner := res.Authors[len(res.Authors)-1]
	for _, title := range SeedBookTitles {
		b, err := s.repo.CreateBook(ctx, &model.Book{Title: title, Author: owner.ID})
		if err != nil {
			return res, fmt.Errorf("%w: book %q: %w", model.ErrSeedFailed, title, err)
		}
		res.Books = append(res.Books, *b)
	}

	log.Info().
		Int64("deleted_authors", res.DeletedAuthors).
		Int64("deleted_books", res.DeletedBooks).
		Int("authors", len(res.Authors)).
		Int("books", len(res.Books)).
		Msg("Database seeded")

	return res, nil
}
