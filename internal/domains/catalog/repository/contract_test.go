package repository_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookshelf-api/internal/domains/catalog/model"
	"bookshelf-api/internal/domains/catalog/repository"
)

// repoFactory returns a repository over an empty store.
type repoFactory func(t *testing.T, opts ...repository.Option) repository.RepositoryInterface

// testRepositoryContract runs the behaviour every backend must share.
func testRepositoryContract(t *testing.T, newRepo repoFactory) {
	ctx := context.Background()

	t.Run("empty store lists nothing", func(t *testing.T) {
		repo := newRepo(t)

		authors, err := repo.ListAuthors(ctx)
		require.NoError(t, err)
		assert.NotNil(t, authors)
		assert.Empty(t, authors)

		books, err := repo.ListBooksWithAuthors(ctx)
		require.NoError(t, err)
		assert.NotNil(t, books)
		assert.Empty(t, books)
	})

	t.Run("create assigns ids", func(t *testing.T) {
		repo := newRepo(t, repository.WithIDGenerator(model.SequentialIDs()))

		a, err := repo.CreateAuthor(ctx, &model.Author{Name: "J.K. Rowling"})
		require.NoError(t, err)
		assert.Equal(t, "000000000000000000000001", a.ID.Hex())

		b, err := repo.CreateBook(ctx, &model.Book{Title: "A", Author: a.ID})
		require.NoError(t, err)
		assert.Equal(t, "000000000000000000000002", b.ID.Hex())
		assert.Equal(t, a.ID, b.Author)
	})

	t.Run("create keeps a given id", func(t *testing.T) {
		repo := newRepo(t)
		id := model.NewID()

		a, err := repo.CreateAuthor(ctx, &model.Author{ID: id, Name: "Someone"})
		require.NoError(t, err)
		assert.Equal(t, id, a.ID)
	})

	t.Run("get author by id", func(t *testing.T) {
		repo := newRepo(t, repository.WithIDGenerator(model.SequentialIDs()))
		created, err := repo.CreateAuthor(ctx, &model.Author{Name: "J.R.R Tolkien "})
		require.NoError(t, err)

		got, err := repo.GetAuthorByID(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, *created, *got)

		_, err = repo.GetAuthorByID(ctx, model.NewID())
		assert.ErrorIs(t, err, model.ErrAuthorNotFound)
	})

	t.Run("authors are listed in insertion order", func(t *testing.T) {
		repo := newRepo(t, repository.WithIDGenerator(model.SequentialIDs()))
		for _, name := range []string{"first", "second", "first"} {
			_, err := repo.CreateAuthor(ctx, &model.Author{Name: name})
			require.NoError(t, err)
		}

		authors, err := repo.ListAuthors(ctx)
		require.NoError(t, err)
		require.Len(t, authors, 3)
		assert.Equal(t, "first", authors[0].Name)
		assert.Equal(t, "second", authors[1].Name)
		assert.Equal(t, "first", authors[2].Name)
	})

	t.Run("books by author", func(t *testing.T) {
		repo := newRepo(t, repository.WithIDGenerator(model.SequentialIDs()))
		tolkien, err := repo.CreateAuthor(ctx, &model.Author{Name: "Tolkien"})
		require.NoError(t, err)
		rowling, err := repo.CreateAuthor(ctx, &model.Author{Name: "Rowling"})
		require.NoError(t, err)

		for _, title := range []string{"A", "B", "B"} {
			_, err := repo.CreateBook(ctx, &model.Book{Title: title, Author: rowling.ID})
			require.NoError(t, err)
		}

		books, err := repo.ListBooksByAuthor(ctx, rowling.ID)
		require.NoError(t, err)
		require.Len(t, books, 3)
		assert.Equal(t, []string{"A", "B", "B"}, titles(books))

		none, err := repo.ListBooksByAuthor(ctx, tolkien.ID)
		require.NoError(t, err)
		assert.NotNil(t, none)
		assert.Empty(t, none)
	})

	t.Run("books are populated with their author", func(t *testing.T) {
		repo := newRepo(t, repository.WithIDGenerator(model.SequentialIDs()))
		rowling, err := repo.CreateAuthor(ctx, &model.Author{Name: "Rowling"})
		require.NoError(t, err)
		_, err = repo.CreateBook(ctx, &model.Book{Title: "A", Author: rowling.ID})
		require.NoError(t, err)
		_, err = repo.CreateBook(ctx, &model.Book{Title: "Orphan", Author: model.NewID()})
		require.NoError(t, err)

		books, err := repo.ListBooksWithAuthors(ctx)
		require.NoError(t, err)
		require.Len(t, books, 2)

		assert.Equal(t, "A", books[0].Title)
		require.NotNil(t, books[0].Author)
		assert.Equal(t, *rowling, *books[0].Author)

		assert.Equal(t, "Orphan", books[1].Title)
		assert.Nil(t, books[1].Author)
	})

	t.Run("delete all reports counts", func(t *testing.T) {
		repo := newRepo(t)
		a, err := repo.CreateAuthor(ctx, &model.Author{Name: "x"})
		require.NoError(t, err)
		_, err = repo.CreateAuthor(ctx, &model.Author{Name: "y"})
		require.NoError(t, err)
		_, err = repo.CreateBook(ctx, &model.Book{Title: "t", Author: a.ID})
		require.NoError(t, err)

		n, err := repo.DeleteAllAuthors(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(2), n)

		// books are left alone and now point at nothing
		books, err := repo.ListBooksWithAuthors(ctx)
		require.NoError(t, err)
		require.Len(t, books, 1)
		assert.Nil(t, books[0].Author)

		n, err = repo.DeleteAllBooks(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(1), n)

		n, err = repo.DeleteAllBooks(ctx)
		require.NoError(t, err)
		assert.Zero(t, n)
	})

	t.Run("ping", func(t *testing.T) {
		assert.NoError(t, newRepo(t).Ping(ctx))
	})
}

func titles(books []model.Book) []string {
	out := make([]string, 0, len(books))
	for _, b := range books {
		out = append(out, b.Title)
	}
	return out
}
