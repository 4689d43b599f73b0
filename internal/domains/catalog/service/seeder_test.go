package service_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"bookshelf-api/internal/domains/catalog/model"
	"bookshelf-api/internal/domains/catalog/repository"
	repomock "bookshelf-api/internal/domains/catalog/repository/mocks"
	"bookshelf-api/internal/domains/catalog/service"
	"bookshelf-api/internal/infrastructure/database"
)

func newMemoryRepo(t *testing.T) repository.RepositoryInterface {
	t.Helper()
	db, err := database.NewMemoryDB()
	require.NoError(t, err)
	return repository.NewMemoryRepository(db.DB, repository.WithIDGenerator(model.SequentialIDs()))
}

func TestSeed(t *testing.T) {
	repo := newMemoryRepo(t)
	seeder := service.NewSeeder(repo, service.SeedOptions{WipeBooks: true})

	res, err := seeder.Seed(ctx)
	require.NoError(t, err)

	require.Len(t, res.Authors, 2)
	assert.Equal(t, "J.R.R Tolkien ", res.Authors[0].Name)
	assert.Equal(t, "J.K. Rowling", res.Authors[1].Name)

	require.Len(t, res.Books, 3)
	for i, title := range []string{"A", "B", "B"} {
		assert.Equal(t, title, res.Books[i].Title)
		assert.Equal(t, res.Authors[1].ID, res.Books[i].Author, "every book belongs to the second author")
	}

	authors, err := repo.ListAuthors(ctx)
	require.NoError(t, err)
	assert.Equal(t, res.Authors, authors)

	tolkienBooks, err := repo.ListBooksByAuthor(ctx, res.Authors[0].ID)
	require.NoError(t, err)
	assert.Empty(t, tolkienBooks)
}

func TestSeedIsRepeatable(t *testing.T) {
	repo := newMemoryRepo(t)
	seeder := service.NewSeeder(repo, service.SeedOptions{WipeBooks: true})

	_, err := seeder.Seed(ctx)
	require.NoError(t, err)
	res, err := seeder.Seed(ctx)
	require.NoError(t, err)

	assert.Equal(t, int64(2), res.DeletedAuthors)
	assert.Equal(t, int64(3), res.DeletedBooks)

	authors, err := repo.ListAuthors(ctx)
	require.NoError(t, err)
	assert.Len(t, authors, 2)

	books, err := repo.ListBooksWithAuthors(ctx)
	require.NoError(t, err)
	require.Len(t, books, 3)
	for _, b := range books {
		require.NotNil(t, b.Author)
		assert.Equal(t, "J.K. Rowling", b.Author.Name)
	}
}

func TestSeedWithoutWipingBooks(t *testing.T) {
	repo := newMemoryRepo(t)
	seeder := service.NewSeeder(repo, service.SeedOptions{WipeBooks: false})

	_, err := seeder.Seed(ctx)
	require.NoError(t, err)
	res, err := seeder.Seed(ctx)
	require.NoError(t, err)
	assert.Zero(t, res.DeletedBooks)

	books, err := repo.ListBooksWithAuthors(ctx)
	require.NoError(t, err)
	require.Len(t, books, 6)

	// The first run's books point at authors that were deleted.
	orphans := 0
	for _, b := range books {
		if b.Author == nil {
			orphans++
		}
	}
	assert.Equal(t, 3, orphans)
}

func TestSeedStopsAtFirstFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockRepo := repomock.NewMockRepositoryInterface(ctrl)
	seeder := service.NewSeeder(mockRepo, service.SeedOptions{WipeBooks: true})

	insertErr := errors.New("write conflict")
	tolkien := &model.Author{ID: model.NewID(), Name: "J.R.R Tolkien "}

	gomock.InOrder(
		mockRepo.EXPECT().DeleteAllBooks(gomock.Any()).Return(int64(0), nil),
		mockRepo.EXPECT().DeleteAllAuthors(gomock.Any()).Return(int64(0), nil),
		mockRepo.EXPECT().CreateAuthor(gomock.Any(), &model.Author{Name: "J.R.R Tolkien "}).Return(tolkien, nil),
		mockRepo.EXPECT().CreateAuthor(gomock.Any(), &model.Author{Name: "J.K. Rowling"}).Return(nil, insertErr),
	)

	res, err := seeder.Seed(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrSeedFailed)
	assert.ErrorIs(t, err, insertErr)
	assert.Equal(t, []model.Author{*tolkien}, res.Authors)
	assert.Empty(t, res.Books)
}

func TestSeedFailsWhenWipeFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockRepo := repomock.NewMockRepositoryInterface(ctrl)
	seeder := service.NewSeeder(mockRepo, service.SeedOptions{WipeBooks: false})

	mockRepo.EXPECT().DeleteAllAuthors(gomock.Any()).Return(int64(0), model.ErrStoreUnavailable)

	_, err := seeder.Seed(ctx)
	assert.ErrorIs(t, err, model.ErrSeedFailed)
	assert.ErrorIs(t, err, model.ErrStoreUnavailable)
}
