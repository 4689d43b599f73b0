package repository_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"bookshelf-api/internal/domains/catalog/repository"
	"bookshelf-api/internal/infrastructure/database"
)

func newMemoryRepo(t *testing.T, opts ...repository.Option) repository.RepositoryInterface {
	t.Helper()

	db, err := database.NewMemoryDB()
	require.NoError(t, err)
	return repository.NewMemoryRepository(db.DB, opts...)
}

func TestMemoryRepository(t *testing.T) {
	testRepositoryContract(t, newMemoryRepo)
}
