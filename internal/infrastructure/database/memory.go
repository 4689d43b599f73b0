package database

import (
	"context"
	"fmt"

	"github.com/hashicorp/go-memdb"
	"github.com/rs/zerolog/log"
)

// MemorySchema describes the authors and books tables for go-memdb.
// Records carry hex IDs so that StringFieldIndex can index them.
func MemorySchema() *memdb.DBSchema {
	return &memdb.DBSchema{
		Tables: map[string]*memdb.TableSchema{
			CollectionAuthors: {
				Name: CollectionAuthors,
				Indexes: map[string]*memdb.IndexSchema{
					"id": {
						Name:    "id",
						Unique:  true,
						Indexer: &memdb.StringFieldIndex{Field: "ID"},
					},
				},
			},
			CollectionBooks: {
				Name: CollectionBooks,
				Indexes: map[string]*memdb.IndexSchema{
					"id": {
						Name:    "id",
						Unique:  true,
						Indexer: &memdb.StringFieldIndex{Field: "ID"},
					},
					"author": {
						Name:         "author",
						Unique:       false,
						AllowMissing: true,
						Indexer:      &memdb.StringFieldIndex{Field: "AuthorID"},
					},
				},
			},
		},
	}
}

// MemoryDB is an in-process store used for local development and tests.
// Data does not survive a restart.
type MemoryDB struct {
	DB *memdb.MemDB
}

// NewMemoryDB creates an empty in-memory database.
func NewMemoryDB() (*MemoryDB, error) {
	schema := MemorySchema()
	if err := schema.Validate(); err != nil {
		return nil, fmt.Errorf("schema validating error: %w", err)
	}

	db, err := memdb.NewMemDB(schema)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize in-memory database: %w", err)
	}
	log.Info().Msg("[MEMORY] In-memory store initialized")
	return &MemoryDB{DB: db}, nil
}

// HealthCheck always succeeds once the database exists.
func (db *MemoryDB) HealthCheck(ctx context.Context) error {
	if db.DB == nil {
		return fmt.Errorf("memory database is not initialized")
	}
	return nil
}

// Close is a no-op.
func (db *MemoryDB) Close() error {
	return nil
}
