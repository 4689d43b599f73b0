package repository

import (
	"context"
	"fmt"

	"github.com/hashicorp/go-memdb"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"bookshelf-api/internal/domains/catalog/model"
	"bookshelf-api/internal/infrastructure/database"
)

// memoryRepository implements RepositoryInterface on top of go-memdb.
// go-memdb indexes need string fields, so documents are stored as records keyed by hex IDs.
type memoryRepository struct {
	db   *memdb.MemDB
	opts options
}

// NewMemoryRepository creates a repository backed by an in-process go-memdb database.
func NewMemoryRepository(db *memdb.MemDB, opts ...Option) RepositoryInterface {
	return &memoryRepository{
		db:   db,
		opts: buildOptions(opts),
	}
}

type authorRecord struct {
	ID   string
	Name string
}

type bookRecord struct {
	ID       string
	Title    string
	AuthorID string
}

func authorToRecord(a *model.Author) *authorRecord {
	return &authorRecord{ID: a.ID.Hex(), Name: a.Name}
}

func (r *authorRecord) toModel() (model.Author, error) {
	id, err := primitive.ObjectIDFromHex(r.ID)
	if err != nil {
		return model.Author{}, fmt.Errorf("decoding author %q: %w", r.ID, err)
	}
	return model.Author{ID: id, Name: r.Name}, nil
}

func bookToRecord(b *model.Book) *bookRecord {
	return &bookRecord{ID: b.ID.Hex(), Title: b.Title, AuthorID: b.Author.Hex()}
}

func (r *bookRecord) toModel() (model.Book, error) {
	id, err := primitive.ObjectIDFromHex(r.ID)
	if err != nil {
		return model.Book{}, fmt.Errorf("decoding book %q: %w", r.ID, err)
	}
	authorID, err := primitive.ObjectIDFromHex(r.AuthorID)
	if err != nil {
		return model.Book{}, fmt.Errorf("decoding book %q author: %w", r.ID, err)
	}
	return model.Book{ID: id, Title: r.Title, Author: authorID}, nil
}

func (r *memoryRepository) ListAuthors(ctx context.Context) ([]model.Author, error) {
	txn := r.db.Txn(false)
	defer txn.Abort()

	it, err := txn.Get(database.CollectionAuthors, "id")
	if err != nil {
		return nil, fmt.Errorf("listing authors: %w", err)
	}

	authors := []model.Author{}
	for raw := it.Next(); raw != nil; raw = it.Next() {
		a, err := raw.(*authorRecord).toModel()
		if err != nil {
			return nil, fmt.Errorf("listing authors: %w", err)
		}
		authors = append(authors, a)
	}
	return authors, nil
}

func (r *memoryRepository) GetAuthorByID(ctx context.Context, id primitive.ObjectID) (*model.Author, error) {
	txn := r.db.Txn(false)
	defer txn.Abort()

	a, err := r.findAuthor(txn, id.Hex())
	if err != nil {
		return nil, fmt.Errorf("getting author: %w", err)
	}
	if a == nil {
		return nil, model.ErrAuthorNotFound
	}
	return a, nil
}

func (r *memoryRepository) findAuthor(txn *memdb.Txn, hexID string) (*model.Author, error) {
	raw, err := txn.First(database.CollectionAuthors, "id", hexID)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, nil
	}
	a, err := raw.(*authorRecord).toModel()
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *memoryRepository) ListBooksByAuthor(ctx context.Context, authorID primitive.ObjectID) ([]model.Book, error) {
	txn := r.db.Txn(false)
	defer txn.Abort()

	it, err := txn.Get(database.CollectionBooks, "author", authorID.Hex())
	if err != nil {
		return nil, fmt.Errorf("listing books by author: %w", err)
	}

	books := []model.Book{}
	for raw := it.Next(); raw != nil; raw = it.Next() {
		b, err := raw.(*bookRecord).toModel()
		if err != nil {
			return nil, fmt.Errorf("listing books by author: %w", err)
		}
		books = append(books, b)
	}
	return books, nil
}

func (r *memoryRepository) ListBooksWithAuthors(ctx context.Context) ([]model.PopulatedBook, error) {
	txn := r.db.Txn(false)
	defer txn.Abort()

	it, err := txn.Get(database.CollectionBooks, "id")
	if err != nil {
		return nil, fmt.Errorf("listing books: %w", err)
	}

	books := []model.PopulatedBook{}
	for raw := it.Next(); raw != nil; raw = it.Next() {
		rec := raw.(*bookRecord)
		b, err := rec.toModel()
		if err != nil {
			return nil, fmt.Errorf("listing books: %w", err)
		}
		a, err := r.findAuthor(txn, rec.AuthorID)
		if err != nil {
			return nil, fmt.Errorf("populating book %s: %w", rec.ID, err)
		}
		books = append(books, b.Populate(a))
	}
	return books, nil
}

func (r *memoryRepository) CreateAuthor(ctx context.Context, a *model.Author) (*model.Author, error) {
	created := *a
	if created.ID.IsZero() {
		created.ID = r.opts.newID()
	}

	txn := r.db.Txn(true)
	defer txn.Abort()

	if err := txn.Insert(database.CollectionAuthors, authorToRecord(&created)); err != nil {
		return nil, fmt.Errorf("failed to create author: %w", err)
	}
	txn.Commit()
	return &created, nil
}

func (r *memoryRepository) CreateBook(ctx context.Context, b *model.Book) (*model.Book, error) {
	created := *b
	if created.ID.IsZero() {
		created.ID = r.opts.newID()
	}

	txn := r.db.Txn(true)
	defer txn.Abort()

	if err := txn.Insert(database.CollectionBooks, bookToRecord(&created)); err != nil {
		return nil, fmt.Errorf("failed to create book: %w", err)
	}
	txn.Commit()
	return &created, nil
}

func (r *memoryRepository) DeleteAllAuthors(ctx context.Context) (int64, error) {
	return r.deleteAll(database.CollectionAuthors)
}

func (r *memoryRepository) DeleteAllBooks(ctx context.Context) (int64, error) {
	return r.deleteAll(database.CollectionBooks)
}

func (r *memoryRepository) deleteAll(table string) (int64, error) {
	txn := r.db.Txn(true)
	defer txn.Abort()

	n, err := txn.DeleteAll(table, "id")
	if err != nil {
		return 0, fmt.Errorf("deleting %s: %w", table, err)
	}
	txn.Commit()
	return int64(n), nil
}

func (r *memoryRepository) Ping(ctx context.Context) error {
	if r.db == nil {
		return model.ErrStoreUnavailable
	}
	return nil
}
