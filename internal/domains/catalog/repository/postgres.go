package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"bookshelf-api/internal/domains/catalog/model"
)

// postgresRepository implements RepositoryInterface using pgxpool.
// Documents live in the authors and books tables; IDs are stored as 24-char hex strings
// and rows are returned in insertion order.
type postgresRepository struct {
	pool *pgxpool.Pool
	opts options
}

// NewPostgresRepository creates a repository backed by a PostgreSQL pool.
// The tables are created by database.PostgresDB.EnsureSchema.
func NewPostgresRepository(pool *pgxpool.Pool, opts ...Option) RepositoryInterface {
	return &postgresRepository{
		pool: pool,
		opts: buildOptions(opts),
	}
}

func (r *postgresRepository) ListAuthors(ctx context.Context) ([]model.Author, error) {
	query := `
        SELECT id, name
        FROM authors
        ORDER BY seq
    `

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: listing authors: %v", model.ErrQueryFailed, err)
	}
	defer rows.Close()

	authors := []model.Author{}
	for rows.Next() {
		var hexID string
		var a model.Author
		if err := rows.Scan(&hexID, &a.Name); err != nil {
			return nil, fmt.Errorf("%w: scanning author: %v", model.ErrQueryFailed, err)
		}
		if a.ID, err = primitive.ObjectIDFromHex(hexID); err != nil {
			return nil, fmt.Errorf("decoding author %q: %w", hexID, err)
		}
		authors = append(authors, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: listing authors: %v", model.ErrQueryFailed, err)
	}
	return authors, nil
}

func (r *postgresRepository) GetAuthorByID(ctx context.Context, id primitive.ObjectID) (*model.Author, error) {
	query := `
        SELECT name
        FROM authors
        WHERE id = $1
    `

	a := model.Author{ID: id}
	err := r.pool.QueryRow(ctx, query, id.Hex()).Scan(&a.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrAuthorNotFound
		}
		return nil, fmt.Errorf("%w: getting author by id: %v", model.ErrQueryFailed, err)
	}
	return &a, nil
}

func (r *postgresRepository) ListBooksByAuthor(ctx context.Context, authorID primitive.ObjectID) ([]model.Book, error) {
	query := `
        SELECT id, title
        FROM books
        WHERE author = $1
        ORDER BY seq
    `

	rows, err := r.pool.Query(ctx, query, authorID.Hex())
	if err != nil {
		return nil, fmt.Errorf("%w: listing books by author: %v", model.ErrQueryFailed, err)
	}
	defer rows.Close()

	books := []model.Book{}
	for rows.Next() {
		var hexID string
		b := model.Book{Author: authorID}
		if err := rows.Scan(&hexID, &b.Title); err != nil {
			return nil, fmt.Errorf("%w: scanning book: %v", model.ErrQueryFailed, err)
		}
		if b.ID, err = primitive.ObjectIDFromHex(hexID); err != nil {
			return nil, fmt.Errorf("decoding book %q: %w", hexID, err)
		}
		books = append(books, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: listing books by author: %v", model.ErrQueryFailed, err)
	}
	return books, nil
}

func (r *postgresRepository) ListBooksWithAuthors(ctx context.Context) ([]model.PopulatedBook, error) {
	query := `
        SELECT b.id, b.title, a.id, a.name
        FROM books b
        LEFT JOIN authors a ON a.id = b.author
        ORDER BY b.seq
    `

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: populating books: %v", model.ErrQueryFailed, err)
	}
	defer rows.Close()

	books := []model.PopulatedBook{}
	for rows.Next() {
		var (
			hexID       string
			b           model.PopulatedBook
			authorHexID *string
			authorName  *string
		)
		if err := rows.Scan(&hexID, &b.Title, &authorHexID, &authorName); err != nil {
			return nil, fmt.Errorf("%w: scanning book: %v", model.ErrQueryFailed, err)
		}
		if b.ID, err = primitive.ObjectIDFromHex(hexID); err != nil {
			return nil, fmt.Errorf("decoding book %q: %w", hexID, err)
		}
		if authorHexID != nil {
			authorID, err := primitive.ObjectIDFromHex(*authorHexID)
			if err != nil {
				return nil, fmt.Errorf("decoding author %q: %w", *authorHexID, err)
			}
			b.Author = &model.Author{ID: authorID}
			if authorName != nil {
				b.Author.Name = *authorName
			}
		}
		books = append(books, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: populating books: %v", model.ErrQueryFailed, err)
	}
	return books, nil
}

func (r *postgresRepository) CreateAuthor(ctx context.Context, a *model.Author) (*model.Author, error) {
	created := *a
	if created.ID.IsZero() {
		created.ID = r.opts.newID()
	}

	query := `
        INSERT INTO authors (id, name)
        VALUES ($1, $2)
    `
	if _, err := r.pool.Exec(ctx, query, created.ID.Hex(), created.Name); err != nil {
		return nil, fmt.Errorf("failed to create author: %w", err)
	}
	return &created, nil
}

func (r *postgresRepository) CreateBook(ctx context.Context, b *model.Book) (*model.Book, error) {
	created := *b
	if created.ID.IsZero() {
		created.ID = r.opts.newID()
	}

	query := `
        INSERT INTO books (id, title, author)
        VALUES ($1, $2, $3)
    `
	if _, err := r.pool.Exec(ctx, query, created.ID.Hex(), created.Title, created.Author.Hex()); err != nil {
		return nil, fmt.Errorf("failed to create book: %w", err)
	}
	return &created, nil
}

func (r *postgresRepository) DeleteAllAuthors(ctx context.Context) (int64, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM authors`)
	if err != nil {
		return 0, fmt.Errorf("deleting authors: %w", err)
	}
	return tag.RowsAffected(), nil
}

func (r *postgresRepository) DeleteAllBooks(ctx context.Context) (int64, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM books`)
	if err != nil {
		return 0, fmt.Errorf("deleting books: %w", err)
	}
	return tag.RowsAffected(), nil
}

func (r *postgresRepository) Ping(ctx context.Context) error {
	if err := r.pool.Ping(ctx); err != nil {
		return fmt.Errorf("%w: %v", model.ErrStoreUnavailable, err)
	}
	return nil
}
