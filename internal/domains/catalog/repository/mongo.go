package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"bookshelf-api/internal/domains/catalog/model"
	"bookshelf-api/internal/infrastructure/database"
)

// mongoRepository implements RepositoryInterface against a MongoDB database.
type mongoRepository struct {
	db      *mongo.Database
	authors *mongo.Collection
	books   *mongo.Collection
	opts    options
}

// NewMongoRepository creates a repository over the authors and books collections of db.
func NewMongoRepository(db *mongo.Database, opts ...Option) RepositoryInterface {
	return &mongoRepository{
		db:      db,
		authors: db.Collection(database.CollectionAuthors),
		books:   db.Collection(database.CollectionBooks),
		opts:    buildOptions(opts),
	}
}

func (r *mongoRepository) ListAuthors(ctx context.Context) ([]model.Author, error) {
	cur, err := r.authors.Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("%w: listing authors: %v", model.ErrQueryFailed, err)
	}

	authors := []model.Author{}
	if err := cur.All(ctx, &authors); err != nil {
		return nil, fmt.Errorf("%w: decoding authors: %v", model.ErrQueryFailed, err)
	}
	if authors == nil {
		authors = []model.Author{}
	}
	return authors, nil
}

func (r *mongoRepository) GetAuthorByID(ctx context.Context, id primitive.ObjectID) (*model.Author, error) {
	var a model.Author
	err := r.authors.FindOne(ctx, bson.M{"_id": id}).Decode(&a)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, model.ErrAuthorNotFound
		}
		return nil, fmt.Errorf("%w: getting author by id: %v", model.ErrQueryFailed, err)
	}
	return &a, nil
}

func (r *mongoRepository) ListBooksByAuthor(ctx context.Context, authorID primitive.ObjectID) ([]model.Book, error) {
	cur, err := r.books.Find(ctx, bson.M{"author": authorID})
	if err != nil {
		return nil, fmt.Errorf("%w: listing books by author: %v", model.ErrQueryFailed, err)
	}

	books := []model.Book{}
	if err := cur.All(ctx, &books); err != nil {
		return nil, fmt.Errorf("%w: decoding books: %v", model.ErrQueryFailed, err)
	}
	if books == nil {
		books = []model.Book{}
	}
	return books, nil
}

// ListBooksWithAuthors joins each book with its author using $lookup.
// $unwind keeps books whose reference matches nothing; their author field is dropped and decodes as nil.
func (r *mongoRepository) ListBooksWithAuthors(ctx context.Context) ([]model.PopulatedBook, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: database.CollectionAuthors},
			{Key: "localField", Value: "author"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "author"},
		}}},
		{{Key: "$unwind", Value: bson.D{
			{Key: "path", Value: "$author"},
			{Key: "preserveNullAndEmptyArrays", Value: true},
		}}},
	}

	cur, err := r.books.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("%w: populating books: %v", model.ErrQueryFailed, err)
	}

	books := []model.PopulatedBook{}
	if err := cur.All(ctx, &books); err != nil {
		return nil, fmt.Errorf("%w: decoding populated books: %v", model.ErrQueryFailed, err)
	}
	if books == nil {
		books = []model.PopulatedBook{}
	}
	return books, nil
}

func (r *mongoRepository) CreateAuthor(ctx context.Context, a *model.Author) (*model.Author, error) {
	created := *a
	if created.ID.IsZero() {
		created.ID = r.opts.newID()
	}
	if _, err := r.authors.InsertOne(ctx, created); err != nil {
		return nil, fmt.Errorf("failed to create author: %w", err)
	}
	return &created, nil
}

func (r *mongoRepository) CreateBook(ctx context.Context, b *model.Book) (*model.Book, error) {
	created := *b
	if created.ID.IsZero() {
		created.ID = r.opts.newID()
	}
	if _, err := r.books.InsertOne(ctx, created); err != nil {
		return nil, fmt.Errorf("failed to create book: %w", err)
	}
	return &created, nil
}

func (r *mongoRepository) DeleteAllAuthors(ctx context.Context) (int64, error) {
	res, err := r.authors.DeleteMany(ctx, bson.D{})
	if err != nil {
		return 0, fmt.Errorf("deleting authors: %w", err)
	}
	return res.DeletedCount, nil
}

func (r *mongoRepository) DeleteAllBooks(ctx context.Context) (int64, error) {
	res, err := r.books.DeleteMany(ctx, bson.D{})
	if err != nil {
		return 0, fmt.Errorf("deleting books: %w", err)
	}
	return res.DeletedCount, nil
}

func (r *mongoRepository) Ping(ctx context.Context) error {
	if err := r.db.Client().Ping(ctx, readpref.Primary()); err != nil {
		return fmt.Errorf("%w: %v", model.ErrStoreUnavailable, err)
	}
	return nil
}
