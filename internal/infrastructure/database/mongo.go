package database

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.mongodb.org/mongo-driver/x/mongo/driver/connstring"
)

// DefaultMongoDatabase is used when the connection string names no database.
const DefaultMongoDatabase = "books"

// MongoConfig holds the MongoDB connection settings.
type MongoConfig struct {
	URL string
	RetryConfig
}

// MongoDB wraps the client and the database selected by the connection string.
type MongoDB struct {
	Client   *mongo.Client
	Database *mongo.Database
	Config   *MongoConfig
}

// NewMongoDB creates an unconnected MongoDB; call Connect before use.
func NewMongoDB(config *MongoConfig) *MongoDB {
	return &MongoDB{Config: config}
}

// DatabaseName extracts the database from a mongodb:// URL, e.g. "books" for mongodb://localhost/books.
func DatabaseName(url string) (string, error) {
	cs, err := connstring.ParseAndValidate(url)
	if err != nil {
		return "", fmt.Errorf("invalid mongo url: %w", err)
	}
	if cs.Database == "" {
		return DefaultMongoDatabase, nil
	}
	return cs.Database, nil
}

// Connect establishes the client, retrying with exponential backoff until a ping succeeds.
func (db *MongoDB) Connect(ctx context.Context) error {
	log.Info().Msg("[MONGO] Initializing MongoDB connection...")

	name, err := DatabaseName(db.Config.URL)
	if err != nil {
		return err
	}

	var lastErr error
	for attempt := 1; attempt <= db.Config.MaxRetries; attempt++ {
		log.Info().Int("attempt", attempt).Int("max", db.Config.MaxRetries).Msg("[MONGO] Connection attempt")

		client, err := db.connectOnce(ctx)
		if err == nil {
			db.Client = client
			db.Database = client.Database(name)
			log.Info().Str("database", name).Int("attempt", attempt).Msg("[MONGO] Connected")
			return nil
		}
		lastErr = err
		log.Warn().Err(err).Int("attempt", attempt).Msg("[MONGO] Attempt failed")

		if attempt < db.Config.MaxRetries {
			delay := db.Config.backoff(attempt)
			log.Info().Dur("delay", delay).Msg("[MONGO] Retrying")
			if err := sleep(ctx, delay); err != nil {
				return err
			}
		}
	}

	return fmt.Errorf("failed to connect after %d attempts: %w", db.Config.MaxRetries, lastErr)
}

func (db *MongoDB) connectOnce(ctx context.Context) (*mongo.Client, error) {
	connectCtx, cancel := context.WithTimeout(ctx, db.Config.ConnectTimeout)
	defer cancel()

	opts := options.Client().
		ApplyURI(db.Config.URL).
		SetConnectTimeout(db.Config.ConnectTimeout)

	client, err := mongo.Connect(connectCtx, opts)
	if err != nil {
		return nil, err
	}
	if err := client.Ping(connectCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}
	return client, nil
}

// HealthCheck pings the primary.
func (db *MongoDB) HealthCheck(ctx context.Context) error {
	if db.Client == nil {
		return fmt.Errorf("mongo client is not initialized")
	}

	healthCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := db.Client.Ping(healthCtx, readpref.Primary()); err != nil {
		return fmt.Errorf("mongo ping failed: %w", err)
	}
	return nil
}

// Close disconnects the client. Safe to call when Connect never succeeded.
func (db *MongoDB) Close() error {
	if db.Client == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	log.Info().Msg("[MONGO] Disconnecting")
	return db.Client.Disconnect(ctx)
}
