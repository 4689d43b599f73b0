package config

import (
	"bookshelf-api/internal/infrastructure/database"
)

func (c *Config) retryConfig() database.RetryConfig {
	return database.RetryConfig{
		MaxRetries:     c.Store.MaxRetries,
		RetryDelay:     c.Store.RetryDelay,
		ConnectTimeout: c.Store.ConnectTimeout,
	}
}

// MongoConfig returns the MongoDB connection settings.
func (c *Config) MongoConfig() *database.MongoConfig {
	return &database.MongoConfig{
		URL:         c.Store.MongoURL,
		RetryConfig: c.retryConfig(),
	}
}

// DatabaseConfig returns the PostgreSQL connection settings.
func (c *Config) DatabaseConfig() *database.DBConfig {
	return &database.DBConfig{
		URL:         c.Store.PostgresURL,
		RetryConfig: c.retryConfig(),
	}
}
