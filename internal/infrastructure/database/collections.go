package database

import (
	"context"
	"fmt"
	"time"
)

// Collection (and table) names shared by every store backend.
const (
	CollectionAuthors = "authors"
	CollectionBooks   = "books"
)

// RetryConfig controls how Connect retries a store that is not reachable yet.
type RetryConfig struct {
	MaxRetries     int           // connection attempts before giving up
	RetryDelay     time.Duration // base delay, doubled after each failed attempt
	ConnectTimeout time.Duration // timeout applied to each attempt
}

// backoff returns the delay to wait after the given failed attempt.
// Attempt 1: 1x, attempt 2: 2x, attempt 3: 4x the base delay.
func (c RetryConfig) backoff(attempt int) time.Duration {
	return c.RetryDelay * time.Duration(1<<uint(attempt-1))
}

// sleep waits for d or until ctx is cancelled.
func sleep(ctx context.Context, d time.Duration) error {
	select {
	case <-time.After(d):
		return nil
	case <-ctx.Done():
		return fmt.Errorf("connection cancelled: %w", ctx.Err())
	}
}

// Connection is the lifecycle shared by every store backend.
type Connection interface {
	HealthCheck(ctx context.Context) error
	Close() error
}
