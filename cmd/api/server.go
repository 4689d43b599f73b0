package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"bookshelf-api/internal/config"
	"bookshelf-api/pkg/container"
)

const shutdownTimeout = 10 * time.Second

// Serve builds the container, optionally reseeds the store and runs the HTTP server
// until SIGINT or SIGTERM.
func Serve(cfg *config.Config) error {
	ctx := context.Background()

	// ========================================
	// 1. BUILD DI CONTAINER
	// ========================================
	appContainer, err := container.NewContainer(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize container: %w", err)
	}
	defer appContainer.Cleanup()

	// ========================================
	// 2. SEED (RESET_DATABASE)
	// ========================================
	startSeed(ctx, appContainer)

	// ========================================
	// 3. CONFIGURE HTTP SERVER
	// ========================================
	srv := &http.Server{
		Addr:           fmt.Sprintf(":%s", cfg.App.Port),
		Handler:        SetupRouter(appContainer),
		ReadTimeout:    10 * time.Second,
		WriteTimeout:   10 * time.Second,
		IdleTimeout:    60 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	// ========================================
	// 4. START SERVER (NON-BLOCKING)
	// ========================================
	serverErr := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.App.Port).Msgf("Server running on http://localhost:%s", cfg.App.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// ========================================
	// 5. GRACEFUL SHUTDOWN
	// ========================================
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		return fmt.Errorf("failed to start server: %w", err)
	case sig := <-quit:
		log.Info().Str("signal", sig.String()).Msg("Shutting down server...")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Warn().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited gracefully")
	return nil
}

// startSeed runs the seed when RESET_DATABASE is set. With SEED_ASYNC it returns at once;
// the returned channel is closed when seeding is over (or immediately when it is disabled).
func startSeed(ctx context.Context, c *container.Container) <-chan struct{} {
	done := make(chan struct{})
	if !c.Config.Seed.Reset {
		close(done)
		return done
	}

	if c.Config.Seed.Async {
		go func() {
			defer close(done)
			runSeed(ctx, c)
		}()
		return done
	}

	runSeed(ctx, c)
	close(done)
	return done
}

// runSeed resets the catalog. A failure is logged and the server keeps running
// with whatever the store holds.
func runSeed(ctx context.Context, c *container.Container) {
	if _, err := c.Seeder.Seed(ctx); err != nil {
		log.Error().Err(err).Msg("Seeding failed")
	}
}
