package container

import (
	"context"
	"fmt"

	"bookshelf-api/internal/config"
	"bookshelf-api/internal/domains/catalog/handler"
	"bookshelf-api/internal/domains/catalog/repository"
	"bookshelf-api/internal/domains/catalog/service"
	"bookshelf-api/internal/infrastructure/database"
	"bookshelf-api/pkg/logger"
)

// Container holds every application dependency.
// Initialization order: Config -> Store -> Repository -> Services -> Handlers.
type Container struct {
	// Config
	Config *config.Config

	// Infrastructure
	DB database.Connection

	// Repository
	CatalogRepo repository.RepositoryInterface

	// Services
	CatalogService service.ServiceInterface
	Seeder         *service.Seeder

	// Handlers
	CatalogHandler *handler.CatalogHandler
}

// NewContainer connects the configured store and wires the catalog layers on top of it.
// opts are passed through to the repository.
func NewContainer(ctx context.Context, cfg *config.Config, opts ...repository.Option) (*Container, error) {
	c := &Container{Config: cfg}

	logger.Info("Initializing DI container", map[string]interface{}{
		"driver": cfg.Store.Driver,
		"env":    cfg.App.Environment,
	})

	// ========================================
	// STEP 1: CONNECT STORE + REPOSITORY
	// ========================================
	if err := c.initStore(ctx, opts); err != nil {
		return nil, fmt.Errorf("failed to init store: %w", err)
	}
	logger.Debug("Store connected")

	// ========================================
	// STEP 2: SERVICES
	// ========================================
	c.initServices()
	logger.Debug("Services initialized")

	// ========================================
	// STEP 3: HANDLERS
	// ========================================
	c.initHandlers()
	logger.Debug("Handlers initialized")

	logger.Info("DI container initialized", nil)
	return c, nil
}

// initStore opens the backend selected by Store.Driver and builds the matching repository.
func (c *Container) initStore(ctx context.Context, opts []repository.Option) error {
	switch c.Config.Store.Driver {
	case config.DriverMongo:
		db := database.NewMongoDB(c.Config.MongoConfig())
		if err := db.Connect(ctx); err != nil {
			return fmt.Errorf("failed to connect to mongo: %w", err)
		}
		c.DB = db
		c.CatalogRepo = repository.NewMongoRepository(db.Database, opts...)

	case config.DriverPostgres:
		db := database.NewPostgresDB(c.Config.DatabaseConfig())
		if err := db.Connect(ctx); err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		c.DB = db
		c.CatalogRepo = repository.NewPostgresRepository(db.Pool, opts...)

	case config.DriverMemory:
		db, err := database.NewMemoryDB()
		if err != nil {
			return err
		}
		c.DB = db
		c.CatalogRepo = repository.NewMemoryRepository(db.DB, opts...)

	default:
		return fmt.Errorf("unknown store driver %q", c.Config.Store.Driver)
	}

	if err := c.DB.HealthCheck(ctx); err != nil {
		_ = c.DB.Close()
		return fmt.Errorf("store health check failed: %w", err)
	}
	return nil
}

func (c *Container) initServices() {
	c.CatalogService = service.NewCatalogService(c.CatalogRepo)
	c.Seeder = service.NewSeeder(c.CatalogRepo, service.SeedOptions{
		WipeBooks: c.Config.Seed.WipeBooks,
	})
}

func (c *Container) initHandlers() {
	c.CatalogHandler = handler.NewCatalogHandler(c.CatalogService)
}

// Cleanup releases the store connection. Called during graceful shutdown.
func (c *Container) Cleanup() {
	if c.DB == nil {
		return
	}
	if err := c.DB.Close(); err != nil {
		logger.Error("Failed to close store", err)
		return
	}
	logger.Debug("Store closed")
}
