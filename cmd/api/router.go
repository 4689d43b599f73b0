package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"bookshelf-api/internal/shared/middleware"
	"bookshelf-api/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	cors := middleware.DefaultCORSConfig()
	if len(c.Config.HTTP.AllowedOrigins) > 0 {
		cors.AllowedOrigins = c.Config.HTTP.AllowedOrigins
	}

	// Global middlewares. Logger wraps Recovery so panicked requests still get a request line.
	router.Use(
		middleware.RequestID(),
		middleware.Logger(),
		middleware.Recovery(),
		middleware.CORS(cors),
		middleware.JSONBody(c.Config.HTTP.JSONBodyLimit),
	)

	router.GET("/", c.CatalogHandler.Root)
	router.GET("/health", healthCheckHandler(c))

	setupAuthorRoutes(router, c)
	setupBookRoutes(router, c)

	return router
}

// ========================================
// AUTHOR ROUTES
// ========================================
func setupAuthorRoutes(r gin.IRouter, c *container.Container) {
	authors := r.Group("/authors")
	{
		authors.GET("", c.CatalogHandler.ListAuthors)
		authors.GET("/:id", c.CatalogHandler.GetAuthor)
		authors.GET("/:id/books", c.CatalogHandler.ListAuthorBooks)
	}
}

// ========================================
// BOOK ROUTES
// ========================================
func setupBookRoutes(r gin.IRouter, c *container.Container) {
	r.GET("/books", c.CatalogHandler.ListBooks)
}

func healthCheckHandler(appCtx *container.Container) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		status, store, code := "ok", "ok", http.StatusOK
		if err := appCtx.CatalogService.Ping(ctx); err != nil {
			status, store, code = "degraded", "error: "+err.Error(), http.StatusServiceUnavailable
		}

		c.JSON(code, gin.H{
			"status":  status,
			"store":   store,
			"version": appCtx.Config.App.Version,
		})
	}
}
