package main

import (
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"bookshelf-api/internal/config"
	"bookshelf-api/pkg/logger"
)

func main() {
	// ========================================
	// LOAD ENVIRONMENT VARIABLES
	// ========================================
	// .env is optional; real deployments use the process environment
	envErr := godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logger.Init(config.EnvDevelopment, "info")
		log.Fatal().Err(err).Msg("Failed to load config")
	}

	logger.Init(cfg.App.Environment, cfg.Log.Level)
	if envErr != nil {
		log.Debug().Msg("No .env file found, using system environment variables")
	}

	// ========================================
	// SET GIN MODE
	// ========================================
	switch cfg.App.Environment {
	case config.EnvProduction, config.EnvStaging:
		gin.SetMode(gin.ReleaseMode)
	case config.EnvTest:
		gin.SetMode(gin.TestMode)
	}

	log.Info().
		Str("app", cfg.App.Name).
		Str("version", cfg.App.Version).
		Str("env", cfg.App.Environment).
		Msg("Starting")

	if err := Serve(cfg); err != nil {
		log.Fatal().Err(err).Msg("Server stopped")
	}
}
