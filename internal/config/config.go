package config

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/spf13/viper"
)

// Store drivers
const (
	DriverMongo    = "mongo"
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

// Environments
const (
	EnvDevelopment = "development"
	EnvStaging     = "staging"
	EnvProduction  = "production"
	EnvTest        = "test"
)

// Config holds the whole application configuration.
// It is populated from environment variables (and an optional .env file loaded by main).
type Config struct {
	App   AppConfig
	Store StoreConfig
	Seed  SeedConfig
	Log   LogConfig
	HTTP  HTTPConfig
}

type AppConfig struct {
	Name        string
	Environment string // development, staging, production, test
	Port        string
	Version     string
}

type StoreConfig struct {
	Driver         string // mongo, postgres, memory
	MongoURL       string
	PostgresURL    string
	ConnectTimeout time.Duration
	MaxRetries     int
	RetryDelay     time.Duration
}

// SeedConfig gates the destructive seed routine.
type SeedConfig struct {
	Reset     bool // RESET_DATABASE
	WipeBooks bool // also delete books, not only authors
	Async     bool // do not wait for seeding before listening
}

type LogConfig struct {
	Level string
}

type HTTPConfig struct {
	AllowedOrigins []string
	JSONBodyLimit  int64
}

var defaults = map[string]any{
	"APP_NAME":              "Bookshelf API",
	"APP_ENV":               EnvDevelopment,
	"APP_VERSION":           "1.0.0",
	"PORT":                  "8080",
	"LOG_LEVEL":             "info",
	"STORE_DRIVER":          DriverMongo,
	"MONGO_URL":             "mongodb://localhost/books",
	"DATABASE_URL":          "postgres://localhost:5432/books?sslmode=disable",
	"STORE_CONNECT_TIMEOUT": "10s",
	"STORE_MAX_RETRIES":     5,
	"STORE_RETRY_DELAY":     "1s",
	"RESET_DATABASE":        "",
	"SEED_WIPE_BOOKS":       true,
	"SEED_ASYNC":            false,
	"CORS_ALLOWED_ORIGINS":  "*",
	"JSON_BODY_LIMIT":       100 * 1024,
}

// Load reads the configuration from the environment and validates it.
func Load() (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	cfg := &Config{
		App: AppConfig{
			Name:        v.GetString("APP_NAME"),
			Environment: v.GetString("APP_ENV"),
			Port:        v.GetString("PORT"),
			Version:     v.GetString("APP_VERSION"),
		},
		Store: StoreConfig{
			Driver:         strings.ToLower(v.GetString("STORE_DRIVER")),
			MongoURL:       v.GetString("MONGO_URL"),
			PostgresURL:    v.GetString("DATABASE_URL"),
			ConnectTimeout: v.GetDuration("STORE_CONNECT_TIMEOUT"),
			MaxRetries:     v.GetInt("STORE_MAX_RETRIES"),
			RetryDelay:     v.GetDuration("STORE_RETRY_DELAY"),
		},
		Seed: SeedConfig{
			Reset:     IsTruthy(v.GetString("RESET_DATABASE")),
			WipeBooks: v.GetBool("SEED_WIPE_BOOKS"),
			Async:     v.GetBool("SEED_ASYNC"),
		},
		Log: LogConfig{
			Level: strings.ToLower(v.GetString("LOG_LEVEL")),
		},
		HTTP: HTTPConfig{
			AllowedOrigins: splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
			JSONBodyLimit:  v.GetInt64("JSON_BODY_LIMIT"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

var mongoScheme = regexp.MustCompile(`^mongodb(\+srv)?://`)

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if err := validation.ValidateStruct(&c.App,
		validation.Field(&c.App.Port, validation.Required, is.Port),
		validation.Field(&c.App.Environment, validation.Required,
			validation.In(EnvDevelopment, EnvStaging, EnvProduction, EnvTest)),
	); err != nil {
		return fmt.Errorf("app: %w", err)
	}

	if err := validation.ValidateStruct(&c.Store,
		validation.Field(&c.Store.Driver, validation.Required,
			validation.In(DriverMongo, DriverPostgres, DriverMemory)),
		validation.Field(&c.Store.MongoURL,
			validation.When(c.Store.Driver == DriverMongo, validation.Required, validation.Match(mongoScheme))),
		validation.Field(&c.Store.PostgresURL,
			validation.When(c.Store.Driver == DriverPostgres, validation.Required)),
		validation.Field(&c.Store.ConnectTimeout, validation.Required),
		validation.Field(&c.Store.MaxRetries, validation.Required, validation.Min(1)),
		validation.Field(&c.Store.RetryDelay, validation.Required),
	); err != nil {
		return fmt.Errorf("store: %w", err)
	}

	if err := validation.ValidateStruct(&c.Log,
		validation.Field(&c.Log.Level, validation.Required,
			validation.In("trace", "debug", "info", "warn", "error")),
	); err != nil {
		return fmt.Errorf("log: %w", err)
	}

	if err := validation.ValidateStruct(&c.HTTP,
		validation.Field(&c.HTTP.JSONBodyLimit, validation.Required, validation.Min(int64(1))),
	); err != nil {
		return fmt.Errorf("http: %w", err)
	}

	return nil
}

// IsTruthy reports whether an environment flag is switched on.
// Any non-empty value counts except the usual spellings of false.
func IsTruthy(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "0", "false", "no", "off":
		return false
	default:
		return true
	}
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
