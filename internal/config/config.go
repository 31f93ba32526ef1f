package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
	// BLOG_TIMEZONE must resolve on hosts without a zoneinfo database.
	_ "time/tzdata"
)

// Application environments.
const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
	EnvTest        = "test"
)

// StoreMode names the backing store selected for a run.
type StoreMode string

const (
	StorePostgres StoreMode = "postgres"
	StoreSQLite   StoreMode = "sqlite"
)

// Config holds all configuration for the application.
type Config struct {
	// Server configuration
	ServerPort   string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
	BaseURL      string

	Env string

	// Database configuration
	DatabaseURL         string
	DatabaseAuthToken   string
	DatabasePath        string
	DBMaxConns          int32
	DBMinConns          int32
	DBMaxConnLifetime   time.Duration
	DBMaxConnIdleTime   time.Duration
	DBHealthCheckPeriod time.Duration
	AutoMigrate         bool

	// Auth configuration
	GoogleClientID     string
	GoogleClientSecret string
	SessionSecret      string
	SessionTTL         time.Duration
	AllowedEmails      []string

	// Blog configuration
	Timezone         string
	PageCacheEnabled bool
	PageCacheSize    int

	// Logging configuration
	LogLevel  string
	LogFormat string

	location *time.Location
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	cfg := FromEnv()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// FromEnv reads the environment without validating it. Callers that only
// need a store use ValidateStore afterwards.
func FromEnv() *Config {
	return &Config{
		ServerPort:          getEnv("SERVER_PORT", "8080"),
		ReadTimeout:         getEnvDuration("HTTP_READ_TIMEOUT", 15*time.Second),
		WriteTimeout:        getEnvDuration("HTTP_WRITE_TIMEOUT", 30*time.Second),
		IdleTimeout:         getEnvDuration("HTTP_IDLE_TIMEOUT", 120*time.Second),
		BaseURL:             strings.TrimRight(getEnv("BASE_URL", "http://localhost:8080"), "/"),
		Env:                 strings.ToLower(getEnv("APP_ENV", EnvDevelopment)),
		DatabaseURL:         os.Getenv("DATABASE_URL"),
		DatabaseAuthToken:   os.Getenv("DATABASE_AUTH_TOKEN"),
		DatabasePath:        getEnv("DATABASE_PATH", "./blog.db"),
		DBMaxConns:          int32(getEnvInt("DB_MAX_CONNS", 10)),
		DBMinConns:          int32(getEnvInt("DB_MIN_CONNS", 1)),
		DBMaxConnLifetime:   getEnvDuration("DB_MAX_CONN_LIFETIME", time.Hour),
		DBMaxConnIdleTime:   getEnvDuration("DB_MAX_CONN_IDLE_TIME", 30*time.Minute),
		DBHealthCheckPeriod: getEnvDuration("DB_HEALTH_CHECK_PERIOD", time.Minute),
		AutoMigrate:         getEnvBool("AUTO_MIGRATE", true),
		GoogleClientID:      os.Getenv("GOOGLE_CLIENT_ID"),
		GoogleClientSecret:  os.Getenv("GOOGLE_CLIENT_SECRET"),
		SessionSecret:       os.Getenv("SESSION_SECRET"),
		SessionTTL:          getEnvDuration("SESSION_TTL", 7*24*time.Hour),
		AllowedEmails:       splitList(os.Getenv("ALLOWED_EMAILS")),
		Timezone:            getEnv("BLOG_TIMEZONE", "Asia/Tokyo"),
		PageCacheEnabled:    getEnvBool("PAGE_CACHE_ENABLED", true),
		PageCacheSize:       getEnvInt("PAGE_CACHE_SIZE", 1000),
		LogLevel:            getEnv("LOG_LEVEL", "info"),
		LogFormat:           getEnv("LOG_FORMAT", "json"),
	}
}

// validate validates the configuration.
func (c *Config) validate() error {
	if c.ServerPort == "" {
		return fmt.Errorf("SERVER_PORT is required")
	}
	if err := c.ValidateStore(); err != nil {
		return err
	}
	if c.IsProduction() && c.SessionSecret == "" {
		return fmt.Errorf("SESSION_SECRET is required in production")
	}
	if c.SessionTTL <= 0 {
		return fmt.Errorf("SESSION_TTL must be positive")
	}
	return nil
}

// ValidateStore checks the settings needed to open the store and
// resolves the blog time zone.
func (c *Config) ValidateStore() error {
	switch c.Env {
	case EnvDevelopment, EnvProduction, EnvTest:
	default:
		return fmt.Errorf("APP_ENV must be one of development, production, test (got %q)", c.Env)
	}
	if c.StoreMode() == StoreSQLite && c.DatabasePath == "" {
		return fmt.Errorf("DATABASE_PATH is required for the local store")
	}
	if c.DBMaxConns < 1 {
		return fmt.Errorf("DB_MAX_CONNS must be at least 1")
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return fmt.Errorf("BLOG_TIMEZONE: %w", err)
	}
	c.location = loc
	return nil
}

// IsProduction reports whether APP_ENV is production.
func (c *Config) IsProduction() bool {
	return c.Env == EnvProduction
}

// StoreMode picks the remote store only for production runs that carry
// DATABASE_URL. Everything else uses the local SQLite file.
func (c *Config) StoreMode() StoreMode {
	if c.IsProduction() && c.DatabaseURL != "" {
		return StorePostgres
	}
	return StoreSQLite
}

// MissingRemoteStore reports a production run without remote store
// credentials, which falls back to the local file.
func (c *Config) MissingRemoteStore() bool {
	return c.IsProduction() && c.DatabaseURL == ""
}

// Location returns the blog time zone used for post URLs and forms.
func (c *Config) Location() *time.Location {
	if c.location == nil {
		return time.UTC
	}
	return c.location
}

// OAuthConfigured reports whether Google sign-in can be offered.
func (c *Config) OAuthConfigured() bool {
	return c.GoogleClientID != "" && c.GoogleClientSecret != ""
}

// getEnv gets an environment variable with a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt gets an environment variable as int with a default value.
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvDuration gets an environment variable as duration with a default value.
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// getEnvBool gets an environment variable as bool with a default value.
func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

// splitList splits a comma separated value, dropping blank entries.
func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
