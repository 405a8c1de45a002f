// Package config handles application configuration from environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/yt-analyzer/internal/domain"
)

// Config holds all application configuration.
type Config struct {
	// Server configuration
	Server ServerConfig

	// Database configuration
	Database DatabaseConfig

	// Persistence configuration
	Persistence PersistenceConfig
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	// Port is the HTTP port to listen on.
	Port string

	// ReadTimeout is the maximum duration for reading the entire request.
	ReadTimeout time.Duration

	// WriteTimeout is the maximum duration before timing out writes of the response.
	WriteTimeout time.Duration

	// ShutdownTimeout bounds graceful shutdown, including pending writes.
	ShutdownTimeout time.Duration

	// AllowedOrigins lists CORS origins. "*" allows any origin.
	AllowedOrigins []string
}

// DatabaseConfig contains datastore settings.
type DatabaseConfig struct {
	// URL is the PostgreSQL connection string. Empty disables persistence.
	URL string

	// Name is the logical database name, reported by diagnostics.
	Name string

	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration

	// MigrationsPath is the directory holding SQL migrations.
	MigrationsPath string

	// RunMigrations applies pending migrations at startup.
	RunMigrations bool
}

// Enabled reports whether a database is configured.
func (d DatabaseConfig) Enabled() bool {
	return d.URL != ""
}

// PersistenceConfig contains settings for storing analysis results.
type PersistenceConfig struct {
	// Timeout is the maximum time a single background write may take.
	Timeout time.Duration
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:            getEnvOrDefault("PORT", "8000"),
			ReadTimeout:     getDurationOrDefault("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout:    getDurationOrDefault("SERVER_WRITE_TIMEOUT", 15*time.Second),
			ShutdownTimeout: getDurationOrDefault("SERVER_SHUTDOWN_TIMEOUT", 10*time.Second),
			AllowedOrigins:  getListOrDefault("CORS_ORIGINS", []string{"*"}),
		},
		Database: DatabaseConfig{
			URL:             os.Getenv("DATABASE_URL"),
			Name:            os.Getenv("DATABASE_NAME"),
			MaxOpenConns:    getIntOrDefault("DB_MAX_OPEN_CONNS", 10),
			MaxIdleConns:    getIntOrDefault("DB_MAX_IDLE_CONNS", 2),
			ConnMaxLifetime: getDurationOrDefault("DB_CONN_MAX_LIFETIME", 2*time.Minute),
			MigrationsPath:  getEnvOrDefault("MIGRATIONS_PATH", "migrations"),
			RunMigrations:   getBoolOrDefault("RUN_MIGRATIONS", true),
		},
		Persistence: PersistenceConfig{
			Timeout: getDurationOrDefault("PERSIST_TIMEOUT", 5*time.Second),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if _, err := strconv.Atoi(c.Server.Port); err != nil {
		return fmt.Errorf("%w: PORT must be numeric, got %q", domain.ErrInvalidConfig, c.Server.Port)
	}

	if c.Server.ReadTimeout < time.Second || c.Server.WriteTimeout < time.Second {
		return fmt.Errorf("%w: server timeouts must be at least 1 second", domain.ErrInvalidConfig)
	}

	if len(c.Server.AllowedOrigins) == 0 {
		return fmt.Errorf("%w: CORS_ORIGINS must list at least one origin", domain.ErrInvalidConfig)
	}

	if c.Persistence.Timeout <= 0 {
		return fmt.Errorf("%w: PERSIST_TIMEOUT must be positive", domain.ErrInvalidConfig)
	}

	if c.Database.Enabled() {
		if c.Database.MaxOpenConns < 1 {
			return fmt.Errorf("%w: DB_MAX_OPEN_CONNS must be at least 1", domain.ErrInvalidConfig)
		}
		if c.Database.MaxIdleConns < 0 || c.Database.MaxIdleConns > c.Database.MaxOpenConns {
			return fmt.Errorf("%w: DB_MAX_IDLE_CONNS must be between 0 and DB_MAX_OPEN_CONNS", domain.ErrInvalidConfig)
		}
		if c.Database.RunMigrations && c.Database.MigrationsPath == "" {
			return fmt.Errorf("%w: MIGRATIONS_PATH is required when RUN_MIGRATIONS is set", domain.ErrInvalidConfig)
		}
	}

	return nil
}

// Helper functions for reading environment variables

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getIntOrDefault(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return defaultVal
}

func getBoolOrDefault(key string, defaultVal bool) bool {
	if val := os.Getenv(key); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			return b
		}
	}
	return defaultVal
}

func getListOrDefault(key string, defaultVal []string) []string {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	var out []string
	for _, item := range strings.Split(val, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

func getDurationOrDefault(key string, defaultVal time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		// Try parsing as seconds first (e.g., "15")
		if secs, err := strconv.Atoi(val); err == nil {
			return time.Duration(secs) * time.Second
		}
		// Try parsing as duration string (e.g., "15s", "1m")
		if d, err := time.ParseDuration(val); err == nil {
			return d
		}
	}
	return defaultVal
}
