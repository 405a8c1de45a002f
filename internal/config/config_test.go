package config

import (
	"errors"
	"testing"
	"time"

	"github.com/yt-analyzer/internal/domain"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "DATABASE_URL", "DATABASE_NAME", "CORS_ORIGINS", "PERSIST_TIMEOUT", "SERVER_READ_TIMEOUT"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Port != "8000" {
		t.Errorf("Port = %q, want 8000", cfg.Server.Port)
	}
	if cfg.Database.Enabled() {
		t.Error("database should be disabled without DATABASE_URL")
	}
	if len(cfg.Server.AllowedOrigins) != 1 || cfg.Server.AllowedOrigins[0] != "*" {
		t.Errorf("AllowedOrigins = %v", cfg.Server.AllowedOrigins)
	}
	if cfg.Persistence.Timeout != 5*time.Second {
		t.Errorf("Persistence.Timeout = %v", cfg.Persistence.Timeout)
	}
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DATABASE_URL", "postgres://localhost/analyzer?sslmode=disable")
	t.Setenv("CORS_ORIGINS", "http://localhost:5173, https://app.example.com ,")
	t.Setenv("PERSIST_TIMEOUT", "2")
	t.Setenv("DB_CONN_MAX_LIFETIME", "90s")
	t.Setenv("RUN_MIGRATIONS", "false")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Port != "9090" {
		t.Errorf("Port = %q", cfg.Server.Port)
	}
	if !cfg.Database.Enabled() || cfg.Database.RunMigrations {
		t.Errorf("Database = %+v", cfg.Database)
	}
	if got := cfg.Server.AllowedOrigins; len(got) != 2 || got[1] != "https://app.example.com" {
		t.Errorf("AllowedOrigins = %v", got)
	}
	if cfg.Persistence.Timeout != 2*time.Second {
		t.Errorf("Persistence.Timeout = %v", cfg.Persistence.Timeout)
	}
	if cfg.Database.ConnMaxLifetime != 90*time.Second {
		t.Errorf("ConnMaxLifetime = %v", cfg.Database.ConnMaxLifetime)
	}
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Server: ServerConfig{
				Port:           "8000",
				ReadTimeout:    time.Second,
				WriteTimeout:   time.Second,
				AllowedOrigins: []string{"*"},
			},
			Database: DatabaseConfig{
				URL:            "postgres://localhost/db",
				MaxOpenConns:   5,
				MaxIdleConns:   2,
				MigrationsPath: "migrations",
				RunMigrations:  true,
			},
			Persistence: PersistenceConfig{Timeout: time.Second},
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{name: "valid", mutate: func(c *Config) {}},
		{name: "non numeric port", mutate: func(c *Config) { c.Server.Port = "http" }, wantErr: true},
		{name: "short timeout", mutate: func(c *Config) { c.Server.ReadTimeout = time.Millisecond }, wantErr: true},
		{name: "no origins", mutate: func(c *Config) { c.Server.AllowedOrigins = nil }, wantErr: true},
		{name: "zero persist timeout", mutate: func(c *Config) { c.Persistence.Timeout = 0 }, wantErr: true},
		{name: "idle above open", mutate: func(c *Config) { c.Database.MaxIdleConns = 6 }, wantErr: true},
		{name: "no migrations path", mutate: func(c *Config) { c.Database.MigrationsPath = "" }, wantErr: true},
		{name: "pool ignored without database", mutate: func(c *Config) {
			c.Database.URL = ""
			c.Database.MaxOpenConns = 0
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid()
			tt.mutate(c)
			err := c.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, domain.ErrInvalidConfig) {
				t.Errorf("error should wrap ErrInvalidConfig, got %v", err)
			}
		})
	}
}
