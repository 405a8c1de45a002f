// YouTube Analyzer - Server Entry Point
//
// This is the main entry point for the content suggestion backend.
// It initializes all dependencies and starts the HTTP server.
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/yt-analyzer/internal/checklist"
	"github.com/yt-analyzer/internal/config"
	"github.com/yt-analyzer/internal/handler"
	"github.com/yt-analyzer/internal/logger"
	"github.com/yt-analyzer/internal/metrics"
	"github.com/yt-analyzer/internal/service"
	"github.com/yt-analyzer/internal/store"
)

func main() {
	// Load .env file if it exists (development)
	_ = godotenv.Load()

	// Determine if we're in development mode
	isDev := os.Getenv("GIN_MODE") != "release"

	// Initialize logger
	zapLogger, err := logger.New(isDev)
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer zapLogger.Sync()

	zapLogger.Info("starting YouTube Analyzer",
		zap.Bool("development", isDev),
	)

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		zapLogger.Fatal("failed to load configuration", zap.Error(err))
	}

	zapLogger.Info("configuration loaded",
		zap.String("port", cfg.Server.Port),
		zap.Bool("database_enabled", cfg.Database.Enabled()),
		zap.Strings("allowed_origins", cfg.Server.AllowedOrigins),
		zap.Duration("persist_timeout", cfg.Persistence.Timeout),
	)

	metrics.MustRegister(prometheus.DefaultRegisterer)

	// Initialize datastore
	sink, persisted := openSink(cfg, zapLogger)
	defer func() {
		if err := sink.Close(); err != nil {
			zapLogger.Warn("failed to close datastore", zap.Error(err))
		}
	}()

	// Initialize analyzer service
	recorder := service.NewRecorder(sink, cfg.Persistence.Timeout, zapLogger)
	evaluator := checklist.NewEvaluator(checklist.DefaultChecks(), zapLogger)
	analyzerSvc := service.NewAnalyzer(evaluator, recorder, zapLogger)

	// Setup Gin router
	if !isDev {
		gin.SetMode(gin.ReleaseMode)
	}

	router := handler.NewRouter(handler.RouterDeps{
		Analyzer:       analyzerSvc,
		Sink:           sink,
		Persisted:      persisted,
		AllowedOrigins: cfg.Server.AllowedOrigins,
		Logger:         zapLogger,
	})

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server in goroutine
	go func() {
		zapLogger.Info("server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zapLogger.Fatal("server failed", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zapLogger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		zapLogger.Error("server forced to shutdown", zap.Error(err))
	}

	// Let in-flight background writes finish before the pool closes.
	if !recorder.WaitContext(ctx) {
		zapLogger.Warn("pending analysis writes abandoned at shutdown")
	}

	zapLogger.Info("server stopped")
}

// openSink connects to PostgreSQL when DATABASE_URL is set. The service
// keeps serving without persistence if the database cannot be reached.
func openSink(cfg *config.Config, logger *zap.Logger) (store.Sink, bool) {
	if !cfg.Database.Enabled() {
		logger.Warn("DATABASE_URL not set - analysis results will not be stored")
		return store.NewNop(cfg.Database.URL, cfg.Database.Name, logger), false
	}

	pg, err := store.NewPostgres(store.PostgresConfig{
		URL:             cfg.Database.URL,
		Name:            cfg.Database.Name,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
	}, logger)
	if err != nil {
		logger.Warn("database unreachable - continuing without persistence", zap.Error(err))
		return store.NewNop(cfg.Database.URL, cfg.Database.Name, logger), false
	}

	if cfg.Database.RunMigrations {
		if err := pg.RunMigrations(cfg.Database.MigrationsPath); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	logger.Info("database connected", zap.String("database", cfg.Database.Name))
	return pg, true
}
