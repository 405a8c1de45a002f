package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/yt-analyzer/internal/presets"
	"github.com/yt-analyzer/internal/service"
	"github.com/yt-analyzer/internal/store"
)

// RouterDeps bundles what the router needs to build its handlers.
type RouterDeps struct {
	Analyzer       *service.Analyzer
	Sink           store.Sink
	Persisted      bool
	AllowedOrigins []string
	Logger         *zap.Logger
}

// NewRouter creates the gin engine with middleware and all routes.
func NewRouter(deps RouterDeps) *gin.Engine {
	router := gin.New()

	router.Use(RecoveryMiddleware(deps.Logger))
	router.Use(RequestIDMiddleware())
	router.Use(LoggingMiddleware(deps.Logger))
	router.Use(MetricsMiddleware())
	router.Use(CORSMiddleware(deps.AllowedOrigins))

	analyzeHandler := NewAnalyzeHandler(deps.Analyzer, deps.Logger)
	analysesHandler := NewAnalysesHandler(deps.Sink, deps.Logger)
	presetsHandler := NewPresetsHandler(presets.Get())
	diagnosticsHandler := NewDiagnosticsHandler(deps.Sink)
	healthHandler := NewHealthHandler(deps.Logger)
	readyHandler := NewReadyHandler(deps.Sink, deps.Persisted, deps.Logger)

	router.GET("/", Root)
	router.GET("/test", diagnosticsHandler.Handle)
	router.GET("/health", healthHandler.Handle)
	router.GET("/ready", readyHandler.Handle)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api")
	{
		api.GET("/hello", Hello)
		api.GET("/presets", presetsHandler.Handle)
		api.POST("/analyze", analyzeHandler.Handle)
		api.GET("/analyses", analysesHandler.Handle)
	}

	return router
}
