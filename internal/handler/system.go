package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/yt-analyzer/internal/store"
)

// Root handles GET / liveness requests.
func Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "YouTube Analyzer Backend Running"})
}

// Hello handles GET /api/hello.
func Hello(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Hello from the backend API!"})
}

// HealthHandler handles health check requests.
type HealthHandler struct {
	logger *zap.Logger
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(logger *zap.Logger) *HealthHandler {
	return &HealthHandler{
		logger: logger.Named("health_handler"),
	}
}

// Handle processes GET /health requests.
func (h *HealthHandler) Handle(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "healthy",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}

// ReadyHandler handles readiness check requests.
type ReadyHandler struct {
	sink      store.Sink
	persisted bool
	logger    *zap.Logger
}

// NewReadyHandler creates a new ReadyHandler. When persisted is false the
// datastore is not part of readiness.
func NewReadyHandler(sink store.Sink, persisted bool, logger *zap.Logger) *ReadyHandler {
	return &ReadyHandler{
		sink:      sink,
		persisted: persisted,
		logger:    logger.Named("ready_handler"),
	}
}

// Handle processes GET /ready requests.
func (h *ReadyHandler) Handle(c *gin.Context) {
	if h.persisted {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := h.sink.Ping(ctx); err != nil {
			h.logger.Warn("datastore not ready", zap.Error(err))
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status": "not_ready",
				"error":  "datastore unreachable",
				"time":   time.Now().UTC().Format(time.RFC3339),
			})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "ready",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}

// DiagnosticsHandler reports datastore status. It never fails.
type DiagnosticsHandler struct {
	sink store.Sink
}

// NewDiagnosticsHandler creates a new DiagnosticsHandler.
func NewDiagnosticsHandler(sink store.Sink) *DiagnosticsHandler {
	return &DiagnosticsHandler{sink: sink}
}

// Handle processes GET /test requests.
func (h *DiagnosticsHandler) Handle(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
	defer cancel()
	c.JSON(http.StatusOK, h.sink.Status(ctx))
}
