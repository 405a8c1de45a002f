package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/yt-analyzer/internal/domain"
	"github.com/yt-analyzer/internal/store"
)

const (
	defaultRecentLimit = 20
	maxRecentLimit     = 100
)

// AnalysesHandler lists stored analyses.
type AnalysesHandler struct {
	sink   store.Sink
	logger *zap.Logger
}

// NewAnalysesHandler creates a new AnalysesHandler.
func NewAnalysesHandler(sink store.Sink, logger *zap.Logger) *AnalysesHandler {
	return &AnalysesHandler{
		sink:   sink,
		logger: logger.Named("analyses_handler"),
	}
}

// Handle processes GET /api/analyses?limit=N requests.
func (h *AnalysesHandler) Handle(c *gin.Context) {
	limit := defaultRecentLimit
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			abortWithError(c, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = min(n, maxRecentLimit)
	}

	items, err := h.sink.Recent(c.Request.Context(), limit)
	if err != nil {
		if errors.Is(err, domain.ErrStoreUnavailable) {
			abortWithError(c, http.StatusServiceUnavailable, "No datastore configured")
			return
		}
		h.logger.Error("failed to list analyses", zap.Error(err))
		abortWithError(c, http.StatusInternalServerError, "Failed to list analyses")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"items": items,
		"count": len(items),
	})
}
