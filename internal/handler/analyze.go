package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/yt-analyzer/internal/domain"
	"github.com/yt-analyzer/internal/service"
)

// AnalyzeHandler handles content analysis requests.
type AnalyzeHandler struct {
	analyzer *service.Analyzer
	logger   *zap.Logger
}

// NewAnalyzeHandler creates a new AnalyzeHandler.
func NewAnalyzeHandler(analyzer *service.Analyzer, logger *zap.Logger) *AnalyzeHandler {
	return &AnalyzeHandler{
		analyzer: analyzer,
		logger:   logger.Named("analyze_handler"),
	}
}

// Handle processes POST /api/analyze requests.
func (h *AnalyzeHandler) Handle(c *gin.Context) {
	startTime := time.Now()
	logger := h.logger.With(zap.String("request_id", c.GetString(requestIDKey)))

	var req domain.AnalysisRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("invalid request body", zap.Error(err))
		abortWithError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	result, err := h.analyzer.Analyze(c.Request.Context(), &req)
	if err != nil {
		if domain.IsValidation(err) {
			logger.Warn("request rejected", zap.Error(err))
			abortWithError(c, http.StatusUnprocessableEntity, err.Error())
			return
		}
		logger.Error("analysis failed", zap.Error(err))
		abortWithError(c, http.StatusInternalServerError, "Internal error during analysis")
		return
	}

	logger.Debug("analysis served",
		zap.Int("score", result.Score),
		zap.Duration("duration", time.Since(startTime)),
	)
	c.JSON(http.StatusOK, result)
}

// abortWithError writes the standard error body.
func abortWithError(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, domain.ErrorResponse{
		Success:     false,
		Error:       msg,
		RequestID:   c.GetString(requestIDKey),
		ProcessedAt: time.Now(),
	})
}
