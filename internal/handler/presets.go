package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yt-analyzer/internal/presets"
)

// PresetsHandler serves the static reference catalog.
type PresetsHandler struct {
	catalog *presets.Catalog
}

// NewPresetsHandler creates a PresetsHandler over catalog.
func NewPresetsHandler(catalog *presets.Catalog) *PresetsHandler {
	return &PresetsHandler{catalog: catalog}
}

// Handle processes GET /api/presets requests.
func (h *PresetsHandler) Handle(c *gin.Context) {
	c.Header("Cache-Control", "public, max-age=3600")
	c.JSON(http.StatusOK, h.catalog)
}
