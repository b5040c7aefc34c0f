package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	apierrors "github.com/srqtax/tdt/internal/errors"
	"github.com/srqtax/tdt/internal/services"
)

// StatsHandler handles the compliance statistics endpoint.
type StatsHandler struct {
	service services.StatsService
}

// NewStatsHandler creates a new StatsHandler instance.
func NewStatsHandler(service services.StatsService) *StatsHandler {
	return &StatsHandler{
		service: service,
	}
}

// Get handles GET /api/v1/stats.
func (h *StatsHandler) Get(c *gin.Context) {
	stats, err := h.service.GetStats(c.Request.Context())
	if err != nil {
		apierrors.InternalServerError(c, "Failed to compute compliance stats", err)
		return
	}

	c.JSON(http.StatusOK, stats)
}
