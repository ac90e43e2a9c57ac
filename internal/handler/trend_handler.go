package handler

import (
	"context"
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/jengzang/putusan-backend-go/internal/models"
	"github.com/jengzang/putusan-backend-go/pkg/response"
)

// TrendService computes yearly trends
type TrendService interface {
	GetTrend(ctx context.Context, filter models.TrendFilter) (*models.TrendResponse, error)
}

// TrendHandler handles HTTP requests for trend analysis
type TrendHandler struct {
	service TrendService
	logger  *slog.Logger
}

// NewTrendHandler creates a new trend handler
func NewTrendHandler(service TrendService, logger *slog.Logger) *TrendHandler {
	return &TrendHandler{service: service, logger: logger}
}

// GetTrend handles GET /api/analisis/trend
func (h *TrendHandler) GetTrend(c *gin.Context) {
	var filter models.TrendFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Parameter tidak valid", err)
		return
	}

	result, err := h.service.GetTrend(c.Request.Context(), filter)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	response.JSON(c, 200, result)
}
