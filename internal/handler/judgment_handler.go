package handler

import (
	"context"
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/jengzang/putusan-backend-go/internal/models"
	"github.com/jengzang/putusan-backend-go/pkg/response"
)

// JudgmentService lists and imports judgments
type JudgmentService interface {
	List(ctx context.Context, filter models.JudgmentFilter) (*models.JudgmentListResponse, error)
	Import(ctx context.Context, records []models.ImportRecord) (models.ImportResult, error)
}

// JudgmentHandler handles HTTP requests for the judgment listing
type JudgmentHandler struct {
	service JudgmentService
	logger  *slog.Logger
}

// NewJudgmentHandler creates a new judgment handler
func NewJudgmentHandler(service JudgmentService, logger *slog.Logger) *JudgmentHandler {
	return &JudgmentHandler{service: service, logger: logger}
}

// List handles GET /api/putusan
func (h *JudgmentHandler) List(c *gin.Context) {
	var filter models.JudgmentFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Parameter tidak valid", err)
		return
	}

	result, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	response.JSON(c, 200, result)
}

// Import handles POST /api/admin/putusan/import
func (h *JudgmentHandler) Import(c *gin.Context) {
	var records []models.ImportRecord
	if err := c.ShouldBindJSON(&records); err != nil {
		response.BadRequest(c, "Data putusan tidak valid", err)
		return
	}

	result, err := h.service.Import(c.Request.Context(), records)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	response.Success(c, result)
}
