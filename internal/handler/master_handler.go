package handler

import (
	"context"
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/jengzang/putusan-backend-go/internal/models"
	"github.com/jengzang/putusan-backend-go/pkg/response"
)

// MasterService serves the master lists
type MasterService interface {
	GetAll(ctx context.Context) (*models.MasterData, error)
	GetProvinces(ctx context.Context) ([]models.Provinsi, error)
	GetYears(ctx context.Context) ([]int, error)
	GetCrimeTypes(ctx context.Context) ([]string, error)
}

// MasterHandler handles HTTP requests for master data
type MasterHandler struct {
	service MasterService
	logger  *slog.Logger
}

// NewMasterHandler creates a new master handler
func NewMasterHandler(service MasterService, logger *slog.Logger) *MasterHandler {
	return &MasterHandler{service: service, logger: logger}
}

// GetAll handles GET /api/master
func (h *MasterHandler) GetAll(c *gin.Context) {
	data, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	response.Success(c, data)
}

// GetProvinces handles GET /api/master/provinsi
func (h *MasterHandler) GetProvinces(c *gin.Context) {
	data, err := h.service.GetProvinces(c.Request.Context())
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	response.Success(c, data)
}

// GetYears handles GET /api/master/tahun
func (h *MasterHandler) GetYears(c *gin.Context) {
	data, err := h.service.GetYears(c.Request.Context())
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	response.Success(c, data)
}

// GetCrimeTypes handles GET /api/master/jenis-kejahatan
func (h *MasterHandler) GetCrimeTypes(c *gin.Context) {
	data, err := h.service.GetCrimeTypes(c.Request.Context())
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	response.Success(c, data)
}
