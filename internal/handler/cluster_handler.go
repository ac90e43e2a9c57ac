package handler

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/jengzang/putusan-backend-go/internal/metrics"
	"github.com/jengzang/putusan-backend-go/internal/models"
	"github.com/jengzang/putusan-backend-go/pkg/response"
)

// ClusterService computes crime clusters
type ClusterService interface {
	GetCrimeClusters(ctx context.Context, filter models.ClusterFilter) (*models.ClusterResponse, error)
}

// ClusterHandler handles HTTP requests for crime clusters
type ClusterHandler struct {
	service ClusterService
	metrics *metrics.Metrics
	logger  *slog.Logger
}

// NewClusterHandler creates a new cluster handler
func NewClusterHandler(service ClusterService, m *metrics.Metrics, logger *slog.Logger) *ClusterHandler {
	return &ClusterHandler{
		service: service,
		metrics: m,
		logger:  logger,
	}
}

// GetCrimeClusters handles GET /api/crime-clusters
func (h *ClusterHandler) GetCrimeClusters(c *gin.Context) {
	filter, err := parseClusterFilter(c)
	if err != nil {
		h.metrics.IncrementClusterOutcome("invalid")
		response.BadRequest(c, "Parameter tidak valid", err)
		return
	}

	result, err := h.service.GetCrimeClusters(c.Request.Context(), filter)
	if err != nil {
		h.metrics.IncrementClusterOutcome(outcomeOf(err))
		writeError(c, h.logger, err)
		return
	}

	h.metrics.IncrementClusterOutcome("ok")
	response.JSON(c, 200, result)
}

// parseClusterFilter reads the three optional filters. Blank values and
// tahun=0 count as absent. Range checks are left to the service.
func parseClusterFilter(c *gin.Context) (models.ClusterFilter, error) {
	var filter models.ClusterFilter

	if v := strings.TrimSpace(c.Query("jenis_kejahatan")); v != "" {
		filter.JenisKejahatan = &v
	}
	if v := strings.TrimSpace(c.Query("provinsi")); v != "" {
		filter.Provinsi = &v
	}
	if v := strings.TrimSpace(c.Query("tahun")); v != "" {
		tahun, err := strconv.Atoi(v)
		if err != nil {
			return filter, errors.New("tahun must be an integer")
		}
		if tahun != 0 {
			filter.Tahun = &tahun
		}
	}

	return filter, nil
}

func outcomeOf(err error) string {
	switch {
	case errors.Is(err, models.ErrInvalidFilter):
		return "invalid"
	case errors.Is(err, models.ErrNotFound):
		return "not_found"
	default:
		return "error"
	}
}
