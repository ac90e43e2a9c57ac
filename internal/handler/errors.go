package handler

import (
	"errors"
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/jengzang/putusan-backend-go/internal/middleware"
	"github.com/jengzang/putusan-backend-go/internal/models"
	"github.com/jengzang/putusan-backend-go/pkg/response"
)

// writeError maps a service error onto the HTTP error body
func writeError(c *gin.Context, logger *slog.Logger, err error) {
	switch {
	case errors.Is(err, models.ErrInvalidFilter):
		response.BadRequest(c, "Parameter tidak valid", err)
	case errors.Is(err, models.ErrNotFound):
		response.NotFound(c, "Data tidak ditemukan")
	case errors.Is(err, models.ErrUnauthorized):
		response.Unauthorized(c, "Tidak terautentikasi")
	case errors.Is(err, models.ErrConflict):
		response.Conflict(c, "Email sudah terdaftar")
	default:
		logger.ErrorContext(c.Request.Context(), "request failed",
			"request_id", middleware.RequestID(c),
			"path", c.FullPath(),
			"error", err,
		)
		_ = c.Error(err)
		response.InternalError(c, "Terjadi kesalahan pada server", err)
	}
}
