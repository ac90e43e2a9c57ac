package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jengzang/putusan-backend-go/internal/middleware"
	"github.com/jengzang/putusan-backend-go/internal/models"
	"github.com/jengzang/putusan-backend-go/pkg/response"
)

// AuthService registers and authenticates users
type AuthService interface {
	Register(ctx context.Context, req models.RegisterRequest) (*models.User, error)
	Login(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error)
	Me(ctx context.Context, id int64) (*models.User, error)
}

// AuthHandler handles HTTP requests for authentication
type AuthHandler struct {
	service AuthService
	logger  *slog.Logger
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(service AuthService, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{service: service, logger: logger}
}

// Register handles POST /api/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBind(&req); err != nil {
		response.BadRequest(c, "Data registrasi tidak valid", err)
		return
	}

	user, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Registrasi berhasil",
		"user":    user,
	})
}

// Login handles POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		response.BadRequest(c, "Email dan password wajib diisi", err)
		return
	}

	result, err := h.service.Login(c.Request.Context(), req)
	if errors.Is(err, models.ErrUnauthorized) {
		response.Unauthorized(c, "Email atau password salah")
		return
	}
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	maxAge := int(time.Until(result.ExpiresAt).Seconds())
	setSessionCookie(c, result.Token, maxAge)
	c.JSON(http.StatusOK, result)
}

// Logout handles GET /api/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	setSessionCookie(c, "", -1)
	c.JSON(http.StatusOK, gin.H{"message": "Logout berhasil"})
}

// Me handles GET /api/auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	claims, ok := middleware.Claims(c)
	if !ok {
		response.Unauthorized(c, "Tidak terautentikasi")
		return
	}
	id, err := claims.UserID()
	if err != nil {
		response.Unauthorized(c, "Sesi tidak valid")
		return
	}

	user, err := h.service.Me(c.Request.Context(), id)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	response.Success(c, user)
}

func setSessionCookie(c *gin.Context, value string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.SessionCookie, value, maxAge, "/", "", c.Request.TLS != nil, true)
}
