package api

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jengzang/putusan-backend-go/internal/auth"
	"github.com/jengzang/putusan-backend-go/internal/config"
	"github.com/jengzang/putusan-backend-go/internal/handler"
	"github.com/jengzang/putusan-backend-go/internal/metrics"
	"github.com/jengzang/putusan-backend-go/internal/middleware"
	"github.com/jengzang/putusan-backend-go/internal/models"
)

// Handlers 路由依赖的处理器
type Handlers struct {
	Health   *handler.HealthHandler
	Cluster  *handler.ClusterHandler
	Trend    *handler.TrendHandler
	Judgment *handler.JudgmentHandler
	Master   *handler.MasterHandler
	Auth     *handler.AuthHandler
}

// Deps bundles everything SetupRouter wires together
type Deps struct {
	Config      *config.Config
	Logger      *slog.Logger
	Metrics     *metrics.Metrics
	Gatherer    prometheus.Gatherer
	Tokens      *auth.TokenManager
	RateLimiter *middleware.RateLimiter
	Handlers    Handlers
}

// SetupRouter 设置路由
func SetupRouter(d Deps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger(d.Logger, d.Metrics))
	r.Use(middleware.CORS(d.Config.CORSOrigin))

	// 健康检查
	r.GET("/health", d.Handlers.Health.Health)
	if d.Gatherer != nil {
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(d.Gatherer, promhttp.HandlerOpts{})))
	}

	api := r.Group("/api")
	if d.RateLimiter != nil {
		api.Use(middleware.RateLimit(d.RateLimiter))
	}
	{
		api.GET("/crime-clusters", d.Handlers.Cluster.GetCrimeClusters)
		api.GET("/analisis/trend", d.Handlers.Trend.GetTrend)
		api.GET("/putusan", d.Handlers.Judgment.List)

		master := api.Group("/master")
		{
			master.GET("", d.Handlers.Master.GetAll)
			master.GET("/provinsi", d.Handlers.Master.GetProvinces)
			master.GET("/tahun", d.Handlers.Master.GetYears)
			master.GET("/jenis-kejahatan", d.Handlers.Master.GetCrimeTypes)
		}

		authGroup := api.Group("/auth")
		{
			authGroup.POST("/register", d.Handlers.Auth.Register)
			authGroup.POST("/login", d.Handlers.Auth.Login)
			authGroup.GET("/logout", d.Handlers.Auth.Logout)
			authGroup.GET("/me", middleware.RequireAuth(d.Tokens), d.Handlers.Auth.Me)
		}

		admin := api.Group("/admin", middleware.RequireAuth(d.Tokens), middleware.RequireRole(models.RoleAdmin))
		{
			admin.POST("/putusan/import", d.Handlers.Judgment.Import)
		}
	}

	return r
}
