package v1

import (
	"log/slog"
	"strings"
	"time"

	"go-talent-backend/config"
	"go-talent-backend/internal/delivery/http/middleware"
	"go-talent-backend/internal/domain"
	"go-talent-backend/internal/usecase"
	"go-talent-backend/pkg/auth"
	"go-talent-backend/pkg/metrics"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	TalentUC domain.TalentUsecase
	HealthUC usecase.HealthUsecase
	Config   *config.Config
	JWKS     *auth.Provider     // nil accepts HS256 tokens only
	Limiter  middleware.Limiter // nil limits in memory only
	Metrics  *metrics.Metrics   // nil disables /metrics
	Logger   *slog.Logger
}

func NewRouter(deps RouterDeps) *gin.Engine {
	cfg := deps.Config
	log := deps.Logger
	if log == nil {
		log = slog.Default()
	}

	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(splitOrigins(cfg.FrontendURL), cfg.IsProduction())) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.SecurityHeadersMiddleware(cfg.IsProduction()))
	if deps.Metrics != nil {
		r.Use(deps.Metrics.GinMiddleware())
		r.GET("/metrics", gin.WrapH(deps.Metrics.Handler()))
	}
	r.Use(middleware.ErrorHandler(cfg.DebugErrors(), log))

	v1 := r.Group("/v1")

	NewHealthHandler(v1, deps.HealthUC)

	// Swagger
	v1.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Protected routes
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(cfg.JWTSecret, deps.JWKS, log))
	protected.Use(middleware.RequireRoles(domain.RoleCompany, domain.RoleAdmin))
	{
		searchLimit := middleware.RateLimitMiddleware(middleware.SearchRateLimitConfig(
			cfg.RateLimitSearchThreshold,
			time.Duration(cfg.RateLimitWindowSeconds)*time.Second,
			deps.Limiter,
			log,
		))
		NewTalentHandler(protected, deps.TalentUC, searchLimit)
	}

	return r
}

func splitOrigins(s string) []string {
	var origins []string
	for _, o := range strings.Split(s, ",") {
		if o = strings.TrimRight(strings.TrimSpace(o), "/"); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}
