package handlers

import (
	"net/http"

	"github.com/SscSPs/bokforing_app/cmd/docs"
	portssvc "github.com/SscSPs/bokforing_app/internal/core/ports/services"
	"github.com/SscSPs/bokforing_app/internal/middleware"
	"github.com/SscSPs/bokforing_app/internal/platform/config"
	"github.com/SscSPs/bokforing_app/internal/utils"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/ulule/limiter/v3"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	posthog *utils.PosthogClientWrapper,
	rateLimiter *limiter.Limiter,
) {
	registerValidators()

	// Add health check route
	r.GET("/health", health)

	// Setup API v1 routes with auth, passing service interfaces
	setupAPIV1Routes(r, cfg, services, posthog, rateLimiter)

	// Swagger routes (typically public or conditionally available)
	setupSwaggerRoutes(r, cfg)
}

// health godoc
// @Summary Show the status of server.
// @Tags root
// @Produce plain
// @Success 200 {string} string "OK"
// @Router /health [get]
func health(c *gin.Context) {
	c.String(http.StatusOK, "OK")
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	posthog *utils.PosthogClientWrapper,
	rateLimiter *limiter.Limiter,
) {
	v1 := r.Group("/api/v1")
	if rateLimiter != nil {
		v1.Use(middleware.RateLimit(rateLimiter))
	}
	v1.GET("/health", health)

	// API key first; the JWT middleware skips requests it already authenticated
	if cfg.APIKeyHash != "" {
		v1.Use(middleware.APIKeyAuth(cfg.APIKeyHash, cfg.APIKeyOwnerID))
	}
	v1.Use(middleware.AuthMiddleware(cfg.JWTSecret, cfg.JWTIssuer))
	v1.Use(middleware.PosthogMiddleware(posthog))

	RegisterAccountRoutes(v1, services.Account)
	RegisterLedgerRoutes(v1, services.Ledger, posthog)
	RegisterDocumentRoutes(v1, services.Posting, posthog)
	RegisterPayrollRoutes(v1, services.Payroll, posthog)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
