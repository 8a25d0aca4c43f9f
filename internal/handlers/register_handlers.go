package handlers

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/novaerp/accounting_backend/cmd/docs"
	"github.com/novaerp/accounting_backend/internal/core/domain"
	portssvc "github.com/novaerp/accounting_backend/internal/core/ports/services"
	"github.com/novaerp/accounting_backend/internal/middleware"
	"github.com/novaerp/accounting_backend/pkg/config"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {

	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	// Register public authentication routes
	registerAuthRoutes(r, cfg, services.User)

	// Setup accounting API routes with Auth Middleware, passing service interfaces
	setupAccountingRoutes(r, cfg, services)

	// Swagger routes (typically public or conditionally available)
	setupSwaggerRoutes(r, cfg)
}

// setupAccountingRoutes configures the /api/accounting group and delegates to
// specific entity route registrations. Reads require any authenticated user;
// mutations additionally require the ADMIN or MANAGER role.
func setupAccountingRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	// Apply AuthMiddleware to the entire accounting group
	api := r.Group("/api/accounting", middleware.AuthMiddleware(cfg.JWTSecret))

	canMutate := middleware.RequireRoles(domain.RoleAdmin, domain.RoleManager)

	registerAccountRoutes(api, services.Account, canMutate)
	registerJournalRoutes(api, services.Journal, canMutate)
	registerBudgetRoutes(api, services.Budget, canMutate)
	registerAssetRoutes(api, services.Asset, canMutate)
	registerReportingRoutes(api, services.Reporting)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	// Swagger setup
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/accounting"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
