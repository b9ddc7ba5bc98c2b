package handlers

import (
	"fmt"

	"github.com/SscSPs/fund_balance_app/cmd/docs"
	"github.com/SscSPs/fund_balance_app/internal/core/domain"
	portssvc "github.com/SscSPs/fund_balance_app/internal/core/ports/services"
	"github.com/SscSPs/fund_balance_app/internal/dto"
	"github.com/SscSPs/fund_balance_app/internal/middleware"
	"github.com/SscSPs/fund_balance_app/internal/platform/config"
	"github.com/SscSPs/fund_balance_app/internal/platform/metrics"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) error {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		if err := dto.RegisterValidators(v); err != nil {
			return fmt.Errorf("failed to register validators: %w", err)
		}
	}

	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	if cfg.MetricsEnabled {
		r.GET("/metrics", gin.WrapH(metrics.Handler()))
	}

	loginLimiter, err := middleware.NewMemoryLimiter(cfg.LoginRateLimit)
	if err != nil {
		return fmt.Errorf("failed to create login rate limiter: %w", err)
	}

	api := r.Group("/api")

	// Public routes
	registerAuthRoutes(api, services.Auth, middleware.RateLimit(loginLimiter))
	registerPublicRoutes(api, services.Settings)

	// Everything below needs a bearer token
	authed := api.Group("", middleware.AuthMiddleware(services.Auth))
	registerMeRoutes(authed, services.Account, services.Settings)

	admin := authed.Group("/admin", middleware.RequireRole(domain.RoleAdmin))
	registerAdminUserRoutes(admin, services.Account, services.Settings)
	registerAdminSettingsRoutes(admin, services.Settings)

	if err := registerStaticRoutes(r); err != nil {
		return err
	}

	setupSwaggerRoutes(r, cfg)
	return nil
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
