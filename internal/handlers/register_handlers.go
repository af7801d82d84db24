package handlers

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/SscSPs/garage_invoice_app/cmd/docs"
	portssvc "github.com/SscSPs/garage_invoice_app/internal/core/ports/services"
	"github.com/SscSPs/garage_invoice_app/internal/middleware"
	"github.com/SscSPs/garage_invoice_app/internal/platform/config"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// NewRouter builds the gin engine with the global middleware chain and every route.
func NewRouter(cfg *config.Config, services *portssvc.ServiceContainer, logger *slog.Logger) (*gin.Engine, error) {
	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	if err := r.SetTrustedProxies(nil); err != nil {
		return nil, fmt.Errorf("set trusted proxies: %w", err)
	}

	r.Use(
		middleware.StructuredLoggingMiddleware(logger),
		middleware.Recovery(),
		middleware.SecurityHeaders(),
		middleware.Metrics(),
		cors.New(corsConfig(cfg.CORSAllowedOrigins)),
	)
	if cfg.IsProduction {
		r.Use(middleware.RateLimit(middleware.NewMemoryLimiter(cfg.RateLimitWindow, cfg.RateLimitMax)))
	}

	if err := RegisterRoutes(r, cfg, services); err != nil {
		return nil, err
	}
	return r, nil
}

func corsConfig(origins []string) cors.Config {
	c := cors.DefaultConfig()
	c.AllowHeaders = append(c.AllowHeaders, "Authorization", middleware.RequestIDHeader)
	c.ExposeHeaders = []string{middleware.RequestIDHeader}
	if len(origins) == 0 || slices.Contains(origins, "*") {
		c.AllowAllOrigins = true
		return c
	}
	c.AllowOrigins = origins
	c.AllowCredentials = true
	return c
}

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) error {
	registerValidators()

	loginLimiter, err := middleware.NewFormattedLimiter(cfg.LoginRateLimit)
	if err != nil {
		return fmt.Errorf("invalid login rate limit %q: %w", cfg.LoginRateLimit, err)
	}

	registerHomeRoutes(r)
	middleware.RegisterMetricsEndpoint(r, "/metrics")

	setupAPIRoutes(r, cfg, services, middleware.LoginRateLimit(loginLimiter))

	setupSwaggerRoutes(r, cfg)
	return nil
}

// setupAPIRoutes configures the BASE_URL group. Everything except the
// credential endpoints requires a bearer access token.
func setupAPIRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	loginLimiter gin.HandlerFunc,
) {
	api := r.Group(cfg.BaseURL)
	requireAuth := middleware.AuthMiddleware(services.Auth)

	registerAuthRoutes(api, services.Auth, loginLimiter, requireAuth)

	protected := api.Group("", requireAuth)
	registerCustomerRoutes(protected, services.Customer)
	registerInvoiceRoutes(protected, services.Invoice)
	registerProductRoutes(protected, services.Product)
	registerPDFSettingsRoutes(protected, services.PDFSettings)
	registerAdminRoutes(protected, services.User)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = cfg.BaseURL
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
