package routes

import (
	"fmt"
	"net/http"

	"bleck-backend/internal/api/handlers"
	"bleck-backend/internal/api/middleware"
	"bleck-backend/internal/auth"
	"bleck-backend/internal/cache"
	"bleck-backend/internal/client"
	"bleck-backend/internal/config"
	"bleck-backend/internal/logger"
	"bleck-backend/internal/platform"
	"bleck-backend/internal/repository"
	"bleck-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// Dependencies are the long-lived resources the router is built on
type Dependencies struct {
	DB         *gorm.DB
	AuthConfig *auth.AuthConfig
	Cache      cache.CacheService

	// Optional overrides, used by tests to point platforms at fake servers
	HTTPClient *http.Client
	Providers  *platform.Registry
	Clients    *client.Registry
	Store      service.CredentialStore
}

// SetupRoutes configures all the routes for the application
func SetupRoutes(deps Dependencies) (*gin.Engine, error) {
	if deps.AuthConfig == nil {
		return nil, fmt.Errorf("auth configuration is required")
	}
	if deps.Cache == nil {
		deps.Cache = cache.NewInMemoryCache(cache.OAuthStateTTL, cache.DefaultCacheConfig().CleanupInterval)
	}
	if deps.HTTPClient == nil {
		deps.HTTPClient = platform.DefaultHTTPClient
	}

	router := gin.New()
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())

	// One session guard for the whole engine; public paths are allow-listed inside it
	verifier, err := auth.NewSessionVerifier(deps.AuthConfig.SessionSecret)
	if err != nil {
		return nil, err
	}
	guard := auth.NewSessionGuard(verifier, deps.AuthConfig.SessionCookie, nil)
	router.Use(guard.Middleware())

	providers := deps.Providers
	if providers == nil {
		providers = platform.NewRegistry(deps.AuthConfig, deps.HTTPClient)
	}
	clients := deps.Clients
	if clients == nil {
		clients = client.NewRegistry(providers, deps.HTTPClient, client.DefaultBreakerSettings)
	}
	store := deps.Store
	if store == nil {
		store = repository.NewCredentialRepository(deps.DB)
	}

	configured := make([]string, 0)
	for _, p := range providers.Configured() {
		configured = append(configured, string(p))
	}
	logger.New().WithField("platforms", configured).Info("Platform providers configured")

	// Initialize services
	states := cache.NewOAuthStateStore(deps.Cache, cache.OAuthStateTTL)
	tokenService := service.NewTokenService(store, providers, states, deps.AuthConfig)
	adsService := service.NewAdsService(tokenService, clients, service.NewValidator())

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(deps.DB, deps.Cache)
	adsHandler := handlers.NewAdsHandler(adsService)
	connectionHandler := handlers.NewConnectionHandler(tokenService, deps.AuthConfig.SiteURL)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// OAuth connect routes; only the callback is public
	oauth := router.Group("/api/auth/:platform")
	{
		oauth.GET("/start", connectionHandler.Start)
		oauth.GET("/callback", connectionHandler.Callback)
	}

	v1 := router.Group("/api/v1")
	{
		connections := v1.Group("/connections")
		{
			connections.GET("", connectionHandler.List)
			connections.DELETE("/:platform", connectionHandler.Disconnect) // DELETE /api/v1/connections/:platform?account_id=<id>
		}

		platforms := v1.Group("/platforms/:platform")
		{
			platforms.GET("/accounts", adsHandler.ListAccounts)
			platforms.GET("/campaigns", adsHandler.ListCampaigns) // GET /api/v1/platforms/:platform/campaigns?ad_account_id=<id>
			platforms.POST("/campaigns/:id/status", adsHandler.SetCampaignStatus)
			platforms.POST("/campaigns/:id/budget", adsHandler.SetDailyBudget)
			platforms.POST("/campaigns/:id/rename", adsHandler.RenameCampaign)
			platforms.POST("/accounts/:id/status", adsHandler.SetAccountStatus) // 501, no platform API for it
		}
	}

	// Catch-all route for undefined endpoints
	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"error":      "Endpoint not found",
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
			"request_id": c.GetString(logger.RequestIDKey),
		})
	})

	return router, nil
}

// Handler wraps the router with the net/http layer: CORS and per-IP rate limiting
func Handler(router http.Handler, cfg *config.Config) http.Handler {
	return middleware.Wrap(router, middleware.HTTPConfig{
		AllowedOrigins:    cfg.AllowedOrigins,
		RateLimitRequests: cfg.RateLimitPerMinute,
	})
}
