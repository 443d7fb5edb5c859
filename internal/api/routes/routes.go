package routes

import (
	"fmt"

	"crm-backend/internal/api/handlers"
	"crm-backend/internal/api/middleware"
	"crm-backend/internal/auth"
	"crm-backend/internal/config"
	crmgraphql "crm-backend/internal/graphql"
	"crm-backend/internal/repository"
	"crm-backend/internal/service"
	"crm-backend/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// Version is reported by the health endpoint
var Version = "dev"

// Dependencies are the long-lived pieces shared with the server process
type Dependencies struct {
	Profiles *auth.ProfileCache
	Avatars  *storage.FileStore
	Registry *prometheus.Registry
}

// NewDependencies builds the shared state from configuration
func NewDependencies(cfg *config.Config) (*Dependencies, error) {
	avatars, err := storage.NewDiskStore(cfg.AvatarStorageDir, cfg.AvatarBaseURL)
	if err != nil {
		return nil, fmt.Errorf("avatar storage: %w", err)
	}
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return &Dependencies{
		Profiles: auth.NewProfileCache(cfg.ProfileCacheTTL),
		Avatars:  avatars,
		Registry: registry,
	}, nil
}

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config, deps *Dependencies) (*gin.Engine, error) {
	// Create router
	router := gin.New()

	metrics := middleware.NewMetrics(deps.Registry)

	// Add middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS(cfg))
	router.Use(metrics.Middleware())

	// Initialize validator
	validator := service.NewValidator()

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	sessionRepo := repository.NewSessionRepository(db)
	companyRepo := repository.NewCompanyRepository(db)
	interactionRepo := repository.NewInteractionRepository(db)

	// Session resolution
	guard := auth.NewGuard(sessionRepo)
	codec := auth.NewCookieCodec(cfg.SessionSecret)
	authMiddleware := auth.NewAuthMiddleware(guard, codec)

	// Initialize services
	accountService := service.NewAccountService(userRepo, sessionRepo, deps.Profiles, validator, cfg.SessionTTL)
	companyService := service.NewCompanyService(companyRepo, validator)
	interactionService := service.NewInteractionService(interactionRepo)
	userService := service.NewUserService(userRepo, deps.Avatars, deps.Profiles, validator)

	schema, err := crmgraphql.NewSchema(crmgraphql.NewResolver(companyService, interactionService))
	if err != nil {
		return nil, fmt.Errorf("graphql schema: %w", err)
	}

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db, Version)
	authHandler := handlers.NewAuthHandler(accountService, codec, cfg.IsProduction())
	companyHandler := handlers.NewCompanyHandler(companyService)
	interactionHandler := handlers.NewInteractionHandler(interactionService)
	accountHandler := handlers.NewAccountHandler(userService)
	pageHandler := handlers.NewPageHandler()
	graphqlHandler := crmgraphql.NewHandler(schema)

	signInLimiter := middleware.NewRateLimiter(cfg.SignInRatePerSecond, cfg.SignInRateBurst)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/live", healthHandler.Live)
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Uploaded avatars
	router.StaticFS("/static", deps.Avatars.HTTPFileSystem())

	// Authentication
	authGroup := router.Group("/api/auth")
	{
		authGroup.POST("/sign-up", authHandler.SignUp)
		authGroup.POST("/sign-in", signInLimiter.Middleware(), authHandler.SignIn)
		authGroup.POST("/sign-out", authMiddleware.RequireSession(), authHandler.SignOut)
	}

	// API v1 routes, all scoped to the signed-in user
	v1 := router.Group("/api/v1", authMiddleware.RequireSession())
	{
		v1.GET("/me", accountHandler.GetCurrentUser)
		v1.PUT("/account", accountHandler.UpdateProfile)
		v1.GET("/board", companyHandler.GetBoard)
		v1.POST("/board/moves", companyHandler.MoveCard)

		companies := v1.Group("/companies")
		{
			companies.POST("", companyHandler.CreateCompany)
			companies.GET("", companyHandler.ListCompanies)
			companies.GET("/:id", companyHandler.GetCompany)
			companies.PUT("/:id", companyHandler.UpdateCompanyDetails)
			companies.PATCH("/:id/status", companyHandler.UpdateCompanyStatus)
			companies.DELETE("/:id", companyHandler.DeleteCompany)
			companies.GET("/:id/interactions", interactionHandler.ListInteractions)
			companies.POST("/:id/interactions", interactionHandler.CreateInteraction)
		}
	}

	// GraphQL resolves the session when present; resolvers insist on it
	router.POST("/graphql", authMiddleware.OptionalSession(), graphqlHandler.Execute)

	// Browser pages behind the route filter
	pages := router.Group("", authMiddleware.RouteFilter())
	{
		pages.GET(auth.HomePath, pageHandler.Page("dashboard"))
		pages.GET(auth.LoginPath, pageHandler.Page("login"))
		pages.GET(auth.SignUpPath, pageHandler.Page("sign-up"))
		pages.GET("/account", pageHandler.Page("account"))
	}

	return router, nil
}
