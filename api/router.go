package api

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	swaggerFiles "github.com/swaggo/files"     // swagger embed files
	ginSwagger "github.com/swaggo/gin-swagger" // gin-swagger middleware

	"policyedge/analysis"
	"policyedge/config"
	"policyedge/db"
	_ "policyedge/docs" // registers the swagger spec via init()
	"policyedge/middleware"
	"policyedge/utils"
)

// SetupRouter builds the gin engine with every route of the service.
func SetupRouter(cfg *config.Config, database *db.Database, engine *analysis.Engine, tokens utils.TokenScheme, log zerolog.Logger) *gin.Engine {
	router := gin.New()
	router.RedirectTrailingSlash = false

	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(log))
	router.Use(middleware.Recovery(log))
	router.Use(middleware.CORS(cfg.CORS.AllowedOrigins))

	// --- Public Routes (No Auth Required) ---
	router.GET("/", RootHandler)
	router.GET("/health", HealthHandler)
	router.GET("/api-keys", func(c *gin.Context) {
		APIKeysInfoHandler(c, cfg)
	})
	router.POST("/token", func(c *gin.Context) {
		LoginHandler(c, database, tokens)
	})
	router.POST("/users", func(c *gin.Context) {
		RegisterHandler(c, database)
	})

	// --- Protected Routes (Auth Required) ---
	authMiddleware := utils.AuthMiddleware(tokens, database.Users)

	userGroup := router.Group("/users")
	userGroup.Use(authMiddleware)
	{
		userGroup.GET("/me", GetCurrentUserHandler)
		userGroup.PUT("/api-keys", UpdateAPIKeysHandler)
	}

	policyGroup := router.Group("/policies")
	policyGroup.Use(authMiddleware)
	{
		policyGroup.POST("", func(c *gin.Context) {
			UploadPolicyHandler(c, database)
		})
		policyGroup.GET("", func(c *gin.Context) {
			ListPoliciesHandler(c, database)
		})
		policyGroup.GET("/:id", func(c *gin.Context) {
			GetPolicyHandler(c, database)
		})
	}

	analysisGroup := router.Group("/analysis")
	analysisGroup.Use(authMiddleware)
	{
		analysisGroup.POST("", func(c *gin.Context) {
			AnalyzePolicyHandler(c, engine)
		})
		analysisGroup.GET("/:id", func(c *gin.Context) {
			GetAnalysisHandler(c, engine)
		})
	}

	router.GET("/dashboard/stats", authMiddleware, func(c *gin.Context) {
		DashboardStatsHandler(c, database)
	})

	// --- Swagger Route ---
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return router
}
