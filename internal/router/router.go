package router

import (
	"time"

	"github.com/inkpresshq/inkpress-cms-backend/internal/handlers"
	"github.com/inkpresshq/inkpress-cms-backend/internal/middleware"
	"github.com/inkpresshq/inkpress-cms-backend/internal/services"
	"github.com/inkpresshq/inkpress-cms-backend/internal/services/api_key"
	"github.com/inkpresshq/inkpress-cms-backend/internal/services/auth"
	"github.com/inkpresshq/inkpress-cms-backend/internal/services/contenttypes"
	"github.com/inkpresshq/inkpress-cms-backend/internal/services/events"
	"github.com/inkpresshq/inkpress-cms-backend/internal/services/excel"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRouter configures the Gin router with the admin and public API routes
func SetupRouter(db *gorm.DB, publisher *events.Publisher, typeCache *contenttypes.Cache) *gin.Engine {
	// Set Gin mode
	gin.SetMode(gin.ReleaseMode)

	// Create a new router
	r := gin.New()

	// Use middleware
	r.Use(gin.Recovery())
	r.Use(middleware.Logger())

	// Create services
	authService := auth.NewAuthService(db)
	apiKeyService := api_key.NewService(db)
	orgService := services.NewOrganizationService(db)
	userService := services.NewUserService(db)
	postService := services.NewPostService(db, publisher)
	categoryService := services.NewCategoryService(db)
	tagService := services.NewTagService(db)
	settingsService := services.NewSettingsService(db, typeCache)
	excelService := excel.NewService(db)

	// Create middleware with services
	bearerTokenMiddleware := middleware.NewBearerTokenMiddleware(authService, db)
	apiKeyMiddleware := middleware.NewAPIKeyMiddleware(apiKeyService)

	// Create handlers with services
	authHandler := handlers.NewAuthHandler(authService)
	orgHandler := handlers.NewOrganizationHandler(orgService)
	userHandler := handlers.NewUserHandler(userService)
	postHandler := handlers.NewPostHandler(postService)
	categoryHandler := handlers.NewCategoryHandler(categoryService)
	tagHandler := handlers.NewTagHandler(tagService)
	apiKeyHandler := handlers.NewAPIKeyHandler(apiKeyService)
	settingsHandler := handlers.NewSettingsHandler(settingsService)
	exportHandler := handlers.NewExportHandler(excelService)
	publicHandler := handlers.NewPublicHandler(db, typeCache)

	// Dashboard CORS is fixed; the public API computes per-tenant CORS in the
	// API key guard instead
	dashboardCORS := cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	})

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API v1 routes
	api := r.Group("/api/v1")
	{
		// Health check
		api.GET("/health", func(c *gin.Context) {
			c.JSON(200, gin.H{
				"status": "ok",
				"time":   time.Now().Format(time.RFC3339),
			})
		})

		// Auth routes (dashboard)
		authGroup := api.Group("/auth")
		authGroup.Use(dashboardCORS)
		{
			authGroup.POST("/login", authHandler.Login)
			authGroup.POST("/refresh", authHandler.RefreshToken)

			authProtected := authGroup.Group("")
			authProtected.Use(bearerTokenMiddleware.BearerTokenAuthMiddleware())
			{
				authProtected.POST("/logout", authHandler.Logout)
				authProtected.GET("/profile", authHandler.GetProfile)
				authProtected.POST("/change-password", authHandler.ChangePassword)
			}
		}

		// Admin routes (dashboard, JWT protected)
		admin := api.Group("/admin")
		admin.Use(dashboardCORS)
		admin.Use(bearerTokenMiddleware.BearerTokenAuthMiddleware())
		{
			// Organization management is restricted to admins
			orgs := admin.Group("/organizations")
			orgs.Use(bearerTokenMiddleware.RequireAdmin())
			{
				orgs.POST("", orgHandler.CreateOrganization)
				orgs.GET("", orgHandler.ListOrganizations)
				orgs.GET("/:id", orgHandler.GetOrganization)
				orgs.PUT("/:id", orgHandler.UpdateOrganization)
				orgs.DELETE("/:id", orgHandler.DeleteOrganization)
			}

			users := admin.Group("/users")
			users.Use(bearerTokenMiddleware.RequireAdmin())
			{
				users.POST("", userHandler.CreateUser)
				users.GET("", userHandler.ListUsers)
				users.PUT("/:id", userHandler.UpdateUser)
				users.POST("/:id/reset-password", userHandler.ResetPassword)
				users.DELETE("/:id", userHandler.DeleteUser)
			}

			posts := admin.Group("/posts")
			{
				posts.POST("", postHandler.CreatePost)
				posts.GET("", postHandler.ListPosts)
				posts.GET("/export", exportHandler.ExportPosts)
				posts.GET("/:id", postHandler.GetPost)
				posts.PUT("/:id", postHandler.UpdatePost)
				posts.DELETE("/:id", postHandler.DeletePost)
			}

			categories := admin.Group("/categories")
			{
				categories.POST("", categoryHandler.CreateCategory)
				categories.GET("", categoryHandler.ListCategories)
				categories.PUT("/:id", categoryHandler.UpdateCategory)
				categories.DELETE("/:id", categoryHandler.DeleteCategory)
			}

			tags := admin.Group("/tags")
			{
				tags.POST("", tagHandler.CreateTag)
				tags.GET("", tagHandler.ListTags)
				tags.PUT("/:id", tagHandler.UpdateTag)
				tags.DELETE("/:id", tagHandler.DeleteTag)
			}

			apiKeys := admin.Group("/api-keys")
			{
				apiKeys.POST("", apiKeyHandler.CreateAPIKey)
				apiKeys.GET("", apiKeyHandler.ListAPIKeys)
				apiKeys.DELETE("/:id", apiKeyHandler.DeleteAPIKey)
			}

			admin.GET("/settings", settingsHandler.GetSettings)
			admin.PUT("/settings", settingsHandler.UpdateSettings)
		}

		// Public read API (API key protected, per-tenant CORS). OPTIONS routes
		// are answered inside the guard, so the handlers are never reached on
		// preflight.
		public := api.Group("")
		public.Use(apiKeyMiddleware.Guard())
		{
			public.GET("/posts", publicHandler.ListPosts)
			public.OPTIONS("/posts", noop)
			public.GET("/posts/:slug", publicHandler.GetPost)
			public.OPTIONS("/posts/:slug", noop)
			public.GET("/categories", publicHandler.ListCategories)
			public.OPTIONS("/categories", noop)
			public.GET("/categories/:slug", publicHandler.GetCategory)
			public.OPTIONS("/categories/:slug", noop)
			public.GET("/settings", publicHandler.GetSettings)
			public.OPTIONS("/settings", noop)
		}
	}

	return r
}

// noop exists so gin has a route to attach the guard's OPTIONS handling to
func noop(c *gin.Context) {}
