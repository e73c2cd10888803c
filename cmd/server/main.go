package main

import (
	"fmt"
	"log"
	"net/http"

	"gamevault/backend/internal/auth"
	"gamevault/backend/internal/config"
	"gamevault/backend/internal/database"
	"gamevault/backend/internal/handler"
	"gamevault/backend/internal/storage"

	"github.com/gin-gonic/gin"

	// Swagger imports
	_ "gamevault/backend/docs" // This is important for swag to find the generated docs

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func init() {
	config.LoadConfig()
}

// @title           GameVault API
// @version         1.0
// @description     Catalog service for browser-playable game packages.
// @host            localhost:8080
// @BasePath        /api/v1
// @securityDefinitions.apiKey BearerAuth
// @in header
// @name Authorization
func main() {
	// Connect to the database
	database.Connect(config.AppConfig.DatabaseURL)

	store, err := storage.New(config.AppConfig.IconDir, config.AppConfig.BuildDir)
	if err != nil {
		log.Fatalf("Failed to prepare asset store: %v", err)
	}
	if err := handler.Init(database.DB, store, config.AppConfig.ScratchDir); err != nil {
		log.Fatalf("Failed to initialize handlers: %v", err)
	}

	router := gin.Default()

	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})

	// API v1 routes
	apiV1 := router.Group("/api/v1")
	{
		// Auth routes
		authRoutes := apiV1.Group("/auth")
		{
			authRoutes.POST("/login", handler.LoginAdmin)
			authRoutes.GET("/profile", auth.AuthMiddleware(), handler.GetAdminProfile)
		}

		// Public catalog routes (consumed by the site)
		apiV1.GET("/games", handler.GetGames)
		apiV1.GET("/games/:slugOrId", handler.GetGame)

		apiV1.GET("/categories", handler.GetCategories)
		apiV1.GET("/categories/active", handler.GetActiveCategories)
		apiV1.GET("/categories/hide-section-status", handler.CategorySectionStatus)

		apiV1.GET("/tags", handler.GetTags)
		apiV1.GET("/tags/active", handler.GetActiveTags)
		apiV1.GET("/tags/hide-section-status", handler.TagSectionStatus)

		apiV1.GET("/coming-soon", handler.GetComingSoon)
		apiV1.GET("/coming-soon/active", handler.GetActiveComingSoon)
		apiV1.GET("/coming-soon/hide-section-status", handler.ComingSoonSectionStatus)

		apiV1.GET("/feature-games", handler.GetFeatureGames)
		apiV1.GET("/feature-games/active", handler.GetActiveFeatureGames)
		apiV1.GET("/feature-games/hide-section-status", handler.FeatureGameSectionStatus)

		// Admin routes (protected by auth and admin check)
		adminRoutes := apiV1.Group("/admin")
		adminRoutes.Use(auth.AuthMiddleware(), auth.AdminMiddleware())
		{
			games := adminRoutes.Group("/games")
			{
				games.POST("", handler.CreateGame)
				games.PUT("/:id", handler.UpdateGame)
				games.PATCH("/:id/toggle", handler.ToggleGameActive)
				games.DELETE("/:id", handler.DeleteGame)
			}

			categories := adminRoutes.Group("/categories")
			{
				categories.POST("", handler.CreateCategory)
				categories.PUT("/:id", handler.UpdateCategory)
				categories.DELETE("/:id", handler.DeleteCategory)
				categories.PUT("/:id/toggle-hide", handler.ToggleHideCategory)
				categories.POST("/toggle-hide-section", handler.ToggleHideCategorySection)
			}

			tags := adminRoutes.Group("/tags")
			{
				tags.POST("", handler.CreateTag)
				tags.PUT("/:id", handler.UpdateTag)
				tags.DELETE("/:id", handler.DeleteTag)
				tags.PUT("/:id/toggle-hide", handler.ToggleHideTag)
				tags.POST("/toggle-hide-section", handler.ToggleHideTagSection)
			}

			comingSoon := adminRoutes.Group("/coming-soon")
			{
				comingSoon.POST("", handler.CreateComingSoon)
				comingSoon.PUT("/:id", handler.UpdateComingSoon)
				comingSoon.DELETE("/:id", handler.DeleteComingSoon)
				comingSoon.PUT("/:id/toggle-hide", handler.ToggleHideComingSoon)
				comingSoon.POST("/toggle-hide-section", handler.ToggleHideComingSoonSection)
			}

			featureGames := adminRoutes.Group("/feature-games")
			{
				featureGames.POST("", handler.UpsertFeatureGame)
				featureGames.DELETE("/:id", handler.DeleteFeatureGame)
				featureGames.DELETE("/position/:position", handler.DeleteFeatureGameByPosition)
				featureGames.POST("/toggle-hide-section", handler.ToggleHideFeatureGameSection)
			}

			// Admin account management (super-admin only)
			users := adminRoutes.Group("/users", auth.SuperAdminMiddleware())
			{
				users.GET("", handler.GetAdmins)
				users.POST("", handler.CreateAdmin)
				users.DELETE("/:id", handler.DeleteAdmin)
			}
		}
	}

	fmt.Printf("Server is running on %s\n", config.AppConfig.ListenAddr)
	fmt.Println("Swagger UI is available at http://localhost:8080/swagger/index.html")
	log.Fatal(router.Run(config.AppConfig.ListenAddr))
}
