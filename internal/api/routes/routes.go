package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/upgradehq/upgrade-backend/internal/api/handlers"
	"github.com/upgradehq/upgrade-backend/internal/api/middleware"
	"github.com/upgradehq/upgrade-backend/internal/config"
	"github.com/upgradehq/upgrade-backend/internal/services"
	"github.com/upgradehq/upgrade-backend/internal/store"
	"github.com/upgradehq/upgrade-backend/pkg/logger"
	"gorm.io/gorm"
)

func SetupRoutes(router *gin.Engine, db *gorm.DB, cfg *config.Config) {
	// Middleware
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(middleware.CORSMiddleware(cfg))

	// Initialize services
	engagementStore := store.New(db)
	aggregationService := services.NewAggregationService(engagementStore)
	commentService := services.NewCommentService(engagementStore)
	voteService := services.NewVoteService(engagementStore)
	productService := services.NewProductService(db, aggregationService, commentService)
	authService := services.NewAuthService(db, cfg.JWTSecret)
	userService := services.NewUserService(db, aggregationService)
	emailService := services.NewEmailService(cfg)
	subscriberService := services.NewSubscriberService(db, emailService)
	s3Service := services.NewS3Service(cfg.AWSRegion, cfg.AWSBucket, cfg.AWSAccessKey, cfg.AWSSecretKey)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	productHandler := handlers.NewProductHandler(productService, s3Service)
	voteHandler := handlers.NewVoteHandler(voteService)
	commentHandler := handlers.NewCommentHandler(commentService)
	userHandler := handlers.NewUserHandler(userService)
	subscribeHandler := handlers.NewSubscribeHandler(subscriberService)

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok", "message": "Upgrade API is running"})
	})

	api := router.Group("/api")

	// Auth routes
	auth := api.Group("/auth")
	{
		auth.POST("/signup", authHandler.Signup)
		auth.POST("/login", authHandler.Login)
		auth.POST("/google", authHandler.GoogleAuth)
		auth.GET("/me", middleware.AuthMiddleware(cfg), authHandler.Me)
	}

	// Product routes; reads resolve the viewer when a token is present
	products := api.Group("/products")
	{
		products.GET("/", middleware.OptionalAuthMiddleware(cfg), productHandler.GetAllProducts)
		products.GET("/categories", productHandler.GetCategories)
		products.GET("/:product_id", middleware.OptionalAuthMiddleware(cfg), productHandler.GetProduct)
		products.GET("/:product_id/comments", commentHandler.GetThread)
		products.POST("/", middleware.AuthMiddleware(cfg), productHandler.CreateProduct)
		products.POST("/:product_id/vote", middleware.AuthMiddleware(cfg), voteHandler.ToggleVote)
		products.POST("/:product_id/comments", middleware.AuthMiddleware(cfg), commentHandler.AddComment)
		products.POST("/:product_id/logo", middleware.AuthMiddleware(cfg), productHandler.UploadLogo)
	}

	// User routes
	users := api.Group("/users", middleware.AuthMiddleware(cfg))
	{
		users.GET("/my-list", userHandler.GetSavedProducts)
		users.DELETE("/my-list/:product_id", userHandler.RemoveSavedProduct)
		users.PUT("/profile", userHandler.UpdateProfile)
	}

	// Newsletter routes
	api.POST("/subscribe", subscribeHandler.Subscribe)
	api.DELETE("/subscribe", subscribeHandler.Unsubscribe)

	logger.Info("Routes initialized successfully")
}
