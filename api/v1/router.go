package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/headshot-studio/backend/lib/llm"
	"github.com/headshot-studio/backend/lib/modelgen"
	"github.com/headshot-studio/backend/lib/storage"
	"github.com/headshot-studio/backend/middleware"
	"github.com/headshot-studio/backend/services"
)

var (
	projectService    *services.ProjectService
	photoService      *services.PhotoService
	trainingService   *services.TrainingService
	generationService *services.GenerationService
	headshotService   *services.HeadshotService
	socialService     *services.SocialService
	paymentService    *services.PaymentService
)

// InitServices wires the provider-backed services. Must be called before
// RegisterRoutes.
func InitServices(analyzer llm.Analyzer, captions llm.CaptionGenerator, trainer modelgen.Trainer, generator modelgen.Generator, store storage.Store) {
	projectService = services.NewProjectService(store)
	photoService = services.NewPhotoService(analyzer, store)
	trainingService = services.NewTrainingService(trainer)
	generationService = services.NewGenerationService(generator, store)
	headshotService = services.NewHeadshotService()
	socialService = services.NewSocialService(captions)
	paymentService = services.NewPaymentService()
}

// RegisterRoutes registers all v1 API routes
func RegisterRoutes(router *gin.RouterGroup) {
	// Health check endpoint
	router.GET("/health", HealthCheck)

	// Auth endpoints
	authGroup := router.Group("/auth")
	{
		authGroup.POST("/register", Register)
		authGroup.POST("/login", Login)
		authGroup.POST("/logout", Logout)
		// Use auth middleware here only for the /me endpoint
		authGroup.GET("/me", middleware.AuthMiddleware(), GetCurrentUser)
	}

	// Project endpoints - protected by AuthMiddleware
	projectGroup := router.Group("/projects")
	projectGroup.Use(middleware.AuthMiddleware())
	{
		projectGroup.GET("", ListProjects)
		projectGroup.POST("", CreateProject)
		projectGroup.GET("/:id", GetProject)
		projectGroup.PUT("/:id", UpdateProject)
		projectGroup.DELETE("/:id", DeleteProject)

		// Photo intake and analysis
		projectGroup.GET("/:id/photos", ListPhotos)
		projectGroup.POST("/:id/photos", UploadPhoto)
		projectGroup.POST("/:id/photos/analyze", AnalyzePhotos)

		// Training job
		projectGroup.POST("/:id/training", StartTraining)
		projectGroup.GET("/:id/training", GetTrainingProgress)

		// Generation
		projectGroup.POST("/:id/preview", GeneratePreview)
		projectGroup.POST("/:id/generate", GenerateFullSet)
		projectGroup.GET("/:id/headshots", ListHeadshots)
	}

	// Headshot endpoints - protected by AuthMiddleware
	headshotGroup := router.Group("/headshots")
	headshotGroup.Use(middleware.AuthMiddleware())
	{
		headshotGroup.PATCH("/:id", UpdateHeadshot)
		headshotGroup.GET("/:id/download", DownloadHeadshot)
	}

	// Social content endpoints - protected by AuthMiddleware
	socialGroup := router.Group("/social")
	socialGroup.Use(middleware.AuthMiddleware())
	{
		socialGroup.GET("/accounts", ListSocialAccounts)
		socialGroup.POST("/accounts", CreateSocialAccount)
		socialGroup.GET("/accounts/:id/posts", ListSocialPosts)
		socialGroup.POST("/posts", CreateSocialPost)
		socialGroup.POST("/posts/:id/posted", MarkSocialPostPosted)
	}

	// Payment history - protected by AuthMiddleware
	paymentGroup := router.Group("/payments")
	paymentGroup.Use(middleware.AuthMiddleware())
	{
		paymentGroup.GET("", ListPayments)
	}

	// Provider webhooks - authenticated by shared secret, not JWT
	webhookGroup := router.Group("/webhooks")
	webhookGroup.Use(middleware.WebhookMiddleware())
	{
		webhookGroup.POST("/payment", PaymentWebhook)
	}
}
