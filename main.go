package main

import (
	"context"
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	v1 "github.com/headshot-studio/backend/api/v1"
	"github.com/headshot-studio/backend/config"
	"github.com/headshot-studio/backend/database"
	"github.com/headshot-studio/backend/lib/llm"
	"github.com/headshot-studio/backend/lib/modelgen"
	"github.com/headshot-studio/backend/lib/storage"
)

func main() {
	// Load environment variables
	config.LoadEnv()

	// Set Gin mode
	gin.SetMode(gin.ReleaseMode)

	// Connect to the database and run migrations
	database.Initialize()

	// Provider clients
	store, err := storage.NewS3Store(context.Background(), storage.S3Config{
		Endpoint:        config.GetEnv("S3_ENDPOINT", ""),
		Region:          config.GetEnv("S3_REGION", "us-east-1"),
		AccessKeyID:     config.GetEnv("S3_ACCESS_KEY_ID", ""),
		AccessKeySecret: config.GetEnv("S3_ACCESS_KEY_SECRET", ""),
		Bucket:          config.GetEnv("S3_BUCKET", "headshot-studio"),
		PublicURL:       config.GetEnv("S3_PUBLIC_URL", ""),
	})
	if err != nil {
		log.Fatalf("Failed to initialize storage: %v", err)
	}

	llmClient := llm.NewClient(
		config.GetEnv("LLM_BASE_URL", "https://api.anthropic.com"),
		config.GetEnv("LLM_API_KEY", ""),
		config.GetEnv("LLM_MODEL", "claude-sonnet-4-20250514"),
	)

	modelgenClient := modelgen.NewClient(
		config.GetEnv("MODELGEN_BASE_URL", "https://api.replicate.com"),
		config.GetEnv("MODELGEN_API_KEY", ""),
	)

	// Photo analysis degrades to a neutral default when the vision
	// provider is down; caption generation does not.
	analyzer := &llm.FallbackAnalyzer{Inner: llmClient}

	v1.InitServices(analyzer, llmClient, modelgenClient, modelgenClient, store)

	// Initialize router
	router := gin.Default()

	// CORS configuration
	router.Use(cors.New(cors.Config{
		AllowAllOrigins:  true,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Webhook-Secret"},
		AllowCredentials: true,
	}))

	// Register v1 routes
	apiV1 := router.Group("/api/v1")
	v1.RegisterRoutes(apiV1)

	// Get port from environment or use default
	port := config.GetEnv("PORT", "8080")

	// Start server
	log.Printf("Headshot Studio API starting on port %s", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
