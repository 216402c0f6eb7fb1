package main

import (
	"log"
	"time"

	"github.com/fitfusion/backend/config"
	"github.com/fitfusion/backend/internal/api"
	"github.com/fitfusion/backend/internal/database"
	"github.com/fitfusion/backend/internal/middleware"
	"github.com/fitfusion/backend/internal/router"
	"github.com/fitfusion/backend/internal/server"
	"github.com/fitfusion/backend/internal/service"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.New(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Rate limiting is optional: a down Redis must not take the API with it.
	var rateLimiter *middleware.RateLimiter
	redisClient, err := database.NewRedisClient(cfg)
	if err != nil {
		log.Printf("Redis unavailable, AI rate limiting disabled: %v", err)
	} else {
		rateLimiter = middleware.NewRateLimiter(redisClient, middleware.RateLimitConfig{
			Window:    time.Minute,
			Limit:     10,
			KeyPrefix: "ratelimit:ai",
		})
	}

	// External clients are built once here and injected; a missing vector
	// index is a startup failure, not a lazy first-request one.
	embedder := service.NewEmbeddingService(cfg.PineconeAPIKey)
	index, err := service.NewPineconeIndex(cfg.PineconeAPIKey, cfg.PineconeIndexName)
	if err != nil {
		log.Fatalf("Failed to initialize vector index: %v", err)
	}
	anthropic := service.NewAnthropicClient(cfg.AnthropicAPIKey)

	vectorService := service.NewVectorService(index, embedder)
	authService := service.NewAuthService(db, cfg.JWTSecret)
	profileService := service.NewProfileService(db)
	contentService := service.NewContentService(db, vectorService)
	recommendationService := service.NewRecommendationService(anthropic)

	engine := router.SetupRouter(router.Handlers{
		Auth:           api.NewAuthHandler(authService),
		Profile:        api.NewProfileHandler(profileService),
		Content:        api.NewContentHandler(contentService, vectorService),
		Vector:         api.NewVectorHandler(vectorService),
		AI:             api.NewAIHandler(recommendationService, profileService),
		TokenValidator: authService,
		RateLimiter:    rateLimiter,
	})

	srv := server.New(engine, cfg.ServerHost, cfg.ServerPort)
	if err := srv.Run(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
	log.Println("Server stopped")
}
