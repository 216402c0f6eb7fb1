package router

import (
	"github.com/gin-gonic/gin"

	"github.com/fitfusion/backend/internal/api"
	"github.com/fitfusion/backend/internal/middleware"
	"github.com/fitfusion/backend/internal/service"
)

// Handlers bundles everything the route table needs.
type Handlers struct {
	Auth    *api.AuthHandler
	Profile *api.ProfileHandler
	Content *api.ContentHandler
	Vector  *api.VectorHandler
	AI      *api.AIHandler

	// TokenValidator backs the auth middleware.
	TokenValidator middleware.TokenValidator

	// RateLimiter guards the AI endpoints; nil disables rate limiting.
	RateLimiter *middleware.RateLimiter
}

// SetupRouter configures the application routes
func SetupRouter(h Handlers) *gin.Engine {
	router := gin.Default()
	router.Use(middleware.CORS())

	authMW := middleware.AuthMiddleware(h.TokenValidator)
	adminMW := middleware.AdminMiddleware()

	var rateLimitMW gin.HandlerFunc
	if h.RateLimiter != nil {
		rateLimitMW = h.RateLimiter.Middleware()
	}

	root := router.Group("/api")
	{
		h.Auth.RegisterRoutes(root)
		h.Profile.RegisterRoutes(root, authMW)
		h.Content.RegisterRoutes(root, authMW, adminMW)
		h.Vector.RegisterRoutes(root, authMW)
		h.AI.RegisterRoutes(root, authMW, rateLimitMW)
	}

	return router
}

var _ middleware.TokenValidator = (service.IAuthService)(nil)
