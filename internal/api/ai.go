package api

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fitfusion/backend/internal/service"
	"github.com/fitfusion/backend/internal/types"
)

// AIHandler serves the model-backed endpoints: the one-shot recommendation
// document and the streaming chat.
type AIHandler struct {
	recommendations service.IRecommendationService
	profiles        service.IProfileService
}

// NewAIHandler creates a new AIHandler instance
func NewAIHandler(recommendations service.IRecommendationService, profiles service.IProfileService) *AIHandler {
	return &AIHandler{recommendations: recommendations, profiles: profiles}
}

// RegisterRoutes registers the AI routes. rateLimit may be nil when no Redis
// connection is configured.
func (h *AIHandler) RegisterRoutes(r *gin.RouterGroup, auth gin.HandlerFunc, rateLimit gin.HandlerFunc) {
	handlers := func(final gin.HandlerFunc) []gin.HandlerFunc {
		chain := []gin.HandlerFunc{auth}
		if rateLimit != nil {
			chain = append(chain, rateLimit)
		}
		return append(chain, final)
	}

	r.POST("/recommendations", handlers(h.Recommendations)...)
	r.POST("/chat", handlers(h.Chat)...)
}

// Recommendations builds the personalized recommendation document for the
// authenticated user in one blocking model call.
func (h *AIHandler) Recommendations(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	user, err := h.profiles.GetUserDetail(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}

	recommendations, err := h.recommendations.Recommend(c.Request.Context(), user)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMalformedAIResponse):
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Invalid AI response format"})
		case errors.Is(err, service.ErrAIResponseParse):
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to parse AI recommendations"})
		default:
			log.Printf("Error generating AI recommendations: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, recommendations)
}

// Chat relays the model's streaming reply as a chunked plain-text body.
func (h *AIHandler) Chat(c *gin.Context) {
	var req types.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.Header("Content-Type", "text/plain; charset=utf-8")
	c.Status(http.StatusOK)

	flusher, _ := c.Writer.(http.Flusher)
	err := h.recommendations.Chat(c.Request.Context(), req.Query, func(text string) error {
		if _, err := c.Writer.WriteString(text); err != nil {
			return err
		}
		if flusher != nil {
			flusher.Flush()
		}
		return nil
	})
	if err != nil {
		// Headers are already out; all we can do is log and close.
		log.Printf("Error streaming chat response: %v", err)
	}
}
