package api

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fitfusion/backend/internal/models"
	"github.com/fitfusion/backend/internal/service"
	"github.com/fitfusion/backend/internal/types"
)

// VectorHandler exposes the index directly: ad-hoc search, upsert of
// entries that never touch the catalog table, and deletion by embedding key.
type VectorHandler struct {
	vectors service.IVectorService
}

// NewVectorHandler creates a new VectorHandler instance
func NewVectorHandler(vectors service.IVectorService) *VectorHandler {
	return &VectorHandler{vectors: vectors}
}

// RegisterRoutes registers the vector routes behind the auth middleware.
func (h *VectorHandler) RegisterRoutes(r *gin.RouterGroup, auth gin.HandlerFunc) {
	vector := r.Group("/vector")
	vector.Use(auth)
	{
		vector.POST("/search", h.Search)
		vector.POST("/upsert", h.Upsert)
		vector.DELETE("/delete", h.Delete)
		vector.DELETE("/delete/:embedding_id", h.Delete)
	}
}

// Search runs a semantic query with caller-supplied filters. The default
// limit is 5; larger limits are clamped by the service.
func (h *VectorHandler) Search(c *gin.Context) {
	var req types.VectorSearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Query parameter is required"})
		return
	}

	results, err := h.vectors.Search(c.Request.Context(), req.Query, req.ContentType,
		req.DifficultyLevel, req.Filters, req.Limit)
	if err != nil {
		log.Printf("Error searching content: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, results)
}

// Upsert embeds an ad-hoc entry and writes it to the index without creating
// a catalog row.
func (h *VectorHandler) Upsert(c *gin.Context) {
	var req types.VectorUpsertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Title == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Title is required"})
		return
	}
	if req.ContentType == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Content type is required"})
		return
	}

	content := &models.FitnessContent{
		Title:             req.Title,
		Description:       req.Description,
		ContentType:       req.ContentType,
		EmbeddingID:       req.EmbeddingID,
		URL:               req.URL,
		YoutubeURL:        req.YoutubeURL,
		DifficultyLevel:   2,
		EquipmentRequired: req.EquipmentRequired,
		DurationMinutes:   req.DurationMinutes,
		CaloriesBurned:    req.CaloriesBurned,
		TargetMuscles:     req.TargetMuscles,
	}
	if req.DifficultyLevel != nil {
		content.DifficultyLevel = *req.DifficultyLevel
	}

	embeddingID, err := h.vectors.UpsertContent(c.Request.Context(), content)
	if err != nil {
		log.Printf("Error upserting content: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "embedding_id": embeddingID})
}

// Delete removes one index entry. The key comes from the path, falling back
// to an embedding_id field in the body.
func (h *VectorHandler) Delete(c *gin.Context) {
	embeddingID := c.Param("embedding_id")
	if embeddingID == "" {
		var body struct {
			EmbeddingID string `json:"embedding_id"`
		}
		_ = c.ShouldBindJSON(&body)
		embeddingID = body.EmbeddingID
	}
	if embeddingID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Embedding ID is required"})
		return
	}

	if err := h.vectors.Delete(c.Request.Context(), embeddingID); err != nil {
		if errors.Is(err, service.ErrEmptyEmbeddingID) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		log.Printf("Error deleting content: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
