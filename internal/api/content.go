package api

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/fitfusion/backend/internal/service"
	"github.com/fitfusion/backend/internal/types"
)

// ContentHandler serves the fitness-content catalog. Management routes are
// admin only; the semantic search route is open to any authenticated user.
type ContentHandler struct {
	content service.IContentService
	vectors service.IVectorService
}

// NewContentHandler creates a new ContentHandler instance
func NewContentHandler(content service.IContentService, vectors service.IVectorService) *ContentHandler {
	return &ContentHandler{content: content, vectors: vectors}
}

// RegisterRoutes registers catalog routes. auth applies to the whole group,
// admin gates the management subset.
func (h *ContentHandler) RegisterRoutes(r *gin.RouterGroup, auth, admin gin.HandlerFunc) {
	content := r.Group("/fitness-content")
	content.Use(auth)
	{
		content.GET("/search", h.SemanticSearch)

		managed := content.Group("", admin)
		{
			managed.GET("", h.List)
			managed.POST("", h.Create)
			managed.GET("/:id", h.Get)
			managed.PUT("/:id", h.Update)
			managed.DELETE("/:id", h.Delete)
		}
	}
}

// SemanticSearch queries the vector index with a fixed top-k of 10.
func (h *ContentHandler) SemanticSearch(c *gin.Context) {
	query := c.Query("query")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Query parameter is required", "status": "error"})
		return
	}

	contentType := c.Query("content_type")
	difficulty := difficultyParam(c)

	results, err := h.vectors.Search(c.Request.Context(), query, contentType, difficulty, nil, 10)
	if err != nil {
		log.Printf("Error searching fitness content: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Error searching fitness content",
			"status":  "error",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"results": results, "status": "success"})
}

// List returns catalog items, optionally filtered by content_type,
// difficulty_level and a substring search term.
func (h *ContentHandler) List(c *gin.Context) {
	contentType := c.Query("content_type")
	difficulty := difficultyParam(c)

	if term := c.Query("search"); term != "" {
		found, err := h.content.Search(c.Request.Context(), term, contentType, difficulty)
		if err != nil {
			log.Printf("Error searching catalog: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to search fitness content"})
			return
		}
		c.JSON(http.StatusOK, found)
		return
	}

	found, err := h.content.List(c.Request.Context(), contentType, difficulty)
	if err != nil {
		log.Printf("Error listing catalog: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list fitness content"})
		return
	}
	c.JSON(http.StatusOK, found)
}

func (h *ContentHandler) Get(c *gin.Context) {
	id, ok := contentID(c)
	if !ok {
		return
	}

	content, err := h.content.Get(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Fitness content not found", "status": "error"})
		return
	}
	c.JSON(http.StatusOK, content)
}

// Create saves a catalog item. An embedding failure still yields 201: the
// row exists, the response carries a warning, and the embedding key stays
// empty for a later update to retry.
func (h *ContentHandler) Create(c *gin.Context) {
	var req types.ContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	content, warning, err := h.content.Create(c.Request.Context(), &req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if warning != "" {
		c.JSON(http.StatusCreated, gin.H{
			"data":    content,
			"warning": warning,
			"status":  "partial_success",
		})
		return
	}
	c.JSON(http.StatusCreated, content)
}

func (h *ContentHandler) Update(c *gin.Context) {
	id, ok := contentID(c)
	if !ok {
		return
	}

	var req types.ContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	content, warning, err := h.content.Update(c.Request.Context(), id, &req)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Fitness content not found", "status": "error"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if warning != "" {
		c.JSON(http.StatusOK, gin.H{
			"data":    content,
			"warning": warning,
			"status":  "partial_success",
		})
		return
	}
	c.JSON(http.StatusOK, content)
}

func (h *ContentHandler) Delete(c *gin.Context) {
	id, ok := contentID(c)
	if !ok {
		return
	}

	if err := h.content.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Fitness content not found", "status": "error"})
			return
		}
		log.Printf("Error deleting catalog item: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete fitness content"})
		return
	}
	c.JSON(http.StatusNoContent, nil)
}

func contentID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid content id"})
		return uuid.Nil, false
	}
	return id, true
}

func difficultyParam(c *gin.Context) *int {
	raw := c.Query("difficulty_level")
	if raw == "" {
		return nil
	}
	level, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &level
}
