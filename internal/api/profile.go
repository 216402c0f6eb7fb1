package api

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/fitfusion/backend/internal/service"
	"github.com/fitfusion/backend/internal/types"
)

// ProfileHandler serves the account and the three profile dimensions.
type ProfileHandler struct {
	profiles service.IProfileService
}

// NewProfileHandler creates a new ProfileHandler instance
func NewProfileHandler(profiles service.IProfileService) *ProfileHandler {
	return &ProfileHandler{profiles: profiles}
}

// RegisterRoutes registers the profile routes behind the auth middleware.
func (h *ProfileHandler) RegisterRoutes(r *gin.RouterGroup, auth gin.HandlerFunc) {
	profile := r.Group("/profile")
	profile.Use(auth)
	{
		profile.GET("", h.GetProfile)
		profile.PUT("", h.UpdateProfile)
		profile.GET("/detail", h.GetDetail)
		profile.GET("/setup", h.GetSetup)
		profile.POST("/setup", h.Setup)

		profile.GET("/physical", h.GetPhysical)
		profile.POST("/physical", h.CreatePhysical)
		profile.PUT("/physical", h.UpdatePhysical)

		profile.GET("/fitness", h.GetFitness)
		profile.POST("/fitness", h.CreateFitness)
		profile.PUT("/fitness", h.UpdateFitness)

		profile.GET("/dietary", h.GetDietary)
		profile.POST("/dietary", h.CreateDietary)
		profile.PUT("/dietary", h.UpdateDietary)
	}
}

func (h *ProfileHandler) GetProfile(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	user, err := h.profiles.GetUser(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req types.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.profiles.UpdateUser(c.Request.Context(), userID, &req)
	if err != nil {
		log.Printf("Error updating user: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update profile"})
		return
	}
	c.JSON(http.StatusOK, user)
}

// GetDetail returns the account with all three profile records preloaded.
func (h *ProfileHandler) GetDetail(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	user, err := h.profiles.GetUserDetail(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}
	c.JSON(http.StatusOK, user)
}

// GetSetup returns the combined setup view. Absent profile records appear as
// zero-valued blocks; nothing is created.
func (h *ProfileHandler) GetSetup(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	view, err := h.profiles.GetSetupView(c.Request.Context(), userID)
	if err != nil {
		log.Printf("Error building setup view: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load profile setup"})
		return
	}
	c.JSON(http.StatusOK, view)
}

// Setup applies all four payload blocks, creating records that don't exist
// yet, then returns the resulting combined view.
func (h *ProfileHandler) Setup(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req types.ProfileSetupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.profiles.Setup(c.Request.Context(), userID, &req); err != nil {
		log.Printf("Error applying profile setup: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to apply profile setup"})
		return
	}

	view, err := h.profiles.GetSetupView(c.Request.Context(), userID)
	if err != nil {
		log.Printf("Error building setup view: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load profile setup"})
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *ProfileHandler) GetPhysical(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	profile, err := h.profiles.GetOrCreatePhysicalProfile(c.Request.Context(), userID)
	if err != nil {
		log.Printf("Error retrieving physical profile: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to retrieve physical profile"})
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (h *ProfileHandler) CreatePhysical(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req types.PhysicalProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	profile, err := h.profiles.CreatePhysicalProfile(c.Request.Context(), userID, &req)
	if err != nil {
		if errors.Is(err, service.ErrProfileExists) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Physical profile already exists"})
			return
		}
		log.Printf("Error creating physical profile: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create physical profile"})
		return
	}
	c.JSON(http.StatusCreated, profile)
}

func (h *ProfileHandler) UpdatePhysical(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req types.PhysicalProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	profile, err := h.profiles.UpdatePhysicalProfile(c.Request.Context(), userID, &req)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Physical profile does not exist"})
			return
		}
		log.Printf("Error updating physical profile: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update physical profile"})
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (h *ProfileHandler) GetFitness(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	profile, err := h.profiles.GetOrCreateFitnessProfile(c.Request.Context(), userID)
	if err != nil {
		log.Printf("Error retrieving fitness profile: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to retrieve fitness profile"})
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (h *ProfileHandler) CreateFitness(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req types.FitnessProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	profile, err := h.profiles.CreateFitnessProfile(c.Request.Context(), userID, &req)
	if err != nil {
		if errors.Is(err, service.ErrProfileExists) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Fitness profile already exists"})
			return
		}
		log.Printf("Error creating fitness profile: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create fitness profile"})
		return
	}
	c.JSON(http.StatusCreated, profile)
}

func (h *ProfileHandler) UpdateFitness(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req types.FitnessProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	profile, err := h.profiles.UpdateFitnessProfile(c.Request.Context(), userID, &req)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Fitness profile does not exist"})
			return
		}
		log.Printf("Error updating fitness profile: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update fitness profile"})
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (h *ProfileHandler) GetDietary(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	profile, err := h.profiles.GetOrCreateDietaryProfile(c.Request.Context(), userID)
	if err != nil {
		log.Printf("Error retrieving dietary profile: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to retrieve dietary profile"})
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (h *ProfileHandler) CreateDietary(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req types.DietaryProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	profile, err := h.profiles.CreateDietaryProfile(c.Request.Context(), userID, &req)
	if err != nil {
		if errors.Is(err, service.ErrProfileExists) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Dietary profile already exists"})
			return
		}
		log.Printf("Error creating dietary profile: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create dietary profile"})
		return
	}
	c.JSON(http.StatusCreated, profile)
}

func (h *ProfileHandler) UpdateDietary(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req types.DietaryProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	profile, err := h.profiles.UpdateDietaryProfile(c.Request.Context(), userID, &req)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Dietary profile does not exist"})
			return
		}
		log.Printf("Error updating dietary profile: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update dietary profile"})
		return
	}
	c.JSON(http.StatusOK, profile)
}
