package api

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/fitfusion/backend/internal/middleware"
	"github.com/fitfusion/backend/internal/service"
	"github.com/fitfusion/backend/internal/types"
)

// authCookieMaxAge matches the token lifetime: 30 days, in seconds.
const authCookieMaxAge = 30 * 24 * 60 * 60

// AuthHandler serves registration and the cookie-based token endpoints.
type AuthHandler struct {
	auth service.IAuthService
}

// NewAuthHandler creates a new AuthHandler instance
func NewAuthHandler(auth service.IAuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// RegisterRoutes registers the public auth routes.
func (h *AuthHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/register", h.Register)
	r.POST("/token", h.Token)
	r.POST("/token/refresh", h.Refresh)
	r.POST("/logout", h.Logout)
}

// Register creates an account plus whichever optional profiles the payload
// carries. The response reports which profiles were created and how to
// complete the rest.
func (h *AuthHandler) Register(c *gin.Context) {
	var req types.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, created, err := h.auth.Register(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPasswordMismatch), errors.Is(err, service.ErrUserExists):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			log.Printf("Error registering user: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to register user"})
		}
		return
	}

	resp := gin.H{
		"message":          "User registered successfully",
		"user_id":          user.ID,
		"username":         user.Username,
		"email":            user.Email,
		"profiles_created": created,
	}

	var missing []string
	if !created.PhysicalProfile {
		missing = append(missing, "physical profile")
	}
	if !created.FitnessProfile {
		missing = append(missing, "fitness profile")
	}
	if !created.DietaryProfile {
		missing = append(missing, "dietary profile")
	}
	if len(missing) > 0 {
		resp["next_steps"] = fmt.Sprintf(
			"You can complete your %s later using the profile setup endpoint.",
			strings.Join(missing, ", "))
		resp["setup_endpoint"] = "/api/profile/setup"
	}

	c.JSON(http.StatusCreated, resp)
}

// Token exchanges credentials for an access/refresh pair. Both tokens are
// returned in the body and set as cookies.
func (h *AuthHandler) Token(c *gin.Context) {
	var req types.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	_, pair, err := h.auth.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}
		log.Printf("Error logging in: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to log in"})
		return
	}

	setAuthCookie(c, middleware.AccessCookieName, pair.Access)
	setAuthCookie(c, middleware.RefreshCookieName, pair.Refresh)
	c.JSON(http.StatusOK, pair)
}

// Refresh reissues an access token. The refresh token comes from the body,
// falling back to the refresh_token cookie; only the access cookie is reset.
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req types.RefreshRequest
	_ = c.ShouldBindJSON(&req)

	token := req.Refresh
	if token == "" {
		if cookie, err := c.Cookie(middleware.RefreshCookieName); err == nil {
			token = cookie
		}
	}
	if token == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "refresh token is required"})
		return
	}

	access, err := h.auth.Refresh(token)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	setAuthCookie(c, middleware.AccessCookieName, access)
	c.JSON(http.StatusOK, gin.H{"access": access})
}

// Logout clears both auth cookies. Tokens themselves stay valid until they
// expire; there is no server-side revocation list.
func (h *AuthHandler) Logout(c *gin.Context) {
	clearAuthCookie(c, middleware.AccessCookieName)
	clearAuthCookie(c, middleware.RefreshCookieName)
	c.JSON(http.StatusOK, gin.H{"message": "Successfully logged out."})
}

func setAuthCookie(c *gin.Context, name, value string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(name, value, authCookieMaxAge, "/", "", true, true)
}

func clearAuthCookie(c *gin.Context, name string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(name, "", -1, "/", "", true, true)
}
