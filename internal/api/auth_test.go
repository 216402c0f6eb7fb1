package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/fitfusion/backend/internal/mocks"
	"github.com/fitfusion/backend/internal/models"
	"github.com/fitfusion/backend/internal/service"
	"github.com/fitfusion/backend/internal/types"
)

func TestRegisterEndpoint(t *testing.T) {
	authSvc := new(mocks.MockAuthService)
	router, group := newTestRouter()
	NewAuthHandler(authSvc).RegisterRoutes(group)

	user := &models.User{Username: "alice", Email: "alice@example.com"}
	user.ID = testUserID
	created := &service.ProfilesCreated{BasicProfile: true, PhysicalProfile: true}
	authSvc.On("Register", mock.Anything, mock.AnythingOfType("*types.RegisterRequest")).
		Return(user, created, nil)

	w := doJSON(t, router, "POST", "/api/register", `{
		"username": "alice",
		"email": "alice@example.com",
		"password": "secret123",
		"password2": "secret123",
		"height": 170
	}`)

	assert.Equal(t, http.StatusCreated, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "User registered successfully", body["message"])
	assert.Equal(t, "alice", body["username"])

	profiles := body["profiles_created"].(map[string]interface{})
	assert.Equal(t, true, profiles["physical_profile"])
	assert.Equal(t, false, profiles["fitness_profile"])

	nextSteps := body["next_steps"].(string)
	assert.Contains(t, nextSteps, "fitness profile")
	assert.Contains(t, nextSteps, "dietary profile")
	assert.NotContains(t, nextSteps, "physical profile")
	assert.Equal(t, "/api/profile/setup", body["setup_endpoint"])
}

func TestRegisterEndpointAllProfiles(t *testing.T) {
	authSvc := new(mocks.MockAuthService)
	router, group := newTestRouter()
	NewAuthHandler(authSvc).RegisterRoutes(group)

	user := &models.User{Username: "bob", Email: "bob@example.com"}
	created := &service.ProfilesCreated{
		BasicProfile: true, PhysicalProfile: true, FitnessProfile: true, DietaryProfile: true,
	}
	authSvc.On("Register", mock.Anything, mock.Anything).Return(user, created, nil)

	w := doJSON(t, router, "POST", "/api/register", `{
		"username": "bob",
		"email": "bob@example.com",
		"password": "secret123",
		"password2": "secret123"
	}`)

	assert.Equal(t, http.StatusCreated, w.Code)
	body := decodeBody(t, w)
	_, hasNextSteps := body["next_steps"]
	assert.False(t, hasNextSteps)
}

func TestRegisterEndpointPasswordMismatch(t *testing.T) {
	authSvc := new(mocks.MockAuthService)
	router, group := newTestRouter()
	NewAuthHandler(authSvc).RegisterRoutes(group)

	authSvc.On("Register", mock.Anything, mock.Anything).
		Return(nil, nil, service.ErrPasswordMismatch)

	w := doJSON(t, router, "POST", "/api/register", `{
		"username": "alice",
		"email": "alice@example.com",
		"password": "secret123",
		"password2": "different"
	}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "passwords do not match")
}

func TestTokenEndpointSetsCookies(t *testing.T) {
	authSvc := new(mocks.MockAuthService)
	router, group := newTestRouter()
	NewAuthHandler(authSvc).RegisterRoutes(group)

	pair := &types.TokenPair{Access: "access-jwt", Refresh: "refresh-jwt"}
	authSvc.On("Login", mock.Anything, "alice", "secret123").
		Return(&models.User{Username: "alice"}, pair, nil)

	w := doJSON(t, router, "POST", "/api/token", `{"username": "alice", "password": "secret123"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "access-jwt", body["access"])
	assert.Equal(t, "refresh-jwt", body["refresh"])

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 2)
	byName := map[string]*http.Cookie{}
	for _, c := range cookies {
		byName[c.Name] = c
	}
	require.Contains(t, byName, "access_token")
	require.Contains(t, byName, "refresh_token")
	assert.Equal(t, "access-jwt", byName["access_token"].Value)
	assert.True(t, byName["access_token"].HttpOnly)
	assert.True(t, byName["access_token"].Secure)
	assert.Equal(t, http.SameSiteLaxMode, byName["access_token"].SameSite)
	assert.Equal(t, authCookieMaxAge, byName["access_token"].MaxAge)
}

func TestTokenEndpointInvalidCredentials(t *testing.T) {
	authSvc := new(mocks.MockAuthService)
	router, group := newTestRouter()
	NewAuthHandler(authSvc).RegisterRoutes(group)

	authSvc.On("Login", mock.Anything, "alice", "wrong").
		Return(nil, nil, service.ErrInvalidCredentials)

	w := doJSON(t, router, "POST", "/api/token", `{"username": "alice", "password": "wrong"}`)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Empty(t, w.Result().Cookies())
}

func TestRefreshEndpointFromBody(t *testing.T) {
	authSvc := new(mocks.MockAuthService)
	router, group := newTestRouter()
	NewAuthHandler(authSvc).RegisterRoutes(group)

	authSvc.On("Refresh", "refresh-jwt").Return("new-access", nil)

	w := doJSON(t, router, "POST", "/api/token/refresh", `{"refresh": "refresh-jwt"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "new-access", body["access"])

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "access_token", cookies[0].Name)
	assert.Equal(t, "new-access", cookies[0].Value)
}

func TestRefreshEndpointFromCookie(t *testing.T) {
	authSvc := new(mocks.MockAuthService)
	router, group := newTestRouter()
	NewAuthHandler(authSvc).RegisterRoutes(group)

	authSvc.On("Refresh", "cookie-refresh").Return("new-access", nil)

	req := newRequestWithCookie(t, "POST", "/api/token/refresh", "", "refresh_token", "cookie-refresh")
	w := serve(router, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "new-access")
}

func TestRefreshEndpointMissingToken(t *testing.T) {
	authSvc := new(mocks.MockAuthService)
	router, group := newTestRouter()
	NewAuthHandler(authSvc).RegisterRoutes(group)

	w := doJSON(t, router, "POST", "/api/token/refresh", `{}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "refresh token is required")
	authSvc.AssertNotCalled(t, "Refresh", mock.Anything)
}

func TestRefreshEndpointInvalidToken(t *testing.T) {
	authSvc := new(mocks.MockAuthService)
	router, group := newTestRouter()
	NewAuthHandler(authSvc).RegisterRoutes(group)

	authSvc.On("Refresh", "expired").Return("", service.ErrInvalidToken)

	w := doJSON(t, router, "POST", "/api/token/refresh", `{"refresh": "expired"}`)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLogoutEndpointClearsCookies(t *testing.T) {
	authSvc := new(mocks.MockAuthService)
	router, group := newTestRouter()
	NewAuthHandler(authSvc).RegisterRoutes(group)

	w := doJSON(t, router, "POST", "/api/logout", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Successfully logged out.")

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 2)
	for _, c := range cookies {
		assert.Empty(t, c.Value)
		assert.Less(t, c.MaxAge, 0, "cookie %s should be expired", c.Name)
	}

	names := []string{cookies[0].Name, cookies[1].Name}
	assert.ElementsMatch(t, []string{"access_token", "refresh_token"}, names)
}
