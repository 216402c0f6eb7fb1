package api

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"github.com/fitfusion/backend/internal/mocks"
	"github.com/fitfusion/backend/internal/models"
	"github.com/fitfusion/backend/internal/service"
)

func setupProfileRouter(profiles *mocks.MockProfileService) *gin.Engine {
	router, group := newTestRouter()
	NewProfileHandler(profiles).RegisterRoutes(group, stubAuth(testUserID, false))
	return router
}

func TestGetProfileEndpoint(t *testing.T) {
	profileSvc := new(mocks.MockProfileService)
	router := setupProfileRouter(profileSvc)

	user := &models.User{Username: "alice", Email: "alice@example.com"}
	user.ID = testUserID
	profileSvc.On("GetUser", mock.Anything, testUserID).Return(user, nil)

	w := doJSON(t, router, "GET", "/api/profile", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "alice")
}

func TestUpdateProfileEndpoint(t *testing.T) {
	profileSvc := new(mocks.MockProfileService)
	router := setupProfileRouter(profileSvc)

	updated := &models.User{Username: "alice", FirstName: "Alice"}
	profileSvc.On("UpdateUser", mock.Anything, testUserID,
		mock.AnythingOfType("*types.UpdateUserRequest")).Return(updated, nil)

	w := doJSON(t, router, "PUT", "/api/profile", `{"first_name": "Alice"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Alice")
}

func TestGetSetupEndpoint(t *testing.T) {
	profileSvc := new(mocks.MockProfileService)
	router := setupProfileRouter(profileSvc)

	view := &service.SetupView{
		UserProfile: map[string]interface{}{"first_name": "Alice"},
	}
	profileSvc.On("GetSetupView", mock.Anything, testUserID).Return(view, nil)

	w := doJSON(t, router, "GET", "/api/profile/setup", "")

	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Contains(t, body, "user_profile")
	assert.Contains(t, body, "physical_profile")
	assert.Nil(t, body["physical_profile"])
}

func TestSetupEndpoint(t *testing.T) {
	profileSvc := new(mocks.MockProfileService)
	router := setupProfileRouter(profileSvc)

	profileSvc.On("Setup", mock.Anything, testUserID,
		mock.AnythingOfType("*types.ProfileSetupRequest")).Return(nil)
	view := &service.SetupView{
		PhysicalProfile: map[string]interface{}{"height": 170},
	}
	profileSvc.On("GetSetupView", mock.Anything, testUserID).Return(view, nil)

	w := doJSON(t, router, "POST", "/api/profile/setup", `{
		"physical_profile": {"height": 170, "weight": 65}
	}`)

	assert.Equal(t, http.StatusOK, w.Code)
	profileSvc.AssertExpectations(t)
}

func TestGetPhysicalEndpointCreatesOnDemand(t *testing.T) {
	profileSvc := new(mocks.MockProfileService)
	router := setupProfileRouter(profileSvc)

	profile := &models.PhysicalProfile{UserID: testUserID, Height: 0}
	profileSvc.On("GetOrCreatePhysicalProfile", mock.Anything, testUserID).Return(profile, nil)

	w := doJSON(t, router, "GET", "/api/profile/physical", "")

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCreatePhysicalEndpointAlreadyExists(t *testing.T) {
	profileSvc := new(mocks.MockProfileService)
	router := setupProfileRouter(profileSvc)

	profileSvc.On("CreatePhysicalProfile", mock.Anything, testUserID, mock.Anything).
		Return(nil, service.ErrProfileExists)

	w := doJSON(t, router, "POST", "/api/profile/physical", `{"height": 170}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "Physical profile already exists", body["message"])
}

func TestCreateFitnessEndpoint(t *testing.T) {
	profileSvc := new(mocks.MockProfileService)
	router := setupProfileRouter(profileSvc)

	profile := &models.FitnessProfile{UserID: testUserID, FitnessLevel: 3}
	profileSvc.On("CreateFitnessProfile", mock.Anything, testUserID,
		mock.AnythingOfType("*types.FitnessProfileRequest")).Return(profile, nil)

	w := doJSON(t, router, "POST", "/api/profile/fitness", `{"fitness_level": 3}`)

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestUpdateDietaryEndpointMissing(t *testing.T) {
	profileSvc := new(mocks.MockProfileService)
	router := setupProfileRouter(profileSvc)

	profileSvc.On("UpdateDietaryProfile", mock.Anything, testUserID, mock.Anything).
		Return(nil, gorm.ErrRecordNotFound)

	w := doJSON(t, router, "PUT", "/api/profile/dietary", `{"diet_goal": "cutting"}`)

	assert.Equal(t, http.StatusNotFound, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "Dietary profile does not exist", body["message"])
}
