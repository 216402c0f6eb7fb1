package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/fitfusion/backend/internal/models"
	"github.com/fitfusion/backend/internal/service"
	"github.com/fitfusion/backend/internal/types"
)

// MockProfileService is a mock implementation of service.IProfileService.
type MockProfileService struct {
	mock.Mock
}

func (m *MockProfileService) GetUser(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockProfileService) GetUserDetail(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockProfileService) UpdateUser(ctx context.Context, userID uuid.UUID, req *types.UpdateUserRequest) (*models.User, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockProfileService) GetOrCreatePhysicalProfile(ctx context.Context, userID uuid.UUID) (*models.PhysicalProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PhysicalProfile), args.Error(1)
}

func (m *MockProfileService) CreatePhysicalProfile(ctx context.Context, userID uuid.UUID, req *types.PhysicalProfileRequest) (*models.PhysicalProfile, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PhysicalProfile), args.Error(1)
}

func (m *MockProfileService) UpdatePhysicalProfile(ctx context.Context, userID uuid.UUID, req *types.PhysicalProfileRequest) (*models.PhysicalProfile, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PhysicalProfile), args.Error(1)
}

func (m *MockProfileService) GetOrCreateFitnessProfile(ctx context.Context, userID uuid.UUID) (*models.FitnessProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.FitnessProfile), args.Error(1)
}

func (m *MockProfileService) CreateFitnessProfile(ctx context.Context, userID uuid.UUID, req *types.FitnessProfileRequest) (*models.FitnessProfile, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.FitnessProfile), args.Error(1)
}

func (m *MockProfileService) UpdateFitnessProfile(ctx context.Context, userID uuid.UUID, req *types.FitnessProfileRequest) (*models.FitnessProfile, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.FitnessProfile), args.Error(1)
}

func (m *MockProfileService) GetOrCreateDietaryProfile(ctx context.Context, userID uuid.UUID) (*models.DietaryProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.DietaryProfile), args.Error(1)
}

func (m *MockProfileService) CreateDietaryProfile(ctx context.Context, userID uuid.UUID, req *types.DietaryProfileRequest) (*models.DietaryProfile, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.DietaryProfile), args.Error(1)
}

func (m *MockProfileService) UpdateDietaryProfile(ctx context.Context, userID uuid.UUID, req *types.DietaryProfileRequest) (*models.DietaryProfile, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.DietaryProfile), args.Error(1)
}

func (m *MockProfileService) GetSetupView(ctx context.Context, userID uuid.UUID) (*service.SetupView, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.SetupView), args.Error(1)
}

func (m *MockProfileService) Setup(ctx context.Context, userID uuid.UUID, req *types.ProfileSetupRequest) error {
	args := m.Called(ctx, userID, req)
	return args.Error(0)
}
