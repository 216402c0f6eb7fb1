package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/fitfusion/backend/internal/models"
	"github.com/fitfusion/backend/internal/service"
	"github.com/fitfusion/backend/internal/types"
)

// MockContentService is a mock implementation of service.IContentService.
type MockContentService struct {
	mock.Mock
}

func (m *MockContentService) List(ctx context.Context, contentType string, difficulty *int) ([]models.FitnessContent, error) {
	args := m.Called(ctx, contentType, difficulty)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.FitnessContent), args.Error(1)
}

func (m *MockContentService) Get(ctx context.Context, id uuid.UUID) (*models.FitnessContent, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.FitnessContent), args.Error(1)
}

func (m *MockContentService) Search(ctx context.Context, term, contentType string, difficulty *int) ([]models.FitnessContent, error) {
	args := m.Called(ctx, term, contentType, difficulty)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.FitnessContent), args.Error(1)
}

func (m *MockContentService) Create(ctx context.Context, req *types.ContentRequest) (*models.FitnessContent, string, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).(*models.FitnessContent), args.String(1), args.Error(2)
}

func (m *MockContentService) Update(ctx context.Context, id uuid.UUID, req *types.ContentRequest) (*models.FitnessContent, string, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).(*models.FitnessContent), args.String(1), args.Error(2)
}

func (m *MockContentService) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockVectorService is a mock implementation of service.IVectorService.
type MockVectorService struct {
	mock.Mock
}

func (m *MockVectorService) UpsertContent(ctx context.Context, content *models.FitnessContent) (string, error) {
	args := m.Called(ctx, content)
	return args.String(0), args.Error(1)
}

func (m *MockVectorService) Search(ctx context.Context, query, contentType string, difficulty *int, extraFilters map[string]interface{}, limit int) ([]service.IndexMatch, error) {
	args := m.Called(ctx, query, contentType, difficulty, extraFilters, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]service.IndexMatch), args.Error(1)
}

func (m *MockVectorService) Delete(ctx context.Context, embeddingID string) error {
	args := m.Called(ctx, embeddingID)
	return args.Error(0)
}

func (m *MockVectorService) DeleteBatch(ctx context.Context, embeddingIDs []string) error {
	args := m.Called(ctx, embeddingIDs)
	return args.Error(0)
}

// MockRecommendationService is a mock implementation of
// service.IRecommendationService.
type MockRecommendationService struct {
	mock.Mock
}

func (m *MockRecommendationService) Recommend(ctx context.Context, user *models.User) (map[string]interface{}, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]interface{}), args.Error(1)
}

func (m *MockRecommendationService) Chat(ctx context.Context, query string, emit func(text string) error) error {
	args := m.Called(ctx, query, emit)
	return args.Error(0)
}
