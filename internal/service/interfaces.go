package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/fitfusion/backend/internal/models"
	"github.com/fitfusion/backend/internal/types"
)

// IAuthService defines the account and session operations.
type IAuthService interface {
	Register(ctx context.Context, req *types.RegisterRequest) (*models.User, *ProfilesCreated, error)
	Login(ctx context.Context, username, password string) (*models.User, *types.TokenPair, error)
	Refresh(refreshToken string) (string, error)
	ValidateToken(tokenString string) (*types.TokenClaims, error)
}

// IProfileService defines account and per-dimension profile operations.
type IProfileService interface {
	GetUser(ctx context.Context, userID uuid.UUID) (*models.User, error)
	GetUserDetail(ctx context.Context, userID uuid.UUID) (*models.User, error)
	UpdateUser(ctx context.Context, userID uuid.UUID, req *types.UpdateUserRequest) (*models.User, error)

	GetOrCreatePhysicalProfile(ctx context.Context, userID uuid.UUID) (*models.PhysicalProfile, error)
	CreatePhysicalProfile(ctx context.Context, userID uuid.UUID, req *types.PhysicalProfileRequest) (*models.PhysicalProfile, error)
	UpdatePhysicalProfile(ctx context.Context, userID uuid.UUID, req *types.PhysicalProfileRequest) (*models.PhysicalProfile, error)

	GetOrCreateFitnessProfile(ctx context.Context, userID uuid.UUID) (*models.FitnessProfile, error)
	CreateFitnessProfile(ctx context.Context, userID uuid.UUID, req *types.FitnessProfileRequest) (*models.FitnessProfile, error)
	UpdateFitnessProfile(ctx context.Context, userID uuid.UUID, req *types.FitnessProfileRequest) (*models.FitnessProfile, error)

	GetOrCreateDietaryProfile(ctx context.Context, userID uuid.UUID) (*models.DietaryProfile, error)
	CreateDietaryProfile(ctx context.Context, userID uuid.UUID, req *types.DietaryProfileRequest) (*models.DietaryProfile, error)
	UpdateDietaryProfile(ctx context.Context, userID uuid.UUID, req *types.DietaryProfileRequest) (*models.DietaryProfile, error)

	GetSetupView(ctx context.Context, userID uuid.UUID) (*SetupView, error)
	Setup(ctx context.Context, userID uuid.UUID, req *types.ProfileSetupRequest) error
}

// IContentService defines catalog operations over fitness content.
type IContentService interface {
	List(ctx context.Context, contentType string, difficulty *int) ([]models.FitnessContent, error)
	Get(ctx context.Context, id uuid.UUID) (*models.FitnessContent, error)
	Search(ctx context.Context, term, contentType string, difficulty *int) ([]models.FitnessContent, error)
	Create(ctx context.Context, req *types.ContentRequest) (*models.FitnessContent, string, error)
	Update(ctx context.Context, id uuid.UUID, req *types.ContentRequest) (*models.FitnessContent, string, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// IVectorService defines semantic index operations.
type IVectorService interface {
	UpsertContent(ctx context.Context, content *models.FitnessContent) (string, error)
	Search(ctx context.Context, query, contentType string, difficulty *int, extraFilters map[string]interface{}, limit int) ([]IndexMatch, error)
	Delete(ctx context.Context, embeddingID string) error
	DeleteBatch(ctx context.Context, embeddingIDs []string) error
}

// IRecommendationService defines the AI-backed operations.
type IRecommendationService interface {
	Recommend(ctx context.Context, user *models.User) (map[string]interface{}, error)
	Chat(ctx context.Context, query string, emit func(text string) error) error
}

var _ TextGenerator = (*AnthropicClient)(nil)
var _ Embedder = (*EmbeddingService)(nil)
var _ VectorIndex = (*PineconeIndex)(nil)
var _ ContentIndexer = (*VectorService)(nil)

var _ IAuthService = (*AuthService)(nil)
var _ IProfileService = (*ProfileService)(nil)
var _ IContentService = (*ContentService)(nil)
var _ IVectorService = (*VectorService)(nil)
var _ IRecommendationService = (*RecommendationService)(nil)
