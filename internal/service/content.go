package service

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/fitfusion/backend/internal/models"
	"github.com/fitfusion/backend/internal/types"
)

// ContentIndexer is the slice of the vector gateway the catalog needs:
// mirroring rows into the index and clearing them on delete.
type ContentIndexer interface {
	UpsertContent(ctx context.Context, content *models.FitnessContent) (string, error)
	Delete(ctx context.Context, embeddingID string) error
}

// ContentService manages the fitness-content catalog and keeps the external
// vector index loosely in sync with it.
type ContentService struct {
	db      *gorm.DB
	indexer ContentIndexer
}

// NewContentService creates a new ContentService instance
func NewContentService(db *gorm.DB, indexer ContentIndexer) *ContentService {
	return &ContentService{db: db, indexer: indexer}
}

// List returns catalog items newest first, with optional equality filters.
func (s *ContentService) List(ctx context.Context, contentType string, difficulty *int) ([]models.FitnessContent, error) {
	query := s.db.WithContext(ctx).Model(&models.FitnessContent{})
	if contentType != "" {
		query = query.Where("content_type = ?", contentType)
	}
	if difficulty != nil {
		query = query.Where("difficulty_level = ?", *difficulty)
	}

	var contents []models.FitnessContent
	if err := query.Order("created_at DESC").Find(&contents).Error; err != nil {
		return nil, err
	}
	return contents, nil
}

// Get retrieves one catalog item.
func (s *ContentService) Get(ctx context.Context, id uuid.UUID) (*models.FitnessContent, error) {
	var content models.FitnessContent
	if err := s.db.WithContext(ctx).First(&content, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &content, nil
}

// Search applies equality filters plus a case-insensitive substring match on
// title or description, newest first.
func (s *ContentService) Search(ctx context.Context, term, contentType string, difficulty *int) ([]models.FitnessContent, error) {
	query := s.db.WithContext(ctx).Model(&models.FitnessContent{})
	if contentType != "" {
		query = query.Where("content_type = ?", contentType)
	}
	if difficulty != nil {
		query = query.Where("difficulty_level = ?", *difficulty)
	}
	if term != "" {
		like := "%" + strings.ToLower(term) + "%"
		query = query.Where("LOWER(title) LIKE ? OR LOWER(description) LIKE ?", like, like)
	}

	var contents []models.FitnessContent
	if err := query.Order("created_at DESC").Find(&contents).Error; err != nil {
		return nil, err
	}
	return contents, nil
}

// Create saves a new catalog row, then mirrors it into the vector index.
// An index failure does not roll the row back: the caller gets the saved
// content plus a warning, and the embedding key stays empty until a later
// update retries the mirror.
func (s *ContentService) Create(ctx context.Context, req *types.ContentRequest) (*models.FitnessContent, string, error) {
	content, err := contentFromRequest(req)
	if err != nil {
		return nil, "", err
	}

	if err := s.db.WithContext(ctx).Create(content).Error; err != nil {
		return nil, "", err
	}

	embeddingID, err := s.indexer.UpsertContent(ctx, content)
	if err != nil {
		log.Printf("Error creating embeddings for content %s: %v", content.ID, err)
		return content, fmt.Sprintf("Content saved but embedding failed: %v", err), nil
	}

	content.EmbeddingID = embeddingID
	if err := s.db.WithContext(ctx).Save(content).Error; err != nil {
		return nil, "", err
	}
	return content, "", nil
}

// Update applies a partial update, then re-mirrors the row into the index.
// The embedding key is only persisted when the row had none before.
func (s *ContentService) Update(ctx context.Context, id uuid.UUID, req *types.ContentRequest) (*models.FitnessContent, string, error) {
	var content models.FitnessContent
	if err := s.db.WithContext(ctx).First(&content, "id = ?", id).Error; err != nil {
		return nil, "", err
	}

	applyContentRequest(&content, req)
	if !models.ValidContentType(content.ContentType) {
		return nil, "", fmt.Errorf("invalid content type %q", content.ContentType)
	}

	if err := s.db.WithContext(ctx).Save(&content).Error; err != nil {
		return nil, "", err
	}

	embeddingID, err := s.indexer.UpsertContent(ctx, &content)
	if err != nil {
		log.Printf("Error updating embeddings for content %s: %v", content.ID, err)
		return &content, fmt.Sprintf("Content updated but embedding failed: %v", err), nil
	}

	if content.EmbeddingID == "" {
		content.EmbeddingID = embeddingID
		if err := s.db.WithContext(ctx).Save(&content).Error; err != nil {
			return nil, "", err
		}
	}
	return &content, "", nil
}

// Delete removes a catalog row. When the row carries an embedding key the
// index deletion is attempted first, best-effort: an index failure is
// logged and the row is removed regardless.
func (s *ContentService) Delete(ctx context.Context, id uuid.UUID) error {
	var content models.FitnessContent
	if err := s.db.WithContext(ctx).First(&content, "id = ?", id).Error; err != nil {
		return err
	}

	if content.EmbeddingID != "" {
		if err := s.indexer.Delete(ctx, content.EmbeddingID); err != nil {
			log.Printf("Error deleting embedding %s: %v", content.EmbeddingID, err)
		}
	}

	return s.db.WithContext(ctx).Delete(&content).Error
}

func contentFromRequest(req *types.ContentRequest) (*models.FitnessContent, error) {
	if req.Title == "" {
		return nil, fmt.Errorf("title is required")
	}
	if !models.ValidContentType(req.ContentType) {
		return nil, fmt.Errorf("invalid content type %q", req.ContentType)
	}

	content := &models.FitnessContent{
		Title:             req.Title,
		Description:       req.Description,
		ContentType:       req.ContentType,
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
	return content, nil
}

func applyContentRequest(content *models.FitnessContent, req *types.ContentRequest) {
	if req.Title != "" {
		content.Title = req.Title
	}
	if req.Description != "" {
		content.Description = req.Description
	}
	if req.ContentType != "" {
		content.ContentType = req.ContentType
	}
	if req.URL != "" {
		content.URL = req.URL
	}
	if req.YoutubeURL != "" {
		content.YoutubeURL = req.YoutubeURL
	}
	if req.DifficultyLevel != nil {
		content.DifficultyLevel = *req.DifficultyLevel
	}
	if req.EquipmentRequired != "" {
		content.EquipmentRequired = req.EquipmentRequired
	}
	if req.DurationMinutes != 0 {
		content.DurationMinutes = req.DurationMinutes
	}
	if req.CaloriesBurned != 0 {
		content.CaloriesBurned = req.CaloriesBurned
	}
	if req.TargetMuscles != "" {
		content.TargetMuscles = req.TargetMuscles
	}
}
