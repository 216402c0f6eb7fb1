package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Content type values for FitnessContent.
const (
	ContentTypeExercise = "exercise"
	ContentTypeWorkout  = "workout"
	ContentTypeArticle  = "article"
	ContentTypeTutorial = "tutorial"
	ContentTypeDiet     = "diet"
)

// ValidContentType reports whether t is one of the known content types.
func ValidContentType(t string) bool {
	switch t {
	case ContentTypeExercise, ContentTypeWorkout, ContentTypeArticle, ContentTypeTutorial, ContentTypeDiet:
		return true
	}
	return false
}

// FitnessContent is a catalogued fitness resource. EmbeddingID is the key of
// the mirrored entry in the external vector index; it is assigned only after
// a successful embedding upsert and may lag behind the row itself.
type FitnessContent struct {
	ID                uuid.UUID      `gorm:"type:varchar(36);primarykey" json:"id"`
	Title             string         `gorm:"size:255;not null" json:"title"`
	Description       string         `gorm:"type:text" json:"description"`
	ContentType       string         `gorm:"size:100;not null;index" json:"content_type"`
	URL               string         `gorm:"size:2048" json:"url"`
	YoutubeURL        string         `gorm:"size:2048" json:"youtube_url"`
	DifficultyLevel   int            `gorm:"not null;default:2;index;check:difficulty_level >= 1 AND difficulty_level <= 5" json:"difficulty_level"`
	EquipmentRequired string         `gorm:"size:255" json:"equipment_required"`
	DurationMinutes   int            `json:"duration_minutes"`
	CaloriesBurned    int            `json:"calories_burned"`
	TargetMuscles     string         `gorm:"size:255" json:"target_muscles"`
	EmbeddingID       string         `gorm:"size:255" json:"embedding_id"`
	CreatedAt         time.Time      `json:"created_at"`
	UpdatedAt         time.Time      `json:"updated_at"`
	DeletedAt         gorm.DeletedAt `gorm:"index" json:"-"`
}

func (c *FitnessContent) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
