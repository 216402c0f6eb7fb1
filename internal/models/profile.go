package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Fitness level ordinals. The catalog difficulty scale reuses the same range.
const (
	FitnessLevelBeginner     = 1
	FitnessLevelIntermediate = 2
	FitnessLevelAdvanced     = 3
	FitnessLevelExpert       = 4
	FitnessLevelProfessional = 5
)

// FitnessLevelName maps a fitness level ordinal to its label. Unknown
// ordinals fall back to "intermediate".
func FitnessLevelName(level int) string {
	switch level {
	case FitnessLevelBeginner:
		return "beginner"
	case FitnessLevelIntermediate:
		return "intermediate"
	case FitnessLevelAdvanced:
		return "advanced"
	case FitnessLevelExpert:
		return "expert"
	case FitnessLevelProfessional:
		return "professional"
	default:
		return "intermediate"
	}
}

// PhysicalProfile holds body measurements, one record per user.
type PhysicalProfile struct {
	ID              uuid.UUID `gorm:"type:varchar(36);primarykey" json:"id"`
	UserID          uuid.UUID `gorm:"type:varchar(36);not null;uniqueIndex" json:"user_id"`
	Height          int       `gorm:"not null;check:height >= 0" json:"height"`
	Weight          int       `gorm:"not null;check:weight >= 0" json:"weight"`
	Gender          string    `gorm:"size:50" json:"gender"`
	BodyFat         *int      `json:"body_fat"`
	BodyMass        *int      `json:"body_mass"`
	HealthCondition string    `gorm:"size:255" json:"health_condition"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func (p *PhysicalProfile) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// FitnessProfile holds training preferences, one record per user.
type FitnessProfile struct {
	ID               uuid.UUID `gorm:"type:varchar(36);primarykey" json:"id"`
	UserID           uuid.UUID `gorm:"type:varchar(36);not null;uniqueIndex" json:"user_id"`
	FitnessLevel     int       `gorm:"not null;default:1;check:fitness_level >= 1 AND fitness_level <= 5" json:"fitness_level"`
	WorkoutFrequency int       `gorm:"not null" json:"workout_frequency"`
	WorkoutDuration  int       `gorm:"not null" json:"workout_duration"`
	WorkoutIntensity int       `gorm:"not null" json:"workout_intensity"`
	WorkoutType      string    `gorm:"size:255" json:"workout_type"`
	WorkoutEquipment string    `gorm:"size:255" json:"workout_equipment"`
	WorkoutStyle     string    `gorm:"size:255" json:"workout_style"`
	WorkoutGoal      string    `gorm:"size:255" json:"workout_goal"`
	HealthGoal       string    `gorm:"size:255" json:"health_goal"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func (p *FitnessProfile) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// DietaryProfile holds free-text dietary attributes, one record per user.
type DietaryProfile struct {
	ID               uuid.UUID `gorm:"type:varchar(36);primarykey" json:"id"`
	UserID           uuid.UUID `gorm:"type:varchar(36);not null;uniqueIndex" json:"user_id"`
	DietPreference   string    `gorm:"size:255" json:"diet_preference"`
	DietAllergies    string    `gorm:"size:255" json:"diet_allergies"`
	DietRestrictions string    `gorm:"size:255" json:"diet_restrictions"`
	DietPreferences  string    `gorm:"size:255" json:"diet_preferences"`
	DietGoal         string    `gorm:"size:255" json:"diet_goal"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func (p *DietaryProfile) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
