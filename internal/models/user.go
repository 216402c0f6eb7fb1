package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User is the account record. The three profile tables hang off it 1:1.
type User struct {
	ID           uuid.UUID      `gorm:"type:varchar(36);primarykey" json:"id"`
	Username     string         `gorm:"size:150;not null;uniqueIndex" json:"username"`
	Email        string         `gorm:"size:255;not null;uniqueIndex" json:"email"`
	PasswordHash string         `gorm:"not null" json:"-"`
	FirstName    string         `gorm:"size:255" json:"first_name"`
	LastName     string         `gorm:"size:255" json:"last_name"`
	Age          *int           `json:"age"`
	Occupation   string         `gorm:"size:255" json:"occupation"`
	AboutMe      string         `gorm:"type:text" json:"about_me"`
	IsAdmin      bool           `gorm:"not null;default:false" json:"is_admin"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`

	PhysicalProfile *PhysicalProfile `gorm:"constraint:OnDelete:CASCADE" json:"physical_profile,omitempty"`
	FitnessProfile  *FitnessProfile  `gorm:"constraint:OnDelete:CASCADE" json:"fitness_profile,omitempty"`
	DietaryProfile  *DietaryProfile  `gorm:"constraint:OnDelete:CASCADE" json:"dietary_profile,omitempty"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
