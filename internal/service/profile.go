package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/fitfusion/backend/internal/models"
	"github.com/fitfusion/backend/internal/types"
)

// ErrProfileExists is returned when a profile-create hits an existing record.
var ErrProfileExists = errors.New("profile already exists")

// ProfileService manages the account row and its three profile records.
type ProfileService struct {
	db *gorm.DB
}

// NewProfileService creates a new ProfileService instance
func NewProfileService(db *gorm.DB) *ProfileService {
	return &ProfileService{db: db}
}

// GetUser retrieves the base account record.
func (s *ProfileService) GetUser(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, "id = ?", userID).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// GetUserDetail retrieves the account with all three profiles nested.
// Absent profiles come back nil.
func (s *ProfileService) GetUserDetail(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).
		Preload("PhysicalProfile").
		Preload("FitnessProfile").
		Preload("DietaryProfile").
		First(&user, "id = ?", userID).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateUser applies a partial update to the base account fields.
func (s *ProfileService) UpdateUser(ctx context.Context, userID uuid.UUID, req *types.UpdateUserRequest) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, "id = ?", userID).Error; err != nil {
		return nil, err
	}

	if req.FirstName != nil {
		user.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		user.LastName = *req.LastName
	}
	if req.Age != nil {
		user.Age = req.Age
	}
	if req.Occupation != nil {
		user.Occupation = *req.Occupation
	}
	if req.AboutMe != nil {
		user.AboutMe = *req.AboutMe
	}

	if err := s.db.WithContext(ctx).Save(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// GetOrCreatePhysicalProfile returns the user's physical profile, silently
// materializing a zero-valued record on first read if none exists.
func (s *ProfileService) GetOrCreatePhysicalProfile(ctx context.Context, userID uuid.UUID) (*models.PhysicalProfile, error) {
	var profile models.PhysicalProfile
	err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error
	if err == nil {
		return &profile, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	profile = models.PhysicalProfile{UserID: userID}
	if err := s.db.WithContext(ctx).Create(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

// CreatePhysicalProfile creates the user's physical profile; a second create
// for the same account fails with ErrProfileExists.
func (s *ProfileService) CreatePhysicalProfile(ctx context.Context, userID uuid.UUID, req *types.PhysicalProfileRequest) (*models.PhysicalProfile, error) {
	var count int64
	if err := s.db.WithContext(ctx).Model(&models.PhysicalProfile{}).Where("user_id = ?", userID).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrProfileExists
	}

	profile := models.PhysicalProfile{
		UserID:          userID,
		Height:          intOrZero(req.Height),
		Weight:          intOrZero(req.Weight),
		Gender:          stringOrEmpty(req.Gender),
		BodyFat:         req.BodyFat,
		BodyMass:        req.BodyMass,
		HealthCondition: stringOrEmpty(req.HealthCondition),
	}
	if err := s.db.WithContext(ctx).Create(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

// UpdatePhysicalProfile applies a partial update; absent record surfaces
// gorm.ErrRecordNotFound.
func (s *ProfileService) UpdatePhysicalProfile(ctx context.Context, userID uuid.UUID, req *types.PhysicalProfileRequest) (*models.PhysicalProfile, error) {
	var profile models.PhysicalProfile
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error; err != nil {
		return nil, err
	}

	if req.Height != nil {
		profile.Height = *req.Height
	}
	if req.Weight != nil {
		profile.Weight = *req.Weight
	}
	if req.Gender != nil {
		profile.Gender = *req.Gender
	}
	if req.BodyFat != nil {
		profile.BodyFat = req.BodyFat
	}
	if req.BodyMass != nil {
		profile.BodyMass = req.BodyMass
	}
	if req.HealthCondition != nil {
		profile.HealthCondition = *req.HealthCondition
	}

	if err := s.db.WithContext(ctx).Save(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

// GetOrCreateFitnessProfile returns the user's fitness profile, creating a
// zero-valued default (fitness level beginner) if absent.
func (s *ProfileService) GetOrCreateFitnessProfile(ctx context.Context, userID uuid.UUID) (*models.FitnessProfile, error) {
	var profile models.FitnessProfile
	err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error
	if err == nil {
		return &profile, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	profile = models.FitnessProfile{UserID: userID, FitnessLevel: models.FitnessLevelBeginner}
	if err := s.db.WithContext(ctx).Create(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

// CreateFitnessProfile creates the user's fitness profile once.
func (s *ProfileService) CreateFitnessProfile(ctx context.Context, userID uuid.UUID, req *types.FitnessProfileRequest) (*models.FitnessProfile, error) {
	var count int64
	if err := s.db.WithContext(ctx).Model(&models.FitnessProfile{}).Where("user_id = ?", userID).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrProfileExists
	}

	profile := models.FitnessProfile{
		UserID:           userID,
		FitnessLevel:     models.FitnessLevelBeginner,
		WorkoutFrequency: intOrZero(req.WorkoutFrequency),
		WorkoutDuration:  intOrZero(req.WorkoutDuration),
		WorkoutIntensity: intOrZero(req.WorkoutIntensity),
		WorkoutType:      stringOrEmpty(req.WorkoutType),
		WorkoutEquipment: stringOrEmpty(req.WorkoutEquipment),
		WorkoutStyle:     stringOrEmpty(req.WorkoutStyle),
		WorkoutGoal:      stringOrEmpty(req.WorkoutGoal),
		HealthGoal:       stringOrEmpty(req.HealthGoal),
	}
	if req.FitnessLevel != nil {
		profile.FitnessLevel = *req.FitnessLevel
	}
	if err := s.db.WithContext(ctx).Create(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

// UpdateFitnessProfile applies a partial update to an existing record.
func (s *ProfileService) UpdateFitnessProfile(ctx context.Context, userID uuid.UUID, req *types.FitnessProfileRequest) (*models.FitnessProfile, error) {
	var profile models.FitnessProfile
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error; err != nil {
		return nil, err
	}

	if req.FitnessLevel != nil {
		profile.FitnessLevel = *req.FitnessLevel
	}
	if req.WorkoutFrequency != nil {
		profile.WorkoutFrequency = *req.WorkoutFrequency
	}
	if req.WorkoutDuration != nil {
		profile.WorkoutDuration = *req.WorkoutDuration
	}
	if req.WorkoutIntensity != nil {
		profile.WorkoutIntensity = *req.WorkoutIntensity
	}
	if req.WorkoutType != nil {
		profile.WorkoutType = *req.WorkoutType
	}
	if req.WorkoutEquipment != nil {
		profile.WorkoutEquipment = *req.WorkoutEquipment
	}
	if req.WorkoutStyle != nil {
		profile.WorkoutStyle = *req.WorkoutStyle
	}
	if req.WorkoutGoal != nil {
		profile.WorkoutGoal = *req.WorkoutGoal
	}
	if req.HealthGoal != nil {
		profile.HealthGoal = *req.HealthGoal
	}

	if err := s.db.WithContext(ctx).Save(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

// GetOrCreateDietaryProfile returns the user's dietary profile, creating an
// empty default if absent.
func (s *ProfileService) GetOrCreateDietaryProfile(ctx context.Context, userID uuid.UUID) (*models.DietaryProfile, error) {
	var profile models.DietaryProfile
	err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error
	if err == nil {
		return &profile, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	profile = models.DietaryProfile{UserID: userID}
	if err := s.db.WithContext(ctx).Create(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

// CreateDietaryProfile creates the user's dietary profile once.
func (s *ProfileService) CreateDietaryProfile(ctx context.Context, userID uuid.UUID, req *types.DietaryProfileRequest) (*models.DietaryProfile, error) {
	var count int64
	if err := s.db.WithContext(ctx).Model(&models.DietaryProfile{}).Where("user_id = ?", userID).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrProfileExists
	}

	profile := models.DietaryProfile{
		UserID:           userID,
		DietPreference:   stringOrEmpty(req.DietPreference),
		DietAllergies:    stringOrEmpty(req.DietAllergies),
		DietRestrictions: stringOrEmpty(req.DietRestrictions),
		DietPreferences:  stringOrEmpty(req.DietPreferences),
		DietGoal:         stringOrEmpty(req.DietGoal),
	}
	if err := s.db.WithContext(ctx).Create(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

// UpdateDietaryProfile applies a partial update to an existing record.
func (s *ProfileService) UpdateDietaryProfile(ctx context.Context, userID uuid.UUID, req *types.DietaryProfileRequest) (*models.DietaryProfile, error) {
	var profile models.DietaryProfile
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error; err != nil {
		return nil, err
	}

	if req.DietPreference != nil {
		profile.DietPreference = *req.DietPreference
	}
	if req.DietAllergies != nil {
		profile.DietAllergies = *req.DietAllergies
	}
	if req.DietRestrictions != nil {
		profile.DietRestrictions = *req.DietRestrictions
	}
	if req.DietPreferences != nil {
		profile.DietPreferences = *req.DietPreferences
	}
	if req.DietGoal != nil {
		profile.DietGoal = *req.DietGoal
	}

	if err := s.db.WithContext(ctx).Save(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

// SetupView is the combined profile-setup payload: the account block plus
// the three profile blocks, zero-valued where records are absent.
type SetupView struct {
	UserProfile     map[string]interface{} `json:"user_profile"`
	PhysicalProfile map[string]interface{} `json:"physical_profile"`
	FitnessProfile  map[string]interface{} `json:"fitness_profile"`
	DietaryProfile  map[string]interface{} `json:"dietary_profile"`
}

// GetSetupView assembles the combined setup view without creating records.
func (s *ProfileService) GetSetupView(ctx context.Context, userID uuid.UUID) (*SetupView, error) {
	user, err := s.GetUserDetail(ctx, userID)
	if err != nil {
		return nil, err
	}

	view := &SetupView{
		UserProfile: map[string]interface{}{
			"first_name": user.FirstName,
			"last_name":  user.LastName,
			"age":        user.Age,
			"occupation": user.Occupation,
			"about_me":   user.AboutMe,
		},
	}

	if p := user.PhysicalProfile; p != nil {
		view.PhysicalProfile = map[string]interface{}{
			"height":           p.Height,
			"weight":           p.Weight,
			"gender":           p.Gender,
			"body_fat":         p.BodyFat,
			"body_mass":        p.BodyMass,
			"health_condition": p.HealthCondition,
		}
	} else {
		view.PhysicalProfile = map[string]interface{}{
			"height":           0,
			"weight":           0,
			"gender":           "",
			"body_fat":         nil,
			"body_mass":        nil,
			"health_condition": "",
		}
	}

	if p := user.FitnessProfile; p != nil {
		view.FitnessProfile = map[string]interface{}{
			"fitness_level":     p.FitnessLevel,
			"workout_frequency": p.WorkoutFrequency,
			"workout_duration":  p.WorkoutDuration,
			"workout_intensity": p.WorkoutIntensity,
			"workout_type":      p.WorkoutType,
			"workout_equipment": p.WorkoutEquipment,
			"workout_style":     p.WorkoutStyle,
			"workout_goal":      p.WorkoutGoal,
			"health_goal":       p.HealthGoal,
		}
	} else {
		view.FitnessProfile = map[string]interface{}{
			"fitness_level":     models.FitnessLevelBeginner,
			"workout_frequency": 0,
			"workout_duration":  0,
			"workout_intensity": 0,
			"workout_type":      "",
			"workout_equipment": "",
			"workout_style":     "",
			"workout_goal":      "",
			"health_goal":       "",
		}
	}

	if p := user.DietaryProfile; p != nil {
		view.DietaryProfile = map[string]interface{}{
			"diet_preference":   p.DietPreference,
			"diet_allergies":    p.DietAllergies,
			"diet_restrictions": p.DietRestrictions,
			"diet_preferences":  p.DietPreferences,
			"diet_goal":         p.DietGoal,
		}
	} else {
		view.DietaryProfile = map[string]interface{}{
			"diet_preference":   "",
			"diet_allergies":    "",
			"diet_restrictions": "",
			"diet_preferences":  "",
			"diet_goal":         "",
		}
	}

	return view, nil
}

// Setup applies the combined profile-setup payload. Present blocks are
// upserted independently; missing records are created with zero-filled
// required fields.
func (s *ProfileService) Setup(ctx context.Context, userID uuid.UUID, req *types.ProfileSetupRequest) error {
	if req.UserProfile != nil {
		if _, err := s.UpdateUser(ctx, userID, req.UserProfile); err != nil {
			return err
		}
	}

	if req.PhysicalProfile != nil {
		_, err := s.UpdatePhysicalProfile(ctx, userID, req.PhysicalProfile)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			_, err = s.CreatePhysicalProfile(ctx, userID, req.PhysicalProfile)
		}
		if err != nil {
			return err
		}
	}

	if req.FitnessProfile != nil {
		_, err := s.UpdateFitnessProfile(ctx, userID, req.FitnessProfile)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			_, err = s.CreateFitnessProfile(ctx, userID, req.FitnessProfile)
		}
		if err != nil {
			return err
		}
	}

	if req.DietaryProfile != nil {
		_, err := s.UpdateDietaryProfile(ctx, userID, req.DietaryProfile)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			_, err = s.CreateDietaryProfile(ctx, userID, req.DietaryProfile)
		}
		if err != nil {
			return err
		}
	}

	return nil
}
