package types

// RegisterRequest covers account creation plus the optional profile subset
// that can be supplied inline at registration.
type RegisterRequest struct {
	Username  string `json:"username" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=6"`
	Password2 string `json:"password2" binding:"required"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Age       *int   `json:"age"`
	Occupation string `json:"occupation"`
	AboutMe    string `json:"about_me"`

	// Optional physical profile fields
	Height *int    `json:"height"`
	Weight *int    `json:"weight"`
	Gender *string `json:"gender"`

	// Optional fitness profile fields
	FitnessLevel     *int    `json:"fitness_level"`
	WorkoutFrequency *int    `json:"workout_frequency"`
	WorkoutDuration  *int    `json:"workout_duration"`
	WorkoutIntensity *int    `json:"workout_intensity"`
	WorkoutType      *string `json:"workout_type"`
	WorkoutGoal      *string `json:"workout_goal"`
	HealthGoal       *string `json:"health_goal"`

	// Optional dietary profile fields
	DietPreference *string `json:"diet_preference"`
	DietGoal       *string `json:"diet_goal"`
}

// LoginRequest is the credential exchange payload.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RefreshRequest carries a refresh token; the cookie is the fallback source.
type RefreshRequest struct {
	Refresh string `json:"refresh"`
}

// UpdateUserRequest is the partial update payload for the base account.
type UpdateUserRequest struct {
	FirstName  *string `json:"first_name"`
	LastName   *string `json:"last_name"`
	Age        *int    `json:"age"`
	Occupation *string `json:"occupation"`
	AboutMe    *string `json:"about_me"`
}

// PhysicalProfileRequest is the create/update payload for a physical profile.
type PhysicalProfileRequest struct {
	Height          *int    `json:"height"`
	Weight          *int    `json:"weight"`
	Gender          *string `json:"gender"`
	BodyFat         *int    `json:"body_fat"`
	BodyMass        *int    `json:"body_mass"`
	HealthCondition *string `json:"health_condition"`
}

// FitnessProfileRequest is the create/update payload for a fitness profile.
type FitnessProfileRequest struct {
	FitnessLevel     *int    `json:"fitness_level"`
	WorkoutFrequency *int    `json:"workout_frequency"`
	WorkoutDuration  *int    `json:"workout_duration"`
	WorkoutIntensity *int    `json:"workout_intensity"`
	WorkoutType      *string `json:"workout_type"`
	WorkoutEquipment *string `json:"workout_equipment"`
	WorkoutStyle     *string `json:"workout_style"`
	WorkoutGoal      *string `json:"workout_goal"`
	HealthGoal       *string `json:"health_goal"`
}

// DietaryProfileRequest is the create/update payload for a dietary profile.
type DietaryProfileRequest struct {
	DietPreference   *string `json:"diet_preference"`
	DietAllergies    *string `json:"diet_allergies"`
	DietRestrictions *string `json:"diet_restrictions"`
	DietPreferences  *string `json:"diet_preferences"`
	DietGoal         *string `json:"diet_goal"`
}

// ProfileSetupRequest bundles all four blocks for the combined setup
// endpoint. Absent blocks are left untouched.
type ProfileSetupRequest struct {
	UserProfile     *UpdateUserRequest      `json:"user_profile"`
	PhysicalProfile *PhysicalProfileRequest `json:"physical_profile"`
	FitnessProfile  *FitnessProfileRequest  `json:"fitness_profile"`
	DietaryProfile  *DietaryProfileRequest  `json:"dietary_profile"`
}

// ContentRequest is the create/update payload for catalog items.
type ContentRequest struct {
	Title             string `json:"title"`
	Description       string `json:"description"`
	ContentType       string `json:"content_type"`
	URL               string `json:"url"`
	YoutubeURL        string `json:"youtube_url"`
	DifficultyLevel   *int   `json:"difficulty_level"`
	EquipmentRequired string `json:"equipment_required"`
	DurationMinutes   int    `json:"duration_minutes"`
	CaloriesBurned    int    `json:"calories_burned"`
	TargetMuscles     string `json:"target_muscles"`
}

// VectorSearchRequest is the semantic-search payload.
type VectorSearchRequest struct {
	Query           string                 `json:"query"`
	ContentType     string                 `json:"content_type"`
	DifficultyLevel *int                   `json:"difficulty_level"`
	Filters         map[string]interface{} `json:"filters"`
	Limit           int                    `json:"limit"`
}

// VectorUpsertRequest describes an ad-hoc index entry to embed and upsert
// without touching the catalog table.
type VectorUpsertRequest struct {
	Title             string `json:"title"`
	Description       string `json:"description"`
	ContentType       string `json:"content_type"`
	EmbeddingID       string `json:"embedding_id"`
	URL               string `json:"url"`
	YoutubeURL        string `json:"youtube_url"`
	DifficultyLevel   *int   `json:"difficulty_level"`
	EquipmentRequired string `json:"equipment_required"`
	DurationMinutes   int    `json:"duration_minutes"`
	CaloriesBurned    int    `json:"calories_burned"`
	TargetMuscles     string `json:"target_muscles"`
}

// ChatRequest is the streaming chat payload.
type ChatRequest struct {
	Query string `json:"query" binding:"required"`
}
