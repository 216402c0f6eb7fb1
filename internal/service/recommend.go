package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/fitfusion/backend/internal/models"
)

var (
	// ErrMalformedAIResponse is returned when the model output contains no
	// JSON object delimiters at all.
	ErrMalformedAIResponse = errors.New("no JSON found in AI response")
	// ErrAIResponseParse is returned when the extracted substring is not
	// valid JSON.
	ErrAIResponseParse = errors.New("failed to parse AI response as JSON")
)

// TextGenerator is the hosted text-generation model surface.
type TextGenerator interface {
	CreateMessage(ctx context.Context, system, prompt string, maxTokens int, temperature float64) (string, error)
	StreamMessage(ctx context.Context, system, prompt string, maxTokens int, temperature float64, emit func(text string) error) error
}

// ProfileSnapshot is the flattened view of one account's profile data used
// to assemble the recommendation prompt. Every field is a ready-to-embed
// string; numeric values are formatted at assembly time.
type ProfileSnapshot struct {
	Age             string
	Occupation      string
	AboutMe         string
	Height          string
	Weight          string
	Gender          string
	BodyFat         string
	BodyMass        string
	HealthCondition string

	FitnessLevel     string
	WorkoutFrequency string
	WorkoutDuration  string
	WorkoutIntensity string
	WorkoutType      string
	WorkoutEquipment string
	WorkoutStyle     string
	WorkoutGoal      string
	HealthGoal       string

	DietPreference   string
	DietAllergies    string
	DietRestrictions string
	DietPreferences  string
	DietGoal         string
}

// snapshotDefaults is the declarative fallback table, applied field-for-field
// when the corresponding profile record is absent. This table is the
// component's main behavioral contract.
var snapshotDefaults = ProfileSnapshot{
	Age:             "unspecified",
	Occupation:      "unspecified",
	AboutMe:         "",
	Height:          "unspecified",
	Weight:          "70",
	Gender:          "unspecified",
	BodyFat:         "unspecified",
	BodyMass:        "unspecified",
	HealthCondition: "none",

	FitnessLevel:     "intermediate",
	WorkoutFrequency: "3",
	WorkoutDuration:  "30",
	WorkoutIntensity: "5",
	WorkoutType:      "general exercise",
	WorkoutEquipment: "",
	WorkoutStyle:     "",
	WorkoutGoal:      "general fitness",
	HealthGoal:       "general health",

	DietPreference:   "balanced nutrition",
	DietAllergies:    "none",
	DietRestrictions: "none",
	DietPreferences:  "none",
	DietGoal:         "balanced nutrition",
}

// BuildSnapshot flattens a user (with whichever profile records exist) into
// a ProfileSnapshot, substituting the fallback table for absent records and
// absent optional fields.
func BuildSnapshot(user *models.User) ProfileSnapshot {
	s := snapshotDefaults

	if user.Age != nil {
		s.Age = strconv.Itoa(*user.Age)
	}
	if user.Occupation != "" {
		s.Occupation = user.Occupation
	}
	s.AboutMe = user.AboutMe

	if p := user.PhysicalProfile; p != nil {
		s.Height = strconv.Itoa(p.Height)
		s.Weight = strconv.Itoa(p.Weight)
		s.Gender = p.Gender
		if p.BodyFat != nil {
			s.BodyFat = strconv.Itoa(*p.BodyFat)
		}
		if p.BodyMass != nil {
			s.BodyMass = strconv.Itoa(*p.BodyMass)
		}
		// The stored value is interpolated as-is, empty string included;
		// the "none" fallback applies only when no record exists.
		s.HealthCondition = p.HealthCondition
	}

	if p := user.FitnessProfile; p != nil {
		s.FitnessLevel = models.FitnessLevelName(p.FitnessLevel)
		s.WorkoutFrequency = strconv.Itoa(p.WorkoutFrequency)
		s.WorkoutDuration = strconv.Itoa(p.WorkoutDuration)
		s.WorkoutIntensity = strconv.Itoa(p.WorkoutIntensity)
		s.WorkoutType = p.WorkoutType
		s.WorkoutEquipment = p.WorkoutEquipment
		s.WorkoutStyle = p.WorkoutStyle
		s.WorkoutGoal = p.WorkoutGoal
		s.HealthGoal = p.HealthGoal
	}

	if p := user.DietaryProfile; p != nil {
		s.DietPreference = p.DietPreference
		s.DietAllergies = p.DietAllergies
		s.DietRestrictions = p.DietRestrictions
		s.DietPreferences = p.DietPreferences
		s.DietGoal = p.DietGoal
	}

	return s
}

// replacer expands the {placeholder} tokens in the prompt templates with the
// snapshot's literal values. Exact substitution, never paraphrase.
func (s ProfileSnapshot) replacer() *strings.Replacer {
	return strings.NewReplacer(
		"{age}", s.Age,
		"{occupation}", s.Occupation,
		"{height_cm}", s.Height,
		"{weight_kg}", s.Weight,
		"{gender}", s.Gender,
		"{body_fat}", s.BodyFat,
		"{body_mass}", s.BodyMass,
		"{health_condition}", s.HealthCondition,
		"{fitness_level}", s.FitnessLevel,
		"{workout_frequency}", s.WorkoutFrequency,
		"{workout_duration}", s.WorkoutDuration,
		"{workout_intensity}", s.WorkoutIntensity,
		"{workout_type}", s.WorkoutType,
		"{workout_equipment}", s.WorkoutEquipment,
		"{workout_style}", s.WorkoutStyle,
		"{workout_goal}", s.WorkoutGoal,
		"{health_goal}", s.HealthGoal,
		"{diet_preference}", s.DietPreference,
		"{diet_allergies}", s.DietAllergies,
		"{diet_restrictions}", s.DietRestrictions,
		"{diet_preferences}", s.DietPreferences,
		"{diet_goal}", s.DietGoal,
	)
}

// profileDocument mirrors the JSON block embedded at the top of the prompt.
type profileDocument struct {
	PersonalInfo struct {
		Age        string `json:"age"`
		Occupation string `json:"occupation"`
		Gender     string `json:"gender"`
		AboutMe    string `json:"aboutMe"`
	} `json:"personalInfo"`
	PhysicalAttributes struct {
		Height            string `json:"height"`
		Weight            string `json:"weight"`
		BodyFatPercentage string `json:"bodyFatPercentage"`
		BodyMass          string `json:"bodyMass"`
	} `json:"physicalAttributes"`
	FitnessProfile struct {
		FitnessLevel     string `json:"fitnessLevel"`
		WorkoutFrequency string `json:"workoutFrequency"`
		WorkoutDuration  string `json:"workoutDuration"`
		WorkoutIntensity string `json:"workoutIntensity"`
		WorkoutType      string `json:"workoutType"`
		WorkoutEquipment string `json:"workoutEquipment"`
		WorkoutStyle     string `json:"workoutStyle"`
		WorkoutGoal      string `json:"workoutGoal"`
		HealthGoal       string `json:"healthGoal"`
	} `json:"fitnessProfile"`
	Nutrition struct {
		DietPreference   string `json:"dietPreference"`
		DietAllergies    string `json:"dietAllergies"`
		DietRestrictions string `json:"dietRestrictions"`
		DietPreferences  string `json:"dietPreferences"`
		DietGoal         string `json:"dietGoal"`
	} `json:"nutrition"`
	AdditionalInfo struct {
		HealthCondition string `json:"healthCondition"`
	} `json:"additionalInfo"`
}

func buildProfileJSON(s ProfileSnapshot) (string, error) {
	var doc profileDocument
	doc.PersonalInfo.Age = s.Age
	doc.PersonalInfo.Occupation = s.Occupation
	doc.PersonalInfo.Gender = s.Gender
	doc.PersonalInfo.AboutMe = s.AboutMe
	doc.PhysicalAttributes.Height = s.Height
	doc.PhysicalAttributes.Weight = s.Weight
	doc.PhysicalAttributes.BodyFatPercentage = s.BodyFat
	doc.PhysicalAttributes.BodyMass = s.BodyMass
	doc.FitnessProfile.FitnessLevel = s.FitnessLevel
	doc.FitnessProfile.WorkoutFrequency = s.WorkoutFrequency
	doc.FitnessProfile.WorkoutDuration = s.WorkoutDuration
	doc.FitnessProfile.WorkoutIntensity = s.WorkoutIntensity
	doc.FitnessProfile.WorkoutType = s.WorkoutType
	doc.FitnessProfile.WorkoutEquipment = s.WorkoutEquipment
	doc.FitnessProfile.WorkoutStyle = s.WorkoutStyle
	doc.FitnessProfile.WorkoutGoal = s.WorkoutGoal
	doc.FitnessProfile.HealthGoal = s.HealthGoal
	doc.Nutrition.DietPreference = s.DietPreference
	doc.Nutrition.DietAllergies = s.DietAllergies
	doc.Nutrition.DietRestrictions = s.DietRestrictions
	doc.Nutrition.DietPreferences = s.DietPreferences
	doc.Nutrition.DietGoal = s.DietGoal
	doc.AdditionalInfo.HealthCondition = s.HealthCondition

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// RecommendationService assembles a structured prompt from one account's
// profile data, invokes the hosted text-generation model once, and extracts
// a JSON document from the free-text response.
type RecommendationService struct {
	generator TextGenerator
}

// NewRecommendationService creates a new RecommendationService instance
func NewRecommendationService(generator TextGenerator) *RecommendationService {
	return &RecommendationService{generator: generator}
}

// Recommend produces the personalized recommendation document for user.
// The parsed object is returned as-is: key presence is not validated against
// the prompt's shape contract.
func (s *RecommendationService) Recommend(ctx context.Context, user *models.User) (map[string]interface{}, error) {
	snapshot := BuildSnapshot(user)

	prompt, err := buildPrompt(snapshot)
	if err != nil {
		return nil, fmt.Errorf("failed to build prompt: %w", err)
	}
	system := buildSystemPrompt(snapshot)

	responseText, err := s.generator.CreateMessage(ctx, system, prompt, 10000, 0.7)
	if err != nil {
		return nil, fmt.Errorf("text generation failed: %w", err)
	}

	return extractJSON(responseText)
}

// Chat relays one streaming completion, emitting text deltas as they arrive.
func (s *RecommendationService) Chat(ctx context.Context, query string, emit func(text string) error) error {
	return s.generator.StreamMessage(ctx, "You are an expert fitness advisor", query, 1000, 1, emit)
}

// extractJSON locates the first '{' and the last '}' in text and parses the
// substring between them. It trusts the model's adherence to the shape
// contract; no schema validation happens here.
func extractJSON(text string) (map[string]interface{}, error) {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start < 0 || end <= start {
		log.Printf("No JSON found in AI response: %s", text)
		return nil, ErrMalformedAIResponse
	}

	var result map[string]interface{}
	if err := json.Unmarshal([]byte(text[start:end+1]), &result); err != nil {
		log.Printf("Failed to parse AI response as JSON: %s", text)
		return nil, ErrAIResponseParse
	}
	return result, nil
}

func buildPrompt(s ProfileSnapshot) (string, error) {
	profileJSON, err := buildProfileJSON(s)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString("Given the following specific user profile:\n")
	b.WriteString(profileJSON)
	b.WriteString("\n\n")
	b.WriteString(s.replacer().Replace(specificInstructionsTemplate))
	b.WriteString("\n")
	b.WriteString(s.replacer().Replace(outputContractTemplate))
	return b.String(), nil
}

func buildSystemPrompt(s ProfileSnapshot) string {
	return s.replacer().Replace(systemPromptTemplate)
}
