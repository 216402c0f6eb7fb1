package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fitfusion/backend/internal/models"
)

// fakeGenerator returns canned text and records the prompts it was given.
type fakeGenerator struct {
	response    string
	err         error
	lastSystem  string
	lastPrompt  string
	lastMaxTok  int
	lastTemp    float64
	streamParts []string
}

func (f *fakeGenerator) CreateMessage(ctx context.Context, system, prompt string, maxTokens int, temperature float64) (string, error) {
	f.lastSystem = system
	f.lastPrompt = prompt
	f.lastMaxTok = maxTokens
	f.lastTemp = temperature
	return f.response, f.err
}

func (f *fakeGenerator) StreamMessage(ctx context.Context, system, prompt string, maxTokens int, temperature float64, emit func(text string) error) error {
	f.lastSystem = system
	f.lastPrompt = prompt
	f.lastMaxTok = maxTokens
	f.lastTemp = temperature
	for _, part := range f.streamParts {
		if err := emit(part); err != nil {
			return err
		}
	}
	return f.err
}

func TestBuildSnapshotFallbacks(t *testing.T) {
	// An account with no profile records at all gets the full fallback table.
	s := BuildSnapshot(&models.User{Username: "alice"})

	assert.Equal(t, "unspecified", s.Age)
	assert.Equal(t, "unspecified", s.Occupation)
	assert.Equal(t, "unspecified", s.Height)
	assert.Equal(t, "70", s.Weight)
	assert.Equal(t, "unspecified", s.Gender)
	assert.Equal(t, "none", s.HealthCondition)
	assert.Equal(t, "intermediate", s.FitnessLevel)
	assert.Equal(t, "3", s.WorkoutFrequency)
	assert.Equal(t, "30", s.WorkoutDuration)
	assert.Equal(t, "5", s.WorkoutIntensity)
	assert.Equal(t, "general exercise", s.WorkoutType)
	assert.Equal(t, "general fitness", s.WorkoutGoal)
	assert.Equal(t, "general health", s.HealthGoal)
	assert.Equal(t, "balanced nutrition", s.DietPreference)
	assert.Equal(t, "none", s.DietAllergies)
	assert.Equal(t, "balanced nutrition", s.DietGoal)
}

func TestBuildSnapshotUsesRecords(t *testing.T) {
	age := 34
	bodyFat := 18
	user := &models.User{
		Username:   "alice",
		Age:        &age,
		Occupation: "engineer",
		PhysicalProfile: &models.PhysicalProfile{
			Height:          170,
			Weight:          65,
			Gender:          "female",
			BodyFat:         &bodyFat,
			HealthCondition: "asthma",
		},
		FitnessProfile: &models.FitnessProfile{
			FitnessLevel:     models.FitnessLevelAdvanced,
			WorkoutFrequency: 5,
			WorkoutDuration:  45,
			WorkoutIntensity: 8,
			WorkoutType:      "strength training",
			WorkoutGoal:      "muscle gain",
			HealthGoal:       "longevity",
		},
		DietaryProfile: &models.DietaryProfile{
			DietPreference: "vegetarian",
			DietAllergies:  "peanuts",
			DietGoal:       "high protein",
		},
	}

	s := BuildSnapshot(user)
	assert.Equal(t, "34", s.Age)
	assert.Equal(t, "65", s.Weight)
	assert.Equal(t, "18", s.BodyFat)
	assert.Equal(t, "unspecified", s.BodyMass) // field absent within a present record
	assert.Equal(t, "advanced", s.FitnessLevel)
	assert.Equal(t, "5", s.WorkoutFrequency)
	assert.Equal(t, "vegetarian", s.DietPreference)
	assert.Equal(t, "peanuts", s.DietAllergies)
}

func TestBuildSnapshotEmptyHealthCondition(t *testing.T) {
	// A present physical record with an empty health condition keeps the
	// empty string; "none" is only the no-record fallback.
	user := &models.User{
		Username:        "alice",
		PhysicalProfile: &models.PhysicalProfile{Height: 170, Weight: 65},
	}

	s := BuildSnapshot(user)
	assert.Equal(t, "", s.HealthCondition)
}

func TestBuildPromptContainsLiteralValues(t *testing.T) {
	s := BuildSnapshot(&models.User{Username: "alice"})

	prompt, err := buildPrompt(s)
	require.NoError(t, err)

	// The fallback values appear verbatim in the instruction block.
	assert.Contains(t, prompt, "- Weight: 70 kg")
	assert.Contains(t, prompt, "- Workout Goal: general fitness")
	assert.Contains(t, prompt, "- Fitness Level: intermediate")
	assert.Contains(t, prompt, "- Workout Frequency: 3 days/week")

	// The shape contract names its fixed top-level keys.
	assert.Contains(t, prompt, `"workoutRecommendations"`)
	assert.Contains(t, prompt, `"nutritionRecommendations"`)
	assert.Contains(t, prompt, `"lifestyleRecommendations"`)
	assert.Contains(t, prompt, `"detailedWeeklySchedule"`)
	for _, day := range []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"} {
		assert.Contains(t, prompt, `"`+day+`"`)
	}

	system := buildSystemPrompt(s)
	assert.Contains(t, system, "Their exact weight of 70kg")
	assert.Contains(t, system, "Workout goal: general fitness")
}

func TestExtractJSON(t *testing.T) {
	result, err := extractJSON(`Here are your recommendations: {"workoutRecommendations": []} Hope this helps!`)
	require.NoError(t, err)
	assert.Contains(t, result, "workoutRecommendations")

	_, err = extractJSON("I could not produce recommendations.")
	assert.ErrorIs(t, err, ErrMalformedAIResponse)

	_, err = extractJSON(`{"broken": `)
	assert.ErrorIs(t, err, ErrMalformedAIResponse)

	_, err = extractJSON(`{"broken": oops}`)
	assert.ErrorIs(t, err, ErrAIResponseParse)
}

func TestRecommend(t *testing.T) {
	gen := &fakeGenerator{response: `Sure! {"workoutRecommendations": [{"category": "Cardio"}]}`}
	svc := NewRecommendationService(gen)

	result, err := svc.Recommend(context.Background(), &models.User{Username: "alice"})
	require.NoError(t, err)
	assert.Contains(t, result, "workoutRecommendations")

	assert.Equal(t, 10000, gen.lastMaxTok)
	assert.Equal(t, 0.7, gen.lastTemp)
	assert.Contains(t, gen.lastPrompt, "Given the following specific user profile:")
	assert.Contains(t, gen.lastPrompt, `"weight": "70"`)
}

func TestChat(t *testing.T) {
	gen := &fakeGenerator{streamParts: []string{"Hel", "lo"}}
	svc := NewRecommendationService(gen)

	var got string
	err := svc.Chat(context.Background(), "how much protein?", func(text string) error {
		got += text
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, "Hello", got)
	assert.Equal(t, 1000, gen.lastMaxTok)
	assert.Equal(t, float64(1), gen.lastTemp)
	assert.Contains(t, gen.lastSystem, "fitness advisor")
}
