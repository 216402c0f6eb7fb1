package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFitnessLevelName(t *testing.T) {
	assert.Equal(t, "beginner", FitnessLevelName(FitnessLevelBeginner))
	assert.Equal(t, "professional", FitnessLevelName(FitnessLevelProfessional))

	// Out-of-range ordinals fall back to the middle of the scale.
	assert.Equal(t, "intermediate", FitnessLevelName(0))
	assert.Equal(t, "intermediate", FitnessLevelName(99))
}

func TestValidContentType(t *testing.T) {
	for _, valid := range []string{"exercise", "workout", "article", "tutorial", "diet"} {
		assert.True(t, ValidContentType(valid), valid)
	}
	assert.False(t, ValidContentType(""))
	assert.False(t, ValidContentType("podcast"))
	assert.False(t, ValidContentType("Workout"))
}
