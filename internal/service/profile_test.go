package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/fitfusion/backend/internal/models"
	"github.com/fitfusion/backend/internal/testhelpers"
	"github.com/fitfusion/backend/internal/types"
)

func createTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	user := &models.User{
		Username:     "alice",
		Email:        "alice@example.com",
		PasswordHash: "irrelevant",
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func TestGetOrCreatePhysicalProfile(t *testing.T) {
	db := testhelpers.SetupSQLite(t)
	svc := NewProfileService(db)
	user := createTestUser(t, db)

	// First read materializes a zero-valued record.
	profile, err := svc.GetOrCreatePhysicalProfile(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, profile.Height)
	assert.Equal(t, 0, profile.Weight)
	assert.Equal(t, "", profile.Gender)

	// Second read returns the same record, not a new one.
	again, err := svc.GetOrCreatePhysicalProfile(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, profile.ID, again.ID)

	var count int64
	require.NoError(t, db.Model(&models.PhysicalProfile{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestGetOrCreateFitnessProfileDefaultsToBeginner(t *testing.T) {
	db := testhelpers.SetupSQLite(t)
	svc := NewProfileService(db)
	user := createTestUser(t, db)

	profile, err := svc.GetOrCreateFitnessProfile(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, models.FitnessLevelBeginner, profile.FitnessLevel)
}

func TestCreateProfileTwice(t *testing.T) {
	db := testhelpers.SetupSQLite(t)
	svc := NewProfileService(db)
	user := createTestUser(t, db)

	_, err := svc.CreatePhysicalProfile(context.Background(), user.ID, &types.PhysicalProfileRequest{
		Height: intPtr(180),
		Weight: intPtr(80),
	})
	require.NoError(t, err)

	_, err = svc.CreatePhysicalProfile(context.Background(), user.ID, &types.PhysicalProfileRequest{
		Height: intPtr(181),
	})
	assert.ErrorIs(t, err, ErrProfileExists)
}

func TestUpdateProfileMissing(t *testing.T) {
	db := testhelpers.SetupSQLite(t)
	svc := NewProfileService(db)
	user := createTestUser(t, db)

	_, err := svc.UpdateFitnessProfile(context.Background(), user.ID, &types.FitnessProfileRequest{
		WorkoutFrequency: intPtr(4),
	})
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestUpdatePhysicalProfilePartial(t *testing.T) {
	db := testhelpers.SetupSQLite(t)
	svc := NewProfileService(db)
	user := createTestUser(t, db)

	_, err := svc.CreatePhysicalProfile(context.Background(), user.ID, &types.PhysicalProfileRequest{
		Height: intPtr(180),
		Weight: intPtr(80),
		Gender: strPtr("male"),
	})
	require.NoError(t, err)

	updated, err := svc.UpdatePhysicalProfile(context.Background(), user.ID, &types.PhysicalProfileRequest{
		Weight: intPtr(78),
	})
	require.NoError(t, err)
	assert.Equal(t, 78, updated.Weight)
	// Untouched fields survive a partial update.
	assert.Equal(t, 180, updated.Height)
	assert.Equal(t, "male", updated.Gender)
}

func TestGetSetupViewWithoutRecords(t *testing.T) {
	db := testhelpers.SetupSQLite(t)
	svc := NewProfileService(db)
	user := createTestUser(t, db)

	view, err := svc.GetSetupView(context.Background(), user.ID)
	require.NoError(t, err)

	assert.Equal(t, 0, view.PhysicalProfile["height"])
	assert.Equal(t, models.FitnessLevelBeginner, view.FitnessProfile["fitness_level"])
	assert.Equal(t, "", view.DietaryProfile["diet_goal"])

	// The view alone must not materialize rows.
	var count int64
	require.NoError(t, db.Model(&models.PhysicalProfile{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}

func TestSetupCreatesAndUpdates(t *testing.T) {
	db := testhelpers.SetupSQLite(t)
	svc := NewProfileService(db)
	user := createTestUser(t, db)

	err := svc.Setup(context.Background(), user.ID, &types.ProfileSetupRequest{
		UserProfile: &types.UpdateUserRequest{
			Occupation: strPtr("engineer"),
		},
		PhysicalProfile: &types.PhysicalProfileRequest{
			Height: intPtr(170),
			Weight: intPtr(65),
		},
		FitnessProfile: &types.FitnessProfileRequest{
			FitnessLevel: intPtr(2),
			WorkoutGoal:  strPtr("endurance"),
		},
	})
	require.NoError(t, err)

	// Blocks not present in the payload stay absent.
	detail, err := svc.GetUserDetail(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, "engineer", detail.Occupation)
	require.NotNil(t, detail.PhysicalProfile)
	assert.Equal(t, 170, detail.PhysicalProfile.Height)
	require.NotNil(t, detail.FitnessProfile)
	assert.Equal(t, "endurance", detail.FitnessProfile.WorkoutGoal)
	assert.Nil(t, detail.DietaryProfile)

	// A second setup updates in place.
	err = svc.Setup(context.Background(), user.ID, &types.ProfileSetupRequest{
		PhysicalProfile: &types.PhysicalProfileRequest{Weight: intPtr(64)},
	})
	require.NoError(t, err)

	detail, err = svc.GetUserDetail(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, 64, detail.PhysicalProfile.Weight)
	assert.Equal(t, 170, detail.PhysicalProfile.Height)
}
