package converter

import (
	"testing"
	"time"

	"self-fitness/internal/domain/entity"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoutineToResponseOrdersSlotsAndDerivesTargets(t *testing.T) {
	routine := &entity.Routine{
		ID:        5,
		Name:      "Push day",
		Checklist: entity.Checklist{{Name: "Warm shoulders"}, {Name: "Stretch", IsOptional: true}},
		Slots: []entity.Slot{
			{ID: 2, Sequence: 2, Category: entity.CategoryWorkingSets, Weight: decimal.RequireFromString("62.5"), Exercise: entity.Exercise{ID: 1, Name: "Bench"}},
			{ID: 1, Sequence: 1, Category: entity.CategoryWarmUp, Exercise: entity.Exercise{ID: 2, Name: "Band pull apart"}},
		},
		Workout: &entity.Workout{ID: 9},
	}

	got := RoutineToResponse(routine)

	require.Len(t, got.Slots, 2)
	assert.Equal(t, int64(1), got.Slots[0].ID)
	assert.Equal(t, 62.5, got.Slots[1].Weight)
	assert.Equal(t, "WorkingSets", got.Slots[1].Category)
	require.Len(t, got.Targets, 2)
	assert.Equal(t, "Warm shoulders", got.Targets[0].Name)
	assert.Equal(t, int64(2), got.Targets[1].ID)
	assert.True(t, got.Checklist[1].IsOptional)
	require.NotNil(t, got.WorkoutID)
	assert.Equal(t, int64(9), *got.WorkoutID)
	assert.NotNil(t, got.Slots[0].Exercise.Cues)
}

func TestWorkoutToResponseFormatsTimesInLocation(t *testing.T) {
	loc := time.FixedZone("CST", 8*3600)
	start := time.Date(2024, 5, 1, 23, 15, 0, 0, time.UTC)
	workout := &entity.Workout{
		ID:        3,
		StartTime: &start,
		Gym:       entity.Gym{ID: 1, Name: "Iron Temple", Location: "Shanghai"},
		Targets:   []entity.Target{{ID: 4, Name: "Strength"}},
		Routine:   &entity.Routine{ID: 8, Name: "Legs"},
	}

	got := WorkoutToResponse(workout, loc)

	require.NotNil(t, got.StartTime)
	assert.Equal(t, "2024-05-02 07:15", *got.StartTime)
	assert.Nil(t, got.EndTime)
	assert.Equal(t, "Iron Temple", got.Gym.Name)
	assert.Equal(t, "Strength", got.Target[0].Name)
	require.NotNil(t, got.Routine)
	assert.Equal(t, int64(3), *got.Routine.WorkoutID)
}

func TestUserToResponse(t *testing.T) {
	user := &entity.User{
		Username: "alan",
		Roles:    []entity.Role{{Name: "USER", Permissions: []entity.Permission{{Name: "user:update"}}}},
	}

	got := UserToResponse(user)

	assert.Equal(t, []string{"USER"}, got.Roles)
	assert.Equal(t, []string{"ROLE_USER", "user:update"}, got.Authorities)
	assert.Nil(t, UserToResponse(nil))
}
