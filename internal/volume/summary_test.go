package volume

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meltforce/momentum/internal/models"
)

// TestSummarize checks the dashboard card numbers for the example week.
func TestSummarize(t *testing.T) {
	assert.Equal(t, WeekSummary{Volume: 1550, Sets: 3, Workouts: 2}, Summarize(scenario()))
	assert.Equal(t, WeekSummary{}, Summarize(nil))
}

// TestPersonalRecords checks the heaviest set wins and ties go to reps, then
// to the earlier date.
func TestPersonalRecords(t *testing.T) {
	workouts := []models.Workout{
		models.NewWorkout(models.MustDate("2024-01-01"), []models.WorkoutExercise{
			bench(set(5, 200), set(3, 200)),
			{ExerciseID: "pullup", Sets: []models.Set{set(10, 0)}},
		}),
		models.NewWorkout(models.MustDate("2024-01-08"), []models.WorkoutExercise{
			bench(set(5, 200)),
			{ExerciseID: "squat", Sets: []models.Set{set(5, 225), set(1, 315)}},
		}),
	}

	got := PersonalRecords(workouts)

	require.Len(t, got, 2)
	assert.Equal(t, PersonalRecord{ExerciseID: "bench", Weight: 200, Reps: 5, Date: models.MustDate("2024-01-01")}, got[0])
	assert.Equal(t, "squat", got[1].ExerciseID)
	assert.Equal(t, 315.0, got[1].Weight)
}

// TestMuscleGroupCounts counts each group once per workout.
func TestMuscleGroupCounts(t *testing.T) {
	library := []models.Exercise{
		{ID: "bench", MuscleGroup: models.MuscleGroupChest},
		{ID: "fly", MuscleGroup: models.MuscleGroupChest},
		{ID: "squat", MuscleGroup: models.MuscleGroupLegs},
	}
	workouts := []models.Workout{
		models.NewWorkout(models.MustDate("2024-01-01"), []models.WorkoutExercise{{ExerciseID: "bench"}, {ExerciseID: "fly"}}),
		models.NewWorkout(models.MustDate("2024-01-02"), []models.WorkoutExercise{{ExerciseID: "bench"}, {ExerciseID: "squat"}}),
		models.NewWorkout(models.MustDate("2024-01-03"), []models.WorkoutExercise{{ExerciseID: "mystery"}}),
	}

	got := MuscleGroupCounts(workouts, library)

	assert.Equal(t, []MuscleGroupCount{
		{MuscleGroup: models.MuscleGroupChest, Workouts: 2},
		{MuscleGroup: models.MuscleGroupLegs, Workouts: 1},
		{MuscleGroup: models.MuscleGroupOther, Workouts: 1},
	}, got)

	top, ok := MostTrained(got)
	assert.True(t, ok)
	assert.Equal(t, models.MuscleGroupChest, top)

	_, ok = MostTrained(nil)
	assert.False(t, ok)
}

// TestFormatPounds checks grouping and rounding.
func TestFormatPounds(t *testing.T) {
	assert.Equal(t, "1,550 lbs", FormatPounds(1550))
	assert.Equal(t, "0 lbs", FormatPounds(0))
	assert.Equal(t, "12,346 lbs", FormatPounds(12345.6))
}
