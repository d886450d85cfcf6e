package volume

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meltforce/momentum/internal/models"
)

func bench(sets ...models.Set) models.WorkoutExercise {
	return models.WorkoutExercise{ExerciseID: "bench", Sets: sets}
}

func set(reps int, weight float64) models.Set {
	return models.Set{Reps: reps, Weight: weight}
}

// scenario is the two-day bench example used throughout the tests.
func scenario() []models.Workout {
	return []models.Workout{
		models.NewWorkout(models.MustDate("2024-01-01"), []models.WorkoutExercise{bench(set(5, 100), set(5, 100))}),
		models.NewWorkout(models.MustDate("2024-01-02"), []models.WorkoutExercise{bench(set(5, 110))}),
	}
}

// TestExerciseVolume checks the reps x weight sum and the empty case.
func TestExerciseVolume(t *testing.T) {
	assert.Equal(t, 0.0, ExerciseVolume(models.WorkoutExercise{ExerciseID: "bench"}))
	assert.Equal(t, 1550.0, ExerciseVolume(bench(set(5, 100), set(5, 100), set(5, 110))))
	assert.Equal(t, 0.0, ExerciseVolume(bench(set(12, 0))), "bodyweight sets carry no volume")
	assert.Equal(t, 0.0, ExerciseVolume(bench(models.Set{Weight: 100})), "missing reps count as zero")
}

// TestTotalVolumeScenario runs the two-day bench example.
func TestTotalVolumeScenario(t *testing.T) {
	assert.Equal(t, 1550.0, TotalVolume(scenario()))
	assert.Equal(t, 3, TotalSets(scenario()))
}

// TestTotalsEmpty checks that empty input and empty records sum to zero.
func TestTotalsEmpty(t *testing.T) {
	assert.Equal(t, 0.0, TotalVolume(nil))
	assert.Equal(t, 0, TotalSets(nil))

	sparse := []models.Workout{
		{Date: models.MustDate("2024-01-01")},
		{Date: models.MustDate("2024-01-02"), Exercises: []models.WorkoutExercise{{ExerciseID: "squat"}}},
	}
	assert.Equal(t, 0.0, TotalVolume(sparse))
	assert.Equal(t, 0, TotalSets(sparse))
}

// TestTotalVolumeOrderIndependent reorders workouts, exercises and sets.
func TestTotalVolumeOrderIndependent(t *testing.T) {
	a := models.NewWorkout(models.MustDate("2024-03-01"), []models.WorkoutExercise{
		bench(set(5, 100), set(3, 120)),
		{ExerciseID: "squat", Sets: []models.Set{set(8, 135), set(8, 145)}},
	})
	b := models.NewWorkout(models.MustDate("2024-03-03"), []models.WorkoutExercise{
		{ExerciseID: "row", Sets: []models.Set{set(10, 95)}},
	})
	want := TotalVolume([]models.Workout{a, b})

	aFlipped := models.NewWorkout(a.Date, []models.WorkoutExercise{
		{ExerciseID: "squat", Sets: []models.Set{set(8, 145), set(8, 135)}},
		bench(set(3, 120), set(5, 100)),
	})
	assert.Equal(t, want, TotalVolume([]models.Workout{b, a}))
	assert.Equal(t, want, TotalVolume([]models.Workout{b, aFlipped}))
	assert.Equal(t, want, TotalVolume([]models.Workout{a})+TotalVolume([]models.Workout{b}))
}

// TestFilterByExercise checks that matches keep workout then entry order.
func TestFilterByExercise(t *testing.T) {
	workouts := []models.Workout{
		models.NewWorkout(models.MustDate("2024-01-01"), []models.WorkoutExercise{
			bench(set(1, 1)),
			{ExerciseID: "squat", Sets: []models.Set{set(1, 2)}},
			bench(set(1, 3)),
		}),
		models.NewWorkout(models.MustDate("2024-01-02"), []models.WorkoutExercise{bench(set(1, 4))}),
	}

	got := FilterByExercise(workouts, "bench")
	require.Len(t, got, 3)
	for i, want := range []float64{1, 3, 4} {
		assert.Equal(t, want, got[i].Sets[0].Weight)
	}
	assert.Empty(t, FilterByExercise(workouts, "deadlift"))
}

// TestBuildDailySeriesScenario checks that zero days are dropped.
func TestBuildDailySeriesScenario(t *testing.T) {
	dates := []models.Date{models.MustDate("2024-01-01"), models.MustDate("2024-01-02"), models.MustDate("2024-01-03")}

	got := BuildDailySeries(GroupByDate(scenario()), "bench", dates)

	assert.Equal(t, []models.VolumeDataPoint{
		{Date: models.MustDate("2024-01-01"), Volume: 1000},
		{Date: models.MustDate("2024-01-02"), Volume: 550},
	}, got)
}

// TestBuildDailySeriesMatchesFilter sums several workouts on the same day and
// cross-checks each point against FilterByExercise + ExerciseVolume.
func TestBuildDailySeriesMatchesFilter(t *testing.T) {
	day := models.MustDate("2024-05-06")
	workouts := append(scenario(),
		models.NewWorkout(day, []models.WorkoutExercise{bench(set(5, 100))}),
		models.NewWorkout(day, []models.WorkoutExercise{bench(set(3, 200)), {ExerciseID: "squat", Sets: []models.Set{set(5, 300)}}}),
		models.NewWorkout(day.AddDays(1), []models.WorkoutExercise{{ExerciseID: "squat", Sets: []models.Set{set(5, 300)}}}),
	)
	byDate := GroupByDate(workouts)
	dates := DaysBetween(models.MustDate("2024-01-01"), day.AddDays(1))

	series := BuildDailySeries(byDate, "bench", dates)

	require.Len(t, series, 3)
	assert.Equal(t, day, series[2].Date)
	assert.Equal(t, 1100.0, series[2].Volume)
	for _, p := range series {
		assert.NotZero(t, p.Volume)
		var want float64
		for _, we := range FilterByExercise(byDate[p.Date], "bench") {
			want += ExerciseVolume(we)
		}
		assert.Equal(t, want, p.Volume, p.Date.String())
	}
}

// TestBuildDailySeriesFollowsRangeOrder passes dates newest first.
func TestBuildDailySeriesFollowsRangeOrder(t *testing.T) {
	dates := Reverse(DaysBetween(models.MustDate("2024-01-01"), models.MustDate("2024-01-03")))

	got := BuildDailySeries(GroupByDate(scenario()), "bench", dates)

	require.Len(t, got, 2)
	assert.Equal(t, models.MustDate("2024-01-02"), got[0].Date)
	assert.Equal(t, models.MustDate("2024-01-01"), got[1].Date)
}

// TestBuildMonthlySeriesScenario checks that zero months are kept.
func TestBuildMonthlySeriesScenario(t *testing.T) {
	got := BuildMonthlySeries(GroupByMonth(scenario()), "bench", []models.MonthKey{"2024-01", "2024-02"}, false)

	assert.Equal(t, []models.MonthlyVolume{
		{Month: "2024-01", Volume: 1550},
		{Month: "2024-02", Volume: 0},
	}, got)
}

// TestBuildMonthlySeriesKeepsCallerOrder checks one entry per requested month
// in the order requested, whatever the ordering flag says.
func TestBuildMonthlySeriesKeepsCallerOrder(t *testing.T) {
	months := LastMonths(models.MustDate("2024-02-15"), 4)
	require.Equal(t, []models.MonthKey{"2024-02", "2024-01", "2023-12", "2023-11"}, months)

	for _, flag := range []bool{true, false} {
		got := BuildMonthlySeries(GroupByMonth(scenario()), "bench", months, flag)
		require.Len(t, got, len(months))
		for i, m := range months {
			assert.Equal(t, m, got[i].Month)
		}
		assert.Equal(t, 1550.0, got[1].Volume)
	}

	charted := Reverse(BuildMonthlySeries(GroupByMonth(scenario()), "bench", months, true))
	assert.Equal(t, models.MonthKey("2023-11"), charted[0].Month)
	assert.Empty(t, BuildMonthlySeries(nil, "bench", nil, true))
}
