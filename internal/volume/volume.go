// Package volume turns workout records into training volume metrics.
//
// Volume is reps x weight for one set, summed across sets, exercises and
// workouts. Every function here is pure: no I/O, no clock, no shared state.
// Missing numbers are zero values and are summed as such.
package volume

import (
	"github.com/meltforce/momentum/internal/models"
)

// SetVolume returns reps x weight.
func SetVolume(s models.Set) float64 {
	return float64(s.Reps) * s.Weight
}

// ExerciseVolume sums SetVolume over the exercise's sets. 0 for no sets.
func ExerciseVolume(we models.WorkoutExercise) float64 {
	var total float64
	for _, s := range we.Sets {
		total += SetVolume(s)
	}
	return total
}

// WorkoutVolume sums ExerciseVolume over the workout's exercises.
func WorkoutVolume(w models.Workout) float64 {
	var total float64
	for _, we := range w.Exercises {
		total += ExerciseVolume(we)
	}
	return total
}

// TotalVolume sums every set across all workouts. 0 for empty input.
func TotalVolume(workouts []models.Workout) float64 {
	var total float64
	for _, w := range workouts {
		total += WorkoutVolume(w)
	}
	return total
}

// TotalSets counts every set across all workouts.
func TotalSets(workouts []models.Workout) int {
	var n int
	for _, w := range workouts {
		for _, we := range w.Exercises {
			n += len(we.Sets)
		}
	}
	return n
}

// FilterByExercise flattens the entries for exerciseID across workouts,
// keeping workout order and then the order within each workout.
func FilterByExercise(workouts []models.Workout, exerciseID string) []models.WorkoutExercise {
	var out []models.WorkoutExercise
	for _, w := range workouts {
		for _, we := range w.Exercises {
			if we.ExerciseID == exerciseID {
				out = append(out, we)
			}
		}
	}
	return out
}

// exerciseVolumeIn is the volume exerciseID contributed to the given workouts.
func exerciseVolumeIn(workouts []models.Workout, exerciseID string) float64 {
	var total float64
	for _, we := range FilterByExercise(workouts, exerciseID) {
		total += ExerciseVolume(we)
	}
	return total
}

// BuildDailySeries returns one point per date in dateRange on which exerciseID
// was trained. Several workouts on the same date are summed. Dates whose volume
// is exactly 0 are left out, so the series is sparse; callers that need a dense
// series fill the gaps themselves. Output follows the order of dateRange.
func BuildDailySeries(byDate map[models.Date][]models.Workout, exerciseID string, dateRange []models.Date) []models.VolumeDataPoint {
	var series []models.VolumeDataPoint
	for _, d := range dateRange {
		v := exerciseVolumeIn(byDate[d], exerciseID)
		if v == 0 {
			continue
		}
		series = append(series, models.VolumeDataPoint{Date: d, Volume: v})
	}
	return series
}

// BuildMonthlySeries returns exactly one entry per requested month, in the
// order given, with months that have no volume kept as 0.
//
// The trailing flag says whether months is newest first. It does not reorder
// the output. Use Reverse on the result to chart newest-first keys oldest to
// newest.
func BuildMonthlySeries(byMonth map[models.MonthKey][]models.Workout, exerciseID string, months []models.MonthKey, _ bool) []models.MonthlyVolume {
	series := make([]models.MonthlyVolume, 0, len(months))
	for _, m := range months {
		series = append(series, models.MonthlyVolume{
			Month:  m,
			Volume: exerciseVolumeIn(byMonth[m], exerciseID),
		})
	}
	return series
}
