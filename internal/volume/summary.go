package volume

import (
	"sort"

	"github.com/meltforce/momentum/internal/models"
)

// WeekSummary is the dashboard card for a set of workouts, usually one week.
type WeekSummary struct {
	Volume   float64 `json:"volume"`
	Sets     int     `json:"sets"`
	Workouts int     `json:"workouts"`
}

// Summarize computes volume, set count and workout count in one pass.
func Summarize(workouts []models.Workout) WeekSummary {
	return WeekSummary{
		Volume:   TotalVolume(workouts),
		Sets:     TotalSets(workouts),
		Workouts: len(workouts),
	}
}

// PersonalRecord is the heaviest set logged for one exercise.
type PersonalRecord struct {
	ExerciseID string      `json:"exercise_id"`
	Name       string      `json:"name,omitempty"`
	Weight     float64     `json:"weight"`
	Reps       int         `json:"reps"`
	Date       models.Date `json:"date"`
}

// PersonalRecords returns the heaviest set per exercise. Equal weights are
// decided by reps, then by the earlier date. Exercises whose sets are all
// zero weight are skipped. The result is sorted by exercise id.
func PersonalRecords(workouts []models.Workout) []PersonalRecord {
	best := make(map[string]PersonalRecord)
	for _, w := range workouts {
		for _, we := range w.Exercises {
			for _, s := range we.Sets {
				if s.Weight <= 0 {
					continue
				}
				cand := PersonalRecord{ExerciseID: we.ExerciseID, Name: we.Name, Weight: s.Weight, Reps: s.Reps, Date: w.Date}
				cur, ok := best[we.ExerciseID]
				if !ok || beats(cand, cur) {
					best[we.ExerciseID] = cand
				}
			}
		}
	}

	records := make([]PersonalRecord, 0, len(best))
	for _, pr := range best {
		records = append(records, pr)
	}
	sort.Slice(records, func(i, j int) bool { return records[i].ExerciseID < records[j].ExerciseID })
	return records
}

func beats(a, b PersonalRecord) bool {
	if a.Weight != b.Weight {
		return a.Weight > b.Weight
	}
	if a.Reps != b.Reps {
		return a.Reps > b.Reps
	}
	return a.Date.Before(b.Date)
}

// MuscleGroupCount is how many workouts touched a muscle group.
type MuscleGroupCount struct {
	MuscleGroup models.MuscleGroup `json:"muscle_group"`
	Workouts    int                `json:"workouts"`
}

// MuscleGroupCounts counts, per muscle group, the workouts containing at least
// one exercise of that group. Exercise ids missing from the library count as
// OTHER. The result is sorted by count descending, then by the display order
// of models.MuscleGroups.
func MuscleGroupCounts(workouts []models.Workout, exercises []models.Exercise) []MuscleGroupCount {
	groupOf := make(map[string]models.MuscleGroup, len(exercises))
	for _, e := range exercises {
		groupOf[e.ID] = e.MuscleGroup
	}

	counts := make(map[models.MuscleGroup]int)
	for _, w := range workouts {
		seen := make(map[models.MuscleGroup]bool)
		for _, we := range w.Exercises {
			g, ok := groupOf[we.ExerciseID]
			if !ok || g == "" {
				g = models.MuscleGroupOther
			}
			if !seen[g] {
				seen[g] = true
				counts[g]++
			}
		}
	}

	var out []MuscleGroupCount
	for _, g := range models.MuscleGroups {
		if n := counts[g]; n > 0 {
			out = append(out, MuscleGroupCount{MuscleGroup: g, Workouts: n})
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Workouts > out[j].Workouts })
	return out
}

// MostTrained returns the muscle group with the most workouts, or false when
// there are none.
func MostTrained(counts []MuscleGroupCount) (models.MuscleGroup, bool) {
	if len(counts) == 0 {
		return "", false
	}
	top := counts[0]
	for _, c := range counts[1:] {
		if c.Workouts > top.Workouts {
			top = c
		}
	}
	return top.MuscleGroup, true
}
