package models

import (
	"encoding/json"
	"testing"
)

// TestSetDateRecomputesDayOfWeek verifies the label follows the date and cannot
// drift from it.
func TestSetDateRecomputesDayOfWeek(t *testing.T) {
	w := NewWorkout(MustDate("2024-01-01"), nil)
	if w.DayOfWeek != Monday {
		t.Fatalf("DayOfWeek = %s, want MONDAY", w.DayOfWeek)
	}
	w.SetDate(MustDate("2024-01-03"))
	if w.DayOfWeek != Wednesday {
		t.Errorf("after SetDate DayOfWeek = %s, want WEDNESDAY", w.DayOfWeek)
	}
}

// TestWorkoutRequestDropsNames verifies the request body omits response-only
// exercise names and carries a freshly derived weekday.
func TestWorkoutRequestDropsNames(t *testing.T) {
	w := Workout{
		Date:      MustDate("2024-01-02"),
		DayOfWeek: Sunday, // stale on purpose
		Exercises: []WorkoutExercise{{ExerciseID: "bench", Name: "Bench Press", Sets: []Set{{Reps: 5, Weight: 100}}}},
	}
	data, err := json.Marshal(w.Request())
	if err != nil {
		t.Fatal(err)
	}
	want := `{"date":"2024-01-02","dayOfWeek":"TUESDAY","exercises":[{"exerciseId":"bench","sets":[{"reps":5,"weight":100}]}]}`
	if string(data) != want {
		t.Errorf("request = %s\nwant      %s", data, want)
	}
}

// TestWorkoutDecodeMissingNumbers verifies partially populated sets decode with
// zero values instead of failing.
func TestWorkoutDecodeMissingNumbers(t *testing.T) {
	var w Workout
	body := `{"id":"w1","date":"2024-01-01","exercises":[{"exerciseId":"bench","sets":[{"reps":5},{"weight":null}]}]}`
	if err := json.Unmarshal([]byte(body), &w); err != nil {
		t.Fatal(err)
	}
	w.Normalize()
	if w.DayOfWeek != Monday {
		t.Errorf("DayOfWeek = %s, want MONDAY", w.DayOfWeek)
	}
	sets := w.Exercises[0].Sets
	if sets[0].Weight != 0 || sets[1].Reps != 0 {
		t.Errorf("sets = %+v, want zero-valued gaps", sets)
	}
}

func TestUserMerge(t *testing.T) {
	w := 80.0
	u := User{ID: "u1", Username: "old", Email: "a@b.c"}
	got := u.Merge(ProfileUpdate{Username: "new", Weight: &w})
	if got.Username != "new" || got.Weight == nil || *got.Weight != 80 || got.Email != "a@b.c" {
		t.Errorf("Merge = %+v", got)
	}
}
