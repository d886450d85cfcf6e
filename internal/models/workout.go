package models

// Set is one weighted set. Weight is in pounds and may be 0 for bodyweight work.
type Set struct {
	Reps   int     `json:"reps"`
	Weight float64 `json:"weight"`
}

// WorkoutExercise is one exercise performed within a workout.
type WorkoutExercise struct {
	ExerciseID string `json:"exerciseId"`
	Name       string `json:"name,omitempty"` // only present in responses
	Sets       []Set  `json:"sets"`
}

// Workout is a dated training session and the unit of persistence.
type Workout struct {
	ID        string            `json:"id,omitempty"`
	Date      Date              `json:"date"`
	DayOfWeek DayOfWeek         `json:"dayOfWeek"`
	UserID    string            `json:"userId,omitempty"`
	Exercises []WorkoutExercise `json:"exercises"`
}

// NewWorkout builds a workout for date with the day-of-week label filled in.
func NewWorkout(date Date, exercises []WorkoutExercise) Workout {
	w := Workout{Exercises: exercises}
	w.SetDate(date)
	return w
}

// SetDate changes the workout's date and recomputes its day-of-week label.
func (w *Workout) SetDate(date Date) {
	w.Date = date
	w.DayOfWeek = date.DayOfWeek()
}

// Normalize recomputes derived fields on a decoded workout.
func (w *Workout) Normalize() {
	if !w.Date.IsZero() {
		w.DayOfWeek = w.Date.DayOfWeek()
	}
}

// WorkoutRequest is the create/update body: exercise names are dropped.
type WorkoutRequest struct {
	Date      Date                     `json:"date"`
	DayOfWeek DayOfWeek                `json:"dayOfWeek"`
	Exercises []WorkoutExerciseRequest `json:"exercises"`
}

// WorkoutExerciseRequest is a WorkoutExercise without the response-only name.
type WorkoutExerciseRequest struct {
	ExerciseID string `json:"exerciseId"`
	Sets       []Set  `json:"sets"`
}

// Request converts w into the body the API expects. The day-of-week label is
// recomputed from the date.
func (w Workout) Request() WorkoutRequest {
	req := WorkoutRequest{
		Date:      w.Date,
		DayOfWeek: w.Date.DayOfWeek(),
		Exercises: make([]WorkoutExerciseRequest, 0, len(w.Exercises)),
	}
	for _, ex := range w.Exercises {
		req.Exercises = append(req.Exercises, WorkoutExerciseRequest{ExerciseID: ex.ExerciseID, Sets: ex.Sets})
	}
	return req
}

// VolumeDataPoint is one point of a per-day volume series.
type VolumeDataPoint struct {
	Date   Date    `json:"date"`
	Volume float64 `json:"volume"`
}

// MonthlyVolume is one bar of a per-month volume rollup.
type MonthlyVolume struct {
	Month  MonthKey `json:"month"`
	Volume float64  `json:"volume"`
}
