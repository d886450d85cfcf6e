package forms

import (
	"fmt"
	"strconv"

	"github.com/meltforce/momentum/internal/catalog"
	"github.com/meltforce/momentum/internal/models"
	"github.com/meltforce/momentum/internal/volume"
)

// DefaultSet is what a new exercise or a new set starts with.
var DefaultSet = models.Set{Reps: 8, Weight: 0}

// Draft is a workout being put together before it is saved. The day-of-week
// label always follows the date.
type Draft struct {
	w models.Workout
}

// NewDraft starts an empty draft for date.
func NewDraft(date models.Date) *Draft {
	return &Draft{w: models.NewWorkout(date, nil)}
}

// DraftOf starts a draft from an existing workout, e.g. to edit or repeat it.
func DraftOf(w models.Workout) *Draft {
	d := &Draft{w: w}
	d.w.Exercises = make([]models.WorkoutExercise, len(w.Exercises))
	for i, ex := range w.Exercises {
		ex.Sets = append([]models.Set(nil), ex.Sets...)
		d.w.Exercises[i] = ex
	}
	d.w.SetDate(w.Date)
	return d
}

// Workout returns a copy of the drafted workout.
func (d *Draft) Workout() models.Workout {
	return DraftOf(d.w).w
}

// SetDate moves the draft to another day.
func (d *Draft) SetDate(date models.Date) {
	d.w.SetDate(date)
}

// AddExercise appends an exercise with one default set. exerciseID may be
// empty while the user has not picked one yet.
func (d *Draft) AddExercise(exerciseID string) int {
	d.w.Exercises = append(d.w.Exercises, models.WorkoutExercise{
		ExerciseID: exerciseID,
		Sets:       []models.Set{DefaultSet},
	})
	return len(d.w.Exercises) - 1
}

// SetExercise changes which exercise entry i refers to.
func (d *Draft) SetExercise(i int, exerciseID string) error {
	if err := d.checkExercise(i); err != nil {
		return err
	}
	d.w.Exercises[i].ExerciseID = exerciseID
	return nil
}

func (d *Draft) RemoveExercise(i int) error {
	if err := d.checkExercise(i); err != nil {
		return err
	}
	d.w.Exercises = append(d.w.Exercises[:i], d.w.Exercises[i+1:]...)
	return nil
}

// AddSet appends a default set to exercise i.
func (d *Draft) AddSet(i int) error {
	if err := d.checkExercise(i); err != nil {
		return err
	}
	d.w.Exercises[i].Sets = append(d.w.Exercises[i].Sets, DefaultSet)
	return nil
}

func (d *Draft) RemoveSet(i, j int) error {
	if err := d.checkSet(i, j); err != nil {
		return err
	}
	sets := d.w.Exercises[i].Sets
	d.w.Exercises[i].Sets = append(sets[:j], sets[j+1:]...)
	return nil
}

func (d *Draft) UpdateSet(i, j int, s models.Set) error {
	if err := d.checkSet(i, j); err != nil {
		return err
	}
	d.w.Exercises[i].Sets[j] = s
	return nil
}

// EditOp names one builder action.
type EditOp string

const (
	OpSetDate        EditOp = "set_date"
	OpAddExercise    EditOp = "add_exercise"
	OpSetExercise    EditOp = "set_exercise"
	OpRemoveExercise EditOp = "remove_exercise"
	OpAddSet         EditOp = "add_set"
	OpRemoveSet      EditOp = "remove_set"
	OpUpdateSet      EditOp = "update_set"
)

// Edit is one builder action as sent by a client. Exercise and Set are
// indexes; only the fields the op needs are read.
type Edit struct {
	Op         EditOp      `json:"op"`
	Exercise   int         `json:"exercise"`
	Set        int         `json:"set"`
	ExerciseID string      `json:"exercise_id"`
	Reps       int         `json:"reps"`
	Weight     float64     `json:"weight"`
	Date       models.Date `json:"date"`
}

// Apply performs e on the draft.
func (d *Draft) Apply(e Edit) error {
	switch e.Op {
	case OpSetDate:
		if e.Date.IsZero() {
			return fmt.Errorf("%s: date is required", e.Op)
		}
		d.SetDate(e.Date)
		return nil
	case OpAddExercise:
		d.AddExercise(e.ExerciseID)
		return nil
	case OpSetExercise:
		return d.SetExercise(e.Exercise, e.ExerciseID)
	case OpRemoveExercise:
		return d.RemoveExercise(e.Exercise)
	case OpAddSet:
		return d.AddSet(e.Exercise)
	case OpRemoveSet:
		return d.RemoveSet(e.Exercise, e.Set)
	case OpUpdateSet:
		return d.UpdateSet(e.Exercise, e.Set, models.Set{Reps: e.Reps, Weight: e.Weight})
	}
	return fmt.Errorf("unknown draft edit %q", e.Op)
}

// TotalVolume is the running volume shown while editing.
func (d *Draft) TotalVolume() float64 {
	return volume.WorkoutVolume(d.w)
}

// Validate reports whether the draft can be saved: a date, at least one
// exercise, every exercise picked and with at least one set, every set with
// positive reps.
func (d *Draft) Validate() error {
	return ValidateWorkout(d.w)
}

// ValidateWorkout applies the draft rules to a workout from elsewhere.
func ValidateWorkout(w models.Workout) error {
	fe := FieldErrors{}
	if w.Date.IsZero() {
		fe["date"] = "Date is required"
	}
	if len(w.Exercises) == 0 {
		fe["exercises"] = "Add at least one exercise"
	}
	for i, ex := range w.Exercises {
		key := "exercises[" + strconv.Itoa(i) + "]"
		switch {
		case ex.ExerciseID == "":
			fe[key] = "Select an exercise"
		case len(ex.Sets) == 0:
			fe[key] = "Add at least one set"
		default:
			for j, s := range ex.Sets {
				if s.Reps <= 0 {
					fe[key+".sets["+strconv.Itoa(j)+"]"] = "Reps must be greater than 0"
				}
			}
		}
	}
	return fe.err()
}

func (d *Draft) checkExercise(i int) error {
	if i < 0 || i >= len(d.w.Exercises) {
		return fmt.Errorf("exercise %d out of range (have %d)", i, len(d.w.Exercises))
	}
	return nil
}

func (d *Draft) checkSet(i, j int) error {
	if err := d.checkExercise(i); err != nil {
		return err
	}
	if j < 0 || j >= len(d.w.Exercises[i].Sets) {
		return fmt.Errorf("set %d of exercise %d out of range (have %d)", j, i, len(d.w.Exercises[i].Sets))
	}
	return nil
}

// Unmatched is a template exercise with no counterpart in the user's library.
type Unmatched struct {
	Index int    `json:"index"`
	Name  string `json:"name"`
}

// FromTemplate drafts day dayIndex of t on date. Each template exercise gets
// RecommendedSets sets of the lower bound of its reps range at 0 lbs, and is
// matched to library by name, ignoring case. Unmatched exercises keep an
// empty exercise id so Validate flags them until the user picks one.
func FromTemplate(t models.Template, dayIndex int, library []models.Exercise, date models.Date) (*Draft, []Unmatched, error) {
	if dayIndex < 0 || dayIndex >= len(t.Days) {
		return nil, nil, fmt.Errorf("template %q has no day %d", t.Name, dayIndex)
	}

	lib := catalog.NewLibrary(library)

	d := NewDraft(date)
	var unmatched []Unmatched
	for i, te := range t.Days[dayIndex].Exercises {
		reps, ok := te.RepsLowerBound()
		if !ok {
			reps = DefaultSet.Reps
		}
		n := te.RecommendedSets
		if n < 1 {
			n = 1
		}
		sets := make([]models.Set, n)
		for j := range sets {
			sets[j] = models.Set{Reps: reps}
		}

		var id string
		if e, ok := lib.MatchName(te.Name); ok {
			id = e.ID
		} else {
			unmatched = append(unmatched, Unmatched{Index: i, Name: te.Name})
		}
		d.w.Exercises = append(d.w.Exercises, models.WorkoutExercise{ExerciseID: id, Name: te.Name, Sets: sets})
	}
	return d, unmatched, nil
}
