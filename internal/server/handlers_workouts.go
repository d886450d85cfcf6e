package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/meltforce/momentum/internal/catalog"
	"github.com/meltforce/momentum/internal/forms"
	"github.com/meltforce/momentum/internal/models"
	"github.com/meltforce/momentum/internal/progress"
	"github.com/meltforce/momentum/internal/volume"
)

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	ref, err := s.today(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	dash, err := s.progress.Dashboard(r.Context(), ref)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dash)
}

type exerciseList struct {
	Tabs      []catalog.Tab     `json:"tabs"`
	Exercises []models.Exercise `json:"exercises"`
}

// handleListExercises serves the library page (?group= tab and ?q= search) and
// the workout builder picker (?picker=1, where q also matches muscle groups).
func (s *Server) handleListExercises(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	group, err := catalog.ParseTab(q.Get("group"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	all, err := s.api.ListExercises(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}

	var list []models.Exercise
	if q.Get("picker") != "" {
		list = catalog.Search(all, q.Get("q"))
	} else {
		list = catalog.Filter(all, group, q.Get("q"))
	}
	writeJSON(w, http.StatusOK, exerciseList{Tabs: catalog.Tabs(all), Exercises: list})
}

func (s *Server) handleCreateExercise(w http.ResponseWriter, r *http.Request) {
	var form forms.Exercise
	if !decodeJSON(w, r, &form) {
		return
	}
	ne, err := form.Validate()
	if err != nil {
		s.writeError(w, err)
		return
	}
	e, err := s.api.CreateExercise(r.Context(), ne)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.log.Info("exercise created", "id", e.ID, "name", e.Name)
	writeJSON(w, http.StatusCreated, e)
}

// handleInitializeExercises seeds the default library and returns the library
// as it stands afterwards.
func (s *Server) handleInitializeExercises(w http.ResponseWriter, r *http.Request) {
	if err := s.api.InitializeExercises(r.Context()); err != nil {
		s.writeError(w, err)
		return
	}
	all, err := s.api.ListExercises(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, exerciseList{Tabs: catalog.Tabs(all), Exercises: catalog.Sorted(all)})
}

func (s *Server) handleGetExercise(w http.ResponseWriter, r *http.Request) {
	e, err := s.api.GetExercise(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, e)
}

func (s *Server) handleExerciseProgress(w http.ResponseWriter, r *http.Request) {
	ref, err := s.today(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	p, err := s.progress.ExerciseProgress(r.Context(), chi.URLParam(r, "id"), ref)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// handleListWorkouts lists one month (?month=YYYY-MM, default the current
// month) or, with ?day=MONDAY, every workout logged on that weekday.
func (s *Server) handleListWorkouts(w http.ResponseWriter, r *http.Request) {
	if v := r.URL.Query().Get("day"); v != "" {
		day, err := models.ParseDayOfWeek(v)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
			return
		}
		workouts, err := s.api.ListWorkoutsByDayOfWeek(r.Context(), day)
		if err != nil {
			s.writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"day": day, "workouts": progress.Summaries(workouts)})
		return
	}

	month := models.DateOf(s.now()).MonthKey()
	if v := r.URL.Query().Get("month"); v != "" {
		m, err := models.ParseMonthKey(v)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
			return
		}
		month = m
	}

	rows, err := s.progress.Month(r.Context(), month)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"month": month, "label": month.Label(), "workouts": rows})
}

type workoutDetail struct {
	Workout     models.Workout `json:"workout"`
	Sets        int            `json:"sets"`
	Volume      float64        `json:"volume"`
	VolumeLabel string         `json:"volume_label"`
}

func newWorkoutDetail(wo models.Workout) workoutDetail {
	v := volume.WorkoutVolume(wo)
	return workoutDetail{
		Workout:     wo,
		Sets:        volume.TotalSets([]models.Workout{wo}),
		Volume:      v,
		VolumeLabel: volume.FormatPounds(v),
	}
}

func (s *Server) handleGetWorkout(w http.ResponseWriter, r *http.Request) {
	wo, err := s.api.GetWorkout(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, newWorkoutDetail(wo))
}

func (s *Server) handleCreateWorkout(w http.ResponseWriter, r *http.Request) {
	var wo models.Workout
	if !decodeJSON(w, r, &wo) {
		return
	}
	draft := forms.DraftOf(wo)
	if err := draft.Validate(); err != nil {
		s.writeError(w, err)
		return
	}

	created, err := s.api.CreateWorkout(r.Context(), draft.Workout())
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, newWorkoutDetail(created))
}

func (s *Server) handleUpdateWorkout(w http.ResponseWriter, r *http.Request) {
	var wo models.Workout
	if !decodeJSON(w, r, &wo) {
		return
	}
	draft := forms.DraftOf(wo)
	if err := draft.Validate(); err != nil {
		s.writeError(w, err)
		return
	}

	updated, err := s.api.UpdateWorkout(r.Context(), chi.URLParam(r, "id"), draft.Workout())
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, newWorkoutDetail(updated))
}

func (s *Server) handleDeleteWorkout(w http.ResponseWriter, r *http.Request) {
	if err := s.api.DeleteWorkout(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleCopyWorkout copies a workout to ?targetDate= (default today).
func (s *Server) handleCopyWorkout(w http.ResponseWriter, r *http.Request) {
	target := models.DateOf(s.now())
	if v := r.URL.Query().Get("targetDate"); v != "" {
		d, err := models.ParseDate(v)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
			return
		}
		target = d
	}

	copied, err := s.api.CopyWorkout(r.Context(), chi.URLParam(r, "id"), target)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, newWorkoutDetail(copied))
}
