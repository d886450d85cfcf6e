package server

import (
	"context"
	"errors"
	"net/http"

	"github.com/meltforce/momentum/internal/api"
	"github.com/meltforce/momentum/internal/catalog"
	"github.com/meltforce/momentum/internal/forms"
	"github.com/meltforce/momentum/internal/models"
)

type editRequest struct {
	Workout models.Workout `json:"workout"`
	Edits   []forms.Edit   `json:"edits"`
}

// draftState is an unsaved workout as the builder shows it: running totals
// plus what still blocks saving.
type draftState struct {
	workoutDetail
	Fields       forms.FieldErrors `json:"fields,omitempty"`
	RepeatedFrom string            `json:"repeated_from,omitempty"`
}

// handleEditDraft applies builder edits to a posted workout and returns the
// result. Nothing is written to the API.
func (s *Server) handleEditDraft(w http.ResponseWriter, r *http.Request) {
	var req editRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	draft := forms.DraftOf(req.Workout)
	for _, e := range req.Edits {
		if err := draft.Apply(e); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
			return
		}
	}

	state, err := s.buildDraftState(r.Context(), draft)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, state)
}

type repeatRequest struct {
	Date models.Date `json:"date"`
	Day  string      `json:"day"`
}

// handleRepeatDraft drafts a workout on date from the latest earlier workout
// on the same weekday (or on day when given). With no earlier workout the
// draft starts empty.
func (s *Server) handleRepeatDraft(w http.ResponseWriter, r *http.Request) {
	var req repeatRequest
	if r.ContentLength != 0 && !decodeJSON(w, r, &req) {
		return
	}
	if req.Date.IsZero() {
		req.Date = models.DateOf(s.now())
	}
	day := req.Date.DayOfWeek()
	if req.Day != "" {
		d, err := models.ParseDayOfWeek(req.Day)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
			return
		}
		day = d
	}

	draft := forms.NewDraft(req.Date)
	var from string
	prev, err := s.api.PreviousWorkout(r.Context(), day, req.Date)
	switch {
	case api.IsNotFound(err):
		s.log.Debug("no earlier workout to repeat", "day", string(day), "before", req.Date.String())
	case err != nil:
		s.writeError(w, err)
		return
	case len(prev.Exercises) > 0:
		prev.ID = ""
		prev.UserID = ""
		draft = forms.DraftOf(prev)
		draft.SetDate(req.Date)
		from = prev.Date.String()
	}

	state, err := s.buildDraftState(r.Context(), draft)
	if err != nil {
		s.writeError(w, err)
		return
	}
	state.RepeatedFrom = from
	writeJSON(w, http.StatusOK, state)
}

// buildDraftState names every exercise from the library and collects the
// validation errors of draft.
func (s *Server) buildDraftState(ctx context.Context, draft *forms.Draft) (draftState, error) {
	library, err := s.api.ListExercises(ctx)
	if err != nil {
		return draftState{}, err
	}
	wo := draft.Workout()
	for i := range wo.Exercises {
		wo.Exercises[i].Name = ""
	}
	catalog.NewLibrary(library).Names(&wo)

	state := draftState{workoutDetail: newWorkoutDetail(wo)}
	var fe forms.FieldErrors
	if err := draft.Validate(); errors.As(err, &fe) {
		state.Fields = fe
	}
	return state, nil
}
