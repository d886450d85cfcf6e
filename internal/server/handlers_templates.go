package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/meltforce/momentum/internal/forms"
	"github.com/meltforce/momentum/internal/models"
)

// handleListTemplates lists all templates, or only ?type=system / ?type=custom.
func (s *Server) handleListTemplates(w http.ResponseWriter, r *http.Request) {
	var (
		list []models.Template
		err  error
	)
	switch r.URL.Query().Get("type") {
	case "":
		list, err = s.api.ListTemplates(r.Context())
	case "system":
		list, err = s.api.ListSystemTemplates(r.Context())
	case "custom":
		list, err = s.api.ListCustomTemplates(r.Context())
	default:
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "type must be system or custom"})
		return
	}
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (s *Server) handleCopyTemplate(w http.ResponseWriter, r *http.Request) {
	t, err := s.api.CopyTemplate(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, t)
}

func (s *Server) handleCreateTemplate(w http.ResponseWriter, r *http.Request) {
	var t models.Template
	if !decodeJSON(w, r, &t) {
		return
	}
	if err := forms.ValidateTemplate(t); err != nil {
		s.writeError(w, err)
		return
	}
	created, err := s.api.CreateTemplate(r.Context(), t)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (s *Server) handleUpdateTemplate(w http.ResponseWriter, r *http.Request) {
	var t models.Template
	if !decodeJSON(w, r, &t) {
		return
	}
	if err := forms.ValidateTemplate(t); err != nil {
		s.writeError(w, err)
		return
	}
	updated, err := s.api.UpdateTemplate(r.Context(), chi.URLParam(r, "id"), t)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (s *Server) handleDeleteTemplate(w http.ResponseWriter, r *http.Request) {
	if err := s.api.DeleteTemplate(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type draftRequest struct {
	Day  int         `json:"day"`
	Date models.Date `json:"date"`
}

type draftResponse struct {
	workoutDetail
	Unmatched []forms.Unmatched `json:"unmatched"`
}

// handleTemplateDraft turns one day of a template into an unsaved workout for
// the builder. Nothing is written to the API.
func (s *Server) handleTemplateDraft(w http.ResponseWriter, r *http.Request) {
	var req draftRequest
	if r.ContentLength != 0 && !decodeJSON(w, r, &req) {
		return
	}
	if req.Date.IsZero() {
		req.Date = models.DateOf(s.now())
	}

	id := chi.URLParam(r, "id")
	templates, err := s.api.ListTemplates(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}
	var tmpl *models.Template
	for i := range templates {
		if templates[i].ID == id {
			tmpl = &templates[i]
			break
		}
	}
	if tmpl == nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "template not found"})
		return
	}

	library, err := s.api.ListExercises(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}
	draft, unmatched, err := forms.FromTemplate(*tmpl, req.Day, library, req.Date)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, draftResponse{workoutDetail: newWorkoutDetail(draft.Workout()), Unmatched: unmatched})
}
