package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/meltforce/momentum/internal/api"
	"github.com/meltforce/momentum/internal/forms"
	"github.com/meltforce/momentum/internal/models"
)

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var form forms.Login
	if !decodeJSON(w, r, &form) {
		return
	}
	creds, err := form.Validate()
	if err != nil {
		s.writeError(w, err)
		return
	}

	auth, err := s.api.Login(r.Context(), creds)
	if errors.Is(err, api.ErrUnauthorized) {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "invalid email or password"})
		return
	}
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.log.Info("signed in", "user", auth.User.Username)
	writeJSON(w, http.StatusOK, auth.User)
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var form forms.Register
	if !decodeJSON(w, r, &form) {
		return
	}
	reg, err := form.Validate()
	if err != nil {
		s.writeError(w, err)
		return
	}
	if err := s.api.Register(r.Context(), reg); err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"status": "registered", "redirect": "/login"})
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	if err := s.api.Logout(r.Context()); err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "logged out", "redirect": "/login"})
}

func (s *Server) handleMe(w http.ResponseWriter, r *http.Request) {
	user, err := s.api.Profile(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

func (s *Server) handleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	var form forms.Profile
	if !decodeJSON(w, r, &form) {
		return
	}
	upd, err := form.Validate()
	if err != nil {
		s.writeError(w, err)
		return
	}
	user, err := s.api.UpdateProfile(r.Context(), upd)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

func (s *Server) handleUpdatePassword(w http.ResponseWriter, r *http.Request) {
	var form forms.Password
	if !decodeJSON(w, r, &form) {
		return
	}
	pc, err := form.Validate()
	if err != nil {
		s.writeError(w, err)
		return
	}
	if err := s.api.UpdatePassword(r.Context(), pc); err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "password updated"})
}

// today is the reference day for dashboard and progress views: ?date= when
// given, otherwise the server's local date.
func (s *Server) today(r *http.Request) (models.Date, error) {
	if v := r.URL.Query().Get("date"); v != "" {
		return models.ParseDate(v)
	}
	return models.DateOf(s.now()), nil
}

// writeError maps validation, auth and upstream errors to a JSON response.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	var fe forms.FieldErrors
	var he *api.HTTPError
	switch {
	case errors.As(err, &fe):
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": "invalid input", "fields": fe})
	case errors.Is(err, api.ErrUnauthorized):
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "not logged in", "redirect": "/login"})
	case errors.As(err, &he) && he.StatusCode < 500:
		writeJSON(w, he.StatusCode, map[string]string{"error": he.Message})
	case errors.As(err, &he):
		s.log.Error("upstream error", "error", err)
		writeJSON(w, http.StatusBadGateway, map[string]string{"error": he.Message})
	default:
		s.log.Error("request failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
