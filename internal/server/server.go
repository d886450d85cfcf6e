package server

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/meltforce/momentum/internal/api"
	"github.com/meltforce/momentum/internal/progress"
	"github.com/meltforce/momentum/internal/session"
)

// Server is the local JSON API in front of the workout API.
type Server struct {
	api      *api.Client
	progress *progress.Service
	sessions session.Store
	log      *slog.Logger
	router   chi.Router
	now      func() time.Time
}

// New creates a new Server with all routes configured.
func New(client *api.Client, progressSvc *progress.Service, log *slog.Logger) *Server {
	s := &Server{
		api:      client,
		progress: progressSvc,
		sessions: client.Sessions(),
		log:      log,
		router:   chi.NewRouter(),
		now:      time.Now,
	}
	s.routes()
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() {
	s.router.Use(RequestLogging(s.log))
	s.router.Use(CORS)

	s.router.Get("/healthz", s.handleHealth)

	s.router.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/login", s.handleLogin)
		r.Post("/auth/register", s.handleRegister)

		r.Group(func(r chi.Router) {
			r.Use(RequireSession(s.sessions))

			r.Post("/auth/logout", s.handleLogout)
			r.Get("/me", s.handleMe)
			r.Put("/me", s.handleUpdateProfile)
			r.Put("/me/password", s.handleUpdatePassword)

			r.Get("/dashboard", s.handleDashboard)

			r.Get("/exercises", s.handleListExercises)
			r.Post("/exercises", s.handleCreateExercise)
			r.Post("/exercises/initialize", s.handleInitializeExercises)
			r.Get("/exercises/{id}", s.handleGetExercise)
			r.Get("/exercises/{id}/progress", s.handleExerciseProgress)

			r.Get("/workouts", s.handleListWorkouts)
			r.Post("/workouts", s.handleCreateWorkout)
			r.Get("/workouts/{id}", s.handleGetWorkout)
			r.Put("/workouts/{id}", s.handleUpdateWorkout)
			r.Delete("/workouts/{id}", s.handleDeleteWorkout)
			r.Post("/workouts/{id}/copy", s.handleCopyWorkout)

			r.Post("/drafts", s.handleEditDraft)
			r.Post("/drafts/repeat", s.handleRepeatDraft)

			r.Get("/templates", s.handleListTemplates)
			r.Post("/templates", s.handleCreateTemplate)
			r.Put("/templates/{id}", s.handleUpdateTemplate)
			r.Delete("/templates/{id}", s.handleDeleteTemplate)
			r.Post("/templates/{id}/copy", s.handleCopyTemplate)
			r.Post("/templates/{id}/draft", s.handleTemplateDraft)
		})
	})
}
