package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/maturamate/maturamate-api/internal/auth"
	"github.com/maturamate/maturamate-api/internal/exercise"
	"github.com/maturamate/maturamate-api/internal/flag"
	"github.com/maturamate/maturamate-api/internal/middlewares"
	"github.com/maturamate/maturamate-api/internal/progress"
	"github.com/maturamate/maturamate-api/internal/simulation"
	"github.com/maturamate/maturamate-api/internal/stats"
	"github.com/maturamate/maturamate-api/internal/topic"
	"github.com/maturamate/maturamate-api/internal/user"
)

type RouterConfig struct {
	UserHandler       *user.Handler
	TopicHandler      *topic.Handler
	ExerciseHandler   *exercise.Handler
	SimulationHandler *simulation.Handler
	ProgressHandler   *progress.Handler
	FlagHandler       *flag.Handler
	StatsHandler      *stats.Handler
	AllowedOrigin     string
}

func New(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewares.NewCors(cfg.AllowedOrigin))
	r.Use(middlewares.RequestCache)

	r.Route("/auth", func(r chi.Router) {
		r.Post("/login", cfg.UserHandler.GoogleLogin)
		r.Post("/refresh", cfg.UserHandler.RefreshToken)
		r.Post("/logout", auth.NewHandler().Logout)
	})

	r.Group(func(r chi.Router) {
		r.Use(auth.AuthMiddleware)

		r.Mount("/users", user.Routes(cfg.UserHandler))
		r.Mount("/topics", topic.Routes(cfg.TopicHandler))
		r.Mount("/exercise-cards", exercise.Routes(cfg.ExerciseHandler))
		r.Mount("/simulations", simulation.Routes(cfg.SimulationHandler))
		r.Mount("/progress", progress.Routes(cfg.ProgressHandler))
		r.Mount("/favorites", flag.Routes(cfg.FlagHandler))

		r.Get("/dashboard", cfg.StatsHandler.GetDashboard)
		r.Get("/statistics", cfg.StatsHandler.GetStatistics)

		r.Get("/subtopics/{subtopicID}/cards", cfg.ExerciseHandler.ListCardsBySubtopic)
		r.With(auth.RequireRole(user.RoleAdmin)).
			Post("/subtopics/{subtopicID}/cards", cfg.ExerciseHandler.CreateCard)

		r.Post("/exercises/{exerciseID}/attempts", cfg.ProgressHandler.RecordExerciseAttempt)
		r.Post("/simulations/{simulationID}/attempts", cfg.ProgressHandler.StartSimulationAttempt)
		r.Put("/simulations/{simulationID}/attempts/complete", cfg.ProgressHandler.CompleteSimulationAttempt)
		r.Get("/simulations/{simulationID}/attempts", cfg.ProgressHandler.ListSimulationAttempts)
	})

	return r
}
