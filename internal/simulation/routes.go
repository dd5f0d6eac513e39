package simulation

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/maturamate/maturamate-api/internal/auth"
	"github.com/maturamate/maturamate-api/internal/user"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Get("/", h.ListCards)
	r.Get("/{simulationID}", h.GetSimulation)

	r.Group(func(r chi.Router) {
		r.Use(auth.RequireRole(user.RoleAdmin))

		r.Post("/cards", h.CreateCard)
		r.Post("/cards/{cardID}", h.CreateSimulation)
		r.Delete("/{simulationID}", h.DeleteSimulation)
	})

	return r
}
