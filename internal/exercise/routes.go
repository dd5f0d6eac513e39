package exercise

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/maturamate/maturamate-api/internal/auth"
	"github.com/maturamate/maturamate-api/internal/user"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Get("/{cardID}", h.GetCard)

	r.Group(func(r chi.Router) {
		r.Use(auth.RequireRole(user.RoleAdmin))

		r.Delete("/{cardID}", h.DeleteCard)
		r.Post("/{cardID}/exercises", h.AddExercise)
		r.Delete("/exercises/{exerciseID}", h.RemoveExercise)
	})

	return r
}
