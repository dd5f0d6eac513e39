package topic

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/maturamate/maturamate-api/internal/auth"
	"github.com/maturamate/maturamate-api/internal/user"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Get("/", h.ListTopics)
	r.Get("/tree", h.ListTopicsWithSubtopics)
	r.Get("/{topicID}/subtopics", h.ListSubtopics)
	r.Get("/subtopics/{subtopicID}", h.GetSubtopic)

	r.Group(func(r chi.Router) {
		r.Use(auth.RequireRole(user.RoleAdmin))

		r.Post("/", h.CreateTopic)
		r.Put("/{topicID}", h.UpdateTopic)
		r.Delete("/{topicID}", h.DeleteTopic)
		r.Post("/{topicID}/subtopics", h.CreateSubtopic)
		r.Put("/subtopics/{subtopicID}", h.UpdateSubtopic)
		r.Delete("/subtopics/{subtopicID}", h.DeleteSubtopic)
	})

	return r
}
