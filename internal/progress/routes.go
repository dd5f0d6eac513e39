package progress

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Get("/topics", h.GetTopicCompletion)
	r.Get("/topics/{topicID}/subtopics", h.GetSubtopicCompletion)
	r.Get("/cards", h.GetCardCompletion)
	r.Get("/weakest-topic", h.GetWeakestTopic)

	r.Post("/topics/{topicID}/complete", h.MarkTopicComplete)
	r.Post("/subtopics/{subtopicID}/complete", h.MarkSubtopicComplete)

	return r
}
