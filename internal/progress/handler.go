package progress

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/maturamate/maturamate-api/internal/apperror"
	"github.com/maturamate/maturamate-api/internal/auth"
	"github.com/maturamate/maturamate-api/internal/config"
)

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

func userIDFromContext(ctx context.Context) (uuid.UUID, error) {
	claims, err := auth.GetUserClaimsFromContext(ctx)
	if err != nil {
		return uuid.Nil, err
	}
	return uuid.Parse(claims.UserID)
}

func (h *Handler) respondError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	log := config.WithContext(r.Context())

	status := apperror.Status(err)
	if status == http.StatusInternalServerError {
		log.WithError(err).Error(msg)
		http.Error(w, "internal server error", status)
		return
	}
	http.Error(w, err.Error(), status)
}

func (h *Handler) MarkTopicComplete(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	topicID, err := uuid.Parse(chi.URLParam(r, "topicID"))
	if err != nil {
		http.Error(w, "invalid topic id", http.StatusBadRequest)
		return
	}

	result, err := h.service.MarkTopicComplete(r.Context(), userID, topicID)
	if err != nil {
		h.respondError(w, r, err, "Errore nel completamento del tema")
		return
	}

	config.JSON(w, http.StatusOK, result)
}

func (h *Handler) MarkSubtopicComplete(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	subtopicID, err := uuid.Parse(chi.URLParam(r, "subtopicID"))
	if err != nil {
		http.Error(w, "invalid subtopic id", http.StatusBadRequest)
		return
	}

	result, err := h.service.MarkSubtopicComplete(r.Context(), userID, subtopicID)
	if err != nil {
		h.respondError(w, r, err, "Errore nel completamento del sottotema")
		return
	}

	config.JSON(w, http.StatusOK, result)
}

func (h *Handler) RecordExerciseAttempt(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	exerciseID, err := uuid.Parse(chi.URLParam(r, "exerciseID"))
	if err != nil {
		http.Error(w, "invalid exercise id", http.StatusBadRequest)
		return
	}

	var dto RecordAttemptDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	attempt, err := h.service.RecordExerciseAttempt(r.Context(), userID, exerciseID, dto.Correct)
	if err != nil {
		h.respondError(w, r, err, "Errore nella registrazione del tentativo")
		return
	}

	config.JSON(w, http.StatusCreated, attempt)
}

func (h *Handler) StartSimulationAttempt(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	simulationID, err := uuid.Parse(chi.URLParam(r, "simulationID"))
	if err != nil {
		http.Error(w, "invalid simulation id", http.StatusBadRequest)
		return
	}

	attempt, err := h.service.StartSimulationAttempt(r.Context(), userID, simulationID)
	if err != nil {
		h.respondError(w, r, err, "Errore nell'avvio del tentativo di simulazione")
		return
	}

	config.JSON(w, http.StatusCreated, attempt)
}

func (h *Handler) CompleteSimulationAttempt(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	simulationID, err := uuid.Parse(chi.URLParam(r, "simulationID"))
	if err != nil {
		http.Error(w, "invalid simulation id", http.StatusBadRequest)
		return
	}

	attempt, err := h.service.CompleteSimulationAttempt(r.Context(), userID, simulationID)
	if err != nil {
		h.respondError(w, r, err, "Errore nella chiusura del tentativo di simulazione")
		return
	}

	config.JSON(w, http.StatusOK, attempt)
}

func (h *Handler) ListSimulationAttempts(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	simulationID, err := uuid.Parse(chi.URLParam(r, "simulationID"))
	if err != nil {
		http.Error(w, "invalid simulation id", http.StatusBadRequest)
		return
	}

	attempts, err := h.service.ListSimulationAttempts(r.Context(), userID, simulationID)
	if err != nil {
		h.respondError(w, r, err, "Errore nel caricamento dei tentativi di simulazione")
		return
	}

	config.JSON(w, http.StatusOK, attempts)
}

func (h *Handler) GetTopicCompletion(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	result, err := h.service.ComputeTopicCompletion(r.Context(), userID)
	if err != nil {
		h.respondError(w, r, err, "Errore nel calcolo del completamento dei temi")
		return
	}

	config.JSON(w, http.StatusOK, result)
}

func (h *Handler) GetSubtopicCompletion(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	topicID, err := uuid.Parse(chi.URLParam(r, "topicID"))
	if err != nil {
		http.Error(w, "invalid topic id", http.StatusBadRequest)
		return
	}

	result, err := h.service.ComputeSubtopicCompletion(r.Context(), userID, topicID)
	if err != nil {
		h.respondError(w, r, err, "Errore nel calcolo del completamento dei sottotemi")
		return
	}

	config.JSON(w, http.StatusOK, result)
}

func (h *Handler) GetCardCompletion(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	rawIDs := r.URL.Query()["subtopic_id"]
	if len(rawIDs) == 0 {
		http.Error(w, "at least one subtopic_id required", http.StatusBadRequest)
		return
	}
	subtopicIDs := make([]uuid.UUID, 0, len(rawIDs))
	for _, raw := range rawIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			http.Error(w, "invalid subtopic id", http.StatusBadRequest)
			return
		}
		subtopicIDs = append(subtopicIDs, id)
	}

	result, err := h.service.ComputeCardCompletion(r.Context(), userID, subtopicIDs)
	if err != nil {
		h.respondError(w, r, err, "Errore nel calcolo del completamento delle schede")
		return
	}

	config.JSON(w, http.StatusOK, result)
}

func (h *Handler) GetWeakestTopic(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	weakest, err := h.service.ComputeWeakestTopic(r.Context(), userID)
	if err != nil {
		h.respondError(w, r, err, "Errore nel calcolo del tema più debole")
		return
	}

	config.JSON(w, http.StatusOK, weakest)
}
