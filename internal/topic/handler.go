package topic

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/maturamate/maturamate-api/internal/apperror"
	"github.com/maturamate/maturamate-api/internal/config"
)

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) ListTopics(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	topics, err := h.service.ListTopics(r.Context())
	if err != nil {
		log.WithError(err).Error("Errore nel caricamento dei temi")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, topics)
}

func (h *Handler) ListTopicsWithSubtopics(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	topics, err := h.service.ListTopicsWithSubtopics(r.Context())
	if err != nil {
		log.WithError(err).Error("Errore nel caricamento dell'albero dei temi")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, topics)
}

func (h *Handler) ListSubtopics(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	topicID, err := uuid.Parse(chi.URLParam(r, "topicID"))
	if err != nil {
		http.Error(w, "invalid topic id", http.StatusBadRequest)
		return
	}

	subtopics, err := h.service.ListSubtopics(r.Context(), topicID)
	if err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			http.Error(w, "topic not found", http.StatusNotFound)
			return
		}
		log.WithError(err).Error("Errore nel caricamento dei sottotemi")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, subtopics)
}

func (h *Handler) GetSubtopic(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	id, err := uuid.Parse(chi.URLParam(r, "subtopicID"))
	if err != nil {
		http.Error(w, "invalid subtopic id", http.StatusBadRequest)
		return
	}

	st, err := h.service.GetSubtopic(r.Context(), id)
	if err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			http.Error(w, "subtopic not found", http.StatusNotFound)
			return
		}
		log.WithError(err).Error("Errore nel caricamento del sottotema")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, st)
}

func (h *Handler) CreateTopic(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var dto CreateTopicDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if dto.Name == "" {
		http.Error(w, "topic name required", http.StatusBadRequest)
		return
	}

	t, err := h.service.CreateTopic(r.Context(), dto)
	if err != nil {
		log.WithError(err).Error("Errore nella creazione del tema")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusCreated, t)
}

func (h *Handler) UpdateTopic(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	id, err := uuid.Parse(chi.URLParam(r, "topicID"))
	if err != nil {
		http.Error(w, "invalid topic id", http.StatusBadRequest)
		return
	}

	var dto UpdateTopicDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	t, err := h.service.UpdateTopic(r.Context(), id, dto)
	if err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			http.Error(w, "topic not found", http.StatusNotFound)
			return
		}
		log.WithError(err).Error("Errore nell'aggiornamento del tema")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, t)
}

func (h *Handler) DeleteTopic(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	id, err := uuid.Parse(chi.URLParam(r, "topicID"))
	if err != nil {
		http.Error(w, "invalid topic id", http.StatusBadRequest)
		return
	}

	if err := h.service.DeleteTopic(r.Context(), id); err != nil {
		log.WithError(err).Error("Errore nell'eliminazione del tema")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, map[string]string{
		"message": "topic deleted successfully",
	})
}

func (h *Handler) CreateSubtopic(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	topicID, err := uuid.Parse(chi.URLParam(r, "topicID"))
	if err != nil {
		http.Error(w, "invalid topic id", http.StatusBadRequest)
		return
	}

	var dto CreateSubtopicDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if dto.Name == "" {
		http.Error(w, "subtopic name required", http.StatusBadRequest)
		return
	}

	st, err := h.service.CreateSubtopic(r.Context(), topicID, dto)
	if err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			http.Error(w, "topic not found", http.StatusNotFound)
			return
		}
		log.WithError(err).Error("Errore nella creazione del sottotema")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusCreated, st)
}

func (h *Handler) UpdateSubtopic(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	id, err := uuid.Parse(chi.URLParam(r, "subtopicID"))
	if err != nil {
		http.Error(w, "invalid subtopic id", http.StatusBadRequest)
		return
	}

	var dto UpdateSubtopicDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	st, err := h.service.UpdateSubtopic(r.Context(), id, dto)
	if err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			http.Error(w, "subtopic not found", http.StatusNotFound)
			return
		}
		log.WithError(err).Error("Errore nell'aggiornamento del sottotema")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, st)
}

func (h *Handler) DeleteSubtopic(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	id, err := uuid.Parse(chi.URLParam(r, "subtopicID"))
	if err != nil {
		http.Error(w, "invalid subtopic id", http.StatusBadRequest)
		return
	}

	if err := h.service.DeleteSubtopic(r.Context(), id); err != nil {
		log.WithError(err).Error("Errore nell'eliminazione del sottotema")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, map[string]string{
		"message": "subtopic deleted successfully",
	})
}
