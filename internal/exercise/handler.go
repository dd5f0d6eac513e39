package exercise

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

func (h *Handler) ListCardsBySubtopic(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	subtopicID, err := uuid.Parse(chi.URLParam(r, "subtopicID"))
	if err != nil {
		http.Error(w, "invalid subtopic id", http.StatusBadRequest)
		return
	}

	cards, err := h.service.ListCardsBySubtopic(r.Context(), subtopicID)
	if err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			http.Error(w, "subtopic not found", http.StatusNotFound)
			return
		}
		log.WithError(err).Error("Errore nel caricamento delle schede")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, cards)
}

func (h *Handler) GetCard(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	cardID, err := uuid.Parse(chi.URLParam(r, "cardID"))
	if err != nil {
		http.Error(w, "invalid card id", http.StatusBadRequest)
		return
	}

	card, err := h.service.GetCardWithExercises(r.Context(), cardID)
	if err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			http.Error(w, "card not found", http.StatusNotFound)
			return
		}
		log.WithError(err).Error("Errore nel caricamento della scheda")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, card)
}

func (h *Handler) CreateCard(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	subtopicID, err := uuid.Parse(chi.URLParam(r, "subtopicID"))
	if err != nil {
		http.Error(w, "invalid subtopic id", http.StatusBadRequest)
		return
	}

	var dto CreateCardDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if dto.Description == "" || !dto.Difficulty.Valid() {
		http.Error(w, "description and difficulty (1-3) required", http.StatusBadRequest)
		return
	}

	card, err := h.service.CreateCard(r.Context(), subtopicID, dto)
	if err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			http.Error(w, "subtopic not found", http.StatusNotFound)
			return
		}
		log.WithError(err).Error("Errore nella creazione della scheda")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusCreated, card)
}

func (h *Handler) DeleteCard(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	cardID, err := uuid.Parse(chi.URLParam(r, "cardID"))
	if err != nil {
		http.Error(w, "invalid card id", http.StatusBadRequest)
		return
	}

	if err := h.service.DeleteCard(r.Context(), cardID); err != nil {
		log.WithError(err).Error("Errore nell'eliminazione della scheda")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, map[string]string{
		"message": "card deleted successfully",
	})
}

func (h *Handler) AddExercise(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	cardID, err := uuid.Parse(chi.URLParam(r, "cardID"))
	if err != nil {
		http.Error(w, "invalid card id", http.StatusBadRequest)
		return
	}

	var dto CreateExerciseDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if len(dto.Question) == 0 {
		http.Error(w, "question payload required", http.StatusBadRequest)
		return
	}

	e, err := h.service.AddExercise(r.Context(), cardID, dto)
	if err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			http.Error(w, "card not found", http.StatusNotFound)
			return
		}
		log.WithError(err).Error("Errore nell'aggiunta dell'esercizio")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusCreated, e)
}

func (h *Handler) RemoveExercise(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	id, err := uuid.Parse(chi.URLParam(r, "exerciseID"))
	if err != nil {
		http.Error(w, "invalid exercise id", http.StatusBadRequest)
		return
	}

	if err := h.service.RemoveExercise(r.Context(), id); err != nil {
		log.WithError(err).Error("Errore nella rimozione dell'esercizio")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, map[string]string{
		"message": "exercise removed successfully",
	})
}
