package simulation

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

func (h *Handler) ListCards(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	cards, err := h.service.ListCards(r.Context())
	if err != nil {
		log.WithError(err).Error("Errore nel caricamento delle simulazioni")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, cards)
}

func (h *Handler) GetSimulation(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	id, err := uuid.Parse(chi.URLParam(r, "simulationID"))
	if err != nil {
		http.Error(w, "invalid simulation id", http.StatusBadRequest)
		return
	}

	sim, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			http.Error(w, "simulation not found", http.StatusNotFound)
			return
		}
		log.WithError(err).Error("Errore nel caricamento della simulazione")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, sim)
}

func (h *Handler) CreateCard(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var dto CreateCardDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if dto.Year == 0 || dto.Subject == "" {
		http.Error(w, "year and subject required", http.StatusBadRequest)
		return
	}

	card, err := h.service.CreateCard(r.Context(), dto)
	if err != nil {
		log.WithError(err).Error("Errore nella creazione della scheda di simulazioni")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusCreated, card)
}

func (h *Handler) CreateSimulation(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	cardID, err := uuid.Parse(chi.URLParam(r, "cardID"))
	if err != nil {
		http.Error(w, "invalid card id", http.StatusBadRequest)
		return
	}

	var dto CreateSimulationDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if dto.Title == "" {
		http.Error(w, "title required", http.StatusBadRequest)
		return
	}

	sim, err := h.service.CreateSimulation(r.Context(), cardID, dto)
	if err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			http.Error(w, "simulation card not found", http.StatusNotFound)
			return
		}
		log.WithError(err).Error("Errore nella creazione della simulazione")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusCreated, sim)
}

func (h *Handler) DeleteSimulation(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	id, err := uuid.Parse(chi.URLParam(r, "simulationID"))
	if err != nil {
		http.Error(w, "invalid simulation id", http.StatusBadRequest)
		return
	}

	if err := h.service.DeleteSimulation(r.Context(), id); err != nil {
		log.WithError(err).Error("Errore nell'eliminazione della simulazione")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, map[string]string{
		"message": "simulation deleted successfully",
	})
}
