package flag

import (
	"encoding/json"
	"errors"
	"net/http"

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

type toggleRequest struct {
	TargetID uuid.UUID  `json:"target_id"`
	Kind     TargetKind `json:"kind"`
}

func (h *Handler) Toggle(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var payload toggleRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if payload.TargetID == uuid.Nil || !payload.Kind.Valid() {
		http.Error(w, "target_id and kind required", http.StatusBadRequest)
		return
	}

	result, err := h.service.Toggle(r.Context(), userID, payload.TargetID, payload.Kind)
	if err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			http.Error(w, "target not found", http.StatusNotFound)
			return
		}
		log.WithError(err).Error("Errore nel toggle del preferito")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, result)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	items, err := h.service.ListByUser(r.Context(), userID)
	if err != nil {
		log.WithError(err).Error("Errore nel caricamento dei preferiti")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, items)
}
