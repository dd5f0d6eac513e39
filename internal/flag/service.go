package flag

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/maturamate/maturamate-api/internal/apperror"
	"github.com/maturamate/maturamate-api/internal/config"
	"github.com/maturamate/maturamate-api/internal/exercise"
	"github.com/maturamate/maturamate-api/internal/simulation"
)

// FlaggedItem è un preferito con titolo e percorso risolti per la dashboard.
type FlaggedItem struct {
	TargetID uuid.UUID  `json:"target_id"`
	Kind     TargetKind `json:"kind"`
	Title    string     `json:"title"`
	Path     string     `json:"path"`
}

type ToggleResult struct {
	Flagged bool `json:"flagged"`
}

type Service interface {
	Toggle(ctx context.Context, userID, targetID uuid.UUID, kind TargetKind) (*ToggleResult, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]FlaggedItem, error)
}

type service struct {
	repo           Repository
	exerciseRepo   exercise.Repository
	simulationRepo simulation.Repository
}

func NewService(repo Repository, exerciseRepo exercise.Repository, simulationRepo simulation.Repository) Service {
	return &service{
		repo:           repo,
		exerciseRepo:   exerciseRepo,
		simulationRepo: simulationRepo,
	}
}

func (s *service) Toggle(ctx context.Context, userID, targetID uuid.UUID, kind TargetKind) (*ToggleResult, error) {
	log := config.WithContext(ctx)

	switch kind {
	case TargetKindExerciseCard:
		card, err := s.exerciseRepo.FindCardByID(targetID)
		if err != nil {
			return nil, err
		}
		if card == nil {
			return nil, fmt.Errorf("%w: scheda %s", apperror.ErrNotFound, targetID)
		}
	case TargetKindSimulation:
		sim, err := s.simulationRepo.FindByID(targetID)
		if err != nil {
			return nil, err
		}
		if sim == nil {
			return nil, fmt.Errorf("%w: simulazione %s", apperror.ErrNotFound, targetID)
		}
	default:
		return nil, fmt.Errorf("%w: tipo di preferito %q", apperror.ErrNotFound, kind)
	}

	flagged, err := s.repo.Toggle(userID, targetID, kind)
	if err != nil {
		log.WithError(err).Error("Errore nel toggle del preferito")
		return nil, err
	}

	log.Info("Preferito aggiornato ", targetID.String(), " flagged=", flagged)
	return &ToggleResult{Flagged: flagged}, nil
}

func (s *service) ListByUser(ctx context.Context, userID uuid.UUID) ([]FlaggedItem, error) {
	flags, err := s.repo.FindByUser(userID)
	if err != nil {
		return nil, err
	}

	items := make([]FlaggedItem, 0, len(flags))
	for _, f := range flags {
		item := FlaggedItem{TargetID: f.TargetID, Kind: f.Kind}
		switch f.Kind {
		case TargetKindExerciseCard:
			card, err := s.exerciseRepo.FindCardByID(f.TargetID)
			if err != nil {
				return nil, err
			}
			if card == nil {
				// Scheda rimossa dal catalogo dopo il flag: la saltiamo.
				continue
			}
			item.Title = card.Description
			item.Path = fmt.Sprintf("/exercise-cards/%s", card.ID)
		case TargetKindSimulation:
			sim, err := s.simulationRepo.FindByID(f.TargetID)
			if err != nil {
				return nil, err
			}
			if sim == nil {
				continue
			}
			item.Title = sim.Title
			item.Path = fmt.Sprintf("/simulations/%s", sim.ID)
		}
		items = append(items, item)
	}
	return items, nil
}
