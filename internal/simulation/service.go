package simulation

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/maturamate/maturamate-api/internal/apperror"
	"github.com/maturamate/maturamate-api/internal/config"
)

type Service interface {
	ListCards(ctx context.Context) ([]SimulationCard, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Simulation, error)

	CreateCard(ctx context.Context, dto CreateCardDTO) (*SimulationCard, error)
	CreateSimulation(ctx context.Context, cardID uuid.UUID, dto CreateSimulationDTO) (*Simulation, error)
	DeleteSimulation(ctx context.Context, id uuid.UUID) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) ListCards(ctx context.Context) ([]SimulationCard, error) {
	return s.repo.FindCards()
}

func (s *service) GetByID(ctx context.Context, id uuid.UUID) (*Simulation, error) {
	sim, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if sim == nil {
		return nil, fmt.Errorf("%w: simulazione %s", apperror.ErrNotFound, id)
	}
	return sim, nil
}

func (s *service) CreateCard(ctx context.Context, dto CreateCardDTO) (*SimulationCard, error) {
	log := config.WithContext(ctx)

	card := &SimulationCard{
		ID:      uuid.New(),
		Year:    dto.Year,
		Subject: dto.Subject,
	}
	if err := s.repo.CreateCard(card); err != nil {
		log.WithError(err).Error("Errore nella creazione della scheda di simulazioni")
		return nil, err
	}

	log.Info("Scheda di simulazioni creata ", card.ID.String())
	return card, nil
}

func (s *service) CreateSimulation(ctx context.Context, cardID uuid.UUID, dto CreateSimulationDTO) (*Simulation, error) {
	log := config.WithContext(ctx)

	card, err := s.repo.FindCardByID(cardID)
	if err != nil {
		return nil, err
	}
	if card == nil {
		return nil, fmt.Errorf("%w: scheda di simulazioni %s", apperror.ErrNotFound, cardID)
	}

	sim := &Simulation{
		ID:          uuid.New(),
		CardID:      card.ID,
		Title:       dto.Title,
		Description: dto.Description,
		DocumentURL: dto.DocumentURL,
		TimeMinutes: dto.TimeMinutes,
		IsComplete:  dto.IsComplete,
	}
	if err := s.repo.CreateSimulation(sim); err != nil {
		log.WithError(err).Error("Errore nella creazione della simulazione")
		return nil, err
	}

	log.Info("Simulazione creata ", sim.ID.String())
	return sim, nil
}

func (s *service) DeleteSimulation(ctx context.Context, id uuid.UUID) error {
	log := config.WithContext(ctx)

	if err := s.repo.DeleteSimulation(id); err != nil {
		log.WithError(err).Error("Errore nell'eliminazione della simulazione")
		return err
	}
	return nil
}
