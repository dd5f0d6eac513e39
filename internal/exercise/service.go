package exercise

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/maturamate/maturamate-api/internal/apperror"
	"github.com/maturamate/maturamate-api/internal/config"
	"github.com/maturamate/maturamate-api/internal/topic"
)

type Service interface {
	ListCardsBySubtopic(ctx context.Context, subtopicID uuid.UUID) ([]ExerciseCard, error)
	GetCardWithExercises(ctx context.Context, cardID uuid.UUID) (*ExerciseCard, error)

	CreateCard(ctx context.Context, subtopicID uuid.UUID, dto CreateCardDTO) (*ExerciseCard, error)
	DeleteCard(ctx context.Context, id uuid.UUID) error
	AddExercise(ctx context.Context, cardID uuid.UUID, dto CreateExerciseDTO) (*Exercise, error)
	RemoveExercise(ctx context.Context, id uuid.UUID) error
}

type service struct {
	repo      Repository
	topicRepo topic.Repository
}

func NewService(repo Repository, topicRepo topic.Repository) Service {
	return &service{repo: repo, topicRepo: topicRepo}
}

func (s *service) ListCardsBySubtopic(ctx context.Context, subtopicID uuid.UUID) ([]ExerciseCard, error) {
	st, err := s.topicRepo.FindSubtopicByID(subtopicID)
	if err != nil {
		return nil, err
	}
	if st == nil {
		return nil, fmt.Errorf("%w: sottotema %s", apperror.ErrNotFound, subtopicID)
	}
	return s.repo.FindCardsBySubtopic(subtopicID)
}

func (s *service) GetCardWithExercises(ctx context.Context, cardID uuid.UUID) (*ExerciseCard, error) {
	card, err := s.repo.FindCardByID(cardID)
	if err != nil {
		return nil, err
	}
	if card == nil {
		return nil, fmt.Errorf("%w: scheda %s", apperror.ErrNotFound, cardID)
	}
	return card, nil
}

func (s *service) CreateCard(ctx context.Context, subtopicID uuid.UUID, dto CreateCardDTO) (*ExerciseCard, error) {
	log := config.WithContext(ctx)

	st, err := s.topicRepo.FindSubtopicByID(subtopicID)
	if err != nil {
		return nil, err
	}
	if st == nil {
		return nil, fmt.Errorf("%w: sottotema %s", apperror.ErrNotFound, subtopicID)
	}

	card := &ExerciseCard{
		ID:          uuid.New(),
		SubtopicID:  subtopicID,
		Description: dto.Description,
		Difficulty:  dto.Difficulty,
	}
	if err := s.repo.CreateCard(card); err != nil {
		log.WithError(err).Error("Errore nella creazione della scheda di esercizi")
		return nil, err
	}

	log.Info("Scheda di esercizi creata ", card.ID.String())
	return card, nil
}

func (s *service) DeleteCard(ctx context.Context, id uuid.UUID) error {
	log := config.WithContext(ctx)

	if err := s.repo.DeleteCard(id); err != nil {
		log.WithError(err).Error("Errore nell'eliminazione della scheda")
		return err
	}
	return nil
}

func (s *service) AddExercise(ctx context.Context, cardID uuid.UUID, dto CreateExerciseDTO) (*Exercise, error) {
	log := config.WithContext(ctx)

	card, err := s.repo.FindCardByID(cardID)
	if err != nil {
		return nil, err
	}
	if card == nil {
		return nil, fmt.Errorf("%w: scheda %s", apperror.ErrNotFound, cardID)
	}

	e := &Exercise{
		ID:       uuid.New(),
		CardID:   card.ID,
		Question: dto.Question,
		Solution: dto.Solution,
		Position: dto.Position,
	}
	if err := s.repo.CreateExercise(e); err != nil {
		log.WithError(err).Error("Errore nell'aggiunta dell'esercizio")
		return nil, err
	}

	log.Info("Esercizio aggiunto ", e.ID.String())
	return e, nil
}

func (s *service) RemoveExercise(ctx context.Context, id uuid.UUID) error {
	log := config.WithContext(ctx)

	if err := s.repo.DeleteExercise(id); err != nil {
		log.WithError(err).Error("Errore nella rimozione dell'esercizio")
		return err
	}
	return nil
}
