package progress

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/maturamate/maturamate-api/internal/apperror"
	"github.com/maturamate/maturamate-api/internal/config"
	"github.com/maturamate/maturamate-api/internal/exercise"
	"github.com/maturamate/maturamate-api/internal/simulation"
	"github.com/maturamate/maturamate-api/internal/topic"
)

type Service interface {
	MarkTopicComplete(ctx context.Context, userID, topicID uuid.UUID) (*MarkResult, error)
	MarkSubtopicComplete(ctx context.Context, userID, subtopicID uuid.UUID) (*MarkResult, error)
	RecordExerciseAttempt(ctx context.Context, userID, exerciseID uuid.UUID, correct bool) (*ExerciseAttempt, error)
	StartSimulationAttempt(ctx context.Context, userID, simulationID uuid.UUID) (*SimulationAttemptResponse, error)
	CompleteSimulationAttempt(ctx context.Context, userID, simulationID uuid.UUID) (*SimulationAttemptResponse, error)
	ListSimulationAttempts(ctx context.Context, userID, simulationID uuid.UUID) ([]SimulationAttemptResponse, error)

	ComputeTopicCompletion(ctx context.Context, userID uuid.UUID) (*TopicCompletionResult, error)
	ComputeSubtopicCompletion(ctx context.Context, userID, topicID uuid.UUID) (*SubtopicCompletionResult, error)
	ComputeCardCompletion(ctx context.Context, userID uuid.UUID, subtopicIDs []uuid.UUID) ([]CardCompletion, error)
	ComputeWeakestTopic(ctx context.Context, userID uuid.UUID) (*WeakestTopic, error)

	GetAttemptTotals(ctx context.Context, userID uuid.UUID) (*AttemptTotals, error)
	CountWeeklyCompleted(ctx context.Context, userID uuid.UUID) (int64, error)
	CountCompletedSimulations(ctx context.Context, userID uuid.UUID) (int64, error)
}

type service struct {
	repo           Repository
	topicSvc       topic.Service
	topicRepo      topic.Repository
	exerciseRepo   exercise.Repository
	simulationRepo simulation.Repository
}

func NewService(
	repo Repository,
	topicSvc topic.Service,
	topicRepo topic.Repository,
	exerciseRepo exercise.Repository,
	simulationRepo simulation.Repository,
) Service {
	return &service{
		repo:           repo,
		topicSvc:       topicSvc,
		topicRepo:      topicRepo,
		exerciseRepo:   exerciseRepo,
		simulationRepo: simulationRepo,
	}
}

func (s *service) MarkTopicComplete(ctx context.Context, userID, topicID uuid.UUID) (*MarkResult, error) {
	log := config.WithContext(ctx)

	t, err := s.topicRepo.FindByID(topicID)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, fmt.Errorf("%w: tema %s", apperror.ErrNotFound, topicID)
	}

	created, err := s.repo.CreateTopicCompletion(&TopicCompletion{
		ID:      uuid.New(),
		UserID:  userID,
		TopicID: topicID,
	})
	if err != nil {
		log.WithError(err).Error("Errore nel salvataggio del completamento del tema")
		return nil, err
	}

	if created {
		log.Info("Tema segnato come completato ", topicID.String())
	}
	return &MarkResult{AlreadyComplete: !created}, nil
}

func (s *service) MarkSubtopicComplete(ctx context.Context, userID, subtopicID uuid.UUID) (*MarkResult, error) {
	log := config.WithContext(ctx)

	st, err := s.topicRepo.FindSubtopicByID(subtopicID)
	if err != nil {
		return nil, err
	}
	if st == nil {
		return nil, fmt.Errorf("%w: sottotema %s", apperror.ErrNotFound, subtopicID)
	}

	created, err := s.repo.CreateSubtopicCompletion(&SubtopicCompletion{
		ID:         uuid.New(),
		UserID:     userID,
		SubtopicID: subtopicID,
	})
	if err != nil {
		log.WithError(err).Error("Errore nel salvataggio del completamento del sottotema")
		return nil, err
	}

	if created {
		log.Info("Sottotema segnato come completato ", subtopicID.String())
	}
	return &MarkResult{AlreadyComplete: !created}, nil
}

func (s *service) RecordExerciseAttempt(ctx context.Context, userID, exerciseID uuid.UUID, correct bool) (*ExerciseAttempt, error) {
	log := config.WithContext(ctx)

	e, err := s.exerciseRepo.FindExerciseByID(exerciseID)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, fmt.Errorf("%w: esercizio %s", apperror.ErrNotFound, exerciseID)
	}

	now := time.Now()
	attempt := &ExerciseAttempt{
		ID:          uuid.New(),
		UserID:      userID,
		ExerciseID:  exerciseID,
		Correct:     correct,
		CompletedAt: &now,
	}
	if err := s.repo.CreateExerciseAttempt(attempt); err != nil {
		log.WithError(err).Error("Errore nella registrazione del tentativo")
		return nil, err
	}

	log.Info("Tentativo registrato ", attempt.ID.String())
	return attempt, nil
}

func (s *service) StartSimulationAttempt(ctx context.Context, userID, simulationID uuid.UUID) (*SimulationAttemptResponse, error) {
	log := config.WithContext(ctx)

	sim, err := s.simulationRepo.FindByID(simulationID)
	if err != nil {
		return nil, err
	}
	if sim == nil {
		return nil, fmt.Errorf("%w: simulazione %s", apperror.ErrNotFound, simulationID)
	}

	attempt, err := s.repo.CreateSimulationAttempt(userID, simulationID)
	if err != nil {
		log.WithError(err).Error("Errore nell'avvio del tentativo di simulazione")
		return nil, err
	}

	log.Info("Tentativo di simulazione avviato n. ", attempt.Attempt)
	resp := toSimulationAttemptResponse(attempt)
	return &resp, nil
}

func (s *service) CompleteSimulationAttempt(ctx context.Context, userID, simulationID uuid.UUID) (*SimulationAttemptResponse, error) {
	log := config.WithContext(ctx)

	attempt, err := s.repo.CompleteSimulationAttempt(userID, simulationID)
	if err != nil {
		log.WithError(err).Error("Errore nella chiusura del tentativo di simulazione")
		return nil, err
	}
	if attempt == nil {
		return nil, fmt.Errorf("%w: nessun tentativo aperto per la simulazione %s", apperror.ErrNotFound, simulationID)
	}

	resp := toSimulationAttemptResponse(attempt)
	return &resp, nil
}

func (s *service) ListSimulationAttempts(ctx context.Context, userID, simulationID uuid.UUID) ([]SimulationAttemptResponse, error) {
	attempts, err := s.repo.FindSimulationAttempts(userID, simulationID)
	if err != nil {
		return nil, err
	}
	result := make([]SimulationAttemptResponse, 0, len(attempts))
	for i := range attempts {
		result = append(result, toSimulationAttemptResponse(&attempts[i]))
	}
	return result, nil
}

func (s *service) GetAttemptTotals(ctx context.Context, userID uuid.UUID) (*AttemptTotals, error) {
	return s.repo.AttemptTotals(userID)
}

func (s *service) CountWeeklyCompleted(ctx context.Context, userID uuid.UUID) (int64, error) {
	since := time.Now().AddDate(0, 0, -7)
	return s.repo.CountCompletedSince(userID, since)
}

func (s *service) CountCompletedSimulations(ctx context.Context, userID uuid.UUID) (int64, error) {
	return s.repo.CountCompletedSimulations(userID)
}
