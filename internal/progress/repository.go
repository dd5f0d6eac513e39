package progress

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// TopicAccuracy conta gli esercizi distinti tentati e quelli risolti
// almeno una volta, per tema.
type TopicAccuracy struct {
	TopicID   uuid.UUID `json:"topic_id"`
	Attempted int64     `json:"attempted"`
	Correct   int64     `json:"correct"`
}

type AttemptTotals struct {
	Attempts  int64 `json:"attempts"`
	Correct   int64 `json:"correct"`
	Incorrect int64 `json:"incorrect"`
}

type Repository interface {
	CreateTopicCompletion(tc *TopicCompletion) (created bool, err error)
	CreateSubtopicCompletion(sc *SubtopicCompletion) (created bool, err error)
	FindTopicCompletions(userID uuid.UUID) ([]TopicCompletion, error)
	FindSubtopicCompletions(userID, topicID uuid.UUID) ([]SubtopicCompletion, error)

	CreateExerciseAttempt(ea *ExerciseAttempt) error
	FindCorrectExerciseIDs(userID uuid.UUID) ([]uuid.UUID, error)
	AttemptTotals(userID uuid.UUID) (*AttemptTotals, error)
	AccuracyByTopic(userID uuid.UUID) ([]TopicAccuracy, error)
	CountCompletedSince(userID uuid.UUID, since time.Time) (int64, error)

	CreateSimulationAttempt(userID, simulationID uuid.UUID) (*SimulationAttempt, error)
	CompleteSimulationAttempt(userID, simulationID uuid.UUID) (*SimulationAttempt, error)
	FindSimulationAttempts(userID, simulationID uuid.UUID) ([]SimulationAttempt, error)
	CountCompletedSimulations(userID uuid.UUID) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CreateTopicCompletion(tc *TopicCompletion) (bool, error) {
	res := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "topic_id"}},
		DoNothing: true,
	}).Create(tc)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func (r *repository) CreateSubtopicCompletion(sc *SubtopicCompletion) (bool, error) {
	res := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "subtopic_id"}},
		DoNothing: true,
	}).Create(sc)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func (r *repository) FindTopicCompletions(userID uuid.UUID) ([]TopicCompletion, error) {
	var completions []TopicCompletion
	if err := r.db.Where("user_id = ?", userID).Find(&completions).Error; err != nil {
		return nil, err
	}
	return completions, nil
}

func (r *repository) FindSubtopicCompletions(userID, topicID uuid.UUID) ([]SubtopicCompletion, error) {
	var completions []SubtopicCompletion
	if err := r.db.
		Joins("JOIN subtopics ON subtopics.id = subtopic_completions.subtopic_id").
		Where("subtopic_completions.user_id = ? AND subtopics.topic_id = ?", userID, topicID).
		Find(&completions).Error; err != nil {
		return nil, err
	}
	return completions, nil
}

// CreateExerciseAttempt numera il tentativo dentro una transazione:
// attempt = tentativi precedenti + 1.
func (r *repository) CreateExerciseAttempt(ea *ExerciseAttempt) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var previous int64
		if err := tx.Model(&ExerciseAttempt{}).
			Where("user_id = ? AND exercise_id = ?", ea.UserID, ea.ExerciseID).
			Count(&previous).Error; err != nil {
			return err
		}
		ea.Attempt = int(previous) + 1
		return tx.Create(ea).Error
	})
}

func (r *repository) FindCorrectExerciseIDs(userID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	if err := r.db.Model(&ExerciseAttempt{}).
		Distinct("exercise_id").
		Where("user_id = ? AND correct = ?", userID, true).
		Pluck("exercise_id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *repository) AttemptTotals(userID uuid.UUID) (*AttemptTotals, error) {
	var totals AttemptTotals
	if err := r.db.Model(&ExerciseAttempt{}).
		Select(
			"COUNT(*) AS attempts",
			"COUNT(CASE WHEN correct THEN 1 END) AS correct",
			"COUNT(CASE WHEN NOT correct THEN 1 END) AS incorrect",
		).
		Where("user_id = ?", userID).
		Scan(&totals).Error; err != nil {
		return nil, err
	}
	return &totals, nil
}

func (r *repository) AccuracyByTopic(userID uuid.UUID) ([]TopicAccuracy, error) {
	var rows []TopicAccuracy
	if err := r.db.Table("exercise_attempts AS ea").
		Select(
			"topics.id AS topic_id",
			"COUNT(DISTINCT ea.exercise_id) AS attempted",
			"COUNT(DISTINCT CASE WHEN ea.correct THEN ea.exercise_id END) AS correct",
		).
		Joins("JOIN exercises ON exercises.id = ea.exercise_id").
		Joins("JOIN exercise_cards ON exercise_cards.id = exercises.card_id").
		Joins("JOIN subtopics ON subtopics.id = exercise_cards.subtopic_id").
		Joins("JOIN topics ON topics.id = subtopics.topic_id").
		Where("ea.user_id = ?", userID).
		Group("topics.id").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *repository) CountCompletedSince(userID uuid.UUID, since time.Time) (int64, error) {
	var count int64
	if err := r.db.Model(&ExerciseAttempt{}).
		Where("user_id = ? AND completed_at IS NOT NULL AND completed_at >= ?", userID, since).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CreateSimulationAttempt calcola il prossimo numero di tentativo dentro una
// transazione. Il vincolo unico (user, simulation, attempt) intercetta due
// avvii concorrenti: in quel caso si ricalcola e si reinserisce.
func (r *repository) CreateSimulationAttempt(userID, simulationID uuid.UUID) (*SimulationAttempt, error) {
	const maxRetries = 3

	var attempt *SimulationAttempt
	for i := 0; i < maxRetries; i++ {
		err := r.db.Transaction(func(tx *gorm.DB) error {
			var previous int64
			if err := tx.Model(&SimulationAttempt{}).
				Where("user_id = ? AND simulation_id = ?", userID, simulationID).
				Count(&previous).Error; err != nil {
				return err
			}
			attempt = &SimulationAttempt{
				ID:           uuid.New(),
				UserID:       userID,
				SimulationID: simulationID,
				Attempt:      int(previous) + 1,
			}
			return tx.Create(attempt).Error
		})
		if err == nil {
			return attempt, nil
		}
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, err
		}
	}
	return nil, gorm.ErrDuplicatedKey
}

func (r *repository) CompleteSimulationAttempt(userID, simulationID uuid.UUID) (*SimulationAttempt, error) {
	var attempt SimulationAttempt
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("user_id = ? AND simulation_id = ? AND completed_at IS NULL", userID, simulationID).
			Order("attempt DESC").
			First(&attempt).Error; err != nil {
			return err
		}
		now := time.Now()
		attempt.CompletedAt = &now
		return tx.Save(&attempt).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &attempt, nil
}

func (r *repository) FindSimulationAttempts(userID, simulationID uuid.UUID) ([]SimulationAttempt, error) {
	var attempts []SimulationAttempt
	if err := r.db.
		Where("user_id = ? AND simulation_id = ?", userID, simulationID).
		Order("attempt ASC").
		Find(&attempts).Error; err != nil {
		return nil, err
	}
	return attempts, nil
}

func (r *repository) CountCompletedSimulations(userID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.Model(&SimulationAttempt{}).
		Distinct("simulation_id").
		Where("user_id = ? AND completed_at IS NOT NULL", userID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
