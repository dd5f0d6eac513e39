package exercise

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const cardOrder = "difficulty ASC, created_at ASC"
const exerciseOrder = "position ASC NULLS LAST, created_at ASC"

type Repository interface {
	FindCardByID(id uuid.UUID) (*ExerciseCard, error)
	FindCardsBySubtopic(subtopicID uuid.UUID) ([]ExerciseCard, error)
	FindCardsBySubtopics(subtopicIDs []uuid.UUID) ([]ExerciseCard, error)
	FindExerciseByID(id uuid.UUID) (*Exercise, error)

	CreateCard(c *ExerciseCard) error
	UpdateCard(c *ExerciseCard) error
	DeleteCard(id uuid.UUID) error
	CreateExercise(e *Exercise) error
	DeleteExercise(id uuid.UUID) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindCardByID(id uuid.UUID) (*ExerciseCard, error) {
	var card ExerciseCard
	if err := r.db.
		Preload("Exercises", func(db *gorm.DB) *gorm.DB {
			return db.Order(exerciseOrder)
		}).
		First(&card, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &card, nil
}

func (r *repository) FindCardsBySubtopic(subtopicID uuid.UUID) ([]ExerciseCard, error) {
	return r.FindCardsBySubtopics([]uuid.UUID{subtopicID})
}

func (r *repository) FindCardsBySubtopics(subtopicIDs []uuid.UUID) ([]ExerciseCard, error) {
	if len(subtopicIDs) == 0 {
		return nil, nil
	}
	var cards []ExerciseCard
	if err := r.db.
		Preload("Exercises", func(db *gorm.DB) *gorm.DB {
			return db.Order(exerciseOrder)
		}).
		Where("subtopic_id IN ?", subtopicIDs).
		Order(cardOrder).
		Find(&cards).Error; err != nil {
		return nil, err
	}
	return cards, nil
}

func (r *repository) FindExerciseByID(id uuid.UUID) (*Exercise, error) {
	var e Exercise
	if err := r.db.First(&e, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &e, nil
}

func (r *repository) CreateCard(c *ExerciseCard) error {
	return r.db.Create(c).Error
}

func (r *repository) UpdateCard(c *ExerciseCard) error {
	return r.db.Save(c).Error
}

func (r *repository) DeleteCard(id uuid.UUID) error {
	return r.db.Delete(&ExerciseCard{}, "id = ?", id).Error
}

func (r *repository) CreateExercise(e *Exercise) error {
	return r.db.Create(e).Error
}

func (r *repository) DeleteExercise(id uuid.UUID) error {
	return r.db.Delete(&Exercise{}, "id = ?", id).Error
}
