package topic

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Ordinamento del catalogo: chiave di posizione crescente, i null in coda,
// a parità di posizione ordine alfabetico sul nome.
const catalogOrder = "position ASC NULLS LAST, name ASC"

type Repository interface {
	FindAll() ([]Topic, error)
	FindAllWithSubtopics() ([]Topic, error)
	FindByID(id uuid.UUID) (*Topic, error)
	FindSubtopics(topicID uuid.UUID) ([]Subtopic, error)
	FindSubtopicByID(id uuid.UUID) (*Subtopic, error)

	CreateTopic(t *Topic) error
	UpdateTopic(t *Topic) error
	DeleteTopic(id uuid.UUID) error
	CreateSubtopic(st *Subtopic) error
	UpdateSubtopic(st *Subtopic) error
	DeleteSubtopic(id uuid.UUID) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindAll() ([]Topic, error) {
	var topics []Topic
	if err := r.db.Order(catalogOrder).Find(&topics).Error; err != nil {
		return nil, err
	}
	return topics, nil
}

func (r *repository) FindAllWithSubtopics() ([]Topic, error) {
	var topics []Topic
	if err := r.db.
		Preload("Subtopics", func(db *gorm.DB) *gorm.DB {
			return db.Order(catalogOrder)
		}).
		Order(catalogOrder).
		Find(&topics).Error; err != nil {
		return nil, err
	}
	return topics, nil
}

func (r *repository) FindByID(id uuid.UUID) (*Topic, error) {
	var t Topic
	if err := r.db.First(&t, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &t, nil
}

func (r *repository) FindSubtopics(topicID uuid.UUID) ([]Subtopic, error) {
	var subtopics []Subtopic
	if err := r.db.
		Where("topic_id = ?", topicID).
		Order(catalogOrder).
		Find(&subtopics).Error; err != nil {
		return nil, err
	}
	return subtopics, nil
}

func (r *repository) FindSubtopicByID(id uuid.UUID) (*Subtopic, error) {
	var st Subtopic
	if err := r.db.Preload("Theory").First(&st, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &st, nil
}

func (r *repository) CreateTopic(t *Topic) error {
	return r.db.Create(t).Error
}

func (r *repository) UpdateTopic(t *Topic) error {
	return r.db.Save(t).Error
}

func (r *repository) DeleteTopic(id uuid.UUID) error {
	return r.db.Delete(&Topic{}, "id = ?", id).Error
}

func (r *repository) CreateSubtopic(st *Subtopic) error {
	return r.db.Create(st).Error
}

func (r *repository) UpdateSubtopic(st *Subtopic) error {
	return r.db.Save(st).Error
}

func (r *repository) DeleteSubtopic(id uuid.UUID) error {
	return r.db.Delete(&Subtopic{}, "id = ?", id).Error
}
