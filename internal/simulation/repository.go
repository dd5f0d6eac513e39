package simulation

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	FindCards() ([]SimulationCard, error)
	FindCardByID(id uuid.UUID) (*SimulationCard, error)
	FindByID(id uuid.UUID) (*Simulation, error)
	FindByIDs(ids []uuid.UUID) ([]Simulation, error)

	CreateCard(c *SimulationCard) error
	CreateSimulation(s *Simulation) error
	UpdateSimulation(s *Simulation) error
	DeleteSimulation(id uuid.UUID) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindCards() ([]SimulationCard, error) {
	var cards []SimulationCard
	if err := r.db.
		Preload("Simulations", func(db *gorm.DB) *gorm.DB {
			return db.Order("title ASC")
		}).
		Order("year DESC, subject ASC").
		Find(&cards).Error; err != nil {
		return nil, err
	}
	return cards, nil
}

func (r *repository) FindCardByID(id uuid.UUID) (*SimulationCard, error) {
	var card SimulationCard
	if err := r.db.
		Preload("Simulations", func(db *gorm.DB) *gorm.DB {
			return db.Order("title ASC")
		}).
		First(&card, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &card, nil
}

func (r *repository) FindByID(id uuid.UUID) (*Simulation, error) {
	var s Simulation
	if err := r.db.First(&s, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}

func (r *repository) FindByIDs(ids []uuid.UUID) ([]Simulation, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var sims []Simulation
	if err := r.db.Where("id IN ?", ids).Find(&sims).Error; err != nil {
		return nil, err
	}
	return sims, nil
}

func (r *repository) CreateCard(c *SimulationCard) error {
	return r.db.Create(c).Error
}

func (r *repository) CreateSimulation(s *Simulation) error {
	return r.db.Create(s).Error
}

func (r *repository) UpdateSimulation(s *Simulation) error {
	return r.db.Save(s).Error
}

func (r *repository) DeleteSimulation(id uuid.UUID) error {
	return r.db.Delete(&Simulation{}, "id = ?", id).Error
}
