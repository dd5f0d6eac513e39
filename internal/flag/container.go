package flag

import (
	"github.com/maturamate/maturamate-api/internal/exercise"
	"github.com/maturamate/maturamate-api/internal/simulation"
	"gorm.io/gorm"
)

type FlagContainer struct {
	Repo    Repository
	Service Service
	Handler *Handler
}

func NewFlagContainer(db *gorm.DB, exerciseRepo exercise.Repository, simulationRepo simulation.Repository) *FlagContainer {
	repo := NewRepository(db)
	service := NewService(repo, exerciseRepo, simulationRepo)
	handler := NewHandler(service)

	return &FlagContainer{
		Repo:    repo,
		Service: service,
		Handler: handler,
	}
}
