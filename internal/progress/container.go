package progress

import (
	"github.com/maturamate/maturamate-api/internal/exercise"
	"github.com/maturamate/maturamate-api/internal/simulation"
	"github.com/maturamate/maturamate-api/internal/topic"
	"gorm.io/gorm"
)

type ProgressContainer struct {
	Repo    Repository
	Service Service
	Handler *Handler
}

func NewProgressContainer(
	db *gorm.DB,
	topicSvc topic.Service,
	topicRepo topic.Repository,
	exerciseRepo exercise.Repository,
	simulationRepo simulation.Repository,
) *ProgressContainer {
	repo := NewRepository(db)
	service := NewService(repo, topicSvc, topicRepo, exerciseRepo, simulationRepo)
	handler := NewHandler(service)

	return &ProgressContainer{
		Repo:    repo,
		Service: service,
		Handler: handler,
	}
}
