package exercise

import (
	"github.com/maturamate/maturamate-api/internal/topic"
	"gorm.io/gorm"
)

type ExerciseContainer struct {
	Repo    Repository
	Service Service
	Handler *Handler
}

func NewExerciseContainer(db *gorm.DB, topicRepo topic.Repository) *ExerciseContainer {
	repo := NewRepository(db)
	service := NewService(repo, topicRepo)
	handler := NewHandler(service)

	return &ExerciseContainer{
		Repo:    repo,
		Service: service,
		Handler: handler,
	}
}
