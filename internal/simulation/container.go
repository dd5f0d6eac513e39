package simulation

import "gorm.io/gorm"

type SimulationContainer struct {
	Repo    Repository
	Service Service
	Handler *Handler
}

func NewSimulationContainer(db *gorm.DB) *SimulationContainer {
	repo := NewRepository(db)
	service := NewService(repo)
	handler := NewHandler(service)

	return &SimulationContainer{
		Repo:    repo,
		Service: service,
		Handler: handler,
	}
}
