package topic

import "gorm.io/gorm"

type TopicContainer struct {
	Repo    Repository
	Service Service
	Handler *Handler
}

func NewTopicContainer(db *gorm.DB) *TopicContainer {
	repo := NewRepository(db)
	service := NewService(repo)
	handler := NewHandler(service)

	return &TopicContainer{
		Repo:    repo,
		Service: service,
		Handler: handler,
	}
}
