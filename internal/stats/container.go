package stats

import (
	"github.com/maturamate/maturamate-api/internal/flag"
	"github.com/maturamate/maturamate-api/internal/progress"
	"github.com/maturamate/maturamate-api/internal/topic"
)

type StatsContainer struct {
	Service Service
	Handler *Handler
}

func NewStatsContainer(topicSvc topic.Service, progressSvc progress.Service, flagSvc flag.Service) *StatsContainer {
	service := NewService(topicSvc, progressSvc, flagSvc)
	handler := NewHandler(service)

	return &StatsContainer{
		Service: service,
		Handler: handler,
	}
}
