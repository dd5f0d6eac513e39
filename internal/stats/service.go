package stats

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/maturamate/maturamate-api/internal/config"
	"github.com/maturamate/maturamate-api/internal/flag"
	"github.com/maturamate/maturamate-api/internal/progress"
	"github.com/maturamate/maturamate-api/internal/topic"
)

// DefaultContinueURL è la destinazione di "continua a studiare" quando
// l'utente ha completato tutti i temi (o non ne esiste nessuno).
const DefaultContinueURL = "/topics"

type Service interface {
	ComposeDashboard(ctx context.Context, userID uuid.UUID) (*Dashboard, error)
	ComposeStatistics(ctx context.Context, userID uuid.UUID) (*Statistics, error)
}

type service struct {
	topicSvc    topic.Service
	progressSvc progress.Service
	flagSvc     flag.Service
}

func NewService(topicSvc topic.Service, progressSvc progress.Service, flagSvc flag.Service) Service {
	return &service{
		topicSvc:    topicSvc,
		progressSvc: progressSvc,
		flagSvc:     flagSvc,
	}
}

// ComposeDashboard è una lettura pura: ogni errore dello store interrompe
// la composizione, mai risultati parziali.
func (s *service) ComposeDashboard(ctx context.Context, userID uuid.UUID) (*Dashboard, error) {
	log := config.WithContext(ctx)

	topicRes, err := s.progressSvc.ComputeTopicCompletion(ctx, userID)
	if err != nil {
		return nil, err
	}

	continueURL := DefaultContinueURL
	if topicRes.Resume != nil {
		continueURL = fmt.Sprintf("/topics/%s", topicRes.Resume.ID)
		subRes, err := s.progressSvc.ComputeSubtopicCompletion(ctx, userID, topicRes.Resume.ID)
		if err != nil {
			return nil, err
		}
		if subRes.Resume != nil {
			continueURL = fmt.Sprintf("/topics/%s/subtopics/%s", topicRes.Resume.ID, subRes.Resume.ID)
		}
	}

	totals, err := s.progressSvc.GetAttemptTotals(ctx, userID)
	if err != nil {
		return nil, err
	}
	weakest, err := s.progressSvc.ComputeWeakestTopic(ctx, userID)
	if err != nil {
		return nil, err
	}
	simsCompleted, err := s.progressSvc.CountCompletedSimulations(ctx, userID)
	if err != nil {
		return nil, err
	}
	flagged, err := s.flagSvc.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	completedTopics := 0
	for _, item := range topicRes.Items {
		if item.Done {
			completedTopics++
		}
	}
	hasActivity := totals.Attempts > 0 || simsCompleted > 0 || completedTopics > 0 || len(flagged) > 0

	if !hasActivity {
		log.Debug("Utente senza attività, dashboard in stato di benvenuto")
	}

	return &Dashboard{
		Topics:               topicRes.Items,
		ContinueURL:          continueURL,
		WeakestTopic:         *weakest,
		Totals:               *totals,
		SimulationsCompleted: simsCompleted,
		Flagged:              flagged,
		HasActivity:          hasActivity,
	}, nil
}

func (s *service) ComposeStatistics(ctx context.Context, userID uuid.UUID) (*Statistics, error) {
	tree, err := s.topicSvc.ListTopicsWithSubtopics(ctx)
	if err != nil {
		return nil, err
	}

	topicStats := make([]TopicStats, 0, len(tree))
	for i := range tree {
		t := tree[i]

		subtopicIDs := make([]uuid.UUID, 0, len(t.Subtopics))
		for _, st := range t.Subtopics {
			subtopicIDs = append(subtopicIDs, st.ID)
		}

		cards, err := s.progressSvc.ComputeCardCompletion(ctx, userID, subtopicIDs)
		if err != nil {
			return nil, err
		}

		bySubtopic := make(map[uuid.UUID]*SubtopicStats, len(t.Subtopics))
		ts := TopicStats{TopicID: t.ID, Name: t.Name, Subtopics: make([]SubtopicStats, 0, len(t.Subtopics))}
		for _, st := range t.Subtopics {
			ts.Subtopics = append(ts.Subtopics, SubtopicStats{SubtopicID: st.ID, Name: st.Name})
			bySubtopic[st.ID] = &ts.Subtopics[len(ts.Subtopics)-1]
		}

		for _, cc := range cards {
			ts.Total += cc.Total
			ts.Done += cc.Done
			if ss, ok := bySubtopic[cc.Card.SubtopicID]; ok {
				ss.Total += cc.Total
				ss.Done += cc.Done
			}
		}

		ts.Percent = progress.Percent(ts.Done, ts.Total)
		for j := range ts.Subtopics {
			ts.Subtopics[j].Percent = progress.Percent(ts.Subtopics[j].Done, ts.Subtopics[j].Total)
		}
		topicStats = append(topicStats, ts)
	}

	weekly, err := s.progressSvc.CountWeeklyCompleted(ctx, userID)
	if err != nil {
		return nil, err
	}
	totals, err := s.progressSvc.GetAttemptTotals(ctx, userID)
	if err != nil {
		return nil, err
	}
	weakest, err := s.progressSvc.ComputeWeakestTopic(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &Statistics{
		Topics:          topicStats,
		WeeklyCompleted: weekly,
		Totals:          *totals,
		WeakestTopic:    *weakest,
	}, nil
}
