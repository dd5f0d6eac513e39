package progress

import (
	"context"
	"math"

	"github.com/google/uuid"
	"github.com/maturamate/maturamate-api/internal/config"
)

// FallbackTopicName è l'etichetta mostrata quando l'utente non ha ancora
// tentato alcun esercizio. È un fallback voluto, non un errore.
const FallbackTopicName = "Ancora nessun dato"

// Percent arrotonda done/total*100 all'intero più vicino (half up).
// Con total == 0 restituisce 0 invece di fallire la divisione.
func Percent(done, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(done) * 100 / float64(total)))
}

func (s *service) ComputeTopicCompletion(ctx context.Context, userID uuid.UUID) (*TopicCompletionResult, error) {
	topics, err := s.topicSvc.ListTopics(ctx)
	if err != nil {
		return nil, err
	}
	completions, err := s.repo.FindTopicCompletions(userID)
	if err != nil {
		return nil, err
	}

	done := make(map[uuid.UUID]bool, len(completions))
	for _, c := range completions {
		done[c.TopicID] = true
	}

	result := &TopicCompletionResult{Items: make([]TopicCompletionItem, 0, len(topics))}
	for i := range topics {
		t := topics[i]
		completed := done[t.ID]
		result.Items = append(result.Items, TopicCompletionItem{Topic: t, Done: completed})
		if !completed && result.Resume == nil {
			resume := t
			result.Resume = &resume
		}
	}
	return result, nil
}

func (s *service) ComputeSubtopicCompletion(ctx context.Context, userID, topicID uuid.UUID) (*SubtopicCompletionResult, error) {
	subtopics, err := s.topicSvc.ListSubtopics(ctx, topicID)
	if err != nil {
		return nil, err
	}
	completions, err := s.repo.FindSubtopicCompletions(userID, topicID)
	if err != nil {
		return nil, err
	}

	done := make(map[uuid.UUID]bool, len(completions))
	for _, c := range completions {
		done[c.SubtopicID] = true
	}

	result := &SubtopicCompletionResult{Items: make([]SubtopicCompletionItem, 0, len(subtopics))}
	for i := range subtopics {
		st := subtopics[i]
		completed := done[st.ID]
		result.Items = append(result.Items, SubtopicCompletionItem{Subtopic: st, Done: completed})
		if !completed && result.Resume == nil {
			resume := st
			result.Resume = &resume
		}
	}
	return result, nil
}

func (s *service) ComputeCardCompletion(ctx context.Context, userID uuid.UUID, subtopicIDs []uuid.UUID) ([]CardCompletion, error) {
	cards, err := s.exerciseRepo.FindCardsBySubtopics(subtopicIDs)
	if err != nil {
		return nil, err
	}
	correctIDs, err := s.repo.FindCorrectExerciseIDs(userID)
	if err != nil {
		return nil, err
	}

	correct := make(map[uuid.UUID]bool, len(correctIDs))
	for _, id := range correctIDs {
		correct[id] = true
	}

	result := make([]CardCompletion, 0, len(cards))
	for i := range cards {
		card := cards[i]
		total := len(card.Exercises)
		done := 0
		for _, e := range card.Exercises {
			if correct[e.ID] {
				done++
			}
		}
		result = append(result, CardCompletion{
			Card:        card,
			Total:       total,
			Done:        done,
			Percent:     Percent(done, total),
			IsCompleted: total > 0 && done == total,
		})
	}
	return result, nil
}

// ComputeWeakestTopic individua il tema con l'accuratezza più bassa tra
// quelli con almeno un esercizio tentato. A parità di accuratezza vince il
// primo in ordine di catalogo.
func (s *service) ComputeWeakestTopic(ctx context.Context, userID uuid.UUID) (*WeakestTopic, error) {
	log := config.WithContext(ctx)

	rows, err := s.repo.AccuracyByTopic(userID)
	if err != nil {
		return nil, err
	}
	topics, err := s.topicSvc.ListTopics(ctx)
	if err != nil {
		return nil, err
	}

	byTopic := make(map[uuid.UUID]TopicAccuracy, len(rows))
	for _, row := range rows {
		byTopic[row.TopicID] = row
	}

	var weakest *WeakestTopic
	var weakestAccuracy float64
	for i := range topics {
		t := topics[i]
		row, ok := byTopic[t.ID]
		if !ok || row.Attempted == 0 {
			continue
		}
		accuracy := float64(row.Correct) / float64(row.Attempted)
		if weakest == nil || accuracy < weakestAccuracy {
			id := t.ID
			weakest = &WeakestTopic{
				TopicID:         &id,
				Name:            t.Name,
				AccuracyPercent: Percent(int(row.Correct), int(row.Attempted)),
				HasData:         true,
			}
			weakestAccuracy = accuracy
		}
	}

	if weakest == nil {
		log.Debug("Nessun esercizio tentato, uso il tema segnaposto")
		return &WeakestTopic{Name: FallbackTopicName}, nil
	}
	return weakest, nil
}
