package progress

import (
	"github.com/google/uuid"
	"github.com/maturamate/maturamate-api/internal/exercise"
	"github.com/maturamate/maturamate-api/internal/topic"
	util "github.com/maturamate/maturamate-api/internal/utils"
)

type TopicCompletionItem struct {
	Topic topic.Topic `json:"topic"`
	Done  bool        `json:"done"`
}

// TopicCompletionResult elenca i temi in ordine di catalogo; Resume è il
// primo tema non completato ("continua a studiare"), nil se sono tutti fatti.
type TopicCompletionResult struct {
	Items  []TopicCompletionItem `json:"items"`
	Resume *topic.Topic          `json:"resume,omitempty"`
}

type SubtopicCompletionItem struct {
	Subtopic topic.Subtopic `json:"subtopic"`
	Done     bool           `json:"done"`
}

type SubtopicCompletionResult struct {
	Items  []SubtopicCompletionItem `json:"items"`
	Resume *topic.Subtopic          `json:"resume,omitempty"`
}

type CardCompletion struct {
	Card        exercise.ExerciseCard `json:"card"`
	Total       int                   `json:"total"`
	Done        int                   `json:"done"`
	Percent     int                   `json:"percent"`
	IsCompleted bool                  `json:"is_completed"`
}

type WeakestTopic struct {
	TopicID         *uuid.UUID `json:"topic_id,omitempty"`
	Name            string     `json:"name"`
	AccuracyPercent int        `json:"accuracy_percent"`
	HasData         bool       `json:"has_data"`
}

type MarkResult struct {
	AlreadyComplete bool `json:"already_complete"`
}

type RecordAttemptDTO struct {
	Correct bool `json:"correct"`
}

type SimulationAttemptResponse struct {
	ID           uuid.UUID           `json:"id"`
	SimulationID uuid.UUID           `json:"simulation_id"`
	Attempt      int                 `json:"attempt"`
	StartedAt    util.LocalDateTime  `json:"started_at"`
	CompletedAt  *util.LocalDateTime `json:"completed_at,omitempty"`
}

func toSimulationAttemptResponse(a *SimulationAttempt) SimulationAttemptResponse {
	return SimulationAttemptResponse{
		ID:           a.ID,
		SimulationID: a.SimulationID,
		Attempt:      a.Attempt,
		StartedAt:    util.FromTime(a.StartedAt),
		CompletedAt:  util.FromTimePtr(a.CompletedAt),
	}
}
