package stats

import (
	"github.com/google/uuid"
	"github.com/maturamate/maturamate-api/internal/flag"
	"github.com/maturamate/maturamate-api/internal/progress"
)

// Dashboard è la struttura pronta per la pagina principale dello studente.
// HasActivity distingue esplicitamente l'utente senza alcun dato: il
// frontend mostra lo stato di benvenuto invece delle statistiche a zero.
type Dashboard struct {
	Topics               []progress.TopicCompletionItem `json:"topics"`
	ContinueURL          string                         `json:"continue_url"`
	WeakestTopic         progress.WeakestTopic          `json:"weakest_topic"`
	Totals               progress.AttemptTotals         `json:"totals"`
	SimulationsCompleted int64                          `json:"simulations_completed"`
	Flagged              []flag.FlaggedItem             `json:"flagged"`
	HasActivity          bool                           `json:"has_activity"`
}

type SubtopicStats struct {
	SubtopicID uuid.UUID `json:"subtopic_id"`
	Name       string    `json:"name"`
	Total      int       `json:"total"`
	Done       int       `json:"done"`
	Percent    int       `json:"percent"`
}

type TopicStats struct {
	TopicID   uuid.UUID       `json:"topic_id"`
	Name      string          `json:"name"`
	Total     int             `json:"total"`
	Done      int             `json:"done"`
	Percent   int             `json:"percent"`
	Subtopics []SubtopicStats `json:"subtopics"`
}

type Statistics struct {
	Topics          []TopicStats           `json:"topics"`
	WeeklyCompleted int64                  `json:"weekly_completed"`
	Totals          progress.AttemptTotals `json:"totals"`
	WeakestTopic    progress.WeakestTopic  `json:"weakest_topic"`
}
