package progress

import (
	"time"

	"github.com/google/uuid"
)

// TopicCompletion registra il "segna come completato" esplicito di un tema.
// Il vincolo unico rende idempotente la doppia richiesta.
type TopicCompletion struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_topic_completions_user_topic" json:"user_id"`
	TopicID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_topic_completions_user_topic" json:"topic_id"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

type SubtopicCompletion struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_subtopic_completions_user_subtopic" json:"user_id"`
	SubtopicID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_subtopic_completions_user_subtopic" json:"subtopic_id"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// ExerciseAttempt è un tentativo su un esercizio. La padronanza di un
// esercizio si basa sull'esistenza di almeno un tentativo corretto,
// non sul numero di tentativi.
type ExerciseAttempt struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	UserID      uuid.UUID  `gorm:"type:uuid;not null;index" json:"user_id"`
	ExerciseID  uuid.UUID  `gorm:"type:uuid;not null;index" json:"exercise_id"`
	Correct     bool       `gorm:"not null;default:false" json:"correct"`
	Attempt     int        `gorm:"not null;default:1" json:"attempt"`
	StartedAt   time.Time  `gorm:"autoCreateTime" json:"started_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// SimulationAttempt è numerato per (utente, simulazione) a partire da 1,
// strettamente crescente. CompletedAt null = iniziata ma non conclusa.
type SimulationAttempt struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	UserID       uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_simulation_attempts_user_sim_attempt" json:"user_id"`
	SimulationID uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_simulation_attempts_user_sim_attempt" json:"simulation_id"`
	Attempt      int        `gorm:"not null;uniqueIndex:idx_simulation_attempts_user_sim_attempt" json:"attempt"`
	StartedAt    time.Time  `gorm:"autoCreateTime" json:"started_at"`
	CompletedAt  *time.Time `json:"completed_at,omitempty"`
}
