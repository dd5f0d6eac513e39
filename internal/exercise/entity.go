package exercise

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ExerciseCard raggruppa esercizi a tema con lo stesso livello di difficoltà.
type ExerciseCard struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	SubtopicID  uuid.UUID  `gorm:"type:uuid;not null;index" json:"subtopic_id"`
	Description string     `gorm:"type:text;not null" json:"description"`
	Difficulty  Difficulty `gorm:"not null;default:1" json:"difficulty"`
	Exercises   []Exercise `gorm:"foreignKey:CardID;constraint:OnDelete:CASCADE" json:"exercises,omitempty"`
	CreatedAt   time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

type Exercise struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	CardID    uuid.UUID      `gorm:"type:uuid;not null;index" json:"card_id"`
	Question  datatypes.JSON `gorm:"type:jsonb;not null" json:"question"`
	Solution  datatypes.JSON `gorm:"type:jsonb" json:"solution,omitempty"`
	Position  *int           `gorm:"index" json:"position,omitempty"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
}
