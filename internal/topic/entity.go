package topic

import (
	"time"

	"github.com/google/uuid"
)

// Topic è il nodo radice della tassonomia del programma d'esame.
// Position è nullable: i temi senza ordinamento esplicito vanno in coda.
type Topic struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string     `gorm:"type:text;not null" json:"name"`
	Description string     `gorm:"type:text" json:"description,omitempty"`
	Position    *int       `gorm:"index" json:"position,omitempty"`
	Subtopics   []Subtopic `gorm:"foreignKey:TopicID;constraint:OnDelete:CASCADE" json:"subtopics,omitempty"`
	CreatedAt   time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

type Subtopic struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	TopicID   uuid.UUID      `gorm:"type:uuid;not null;index" json:"topic_id"`
	Name      string         `gorm:"type:text;not null" json:"name"`
	Position  *int           `gorm:"index" json:"position,omitempty"`
	Theory    *TheoryContent `gorm:"foreignKey:SubtopicID;constraint:OnDelete:CASCADE" json:"theory,omitempty"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
}

type TheoryContent struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	SubtopicID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex" json:"subtopic_id"`
	Body        string    `gorm:"type:text" json:"body,omitempty"`
	DocumentURL string    `gorm:"type:text" json:"document_url,omitempty"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
