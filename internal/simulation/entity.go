package simulation

import (
	"time"

	"github.com/google/uuid"
)

// SimulationCard raggruppa le simulazioni per anno e materia.
type SimulationCard struct {
	ID          uuid.UUID    `gorm:"type:uuid;primaryKey" json:"id"`
	Year        int          `gorm:"not null;index" json:"year"`
	Subject     string       `gorm:"type:text;not null" json:"subject"`
	Simulations []Simulation `gorm:"foreignKey:CardID;constraint:OnDelete:CASCADE" json:"simulations,omitempty"`
	CreatedAt   time.Time    `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time    `gorm:"autoUpdateTime" json:"updated_at"`
}

type Simulation struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CardID      uuid.UUID `gorm:"type:uuid;not null;index" json:"card_id"`
	Title       string    `gorm:"type:text;not null" json:"title"`
	Description string    `gorm:"type:text" json:"description,omitempty"`
	DocumentURL string    `gorm:"type:text" json:"document_url,omitempty"`
	TimeMinutes int       `gorm:"not null;default:0" json:"time_minutes"`
	IsComplete  bool      `gorm:"not null;default:false" json:"is_complete"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
