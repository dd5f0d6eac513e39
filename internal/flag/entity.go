package flag

import (
	"time"

	"github.com/google/uuid"
)

// Flag segna un preferito: l'esistenza della riga è lo stato. Il vincolo
// unico su (user_id, target_id) rende atomico il check-then-act del toggle.
type Flag struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_flags_user_target" json:"user_id"`
	TargetID  uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_flags_user_target" json:"target_id"`
	Kind      TargetKind `gorm:"type:text;not null" json:"kind"`
	CreatedAt time.Time  `gorm:"autoCreateTime" json:"created_at"`
}
