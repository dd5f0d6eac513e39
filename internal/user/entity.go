package user

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	GoogleID        string    `gorm:"type:text;not null;uniqueIndex" json:"-"`
	Email           string    `gorm:"type:text;not null;uniqueIndex" json:"email"`
	Name            string    `gorm:"type:text;not null" json:"name"`
	Picture         string    `gorm:"type:text" json:"picture,omitempty"`
	Role            string    `gorm:"type:text;not null;default:student" json:"role"`
	RefreshTokenEnc string    `gorm:"type:text" json:"-"`
	CreatedAt       time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

const (
	RoleStudent = "student"
	RoleAdmin   = "admin"
)
