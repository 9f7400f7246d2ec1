package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Material is a study resource a tutor attaches to a session.
type Material struct {
	ID         uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	Title      string    `json:"title" gorm:"size:255;not null"`
	SessionID  string    `json:"sessionId" gorm:"size:64;index"`
	TutorEmail string    `json:"tutorEmail" gorm:"size:255;index"`
	Image      string    `json:"image" gorm:"size:512"`
	Link       string    `json:"link" gorm:"size:512"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

func (m *Material) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
