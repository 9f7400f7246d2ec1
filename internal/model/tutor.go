package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Tutor is a listed tutor profile.
type Tutor struct {
	ID        uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	Name      string    `json:"name" gorm:"size:255;not null"`
	Email     string    `json:"email" gorm:"size:255;index"`
	Subject   string    `json:"subject" gorm:"size:255"`
	Image     string    `json:"image" gorm:"size:512"`
	CreatedAt time.Time `json:"createdAt"`
}

func (t *Tutor) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

// Review is a student review of a study session.
type Review struct {
	ID           uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	SessionID    string    `json:"sessionId" gorm:"size:64;index"`
	StudentEmail string    `json:"studentEmail" gorm:"size:255"`
	Rating       int       `json:"rating"`
	ReviewText   string    `json:"reviewText" gorm:"type:text"`
	CreatedAt    time.Time `json:"createdAt"`
}

func (r *Review) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
