package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Study session approval states.
const (
	SessionPending  = "pending"
	SessionApproved = "approved"
	SessionRejected = "rejected"
)

// StudySession is a tutor-submitted session that moves through
// pending -> approved/rejected via the admin endpoints.
type StudySession struct {
	ID              uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	Title           string    `json:"title" gorm:"size:255;not null"`
	TutorName       string    `json:"tutorName" gorm:"size:255"`
	TutorEmail      string    `json:"tutorEmail" gorm:"size:255;index"`
	Description     string    `json:"description" gorm:"type:text"`
	RegistrationFee float64   `json:"registrationFee"`
	IsFree          bool      `json:"isFree"`
	Amount          float64   `json:"amount"`
	Status          string    `json:"status" gorm:"size:20;default:'pending';index"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

func (s *StudySession) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	if s.Status == "" {
		s.Status = SessionPending
	}
	return nil
}

// BookedSession records a student booking of a study session.
type BookedSession struct {
	ID           uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	SessionID    string    `json:"sessionId" gorm:"size:64;index"`
	SessionTitle string    `json:"sessionTitle" gorm:"size:255"`
	StudentEmail string    `json:"studentEmail" gorm:"size:255;index"`
	TutorEmail   string    `json:"tutorEmail" gorm:"size:255"`
	Amount       float64   `json:"amount"`
	CreatedAt    time.Time `json:"createdAt"`
}

func (b *BookedSession) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}
