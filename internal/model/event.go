package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Event is a community event users can join. Attendees holds joined user ids;
// AttendeeCount is maintained alongside it.
type Event struct {
	ID            uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	Title         string    `json:"title" gorm:"size:255;not null"`
	Description   string    `json:"description" gorm:"type:text"`
	Date          string    `json:"date" gorm:"size:64"`
	Location      string    `json:"location" gorm:"size:255"`
	CreatorEmail  string    `json:"creatorEmail" gorm:"size:255;index"`
	Attendees     []string  `json:"attendees" gorm:"serializer:json;type:json"`
	AttendeeCount int       `json:"attendeeCount"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func (e *Event) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	if e.Attendees == nil {
		e.Attendees = []string{}
	}
	return nil
}
