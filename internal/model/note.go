package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NoteVersion is a snapshot of a note taken before an update.
type NoteVersion struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Note is a personal study note. Every update pushes the previous
// title/description onto PreviousVersions.
type Note struct {
	ID               uuid.UUID     `json:"id" gorm:"type:char(36);primaryKey"`
	Email            string        `json:"email" gorm:"size:255;index"`
	Title            string        `json:"title" gorm:"size:255"`
	Description      string        `json:"description" gorm:"type:text"`
	PreviousVersions []NoteVersion `json:"previousVersions" gorm:"serializer:json;type:json"`
	CreatedAt        time.Time     `json:"createdAt"`
	UpdatedAt        time.Time     `json:"updatedAt"`
}

func (n *Note) BeforeCreate(tx *gorm.DB) error {
	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}
	return nil
}
