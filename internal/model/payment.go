package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Payment records a completed session payment for a user.
type Payment struct {
	ID            uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	Email         string    `json:"email" gorm:"size:255;index"`
	SessionID     string    `json:"sessionId" gorm:"size:64"`
	SessionTitle  string    `json:"sessionTitle" gorm:"size:255"`
	Amount        float64   `json:"amount"`
	TransactionID string    `json:"transactionId" gorm:"size:255"`
	CreatedAt     time.Time `json:"createdAt"`
}

func (p *Payment) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
