package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User represents a registered account. JSON tags follow the camelCase wire
// format the existing frontend consumes.
//
// Email is lowercased before every write and lookup; the unique index backs
// up the service-level existence check so concurrent registrations cannot
// produce duplicate accounts.
type User struct {
	ID           uuid.UUID  `json:"id" gorm:"type:char(36);primaryKey"`
	Name         string     `json:"name" gorm:"size:255;not null"`
	Email        string     `json:"email" gorm:"uniqueIndex;size:255;not null"`
	PasswordHash string     `json:"-" gorm:"column:password;size:255;not null"` // Never expose in JSON
	PhotoURL     *string    `json:"photoURL" gorm:"size:512"`
	Role         string     `json:"role" gorm:"size:50;default:'student'"`
	IsActive     bool       `json:"isActive" gorm:"default:true"`
	LastLogin    *time.Time `json:"lastLogin"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

// BeforeCreate assigns the store-side identifier.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
