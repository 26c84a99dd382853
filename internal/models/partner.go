package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Partner represents an external company some workers belong to.
// Owned by AGORA; this app only reads and links to it.
type Partner struct {
	ID          string    `gorm:"primaryKey;size:36" json:"id"`
	Name        string    `gorm:"size:200;not null" json:"name"`
	ContactName *string   `gorm:"size:100" json:"contact_name"`
	Phone       *string   `gorm:"size:30" json:"phone"`
	Email       *string   `gorm:"size:255" json:"email"`
	Address     *string   `gorm:"size:500" json:"address"`
	Category    *string   `gorm:"size:100" json:"category"`
	Notes       *string   `gorm:"type:text" json:"notes"`
	IsActive    bool      `gorm:"default:true" json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (Partner) TableName() string { return "partners" }

func (p *Partner) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
