package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Worker types
const (
	WorkerTypeInternal = "internal"
	WorkerTypePartner  = "partner"
)

// Worker represents a person who can be assigned to a site. The identity
// (name/phone/email) lives on the linked user row; DisplayName overrides it
// for roster display when set.
type Worker struct {
	ID             string    `gorm:"primaryKey;size:36" json:"id"`
	UserID         string    `gorm:"index;size:36;not null" json:"user_id"`
	User           *User     `gorm:"foreignKey:UserID" json:"user,omitempty"`
	PartnerID      *string   `gorm:"index;size:36" json:"partner_id"`
	Partner        *Partner  `gorm:"foreignKey:PartnerID" json:"partner,omitempty"`
	WorkerType     string    `gorm:"size:20;not null" json:"worker_type"` // internal, partner
	DisplayName    *string   `gorm:"size:100" json:"display_name"`
	Skills         []string  `gorm:"serializer:json;type:text" json:"skills"`
	Certifications []string  `gorm:"serializer:json;type:text" json:"certifications"`
	HourlyRate     *float64  `json:"hourly_rate"`
	DailyRate      *float64  `json:"daily_rate"`
	Notes          *string   `gorm:"type:text" json:"notes"`
	IsActive       bool      `gorm:"default:true" json:"is_active"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func (Worker) TableName() string { return "workers" }

func (w *Worker) BeforeCreate(tx *gorm.DB) error {
	if w.ID == "" {
		w.ID = uuid.NewString()
	}
	return nil
}

// RosterName returns the name shown on rosters: the display name override
// when set, otherwise the linked user's name.
func (w *Worker) RosterName() string {
	if w.DisplayName != nil && *w.DisplayName != "" {
		return *w.DisplayName
	}
	if w.User != nil {
		return w.User.Name
	}
	return ""
}
