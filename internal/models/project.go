package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Project lifecycle statuses
const (
	ProjectStatusInquiry    = "inquiry"
	ProjectStatusEstimating = "estimating"
	ProjectStatusContracted = "contracted"
	ProjectStatusInProgress = "in_progress"
	ProjectStatusCompleted  = "completed"
	ProjectStatusOnHold     = "on_hold"
	ProjectStatusCancelled  = "cancelled"
)

// AssignableProjectStatuses are the only statuses eligible as assignment targets.
var AssignableProjectStatuses = []string{ProjectStatusContracted, ProjectStatusInProgress}

// Project represents a unit of client work (shown as "site" in the UI).
// Owned by AGORA; this app only reads and links to it.
type Project struct {
	ID          string    `gorm:"primaryKey;size:36" json:"id"`
	ProjectCode string    `gorm:"uniqueIndex;size:50;not null" json:"project_code"`
	Name        string    `gorm:"size:200;not null" json:"name"`
	ClientID    *string   `gorm:"index;size:36" json:"client_id"`
	Client      *Client   `gorm:"foreignKey:ClientID" json:"client,omitempty"`
	Type        string    `gorm:"size:20;default:other" json:"type"` // signage, interior, digital, electrical, other
	Status      string    `gorm:"size:20;index;not null" json:"status"`
	StartDate   *string   `gorm:"size:10" json:"start_date"` // YYYY-MM-DD
	EndDate     *string   `gorm:"size:10" json:"end_date"`
	Address     *string   `gorm:"size:500" json:"address"`
	Description *string   `gorm:"type:text" json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (Project) TableName() string { return "projects" }

func (p *Project) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

// IsAssignable reports whether the project can receive assignments.
func (p *Project) IsAssignable() bool {
	return p.Status == ProjectStatusContracted || p.Status == ProjectStatusInProgress
}
