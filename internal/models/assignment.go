package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Assignment statuses. A flat label set: any value may be set to any other
// directly, there is no enforced progression.
const (
	AssignmentStatusScheduled  = "scheduled"
	AssignmentStatusConfirmed  = "confirmed"
	AssignmentStatusInProgress = "in_progress"
	AssignmentStatusCompleted  = "completed"
	AssignmentStatusCancelled  = "cancelled"
)

// AssignmentStatuses lists every valid status label.
var AssignmentStatuses = []string{
	AssignmentStatusScheduled,
	AssignmentStatusConfirmed,
	AssignmentStatusInProgress,
	AssignmentStatusCompleted,
	AssignmentStatusCancelled,
}

// IsValidAssignmentStatus reports whether s is one of the five status labels.
func IsValidAssignmentStatus(s string) bool {
	for _, v := range AssignmentStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// Assignment is a worker-to-site booking for a specific date and optional
// time window. The one entity this application owns. Deletes are permanent,
// so no DeletedAt column.
type Assignment struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	WorkerID  string    `gorm:"index;size:36;not null" json:"worker_id"`
	Worker    *Worker   `gorm:"foreignKey:WorkerID" json:"worker,omitempty"`
	ProjectID string    `gorm:"index;size:36;not null" json:"project_id"`
	Project   *Project  `gorm:"foreignKey:ProjectID" json:"project,omitempty"`
	Date      string    `gorm:"size:10;index;not null" json:"date"` // YYYY-MM-DD
	StartTime *string   `gorm:"size:5" json:"start_time"`           // HH:MM
	EndTime   *string   `gorm:"size:5" json:"end_time"`
	Status    string    `gorm:"size:20;default:scheduled;not null" json:"status"`
	Notes     *string   `gorm:"type:text" json:"notes"`
	CreatedBy *string   `gorm:"size:36" json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Assignment) TableName() string { return "assignments" }

func (a *Assignment) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}
