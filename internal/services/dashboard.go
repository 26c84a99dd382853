package services

import (
	"github.com/agora-dev/teko-board/backend/internal/models"
	"gorm.io/gorm"
)

type DashboardService struct {
	db *gorm.DB
}

func NewDashboardService(db *gorm.DB) *DashboardService {
	return &DashboardService{db: db}
}

type DashboardStats struct {
	Date             string `json:"date"`
	TodayAssignments int64  `json:"today_assignments"`
	ActiveWorkers    int64  `json:"active_workers"`
	ActiveSites      int64  `json:"active_sites"`
}

// GetStats returns the three dashboard counters for the given day:
// assignments on that date, active workers, and sites currently eligible for
// assignment.
func (s *DashboardService) GetStats(date string) (*DashboardStats, error) {
	stats := DashboardStats{Date: date}

	if err := s.db.Model(&models.Assignment{}).
		Where("date = ?", date).
		Count(&stats.TodayAssignments).Error; err != nil {
		return nil, storeError(err)
	}

	if err := s.db.Model(&models.Worker{}).
		Where("is_active = ?", true).
		Count(&stats.ActiveWorkers).Error; err != nil {
		return nil, storeError(err)
	}

	if err := s.db.Model(&models.Project{}).
		Where("status IN ?", models.AssignableProjectStatuses).
		Count(&stats.ActiveSites).Error; err != nil {
		return nil, storeError(err)
	}

	return &stats, nil
}
