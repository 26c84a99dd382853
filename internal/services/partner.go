package services

import (
	"github.com/agora-dev/teko-board/backend/internal/models"
	"gorm.io/gorm"
)

type PartnerService struct {
	db *gorm.DB
}

func NewPartnerService(db *gorm.DB) *PartnerService {
	return &PartnerService{db: db}
}

// ListActive returns active partner companies, used to populate the worker
// form's partner selector.
func (s *PartnerService) ListActive() ([]models.Partner, error) {
	var partners []models.Partner
	err := s.db.
		Where("is_active = ?", true).
		Order("name ASC").
		Find(&partners).Error
	if err != nil {
		return nil, storeError(err)
	}
	return partners, nil
}

// GetByID returns a single partner row.
func (s *PartnerService) GetByID(id string) (*models.Partner, error) {
	var partner models.Partner
	if err := s.db.Where("id = ?", id).First(&partner).Error; err != nil {
		return nil, storeError(err)
	}
	return &partner, nil
}
