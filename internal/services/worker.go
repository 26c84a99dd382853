package services

import (
	"strings"

	"github.com/agora-dev/teko-board/backend/internal/models"
	"github.com/agora-dev/teko-board/backend/pkg/logger"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type WorkerService struct {
	db *gorm.DB
}

func NewWorkerService(db *gorm.DB) *WorkerService {
	return &WorkerService{db: db}
}

type WorkerListRequest struct {
	WorkerType string `form:"worker_type" binding:"omitempty,oneof=internal partner"`
	Active     *bool  `form:"active"`
}

// List returns workers with their user identity and partner, newest first.
func (s *WorkerService) List(req *WorkerListRequest) ([]models.Worker, error) {
	var workers []models.Worker

	query := s.db.
		Preload("User").
		Preload("Partner").
		Order("created_at DESC")

	if req.WorkerType != "" {
		query = query.Where("worker_type = ?", req.WorkerType)
	}
	if req.Active != nil {
		query = query.Where("is_active = ?", *req.Active)
	}

	if err := query.Find(&workers).Error; err != nil {
		return nil, storeError(err)
	}
	return workers, nil
}

// GetByID returns a worker with user and partner relations.
func (s *WorkerService) GetByID(id string) (*models.Worker, error) {
	var worker models.Worker
	err := s.db.
		Preload("User").
		Preload("Partner").
		Where("id = ?", id).
		First(&worker).Error
	if err != nil {
		return nil, storeError(err)
	}
	return &worker, nil
}

type CreateWorkerRequest struct {
	Name        string   `json:"name" binding:"required"`
	Phone       string   `json:"phone"`
	Email       string   `json:"email" binding:"omitempty,email"`
	WorkerType  string   `json:"worker_type" binding:"required,oneof=internal partner"`
	PartnerID   string   `json:"partner_id"`
	DisplayName string   `json:"display_name"`
	Skills      []string `json:"skills"`
	Notes       string   `json:"notes"`
}

// Create registers a worker together with its user identity row in one
// transaction. A partner-type worker without a partner link is allowed
// (the shared store does not enforce it) but logged.
func (s *WorkerService) Create(req *CreateWorkerRequest) (*models.Worker, error) {
	if req.WorkerType == models.WorkerTypePartner && strings.TrimSpace(req.PartnerID) == "" {
		logger.Warn().Str("name", req.Name).Msg("partner-type worker created without partner link")
	}

	username := strings.TrimSpace(req.Email)
	if username == "" {
		username = "worker-" + uuid.NewString()[:8]
	}

	role := "member"
	if req.WorkerType == models.WorkerTypePartner {
		role = "partner"
	}

	var worker models.Worker
	err := s.db.Transaction(func(tx *gorm.DB) error {
		user := models.User{
			Username: username,
			Name:     req.Name,
			Email:    strings.TrimSpace(req.Email),
			Phone:    normalizeOptional(req.Phone),
			Role:     role,
			AuthType: "local",
			IsActive: true,
		}
		if err := tx.Create(&user).Error; err != nil {
			return err
		}

		worker = models.Worker{
			UserID:      user.ID,
			PartnerID:   normalizeOptional(req.PartnerID),
			WorkerType:  req.WorkerType,
			DisplayName: normalizeOptional(req.DisplayName),
			Skills:      req.Skills,
			Notes:       normalizeOptional(req.Notes),
			IsActive:    true,
		}
		return tx.Create(&worker).Error
	})
	if err != nil {
		return nil, storeError(err)
	}

	return s.GetByID(worker.ID)
}
