package services

import (
	"github.com/agora-dev/teko-board/backend/internal/models"
	"gorm.io/gorm"
)

type ProjectService struct {
	db *gorm.DB
}

func NewProjectService(db *gorm.DB) *ProjectService {
	return &ProjectService{db: db}
}

type ProjectListRequest struct {
	Status string `form:"status" binding:"omitempty,oneof=inquiry estimating contracted in_progress completed on_hold cancelled"`
	Name   string `form:"name"`
}

// List returns projects with their client, newest first. Projects are owned
// by AGORA; this app never writes them.
func (s *ProjectService) List(req *ProjectListRequest) ([]models.Project, error) {
	var projects []models.Project

	query := s.db.
		Preload("Client").
		Order("created_at DESC")

	if req.Status != "" {
		query = query.Where("status = ?", req.Status)
	}
	if req.Name != "" {
		query = query.Where("name LIKE ?", "%"+req.Name+"%")
	}

	if err := query.Find(&projects).Error; err != nil {
		return nil, storeError(err)
	}
	return projects, nil
}

// GetByID returns a project with its client relation.
func (s *ProjectService) GetByID(id string) (*models.Project, error) {
	var project models.Project
	err := s.db.
		Preload("Client").
		Where("id = ?", id).
		First(&project).Error
	if err != nil {
		return nil, storeError(err)
	}
	return &project, nil
}

// ListAssignable returns the projects eligible as assignment targets:
// contracted or in_progress only.
func (s *ProjectService) ListAssignable() ([]models.Project, error) {
	var projects []models.Project
	err := s.db.
		Where("status IN ?", models.AssignableProjectStatuses).
		Order("project_code ASC").
		Find(&projects).Error
	if err != nil {
		return nil, storeError(err)
	}
	return projects, nil
}
