package services

import (
	"strings"

	"github.com/agora-dev/teko-board/backend/internal/models"
	"gorm.io/gorm"
)

// Row caps for the detail-page history lists.
const (
	workerHistoryLimit  = 50
	projectHistoryLimit = 100
)

type AssignmentService struct {
	db *gorm.DB
}

func NewAssignmentService(db *gorm.DB) *AssignmentService {
	return &AssignmentService{db: db}
}

type CreateAssignmentRequest struct {
	WorkerID  string `json:"worker_id" binding:"required"`
	ProjectID string `json:"project_id" binding:"required"`
	Date      string `json:"date" binding:"required,datetime=2006-01-02"`
	StartTime string `json:"start_time" binding:"omitempty,datetime=15:04"`
	EndTime   string `json:"end_time" binding:"omitempty,datetime=15:04"`
	Notes     string `json:"notes"`
}

type UpdateAssignmentRequest struct {
	WorkerID  string `json:"worker_id" binding:"required"`
	ProjectID string `json:"project_id" binding:"required"`
	Date      string `json:"date" binding:"required,datetime=2006-01-02"`
	StartTime string `json:"start_time" binding:"omitempty,datetime=15:04"`
	EndTime   string `json:"end_time" binding:"omitempty,datetime=15:04"`
	Status    string `json:"status" binding:"required,oneof=scheduled confirmed in_progress completed cancelled"`
	Notes     string `json:"notes"`
}

type UpdateAssignmentStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=scheduled confirmed in_progress completed cancelled"`
}

// normalizeOptional applies the single normalization rule for optional form
// fields at the repository boundary: empty or blank strings become absent
// (NULL) rather than being stored as empty strings.
func normalizeOptional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

// ListByDate returns all assignments on the given day, joined with the
// worker's identity and the project, ordered by start_time ascending.
// NULL start_time rows sort wherever the store's collation puts them.
func (s *AssignmentService) ListByDate(date string) ([]models.Assignment, error) {
	var assignments []models.Assignment
	err := s.db.
		Preload("Worker").
		Preload("Worker.User").
		Preload("Project").
		Where("date = ?", date).
		Order("start_time ASC").
		Find(&assignments).Error
	if err != nil {
		return nil, storeError(err)
	}
	return assignments, nil
}

// ListByWorker returns the worker's schedule history, newest date first,
// capped at 50 rows, joined with the project.
func (s *AssignmentService) ListByWorker(workerID string) ([]models.Assignment, error) {
	var assignments []models.Assignment
	err := s.db.
		Preload("Project").
		Where("worker_id = ?", workerID).
		Order("date DESC").
		Limit(workerHistoryLimit).
		Find(&assignments).Error
	if err != nil {
		return nil, storeError(err)
	}
	return assignments, nil
}

// ListByProject returns the project's assignment history, newest date first,
// capped at 100 rows, joined with the worker and the worker's partner.
func (s *AssignmentService) ListByProject(projectID string) ([]models.Assignment, error) {
	var assignments []models.Assignment
	err := s.db.
		Preload("Worker").
		Preload("Worker.User").
		Preload("Worker.Partner").
		Where("project_id = ?", projectID).
		Order("date DESC").
		Limit(projectHistoryLimit).
		Find(&assignments).Error
	if err != nil {
		return nil, storeError(err)
	}
	return assignments, nil
}

// WorkerHistory returns the worker's capped history partitioned around
// today: upcoming keeps entries on or after today, past the rest, both in
// the newest-first order of ListByWorker.
func (s *AssignmentService) WorkerHistory(workerID, today string) (*DaySplit, error) {
	assignments, err := s.ListByWorker(workerID)
	if err != nil {
		return nil, err
	}
	split := SplitByDate(assignments, today)
	return &split, nil
}

// ProjectHistory is the project-side counterpart of WorkerHistory.
func (s *AssignmentService) ProjectHistory(projectID, today string) (*DaySplit, error) {
	assignments, err := s.ListByProject(projectID)
	if err != nil {
		return nil, err
	}
	split := SplitByDate(assignments, today)
	return &split, nil
}

// GetByID returns a single assignment row without joins, used to
// pre-populate the edit form. Missing rows surface as ErrNotFound.
func (s *AssignmentService) GetByID(id string) (*models.Assignment, error) {
	var assignment models.Assignment
	if err := s.db.Where("id = ?", id).First(&assignment).Error; err != nil {
		return nil, storeError(err)
	}
	return &assignment, nil
}

// Create inserts a new assignment with status defaulted to scheduled.
// createdBy is the operator's user id; empty means unknown.
func (s *AssignmentService) Create(req *CreateAssignmentRequest, createdBy string) (*models.Assignment, error) {
	assignment := models.Assignment{
		WorkerID:  req.WorkerID,
		ProjectID: req.ProjectID,
		Date:      req.Date,
		StartTime: normalizeOptional(req.StartTime),
		EndTime:   normalizeOptional(req.EndTime),
		Status:    models.AssignmentStatusScheduled,
		Notes:     normalizeOptional(req.Notes),
		CreatedBy: normalizeOptional(createdBy),
	}

	if err := s.db.Create(&assignment).Error; err != nil {
		return nil, storeError(err)
	}

	return &assignment, nil
}

// Update overwrites worker, project, date, times, status and notes in one
// write. The same empty-to-absent normalization as Create applies.
func (s *AssignmentService) Update(id string, req *UpdateAssignmentRequest) (*models.Assignment, error) {
	var assignment models.Assignment
	if err := s.db.Where("id = ?", id).First(&assignment).Error; err != nil {
		return nil, storeError(err)
	}

	assignment.WorkerID = req.WorkerID
	assignment.ProjectID = req.ProjectID
	assignment.Date = req.Date
	assignment.StartTime = normalizeOptional(req.StartTime)
	assignment.EndTime = normalizeOptional(req.EndTime)
	assignment.Status = req.Status
	assignment.Notes = normalizeOptional(req.Notes)

	if err := s.db.Save(&assignment).Error; err != nil {
		return nil, storeError(err)
	}

	return &assignment, nil
}

// UpdateStatus writes the status field only. Any of the five labels is
// accepted unconditionally; there is no transition constraint.
func (s *AssignmentService) UpdateStatus(id, status string) (*models.Assignment, error) {
	if !models.IsValidAssignmentStatus(status) {
		return nil, ErrValidationRejected
	}

	var assignment models.Assignment
	if err := s.db.Where("id = ?", id).First(&assignment).Error; err != nil {
		return nil, storeError(err)
	}

	if err := s.db.Model(&assignment).Update("status", status).Error; err != nil {
		return nil, storeError(err)
	}

	return &assignment, nil
}

// Delete removes the row permanently. It returns the deleted row so the
// caller can redirect to the roster for its original date.
func (s *AssignmentService) Delete(id string) (*models.Assignment, error) {
	var assignment models.Assignment
	if err := s.db.Where("id = ?", id).First(&assignment).Error; err != nil {
		return nil, storeError(err)
	}

	if err := s.db.Delete(&assignment).Error; err != nil {
		return nil, storeError(err)
	}

	return &assignment, nil
}
