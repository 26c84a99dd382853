package handlers

import (
	"time"

	"github.com/agora-dev/teko-board/backend/internal/middleware"
	"github.com/agora-dev/teko-board/backend/internal/services"
	"github.com/agora-dev/teko-board/backend/pkg/response"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AssignmentHandler struct {
	assignmentService *services.AssignmentService
	location          *time.Location
}

func NewAssignmentHandler(db *gorm.DB) *AssignmentHandler {
	return &AssignmentHandler{
		assignmentService: services.NewAssignmentService(db),
		location:          tokyoLocation(),
	}
}

// ListByDate returns all assignments for one date
// GET /api/assignments?date=2025-06-15
func (h *AssignmentHandler) ListByDate(c *gin.Context) {
	date := c.Query("date")
	if _, err := time.Parse(services.DateLayout, date); err != nil {
		response.BadRequest(c, "date must be YYYY-MM-DD")
		return
	}

	assignments, err := h.assignmentService.ListByDate(date)
	if err != nil {
		respondStoreError(c, err, "assignments not found")
		return
	}

	response.Success(c, assignments)
}

// GetByID returns one assignment with its worker and project
// GET /api/assignments/:id
func (h *AssignmentHandler) GetByID(c *gin.Context) {
	assignment, err := h.assignmentService.GetByID(c.Param("id"))
	if err != nil {
		respondStoreError(c, err, "assignment not found")
		return
	}

	response.Success(c, assignment)
}

// Create creates a new assignment
// POST /api/assignments
func (h *AssignmentHandler) Create(c *gin.Context) {
	var req services.CreateAssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	assignment, err := h.assignmentService.Create(&req, middleware.GetUserID(c))
	if err != nil {
		respondStoreError(c, err, "assignment not found")
		return
	}

	response.Created(c, assignment)
}

// Update overwrites an assignment's editable fields
// PUT /api/assignments/:id
func (h *AssignmentHandler) Update(c *gin.Context) {
	var req services.UpdateAssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	assignment, err := h.assignmentService.Update(c.Param("id"), &req)
	if err != nil {
		respondStoreError(c, err, "assignment not found")
		return
	}

	response.Success(c, assignment)
}

// UpdateStatus changes only the status label
// PATCH /api/assignments/:id/status
func (h *AssignmentHandler) UpdateStatus(c *gin.Context) {
	var req services.UpdateAssignmentStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	assignment, err := h.assignmentService.UpdateStatus(c.Param("id"), req.Status)
	if err != nil {
		respondStoreError(c, err, "assignment not found")
		return
	}

	response.Success(c, assignment)
}

// Delete permanently removes an assignment. The deleted record's date is
// returned so the client can navigate back to that day's roster.
// DELETE /api/assignments/:id
func (h *AssignmentHandler) Delete(c *gin.Context) {
	assignment, err := h.assignmentService.Delete(c.Param("id"))
	if err != nil {
		respondStoreError(c, err, "assignment not found")
		return
	}

	response.Success(c, gin.H{
		"message": "assignment deleted successfully",
		"date":    assignment.Date,
	})
}

// ListByWorker returns a worker's recent assignment history, split into
// upcoming and past around today
// GET /api/workers/:id/assignments
func (h *AssignmentHandler) ListByWorker(c *gin.Context) {
	today := time.Now().In(h.location).Format(services.DateLayout)

	split, err := h.assignmentService.WorkerHistory(c.Param("id"), today)
	if err != nil {
		respondStoreError(c, err, "assignments not found")
		return
	}

	response.Success(c, split)
}

// ListByProject returns a project's recent assignment history, split into
// upcoming and past around today
// GET /api/projects/:id/assignments
func (h *AssignmentHandler) ListByProject(c *gin.Context) {
	today := time.Now().In(h.location).Format(services.DateLayout)

	split, err := h.assignmentService.ProjectHistory(c.Param("id"), today)
	if err != nil {
		respondStoreError(c, err, "assignments not found")
		return
	}

	response.Success(c, split)
}
