package handlers

import (
	"github.com/agora-dev/teko-board/backend/internal/services"
	"github.com/agora-dev/teko-board/backend/pkg/response"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type WorkerHandler struct {
	workerService *services.WorkerService
}

func NewWorkerHandler(db *gorm.DB) *WorkerHandler {
	return &WorkerHandler{
		workerService: services.NewWorkerService(db),
	}
}

// List returns workers, filterable by type and active flag
// GET /api/workers
func (h *WorkerHandler) List(c *gin.Context) {
	var req services.WorkerListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	workers, err := h.workerService.List(&req)
	if err != nil {
		respondStoreError(c, err, "workers not found")
		return
	}

	response.Success(c, workers)
}

// GetByID returns a worker with its linked user and partner
// GET /api/workers/:id
func (h *WorkerHandler) GetByID(c *gin.Context) {
	worker, err := h.workerService.GetByID(c.Param("id"))
	if err != nil {
		respondStoreError(c, err, "worker not found")
		return
	}

	response.Success(c, worker)
}

// Create registers a new worker and its login account
// POST /api/workers
func (h *WorkerHandler) Create(c *gin.Context) {
	var req services.CreateWorkerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	worker, err := h.workerService.Create(&req)
	if err != nil {
		respondStoreError(c, err, "worker not found")
		return
	}

	response.Created(c, worker)
}
