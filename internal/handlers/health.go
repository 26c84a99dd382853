package handlers

import (
	"time"

	"github.com/agora-dev/teko-board/backend/internal/models"
	"github.com/agora-dev/teko-board/backend/internal/services"
	"github.com/gin-gonic/gin"
)

// HealthHandler reports service and record-store health.
type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// CheckHealth returns the health status of all subsystems.
func (h *HealthHandler) CheckHealth(c *gin.Context) {
	overall := "healthy"

	// Record store check
	dbStatus := "ok"
	sqlDB, err := models.GetDB().DB()
	if err != nil {
		dbStatus = "error: " + err.Error()
		overall = "unhealthy"
	} else if err := sqlDB.Ping(); err != nil {
		dbStatus = "error: " + err.Error()
		overall = "unhealthy"
	}

	// Today's scheduled assignment count
	var todayCount int64
	today := time.Now().Format(services.DateLayout)
	models.GetDB().Model(&models.Assignment{}).
		Where("date = ?", today).
		Count(&todayCount)

	c.JSON(200, gin.H{
		"status":  overall,
		"service": "teko-board",
		"components": gin.H{
			"database":          dbStatus,
			"today_assignments": todayCount,
		},
	})
}
