package handlers

import (
	"time"

	"github.com/agora-dev/teko-board/backend/internal/services"
	"github.com/agora-dev/teko-board/backend/pkg/response"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type DashboardHandler struct {
	dashboardService *services.DashboardService
	location         *time.Location
}

func NewDashboardHandler(db *gorm.DB) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: services.NewDashboardService(db),
		location:         tokyoLocation(),
	}
}

// GetStats returns the headline counters for one date, defaulting to today
// GET /api/dashboard/stats
func (h *DashboardHandler) GetStats(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		date = time.Now().In(h.location).Format(services.DateLayout)
	} else if _, err := time.Parse(services.DateLayout, date); err != nil {
		response.BadRequest(c, "date must be YYYY-MM-DD")
		return
	}

	stats, err := h.dashboardService.GetStats(date)
	if err != nil {
		respondStoreError(c, err, "stats not found")
		return
	}

	response.Success(c, stats)
}
