package handlers

import (
	"time"

	"github.com/agora-dev/teko-board/backend/internal/services"
	"github.com/agora-dev/teko-board/backend/pkg/response"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type RosterHandler struct {
	rosterService *services.RosterService
	location      *time.Location
}

func NewRosterHandler(db *gorm.DB) *RosterHandler {
	return &RosterHandler{
		rosterService: services.NewRosterService(db),
		location:      tokyoLocation(),
	}
}

// GetDay returns the full roster view for one date, defaulting to today
// GET /api/roster?date=2025-06-15
func (h *RosterHandler) GetDay(c *gin.Context) {
	today := time.Now().In(h.location).Format(services.DateLayout)

	date := c.Query("date")
	if date == "" {
		date = today
	} else if _, err := time.Parse(services.DateLayout, date); err != nil {
		response.BadRequest(c, "date must be YYYY-MM-DD")
		return
	}

	roster, err := h.rosterService.BuildDay(date, today)
	if err != nil {
		respondStoreError(c, err, "roster not found")
		return
	}

	response.Success(c, roster)
}
