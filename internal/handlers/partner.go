package handlers

import (
	"github.com/agora-dev/teko-board/backend/internal/services"
	"github.com/agora-dev/teko-board/backend/pkg/response"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type PartnerHandler struct {
	partnerService *services.PartnerService
}

func NewPartnerHandler(db *gorm.DB) *PartnerHandler {
	return &PartnerHandler{
		partnerService: services.NewPartnerService(db),
	}
}

// List returns active partner companies
// GET /api/partners
func (h *PartnerHandler) List(c *gin.Context) {
	partners, err := h.partnerService.ListActive()
	if err != nil {
		respondStoreError(c, err, "partners not found")
		return
	}

	response.Success(c, partners)
}

// GetByID returns one partner company
// GET /api/partners/:id
func (h *PartnerHandler) GetByID(c *gin.Context) {
	partner, err := h.partnerService.GetByID(c.Param("id"))
	if err != nil {
		respondStoreError(c, err, "partner not found")
		return
	}

	response.Success(c, partner)
}
