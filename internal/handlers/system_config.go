package handlers

import (
	"strings"

	"github.com/agora-dev/teko-board/backend/internal/services"
	"github.com/agora-dev/teko-board/backend/pkg/response"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type SystemConfigHandler struct {
	configService *services.SystemConfigService
}

func NewSystemConfigHandler(db *gorm.DB) *SystemConfigHandler {
	return &SystemConfigHandler{
		configService: services.NewSystemConfigService(db),
	}
}

// GetByGroup returns the config entries of one group
// GET /api/system/config?group=ldap
func (h *SystemConfigHandler) GetByGroup(c *gin.Context) {
	group := c.DefaultQuery("group", "system")

	configs, err := h.configService.GetByGroup(group)
	if err != nil {
		response.ServerError(c, err.Error())
		return
	}

	// Never return stored credentials
	for i := range configs {
		if strings.Contains(configs[i].Key, "password") && configs[i].Value != "" {
			configs[i].Value = "***"
		}
	}

	response.Success(c, configs)
}

type setConfigRequest struct {
	Key   string `json:"key" binding:"required"`
	Value string `json:"value"`
}

// Set creates or updates one config entry
// PUT /api/system/config
func (h *SystemConfigHandler) Set(c *gin.Context) {
	var req setConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := h.configService.Set(req.Key, req.Value); err != nil {
		response.ServerError(c, err.Error())
		return
	}

	response.Success(c, gin.H{"key": req.Key})
}
