package handlers

import (
	"strings"

	"github.com/agora-dev/teko-board/backend/internal/models"
	"github.com/agora-dev/teko-board/backend/internal/services"
	"github.com/agora-dev/teko-board/backend/pkg/response"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ProjectHandler struct {
	projectService *services.ProjectService
	agoraBaseURL   string
}

func NewProjectHandler(db *gorm.DB, agoraBaseURL string) *ProjectHandler {
	return &ProjectHandler{
		projectService: services.NewProjectService(db),
		agoraBaseURL:   agoraBaseURL,
	}
}

// projectDetail decorates a project with its page URL in the main AGORA app.
type projectDetail struct {
	*models.Project
	AgoraURL string `json:"agora_url,omitempty"`
}

// agoraProjectURL builds the AGORA detail-page link for a project. An empty
// base means AGORA is not configured and no link is emitted.
func agoraProjectURL(base, projectID string) string {
	if base == "" {
		return ""
	}
	return strings.TrimSuffix(base, "/") + "/projects/" + projectID
}

// List returns projects, filterable by status and name
// GET /api/projects
func (h *ProjectHandler) List(c *gin.Context) {
	var req services.ProjectListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	projects, err := h.projectService.List(&req)
	if err != nil {
		respondStoreError(c, err, "projects not found")
		return
	}

	response.Success(c, projects)
}

// ListAssignable returns only projects open for new assignments
// GET /api/projects/assignable
func (h *ProjectHandler) ListAssignable(c *gin.Context) {
	projects, err := h.projectService.ListAssignable()
	if err != nil {
		respondStoreError(c, err, "projects not found")
		return
	}

	response.Success(c, projects)
}

// GetByID returns a project with its client and its AGORA page link
// GET /api/projects/:id
func (h *ProjectHandler) GetByID(c *gin.Context) {
	project, err := h.projectService.GetByID(c.Param("id"))
	if err != nil {
		respondStoreError(c, err, "project not found")
		return
	}

	response.Success(c, projectDetail{
		Project:  project,
		AgoraURL: agoraProjectURL(h.agoraBaseURL, project.ID),
	})
}
