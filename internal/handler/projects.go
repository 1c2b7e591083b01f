package handler

import (
	"context"
	"net/http"

	"mangal/internal/model"

	"github.com/gin-gonic/gin"
)

// ProjectService is the portfolio behaviour the handlers depend on
type ProjectService interface {
	List(ctx context.Context) ([]model.Project, error)
	Create(ctx context.Context, in model.ProjectInput) (*model.Project, error)
	Delete(ctx context.Context, id string) error
}

// StatsService provides dashboard counters
type StatsService interface {
	Get(ctx context.Context) (*model.Stats, error)
}

// ProjectHandler handles portfolio HTTP requests
type ProjectHandler struct {
	projects ProjectService
}

// NewProjectHandler creates a new project handler
func NewProjectHandler(projects ProjectService) *ProjectHandler {
	return &ProjectHandler{projects: projects}
}

// List handles GET /api/v1/projects
func (h *ProjectHandler) List(c *gin.Context) {
	projects, err := h.projects.List(c.Request.Context())
	if err != nil {
		respondError(c, err, msgProjectNotFound)
		return
	}
	c.JSON(http.StatusOK, projects)
}

// Create handles POST /api/v1/projects
func (h *ProjectHandler) Create(c *gin.Context) {
	var in model.ProjectInput
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, err)
		return
	}
	project, err := h.projects.Create(c.Request.Context(), in)
	if err != nil {
		respondError(c, err, msgProjectNotFound)
		return
	}
	c.JSON(http.StatusCreated, project)
}

// Delete handles DELETE /api/v1/projects/:id
func (h *ProjectHandler) Delete(c *gin.Context) {
	if err := h.projects.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err, msgProjectNotFound)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// StatsHandler serves the admin dashboard counters
type StatsHandler struct {
	stats StatsService
}

// NewStatsHandler creates a new stats handler
func NewStatsHandler(stats StatsService) *StatsHandler {
	return &StatsHandler{stats: stats}
}

// Get handles GET /api/v1/admin/stats
func (h *StatsHandler) Get(c *gin.Context) {
	stats, err := h.stats.Get(c.Request.Context())
	if err != nil {
		respondError(c, err, "")
		return
	}
	c.JSON(http.StatusOK, stats)
}
