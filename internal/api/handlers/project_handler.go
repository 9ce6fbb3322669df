package handlers

import (
	"errors"
	"log/slog"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/brito-dev/portfolio-backend/internal/api/response"
	"github.com/brito-dev/portfolio-backend/internal/models"
	"github.com/brito-dev/portfolio-backend/internal/repository"
)

// ProjectHandler handles project HTTP requests
type ProjectHandler struct {
	projects repository.ProjectRepository
	logger   *slog.Logger
}

// NewProjectHandler creates a new ProjectHandler
func NewProjectHandler(projects repository.ProjectRepository, logger *slog.Logger) *ProjectHandler {
	return &ProjectHandler{projects: projects, logger: logger}
}

// List handles GET /api/projects. Read failures degrade to an empty list so
// the public site keeps rendering; the cause is logged.
func (h *ProjectHandler) List(c echo.Context) error {
	featuredOnly := c.QueryParam("featured") == "true"

	projects, err := h.projects.List(c.Request().Context(), featuredOnly)
	if err != nil {
		if h.logger != nil {
			h.logger.Error("failed to list projects", slog.Any("error", err))
		}
		return response.Success(c, []models.Project{})
	}

	return response.Success(c, projects)
}

// Create handles POST /api/admin/projects
func (h *ProjectHandler) Create(c echo.Context) error {
	var project models.Project
	if err := c.Bind(&project); err != nil {
		return response.BadRequest(c, "invalid request body")
	}
	if project.Title == "" {
		return response.BadRequest(c, "title is required")
	}

	project.ID = 0
	if err := h.projects.Create(c.Request().Context(), &project); err != nil {
		return response.InternalError(c, "failed to create project")
	}

	return response.Created(c, project)
}

// Update handles PUT /api/admin/projects/:id
func (h *ProjectHandler) Update(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "invalid project ID")
	}

	var project models.Project
	if err := c.Bind(&project); err != nil {
		return response.BadRequest(c, "invalid request body")
	}
	project.ID = uint(id)

	if err := h.projects.Update(c.Request().Context(), &project); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return response.NotFound(c, "project not found")
		}
		return response.InternalError(c, "failed to update project")
	}

	return response.Success(c, project)
}

// Delete handles DELETE /api/admin/projects/:id
func (h *ProjectHandler) Delete(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "invalid project ID")
	}

	if err := h.projects.Delete(c.Request().Context(), uint(id)); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return response.NotFound(c, "project not found")
		}
		return response.InternalError(c, "failed to delete project")
	}

	return response.NoContent(c)
}
