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

// ExperienceHandler handles work-history HTTP requests
type ExperienceHandler struct {
	experiences repository.ExperienceRepository
	logger      *slog.Logger
}

// NewExperienceHandler creates a new ExperienceHandler
func NewExperienceHandler(experiences repository.ExperienceRepository, logger *slog.Logger) *ExperienceHandler {
	return &ExperienceHandler{experiences: experiences, logger: logger}
}

// List handles GET /api/experiences
func (h *ExperienceHandler) List(c echo.Context) error {
	experiences, err := h.experiences.List(c.Request().Context())
	if err != nil {
		if h.logger != nil {
			h.logger.Error("failed to list experiences", slog.Any("error", err))
		}
		return response.Success(c, []models.Experience{})
	}

	return response.Success(c, experiences)
}

// Create handles POST /api/admin/experiences
func (h *ExperienceHandler) Create(c echo.Context) error {
	var experience models.Experience
	if err := c.Bind(&experience); err != nil {
		return response.BadRequest(c, "invalid request body")
	}
	if experience.Company == "" || experience.Position == "" {
		return response.BadRequest(c, "company and position are required")
	}

	experience.ID = 0
	if err := h.experiences.Create(c.Request().Context(), &experience); err != nil {
		return response.InternalError(c, "failed to create experience")
	}

	return response.Created(c, experience)
}

// Update handles PUT /api/admin/experiences/:id
func (h *ExperienceHandler) Update(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "invalid experience ID")
	}

	var experience models.Experience
	if err := c.Bind(&experience); err != nil {
		return response.BadRequest(c, "invalid request body")
	}
	experience.ID = uint(id)

	if err := h.experiences.Update(c.Request().Context(), &experience); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return response.NotFound(c, "experience not found")
		}
		return response.InternalError(c, "failed to update experience")
	}

	return response.Success(c, experience)
}

// Delete handles DELETE /api/admin/experiences/:id
func (h *ExperienceHandler) Delete(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "invalid experience ID")
	}

	if err := h.experiences.Delete(c.Request().Context(), uint(id)); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return response.NotFound(c, "experience not found")
		}
		return response.InternalError(c, "failed to delete experience")
	}

	return response.NoContent(c)
}
