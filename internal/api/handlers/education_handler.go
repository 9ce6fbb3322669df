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

// EducationHandler handles education timeline HTTP requests
type EducationHandler struct {
	education repository.EducationRepository
	logger    *slog.Logger
}

// NewEducationHandler creates a new EducationHandler
func NewEducationHandler(education repository.EducationRepository, logger *slog.Logger) *EducationHandler {
	return &EducationHandler{education: education, logger: logger}
}

// List handles GET /api/education
func (h *EducationHandler) List(c echo.Context) error {
	entries, err := h.education.List(c.Request().Context())
	if err != nil {
		if h.logger != nil {
			h.logger.Error("failed to list education entries", slog.Any("error", err))
		}
		return response.Success(c, []models.Education{})
	}

	return response.Success(c, entries)
}

// Create handles POST /api/admin/education
func (h *EducationHandler) Create(c echo.Context) error {
	var entry models.Education
	if err := c.Bind(&entry); err != nil {
		return response.BadRequest(c, "invalid request body")
	}
	if entry.Institution == "" {
		return response.BadRequest(c, "institution is required")
	}

	entry.ID = 0
	if err := h.education.Create(c.Request().Context(), &entry); err != nil {
		return response.InternalError(c, "failed to create education entry")
	}

	return response.Created(c, entry)
}

// Update handles PUT /api/admin/education/:id
func (h *EducationHandler) Update(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "invalid education ID")
	}

	var entry models.Education
	if err := c.Bind(&entry); err != nil {
		return response.BadRequest(c, "invalid request body")
	}
	entry.ID = uint(id)

	if err := h.education.Update(c.Request().Context(), &entry); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return response.NotFound(c, "education entry not found")
		}
		return response.InternalError(c, "failed to update education entry")
	}

	return response.Success(c, entry)
}

// Delete handles DELETE /api/admin/education/:id
func (h *EducationHandler) Delete(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "invalid education ID")
	}

	if err := h.education.Delete(c.Request().Context(), uint(id)); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return response.NotFound(c, "education entry not found")
		}
		return response.InternalError(c, "failed to delete education entry")
	}

	return response.NoContent(c)
}
