package handlers

import (
	"errors"
	"log/slog"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/brito-dev/portfolio-backend/internal/api/response"
	"github.com/brito-dev/portfolio-backend/internal/models"
	"github.com/brito-dev/portfolio-backend/internal/repository"
	"github.com/brito-dev/portfolio-backend/internal/validator"
)

// SkillHandler handles skill HTTP requests
type SkillHandler struct {
	skills repository.SkillRepository
	logger *slog.Logger
}

// NewSkillHandler creates a new SkillHandler
func NewSkillHandler(skills repository.SkillRepository, logger *slog.Logger) *SkillHandler {
	return &SkillHandler{skills: skills, logger: logger}
}

// List handles GET /api/skills
func (h *SkillHandler) List(c echo.Context) error {
	skills, err := h.skills.List(c.Request().Context())
	if err != nil {
		if h.logger != nil {
			h.logger.Error("failed to list skills", slog.Any("error", err))
		}
		return response.Success(c, []models.Skill{})
	}

	return response.Success(c, skills)
}

// Create handles POST /api/admin/skills
func (h *SkillHandler) Create(c echo.Context) error {
	var skill models.Skill
	if err := c.Bind(&skill); err != nil {
		return response.BadRequest(c, "invalid request body")
	}
	if skill.Name == "" {
		return response.BadRequest(c, "name is required")
	}
	skill.Proficiency = validator.ValidateProficiency(skill.Proficiency)

	skill.ID = 0
	if err := h.skills.Create(c.Request().Context(), &skill); err != nil {
		return response.InternalError(c, "failed to create skill")
	}

	return response.Created(c, skill)
}

// Update handles PUT /api/admin/skills/:id
func (h *SkillHandler) Update(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "invalid skill ID")
	}

	var skill models.Skill
	if err := c.Bind(&skill); err != nil {
		return response.BadRequest(c, "invalid request body")
	}
	skill.ID = uint(id)
	skill.Proficiency = validator.ValidateProficiency(skill.Proficiency)

	if err := h.skills.Update(c.Request().Context(), &skill); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return response.NotFound(c, "skill not found")
		}
		return response.InternalError(c, "failed to update skill")
	}

	return response.Success(c, skill)
}

// Delete handles DELETE /api/admin/skills/:id
func (h *SkillHandler) Delete(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "invalid skill ID")
	}

	if err := h.skills.Delete(c.Request().Context(), uint(id)); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return response.NotFound(c, "skill not found")
		}
		return response.InternalError(c, "failed to delete skill")
	}

	return response.NoContent(c)
}
