package handlers

import (
	"errors"
	"log/slog"

	"github.com/labstack/echo/v4"

	"github.com/brito-dev/portfolio-backend/internal/api/response"
	"github.com/brito-dev/portfolio-backend/internal/models"
	"github.com/brito-dev/portfolio-backend/internal/repository"
)

// ProfileHandler handles the singleton profile sections: about, home hero
// and contact info. Writes are last-write-wins upserts.
type ProfileHandler struct {
	profile repository.ProfileRepository
	logger  *slog.Logger
}

// NewProfileHandler creates a new ProfileHandler
func NewProfileHandler(profile repository.ProfileRepository, logger *slog.Logger) *ProfileHandler {
	return &ProfileHandler{profile: profile, logger: logger}
}

// GetAbout handles GET /api/about. A missing or unreadable record degrades
// to an empty section so the public page still renders.
func (h *ProfileHandler) GetAbout(c echo.Context) error {
	about, err := h.profile.GetAbout(c.Request().Context())
	if err != nil {
		h.logRead("about", err)
		return response.Success(c, models.AboutMe{})
	}

	return response.Success(c, about)
}

// UpdateAbout handles PUT /api/admin/about
func (h *ProfileHandler) UpdateAbout(c echo.Context) error {
	var about models.AboutMe
	if err := c.Bind(&about); err != nil {
		return response.BadRequest(c, "invalid request body")
	}

	if err := h.profile.UpsertAbout(c.Request().Context(), &about); err != nil {
		return response.InternalError(c, "failed to update about section")
	}

	return response.Success(c, about)
}

// GetHome handles GET /api/home
func (h *ProfileHandler) GetHome(c echo.Context) error {
	home, err := h.profile.GetHome(c.Request().Context())
	if err != nil {
		h.logRead("home", err)
		return response.Success(c, models.HomeContent{})
	}

	return response.Success(c, home)
}

// UpdateHome handles PUT /api/admin/home
func (h *ProfileHandler) UpdateHome(c echo.Context) error {
	var home models.HomeContent
	if err := c.Bind(&home); err != nil {
		return response.BadRequest(c, "invalid request body")
	}

	if err := h.profile.UpsertHome(c.Request().Context(), &home); err != nil {
		return response.InternalError(c, "failed to update home section")
	}

	return response.Success(c, home)
}

// GetContactInfo handles GET /api/contact-info
func (h *ProfileHandler) GetContactInfo(c echo.Context) error {
	info, err := h.profile.GetContactInfo(c.Request().Context())
	if err != nil {
		h.logRead("contact_info", err)
		return response.Success(c, models.ContactInfo{})
	}

	return response.Success(c, info)
}

// UpdateContactInfo handles PUT /api/admin/contact-info
func (h *ProfileHandler) UpdateContactInfo(c echo.Context) error {
	var info models.ContactInfo
	if err := c.Bind(&info); err != nil {
		return response.BadRequest(c, "invalid request body")
	}

	if err := h.profile.UpsertContactInfo(c.Request().Context(), &info); err != nil {
		return response.InternalError(c, "failed to update contact info")
	}

	return response.Success(c, info)
}

// logRead records degraded public reads. A missing singleton row is the
// normal state on a fresh install, not worth an error entry.
func (h *ProfileHandler) logRead(section string, err error) {
	if h.logger == nil || errors.Is(err, repository.ErrNotFound) {
		return
	}
	h.logger.Error("profile read degraded to empty section",
		slog.String("section", section),
		slog.Any("error", err),
	)
}
