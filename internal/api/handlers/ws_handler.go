package handlers

import (
	"log/slog"

	"github.com/labstack/echo/v4"
	gorillaws "github.com/gorilla/websocket"

	ws "github.com/brito-dev/portfolio-backend/internal/websocket"
)

// WSHandler upgrades admin connections into the notification hub
type WSHandler struct {
	hub      *ws.Hub
	upgrader gorillaws.Upgrader
	logger   *slog.Logger
}

// NewWSHandler creates a new WSHandler with origin checking against
// allowedOrigins.
func NewWSHandler(hub *ws.Hub, allowedOrigins []string, logger *slog.Logger) *WSHandler {
	return &WSHandler{
		hub:      hub,
		upgrader: ws.NewSecureUpgrader(allowedOrigins, logger),
		logger:   logger,
	}
}

// Serve handles GET /api/admin/ws
func (h *WSHandler) Serve(c echo.Context) error {
	conn, err := h.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		// Upgrade already wrote the HTTP error response.
		if h.logger != nil {
			h.logger.Warn("websocket upgrade failed",
				slog.String("remote", c.RealIP()),
				slog.Any("error", err),
			)
		}
		return nil
	}

	client := ws.NewClient(h.hub, conn, h.logger)
	h.hub.Register(client)

	go client.WritePump()
	go client.ReadPump()

	return nil
}
