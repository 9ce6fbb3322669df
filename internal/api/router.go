// Package api wires repositories, services and handlers into the HTTP
// router.
package api

import (
	"log/slog"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/brito-dev/portfolio-backend/internal/api/handlers"
	"github.com/brito-dev/portfolio-backend/internal/api/middleware"
	"github.com/brito-dev/portfolio-backend/internal/inbound"
	"github.com/brito-dev/portfolio-backend/internal/logger"
	"github.com/brito-dev/portfolio-backend/internal/mailer"
	"github.com/brito-dev/portfolio-backend/internal/repository"
	"github.com/brito-dev/portfolio-backend/internal/services"
	"github.com/brito-dev/portfolio-backend/internal/storage"
	ws "github.com/brito-dev/portfolio-backend/internal/websocket"
)

// RouterConfig holds dependencies for the router
type RouterConfig struct {
	DB            *gorm.DB
	UploadStorage storage.UploadStorage
	Sender        mailer.Sender
	Hub           *ws.Hub
	Logger        *slog.Logger

	OwnerEmail         string
	WebhookVerifyToken string

	// Security configuration
	AdminAPIKey    string   // bearer key for the admin group (empty = disabled)
	AllowedOrigins []string // allowed CORS / websocket origins
	RateLimit      float64  // requests per second per client IP
	RateBurst      int

	// UploadDir, when non-empty, is served statically under /uploads.
	UploadDir string
}

// NewRouter creates and configures the Echo router with all routes
func NewRouter(cfg *RouterConfig) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.Recover())
	e.Use(middleware.SecureHeaders())
	e.Use(middleware.SecureCORS(cfg.AllowedOrigins))
	e.Use(middleware.RateLimiter(cfg.RateLimit, cfg.RateBurst, cfg.Logger))
	if cfg.Logger != nil {
		e.Use(middleware.RequestLogger(cfg.Logger))
	}

	// Repositories
	messageRepo := repository.NewMessageRepository(cfg.DB)
	replyRepo := repository.NewReplyRepository(cfg.DB)
	projectRepo := repository.NewProjectRepository(cfg.DB)
	experienceRepo := repository.NewExperienceRepository(cfg.DB)
	skillRepo := repository.NewSkillRepository(cfg.DB)
	educationRepo := repository.NewEducationRepository(cfg.DB)
	profileRepo := repository.NewProfileRepository(cfg.DB)

	// Services
	var notifier services.Notifier
	if cfg.Hub != nil {
		notifier = cfg.Hub
	}
	inbox := services.NewInboxService(messageRepo, replyRepo, cfg.Sender, notifier, cfg.OwnerEmail, cfg.Logger)

	webhookLog := logger.NewWebhookLogger()
	ingestor := inbound.NewIngestor(messageRepo, replyRepo, cfg.OwnerEmail, webhookLog)

	// Handlers
	healthHandler := handlers.NewHealthHandler(cfg.DB)
	messageHandler := handlers.NewMessageHandler(inbox)
	emailHandler := handlers.NewEmailHandler(ingestor, cfg.Sender, cfg.WebhookVerifyToken, webhookLog)
	projectHandler := handlers.NewProjectHandler(projectRepo, cfg.Logger)
	experienceHandler := handlers.NewExperienceHandler(experienceRepo, cfg.Logger)
	skillHandler := handlers.NewSkillHandler(skillRepo, cfg.Logger)
	educationHandler := handlers.NewEducationHandler(educationRepo, cfg.Logger)
	profileHandler := handlers.NewProfileHandler(profileRepo, cfg.Logger)
	uploadHandler := handlers.NewUploadHandler(cfg.UploadStorage)

	// Health routes (no auth required)
	e.GET("/health", healthHandler.Health)
	e.GET("/ready", healthHandler.Ready)

	// Stored uploads resolve through their public URLs
	if cfg.UploadDir != "" {
		e.Static("/uploads", cfg.UploadDir)
	}

	api := e.Group("/api")

	// Public content
	api.GET("/projects", projectHandler.List)
	api.GET("/experiences", experienceHandler.List)
	api.GET("/skills", skillHandler.List)
	api.GET("/education", educationHandler.List)
	api.GET("/about", profileHandler.GetAbout)
	api.GET("/home", profileHandler.GetHome)
	api.GET("/contact-info", profileHandler.GetContactInfo)

	// Public contact form
	api.POST("/messages", messageHandler.Submit)

	// Email webhook and send seam
	email := api.Group("/email")
	email.POST("/webhook", emailHandler.Webhook)
	email.GET("/webhook", emailHandler.VerifyWebhook)
	email.POST("/send", emailHandler.Send)
	email.POST("/new-message-notification", emailHandler.Notification)

	// Admin group behind bearer auth
	admin := api.Group("/admin")
	admin.Use(middleware.APIKeyAuth(cfg.AdminAPIKey, cfg.Logger))

	admin.GET("/messages", messageHandler.List)
	admin.PATCH("/messages/:id/read", messageHandler.MarkRead)
	admin.DELETE("/messages/:id", messageHandler.Delete)
	admin.POST("/messages/:id/reply", messageHandler.Reply)

	admin.POST("/projects", projectHandler.Create)
	admin.PUT("/projects/:id", projectHandler.Update)
	admin.DELETE("/projects/:id", projectHandler.Delete)

	admin.POST("/experiences", experienceHandler.Create)
	admin.PUT("/experiences/:id", experienceHandler.Update)
	admin.DELETE("/experiences/:id", experienceHandler.Delete)

	admin.POST("/skills", skillHandler.Create)
	admin.PUT("/skills/:id", skillHandler.Update)
	admin.DELETE("/skills/:id", skillHandler.Delete)

	admin.POST("/education", educationHandler.Create)
	admin.PUT("/education/:id", educationHandler.Update)
	admin.DELETE("/education/:id", educationHandler.Delete)

	admin.PUT("/about", profileHandler.UpdateAbout)
	admin.PUT("/home", profileHandler.UpdateHome)
	admin.PUT("/contact-info", profileHandler.UpdateContactInfo)

	admin.POST("/uploads/:bucket", uploadHandler.Upload)

	if cfg.Hub != nil {
		wsHandler := handlers.NewWSHandler(cfg.Hub, cfg.AllowedOrigins, cfg.Logger)
		admin.GET("/ws", wsHandler.Serve)
	}

	return e
}
