package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/brito-dev/portfolio-backend/internal/api"
	"github.com/brito-dev/portfolio-backend/internal/config"
	"github.com/brito-dev/portfolio-backend/internal/database"
	"github.com/brito-dev/portfolio-backend/internal/mailer"
	"github.com/brito-dev/portfolio-backend/internal/storage"
	ws "github.com/brito-dev/portfolio-backend/internal/websocket"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel(os.Getenv("LOG_LEVEL")),
	}))
	slog.SetDefault(logger)

	if err := run(logger); err != nil {
		logger.Error("server exited with error", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(logger *slog.Logger) error {
	cfg, err := config.LoadWithValidation()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	cfg.LogConfig(logger)

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer database.Close(db)

	if err := database.Migrate(db); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	uploadStorage, err := storage.NewLocalStorage(cfg.UploadStoragePath, cfg.PublicBaseURL)
	if err != nil {
		return fmt.Errorf("failed to initialize upload storage: %w", err)
	}

	hub := ws.NewHub(logger)
	go hub.Run()

	var sender mailer.Sender
	if cfg.SMTPRelayAddr != "" {
		sender = mailer.NewSMTPSender(cfg.SMTPRelayAddr, cfg.SMTPRelayFrom)
		logger.Info("outbound email via SMTP relay", slog.String("addr", cfg.SMTPRelayAddr))
	} else {
		sender = mailer.NewNoopSender(logger)
		logger.Info("outbound email disabled, using no-op sender")
	}

	e := api.NewRouter(&api.RouterConfig{
		DB:                 db,
		UploadStorage:      uploadStorage,
		Sender:             sender,
		Hub:                hub,
		Logger:             logger,
		OwnerEmail:         cfg.OwnerEmail,
		WebhookVerifyToken: cfg.WebhookVerifyToken,
		AdminAPIKey:        cfg.AdminAPIKey,
		AllowedOrigins:     cfg.Origins(),
		RateLimit:          cfg.RateLimitRequests,
		RateBurst:          cfg.RateLimitBurst,
		UploadDir:          cfg.UploadStoragePath,
	})

	go func() {
		addr := fmt.Sprintf(":%d", cfg.APIPort)
		logger.Info("starting HTTP server", slog.String("addr", addr))
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server stopped", slog.Any("error", err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shut down gracefully: %w", err)
	}

	logger.Info("server stopped")
	return nil
}

func logLevel(s string) slog.Level {
	switch s {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
