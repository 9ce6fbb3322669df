// Package logger provides structured logging helpers for webhook and
// operational events.
package logger

import (
	"log/slog"
	"os"
	"time"
)

// WebhookLogger records every webhook ingestion attempt, success or failure,
// together with the raw and normalized payloads. No retry state is kept; the
// log is the only record of dropped emails.
type WebhookLogger struct {
	logger *slog.Logger
}

// NewWebhookLogger creates a WebhookLogger with JSON output.
func NewWebhookLogger() *WebhookLogger {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	return &WebhookLogger{logger: slog.New(handler)}
}

// NewWebhookLoggerWithHandler creates a WebhookLogger with a custom handler.
func NewWebhookLoggerWithHandler(handler slog.Handler) *WebhookLogger {
	return &WebhookLogger{logger: slog.New(handler)}
}

// Received logs an incoming webhook payload before processing.
func (w *WebhookLogger) Received(ip string, rawPayload []byte) {
	w.logger.Info("webhook_received",
		slog.String("event_type", "webhook_received"),
		slog.String("ip", ip),
		slog.Int("payload_bytes", len(rawPayload)),
		slog.String("raw_payload", truncate(string(rawPayload), 4096)),
		slog.Time("timestamp", time.Now().UTC()),
	)
}

// Processed logs a successfully ingested reply.
func (w *WebhookLogger) Processed(threadID string, messageID uint, normalized string) {
	w.logger.Info("webhook_processed",
		slog.String("event_type", "webhook_processed"),
		slog.String("thread_id", threadID),
		slog.Uint64("message_id", uint64(messageID)),
		slog.String("normalized_payload", truncate(normalized, 4096)),
		slog.Time("timestamp", time.Now().UTC()),
	)
}

// Dropped logs a webhook that failed processing. The email is not retried.
func (w *WebhookLogger) Dropped(reason string, rawPayload []byte, normalized string) {
	w.logger.Warn("webhook_dropped",
		slog.String("event_type", "webhook_dropped"),
		slog.String("reason", reason),
		slog.String("raw_payload", truncate(string(rawPayload), 4096)),
		slog.String("normalized_payload", truncate(normalized, 4096)),
		slog.Time("timestamp", time.Now().UTC()),
	)
}

// VerificationAttempt logs a provider handshake attempt on the webhook.
func (w *WebhookLogger) VerificationAttempt(ip string, ok bool) {
	w.logger.Info("webhook_verification",
		slog.String("event_type", "webhook_verification"),
		slog.String("ip", ip),
		slog.Bool("verified", ok),
		slog.Time("timestamp", time.Now().UTC()),
	)
}

// GetLogger returns the underlying slog.Logger.
func (w *WebhookLogger) GetLogger() *slog.Logger {
	return w.logger
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}
