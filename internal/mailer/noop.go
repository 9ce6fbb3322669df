package mailer

import (
	"context"
	"log/slog"
)

// NoopSender is the stub implementation of the outbound seam: it performs
// no delivery and reports success unconditionally. It is the default when
// no SMTP relay is configured.
type NoopSender struct {
	logger *slog.Logger
}

// NewNoopSender creates a NoopSender.
func NewNoopSender(logger *slog.Logger) *NoopSender {
	return &NoopSender{logger: logger}
}

// Send logs the would-be delivery and returns nil.
func (s *NoopSender) Send(_ context.Context, email Email) error {
	if s.logger != nil {
		s.logger.Info("outbound email skipped (no relay configured)",
			slog.String("to", email.To),
			slog.String("subject", email.Subject),
			slog.String("thread_id", email.ThreadID),
		)
	}
	return nil
}
