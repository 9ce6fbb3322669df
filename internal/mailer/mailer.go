// Package mailer defines the outbound email seam. The inbox never depends
// on a concrete delivery mechanism; callers inject a Sender so real delivery
// can be substituted without touching them.
package mailer

import (
	"context"
	"fmt"
	"strings"
)

// Email is one outbound message.
type Email struct {
	To       string
	Subject  string
	Body     string
	ThreadID string
}

// Sender dispatches outbound email. Implementations are best-effort: the
// inbox persists replies before invoking Send, and a send failure never
// undoes persistence.
type Sender interface {
	Send(ctx context.Context, email Email) error
}

// SubjectWithThread embeds the bracketed thread token into an outgoing
// subject so inbound replies can be matched back to their conversation.
// Subjects already carrying the token are returned unchanged.
func SubjectWithThread(subject, threadID string) string {
	if threadID == "" || strings.Contains(subject, "["+threadID+"]") {
		return subject
	}
	return fmt.Sprintf("%s [%s]", subject, threadID)
}
