package inbound

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	apperrors "github.com/brito-dev/portfolio-backend/internal/errors"
	"github.com/brito-dev/portfolio-backend/internal/logger"
	"github.com/brito-dev/portfolio-backend/internal/models"
	"github.com/brito-dev/portfolio-backend/internal/repository"
)

// Ingestor appends forwarded inbound emails to their conversations. Safe for
// concurrent use across different threads; duplicate provider deliveries of
// the same email produce duplicate replies (no idempotency key is checked).
type Ingestor struct {
	messages   repository.MessageRepository
	replies    repository.ReplyRepository
	ownerEmail string
	log        *logger.WebhookLogger
}

// NewIngestor creates an Ingestor. ownerEmail is the fixed sender address
// recorded on every ingested reply.
func NewIngestor(messages repository.MessageRepository, replies repository.ReplyRepository, ownerEmail string, log *logger.WebhookLogger) *Ingestor {
	return &Ingestor{
		messages:   messages,
		replies:    replies,
		ownerEmail: ownerEmail,
		log:        log,
	}
}

// Result describes a successful ingestion.
type Result struct {
	ThreadID  string `json:"thread_id"`
	MessageID uint   `json:"message_id"`
}

// Process normalizes a raw webhook payload, resolves its thread and stores
// the reply. Validation happens before any store access. On any failure the
// email is dropped: no retry, no queue, no partial write.
func (i *Ingestor) Process(ctx context.Context, raw []byte) (*Result, error) {
	email, err := Normalize(raw)
	if err != nil {
		i.dropped("malformed payload", raw, nil)
		return nil, apperrors.Wrap(apperrors.ErrInvalidPayload, err.Error())
	}

	if err := Validate(email); err != nil {
		i.dropped(err.Error(), raw, email)
		return nil, err
	}

	threadID := ExtractThreadID(email)
	if threadID == "" {
		i.dropped("no thread id extracted", raw, email)
		return nil, apperrors.ErrThreadNotFound
	}

	message, err := i.messages.GetByThreadID(ctx, threadID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			i.dropped(fmt.Sprintf("no message with thread id %s", threadID), raw, email)
			return nil, apperrors.ErrMessageNotFound
		}
		i.dropped("store lookup failed", raw, email)
		return nil, apperrors.Wrap(err, "failed to look up message")
	}

	replyText := strings.TrimSpace(email.Text)
	if replyText == "" {
		replyText = StripHTML(email.HTML)
	}
	if replyText == "" {
		i.dropped("no reply text in email", raw, email)
		return nil, apperrors.Wrap(apperrors.ErrInvalidPayload, "no reply text found in email")
	}

	reply := &models.MessageReply{
		MessageID:      message.ID,
		ReplyText:      replyText,
		SenderEmail:    i.ownerEmail,
		RecipientEmail: message.Email,
		Subject:        "Re: " + message.Subject,
		ThreadID:       message.ThreadID,
	}
	if err := i.replies.Create(ctx, reply); err != nil {
		i.dropped("failed to store reply", raw, email)
		return nil, apperrors.Wrap(err, "failed to store reply")
	}

	// A reply landing in the conversation implies the owner has seen it.
	if err := i.messages.MarkAsRead(ctx, message.ID); err != nil && i.log != nil {
		i.log.GetLogger().Warn("failed to mark message read after webhook reply",
			"message_id", message.ID, "error", err)
	}

	if i.log != nil {
		i.log.Processed(threadID, message.ID, marshalNormalized(email))
	}
	return &Result{ThreadID: threadID, MessageID: message.ID}, nil
}

// Validate rejects payloads without usable content before any store access.
func Validate(email *InboundEmail) error {
	if email.Text == "" && email.HTML == "" {
		return apperrors.Wrap(apperrors.ErrInvalidPayload, "missing text and html content")
	}
	if strings.TrimSpace(email.Subject) == "" {
		return apperrors.Wrap(apperrors.ErrInvalidPayload, "missing subject")
	}
	return nil
}

func (i *Ingestor) dropped(reason string, raw []byte, email *InboundEmail) {
	if i.log == nil {
		return
	}
	i.log.Dropped(reason, raw, marshalNormalized(email))
}

func marshalNormalized(email *InboundEmail) string {
	if email == nil {
		return ""
	}
	b, err := json.Marshal(email)
	if err != nil {
		return ""
	}
	return string(b)
}
