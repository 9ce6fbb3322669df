package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	apperrors "github.com/brito-dev/portfolio-backend/internal/errors"
	"github.com/brito-dev/portfolio-backend/internal/mailer"
	"github.com/brito-dev/portfolio-backend/internal/models"
	"github.com/brito-dev/portfolio-backend/internal/repository"
	"github.com/brito-dev/portfolio-backend/internal/validator"
)

// Notifier receives new-message events for real-time admin notification.
type Notifier interface {
	NotifyNewMessage(message *models.Message)
}

// InboxService defines the interface for the message inbox: listing
// conversations, flipping read state, deleting and replying.
type InboxService interface {
	// SubmitMessage stores a public contact-form submission, assigning a
	// fresh thread id, and fires a best-effort new-message notification.
	SubmitMessage(ctx context.Context, name, email, subject, body string) (*models.Message, error)

	// ListMessages returns all messages ordered by created_at descending.
	ListMessages(ctx context.Context) ([]models.Message, error)

	// ListRepliesForMessages returns replies for the given message ids,
	// grouped by message id and ordered by sent_at ascending.
	ListRepliesForMessages(ctx context.Context, ids []uint) (map[uint][]models.MessageReply, error)

	// MarkRead flips a message to read. Idempotent.
	MarkRead(ctx context.Context, id uint) error

	// DeleteMessage removes a message and all of its replies. Replies go
	// first; if their deletion fails the message survives.
	DeleteMessage(ctx context.Context, id uint) error

	// SendReply persists a reply, attempts delivery through the outbound
	// seam and marks the parent message read. Persistence precedes the send
	// attempt, so a reply is never lost to a delivery failure.
	SendReply(ctx context.Context, messageID uint, text, recipientEmail, subject string) (*models.MessageReply, error)
}

// inboxService implements InboxService
type inboxService struct {
	messages   repository.MessageRepository
	replies    repository.ReplyRepository
	sender     mailer.Sender
	notifier   Notifier
	ownerEmail string
	logger     *slog.Logger
}

// NewInboxService creates a new InboxService instance. notifier may be nil.
func NewInboxService(messages repository.MessageRepository, replies repository.ReplyRepository, sender mailer.Sender, notifier Notifier, ownerEmail string, logger *slog.Logger) InboxService {
	return &inboxService{
		messages:   messages,
		replies:    replies,
		sender:     sender,
		notifier:   notifier,
		ownerEmail: ownerEmail,
		logger:     logger,
	}
}

// SubmitMessage stores a contact-form submission
func (s *inboxService) SubmitMessage(ctx context.Context, name, email, subject, body string) (*models.Message, error) {
	if err := validator.ValidateRequired(name, validator.MaxNameLength); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInvalidInput, "name: "+err.Error())
	}
	if err := validator.ValidateEmail(email); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInvalidInput, "email: "+err.Error())
	}
	if err := validator.ValidateRequired(subject, validator.MaxSubjectLength); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInvalidInput, "subject: "+err.Error())
	}
	if err := validator.ValidateRequired(body, validator.MaxBodyLength); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInvalidInput, "message: "+err.Error())
	}

	message := &models.Message{
		Name:    strings.TrimSpace(name),
		Email:   strings.TrimSpace(email),
		Subject: strings.TrimSpace(subject),
		Body:    body,
		Read:    false,
	}
	if err := s.messages.Create(ctx, message); err != nil {
		return nil, err
	}

	// Best effort: a lost notification never fails the submission.
	if s.notifier != nil {
		s.notifier.NotifyNewMessage(message)
	}

	return message, nil
}

// ListMessages returns all messages, newest first
func (s *inboxService) ListMessages(ctx context.Context) ([]models.Message, error) {
	return s.messages.List(ctx)
}

// ListRepliesForMessages returns grouped replies
func (s *inboxService) ListRepliesForMessages(ctx context.Context, ids []uint) (map[uint][]models.MessageReply, error) {
	return s.replies.ListByMessageIDs(ctx, ids)
}

// MarkRead flips a message to read
func (s *inboxService) MarkRead(ctx context.Context, id uint) error {
	if err := s.messages.MarkAsRead(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperrors.ErrMessageNotFound
		}
		return err
	}
	return nil
}

// DeleteMessage removes a message and its replies
func (s *inboxService) DeleteMessage(ctx context.Context, id uint) error {
	if err := s.messages.DeleteWithReplies(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperrors.ErrMessageNotFound
		}
		return err
	}
	return nil
}

// SendReply persists, then delivers, then marks read
func (s *inboxService) SendReply(ctx context.Context, messageID uint, text, recipientEmail, subject string) (*models.MessageReply, error) {
	if strings.TrimSpace(text) == "" {
		return nil, apperrors.Wrap(apperrors.ErrInvalidInput, "reply text cannot be empty")
	}

	message, err := s.messages.GetByID(ctx, messageID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.ErrMessageNotFound
		}
		return nil, err
	}

	if recipientEmail == "" {
		recipientEmail = message.Email
	}
	if subject == "" {
		subject = "Re: " + message.Subject
	}

	reply := &models.MessageReply{
		MessageID:      message.ID,
		ReplyText:      text,
		SenderEmail:    s.ownerEmail,
		RecipientEmail: recipientEmail,
		Subject:        subject,
		ThreadID:       message.ThreadID,
	}
	if err := s.replies.Create(ctx, reply); err != nil {
		return nil, fmt.Errorf("failed to persist reply: %w", err)
	}

	// Record intent, best-effort deliver: the reply above stays persisted
	// whatever happens to the send.
	if err := s.sender.Send(ctx, mailer.Email{
		To:       recipientEmail,
		Subject:  subject,
		Body:     text,
		ThreadID: message.ThreadID,
	}); err != nil && s.logger != nil {
		s.logger.Warn("outbound delivery failed, reply kept",
			slog.Uint64("message_id", uint64(message.ID)),
			slog.String("recipient", recipientEmail),
			slog.Any("error", err),
		)
	}

	if err := s.messages.MarkAsRead(ctx, message.ID); err != nil && s.logger != nil {
		s.logger.Warn("failed to mark message read after reply",
			slog.Uint64("message_id", uint64(message.ID)),
			slog.Any("error", err),
		)
	}

	return reply, nil
}
