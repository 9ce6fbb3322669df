package handlers

import (
	"errors"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/brito-dev/portfolio-backend/internal/api/response"
	apperrors "github.com/brito-dev/portfolio-backend/internal/errors"
	"github.com/brito-dev/portfolio-backend/internal/models"
	"github.com/brito-dev/portfolio-backend/internal/services"
)

// MessageHandler handles contact-form and admin inbox HTTP requests
type MessageHandler struct {
	inbox services.InboxService
}

// NewMessageHandler creates a new MessageHandler
func NewMessageHandler(inbox services.InboxService) *MessageHandler {
	return &MessageHandler{inbox: inbox}
}

// SubmitMessageRequest is the public contact-form payload.
type SubmitMessageRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// MessageWithReplies pairs a message with its conversation for the admin inbox.
type MessageWithReplies struct {
	models.Message
	Replies []models.MessageReply `json:"replies"`
}

// ReplyRequest is the admin reply payload. Recipient and subject are
// optional; they default to the original sender and "Re: <subject>".
type ReplyRequest struct {
	ReplyText      string `json:"reply_text"`
	RecipientEmail string `json:"recipient_email,omitempty"`
	Subject        string `json:"subject,omitempty"`
}

// Submit handles POST /api/messages
func (h *MessageHandler) Submit(c echo.Context) error {
	var req SubmitMessageRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "invalid request body")
	}

	message, err := h.inbox.SubmitMessage(c.Request().Context(), req.Name, req.Email, req.Subject, req.Message)
	if err != nil {
		if apperrors.IsInvalidInput(err) {
			return response.BadRequest(c, err.Error())
		}
		return response.InternalError(c, "failed to store message")
	}

	return response.Created(c, message)
}

// List handles GET /api/admin/messages
func (h *MessageHandler) List(c echo.Context) error {
	ctx := c.Request().Context()

	messages, err := h.inbox.ListMessages(ctx)
	if err != nil {
		return response.InternalError(c, "failed to list messages")
	}

	ids := make([]uint, 0, len(messages))
	for _, m := range messages {
		ids = append(ids, m.ID)
	}

	grouped, err := h.inbox.ListRepliesForMessages(ctx, ids)
	if err != nil {
		return response.InternalError(c, "failed to list replies")
	}

	result := make([]MessageWithReplies, 0, len(messages))
	for _, m := range messages {
		replies := grouped[m.ID]
		if replies == nil {
			replies = []models.MessageReply{}
		}
		result = append(result, MessageWithReplies{Message: m, Replies: replies})
	}

	return response.Success(c, result)
}

// MarkRead handles PATCH /api/admin/messages/:id/read
func (h *MessageHandler) MarkRead(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "invalid message ID")
	}

	if err := h.inbox.MarkRead(c.Request().Context(), uint(id)); err != nil {
		if errors.Is(err, apperrors.ErrMessageNotFound) {
			return response.NotFound(c, "message not found")
		}
		return response.InternalError(c, "failed to mark message as read")
	}

	return response.SuccessWithMessage(c, nil, "message marked as read")
}

// Delete handles DELETE /api/admin/messages/:id
func (h *MessageHandler) Delete(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "invalid message ID")
	}

	if err := h.inbox.DeleteMessage(c.Request().Context(), uint(id)); err != nil {
		if errors.Is(err, apperrors.ErrMessageNotFound) {
			return response.NotFound(c, "message not found")
		}
		return response.InternalError(c, "failed to delete message")
	}

	return response.NoContent(c)
}

// Reply handles POST /api/admin/messages/:id/reply
func (h *MessageHandler) Reply(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "invalid message ID")
	}

	var req ReplyRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "invalid request body")
	}

	reply, err := h.inbox.SendReply(c.Request().Context(), uint(id), req.ReplyText, req.RecipientEmail, req.Subject)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrMessageNotFound):
			return response.NotFound(c, "message not found")
		case apperrors.IsInvalidInput(err):
			return response.BadRequest(c, err.Error())
		default:
			return response.InternalError(c, "failed to send reply")
		}
	}

	return response.Created(c, reply)
}
