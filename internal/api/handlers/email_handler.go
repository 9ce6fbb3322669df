package handlers

import (
	"crypto/subtle"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/brito-dev/portfolio-backend/internal/api/response"
	apperrors "github.com/brito-dev/portfolio-backend/internal/errors"
	"github.com/brito-dev/portfolio-backend/internal/inbound"
	"github.com/brito-dev/portfolio-backend/internal/logger"
	"github.com/brito-dev/portfolio-backend/internal/mailer"
	"github.com/brito-dev/portfolio-backend/internal/validator"
)

// maxWebhookBody caps inbound webhook payloads, raw MIME included.
const maxWebhookBody = 10 << 20

// EmailHandler handles webhook ingestion and outbound send requests
type EmailHandler struct {
	ingestor    *inbound.Ingestor
	sender      mailer.Sender
	verifyToken string
	log         *logger.WebhookLogger
}

// NewEmailHandler creates a new EmailHandler
func NewEmailHandler(ingestor *inbound.Ingestor, sender mailer.Sender, verifyToken string, log *logger.WebhookLogger) *EmailHandler {
	return &EmailHandler{
		ingestor:    ingestor,
		sender:      sender,
		verifyToken: verifyToken,
		log:         log,
	}
}

// SendEmailRequest is the outbound send payload.
type SendEmailRequest struct {
	To       string `json:"to"`
	Subject  string `json:"subject"`
	Body     string `json:"body"`
	ThreadID string `json:"threadId,omitempty"`
}

// NotificationRequest wraps the new-message notification payload posted by
// the contact form integration.
type NotificationRequest struct {
	Message struct {
		Email   string `json:"email"`
		Name    string `json:"name"`
		Subject string `json:"subject"`
		Message string `json:"message"`
	} `json:"message"`
}

// Webhook handles POST /api/email/webhook
func (h *EmailHandler) Webhook(c echo.Context) error {
	raw, err := io.ReadAll(io.LimitReader(c.Request().Body, maxWebhookBody))
	if err != nil {
		return response.BadRequest(c, "failed to read request body")
	}

	if h.log != nil {
		h.log.Received(c.RealIP(), raw)
	}

	result, err := h.ingestor.Process(c.Request().Context(), raw)
	if err != nil {
		return response.Error(c, err)
	}

	return response.SuccessWithMessage(c, result, "reply processed")
}

// VerifyWebhook handles GET /api/email/webhook?verify=<token>, the
// handshake some forwarding providers perform before delivering. A GET
// without a token is answered with an informational response.
func (h *EmailHandler) VerifyWebhook(c echo.Context) error {
	token := c.QueryParam("verify")
	if token == "" {
		return c.JSON(http.StatusOK, map[string]string{
			"message": "email webhook endpoint, POST email data to deliver a reply",
		})
	}

	ok := h.verifyToken != "" &&
		subtle.ConstantTimeCompare([]byte(token), []byte(h.verifyToken)) == 1

	if h.log != nil {
		h.log.VerificationAttempt(c.RealIP(), ok)
	}

	if !ok {
		return response.Unauthorized(c, "invalid verification token")
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "verified"})
}

// Send handles POST /api/email/send
func (h *EmailHandler) Send(c echo.Context) error {
	var req SendEmailRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "invalid request body")
	}

	for field, value := range map[string]string{
		"to":      req.To,
		"subject": req.Subject,
		"body":    req.Body,
	} {
		if value == "" {
			return response.Error(c, apperrors.Wrap(apperrors.ErrMissingField, "missing required field: "+field))
		}
	}
	if err := validator.ValidateEmail(req.To); err != nil {
		return response.BadRequest(c, "to: "+err.Error())
	}

	if err := h.sender.Send(c.Request().Context(), mailer.Email{
		To:       req.To,
		Subject:  req.Subject,
		Body:     req.Body,
		ThreadID: req.ThreadID,
	}); err != nil {
		return response.InternalError(c, "failed to send email")
	}

	return response.SuccessWithMessage(c, nil, "email sent")
}

// Notification handles POST /api/email/new-message-notification. Delivery of
// the owner notification happens elsewhere; this endpoint only validates the
// shape so misconfigured integrations fail loudly.
func (h *EmailHandler) Notification(c echo.Context) error {
	var req NotificationRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "invalid request body")
	}

	for field, value := range map[string]string{
		"email":   req.Message.Email,
		"name":    req.Message.Name,
		"subject": req.Message.Subject,
		"message": req.Message.Message,
	} {
		if value == "" {
			return response.Error(c, apperrors.Wrap(apperrors.ErrMissingField, "missing required field: message."+field))
		}
	}

	return response.SuccessWithMessage(c, nil, "notification accepted")
}
