package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/brito-dev/portfolio-backend/internal/inbound"
	"github.com/brito-dev/portfolio-backend/internal/models"
	"github.com/brito-dev/portfolio-backend/internal/repository"
	"github.com/brito-dev/portfolio-backend/tests/mocks"
)

type emailHandlerFixture struct {
	handler  *EmailHandler
	messages *mocks.MockMessageRepository
	replies  *mocks.MockReplyRepository
	sender   *mocks.MockSender
}

func newEmailHandlerFixture(verifyToken string) *emailHandlerFixture {
	f := &emailHandlerFixture{
		messages: new(mocks.MockMessageRepository),
		replies:  new(mocks.MockReplyRepository),
		sender:   new(mocks.MockSender),
	}
	ingestor := inbound.NewIngestor(f.messages, f.replies, "owner@example.com", nil)
	f.handler = NewEmailHandler(ingestor, f.sender, verifyToken, nil)
	return f
}

// ==================== Webhook ====================

func TestEmailHandler_Webhook_Processed(t *testing.T) {
	f := newEmailHandlerFixture("")
	parent := &models.Message{ID: 4, Email: "visitor@example.com", Subject: "Hello", ThreadID: "thread_4_d"}

	f.messages.On("GetByThreadID", mock.Anything, "thread_4_d").Return(parent, nil)
	f.replies.On("Create", mock.Anything, mock.Anything).Return(nil)
	f.messages.On("MarkAsRead", mock.Anything, parent.ID).Return(nil)

	e := echo.New()
	req, rec := jsonRequest(http.MethodPost, "/api/email/webhook",
		`{"text":"Thanks!","subject":"Re: Hello [thread_4_d]"}`)
	c := e.NewContext(req, rec)

	require.NoError(t, f.handler.Webhook(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"thread_id":"thread_4_d"`)
}

func TestEmailHandler_Webhook_InvalidPayload(t *testing.T) {
	f := newEmailHandlerFixture("")

	e := echo.New()
	req, rec := jsonRequest(http.MethodPost, "/api/email/webhook", `{"subject":"no content"}`)
	c := e.NewContext(req, rec)

	require.NoError(t, f.handler.Webhook(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_PAYLOAD")
}

func TestEmailHandler_Webhook_NoThreadToken(t *testing.T) {
	f := newEmailHandlerFixture("")

	e := echo.New()
	req, rec := jsonRequest(http.MethodPost, "/api/email/webhook",
		`{"text":"hi","subject":"Re: Hello"}`)
	c := e.NewContext(req, rec)

	require.NoError(t, f.handler.Webhook(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "THREAD_NOT_FOUND")
}

func TestEmailHandler_Webhook_UnknownThread(t *testing.T) {
	f := newEmailHandlerFixture("")

	f.messages.On("GetByThreadID", mock.Anything, "thread_9_z").Return(nil, repository.ErrNotFound)

	e := echo.New()
	req, rec := jsonRequest(http.MethodPost, "/api/email/webhook",
		`{"text":"hi","subject":"Re: Hello [thread_9_z]"}`)
	c := e.NewContext(req, rec)

	require.NoError(t, f.handler.Webhook(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

// ==================== Verification handshake ====================

func TestEmailHandler_VerifyWebhook_ValidToken(t *testing.T) {
	f := newEmailHandlerFixture("s3cret")

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/email/webhook?verify=s3cret", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, f.handler.VerifyWebhook(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"verified"`)
}

func TestEmailHandler_VerifyWebhook_WrongToken(t *testing.T) {
	f := newEmailHandlerFixture("s3cret")

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/email/webhook?verify=wrong", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, f.handler.VerifyWebhook(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestEmailHandler_VerifyWebhook_NoTokenConfigured(t *testing.T) {
	f := newEmailHandlerFixture("")

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/email/webhook?verify=anything", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	// an unset secret never verifies
	require.NoError(t, f.handler.VerifyWebhook(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestEmailHandler_VerifyWebhook_NoParamIsInformational(t *testing.T) {
	f := newEmailHandlerFixture("s3cret")

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/email/webhook", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, f.handler.VerifyWebhook(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "verified")
}

// ==================== Send ====================

func TestEmailHandler_Send_Success(t *testing.T) {
	f := newEmailHandlerFixture("")

	f.sender.On("Send", mock.Anything, mock.Anything).Return(nil)

	e := echo.New()
	req, rec := jsonRequest(http.MethodPost, "/api/email/send",
		`{"to":"visitor@example.com","subject":"Hello","body":"Hi"}`)
	c := e.NewContext(req, rec)

	require.NoError(t, f.handler.Send(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	f.sender.AssertExpectations(t)
}

func TestEmailHandler_Send_MissingFields(t *testing.T) {
	tests := []struct {
		name    string
		payload string
	}{
		{"missing to", `{"subject":"s","body":"b"}`},
		{"missing subject", `{"to":"v@e.com","body":"b"}`},
		{"missing body", `{"to":"v@e.com","subject":"s"}`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := newEmailHandlerFixture("")

			e := echo.New()
			req, rec := jsonRequest(http.MethodPost, "/api/email/send", tc.payload)
			c := e.NewContext(req, rec)

			require.NoError(t, f.handler.Send(c))
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, rec.Body.String(), "MISSING_FIELD")
			f.sender.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
		})
	}
}

func TestEmailHandler_Send_DeliveryFailure(t *testing.T) {
	f := newEmailHandlerFixture("")

	f.sender.On("Send", mock.Anything, mock.Anything).Return(errors.New("relay unreachable"))

	e := echo.New()
	req, rec := jsonRequest(http.MethodPost, "/api/email/send",
		`{"to":"visitor@example.com","subject":"Hello","body":"Hi"}`)
	c := e.NewContext(req, rec)

	require.NoError(t, f.handler.Send(c))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

// ==================== Notification stub ====================

func TestEmailHandler_Notification_Success(t *testing.T) {
	f := newEmailHandlerFixture("")

	e := echo.New()
	req, rec := jsonRequest(http.MethodPost, "/api/email/new-message-notification",
		`{"message":{"email":"v@e.com","name":"Visitor","subject":"Hello","message":"Hi"}}`)
	c := e.NewContext(req, rec)

	require.NoError(t, f.handler.Notification(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestEmailHandler_Notification_MissingField(t *testing.T) {
	f := newEmailHandlerFixture("")

	e := echo.New()
	req, rec := jsonRequest(http.MethodPost, "/api/email/new-message-notification",
		`{"message":{"email":"v@e.com","subject":"Hello","message":"Hi"}}`)
	c := e.NewContext(req, rec)

	require.NoError(t, f.handler.Notification(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "MISSING_FIELD")
}
