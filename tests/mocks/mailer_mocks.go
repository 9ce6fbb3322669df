package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/brito-dev/portfolio-backend/internal/mailer"
	"github.com/brito-dev/portfolio-backend/internal/models"
)

// MockSender implements mailer.Sender
type MockSender struct {
	mock.Mock
}

// Send records the outbound email
func (m *MockSender) Send(ctx context.Context, email mailer.Email) error {
	args := m.Called(ctx, email)
	return args.Error(0)
}

// MockNotifier implements services.Notifier
type MockNotifier struct {
	mock.Mock
}

// NotifyNewMessage records a new-message notification
func (m *MockNotifier) NotifyNewMessage(message *models.Message) {
	m.Called(message)
}
