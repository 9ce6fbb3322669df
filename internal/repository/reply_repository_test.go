package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/brito-dev/portfolio-backend/internal/models"
)

// ReplyRepositoryTestSuite is the test suite for ReplyRepository
type ReplyRepositoryTestSuite struct {
	suite.Suite
	db       *gorm.DB
	repo     ReplyRepository
	messages MessageRepository
	parent   *models.Message
}

// SetupSuite runs once before all tests
func (s *ReplyRepositoryTestSuite) SetupSuite() {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(s.T(), err)

	err = db.AutoMigrate(&models.Message{}, &models.MessageReply{})
	require.NoError(s.T(), err)

	s.db = db
	s.repo = NewReplyRepository(db)
	s.messages = NewMessageRepository(db)
}

// TearDownSuite runs once after all tests
func (s *ReplyRepositoryTestSuite) TearDownSuite() {
	sqlDB, _ := s.db.DB()
	if sqlDB != nil {
		sqlDB.Close()
	}
}

// SetupTest runs before each test
func (s *ReplyRepositoryTestSuite) SetupTest() {
	s.db.Exec("DELETE FROM message_replies")
	s.db.Exec("DELETE FROM messages")

	s.parent = &models.Message{
		Name:    "Visitor",
		Email:   "visitor@example.com",
		Subject: "Hello",
		Body:    "Question about a project.",
	}
	require.NoError(s.T(), s.messages.Create(context.Background(), s.parent))
}

// TestReplyRepositoryTestSuite runs the test suite
func TestReplyRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(ReplyRepositoryTestSuite))
}

func (s *ReplyRepositoryTestSuite) createReply(text string, sentAt time.Time) *models.MessageReply {
	reply := &models.MessageReply{
		MessageID:      s.parent.ID,
		ReplyText:      text,
		SenderEmail:    "owner@example.com",
		RecipientEmail: s.parent.Email,
		Subject:        "Re: " + s.parent.Subject,
		ThreadID:       s.parent.ThreadID,
	}
	require.NoError(s.T(), s.repo.Create(context.Background(), reply))
	if !sentAt.IsZero() {
		s.db.Model(reply).Update("sent_at", sentAt)
	}
	return reply
}

func (s *ReplyRepositoryTestSuite) TestCreate_Success() {
	reply := s.createReply("Thanks for reaching out.", time.Time{})

	assert.NotZero(s.T(), reply.ID)
	assert.Equal(s.T(), s.parent.ThreadID, reply.ThreadID)
}

func (s *ReplyRepositoryTestSuite) TestListByMessageIDs_EmptyInput() {
	grouped, err := s.repo.ListByMessageIDs(context.Background(), nil)
	require.NoError(s.T(), err)
	assert.Empty(s.T(), grouped)
}

func (s *ReplyRepositoryTestSuite) TestListByMessageIDs_GroupedAndOrdered() {
	base := time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)
	s.createReply("second", base.Add(time.Hour))
	s.createReply("first", base)

	other := &models.Message{
		Name:    "Other",
		Email:   "other@example.com",
		Subject: "Other subject",
		Body:    "Other body",
	}
	require.NoError(s.T(), s.messages.Create(context.Background(), other))
	otherReply := &models.MessageReply{
		MessageID:      other.ID,
		ReplyText:      "separate conversation",
		SenderEmail:    "owner@example.com",
		RecipientEmail: other.Email,
		ThreadID:       other.ThreadID,
	}
	require.NoError(s.T(), s.repo.Create(context.Background(), otherReply))

	grouped, err := s.repo.ListByMessageIDs(context.Background(), []uint{s.parent.ID, other.ID})
	require.NoError(s.T(), err)

	require.Len(s.T(), grouped[s.parent.ID], 2)
	assert.Equal(s.T(), "first", grouped[s.parent.ID][0].ReplyText)
	assert.Equal(s.T(), "second", grouped[s.parent.ID][1].ReplyText)
	require.Len(s.T(), grouped[other.ID], 1)
}

func (s *ReplyRepositoryTestSuite) TestListByMessageIDs_MessageWithoutReplies() {
	grouped, err := s.repo.ListByMessageIDs(context.Background(), []uint{s.parent.ID})
	require.NoError(s.T(), err)
	assert.NotContains(s.T(), grouped, s.parent.ID)
}
