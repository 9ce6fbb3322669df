package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/brito-dev/portfolio-backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MessageRepository defines the interface for message data access
type MessageRepository interface {
	Create(ctx context.Context, message *models.Message) error
	List(ctx context.Context) ([]models.Message, error)
	GetByID(ctx context.Context, id uint) (*models.Message, error)
	GetByThreadID(ctx context.Context, threadID string) (*models.Message, error)
	MarkAsRead(ctx context.Context, id uint) error
	DeleteWithReplies(ctx context.Context, id uint) error
}

// messageRepository implements MessageRepository using GORM
type messageRepository struct {
	db *gorm.DB
}

// NewMessageRepository creates a new MessageRepository instance
func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &messageRepository{db: db}
}

// newThreadID generates an opaque thread correlation key. The token must
// match the bracketed pattern the webhook ingestor extracts from replies,
// so only alphanumerics and underscores are allowed.
func newThreadID() string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:9]
	return fmt.Sprintf("thread_%d_%s", time.Now().UnixMilli(), suffix)
}

// Create persists a new message, assigning its thread id. The thread id is
// set exactly once here and never updated afterwards.
func (r *messageRepository) Create(ctx context.Context, message *models.Message) error {
	if message.ThreadID == "" {
		message.ThreadID = newThreadID()
	}
	result := r.db.WithContext(ctx).Create(message)
	if result.Error != nil {
		return fmt.Errorf("failed to create message: %w", result.Error)
	}
	return nil
}

// List retrieves all messages ordered by created_at descending
func (r *messageRepository) List(ctx context.Context) ([]models.Message, error) {
	var messages []models.Message
	result := r.db.WithContext(ctx).Order("created_at DESC").Find(&messages)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to list messages: %w", result.Error)
	}
	return messages, nil
}

// GetByID retrieves a message by its ID
func (r *messageRepository) GetByID(ctx context.Context, id uint) (*models.Message, error) {
	var message models.Message
	result := r.db.WithContext(ctx).First(&message, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get message by ID: %w", result.Error)
	}
	return &message, nil
}

// GetByThreadID retrieves the message owning the given thread id
func (r *messageRepository) GetByThreadID(ctx context.Context, threadID string) (*models.Message, error) {
	var message models.Message
	result := r.db.WithContext(ctx).Where("thread_id = ?", threadID).First(&message)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get message by thread ID: %w", result.Error)
	}
	return &message, nil
}

// MarkAsRead marks a message as read. Re-marking an already-read message
// is a no-op success.
func (r *messageRepository) MarkAsRead(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Model(&models.Message{}).Where("id = ?", id).Update("read", true)
	if result.Error != nil {
		return fmt.Errorf("failed to mark message as read: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		// Distinguish "already read" from "does not exist"
		var count int64
		if err := r.db.WithContext(ctx).Model(&models.Message{}).Where("id = ?", id).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to mark message as read: %w", err)
		}
		if count == 0 {
			return ErrNotFound
		}
	}
	return nil
}

// DeleteWithReplies deletes all replies belonging to a message and then the
// message itself in a single transaction. If the reply deletion fails the
// message row survives.
func (r *messageRepository) DeleteWithReplies(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("message_id = ?", id).Delete(&models.MessageReply{}).Error; err != nil {
			return fmt.Errorf("failed to delete replies: %w", err)
		}

		result := tx.Delete(&models.Message{}, id)
		if result.Error != nil {
			return fmt.Errorf("failed to delete message: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}
