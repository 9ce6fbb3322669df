package repository

import (
	"context"
	"fmt"

	"github.com/brito-dev/portfolio-backend/internal/models"
	"gorm.io/gorm"
)

// ReplyRepository defines the interface for message reply data access
type ReplyRepository interface {
	Create(ctx context.Context, reply *models.MessageReply) error
	ListByMessageIDs(ctx context.Context, messageIDs []uint) (map[uint][]models.MessageReply, error)
}

// replyRepository implements ReplyRepository using GORM
type replyRepository struct {
	db *gorm.DB
}

// NewReplyRepository creates a new ReplyRepository instance
func NewReplyRepository(db *gorm.DB) ReplyRepository {
	return &replyRepository{db: db}
}

// Create persists a new reply
func (r *replyRepository) Create(ctx context.Context, reply *models.MessageReply) error {
	result := r.db.WithContext(ctx).Create(reply)
	if result.Error != nil {
		return fmt.Errorf("failed to create reply: %w", result.Error)
	}
	return nil
}

// ListByMessageIDs retrieves all replies for the given message ids, grouped
// by message id. Replies within a group are ordered by sent_at ascending.
// An empty id set yields an empty map without a store round trip.
func (r *replyRepository) ListByMessageIDs(ctx context.Context, messageIDs []uint) (map[uint][]models.MessageReply, error) {
	grouped := make(map[uint][]models.MessageReply)
	if len(messageIDs) == 0 {
		return grouped, nil
	}

	var replies []models.MessageReply
	result := r.db.WithContext(ctx).
		Where("message_id IN ?", messageIDs).
		Order("sent_at ASC").
		Find(&replies)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to list replies: %w", result.Error)
	}

	for _, reply := range replies {
		grouped[reply.MessageID] = append(grouped[reply.MessageID], reply)
	}
	return grouped, nil
}
