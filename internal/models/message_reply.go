package models

import (
	"time"
)

// MessageReply represents one reply within a message conversation, created
// either by the site owner from the admin inbox or by the email webhook
// ingestor. Replies are never mutated; they are removed only in bulk when
// the parent message is deleted.
type MessageReply struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	MessageID      uint      `gorm:"not null;index" json:"message_id"`
	ReplyText      string    `gorm:"type:text;not null" json:"reply_text"`
	SenderEmail    string    `gorm:"not null;size:255" json:"sender_email"`
	RecipientEmail string    `gorm:"not null;size:255" json:"recipient_email"`
	Subject        string    `gorm:"size:255" json:"subject"`
	ThreadID       string    `gorm:"index;size:64" json:"thread_id"`
	SentAt         time.Time `gorm:"autoCreateTime" json:"sent_at"`

	// Relationships
	Message Message `gorm:"foreignKey:MessageID" json:"-"`
}

// TableName returns the table name for MessageReply
func (MessageReply) TableName() string {
	return "message_replies"
}
