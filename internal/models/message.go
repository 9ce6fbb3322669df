package models

import (
	"time"
)

// Message represents a contact-form submission from a site visitor.
// ThreadID is assigned once at creation and never changes; it is the
// correlation key that links inbound email replies back to this message.
type Message struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null;size:255" json:"name"`
	Email     string    `gorm:"not null;size:255" json:"email"`
	Subject   string    `gorm:"not null;size:255" json:"subject"`
	Body      string    `gorm:"type:text;not null" json:"body"`
	Read      bool      `gorm:"default:false" json:"read"`
	ThreadID  string    `gorm:"uniqueIndex;not null;size:64" json:"thread_id"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`

	// Relationships
	Replies []MessageReply `gorm:"foreignKey:MessageID" json:"-"`
}

// TableName returns the table name for Message
func (Message) TableName() string {
	return "messages"
}
