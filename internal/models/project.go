package models

import (
	"time"
)

// Project represents a portfolio project shown on the public site.
type Project struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Title        string    `gorm:"not null;size:255" json:"title"`
	Description  string    `gorm:"type:text" json:"description"`
	ImageURL     string    `gorm:"size:512" json:"image_url"`
	Technologies []string  `gorm:"serializer:json" json:"technologies"`
	GithubURL    string    `gorm:"size:512" json:"github_url,omitempty"`
	LiveURL      string    `gorm:"size:512" json:"live_url,omitempty"`
	Featured     bool      `gorm:"default:false" json:"featured"`
	DisplayOrder int       `gorm:"default:0;index" json:"display_order"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// TableName returns the table name for Project
func (Project) TableName() string {
	return "projects"
}
