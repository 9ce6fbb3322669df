package models

import (
	"time"
)

// SocialLinks holds the optional social profile URLs shown on the about page.
type SocialLinks struct {
	Github    string `json:"github,omitempty"`
	Linkedin  string `json:"linkedin,omitempty"`
	Twitter   string `json:"twitter,omitempty"`
	Instagram string `json:"instagram,omitempty"`
	Website   string `json:"website,omitempty"`
}

// AboutMe is the singleton record backing the about section.
// Last write wins; there is no optimistic concurrency.
type AboutMe struct {
	ID           uint        `gorm:"primaryKey" json:"id"`
	Headline     string      `gorm:"size:255" json:"headline"`
	Bio          string      `gorm:"type:text" json:"bio"`
	ProfileImage string      `gorm:"size:512" json:"profile_image"`
	ResumeURL    string      `gorm:"size:512" json:"resume_url,omitempty"`
	SocialLinks  SocialLinks `gorm:"serializer:json" json:"social_links"`
	CreatedAt    time.Time   `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time   `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName returns the table name for AboutMe
func (AboutMe) TableName() string {
	return "about_me"
}

// HomeContent is the singleton record backing the hero section.
type HomeContent struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Headline     string    `gorm:"size:255" json:"headline"`
	SubHeadline  string    `gorm:"size:255" json:"sub_headline"`
	WelcomeText  string    `gorm:"type:text" json:"welcome_text"`
	ProfileImage string    `gorm:"size:512" json:"profile_image"`
	CTAText      string    `gorm:"size:255" json:"cta_text"`
	CTALink      string    `gorm:"size:512" json:"cta_link"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName returns the table name for HomeContent
func (HomeContent) TableName() string {
	return "home"
}

// ContactInfo is the singleton record backing the contact section.
type ContactInfo struct {
	ID                     uint   `gorm:"primaryKey" json:"id"`
	Email                  string `gorm:"size:255" json:"email"`
	Phone                  string `gorm:"size:64" json:"phone,omitempty"`
	Location               string `gorm:"size:255" json:"location"`
	AvailableForWork       bool   `gorm:"default:false" json:"available_for_work"`
	PreferredContactMethod string `gorm:"size:32;default:'email'" json:"preferred_contact_method"`
}

// TableName returns the table name for ContactInfo
func (ContactInfo) TableName() string {
	return "contact_info"
}
