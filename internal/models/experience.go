package models

// Experience represents one entry in the work history timeline.
type Experience struct {
	ID           uint     `gorm:"primaryKey" json:"id"`
	Company      string   `gorm:"not null;size:255" json:"company"`
	Position     string   `gorm:"not null;size:255" json:"position"`
	StartDate    string   `gorm:"size:32" json:"start_date"`
	EndDate      string   `gorm:"size:32" json:"end_date,omitempty"`
	Current      bool     `gorm:"default:false" json:"current"`
	Description  string   `gorm:"type:text" json:"description"`
	Technologies []string `gorm:"serializer:json" json:"technologies"`
	DisplayOrder int      `gorm:"default:0;index" json:"display_order"`
}

// TableName returns the table name for Experience
func (Experience) TableName() string {
	return "experiences"
}
