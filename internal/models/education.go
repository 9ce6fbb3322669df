package models

// Education represents one entry in the education timeline.
type Education struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	Institution  string `gorm:"not null;size:255" json:"institution"`
	Degree       string `gorm:"size:255" json:"degree"`
	Field        string `gorm:"size:255" json:"field"`
	StartDate    string `gorm:"size:32" json:"start_date"`
	EndDate      string `gorm:"size:32" json:"end_date,omitempty"`
	Current      bool   `gorm:"default:false" json:"current"`
	Description  string `gorm:"type:text" json:"description,omitempty"`
	DisplayOrder int    `gorm:"default:0;index" json:"display_order"`
}

// TableName returns the table name for Education
func (Education) TableName() string {
	return "education"
}
