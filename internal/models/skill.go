package models

// Skill represents a single skill with a 1..5 proficiency rating.
type Skill struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	Name         string `gorm:"not null;size:255" json:"name"`
	Category     string `gorm:"size:255;index" json:"category"`
	Proficiency  int    `gorm:"default:1" json:"proficiency"`
	IsExpert     bool   `gorm:"default:false" json:"is_expert"`
	DisplayOrder int    `gorm:"default:0;index" json:"display_order"`
}

// TableName returns the table name for Skill
func (Skill) TableName() string {
	return "skills"
}
