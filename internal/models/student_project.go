package models

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
)

type StudentProject struct {
	BaseModel

	UserID      uuid.UUID  `gorm:"type:uuid;not null;index" json:"user_id"`
	TimetableID *uuid.UUID `gorm:"type:uuid;index" json:"timetable_id"`

	Title       string         `gorm:"not null" json:"title"`
	Description string         `gorm:"not null" json:"description"`
	SkillsUsed  pq.StringArray `gorm:"type:text[]" json:"skills_used"`
	ProjectURL  string         `json:"project_url"`
	GithubURL   string         `json:"github_url"`

	ValidationStatus   string `gorm:"default:pending" json:"validation_status"` // "pending", "approved", "rejected"
	IsValidated        bool   `gorm:"default:false" json:"is_validated"`
	CreditPointsEarned int    `gorm:"default:0" json:"credit_points_earned"`
	AdminFeedback      string `json:"admin_feedback"`

	// Relationships
	Timetable *Timetable `gorm:"foreignKey:TimetableID;constraint:OnUpdate:Cascade,OnDelete:SET NULL" json:"-"`
}
