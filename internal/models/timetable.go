package models

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
)

type Timetable struct {
	BaseModel

	UserID uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`

	Title       string         `gorm:"not null" json:"title"`
	Description string         `json:"description"`
	Goals       pq.StringArray `gorm:"type:text[]" json:"goals"`

	// Weekday name -> ordered list of {time, subject, task, resources}.
	Schedule datatypes.JSON `gorm:"type:jsonb" json:"schedule"`

	IsAIGenerated bool `gorm:"default:false" json:"is_ai_generated"`
	IsActive      bool `gorm:"default:true" json:"is_active"`
}
