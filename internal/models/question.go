package models

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
)

type Question struct {
	BaseModel

	UserID uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`

	Title   string         `gorm:"not null" json:"title"`
	Content string         `gorm:"not null" json:"content"`
	Tags    pq.StringArray `gorm:"type:text[]" json:"tags"`

	ViewCount int  `gorm:"default:0" json:"view_count"`
	IsActive  bool `gorm:"default:true" json:"is_active"`

	// Relationships
	Answers []Answer `gorm:"foreignKey:QuestionID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
}
