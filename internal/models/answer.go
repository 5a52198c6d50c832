package models

import "github.com/google/uuid"

type Answer struct {
	BaseModel

	QuestionID uuid.UUID `gorm:"type:uuid;not null;index" json:"question_id"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`

	Content string `gorm:"not null" json:"content"`

	// At most one answer per question holds this; the mark-best handler
	// clears any previous holder in the same transaction.
	IsBestAnswer bool `gorm:"default:false" json:"is_best_answer"`
	IsActive     bool `gorm:"default:true" json:"is_active"`

	// Relationships
	Question Question `gorm:"foreignKey:QuestionID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
}
