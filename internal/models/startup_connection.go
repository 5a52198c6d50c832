package models

import "github.com/google/uuid"

// StartupConnection is an expression of interest toward an idea. Rows are
// append-only; nothing in the application updates or removes them.
type StartupConnection struct {
	BaseModel

	StartupIdeaID  uuid.UUID `gorm:"type:uuid;not null;index" json:"startup_idea_id"`
	UserID         uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	ConnectionType string    `gorm:"not null" json:"connection_type"` // "investor", "partner", "intern", "mentor"
	Message        string    `json:"message"`
	Status         string    `gorm:"default:pending" json:"status"`

	// Relationships
	StartupIdea StartupIdea `gorm:"foreignKey:StartupIdeaID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
}
