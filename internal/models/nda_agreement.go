package models

import (
	"time"

	"github.com/google/uuid"
)

type NdaAgreement struct {
	BaseModel

	StartupIdeaID uuid.UUID `gorm:"type:uuid;not null;index" json:"startup_idea_id"`
	RequesterID   uuid.UUID `gorm:"type:uuid;not null;index" json:"requester_id"`
	OwnerID       uuid.UUID `gorm:"type:uuid;not null;index" json:"owner_id"`

	Status   string     `gorm:"default:pending" json:"status"`
	SignedAt *time.Time `json:"signed_at"`

	// Relationships
	StartupIdea StartupIdea `gorm:"foreignKey:StartupIdeaID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
}
