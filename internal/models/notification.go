package models

import "github.com/google/uuid"

type Notification struct {
	BaseModel

	SenderID      uuid.UUID  `gorm:"type:uuid;not null;index" json:"sender_id"`
	RecipientID   *uuid.UUID `gorm:"type:uuid;index" json:"recipient_id"`
	RecipientRole string     `json:"recipient_role"`

	Title   string `gorm:"not null" json:"title"`
	Message string `gorm:"not null" json:"message"`
	IsRead  bool   `gorm:"default:false" json:"is_read"`
}
