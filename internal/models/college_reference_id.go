package models

import (
	"time"

	"github.com/google/uuid"
)

// CollegeReferenceID is a single-use signup token bound to a target role.
// Verification requires the row to exist, IsUsed to be false and, at the
// stricter call sites, UserType to match the role being signed up for.
// Redemption marks the token consumed in the same transaction that creates
// the account.
type CollegeReferenceID struct {
	BaseModel

	ReferenceID string `gorm:"uniqueIndex;not null" json:"reference_id"`
	UserType    string `gorm:"not null" json:"user_type"`

	IsUsed bool       `gorm:"default:false" json:"is_used"`
	UsedBy *uuid.UUID `gorm:"type:uuid" json:"used_by"`
	UsedAt *time.Time `json:"used_at"`
}

// Redeemable reports whether the token can still be consumed, optionally
// checking the role it was issued for. A used token fails regardless of the
// role argument.
func (r *CollegeReferenceID) Redeemable(role string) bool {
	if r.IsUsed {
		return false
	}
	if role != "" && r.UserType != role {
		return false
	}
	return true
}
