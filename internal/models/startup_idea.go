package models

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
)

type StartupIdea struct {
	BaseModel

	UserID uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`

	Title            string `gorm:"not null" json:"title"`
	Description      string `gorm:"not null" json:"description"`
	ProblemStatement string `gorm:"not null" json:"problem_statement"`
	Solution         string `gorm:"not null" json:"solution"`
	BusinessModel    string `json:"business_model"`
	TargetMarket     string `json:"target_market"`
	Industry         string `json:"industry"`
	Stage            string `json:"stage"` // "idea", "prototype", "mvp", "growth"

	FundingNeeded float64 `json:"funding_needed"`
	EquityOffered float64 `json:"equity_offered"`

	Tags pq.StringArray `gorm:"type:text[]" json:"tags"`

	IsPublic    bool `json:"is_public"`
	RequiresNda bool `json:"requires_nda"`
	IsActive    bool `gorm:"default:true" json:"is_active"`

	ViewCount int `gorm:"default:0" json:"view_count"`

	// Relationships
	NdaAgreements []NdaAgreement      `gorm:"foreignKey:StartupIdeaID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
	Connections   []StartupConnection `gorm:"foreignKey:StartupIdeaID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
}

// ViewableBy decides whether a viewer may see the idea's full detail
// (problem statement, solution, funding terms) rather than only its public
// summary card. NDA agreement rows are intentionally not consulted: an NDA
// request records interest but never by itself grants detail access.
func (i *StartupIdea) ViewableBy(viewerID uuid.UUID) bool {
	return i.IsPublic || i.UserID == viewerID
}

// OwnedBy guards owner-only surfaces, and suppresses the connect action on
// a viewer's own ideas.
func (i *StartupIdea) OwnedBy(viewerID uuid.UUID) bool {
	return i.UserID == viewerID
}
