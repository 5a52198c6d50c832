package models

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
)

type AlumniProfile struct {
	BaseModel

	UserID uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`

	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`

	GraduationYear  int    `json:"graduation_year"`
	Degree          string `json:"degree"`
	Major           string `json:"major"`
	CurrentJobTitle string `json:"current_job_title"`
	CurrentCompany  string `json:"current_company"`
	Industry        string `json:"industry"`
	Location        string `json:"location"`

	YearsOfExperience int    `json:"years_of_experience"`
	Bio               string `json:"bio"`

	Skills         pq.StringArray `gorm:"type:text[]" json:"skills"`
	ExpertiseAreas pq.StringArray `gorm:"type:text[]" json:"expertise_areas"`

	LinkedinURL            string `json:"linkedin_url"`
	PreferredCommunication string `json:"preferred_communication"`

	AvailabilityForMentoring bool `json:"availability_for_mentoring"`

	// Derived on every save by IsComplete; never set directly by clients.
	IsProfileComplete bool `json:"is_profile_complete"`
}

var alumniRequiredFields = []string{
	"full_name", "email", "phone", "graduation_year", "degree", "major",
	"current_job_title", "current_company", "industry", "location",
}

func (p *AlumniProfile) completionFields() map[string]interface{} {
	return map[string]interface{}{
		"full_name":           p.FullName,
		"email":               p.Email,
		"phone":               p.Phone,
		"graduation_year":     p.GraduationYear,
		"degree":              p.Degree,
		"major":               p.Major,
		"current_job_title":   p.CurrentJobTitle,
		"current_company":     p.CurrentCompany,
		"industry":            p.Industry,
		"location":            p.Location,
		"years_of_experience": p.YearsOfExperience,
		"bio":                 p.Bio,
	}
}

func (p *AlumniProfile) RecomputeCompleteness() {
	p.IsProfileComplete = IsComplete(p.completionFields(), alumniRequiredFields)
}
