package models

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
)

type StudentProfile struct {
	BaseModel

	UserID uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`

	FullName  string `json:"full_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	StudentID string `json:"student_id"`

	CurrentYear            int     `json:"current_year"`
	DegreeProgram          string  `json:"degree_program"`
	Major                  string  `json:"major"`
	ExpectedGraduationYear int     `json:"expected_graduation_year"`
	GPA                    float64 `json:"gpa"`
	CreditPoints           int     `json:"credit_points"`
	CareerGoals            string  `json:"career_goals"`
	InternshipExperience   string  `json:"internship_experience"`

	Skills                    pq.StringArray `gorm:"type:text[]" json:"skills"`
	Interests                 pq.StringArray `gorm:"type:text[]" json:"interests"`
	Projects                  pq.StringArray `gorm:"type:text[]" json:"projects"`
	ExtracurricularActivities pq.StringArray `gorm:"type:text[]" json:"extracurricular_activities"`

	LinkedinURL  string `json:"linkedin_url"`
	GithubURL    string `json:"github_url"`
	PortfolioURL string `json:"portfolio_url"`

	SeekingMentorship bool `json:"seeking_mentorship"`

	// Derived on every save by IsComplete; never set directly by clients.
	IsProfileComplete bool `json:"is_profile_complete"`
}

// studentRequiredFields are the fields a student profile must fill before it
// counts as complete and appears in the directory.
var studentRequiredFields = []string{
	"full_name", "email", "phone", "student_id", "current_year",
	"degree_program", "major", "expected_graduation_year",
}

// completionFields maps field names to candidate values for the completeness
// check. Only fields in studentRequiredFields influence the result.
func (p *StudentProfile) completionFields() map[string]interface{} {
	return map[string]interface{}{
		"full_name":                p.FullName,
		"email":                    p.Email,
		"phone":                    p.Phone,
		"student_id":               p.StudentID,
		"current_year":             p.CurrentYear,
		"degree_program":           p.DegreeProgram,
		"major":                    p.Major,
		"expected_graduation_year": p.ExpectedGraduationYear,
		"gpa":                      p.GPA,
		"career_goals":             p.CareerGoals,
	}
}

func (p *StudentProfile) RecomputeCompleteness() {
	p.IsProfileComplete = IsComplete(p.completionFields(), studentRequiredFields)
}
