package handlers

import (
	"errors"
	"net/http"

	"github.com/campusbridge/campusbridge/db"
	"github.com/campusbridge/campusbridge/internal/logger"
	"github.com/campusbridge/campusbridge/internal/models"
	"github.com/campusbridge/campusbridge/internal/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type SaveStudentProfileRequest struct {
	FullName  string `json:"full_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	StudentID string `json:"student_id"`

	CurrentYear            int     `json:"current_year"`
	DegreeProgram          string  `json:"degree_program"`
	Major                  string  `json:"major"`
	ExpectedGraduationYear int     `json:"expected_graduation_year"`
	GPA                    float64 `json:"gpa"`
	CareerGoals            string  `json:"career_goals"`
	InternshipExperience   string  `json:"internship_experience"`

	Skills                    []string `json:"skills"`
	Interests                 []string `json:"interests"`
	Projects                  []string `json:"projects"`
	ExtracurricularActivities []string `json:"extracurricular_activities"`

	LinkedinURL  string `json:"linkedin_url"`
	GithubURL    string `json:"github_url"`
	PortfolioURL string `json:"portfolio_url"`

	SeekingMentorship bool `json:"seeking_mentorship"`
}

func GetStudentProfile(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var profile models.StudentProfile

	if err := db.DB.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Profile not found"})
		} else {
			logger.Error("failed to fetch student profile", "error", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load profile"})
		}
		return
	}

	ctx.JSON(http.StatusOK, profile)
}

// SaveStudentProfile upserts the caller's profile. Completeness is derived
// here on every save and persisted in the same write; the request carries no
// is_profile_complete field, so clients cannot set it.
func SaveStudentProfile(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req SaveStudentProfileRequest

	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	var profile models.StudentProfile

	err = db.DB.Where("user_id = ?", userID).First(&profile).Error

	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		logger.Error("failed to fetch student profile", "error", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save profile"})
		return
	}

	profile.UserID = userID
	profile.FullName = req.FullName
	profile.Email = req.Email
	profile.Phone = req.Phone
	profile.StudentID = req.StudentID
	profile.CurrentYear = req.CurrentYear
	profile.DegreeProgram = req.DegreeProgram
	profile.Major = req.Major
	profile.ExpectedGraduationYear = req.ExpectedGraduationYear
	profile.GPA = req.GPA
	profile.CareerGoals = req.CareerGoals
	profile.InternshipExperience = req.InternshipExperience
	profile.Skills = req.Skills
	profile.Interests = req.Interests
	profile.Projects = req.Projects
	profile.ExtracurricularActivities = req.ExtracurricularActivities
	profile.LinkedinURL = req.LinkedinURL
	profile.GithubURL = req.GithubURL
	profile.PortfolioURL = req.PortfolioURL
	profile.SeekingMentorship = req.SeekingMentorship

	profile.RecomputeCompleteness()

	if err := db.DB.Save(&profile).Error; err != nil {
		logger.Error("failed to save student profile", "error", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save profile"})
		return
	}

	ctx.JSON(http.StatusOK, profile)
}

// ListStudentDirectory lists student profiles for the management views.
// Only complete profiles appear.
func ListStudentDirectory(ctx *gin.Context) {
	var profiles []models.StudentProfile

	if err := db.DB.Where("is_profile_complete = ?", true).Order("created_at DESC").Find(&profiles).Error; err != nil {
		logger.Error("failed to list student directory", "error", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load students"})
		return
	}

	ctx.JSON(http.StatusOK, profiles)
}
