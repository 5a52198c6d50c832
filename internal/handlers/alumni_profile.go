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

type SaveAlumniProfileRequest struct {
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

	Skills         []string `json:"skills"`
	ExpertiseAreas []string `json:"expertise_areas"`

	LinkedinURL            string `json:"linkedin_url"`
	PreferredCommunication string `json:"preferred_communication"`

	AvailabilityForMentoring bool `json:"availability_for_mentoring"`
}

func GetAlumniProfile(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var profile models.AlumniProfile

	if err := db.DB.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Profile not found"})
		} else {
			logger.Error("failed to fetch alumni profile", "error", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load profile"})
		}
		return
	}

	ctx.JSON(http.StatusOK, profile)
}

// SaveAlumniProfile upserts the caller's profile, recomputing the derived
// completeness flag in the same write.
func SaveAlumniProfile(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req SaveAlumniProfileRequest

	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	var profile models.AlumniProfile

	err = db.DB.Where("user_id = ?", userID).First(&profile).Error

	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		logger.Error("failed to fetch alumni profile", "error", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save profile"})
		return
	}

	profile.UserID = userID
	profile.FullName = req.FullName
	profile.Email = req.Email
	profile.Phone = req.Phone
	profile.GraduationYear = req.GraduationYear
	profile.Degree = req.Degree
	profile.Major = req.Major
	profile.CurrentJobTitle = req.CurrentJobTitle
	profile.CurrentCompany = req.CurrentCompany
	profile.Industry = req.Industry
	profile.Location = req.Location
	profile.YearsOfExperience = req.YearsOfExperience
	profile.Bio = req.Bio
	profile.Skills = req.Skills
	profile.ExpertiseAreas = req.ExpertiseAreas
	profile.LinkedinURL = req.LinkedinURL
	profile.PreferredCommunication = req.PreferredCommunication
	profile.AvailabilityForMentoring = req.AvailabilityForMentoring

	profile.RecomputeCompleteness()

	if err := db.DB.Save(&profile).Error; err != nil {
		logger.Error("failed to save alumni profile", "error", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save profile"})
		return
	}

	ctx.JSON(http.StatusOK, profile)
}

// ListAlumniDirectory lists complete alumni profiles, mentors first.
func ListAlumniDirectory(ctx *gin.Context) {
	var profiles []models.AlumniProfile

	if err := db.DB.Where("is_profile_complete = ?", true).
		Order("availability_for_mentoring DESC, created_at DESC").
		Find(&profiles).Error; err != nil {
		logger.Error("failed to list alumni directory", "error", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load alumni"})
		return
	}

	ctx.JSON(http.StatusOK, profiles)
}
