package handlers

import (
	"errors"
	"net/http"

	"github.com/campusbridge/campusbridge/db"
	"github.com/campusbridge/campusbridge/internal/logger"
	"github.com/campusbridge/campusbridge/internal/models"
	"github.com/campusbridge/campusbridge/internal/types"
	"github.com/campusbridge/campusbridge/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SubmitProjectRequest struct {
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description" binding:"required"`
	SkillsUsed  []string `json:"skills_used"`
	ProjectURL  string   `json:"project_url"`
	GithubURL   string   `json:"github_url"`
	TimetableID string   `json:"timetable_id"`
}

type ReviewProjectRequest struct {
	ValidationStatus   string `json:"validation_status" binding:"required"`
	CreditPointsEarned int    `json:"credit_points_earned"`
	AdminFeedback      string `json:"admin_feedback"`
}

// SubmitProject records a student project for admin validation, optionally
// tied to one of the student's timetables.
func SubmitProject(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req SubmitProjectRequest

	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	project := models.StudentProject{
		UserID:           userID,
		Title:            req.Title,
		Description:      req.Description,
		SkillsUsed:       req.SkillsUsed,
		ProjectURL:       req.ProjectURL,
		GithubURL:        req.GithubURL,
		ValidationStatus: types.ValidationPending,
	}

	if req.TimetableID != "" {
		timetableID, err := uuid.Parse(req.TimetableID)

		if err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid timetable ID"})
			return
		}

		var timetable models.Timetable

		if err := db.DB.Where("id = ? AND user_id = ?", timetableID, userID).First(&timetable).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				ctx.JSON(http.StatusNotFound, gin.H{"error": "Timetable not found"})
			} else {
				logger.Error("failed to fetch timetable", "error", err)
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit project"})
			}
			return
		}

		project.TimetableID = &timetable.ID
	}

	if err := db.DB.Create(&project).Error; err != nil {
		logger.Error("failed to submit project", "error", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit project"})
		return
	}

	ctx.JSON(http.StatusCreated, project)
}

func ListMyProjects(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var projects []models.StudentProject

	if err := db.DB.Where("user_id = ?", userID).Order("created_at DESC").Find(&projects).Error; err != nil {
		logger.Error("failed to list projects", "error", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch projects"})
		return
	}

	ctx.JSON(http.StatusOK, projects)
}

// ListPendingProjects lists projects awaiting review. Admin only.
func ListPendingProjects(ctx *gin.Context) {
	var projects []models.StudentProject

	if err := db.DB.Where("validation_status = ?", types.ValidationPending).
		Order("created_at ASC").
		Find(&projects).Error; err != nil {
		logger.Error("failed to list pending projects", "error", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch projects"})
		return
	}

	ctx.JSON(http.StatusOK, projects)
}

// ReviewProject approves or rejects a submitted project. Approval adds the
// earned points to the student's profile credit balance in the same
// transaction and notifies the student either way. Admin only.
func ReviewProject(ctx *gin.Context) {
	reviewer, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	projectID, err := utils.ParamUUID(ctx, "project_id")

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var req ReviewProjectRequest

	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	if req.ValidationStatus != types.ValidationApproved && req.ValidationStatus != types.ValidationRejected {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid validation status"})
		return
	}

	var project models.StudentProject

	if err := db.DB.Where("id = ?", projectID).First(&project).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		} else {
			logger.Error("failed to fetch project", "error", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to review project"})
		}
		return
	}

	approved := req.ValidationStatus == types.ValidationApproved
	points := 0
	if approved {
		points = req.CreditPointsEarned
	}

	err = db.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&project).Updates(map[string]interface{}{
			"validation_status":    req.ValidationStatus,
			"is_validated":         approved,
			"credit_points_earned": points,
			"admin_feedback":       req.AdminFeedback,
		}).Error; err != nil {
			return err
		}

		if approved && points > 0 {
			return tx.Model(&models.StudentProfile{}).
				Where("user_id = ?", project.UserID).
				UpdateColumn("credit_points", gorm.Expr("credit_points + ?", points)).Error
		}

		return nil
	})

	if err != nil {
		logger.Error("failed to review project", "error", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to review project"})
		return
	}

	if approved {
		notify(reviewer.ID, project.UserID, "Project Approved",
			"Your project \""+project.Title+"\" was approved.")
	} else {
		notify(reviewer.ID, project.UserID, "Project Rejected",
			"Your project \""+project.Title+"\" was not approved.")
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Project reviewed"})
}
