package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/campusbridge/campusbridge/db"
	"github.com/campusbridge/campusbridge/internal/logger"
	"github.com/campusbridge/campusbridge/internal/models"
	"github.com/campusbridge/campusbridge/internal/services"
	"github.com/campusbridge/campusbridge/internal/types"
	"github.com/campusbridge/campusbridge/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Generator is the AI timetable generator wired in at startup. Nil when
// OPENAI_API_KEY is not configured, in which case generation requests fail
// with 503 while manual timetables keep working.
var Generator *services.TimetableGenerator

type SaveTimetableRequest struct {
	Title       string         `json:"title" binding:"required"`
	Description string         `json:"description" binding:"required"`
	Goals       []string       `json:"goals"`
	Schedule    types.Schedule `json:"schedule"`
}

type GenerateTimetableRequest struct {
	Prompt   string   `json:"prompt" binding:"required"`
	Goals    []string `json:"goals"`
	Duration string   `json:"duration"`
}

func ListTimetables(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var timetables []models.Timetable

	if err := db.DB.Where("user_id = ? AND is_active = ?", userID, true).
		Order("created_at DESC").
		Find(&timetables).Error; err != nil {
		logger.Error("failed to list timetables", "error", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch timetables"})
		return
	}

	ctx.JSON(http.StatusOK, timetables)
}

// CreateTimetable saves a manually built timetable.
func CreateTimetable(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req SaveTimetableRequest

	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	timetable, err := buildTimetable(userID, types.GeneratedTimetable{
		Title:       req.Title,
		Description: req.Description,
		Goals:       req.Goals,
		Schedule:    req.Schedule,
	}, false)

	if err != nil {
		logger.Error("failed to encode schedule", "error", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save timetable"})
		return
	}

	if err := db.DB.Create(&timetable).Error; err != nil {
		logger.Error("failed to save timetable", "error", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save timetable"})
		return
	}

	ctx.JSON(http.StatusCreated, timetable)
}

// GenerateTimetable asks the AI generator for a schedule and persists the
// result. A reply that fails to parse is already replaced by the fixed
// fallback inside the generator, so everything that arrives here is saved.
func GenerateTimetable(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	if Generator == nil {
		ctx.JSON(http.StatusServiceUnavailable, gin.H{"error": "AI generation is not configured"})
		return
	}

	var req GenerateTimetableRequest

	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	generated, err := Generator.Generate(ctx.Request.Context(), req.Prompt, req.Goals, req.Duration)

	if err != nil {
		logger.Error("failed to generate AI timetable", "error", err)
		ctx.JSON(http.StatusBadGateway, gin.H{"error": "Failed to generate AI timetable"})
		return
	}

	timetable, err := buildTimetable(userID, generated, true)

	if err != nil {
		logger.Error("failed to encode schedule", "error", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save timetable"})
		return
	}

	if err := db.DB.Create(&timetable).Error; err != nil {
		logger.Error("failed to save generated timetable", "error", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save timetable"})
		return
	}

	ctx.JSON(http.StatusCreated, timetable)
}

// DeleteTimetable soft-deletes one of the caller's timetables.
func DeleteTimetable(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	timetableID, err := utils.ParamUUID(ctx, "timetable_id")

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result := db.DB.Model(&models.Timetable{}).
		Where("id = ? AND user_id = ? AND is_active = ?", timetableID, userID, true).
		Update("is_active", false)

	if result.Error != nil {
		logger.Error("failed to delete timetable", "error", result.Error)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete timetable"})
		return
	}

	if result.RowsAffected == 0 {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Timetable not found"})
		return
	}

	ctx.Status(http.StatusNoContent)
}

func buildTimetable(userID uuid.UUID, data types.GeneratedTimetable, aiGenerated bool) (models.Timetable, error) {
	schedule, err := json.Marshal(data.Schedule)

	if err != nil {
		return models.Timetable{}, err
	}

	return models.Timetable{
		UserID:        userID,
		Title:         data.Title,
		Description:   data.Description,
		Goals:         data.Goals,
		Schedule:      schedule,
		IsAIGenerated: aiGenerated,
		IsActive:      true,
	}, nil
}
