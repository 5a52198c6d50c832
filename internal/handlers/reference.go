package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/campusbridge/campusbridge/db"
	"github.com/campusbridge/campusbridge/internal/logger"
	"github.com/campusbridge/campusbridge/internal/models"
	"github.com/campusbridge/campusbridge/internal/types"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

var errInvalidReferenceID = errors.New("reference id invalid or already used")

type VerifyReferenceRequest struct {
	ReferenceID string `json:"reference_id" binding:"required"`
	Role        string `json:"role"`
}

type VerifyReferenceResponse struct {
	IsValid  bool   `json:"is_valid"`
	UserType string `json:"user_type,omitempty"`
}

// VerifyReference checks a candidate signup token. A token is valid when the
// row exists, is unused and, if a role is supplied, was issued for that role.
// Verification alone never consumes the token; registration does.
func VerifyReference(ctx *gin.Context) {
	var req VerifyReferenceRequest

	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	var ref models.CollegeReferenceID

	err := db.DB.Where("reference_id = ?", strings.TrimSpace(req.ReferenceID)).First(&ref).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusOK, VerifyReferenceResponse{IsValid: false})
			return
		}
		logger.Error("failed to look up reference id", "error", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to verify reference ID"})
		return
	}

	if !ref.Redeemable(req.Role) {
		ctx.JSON(http.StatusOK, VerifyReferenceResponse{IsValid: false})
		return
	}

	ctx.JSON(http.StatusOK, VerifyReferenceResponse{IsValid: true, UserType: ref.UserType})
}

type CreateReferenceRequest struct {
	ReferenceID string `json:"reference_id" binding:"required"`
	UserType    string `json:"user_type" binding:"required"`
}

// CreateReference mints a signup token for a role. Admin only.
func CreateReference(ctx *gin.Context) {
	var req CreateReferenceRequest

	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	if !types.IsValidRole(req.UserType) {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user type"})
		return
	}

	ref := models.CollegeReferenceID{
		ReferenceID: strings.TrimSpace(req.ReferenceID),
		UserType:    req.UserType,
	}

	if err := db.DB.Create(&ref).Error; err != nil {
		logger.Error("failed to create reference id", "error", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create reference ID"})
		return
	}

	ctx.JSON(http.StatusCreated, ref)
}

// ListReferences returns all issued tokens, newest first. Admin only.
func ListReferences(ctx *gin.Context) {
	var refs []models.CollegeReferenceID

	if err := db.DB.Order("created_at DESC").Find(&refs).Error; err != nil {
		logger.Error("failed to list reference ids", "error", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list reference IDs"})
		return
	}

	ctx.JSON(http.StatusOK, refs)
}
