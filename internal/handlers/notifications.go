package handlers

import (
	"net/http"

	"github.com/campusbridge/campusbridge/db"
	"github.com/campusbridge/campusbridge/internal/logger"
	"github.com/campusbridge/campusbridge/internal/models"
	"github.com/campusbridge/campusbridge/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// notify persists a notification and pushes it to the recipient's live feed
// if they are connected. A persistence failure is logged and swallowed: the
// triggering action already succeeded and is not rolled back over a missed
// notification.
func notify(senderID, recipientID uuid.UUID, title, message string) {
	notification := models.Notification{
		SenderID:    senderID,
		RecipientID: &recipientID,
		Title:       title,
		Message:     message,
	}

	if err := db.DB.Create(&notification).Error; err != nil {
		logger.Error("failed to create notification", "error", err)
		return
	}

	PushNotification(recipientID, notification)
}

func ListNotifications(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var notifications []models.Notification

	if err := db.DB.Where("recipient_id = ?", userID).
		Order("created_at DESC").
		Find(&notifications).Error; err != nil {
		logger.Error("failed to list notifications", "error", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch notifications"})
		return
	}

	ctx.JSON(http.StatusOK, notifications)
}

func MarkNotificationRead(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	notificationID, err := utils.ParamUUID(ctx, "notification_id")

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result := db.DB.Model(&models.Notification{}).
		Where("id = ? AND recipient_id = ?", notificationID, userID).
		Update("is_read", true)

	if result.Error != nil {
		logger.Error("failed to mark notification read", "error", result.Error)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update notification"})
		return
	}

	if result.RowsAffected == 0 {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Notification not found"})
		return
	}

	ctx.Status(http.StatusNoContent)
}
