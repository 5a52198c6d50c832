package handlers

import (
	"errors"
	"net/http"

	"github.com/campusbridge/campusbridge/db"
	"github.com/campusbridge/campusbridge/internal/logger"
	"github.com/campusbridge/campusbridge/internal/models"
	"github.com/campusbridge/campusbridge/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CreateQuestionRequest struct {
	Title   string   `json:"title" binding:"required"`
	Content string   `json:"content" binding:"required"`
	Tags    []string `json:"tags"`
}

type CreateAnswerRequest struct {
	Content string `json:"content" binding:"required"`
}

type AuthorInfo struct {
	FullName string `json:"full_name"`
	Role     string `json:"role"`
}

type AnswerResponse struct {
	models.Answer
	Author AuthorInfo `json:"author"`
}

type QuestionResponse struct {
	models.Question
	Author  AuthorInfo       `json:"author"`
	Answers []AnswerResponse `json:"answers"`
}

func CreateQuestion(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req CreateQuestionRequest

	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	question := models.Question{
		UserID:   userID,
		Title:    req.Title,
		Content:  req.Content,
		Tags:     req.Tags,
		IsActive: true,
	}

	if err := db.DB.Create(&question).Error; err != nil {
		logger.Error("failed to create question", "error", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create question"})
		return
	}

	ctx.JSON(http.StatusCreated, question)
}

// ListQuestions returns active questions newest first, each with its author
// and active answers attached.
func ListQuestions(ctx *gin.Context) {
	var questions []models.Question

	if err := db.DB.Where("is_active = ?", true).Order("created_at DESC").Find(&questions).Error; err != nil {
		logger.Error("failed to list questions", "error", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load questions"})
		return
	}

	response := make([]QuestionResponse, 0, len(questions))

	for _, question := range questions {
		var answers []models.Answer

		if err := db.DB.Where("question_id = ? AND is_active = ?", question.ID, true).
			Order("is_best_answer DESC, created_at ASC").
			Find(&answers).Error; err != nil {
			logger.Error("failed to load answers", "error", err, "question_id", question.ID)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load questions"})
			return
		}

		answerResponses := make([]AnswerResponse, 0, len(answers))

		for _, answer := range answers {
			answerResponses = append(answerResponses, AnswerResponse{
				Answer: answer,
				Author: authorInfo(answer.UserID),
			})
		}

		response = append(response, QuestionResponse{
			Question: question,
			Author:   authorInfo(question.UserID),
			Answers:  answerResponses,
		})
	}

	ctx.JSON(http.StatusOK, response)
}

// ViewQuestion bumps a question's view counter via a single UPDATE
// expression, matching the original's server-side increment procedure.
func ViewQuestion(ctx *gin.Context) {
	questionID, err := utils.ParamUUID(ctx, "question_id")

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result := db.DB.Model(&models.Question{}).
		Where("id = ? AND is_active = ?", questionID, true).
		UpdateColumn("view_count", gorm.Expr("view_count + 1"))

	if result.Error != nil {
		logger.Error("failed to bump question view count", "error", result.Error)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record view"})
		return
	}

	if result.RowsAffected == 0 {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Question not found"})
		return
	}

	ctx.Status(http.StatusNoContent)
}

func CreateAnswer(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	questionID, err := utils.ParamUUID(ctx, "question_id")

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var req CreateAnswerRequest

	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	var question models.Question

	if err := db.DB.Where("id = ? AND is_active = ?", questionID, true).First(&question).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Question not found"})
		} else {
			logger.Error("failed to fetch question", "error", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to post answer"})
		}
		return
	}

	answer := models.Answer{
		QuestionID: question.ID,
		UserID:     userID,
		Content:    req.Content,
		IsActive:   true,
	}

	if err := db.DB.Create(&answer).Error; err != nil {
		logger.Error("failed to create answer", "error", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to post answer"})
		return
	}

	ctx.JSON(http.StatusCreated, answer)
}

// MarkBestAnswer flags one answer as the best for its question. Only the
// question's author or an admin may do this. Any previously flagged answer
// is cleared in the same transaction so at most one holds the flag.
func MarkBestAnswer(ctx *gin.Context) {
	currentUser, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	answerID, err := utils.ParamUUID(ctx, "answer_id")

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var answer models.Answer

	if err := db.DB.Where("id = ? AND is_active = ?", answerID, true).First(&answer).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Answer not found"})
		} else {
			logger.Error("failed to fetch answer", "error", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to mark best answer"})
		}
		return
	}

	var question models.Question

	if err := db.DB.Where("id = ?", answer.QuestionID).First(&question).Error; err != nil {
		logger.Error("failed to fetch question for answer", "error", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to mark best answer"})
		return
	}

	if question.UserID != currentUser.ID && !currentUser.IsAdmin() {
		ctx.JSON(http.StatusForbidden, gin.H{"error": "Only the question author may mark a best answer"})
		return
	}

	err = db.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Answer{}).
			Where("question_id = ? AND is_best_answer = ?", question.ID, true).
			Update("is_best_answer", false).Error; err != nil {
			return err
		}
		return tx.Model(&answer).Update("is_best_answer", true).Error
	})

	if err != nil {
		logger.Error("failed to mark best answer", "error", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to mark best answer"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Marked as best answer"})
}

// DeleteQuestion soft-deletes a question. Author or admin only.
func DeleteQuestion(ctx *gin.Context) {
	deleteForumContent(ctx, "question_id", &models.Question{})
}

// DeleteAnswer soft-deletes an answer. Author or admin only.
func DeleteAnswer(ctx *gin.Context) {
	deleteForumContent(ctx, "answer_id", &models.Answer{})
}

func deleteForumContent(ctx *gin.Context, param string, model interface{}) {
	currentUser, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	id, err := utils.ParamUUID(ctx, param)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	query := db.DB.Model(model).Where("id = ? AND is_active = ?", id, true)

	if !currentUser.IsAdmin() {
		query = query.Where("user_id = ?", currentUser.ID)
	}

	result := query.Update("is_active", false)

	if result.Error != nil {
		logger.Error("failed to remove forum content", "error", result.Error)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove content"})
		return
	}

	if result.RowsAffected == 0 {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Content not found"})
		return
	}

	ctx.Status(http.StatusNoContent)
}

func authorInfo(userID uuid.UUID) AuthorInfo {
	var user models.User

	if err := db.DB.Where("id = ?", userID).First(&user).Error; err != nil {
		return AuthorInfo{FullName: "Unknown", Role: "student"}
	}

	return AuthorInfo{FullName: user.FullName, Role: user.Role}
}
