package handlers

import (
	"errors"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/campusbridge/campusbridge/db"
	"github.com/campusbridge/campusbridge/internal/auth"
	"github.com/campusbridge/campusbridge/internal/logger"
	"github.com/campusbridge/campusbridge/internal/models"
	"github.com/campusbridge/campusbridge/internal/types"
	"github.com/campusbridge/campusbridge/internal/utils"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type RegisterRequest struct {
	FullName    string `json:"full_name" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=8"`
	Role        string `json:"role" binding:"required"`
	ReferenceID string `json:"reference_id" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

type UserResponse struct {
	ID       string `json:"id"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

var (
	Domain = os.Getenv("DOMAIN")
)

// Register creates an account against a pre-issued single-use reference id.
// Consuming the token and creating the user happen in one transaction so a
// crash cannot leave a redeemed token without an account or vice versa.
func Register(ctx *gin.Context) {
	var req RegisterRequest

	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	req.ReferenceID = strings.TrimSpace(req.ReferenceID)

	if !types.IsValidRole(req.Role) {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid role"})
		return
	}

	var existingUser models.User

	err := db.DB.Where("email = ?", req.Email).First(&existingUser).Error

	if err == nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Email already exists"})
		return
	}

	if !errors.Is(err, gorm.ErrRecordNotFound) {
		logger.Error("failed to check existing user", "error", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)

	if err != nil {
		logger.Error("failed to hash password", "error", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	newUser := models.User{
		FullName:     req.FullName,
		Email:        req.Email,
		PasswordHash: string(passwordHash),
		Role:         req.Role,
		CollegeRefID: req.ReferenceID,
	}

	err = db.DB.Transaction(func(tx *gorm.DB) error {
		var ref models.CollegeReferenceID

		if err := tx.Where("reference_id = ?", req.ReferenceID).First(&ref).Error; err != nil {
			return err
		}

		if !ref.Redeemable(req.Role) {
			return errInvalidReferenceID
		}

		if err := tx.Create(&newUser).Error; err != nil {
			return err
		}

		now := time.Now().UTC()
		return tx.Model(&ref).Updates(map[string]interface{}{
			"is_used": true,
			"used_by": newUser.ID,
			"used_at": now,
		}).Error
	})

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) || errors.Is(err, errInvalidReferenceID) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "The college reference ID is invalid or already used"})
			return
		}
		logger.Error("failed to register user", "error", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create account"})
		return
	}

	token, err := auth.GenerateJWT(newUser.ID, newUser.Email, newUser.Role)

	if err != nil {
		logger.Error("failed to generate JWT", "error", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	setTokenCookie(ctx, token, 60*60*24*7)

	ctx.JSON(http.StatusCreated, gin.H{
		"user": UserResponse{
			ID:       newUser.ID.String(),
			FullName: newUser.FullName,
			Email:    newUser.Email,
			Role:     newUser.Role,
		},
	})
}

func Login(ctx *gin.Context) {
	var req LoginRequest

	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	var user models.User

	err := db.DB.Where("email = ?", strings.ToLower(strings.TrimSpace(req.Email))).First(&user).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid email or password"})
			return
		}
		logger.Error("failed to fetch user", "error", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid email or password"})
		return
	}

	token, err := auth.GenerateJWT(user.ID, user.Email, user.Role)

	if err != nil {
		logger.Error("failed to generate JWT", "error", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	setTokenCookie(ctx, token, 60*60*24*7)

	ctx.JSON(http.StatusOK, gin.H{
		"user": UserResponse{
			ID:       user.ID.String(),
			FullName: user.FullName,
			Email:    user.Email,
			Role:     user.Role,
		},
	})
}

func Me(ctx *gin.Context) {
	currentUser, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"user": UserResponse{
			ID:       currentUser.ID.String(),
			FullName: currentUser.FullName,
			Email:    currentUser.Email,
			Role:     currentUser.Role,
		},
	})
}

func Logout(ctx *gin.Context) {
	setTokenCookie(ctx, "", -1)
	ctx.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
}

func setTokenCookie(ctx *gin.Context, token string, maxAge int) {
	http.SetCookie(ctx.Writer, &http.Cookie{
		Name:     "token",
		Value:    token,
		Path:     "/",
		Domain:   Domain,
		MaxAge:   maxAge,
		Secure:   true,
		HttpOnly: true,
		SameSite: http.SameSiteNoneMode,
	})
}
