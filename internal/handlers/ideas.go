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

type CreateIdeaRequest struct {
	Title            string   `json:"title" binding:"required"`
	Description      string   `json:"description" binding:"required"`
	ProblemStatement string   `json:"problem_statement" binding:"required"`
	Solution         string   `json:"solution" binding:"required"`
	BusinessModel    string   `json:"business_model"`
	TargetMarket     string   `json:"target_market"`
	Industry         string   `json:"industry"`
	Stage            string   `json:"stage"`
	FundingNeeded    float64  `json:"funding_needed"`
	EquityOffered    float64  `json:"equity_offered"`
	Tags             []string `json:"tags"`
	IsPublic         bool     `json:"is_public"`
	RequiresNda      bool     `json:"requires_nda"`
}

// IdeaSummary is what every viewer may see: the public card.
type IdeaSummary struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Industry    string   `json:"industry"`
	Stage       string   `json:"stage"`
	Tags        []string `json:"tags"`
	ViewCount   int      `json:"view_count"`
	IsPublic    bool     `json:"is_public"`
	RequiresNda bool     `json:"requires_nda"`
	OwnerID     string   `json:"owner_id"`
	OwnerName   string   `json:"owner_name"`

	// Viewer-relative flags driving the detail/connect/NDA actions.
	CanViewDetails bool `json:"can_view_details"`
	IsOwner        bool `json:"is_owner"`
}

// IdeaDetail adds the fields gated behind the visibility predicate.
type IdeaDetail struct {
	IdeaSummary

	ProblemStatement string  `json:"problem_statement"`
	Solution         string  `json:"solution"`
	BusinessModel    string  `json:"business_model"`
	TargetMarket     string  `json:"target_market"`
	FundingNeeded    float64 `json:"funding_needed"`
	EquityOffered    float64 `json:"equity_offered"`
}

func CreateIdea(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req CreateIdeaRequest

	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	if req.Stage == "" {
		req.Stage = types.StageIdea
	}

	if !types.IsValidStage(req.Stage) {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid stage"})
		return
	}

	idea := models.StartupIdea{
		UserID:           userID,
		Title:            req.Title,
		Description:      req.Description,
		ProblemStatement: req.ProblemStatement,
		Solution:         req.Solution,
		BusinessModel:    req.BusinessModel,
		TargetMarket:     req.TargetMarket,
		Industry:         req.Industry,
		Stage:            req.Stage,
		FundingNeeded:    req.FundingNeeded,
		EquityOffered:    req.EquityOffered,
		Tags:             req.Tags,
		IsPublic:         req.IsPublic,
		RequiresNda:      req.RequiresNda,
		IsActive:         true,
	}

	if err := db.DB.Create(&idea).Error; err != nil {
		logger.Error("failed to create startup idea", "error", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create idea"})
		return
	}

	ctx.JSON(http.StatusCreated, idea)
}

// ListIdeas returns all active ideas, newest first, each shaped per-viewer:
// full detail when the visibility predicate allows it, the summary card
// otherwise.
func ListIdeas(ctx *gin.Context) {
	viewerID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var ideas []models.StartupIdea

	if err := db.DB.Where("is_active = ?", true).Order("created_at DESC").Find(&ideas).Error; err != nil {
		logger.Error("failed to list startup ideas", "error", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load startup ideas"})
		return
	}

	ownerNames, err := ownerNamesFor(ideas)

	if err != nil {
		logger.Error("failed to load idea owners", "error", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load startup ideas"})
		return
	}

	response := make([]interface{}, 0, len(ideas))

	for _, idea := range ideas {
		summary := summarize(idea, ownerNames[idea.UserID.String()], viewerID)

		if summary.CanViewDetails {
			response = append(response, detail(idea, summary))
		} else {
			response = append(response, summary)
		}
	}

	ctx.JSON(http.StatusOK, response)
}

// GetIdea returns one idea's detail and bumps its view counter. A viewer the
// predicate rejects gets the summary card only.
func GetIdea(ctx *gin.Context) {
	viewerID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	ideaID, err := utils.ParamUUID(ctx, "idea_id")

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var idea models.StartupIdea

	if err := db.DB.Where("id = ? AND is_active = ?", ideaID, true).First(&idea).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Idea not found"})
		} else {
			logger.Error("failed to fetch startup idea", "error", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load idea"})
		}
		return
	}

	ownerNames, err := ownerNamesFor([]models.StartupIdea{idea})

	if err != nil {
		logger.Error("failed to load idea owner", "error", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load idea"})
		return
	}

	summary := summarize(idea, ownerNames[idea.UserID.String()], viewerID)

	if !summary.CanViewDetails {
		ctx.JSON(http.StatusOK, summary)
		return
	}

	// Counter bump as a single UPDATE expression so concurrent viewers
	// don't lose increments.
	if err := db.DB.Model(&idea).UpdateColumn("view_count", gorm.Expr("view_count + 1")).Error; err != nil {
		logger.Error("failed to bump idea view count", "error", err)
	}
	idea.ViewCount++

	ctx.JSON(http.StatusOK, detail(idea, summarize(idea, ownerNames[idea.UserID.String()], viewerID)))
}

// ListMyIdeas returns the caller's own ideas including inactive ones.
func ListMyIdeas(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var ideas []models.StartupIdea

	if err := db.DB.Where("user_id = ?", userID).Order("created_at DESC").Find(&ideas).Error; err != nil {
		logger.Error("failed to list own ideas", "error", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load ideas"})
		return
	}

	ctx.JSON(http.StatusOK, ideas)
}

// RequestNda records an NDA access request against a non-public idea. The
// request never mutates the idea and never grants detail access by itself;
// the owner reviews it out of band.
func RequestNda(ctx *gin.Context) {
	requesterID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	ideaID, err := utils.ParamUUID(ctx, "idea_id")

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var idea models.StartupIdea

	if err := db.DB.Where("id = ? AND is_active = ?", ideaID, true).First(&idea).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Idea not found"})
		} else {
			logger.Error("failed to fetch startup idea", "error", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to request NDA access"})
		}
		return
	}

	if idea.OwnedBy(requesterID) {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "You already own this idea"})
		return
	}

	agreement := models.NdaAgreement{
		StartupIdeaID: idea.ID,
		RequesterID:   requesterID,
		OwnerID:       idea.UserID,
		Status:        types.NdaPending,
	}

	if err := db.DB.Create(&agreement).Error; err != nil {
		logger.Error("failed to create NDA agreement", "error", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to request NDA access"})
		return
	}

	notify(requesterID, idea.UserID, "NDA Request",
		"Someone requested NDA access to your idea \""+idea.Title+"\".")

	ctx.JSON(http.StatusCreated, agreement)
}

type ConnectRequest struct {
	ConnectionType string `json:"connection_type" binding:"required"`
	Message        string `json:"message"`
}

// Connect records an expression of interest toward an idea. Owners cannot
// express interest in their own ideas.
func Connect(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	ideaID, err := utils.ParamUUID(ctx, "idea_id")

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var req ConnectRequest

	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	if !types.IsValidConnectionType(req.ConnectionType) {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid connection type"})
		return
	}

	var idea models.StartupIdea

	if err := db.DB.Where("id = ? AND is_active = ?", ideaID, true).First(&idea).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Idea not found"})
		} else {
			logger.Error("failed to fetch startup idea", "error", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send connection request"})
		}
		return
	}

	if idea.OwnedBy(userID) {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "You cannot express interest in your own idea"})
		return
	}

	connection := models.StartupConnection{
		StartupIdeaID:  idea.ID,
		UserID:         userID,
		ConnectionType: req.ConnectionType,
		Message:        req.Message,
		Status:         "pending",
	}

	if err := db.DB.Create(&connection).Error; err != nil {
		logger.Error("failed to create startup connection", "error", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send connection request"})
		return
	}

	notify(userID, idea.UserID, "New Interest",
		"Someone expressed interest in your idea \""+idea.Title+"\" as a "+req.ConnectionType+".")

	ctx.JSON(http.StatusCreated, connection)
}

func summarize(idea models.StartupIdea, ownerName string, viewerID uuid.UUID) IdeaSummary {
	return IdeaSummary{
		ID:             idea.ID.String(),
		Title:          idea.Title,
		Description:    idea.Description,
		Industry:       idea.Industry,
		Stage:          idea.Stage,
		Tags:           idea.Tags,
		ViewCount:      idea.ViewCount,
		IsPublic:       idea.IsPublic,
		RequiresNda:    idea.RequiresNda,
		OwnerID:        idea.UserID.String(),
		OwnerName:      ownerName,
		CanViewDetails: idea.ViewableBy(viewerID),
		IsOwner:        idea.OwnedBy(viewerID),
	}
}

func detail(idea models.StartupIdea, summary IdeaSummary) IdeaDetail {
	return IdeaDetail{
		IdeaSummary:      summary,
		ProblemStatement: idea.ProblemStatement,
		Solution:         idea.Solution,
		BusinessModel:    idea.BusinessModel,
		TargetMarket:     idea.TargetMarket,
		FundingNeeded:    idea.FundingNeeded,
		EquityOffered:    idea.EquityOffered,
	}
}

func ownerNamesFor(ideas []models.StartupIdea) (map[string]string, error) {
	ids := make([]string, 0, len(ideas))
	seen := make(map[string]bool, len(ideas))

	for _, idea := range ideas {
		key := idea.UserID.String()
		if !seen[key] {
			seen[key] = true
			ids = append(ids, key)
		}
	}

	names := make(map[string]string, len(ids))

	if len(ids) == 0 {
		return names, nil
	}

	var owners []models.User

	if err := db.DB.Where("id IN ?", ids).Find(&owners).Error; err != nil {
		return nil, err
	}

	for _, owner := range owners {
		names[owner.ID.String()] = owner.FullName
	}

	return names, nil
}
