package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/GeetAtGit/ReportVerse/internal/app/models/dto"
	"github.com/GeetAtGit/ReportVerse/internal/app/services"
	"github.com/GeetAtGit/ReportVerse/internal/middleware"
)

// AchievementController handles achievement logging and listing
type AchievementController struct {
	achievementService services.AchievementService
	logger             zerolog.Logger
}

// NewAchievementController creates a new AchievementController
func NewAchievementController(achievementService services.AchievementService, logger zerolog.Logger) *AchievementController {
	return &AchievementController{
		achievementService: achievementService,
		logger:             logger,
	}
}

// Create logs an achievement
// @Summary Log an achievement
// @Description Records an achievement. Mentees log their own; mentors log on behalf of a roster mentee via menteeId.
// @Tags achievements
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateAchievementRequest true "Achievement details"
// @Success 201 {object} dto.APIResponse{data=models.Achievement}
// @Failure 400 {object} dto.ErrorResponse "Invalid payload or caller has no mentor assigned"
// @Failure 403 {object} dto.ErrorResponse "Mentee is not on the caller's roster"
// @Router /mentee/achievements [post]
func (c *AchievementController) Create(ctx *gin.Context) {
	caller, ok := middleware.CallerFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse("authentication required"))
		return
	}

	var req dto.CreateAchievementRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid request payload"))
		return
	}

	achievement, err := c.achievementService.Create(ctx.Request.Context(), caller, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(achievement))
}

// List returns the caller's achievements, newest first
// @Summary List achievements
// @Description Lists achievements. Mentees see their own, mentors see achievements across their roster.
// @Tags achievements
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Achievement}
// @Failure 401 {object} dto.ErrorResponse "Missing or invalid token"
// @Router /mentee/achievements [get]
func (c *AchievementController) List(ctx *gin.Context) {
	caller, ok := middleware.CallerFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse("authentication required"))
		return
	}

	achievements, err := c.achievementService.ListForCaller(ctx.Request.Context(), caller)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewListResponse(len(achievements), achievements))
}
