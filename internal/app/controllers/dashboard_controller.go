package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/GeetAtGit/ReportVerse/internal/app/models/dto"
	"github.com/GeetAtGit/ReportVerse/internal/app/services"
	"github.com/GeetAtGit/ReportVerse/internal/middleware"
)

// DashboardController serves the role-scoped aggregate views
type DashboardController struct {
	dashboardService services.DashboardService
	logger           zerolog.Logger
}

// NewDashboardController creates a new DashboardController
func NewDashboardController(dashboardService services.DashboardService, logger zerolog.Logger) *DashboardController {
	return &DashboardController{
		dashboardService: dashboardService,
		logger:           logger,
	}
}

// MenteeDashboard returns the mentee home view
// @Summary Mentee dashboard
// @Description Returns the mentee's profile state, mentor link, issue counts by status, achievement count and latest issues.
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.MenteeDashboardResponse}
// @Failure 401 {object} dto.ErrorResponse "Missing or invalid token"
// @Router /mentee/dashboard [get]
func (c *DashboardController) MenteeDashboard(ctx *gin.Context) {
	caller, ok := middleware.CallerFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse("authentication required"))
		return
	}

	view, err := c.dashboardService.MenteeDashboard(ctx.Request.Context(), caller.ID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(view))
}

// MentorDashboard returns the mentor home view
// @Summary Mentor dashboard
// @Description Returns roster size, open and in-review issue counts, the stale pending count and latest issues.
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.MentorDashboardResponse}
// @Failure 401 {object} dto.ErrorResponse "Missing or invalid token"
// @Router /mentor/dashboard [get]
func (c *DashboardController) MentorDashboard(ctx *gin.Context) {
	caller, ok := middleware.CallerFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse("authentication required"))
		return
	}

	view, err := c.dashboardService.MentorDashboard(ctx.Request.Context(), caller.ID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(view))
}
