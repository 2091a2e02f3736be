package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/GeetAtGit/ReportVerse/internal/app/models/dto"
	"github.com/GeetAtGit/ReportVerse/internal/app/services"
	"github.com/GeetAtGit/ReportVerse/internal/middleware"
)

// MentorshipController handles roster operations for mentors
type MentorshipController struct {
	mentorshipService services.MentorshipService
	logger            zerolog.Logger
}

// NewMentorshipController creates a new MentorshipController
func NewMentorshipController(mentorshipService services.MentorshipService, logger zerolog.Logger) *MentorshipController {
	return &MentorshipController{
		mentorshipService: mentorshipService,
		logger:            logger,
	}
}

// AssignMentee links a mentee to the calling mentor by email
// @Summary Assign a mentee
// @Description Adds the mentee with the given email to the caller's roster. A mentee can belong to at most one mentor.
// @Tags mentees
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.AssignMenteeRequest true "Mentee email"
// @Success 200 {object} dto.APIResponse{data=models.Mentorship}
// @Failure 400 {object} dto.ErrorResponse "Mentee already assigned"
// @Failure 404 {object} dto.ErrorResponse "No mentee account with that email"
// @Router /mentor/mentees/assign [post]
func (c *MentorshipController) AssignMentee(ctx *gin.Context) {
	caller, ok := middleware.CallerFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse("authentication required"))
		return
	}

	var req dto.AssignMenteeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid request payload"))
		return
	}

	mentorship, err := c.mentorshipService.AssignMentee(ctx.Request.Context(), caller.ID, req.Email)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(mentorship))
}

// ListMentees returns the caller's roster
// @Summary List mentees
// @Description Returns the mentees on the caller's roster.
// @Tags mentees
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.User}
// @Failure 401 {object} dto.ErrorResponse "Missing or invalid token"
// @Router /mentor/mentees [get]
func (c *MentorshipController) ListMentees(ctx *gin.Context) {
	caller, ok := middleware.CallerFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse("authentication required"))
		return
	}

	mentees, err := c.mentorshipService.ListMentees(ctx.Request.Context(), caller.ID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewListResponse(len(mentees), mentees))
}

// GetMenteeDetail returns one roster mentee's profile with academics
// @Summary Get mentee detail
// @Description Returns a roster mentee's profile together with their academic record. Mentees outside the roster answer 403.
// @Tags mentees
// @Produce json
// @Security BearerAuth
// @Param id path int true "Mentee ID"
// @Success 200 {object} dto.APIResponse{data=dto.MenteeDetailResponse}
// @Failure 403 {object} dto.ErrorResponse "Mentee is not on the caller's roster"
// @Failure 404 {object} dto.ErrorResponse "Mentee not found"
// @Router /mentor/mentees/{id} [get]
func (c *MentorshipController) GetMenteeDetail(ctx *gin.Context) {
	caller, ok := middleware.CallerFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse("authentication required"))
		return
	}

	menteeID, err := parseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	detail, err := c.mentorshipService.GetMenteeDetail(ctx.Request.Context(), caller.ID, menteeID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(detail))
}
