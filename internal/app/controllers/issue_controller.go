package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/GeetAtGit/ReportVerse/internal/app/models/dto"
	"github.com/GeetAtGit/ReportVerse/internal/app/services"
	"github.com/GeetAtGit/ReportVerse/internal/middleware"
	"github.com/GeetAtGit/ReportVerse/internal/pkg/apperrors"
)

// IssueController handles issue threads for both roles
type IssueController struct {
	issueService services.IssueService
	logger       zerolog.Logger
}

// NewIssueController creates a new IssueController
func NewIssueController(issueService services.IssueService, logger zerolog.Logger) *IssueController {
	return &IssueController{
		issueService: issueService,
		logger:       logger,
	}
}

// Create opens a new issue for the calling mentee
// @Summary Report an issue
// @Description Opens an issue thread against the caller's assigned mentor.
// @Tags issues
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateIssueRequest true "Issue details"
// @Success 201 {object} dto.APIResponse{data=models.Issue}
// @Failure 400 {object} dto.ErrorResponse "Invalid payload or no mentor assigned"
// @Failure 401 {object} dto.ErrorResponse "Missing or invalid token"
// @Router /mentee/issues [post]
func (c *IssueController) Create(ctx *gin.Context) {
	caller, ok := middleware.CallerFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse("authentication required"))
		return
	}

	var req dto.CreateIssueRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid request payload"))
		return
	}

	issue, err := c.issueService.Create(ctx.Request.Context(), caller.ID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(issue))
}

// List returns the caller's issues, newest first
// @Summary List issues
// @Description Lists the caller's issues. Mentees see issues they reported, mentors see issues across their roster.
// @Tags issues
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Issue}
// @Failure 401 {object} dto.ErrorResponse "Missing or invalid token"
// @Router /mentee/issues [get]
func (c *IssueController) List(ctx *gin.Context) {
	caller, ok := middleware.CallerFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse("authentication required"))
		return
	}

	issues, err := c.issueService.ListForCaller(ctx.Request.Context(), caller)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewListResponse(len(issues), issues))
}

// Get returns a single issue with its comment thread
// @Summary Get an issue
// @Description Returns one issue with its comments in chronological order. Only the reporting mentee and the recorded mentor may read it.
// @Tags issues
// @Produce json
// @Security BearerAuth
// @Param id path int true "Issue ID"
// @Success 200 {object} dto.APIResponse{data=models.Issue}
// @Failure 403 {object} dto.ErrorResponse "Caller is not a participant"
// @Failure 404 {object} dto.ErrorResponse "Issue not found"
// @Router /mentee/issues/{id} [get]
func (c *IssueController) Get(ctx *gin.Context) {
	caller, ok := middleware.CallerFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse("authentication required"))
		return
	}

	issueID, err := parseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	issue, err := c.issueService.Get(ctx.Request.Context(), issueID, caller)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(issue))
}

// AddComment appends a comment and optionally moves the issue's status
// @Summary Comment on an issue
// @Description Appends a comment to the thread. A status change may ride along; only legal transitions are accepted and closed issues reject comments.
// @Tags issues
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Issue ID"
// @Param request body dto.AddCommentRequest true "Comment text and optional new status"
// @Success 200 {object} dto.APIResponse{data=models.Issue}
// @Failure 400 {object} dto.ErrorResponse "Empty text, closed issue or illegal transition"
// @Failure 403 {object} dto.ErrorResponse "Caller is not a participant"
// @Failure 404 {object} dto.ErrorResponse "Issue not found"
// @Router /mentee/issues/{id}/comments [post]
func (c *IssueController) AddComment(ctx *gin.Context) {
	caller, ok := middleware.CallerFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse("authentication required"))
		return
	}

	issueID, err := parseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	var req dto.AddCommentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid request payload"))
		return
	}

	issue, err := c.issueService.AddComment(ctx.Request.Context(), issueID, caller, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(issue))
}

// parseIDParam reads a positive numeric path parameter
func parseIDParam(ctx *gin.Context, name string) (int64, error) {
	raw := ctx.Param(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, apperrors.NewValidationError("invalid " + name + " parameter")
	}
	return id, nil
}
