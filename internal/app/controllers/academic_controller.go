package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/GeetAtGit/ReportVerse/internal/app/models/dto"
	"github.com/GeetAtGit/ReportVerse/internal/app/services"
	"github.com/GeetAtGit/ReportVerse/internal/middleware"
)

// AcademicController handles the per-mentee academic record
type AcademicController struct {
	academicService services.AcademicService
	logger          zerolog.Logger
}

// NewAcademicController creates a new AcademicController
func NewAcademicController(academicService services.AcademicService, logger zerolog.Logger) *AcademicController {
	return &AcademicController{
		academicService: academicService,
		logger:          logger,
	}
}

// Get returns the caller's academic record
// @Summary Get academic record
// @Description Returns the caller's academic record. Mentees without one yet get an empty record.
// @Tags academics
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=models.AcademicRecord}
// @Failure 401 {object} dto.ErrorResponse "Missing or invalid token"
// @Router /mentee/academics [get]
func (c *AcademicController) Get(ctx *gin.Context) {
	caller, ok := middleware.CallerFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse("authentication required"))
		return
	}

	record, err := c.academicService.Get(ctx.Request.Context(), caller.ID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(record))
}

// Update merges the supplied fields into the caller's academic record
// @Summary Update academic record
// @Description Applies a partial update. Only fields present in the payload are replaced; omitted fields keep their stored values.
// @Tags academics
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.UpdateAcademicRecordRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=models.AcademicRecord}
// @Failure 400 {object} dto.ErrorResponse "Invalid GPA, semester or backlog value"
// @Router /mentee/academics [put]
func (c *AcademicController) Update(ctx *gin.Context) {
	caller, ok := middleware.CallerFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse("authentication required"))
		return
	}

	var req dto.UpdateAcademicRecordRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid request payload"))
		return
	}

	record, err := c.academicService.Update(ctx.Request.Context(), caller.ID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(record))
}

// UploadMarksheet attaches a marksheet file to the caller's record
// @Summary Upload a marksheet
// @Description Stores the uploaded file and appends a marksheet entry for the given semester.
// @Tags academics
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param semester formData int true "Semester number"
// @Param file formData file true "Marksheet file"
// @Success 200 {object} dto.APIResponse{data=models.AcademicRecord}
// @Failure 400 {object} dto.ErrorResponse "Missing file or invalid semester"
// @Router /mentee/academics/marksheets [post]
func (c *AcademicController) UploadMarksheet(ctx *gin.Context) {
	caller, ok := middleware.CallerFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse("authentication required"))
		return
	}

	semester, err := strconv.Atoi(ctx.PostForm("semester"))
	if err != nil || semester < 1 {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("semester must be a positive number"))
		return
	}

	file, err := ctx.FormFile("file")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("marksheet file is required"))
		return
	}

	record, err := c.academicService.AddMarksheet(ctx.Request.Context(), caller.ID, semester, file)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(record))
}
