// Package controllers handles HTTP request handling
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/GeetAtGit/ReportVerse/internal/app/models"
	"github.com/GeetAtGit/ReportVerse/internal/app/models/dto"
	"github.com/GeetAtGit/ReportVerse/internal/app/services"
	"github.com/GeetAtGit/ReportVerse/internal/middleware"
)

// AuthController handles registration, login and profile operations
type AuthController struct {
	authService services.AuthService
	logger      zerolog.Logger
}

// NewAuthController creates a new AuthController
func NewAuthController(authService services.AuthService, logger zerolog.Logger) *AuthController {
	return &AuthController{
		authService: authService,
		logger:      logger,
	}
}

// RegisterMentor handles mentor registration
// @Summary Register a new mentor
// @Description Creates a mentor account and returns a session token.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "Mentor registration information"
// @Success 201 {object} dto.APIResponse{data=dto.RegisterResponse}
// @Failure 400 {object} dto.ErrorResponse "Invalid request format or email already registered"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /auth/register/mentor [post]
func (c *AuthController) RegisterMentor(ctx *gin.Context) {
	c.register(ctx, models.RoleMentor)
}

// RegisterMentee handles mentee registration
// @Summary Register a new mentee
// @Description Creates a mentee account, optionally linking it to a mentor, and returns a session token.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "Mentee registration information"
// @Success 201 {object} dto.APIResponse{data=dto.RegisterResponse}
// @Failure 400 {object} dto.ErrorResponse "Invalid request format or email already registered"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /auth/register/mentee [post]
func (c *AuthController) RegisterMentee(ctx *gin.Context) {
	c.register(ctx, models.RoleMentee)
}

func (c *AuthController) register(ctx *gin.Context, role models.Role) {
	var req dto.RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid registration request payload")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid request payload"))
		return
	}

	user, token, err := c.authService.Register(ctx.Request.Context(), role, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	resp := dto.RegisterResponse{
		ID:    user.ID,
		Email: user.Email,
		Name:  user.Name,
		Phone: user.Phone,
		Role:  string(user.Role),
	}
	ctx.JSON(http.StatusCreated, dto.NewTokenResponse(token, resp))
}

// Login handles user authentication
// @Summary Authenticate a user
// @Description Verifies credentials and returns a session token with the caller's role.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "User credentials"
// @Success 200 {object} dto.APIResponse{data=dto.LoginResponse}
// @Failure 401 {object} dto.ErrorResponse "Invalid credentials"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid request payload"))
		return
	}

	user, token, err := c.authService.Login(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	resp := dto.LoginResponse{
		ID:               user.ID,
		Email:            user.Email,
		Role:             string(user.Role),
		ProfileCompleted: user.ProfileCompleted,
	}
	ctx.JSON(http.StatusOK, dto.NewTokenResponse(token, resp))
}

// Me returns the authenticated caller's account
// @Summary Get current user
// @Description Returns the account behind the supplied token, with the mentorship link resolved.
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.CurrentUserResponse}
// @Failure 401 {object} dto.ErrorResponse "Missing or invalid token"
// @Router /auth/me [get]
func (c *AuthController) Me(ctx *gin.Context) {
	caller, ok := middleware.CallerFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse("authentication required"))
		return
	}

	resp, err := c.authService.GetCurrentUser(ctx.Request.Context(), caller.ID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp))
}

// UpdateProfile completes or edits the caller's profile
// @Summary Update own profile
// @Description Updates name and phone for the authenticated user and marks the profile completed.
// @Tags auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.UpdateProfileRequest true "Profile fields"
// @Success 200 {object} dto.APIResponse{data=dto.CurrentUserResponse}
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Failure 401 {object} dto.ErrorResponse "Missing or invalid token"
// @Router /auth/profile [put]
func (c *AuthController) UpdateProfile(ctx *gin.Context) {
	caller, ok := middleware.CallerFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse("authentication required"))
		return
	}

	var req dto.UpdateProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid request payload"))
		return
	}

	if err := c.authService.UpdateProfile(ctx.Request.Context(), caller.ID, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	resp, err := c.authService.GetCurrentUser(ctx.Request.Context(), caller.ID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp))
}
