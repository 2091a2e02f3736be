package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/GeetAtGit/ReportVerse/internal/app/models"
	"github.com/GeetAtGit/ReportVerse/internal/app/models/dto"
	"github.com/GeetAtGit/ReportVerse/internal/app/repositories"
	"github.com/GeetAtGit/ReportVerse/internal/pkg/apperrors"
	"github.com/GeetAtGit/ReportVerse/internal/pkg/auth"
	"github.com/GeetAtGit/ReportVerse/internal/pkg/validation"
)

// authService implements AuthService
type authService struct {
	userRepo       repositories.IUserRepository
	mentorshipRepo repositories.IMentorshipRepository
	jwtService     *auth.JWTService
	logger         zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(
	userRepo repositories.IUserRepository,
	mentorshipRepo repositories.IMentorshipRepository,
	jwtService *auth.JWTService,
	logger zerolog.Logger,
) AuthService {
	return &authService{
		userRepo:       userRepo,
		mentorshipRepo: mentorshipRepo,
		jwtService:     jwtService,
		logger:         logger,
	}
}

// Register creates a new user with the given role and returns the user and a
// signed bearer token. For mentees carrying a mentorId, auto-assignment is
// attempted; assignment failures are swallowed and registration still
// succeeds unassigned.
func (s *authService) Register(ctx context.Context, role models.Role, req *dto.RegisterRequest) (*models.User, string, error) {
	email := validation.NormalizeEmail(req.Email)
	if !validation.ValidEmail(email) {
		return nil, "", apperrors.NewValidationError("invalid email format")
	}
	if len(req.Password) < validation.PasswordMinLength {
		return nil, "", apperrors.NewValidationError(fmt.Sprintf("password must be at least %d characters", validation.PasswordMinLength))
	}
	if !validation.NonEmpty(req.Name) {
		return nil, "", apperrors.NewValidationError("name is required")
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Email:    email,
		Password: hashed,
		Name:     req.Name,
		Phone:    req.Phone,
		Role:     role,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, "", err
	}

	// Optional mentor auto-assignment at mentee registration. Any failure
	// here (unknown id, wrong role, already assigned) leaves the mentee
	// unassigned; registration itself has already succeeded.
	if role == models.RoleMentee && req.MentorID != nil {
		if err := s.autoAssign(ctx, *req.MentorID, user.ID); err != nil {
			s.logger.Warn().
				Err(err).
				Int64("mentorId", *req.MentorID).
				Int64("menteeId", user.ID).
				Msg("Mentor auto-assignment failed, registering without assignment")
		} else {
			user.AssignedMentor = req.MentorID
		}
	}

	token, err := s.jwtService.GenerateToken(user)
	if err != nil {
		return nil, "", fmt.Errorf("failed to issue token: %w", err)
	}

	s.logger.Info().Int64("userId", user.ID).Str("role", string(role)).Msg("User registered")
	return user, token, nil
}

// autoAssign validates the target mentor and inserts the mentorship edge
func (s *authService) autoAssign(ctx context.Context, mentorID, menteeID int64) error {
	mentor, err := s.userRepo.GetByID(ctx, mentorID)
	if err != nil {
		return err
	}
	if mentor.Role != models.RoleMentor {
		return apperrors.ErrMentorNotFound
	}
	return s.mentorshipRepo.Assign(ctx, mentorID, menteeID)
}

// Login verifies credentials and issues a bearer token. Unknown emails and
// wrong passwords both return ErrInvalidCredentials so callers cannot probe
// which emails are registered.
func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*models.User, string, error) {
	email := validation.NormalizeEmail(req.Email)

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, "", apperrors.ErrInvalidCredentials
	}

	if !auth.CheckPassword(user.Password, req.Password) {
		return nil, "", apperrors.ErrInvalidCredentials
	}

	token, err := s.jwtService.GenerateToken(user)
	if err != nil {
		return nil, "", fmt.Errorf("failed to issue token: %w", err)
	}

	s.logger.Info().Int64("userId", user.ID).Msg("User logged in")
	return user, token, nil
}

// GetCurrentUser returns the caller's identity view, with the mentorship
// edge resolved into assignedMentor / mentees depending on role.
func (s *authService) GetCurrentUser(ctx context.Context, userID int64) (*dto.CurrentUserResponse, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	resp := &dto.CurrentUserResponse{
		ID:               user.ID,
		Email:            user.Email,
		Name:             user.Name,
		Phone:            user.Phone,
		Role:             string(user.Role),
		ProfileCompleted: user.ProfileCompleted,
	}

	switch user.Role {
	case models.RoleMentee:
		mentorID, err := s.mentorshipRepo.MentorOf(ctx, userID)
		if err != nil {
			return nil, err
		}
		resp.AssignedMentor = mentorID
	case models.RoleMentor:
		mentees, err := s.mentorshipRepo.MenteesOf(ctx, userID)
		if err != nil {
			return nil, err
		}
		resp.Mentees = mentees
	}

	return resp, nil
}

// UpdateProfile stores the mentee's profile fields and marks the profile complete
func (s *authService) UpdateProfile(ctx context.Context, userID int64, req *dto.UpdateProfileRequest) error {
	if !validation.NonEmpty(req.Name) {
		return apperrors.NewValidationError("name is required")
	}
	if !validation.ValidPhone(req.Phone) {
		return apperrors.NewValidationError("invalid phone number")
	}

	return s.userRepo.UpdateProfile(ctx, userID, req.Name, req.Phone)
}
