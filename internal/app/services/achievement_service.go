package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/GeetAtGit/ReportVerse/internal/app/models"
	"github.com/GeetAtGit/ReportVerse/internal/app/models/dto"
	"github.com/GeetAtGit/ReportVerse/internal/app/repositories"
	"github.com/GeetAtGit/ReportVerse/internal/pkg/apperrors"
)

// achievementService implements AchievementService
type achievementService struct {
	achievementRepo repositories.IAchievementRepository
	mentorshipRepo  repositories.IMentorshipRepository
	logger          zerolog.Logger
}

// NewAchievementService creates a new AchievementService
func NewAchievementService(
	achievementRepo repositories.IAchievementRepository,
	mentorshipRepo repositories.IMentorshipRepository,
	logger zerolog.Logger,
) AchievementService {
	return &achievementService{
		achievementRepo: achievementRepo,
		mentorshipRepo:  mentorshipRepo,
		logger:          logger,
	}
}

// Create logs an achievement. A mentee logs for themselves and must have an
// assigned mentor; a mentor logs on behalf of a roster mentee named in the
// request. The mentor id stored on the record is the mentee's assigned
// mentor at creation time.
func (s *achievementService) Create(ctx context.Context, caller models.UserRef, req *dto.CreateAchievementRequest) (*models.Achievement, error) {
	achievementType := models.AchievementType(req.Type)
	if !achievementType.Valid() {
		return nil, apperrors.NewValidationError(fmt.Sprintf("invalid achievement type %q", req.Type))
	}

	position := models.PositionNA
	if req.Position != "" {
		position = models.AchievementPosition(req.Position)
		if !position.Valid() {
			return nil, apperrors.NewValidationError(fmt.Sprintf("invalid position %q", req.Position))
		}
	}

	if strings.TrimSpace(req.Description) == "" {
		return nil, apperrors.NewValidationError("description is required")
	}

	var menteeID int64
	switch caller.Role {
	case models.RoleMentee:
		menteeID = caller.ID
	case models.RoleMentor:
		if req.MenteeID == nil {
			return nil, apperrors.NewValidationError("menteeId is required when a mentor logs an achievement")
		}
		member, err := s.mentorshipRepo.IsMenteeOf(ctx, caller.ID, *req.MenteeID)
		if err != nil {
			return nil, err
		}
		if !member {
			return nil, apperrors.NewForbiddenError("mentee is not on your roster")
		}
		menteeID = *req.MenteeID
	default:
		return nil, apperrors.NewForbiddenError("unknown role")
	}

	mentorID, err := s.mentorshipRepo.MentorOf(ctx, menteeID)
	if err != nil {
		return nil, err
	}
	if mentorID == nil {
		return nil, apperrors.ErrNotAssigned
	}

	dateOfAchievement := time.Now()
	if req.DateOfAchievement != "" {
		parsed, err := time.Parse(time.RFC3339, req.DateOfAchievement)
		if err != nil {
			return nil, apperrors.NewValidationError("dateOfAchievement must be RFC 3339")
		}
		dateOfAchievement = parsed
	}

	achievement := &models.Achievement{
		MenteeID:          menteeID,
		MentorID:          *mentorID,
		Type:              achievementType,
		Position:          position,
		Description:       req.Description,
		DateOfAchievement: dateOfAchievement,
		IsCompleted:       true,
	}

	if err := s.achievementRepo.Create(ctx, achievement); err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("achievementId", achievement.ID).
		Int64("menteeId", menteeID).
		Str("type", string(achievementType)).
		Msg("Achievement logged")
	return achievement, nil
}

// ListForCaller lists achievements scoped to the caller: a mentee sees their
// own, a mentor sees those across their roster.
func (s *achievementService) ListForCaller(ctx context.Context, caller models.UserRef) ([]models.Achievement, error) {
	switch caller.Role {
	case models.RoleMentee:
		return s.achievementRepo.ListByMentee(ctx, caller.ID)
	case models.RoleMentor:
		return s.achievementRepo.ListByMentor(ctx, caller.ID)
	}
	return nil, apperrors.NewForbiddenError("unknown role")
}
