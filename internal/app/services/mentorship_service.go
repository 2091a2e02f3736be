package services

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/GeetAtGit/ReportVerse/internal/app/models"
	"github.com/GeetAtGit/ReportVerse/internal/app/models/dto"
	"github.com/GeetAtGit/ReportVerse/internal/app/repositories"
	"github.com/GeetAtGit/ReportVerse/internal/pkg/apperrors"
	"github.com/GeetAtGit/ReportVerse/internal/pkg/validation"
)

// mentorshipService implements MentorshipService
type mentorshipService struct {
	userRepo       repositories.IUserRepository
	mentorshipRepo repositories.IMentorshipRepository
	academicRepo   repositories.IAcademicRepository
	logger         zerolog.Logger
}

// NewMentorshipService creates a new MentorshipService
func NewMentorshipService(
	userRepo repositories.IUserRepository,
	mentorshipRepo repositories.IMentorshipRepository,
	academicRepo repositories.IAcademicRepository,
	logger zerolog.Logger,
) MentorshipService {
	return &mentorshipService{
		userRepo:       userRepo,
		mentorshipRepo: mentorshipRepo,
		academicRepo:   academicRepo,
		logger:         logger,
	}
}

// AssignMentee links a mentee to the calling mentor by email. Fails with
// ErrMenteeNotFound when no mentee has that email and ErrAlreadyAssigned
// when the mentee already has any mentor (this one included).
func (s *mentorshipService) AssignMentee(ctx context.Context, mentorID int64, menteeEmail string) (*models.Mentorship, error) {
	mentee, err := s.userRepo.GetByEmail(ctx, validation.NormalizeEmail(menteeEmail))
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrMenteeNotFound
		}
		return nil, err
	}
	if mentee.Role != models.RoleMentee {
		return nil, apperrors.ErrMenteeNotFound
	}

	if err := s.mentorshipRepo.Assign(ctx, mentorID, mentee.ID); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("mentorId", mentorID).Int64("menteeId", mentee.ID).Msg("Mentee assigned")
	return &models.Mentorship{MentorID: mentorID, MenteeID: mentee.ID}, nil
}

// ListMentees returns the mentor's roster as user records, in assignment order
func (s *mentorshipService) ListMentees(ctx context.Context, mentorID int64) ([]models.User, error) {
	ids, err := s.mentorshipRepo.MenteesOf(ctx, mentorID)
	if err != nil {
		return nil, err
	}

	mentees := make([]models.User, 0, len(ids))
	for _, id := range ids {
		mentee, err := s.userRepo.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		mentee.Password = ""
		mentees = append(mentees, *mentee)
	}

	return mentees, nil
}

// GetMenteeDetail returns one roster mentee's profile and academic record.
// Fails Forbidden unless the mentee belongs to the calling mentor's roster.
func (s *mentorshipService) GetMenteeDetail(ctx context.Context, mentorID, menteeID int64) (*dto.MenteeDetailResponse, error) {
	member, err := s.mentorshipRepo.IsMenteeOf(ctx, mentorID, menteeID)
	if err != nil {
		return nil, err
	}
	if !member {
		return nil, apperrors.NewForbiddenError("mentee is not on your roster")
	}

	mentee, err := s.userRepo.GetByID(ctx, menteeID)
	if err != nil {
		return nil, err
	}

	detail := &dto.MenteeDetailResponse{
		ID:               mentee.ID,
		Email:            mentee.Email,
		Name:             mentee.Name,
		Phone:            mentee.Phone,
		ProfileCompleted: mentee.ProfileCompleted,
	}

	record, err := s.academicRepo.GetByMentee(ctx, menteeID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrRecordNotFound) {
			return nil, err
		}
		// No record yet; profile alone is still a valid view
	} else {
		detail.AcademicRecord = record
	}

	return detail, nil
}
