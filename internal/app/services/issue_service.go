package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/GeetAtGit/ReportVerse/internal/app/models"
	"github.com/GeetAtGit/ReportVerse/internal/app/models/dto"
	"github.com/GeetAtGit/ReportVerse/internal/app/repositories"
	"github.com/GeetAtGit/ReportVerse/internal/pkg/apperrors"
)

// issueService implements IssueService
type issueService struct {
	issueRepo      repositories.IIssueRepository
	mentorshipRepo repositories.IMentorshipRepository
	logger         zerolog.Logger
}

// NewIssueService creates a new IssueService
func NewIssueService(
	issueRepo repositories.IIssueRepository,
	mentorshipRepo repositories.IMentorshipRepository,
	logger zerolog.Logger,
) IssueService {
	return &issueService{
		issueRepo:      issueRepo,
		mentorshipRepo: mentorshipRepo,
		logger:         logger,
	}
}

// Create opens a new issue for the mentee. The mentee must have an assigned
// mentor; the mentor id is snapshotted onto the issue and never changes,
// even if the mentee is later reassigned.
func (s *issueService) Create(ctx context.Context, menteeID int64, req *dto.CreateIssueRequest) (*models.Issue, error) {
	issueType := models.IssueType(req.IssueType)
	if !issueType.Valid() {
		return nil, apperrors.NewValidationError(fmt.Sprintf("invalid issue type %q", req.IssueType))
	}
	if strings.TrimSpace(req.Description) == "" {
		return nil, apperrors.NewValidationError("description is required")
	}

	mentorID, err := s.mentorshipRepo.MentorOf(ctx, menteeID)
	if err != nil {
		return nil, err
	}
	if mentorID == nil {
		return nil, apperrors.ErrNotAssigned
	}

	issue := &models.Issue{
		MenteeID:    menteeID,
		MentorID:    *mentorID,
		IssueType:   issueType,
		Description: req.Description,
		Status:      models.StatusOpen,
	}

	if err := s.issueRepo.Create(ctx, issue); err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("issueId", issue.ID).
		Int64("menteeId", menteeID).
		Str("issueType", string(issueType)).
		Msg("Issue created")
	return issue, nil
}

// ListForCaller lists issues scoped to the caller, newest-created-first:
// a mentee sees issues they own, a mentor sees issues recorded against them.
func (s *issueService) ListForCaller(ctx context.Context, caller models.UserRef) ([]models.Issue, error) {
	switch caller.Role {
	case models.RoleMentee:
		return s.issueRepo.ListByMentee(ctx, caller.ID)
	case models.RoleMentor:
		return s.issueRepo.ListByMentor(ctx, caller.ID)
	}
	return nil, apperrors.NewForbiddenError("unknown role")
}

// Get loads one issue with resolved comment authors. The caller must be the
// owning mentee or the recorded mentor; this is re-checked on every request.
func (s *issueService) Get(ctx context.Context, issueID int64, caller models.UserRef) (*models.Issue, error) {
	issue, err := s.issueRepo.GetWithComments(ctx, issueID)
	if err != nil {
		return nil, err
	}

	if err := s.authorize(issue, caller); err != nil {
		return nil, err
	}

	return issue, nil
}

// AddComment appends a comment to the issue and optionally transitions its
// status. Closed issues accept no further comments, and status moves must be
// legal: only Open and Under Review may transition, and only to Under
// Review, Resolved or Closed.
func (s *issueService) AddComment(ctx context.Context, issueID int64, caller models.UserRef, req *dto.AddCommentRequest) (*models.Issue, error) {
	if strings.TrimSpace(req.Text) == "" {
		return nil, apperrors.NewValidationError("comment text is required")
	}

	issue, err := s.issueRepo.GetByID(ctx, issueID)
	if err != nil {
		return nil, err
	}
	if err := s.authorize(issue, caller); err != nil {
		return nil, err
	}

	if issue.Status == models.StatusClosed {
		return nil, apperrors.ErrIssueClosed
	}

	if req.NewStatus != "" {
		next := models.IssueStatus(req.NewStatus)
		if !next.Valid() {
			return nil, apperrors.NewValidationError(fmt.Sprintf("invalid status %q", req.NewStatus))
		}
		if next != issue.Status {
			if !issue.Status.CanTransitionTo(next) {
				return nil, apperrors.NewCustomError(apperrors.ErrInvalidTransition,
					fmt.Sprintf("cannot move issue from %q to %q", issue.Status, next))
			}
			if err := s.issueRepo.UpdateStatus(ctx, issueID, next); err != nil {
				return nil, err
			}
		}
	}

	comment := &models.Comment{
		IssueID:  issueID,
		AuthorID: caller.ID,
		Text:     req.Text,
	}
	if err := s.issueRepo.AddComment(ctx, comment); err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("issueId", issueID).
		Int64("authorId", caller.ID).
		Str("newStatus", req.NewStatus).
		Msg("Comment added")

	// Return the updated thread with the new comment as its last element
	return s.issueRepo.GetWithComments(ctx, issueID)
}

// authorize checks the caller against the issue's recorded mentee and mentor
func (s *issueService) authorize(issue *models.Issue, caller models.UserRef) error {
	switch caller.Role {
	case models.RoleMentee:
		if issue.MenteeID == caller.ID {
			return nil
		}
	case models.RoleMentor:
		if issue.MentorID == caller.ID {
			return nil
		}
	}
	return apperrors.NewForbiddenError("you do not have access to this issue")
}
