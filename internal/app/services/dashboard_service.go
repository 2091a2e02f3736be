package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/GeetAtGit/ReportVerse/internal/app/models"
	"github.com/GeetAtGit/ReportVerse/internal/app/models/dto"
	"github.com/GeetAtGit/ReportVerse/internal/app/repositories"
)

// latestIssueLimit caps how many recent issues a dashboard embeds
const latestIssueLimit = 5

// dashboardService implements DashboardService
type dashboardService struct {
	userRepo         repositories.IUserRepository
	mentorshipRepo   repositories.IMentorshipRepository
	issueRepo        repositories.IIssueRepository
	achievementRepo  repositories.IAchievementRepository
	pendingThreshold time.Duration
	logger           zerolog.Logger
}

// NewDashboardService creates a new DashboardService. pendingThreshold is
// the age past which Open/Under Review issues count as pending.
func NewDashboardService(
	userRepo repositories.IUserRepository,
	mentorshipRepo repositories.IMentorshipRepository,
	issueRepo repositories.IIssueRepository,
	achievementRepo repositories.IAchievementRepository,
	pendingThreshold time.Duration,
	logger zerolog.Logger,
) DashboardService {
	return &dashboardService{
		userRepo:         userRepo,
		mentorshipRepo:   mentorshipRepo,
		issueRepo:        issueRepo,
		achievementRepo:  achievementRepo,
		pendingThreshold: pendingThreshold,
		logger:           logger,
	}
}

// MenteeDashboard aggregates the mentee's own view
func (s *dashboardService) MenteeDashboard(ctx context.Context, menteeID int64) (*dto.MenteeDashboardResponse, error) {
	user, err := s.userRepo.GetByID(ctx, menteeID)
	if err != nil {
		return nil, err
	}

	mentorID, err := s.mentorshipRepo.MentorOf(ctx, menteeID)
	if err != nil {
		return nil, err
	}

	counts, err := s.issueRepo.CountByStatusForMentee(ctx, menteeID)
	if err != nil {
		return nil, err
	}

	achievementCount, err := s.achievementRepo.CountByMentee(ctx, menteeID)
	if err != nil {
		return nil, err
	}

	issues, err := s.issueRepo.ListByMentee(ctx, menteeID)
	if err != nil {
		return nil, err
	}

	return &dto.MenteeDashboardResponse{
		ProfileCompleted: user.ProfileCompleted,
		AssignedMentor:   mentorID,
		IssueCounts:      counts,
		AchievementCount: achievementCount,
		LatestIssues:     truncateIssues(issues, latestIssueLimit),
	}, nil
}

// MentorDashboard aggregates the mentor's roster view
func (s *dashboardService) MentorDashboard(ctx context.Context, mentorID int64) (*dto.MentorDashboardResponse, error) {
	mentees, err := s.mentorshipRepo.MenteesOf(ctx, mentorID)
	if err != nil {
		return nil, err
	}

	counts, err := s.issueRepo.CountByStatusForMentor(ctx, mentorID)
	if err != nil {
		return nil, err
	}

	pending, err := s.issueRepo.CountPendingForMentor(ctx, mentorID, time.Now().Add(-s.pendingThreshold))
	if err != nil {
		return nil, err
	}

	issues, err := s.issueRepo.ListByMentor(ctx, mentorID)
	if err != nil {
		return nil, err
	}

	return &dto.MentorDashboardResponse{
		MenteeCount:       len(mentees),
		OpenIssues:        counts[string(models.StatusOpen)],
		UnderReviewIssues: counts[string(models.StatusUnderReview)],
		PendingIssues:     pending,
		LatestIssues:      truncateIssues(issues, latestIssueLimit),
	}, nil
}

func truncateIssues(issues []models.Issue, limit int) []models.Issue {
	if len(issues) > limit {
		return issues[:limit]
	}
	return issues
}
