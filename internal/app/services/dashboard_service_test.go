package services

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/GeetAtGit/ReportVerse/internal/app/models"
)

func TestMenteeDashboardAggregates(t *testing.T) {
	userRepo := &fakeUserRepo{
		GetByIDFn: func(ctx context.Context, id int64) (*models.User, error) {
			return &models.User{ID: id, Role: models.RoleMentee, ProfileCompleted: true}, nil
		},
	}
	mentorshipRepo := &fakeMentorshipRepo{
		MentorOfFn: func(ctx context.Context, menteeID int64) (*int64, error) {
			return int64Ptr(2), nil
		},
	}
	issues := make([]models.Issue, 7)
	for i := range issues {
		issues[i] = models.Issue{ID: int64(len(issues) - i), MenteeID: 1}
	}
	issueRepo := &fakeIssueRepo{
		CountByStatusForMenteeFn: func(ctx context.Context, menteeID int64) (map[string]int, error) {
			return map[string]int{"Open": 3, "Resolved": 4}, nil
		},
		ListByMenteeFn: func(ctx context.Context, menteeID int64) ([]models.Issue, error) {
			return issues, nil
		},
	}
	achievementRepo := &fakeAchievementRepo{
		CountByMenteeFn: func(ctx context.Context, menteeID int64) (int, error) {
			return 4, nil
		},
	}

	svc := NewDashboardService(userRepo, mentorshipRepo, issueRepo, achievementRepo, 72*time.Hour, zerolog.Nop())
	view, err := svc.MenteeDashboard(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !view.ProfileCompleted {
		t.Error("profileCompleted should be true")
	}
	if view.AssignedMentor == nil || *view.AssignedMentor != 2 {
		t.Errorf("assignedMentor = %v, want 2", view.AssignedMentor)
	}
	if view.IssueCounts["Open"] != 3 {
		t.Errorf("open count = %d, want 3", view.IssueCounts["Open"])
	}
	if view.AchievementCount != 4 {
		t.Errorf("achievement count = %d, want 4", view.AchievementCount)
	}
	// Latest issues are capped at five, keeping list order
	if len(view.LatestIssues) != 5 {
		t.Fatalf("latest issues = %d, want 5", len(view.LatestIssues))
	}
	if view.LatestIssues[0].ID != 7 {
		t.Errorf("first latest issue = %d, want newest (7)", view.LatestIssues[0].ID)
	}
}

func TestMentorDashboardAggregates(t *testing.T) {
	var pendingCutoff time.Time
	mentorshipRepo := &fakeMentorshipRepo{
		MenteesOfFn: func(ctx context.Context, mentorID int64) ([]int64, error) {
			return []int64{1, 3, 4}, nil
		},
	}
	issueRepo := &fakeIssueRepo{
		CountByStatusForMentorFn: func(ctx context.Context, mentorID int64) (map[string]int, error) {
			return map[string]int{"Open": 2, "Under Review": 1, "Closed": 5}, nil
		},
		CountPendingForMentorFn: func(ctx context.Context, mentorID int64, olderThan time.Time) (int, error) {
			pendingCutoff = olderThan
			return 1, nil
		},
		ListByMentorFn: func(ctx context.Context, mentorID int64) ([]models.Issue, error) {
			return []models.Issue{{ID: 9}, {ID: 8}}, nil
		},
	}

	threshold := 72 * time.Hour
	svc := NewDashboardService(&fakeUserRepo{}, mentorshipRepo, issueRepo, &fakeAchievementRepo{}, threshold, zerolog.Nop())
	view, err := svc.MentorDashboard(context.Background(), 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if view.MenteeCount != 3 {
		t.Errorf("mentee count = %d, want 3", view.MenteeCount)
	}
	if view.OpenIssues != 2 || view.UnderReviewIssues != 1 {
		t.Errorf("issue counts = open %d review %d, want 2 and 1", view.OpenIssues, view.UnderReviewIssues)
	}
	if view.PendingIssues != 1 {
		t.Errorf("pending = %d, want 1", view.PendingIssues)
	}
	if len(view.LatestIssues) != 2 {
		t.Errorf("latest issues = %d, want 2", len(view.LatestIssues))
	}

	// The cutoff handed to the repository sits one threshold in the past
	wantCutoff := time.Now().Add(-threshold)
	if pendingCutoff.After(wantCutoff.Add(time.Minute)) || pendingCutoff.Before(wantCutoff.Add(-time.Minute)) {
		t.Errorf("pending cutoff = %v, want about %v", pendingCutoff, wantCutoff)
	}
}
