package services

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/GeetAtGit/ReportVerse/internal/app/models"
	"github.com/GeetAtGit/ReportVerse/internal/app/models/dto"
	"github.com/GeetAtGit/ReportVerse/internal/pkg/apperrors"
)

func newAchievementService(achievementRepo *fakeAchievementRepo, mentorshipRepo *fakeMentorshipRepo) AchievementService {
	return NewAchievementService(achievementRepo, mentorshipRepo, zerolog.Nop())
}

func TestMenteeLogsOwnAchievement(t *testing.T) {
	var stored *models.Achievement
	achievementRepo := &fakeAchievementRepo{
		CreateFn: func(ctx context.Context, achievement *models.Achievement) error {
			achievement.ID = 1
			stored = achievement
			return nil
		},
	}
	mentorshipRepo := &fakeMentorshipRepo{
		MentorOfFn: func(ctx context.Context, menteeID int64) (*int64, error) {
			return int64Ptr(2), nil
		},
	}

	svc := newAchievementService(achievementRepo, mentorshipRepo)
	got, err := svc.Create(context.Background(),
		models.UserRef{ID: 1, Role: models.RoleMentee},
		&dto.CreateAchievementRequest{
			Type:        "Sports",
			Position:    "First",
			Description: "inter-college football final",
		})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if stored == nil {
		t.Fatal("achievement was not stored")
	}
	if got.MenteeID != 1 || got.MentorID != 2 {
		t.Errorf("achievement = mentee %d mentor %d, want 1 and 2", got.MenteeID, got.MentorID)
	}
	if !got.IsCompleted {
		t.Error("achievements are logged as completed")
	}
}

func TestMenteeWithoutMentorCannotLogAchievement(t *testing.T) {
	mentorshipRepo := &fakeMentorshipRepo{
		MentorOfFn: func(ctx context.Context, menteeID int64) (*int64, error) {
			return nil, nil
		},
	}

	svc := newAchievementService(&fakeAchievementRepo{}, mentorshipRepo)
	_, err := svc.Create(context.Background(),
		models.UserRef{ID: 1, Role: models.RoleMentee},
		&dto.CreateAchievementRequest{Type: "Academic", Description: "paper accepted"})
	if !errors.Is(err, apperrors.ErrNotAssigned) {
		t.Fatalf("expected ErrNotAssigned, got %v", err)
	}
}

func TestMentorLogsOnBehalfOfRosterMentee(t *testing.T) {
	achievementRepo := &fakeAchievementRepo{
		CreateFn: func(ctx context.Context, achievement *models.Achievement) error {
			achievement.ID = 1
			return nil
		},
	}
	mentorshipRepo := &fakeMentorshipRepo{
		IsMenteeOfFn: func(ctx context.Context, mentorID, menteeID int64) (bool, error) {
			return menteeID == 1, nil
		},
		MentorOfFn: func(ctx context.Context, menteeID int64) (*int64, error) {
			return int64Ptr(2), nil
		},
	}

	svc := newAchievementService(achievementRepo, mentorshipRepo)
	mentor := models.UserRef{ID: 2, Role: models.RoleMentor}

	got, err := svc.Create(context.Background(), mentor, &dto.CreateAchievementRequest{
		Type:        "Technical",
		Description: "hackathon winner",
		MenteeID:    int64Ptr(1),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.MenteeID != 1 {
		t.Errorf("achievement belongs to mentee %d, want 1", got.MenteeID)
	}

	// Off-roster mentee is forbidden
	_, err = svc.Create(context.Background(), mentor, &dto.CreateAchievementRequest{
		Type:        "Technical",
		Description: "hackathon winner",
		MenteeID:    int64Ptr(9),
	})
	if !errors.Is(err, apperrors.ErrPermissionDenied) {
		t.Fatalf("expected permission denied for off-roster mentee, got %v", err)
	}

	// Missing menteeId is a validation failure
	_, err = svc.Create(context.Background(), mentor, &dto.CreateAchievementRequest{
		Type:        "Technical",
		Description: "hackathon winner",
	})
	if !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Fatalf("expected validation error without menteeId, got %v", err)
	}
}

func TestCreateAchievementDefaultsPosition(t *testing.T) {
	achievementRepo := &fakeAchievementRepo{
		CreateFn: func(ctx context.Context, achievement *models.Achievement) error {
			return nil
		},
	}
	mentorshipRepo := &fakeMentorshipRepo{
		MentorOfFn: func(ctx context.Context, menteeID int64) (*int64, error) {
			return int64Ptr(2), nil
		},
	}

	svc := newAchievementService(achievementRepo, mentorshipRepo)
	got, err := svc.Create(context.Background(),
		models.UserRef{ID: 1, Role: models.RoleMentee},
		&dto.CreateAchievementRequest{Type: "Cultural", Description: "dance troupe lead"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Position != models.PositionNA {
		t.Errorf("position = %q, want %q", got.Position, models.PositionNA)
	}
}
