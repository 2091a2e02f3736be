package services

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/GeetAtGit/ReportVerse/internal/app/models"
	"github.com/GeetAtGit/ReportVerse/internal/pkg/apperrors"
)

func newMentorshipService(userRepo *fakeUserRepo, mentorshipRepo *fakeMentorshipRepo, academicRepo *fakeAcademicRepo) MentorshipService {
	return NewMentorshipService(userRepo, mentorshipRepo, academicRepo, zerolog.Nop())
}

func TestAssignMenteeUnknownEmail(t *testing.T) {
	userRepo := &fakeUserRepo{
		GetByEmailFn: func(ctx context.Context, email string) (*models.User, error) {
			return nil, apperrors.ErrUserNotFound
		},
	}

	svc := newMentorshipService(userRepo, &fakeMentorshipRepo{}, &fakeAcademicRepo{})
	_, err := svc.AssignMentee(context.Background(), 2, "nobody@college.edu")
	if !errors.Is(err, apperrors.ErrMenteeNotFound) {
		t.Fatalf("expected ErrMenteeNotFound, got %v", err)
	}
}

func TestAssignMenteeRejectsMentorAccounts(t *testing.T) {
	userRepo := &fakeUserRepo{
		GetByEmailFn: func(ctx context.Context, email string) (*models.User, error) {
			return &models.User{ID: 9, Email: email, Role: models.RoleMentor}, nil
		},
	}
	mentorshipRepo := &fakeMentorshipRepo{
		AssignFn: func(ctx context.Context, mentorID, menteeID int64) error {
			t.Error("assignment must not be attempted against a mentor account")
			return nil
		},
	}

	svc := newMentorshipService(userRepo, mentorshipRepo, &fakeAcademicRepo{})
	_, err := svc.AssignMentee(context.Background(), 2, "mentor@college.edu")
	if !errors.Is(err, apperrors.ErrMenteeNotFound) {
		t.Fatalf("expected ErrMenteeNotFound, got %v", err)
	}
}

// Assigning a mentee who already has a mentor fails and leaves the
// relationship untouched, even when the caller is the current mentor.
func TestAssignMenteeTwiceFailsAlreadyAssigned(t *testing.T) {
	roster := map[int64]int64{1: 2} // mentee 1 belongs to mentor 2

	userRepo := &fakeUserRepo{
		GetByEmailFn: func(ctx context.Context, email string) (*models.User, error) {
			return &models.User{ID: 1, Email: email, Role: models.RoleMentee}, nil
		},
	}
	mentorshipRepo := &fakeMentorshipRepo{
		AssignFn: func(ctx context.Context, mentorID, menteeID int64) error {
			if _, taken := roster[menteeID]; taken {
				return apperrors.ErrAlreadyAssigned
			}
			roster[menteeID] = mentorID
			return nil
		},
	}

	svc := newMentorshipService(userRepo, mentorshipRepo, &fakeAcademicRepo{})

	for _, mentorID := range []int64{3, 2} {
		_, err := svc.AssignMentee(context.Background(), mentorID, "mentee@college.edu")
		if !errors.Is(err, apperrors.ErrAlreadyAssigned) {
			t.Fatalf("mentor %d: expected ErrAlreadyAssigned, got %v", mentorID, err)
		}
	}
	if roster[1] != 2 {
		t.Errorf("roster changed: mentee 1 now belongs to %d", roster[1])
	}
}

func TestGetMenteeDetailOutsideRosterIsForbidden(t *testing.T) {
	mentorshipRepo := &fakeMentorshipRepo{
		IsMenteeOfFn: func(ctx context.Context, mentorID, menteeID int64) (bool, error) {
			return false, nil
		},
	}

	svc := newMentorshipService(&fakeUserRepo{}, mentorshipRepo, &fakeAcademicRepo{})
	_, err := svc.GetMenteeDetail(context.Background(), 2, 1)
	if !errors.Is(err, apperrors.ErrPermissionDenied) {
		t.Fatalf("expected permission denied, got %v", err)
	}
}

func TestGetMenteeDetailToleratesMissingAcademicRecord(t *testing.T) {
	mentorshipRepo := &fakeMentorshipRepo{
		IsMenteeOfFn: func(ctx context.Context, mentorID, menteeID int64) (bool, error) {
			return true, nil
		},
	}
	userRepo := &fakeUserRepo{
		GetByIDFn: func(ctx context.Context, id int64) (*models.User, error) {
			return &models.User{ID: id, Email: "mentee@college.edu", Role: models.RoleMentee}, nil
		},
	}
	academicRepo := &fakeAcademicRepo{
		GetByMenteeFn: func(ctx context.Context, menteeID int64) (*models.AcademicRecord, error) {
			return nil, apperrors.ErrRecordNotFound
		},
	}

	svc := newMentorshipService(userRepo, mentorshipRepo, academicRepo)
	detail, err := svc.GetMenteeDetail(context.Background(), 2, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if detail.AcademicRecord != nil {
		t.Errorf("AcademicRecord = %+v, want nil", detail.AcademicRecord)
	}
}

func TestListMenteesStripsPasswords(t *testing.T) {
	mentorshipRepo := &fakeMentorshipRepo{
		MenteesOfFn: func(ctx context.Context, mentorID int64) ([]int64, error) {
			return []int64{1, 3}, nil
		},
	}
	userRepo := &fakeUserRepo{
		GetByIDFn: func(ctx context.Context, id int64) (*models.User, error) {
			return &models.User{ID: id, Password: "hashed", Role: models.RoleMentee}, nil
		},
	}

	svc := newMentorshipService(userRepo, mentorshipRepo, &fakeAcademicRepo{})
	mentees, err := svc.ListMentees(context.Background(), 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(mentees) != 2 {
		t.Fatalf("roster size = %d, want 2", len(mentees))
	}
	for _, m := range mentees {
		if m.Password != "" {
			t.Errorf("mentee %d still carries a password hash", m.ID)
		}
	}
}
