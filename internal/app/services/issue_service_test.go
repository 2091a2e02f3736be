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

func newIssueService(issueRepo *fakeIssueRepo, mentorshipRepo *fakeMentorshipRepo) IssueService {
	return NewIssueService(issueRepo, mentorshipRepo, zerolog.Nop())
}

func TestCreateIssueWithoutMentorStoresNothing(t *testing.T) {
	created := false
	issueRepo := &fakeIssueRepo{
		CreateFn: func(ctx context.Context, issue *models.Issue) error {
			created = true
			return nil
		},
	}
	mentorshipRepo := &fakeMentorshipRepo{
		MentorOfFn: func(ctx context.Context, menteeID int64) (*int64, error) {
			return nil, nil
		},
	}

	svc := newIssueService(issueRepo, mentorshipRepo)
	_, err := svc.Create(context.Background(), 1, &dto.CreateIssueRequest{
		IssueType:   "Academic",
		Description: "struggling with coursework",
	})

	if !errors.Is(err, apperrors.ErrNotAssigned) {
		t.Fatalf("expected ErrNotAssigned, got %v", err)
	}
	if created {
		t.Fatal("issue must not be stored when the mentee has no mentor")
	}
}

func TestCreateIssueSnapshotsMentorAndOpensIt(t *testing.T) {
	var stored *models.Issue
	issueRepo := &fakeIssueRepo{
		CreateFn: func(ctx context.Context, issue *models.Issue) error {
			issue.ID = 7
			stored = issue
			return nil
		},
	}
	mentorshipRepo := &fakeMentorshipRepo{
		MentorOfFn: func(ctx context.Context, menteeID int64) (*int64, error) {
			return int64Ptr(42), nil
		},
	}

	svc := newIssueService(issueRepo, mentorshipRepo)
	issue, err := svc.Create(context.Background(), 1, &dto.CreateIssueRequest{
		IssueType:   "Ragging",
		Description: "incident in the hostel",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if stored == nil {
		t.Fatal("issue was not stored")
	}
	if issue.MentorID != 42 {
		t.Errorf("mentor id = %d, want 42", issue.MentorID)
	}
	if issue.Status != models.StatusOpen {
		t.Errorf("status = %q, want %q", issue.Status, models.StatusOpen)
	}
}

func TestCreateIssueRejectsUnknownType(t *testing.T) {
	svc := newIssueService(&fakeIssueRepo{}, &fakeMentorshipRepo{})
	_, err := svc.Create(context.Background(), 1, &dto.CreateIssueRequest{
		IssueType:   "Gossip",
		Description: "x",
	})
	if !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestGetIssueDeniesOutsiders(t *testing.T) {
	issueRepo := &fakeIssueRepo{
		GetWithCommentsFn: func(ctx context.Context, id int64) (*models.Issue, error) {
			return &models.Issue{ID: id, MenteeID: 1, MentorID: 2}, nil
		},
	}

	svc := newIssueService(issueRepo, &fakeMentorshipRepo{})

	cases := []struct {
		name   string
		caller models.UserRef
		wantOK bool
	}{
		{"owning mentee", models.UserRef{ID: 1, Role: models.RoleMentee}, true},
		{"recorded mentor", models.UserRef{ID: 2, Role: models.RoleMentor}, true},
		{"other mentee", models.UserRef{ID: 3, Role: models.RoleMentee}, false},
		{"other mentor", models.UserRef{ID: 4, Role: models.RoleMentor}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Get(context.Background(), 10, tc.caller)
			if tc.wantOK && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !tc.wantOK && !errors.Is(err, apperrors.ErrPermissionDenied) {
				t.Fatalf("expected permission denied, got %v", err)
			}
		})
	}
}

func TestAddCommentOnClosedIssueIsRejected(t *testing.T) {
	issueRepo := &fakeIssueRepo{
		GetByIDFn: func(ctx context.Context, id int64) (*models.Issue, error) {
			return &models.Issue{ID: id, MenteeID: 1, MentorID: 2, Status: models.StatusClosed}, nil
		},
	}

	svc := newIssueService(issueRepo, &fakeMentorshipRepo{})
	_, err := svc.AddComment(context.Background(), 10,
		models.UserRef{ID: 1, Role: models.RoleMentee},
		&dto.AddCommentRequest{Text: "any update?"})

	if !errors.Is(err, apperrors.ErrIssueClosed) {
		t.Fatalf("expected ErrIssueClosed, got %v", err)
	}
}

func TestAddCommentStatusTransitions(t *testing.T) {
	cases := []struct {
		name    string
		current models.IssueStatus
		next    string
		wantErr bool
	}{
		{"open to under review", models.StatusOpen, "Under Review", false},
		{"open to resolved", models.StatusOpen, "Resolved", false},
		{"open to closed", models.StatusOpen, "Closed", false},
		{"under review to resolved", models.StatusUnderReview, "Resolved", false},
		{"under review to closed", models.StatusUnderReview, "Closed", false},
		{"resolved is terminal", models.StatusResolved, "Open", true},
		{"resolved cannot reopen to review", models.StatusResolved, "Under Review", true},
		{"unknown status", models.StatusOpen, "Escalated", true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var updatedTo models.IssueStatus
			issueRepo := &fakeIssueRepo{
				GetByIDFn: func(ctx context.Context, id int64) (*models.Issue, error) {
					return &models.Issue{ID: id, MenteeID: 1, MentorID: 2, Status: tc.current}, nil
				},
				UpdateStatusFn: func(ctx context.Context, issueID int64, status models.IssueStatus) error {
					updatedTo = status
					return nil
				},
				AddCommentFn: func(ctx context.Context, comment *models.Comment) error {
					return nil
				},
				GetWithCommentsFn: func(ctx context.Context, id int64) (*models.Issue, error) {
					return &models.Issue{ID: id, MenteeID: 1, MentorID: 2, Status: updatedTo}, nil
				},
			}

			svc := newIssueService(issueRepo, &fakeMentorshipRepo{})
			_, err := svc.AddComment(context.Background(), 10,
				models.UserRef{ID: 2, Role: models.RoleMentor},
				&dto.AddCommentRequest{Text: "reviewing", NewStatus: tc.next})

			if tc.wantErr {
				if err == nil {
					t.Fatalf("transition %q -> %q should be rejected", tc.current, tc.next)
				}
				return
			}
			if err != nil {
				t.Fatalf("transition %q -> %q failed: %v", tc.current, tc.next, err)
			}
			if updatedTo != models.IssueStatus(tc.next) {
				t.Errorf("status updated to %q, want %q", updatedTo, tc.next)
			}
		})
	}
}

// Re-sending the current status is a no-op, not a transition: the comment
// is stored and no status update is issued.
func TestAddCommentSameStatusIsNoOp(t *testing.T) {
	commented := false
	issueRepo := &fakeIssueRepo{
		GetByIDFn: func(ctx context.Context, id int64) (*models.Issue, error) {
			return &models.Issue{ID: id, MenteeID: 1, MentorID: 2, Status: models.StatusOpen}, nil
		},
		AddCommentFn: func(ctx context.Context, comment *models.Comment) error {
			commented = true
			return nil
		},
		UpdateStatusFn: func(ctx context.Context, issueID int64, status models.IssueStatus) error {
			t.Error("status must not be updated")
			return nil
		},
		GetWithCommentsFn: func(ctx context.Context, id int64) (*models.Issue, error) {
			return &models.Issue{ID: id, MenteeID: 1, MentorID: 2, Status: models.StatusOpen}, nil
		},
	}

	svc := newIssueService(issueRepo, &fakeMentorshipRepo{})
	_, err := svc.AddComment(context.Background(), 10,
		models.UserRef{ID: 2, Role: models.RoleMentor},
		&dto.AddCommentRequest{Text: "ping", NewStatus: "Open"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !commented {
		t.Fatal("comment should be stored when the status does not change")
	}
}

// Mentor reviews and resolves a mentee's issue; the thread keeps both
// comments in order and the status ends Resolved.
func TestMentorMenteeCommentScenario(t *testing.T) {
	issue := &models.Issue{ID: 10, MenteeID: 1, MentorID: 2, Status: models.StatusOpen}
	var comments []models.Comment

	issueRepo := &fakeIssueRepo{
		GetByIDFn: func(ctx context.Context, id int64) (*models.Issue, error) {
			copy := *issue
			return &copy, nil
		},
		AddCommentFn: func(ctx context.Context, comment *models.Comment) error {
			comment.ID = int64(len(comments) + 1)
			comments = append(comments, *comment)
			return nil
		},
		UpdateStatusFn: func(ctx context.Context, issueID int64, status models.IssueStatus) error {
			issue.Status = status
			return nil
		},
		GetWithCommentsFn: func(ctx context.Context, id int64) (*models.Issue, error) {
			copy := *issue
			copy.Comments = append([]models.Comment(nil), comments...)
			return &copy, nil
		},
	}

	svc := newIssueService(issueRepo, &fakeMentorshipRepo{})
	mentor := models.UserRef{ID: 2, Role: models.RoleMentor}
	mentee := models.UserRef{ID: 1, Role: models.RoleMentee}

	thread, err := svc.AddComment(context.Background(), 10, mentor,
		&dto.AddCommentRequest{Text: "looking into it", NewStatus: "Under Review"})
	if err != nil {
		t.Fatalf("mentor comment failed: %v", err)
	}
	if thread.Status != models.StatusUnderReview {
		t.Fatalf("status = %q, want Under Review", thread.Status)
	}

	thread, err = svc.AddComment(context.Background(), 10, mentee,
		&dto.AddCommentRequest{Text: "thanks, it is sorted now", NewStatus: "Resolved"})
	if err != nil {
		t.Fatalf("mentee comment failed: %v", err)
	}

	if thread.Status != models.StatusResolved {
		t.Errorf("status = %q, want Resolved", thread.Status)
	}
	if len(thread.Comments) != 2 {
		t.Fatalf("comment count = %d, want 2", len(thread.Comments))
	}
	if thread.Comments[0].AuthorID != 2 || thread.Comments[1].AuthorID != 1 {
		t.Errorf("comments out of order: %+v", thread.Comments)
	}
}

func TestListForCallerScopesByRole(t *testing.T) {
	issueRepo := &fakeIssueRepo{
		ListByMenteeFn: func(ctx context.Context, menteeID int64) ([]models.Issue, error) {
			return []models.Issue{{ID: 1, MenteeID: menteeID}}, nil
		},
		ListByMentorFn: func(ctx context.Context, mentorID int64) ([]models.Issue, error) {
			return []models.Issue{{ID: 2, MentorID: mentorID}, {ID: 3, MentorID: mentorID}}, nil
		},
	}

	svc := newIssueService(issueRepo, &fakeMentorshipRepo{})

	asMentee, err := svc.ListForCaller(context.Background(), models.UserRef{ID: 1, Role: models.RoleMentee})
	if err != nil || len(asMentee) != 1 {
		t.Fatalf("mentee list = %v, %v", asMentee, err)
	}

	asMentor, err := svc.ListForCaller(context.Background(), models.UserRef{ID: 2, Role: models.RoleMentor})
	if err != nil || len(asMentor) != 2 {
		t.Fatalf("mentor list = %v, %v", asMentor, err)
	}
}
