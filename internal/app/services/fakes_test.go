package services

import (
	"context"
	"time"

	"github.com/GeetAtGit/ReportVerse/internal/app/models"
)

// Function-field fakes for the repository interfaces. Tests set only the
// fields they need; calling an unset field panics and fails the test.

type fakeUserRepo struct {
	CreateFn        func(ctx context.Context, user *models.User) error
	GetByIDFn       func(ctx context.Context, id int64) (*models.User, error)
	GetByEmailFn    func(ctx context.Context, email string) (*models.User, error)
	EmailExistsFn   func(ctx context.Context, email string) (bool, error)
	UpdateProfileFn func(ctx context.Context, userID int64, name, phone string) error
}

func (f *fakeUserRepo) Create(ctx context.Context, user *models.User) error {
	return f.CreateFn(ctx, user)
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id int64) (*models.User, error) {
	return f.GetByIDFn(ctx, id)
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return f.GetByEmailFn(ctx, email)
}

func (f *fakeUserRepo) EmailExists(ctx context.Context, email string) (bool, error) {
	return f.EmailExistsFn(ctx, email)
}

func (f *fakeUserRepo) UpdateProfile(ctx context.Context, userID int64, name, phone string) error {
	return f.UpdateProfileFn(ctx, userID, name, phone)
}

type fakeMentorshipRepo struct {
	AssignFn     func(ctx context.Context, mentorID, menteeID int64) error
	MentorOfFn   func(ctx context.Context, menteeID int64) (*int64, error)
	MenteesOfFn  func(ctx context.Context, mentorID int64) ([]int64, error)
	IsMenteeOfFn func(ctx context.Context, mentorID, menteeID int64) (bool, error)
}

func (f *fakeMentorshipRepo) Assign(ctx context.Context, mentorID, menteeID int64) error {
	return f.AssignFn(ctx, mentorID, menteeID)
}

func (f *fakeMentorshipRepo) MentorOf(ctx context.Context, menteeID int64) (*int64, error) {
	return f.MentorOfFn(ctx, menteeID)
}

func (f *fakeMentorshipRepo) MenteesOf(ctx context.Context, mentorID int64) ([]int64, error) {
	return f.MenteesOfFn(ctx, mentorID)
}

func (f *fakeMentorshipRepo) IsMenteeOf(ctx context.Context, mentorID, menteeID int64) (bool, error) {
	return f.IsMenteeOfFn(ctx, mentorID, menteeID)
}

type fakeIssueRepo struct {
	CreateFn                 func(ctx context.Context, issue *models.Issue) error
	GetByIDFn                func(ctx context.Context, id int64) (*models.Issue, error)
	GetWithCommentsFn        func(ctx context.Context, id int64) (*models.Issue, error)
	ListByMenteeFn           func(ctx context.Context, menteeID int64) ([]models.Issue, error)
	ListByMentorFn           func(ctx context.Context, mentorID int64) ([]models.Issue, error)
	AddCommentFn             func(ctx context.Context, comment *models.Comment) error
	UpdateStatusFn           func(ctx context.Context, issueID int64, status models.IssueStatus) error
	CountByStatusForMenteeFn func(ctx context.Context, menteeID int64) (map[string]int, error)
	CountByStatusForMentorFn func(ctx context.Context, mentorID int64) (map[string]int, error)
	CountPendingForMentorFn  func(ctx context.Context, mentorID int64, olderThan time.Time) (int, error)
}

func (f *fakeIssueRepo) Create(ctx context.Context, issue *models.Issue) error {
	return f.CreateFn(ctx, issue)
}

func (f *fakeIssueRepo) GetByID(ctx context.Context, id int64) (*models.Issue, error) {
	return f.GetByIDFn(ctx, id)
}

func (f *fakeIssueRepo) GetWithComments(ctx context.Context, id int64) (*models.Issue, error) {
	return f.GetWithCommentsFn(ctx, id)
}

func (f *fakeIssueRepo) ListByMentee(ctx context.Context, menteeID int64) ([]models.Issue, error) {
	return f.ListByMenteeFn(ctx, menteeID)
}

func (f *fakeIssueRepo) ListByMentor(ctx context.Context, mentorID int64) ([]models.Issue, error) {
	return f.ListByMentorFn(ctx, mentorID)
}

func (f *fakeIssueRepo) AddComment(ctx context.Context, comment *models.Comment) error {
	return f.AddCommentFn(ctx, comment)
}

func (f *fakeIssueRepo) UpdateStatus(ctx context.Context, issueID int64, status models.IssueStatus) error {
	return f.UpdateStatusFn(ctx, issueID, status)
}

func (f *fakeIssueRepo) CountByStatusForMentee(ctx context.Context, menteeID int64) (map[string]int, error) {
	return f.CountByStatusForMenteeFn(ctx, menteeID)
}

func (f *fakeIssueRepo) CountByStatusForMentor(ctx context.Context, mentorID int64) (map[string]int, error) {
	return f.CountByStatusForMentorFn(ctx, mentorID)
}

func (f *fakeIssueRepo) CountPendingForMentor(ctx context.Context, mentorID int64, olderThan time.Time) (int, error) {
	return f.CountPendingForMentorFn(ctx, mentorID, olderThan)
}

type fakeAchievementRepo struct {
	CreateFn        func(ctx context.Context, achievement *models.Achievement) error
	ListByMenteeFn  func(ctx context.Context, menteeID int64) ([]models.Achievement, error)
	ListByMentorFn  func(ctx context.Context, mentorID int64) ([]models.Achievement, error)
	CountByMenteeFn func(ctx context.Context, menteeID int64) (int, error)
}

func (f *fakeAchievementRepo) Create(ctx context.Context, achievement *models.Achievement) error {
	return f.CreateFn(ctx, achievement)
}

func (f *fakeAchievementRepo) ListByMentee(ctx context.Context, menteeID int64) ([]models.Achievement, error) {
	return f.ListByMenteeFn(ctx, menteeID)
}

func (f *fakeAchievementRepo) ListByMentor(ctx context.Context, mentorID int64) ([]models.Achievement, error) {
	return f.ListByMentorFn(ctx, mentorID)
}

func (f *fakeAchievementRepo) CountByMentee(ctx context.Context, menteeID int64) (int, error) {
	return f.CountByMenteeFn(ctx, menteeID)
}

type fakeAcademicRepo struct {
	GetByMenteeFn func(ctx context.Context, menteeID int64) (*models.AcademicRecord, error)
	SaveFn        func(ctx context.Context, record *models.AcademicRecord) error
}

func (f *fakeAcademicRepo) GetByMentee(ctx context.Context, menteeID int64) (*models.AcademicRecord, error) {
	return f.GetByMenteeFn(ctx, menteeID)
}

func (f *fakeAcademicRepo) Save(ctx context.Context, record *models.AcademicRecord) error {
	return f.SaveFn(ctx, record)
}

func int64Ptr(v int64) *int64 { return &v }
