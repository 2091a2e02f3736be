// Package services holds the business logic between controllers and repositories.
package services

import (
	"context"
	"mime/multipart"

	"github.com/GeetAtGit/ReportVerse/internal/app/models"
	"github.com/GeetAtGit/ReportVerse/internal/app/models/dto"
)

// AuthService handles registration, login and the current-user view
type AuthService interface {
	Register(ctx context.Context, role models.Role, req *dto.RegisterRequest) (*models.User, string, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*models.User, string, error)
	GetCurrentUser(ctx context.Context, userID int64) (*dto.CurrentUserResponse, error)
	UpdateProfile(ctx context.Context, userID int64, req *dto.UpdateProfileRequest) error
}

// MentorshipService handles the mentor-mentee relationship edge
type MentorshipService interface {
	AssignMentee(ctx context.Context, mentorID int64, menteeEmail string) (*models.Mentorship, error)
	ListMentees(ctx context.Context, mentorID int64) ([]models.User, error)
	GetMenteeDetail(ctx context.Context, mentorID, menteeID int64) (*dto.MenteeDetailResponse, error)
}

// IssueService handles the issue-and-comment lifecycle
type IssueService interface {
	Create(ctx context.Context, menteeID int64, req *dto.CreateIssueRequest) (*models.Issue, error)
	ListForCaller(ctx context.Context, caller models.UserRef) ([]models.Issue, error)
	Get(ctx context.Context, issueID int64, caller models.UserRef) (*models.Issue, error)
	AddComment(ctx context.Context, issueID int64, caller models.UserRef, req *dto.AddCommentRequest) (*models.Issue, error)
}

// AchievementService handles achievement logging and listing
type AchievementService interface {
	Create(ctx context.Context, caller models.UserRef, req *dto.CreateAchievementRequest) (*models.Achievement, error)
	ListForCaller(ctx context.Context, caller models.UserRef) ([]models.Achievement, error)
}

// AcademicService handles the one-per-mentee academic record
type AcademicService interface {
	Get(ctx context.Context, menteeID int64) (*models.AcademicRecord, error)
	Update(ctx context.Context, menteeID int64, req *dto.UpdateAcademicRecordRequest) (*models.AcademicRecord, error)
	AddMarksheet(ctx context.Context, menteeID int64, semester int, file *multipart.FileHeader) (*models.AcademicRecord, error)
}

// DashboardService assembles role-scoped aggregate views
type DashboardService interface {
	MenteeDashboard(ctx context.Context, menteeID int64) (*dto.MenteeDashboardResponse, error)
	MentorDashboard(ctx context.Context, mentorID int64) (*dto.MentorDashboardResponse, error)
}
