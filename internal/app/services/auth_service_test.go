package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/GeetAtGit/ReportVerse/internal/app/models"
	"github.com/GeetAtGit/ReportVerse/internal/app/models/dto"
	"github.com/GeetAtGit/ReportVerse/internal/pkg/apperrors"
	"github.com/GeetAtGit/ReportVerse/internal/pkg/auth"
)

func testJWTService() *auth.JWTService {
	return auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "test",
	})
}

func newAuthService(userRepo *fakeUserRepo, mentorshipRepo *fakeMentorshipRepo) AuthService {
	return NewAuthService(userRepo, mentorshipRepo, testJWTService(), zerolog.Nop())
}

func validRegisterRequest() *dto.RegisterRequest {
	return &dto.RegisterRequest{
		Email:    "mentee@college.edu",
		Password: "s3cretpass",
		Name:     "Asha Rao",
		Phone:    "+919876543210",
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	userRepo := &fakeUserRepo{
		CreateFn: func(ctx context.Context, user *models.User) error {
			return apperrors.ErrEmailAlreadyExists
		},
	}

	svc := newAuthService(userRepo, &fakeMentorshipRepo{})
	_, _, err := svc.Register(context.Background(), models.RoleMentee, validRegisterRequest())
	if !errors.Is(err, apperrors.ErrEmailAlreadyExists) {
		t.Fatalf("expected ErrEmailAlreadyExists, got %v", err)
	}
}

func TestRegisterNormalizesEmail(t *testing.T) {
	var storedEmail string
	userRepo := &fakeUserRepo{
		CreateFn: func(ctx context.Context, user *models.User) error {
			user.ID = 1
			storedEmail = user.Email
			return nil
		},
	}

	svc := newAuthService(userRepo, &fakeMentorshipRepo{})
	req := validRegisterRequest()
	req.Email = "  Mentee@College.EDU "
	if _, _, err := svc.Register(context.Background(), models.RoleMentee, req); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if storedEmail != "mentee@college.edu" {
		t.Errorf("stored email = %q, want normalized lowercase", storedEmail)
	}
}

func TestRegisterWithMentorIDAssignsBothSides(t *testing.T) {
	var assignedMentor, assignedMentee int64
	userRepo := &fakeUserRepo{
		CreateFn: func(ctx context.Context, user *models.User) error {
			user.ID = 5
			return nil
		},
		GetByIDFn: func(ctx context.Context, id int64) (*models.User, error) {
			return &models.User{ID: id, Role: models.RoleMentor}, nil
		},
	}
	mentorshipRepo := &fakeMentorshipRepo{
		AssignFn: func(ctx context.Context, mentorID, menteeID int64) error {
			assignedMentor, assignedMentee = mentorID, menteeID
			return nil
		},
	}

	svc := newAuthService(userRepo, mentorshipRepo)
	req := validRegisterRequest()
	req.MentorID = int64Ptr(2)

	user, token, err := svc.Register(context.Background(), models.RoleMentee, req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if token == "" {
		t.Error("expected a session token")
	}
	if assignedMentor != 2 || assignedMentee != 5 {
		t.Errorf("assignment = (%d, %d), want (2, 5)", assignedMentor, assignedMentee)
	}
	if user.AssignedMentor == nil || *user.AssignedMentor != 2 {
		t.Errorf("user.AssignedMentor = %v, want 2", user.AssignedMentor)
	}
}

// A bad mentorId degrades to an unassigned registration rather than failing
func TestRegisterWithUnknownMentorIDStillSucceeds(t *testing.T) {
	userRepo := &fakeUserRepo{
		CreateFn: func(ctx context.Context, user *models.User) error {
			user.ID = 5
			return nil
		},
		GetByIDFn: func(ctx context.Context, id int64) (*models.User, error) {
			return nil, apperrors.ErrUserNotFound
		},
	}

	svc := newAuthService(userRepo, &fakeMentorshipRepo{})
	req := validRegisterRequest()
	req.MentorID = int64Ptr(99)

	user, token, err := svc.Register(context.Background(), models.RoleMentee, req)
	if err != nil {
		t.Fatalf("registration should succeed without assignment, got %v", err)
	}
	if token == "" {
		t.Error("expected a session token")
	}
	if user.AssignedMentor != nil {
		t.Errorf("user.AssignedMentor = %v, want nil", user.AssignedMentor)
	}
}

// A mentorId pointing at a non-mentor account is treated like an unknown id
func TestRegisterWithNonMentorIDStillSucceeds(t *testing.T) {
	userRepo := &fakeUserRepo{
		CreateFn: func(ctx context.Context, user *models.User) error {
			user.ID = 5
			return nil
		},
		GetByIDFn: func(ctx context.Context, id int64) (*models.User, error) {
			return &models.User{ID: id, Role: models.RoleMentee}, nil
		},
	}
	mentorshipRepo := &fakeMentorshipRepo{
		AssignFn: func(ctx context.Context, mentorID, menteeID int64) error {
			t.Error("assignment must not be attempted for a non-mentor id")
			return nil
		},
	}

	svc := newAuthService(userRepo, mentorshipRepo)
	req := validRegisterRequest()
	req.MentorID = int64Ptr(3)

	user, _, err := svc.Register(context.Background(), models.RoleMentee, req)
	if err != nil {
		t.Fatalf("registration should succeed without assignment, got %v", err)
	}
	if user.AssignedMentor != nil {
		t.Errorf("user.AssignedMentor = %v, want nil", user.AssignedMentor)
	}
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	hashed, err := auth.HashPassword("correct-password")
	if err != nil {
		t.Fatal(err)
	}

	userRepo := &fakeUserRepo{
		GetByEmailFn: func(ctx context.Context, email string) (*models.User, error) {
			if email == "known@college.edu" {
				return &models.User{ID: 1, Email: email, Password: hashed, Role: models.RoleMentee}, nil
			}
			return nil, apperrors.ErrUserNotFound
		},
	}

	svc := newAuthService(userRepo, &fakeMentorshipRepo{})

	_, _, errUnknown := svc.Login(context.Background(), &dto.LoginRequest{
		Email: "nobody@college.edu", Password: "whatever",
	})
	_, _, errWrongPassword := svc.Login(context.Background(), &dto.LoginRequest{
		Email: "known@college.edu", Password: "wrong-password",
	})

	if !errors.Is(errUnknown, apperrors.ErrInvalidCredentials) {
		t.Fatalf("unknown email: expected ErrInvalidCredentials, got %v", errUnknown)
	}
	if !errors.Is(errWrongPassword, apperrors.ErrInvalidCredentials) {
		t.Fatalf("wrong password: expected ErrInvalidCredentials, got %v", errWrongPassword)
	}
	if errUnknown.Error() != errWrongPassword.Error() {
		t.Errorf("error messages differ: %q vs %q", errUnknown, errWrongPassword)
	}
}

func TestLoginSuccessIssuesValidToken(t *testing.T) {
	hashed, err := auth.HashPassword("correct-password")
	if err != nil {
		t.Fatal(err)
	}

	userRepo := &fakeUserRepo{
		GetByEmailFn: func(ctx context.Context, email string) (*models.User, error) {
			return &models.User{ID: 1, Email: email, Password: hashed, Role: models.RoleMentor}, nil
		},
	}

	svc := newAuthService(userRepo, &fakeMentorshipRepo{})
	user, token, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email: "mentor@college.edu", Password: "correct-password",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	claims, err := testJWTService().ValidateToken(token)
	if err != nil {
		t.Fatalf("issued token does not validate: %v", err)
	}
	if claims.UserID != user.ID || claims.Role != string(models.RoleMentor) {
		t.Errorf("claims = %+v, want user %d with mentor role", claims, user.ID)
	}
}

func TestGetCurrentUserResolvesMentorshipByRole(t *testing.T) {
	userRepo := &fakeUserRepo{
		GetByIDFn: func(ctx context.Context, id int64) (*models.User, error) {
			role := models.RoleMentee
			if id == 2 {
				role = models.RoleMentor
			}
			return &models.User{ID: id, Role: role}, nil
		},
	}
	mentorshipRepo := &fakeMentorshipRepo{
		MentorOfFn: func(ctx context.Context, menteeID int64) (*int64, error) {
			return int64Ptr(2), nil
		},
		MenteesOfFn: func(ctx context.Context, mentorID int64) ([]int64, error) {
			return []int64{1, 3}, nil
		},
	}

	svc := newAuthService(userRepo, mentorshipRepo)

	mentee, err := svc.GetCurrentUser(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if mentee.AssignedMentor == nil || *mentee.AssignedMentor != 2 {
		t.Errorf("mentee.AssignedMentor = %v, want 2", mentee.AssignedMentor)
	}

	mentor, err := svc.GetCurrentUser(context.Background(), 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(mentor.Mentees) != 2 {
		t.Errorf("mentor.Mentees = %v, want two entries", mentor.Mentees)
	}
}
