// Package seed creates demo accounts on first boot.
package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	appModels "github.com/GeetAtGit/ReportVerse/internal/app/models"
	appRepos "github.com/GeetAtGit/ReportVerse/internal/app/repositories"
	"github.com/GeetAtGit/ReportVerse/internal/pkg/apperrors"
	"github.com/GeetAtGit/ReportVerse/internal/pkg/auth"
)

const (
	demoMentorEmail = "mentor@reportverse.dev"
	demoMenteeEmail = "mentee@reportverse.dev"
	demoPassword    = "changeme123"
)

// CreateDefaultData creates a demo mentor and mentee pair if they don't
// exist. Failures are collected and reported but never abort startup.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	userRepo := appRepos.NewUserRepository(dbPool)
	mentorshipRepo := appRepos.NewMentorshipRepository(dbPool)

	lgr.Info().Msg("Checking/Creating default demo accounts...")
	var finalErr error

	hashed, err := auth.HashPassword(demoPassword)
	if err != nil {
		return err
	}

	mentor := &appModels.User{
		Email:    demoMentorEmail,
		Password: hashed,
		Name:     "Demo Mentor",
		Phone:    "+900000000001",
		Role:     appModels.RoleMentor,
	}
	if err := userRepo.Create(ctx, mentor); err != nil {
		if !errors.Is(err, apperrors.ErrEmailAlreadyExists) {
			lgr.Error().Err(err).Msg("Error creating demo mentor")
			finalErr = errors.Join(finalErr, err)
		}
		if existing, errGet := userRepo.GetByEmail(ctx, demoMentorEmail); errGet == nil {
			mentor = existing
		}
	}

	mentee := &appModels.User{
		Email:    demoMenteeEmail,
		Password: hashed,
		Name:     "Demo Mentee",
		Phone:    "+900000000002",
		Role:     appModels.RoleMentee,
	}
	if err := userRepo.Create(ctx, mentee); err != nil {
		if !errors.Is(err, apperrors.ErrEmailAlreadyExists) {
			lgr.Error().Err(err).Msg("Error creating demo mentee")
			finalErr = errors.Join(finalErr, err)
		}
		if existing, errGet := userRepo.GetByEmail(ctx, demoMenteeEmail); errGet == nil {
			mentee = existing
		}
	}

	if mentor.ID > 0 && mentee.ID > 0 {
		if err := mentorshipRepo.Assign(ctx, mentor.ID, mentee.ID); err != nil &&
			!errors.Is(err, apperrors.ErrAlreadyAssigned) {
			lgr.Error().Err(err).Msg("Error linking demo mentor and mentee")
			finalErr = errors.Join(finalErr, err)
		}
	}

	if finalErr == nil {
		lgr.Info().Msg("Demo accounts ready")
	}
	return finalErr
}
