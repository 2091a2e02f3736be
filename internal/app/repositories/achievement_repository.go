package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/GeetAtGit/ReportVerse/internal/app/models"
)

// IAchievementRepository defines the interface for achievement database operations
type IAchievementRepository interface {
	Create(ctx context.Context, achievement *models.Achievement) error
	ListByMentee(ctx context.Context, menteeID int64) ([]models.Achievement, error)
	ListByMentor(ctx context.Context, mentorID int64) ([]models.Achievement, error)
	CountByMentee(ctx context.Context, menteeID int64) (int, error)
}

// AchievementRepository handles achievement database operations.
// Achievements are read-only after creation; only inserts and reads exist.
type AchievementRepository struct {
	db *pgxpool.Pool
}

// NewAchievementRepository creates a new AchievementRepository
func NewAchievementRepository(db *pgxpool.Pool) *AchievementRepository {
	return &AchievementRepository{
		db: db,
	}
}

// Create inserts a new achievement and fills in its generated fields
func (r *AchievementRepository) Create(ctx context.Context, achievement *models.Achievement) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO achievements (mentee_id, mentor_id, type, position, description, date_of_achievement, is_completed)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at`,
		achievement.MenteeID, achievement.MentorID, achievement.Type, achievement.Position,
		achievement.Description, achievement.DateOfAchievement, achievement.IsCompleted).
		Scan(&achievement.ID, &achievement.CreatedAt)

	if err != nil {
		return fmt.Errorf("error creating achievement: %w", err)
	}

	return nil
}

// ListByMentee returns the mentee's achievements, newest-created-first
func (r *AchievementRepository) ListByMentee(ctx context.Context, menteeID int64) ([]models.Achievement, error) {
	return r.list(ctx, `WHERE mentee_id = $1`, menteeID)
}

// ListByMentor returns achievements across the mentor's roster, newest-created-first
func (r *AchievementRepository) ListByMentor(ctx context.Context, mentorID int64) ([]models.Achievement, error) {
	return r.list(ctx, `WHERE mentor_id = $1`, mentorID)
}

func (r *AchievementRepository) list(ctx context.Context, where string, arg int64) ([]models.Achievement, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, mentee_id, mentor_id, type, position, description, date_of_achievement, is_completed, created_at
		FROM achievements
		`+where+`
		ORDER BY created_at DESC`,
		arg)
	if err != nil {
		return nil, fmt.Errorf("error listing achievements: %w", err)
	}
	defer rows.Close()

	achievements := []models.Achievement{}
	for rows.Next() {
		var a models.Achievement
		if err := rows.Scan(
			&a.ID, &a.MenteeID, &a.MentorID, &a.Type, &a.Position,
			&a.Description, &a.DateOfAchievement, &a.IsCompleted, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("error scanning achievement row: %w", err)
		}
		achievements = append(achievements, a)
	}

	return achievements, rows.Err()
}

// CountByMentee returns the number of achievements logged for a mentee
func (r *AchievementRepository) CountByMentee(ctx context.Context, menteeID int64) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `
		SELECT COUNT(*) FROM achievements WHERE mentee_id = $1`,
		menteeID).Scan(&count)

	if err != nil {
		return 0, fmt.Errorf("error counting achievements: %w", err)
	}

	return count, nil
}
