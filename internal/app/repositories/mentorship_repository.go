package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/GeetAtGit/ReportVerse/internal/pkg/apperrors"
	"github.com/GeetAtGit/ReportVerse/internal/pkg/dberrors"
)

// IMentorshipRepository defines the interface for mentorship-edge operations.
// The edge is stored exactly once (mentorships table); a mentee's assigned
// mentor and a mentor's roster are both read from it.
type IMentorshipRepository interface {
	Assign(ctx context.Context, mentorID, menteeID int64) error
	MentorOf(ctx context.Context, menteeID int64) (*int64, error)
	MenteesOf(ctx context.Context, mentorID int64) ([]int64, error)
	IsMenteeOf(ctx context.Context, mentorID, menteeID int64) (bool, error)
}

// MentorshipRepository handles mentorship database operations
type MentorshipRepository struct {
	db *pgxpool.Pool
}

// NewMentorshipRepository creates a new MentorshipRepository
func NewMentorshipRepository(db *pgxpool.Pool) *MentorshipRepository {
	return &MentorshipRepository{
		db: db,
	}
}

// Assign inserts the mentorship edge. A single insert covers both directions
// of the relationship, so there is no partial-assignment state. Returns
// apperrors.ErrAlreadyAssigned when the mentee already has any mentor.
func (r *MentorshipRepository) Assign(ctx context.Context, mentorID, menteeID int64) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO mentorships (mentor_id, mentee_id)
		VALUES ($1, $2)`,
		mentorID, menteeID)

	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "mentorships_mentee_id_key") {
			return apperrors.ErrAlreadyAssigned
		}
		return fmt.Errorf("error assigning mentee: %w", err)
	}

	return nil
}

// MentorOf returns the mentee's assigned mentor id, or nil when unassigned
func (r *MentorshipRepository) MentorOf(ctx context.Context, menteeID int64) (*int64, error) {
	var mentorID int64
	err := r.db.QueryRow(ctx, `
		SELECT mentor_id FROM mentorships WHERE mentee_id = $1`,
		menteeID).Scan(&mentorID)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error fetching mentor: %w", err)
	}

	return &mentorID, nil
}

// MenteesOf returns the mentor's roster in assignment order
func (r *MentorshipRepository) MenteesOf(ctx context.Context, mentorID int64) ([]int64, error) {
	rows, err := r.db.Query(ctx, `
		SELECT mentee_id FROM mentorships
		WHERE mentor_id = $1
		ORDER BY created_at ASC`,
		mentorID)
	if err != nil {
		return nil, fmt.Errorf("error fetching roster: %w", err)
	}
	defer rows.Close()

	mentees := []int64{}
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("error scanning roster row: %w", err)
		}
		mentees = append(mentees, id)
	}

	return mentees, rows.Err()
}

// IsMenteeOf checks whether the mentee belongs to the mentor's roster
func (r *MentorshipRepository) IsMenteeOf(ctx context.Context, mentorID, menteeID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM mentorships WHERE mentor_id = $1 AND mentee_id = $2)`,
		mentorID, menteeID).Scan(&exists)

	if err != nil {
		return false, fmt.Errorf("error checking roster membership: %w", err)
	}

	return exists, nil
}
