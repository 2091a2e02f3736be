package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/GeetAtGit/ReportVerse/internal/app/models"
	"github.com/GeetAtGit/ReportVerse/internal/pkg/apperrors"
)

// IIssueRepository defines the interface for issue-thread database operations
type IIssueRepository interface {
	Create(ctx context.Context, issue *models.Issue) error
	GetByID(ctx context.Context, id int64) (*models.Issue, error)
	GetWithComments(ctx context.Context, id int64) (*models.Issue, error)
	ListByMentee(ctx context.Context, menteeID int64) ([]models.Issue, error)
	ListByMentor(ctx context.Context, mentorID int64) ([]models.Issue, error)
	AddComment(ctx context.Context, comment *models.Comment) error
	UpdateStatus(ctx context.Context, issueID int64, status models.IssueStatus) error
	CountByStatusForMentee(ctx context.Context, menteeID int64) (map[string]int, error)
	CountByStatusForMentor(ctx context.Context, mentorID int64) (map[string]int, error)
	CountPendingForMentor(ctx context.Context, mentorID int64, olderThan time.Time) (int, error)
}

// IssueRepository handles issue database operations
type IssueRepository struct {
	db *pgxpool.Pool
}

// NewIssueRepository creates a new IssueRepository
func NewIssueRepository(db *pgxpool.Pool) *IssueRepository {
	return &IssueRepository{
		db: db,
	}
}

// Create inserts a new issue and fills in its generated fields
func (r *IssueRepository) Create(ctx context.Context, issue *models.Issue) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO issues (mentee_id, mentor_id, issue_type, description, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at`,
		issue.MenteeID, issue.MentorID, issue.IssueType, issue.Description, issue.Status).
		Scan(&issue.ID, &issue.CreatedAt, &issue.UpdatedAt)

	if err != nil {
		return fmt.Errorf("error creating issue: %w", err)
	}
	issue.Comments = []models.Comment{}

	return nil
}

// GetByID retrieves an issue without its comment log
func (r *IssueRepository) GetByID(ctx context.Context, id int64) (*models.Issue, error) {
	issue := &models.Issue{}
	err := r.db.QueryRow(ctx, `
		SELECT id, mentee_id, mentor_id, issue_type, description, status, created_at, updated_at
		FROM issues
		WHERE id = $1`,
		id).Scan(
		&issue.ID, &issue.MenteeID, &issue.MentorID, &issue.IssueType,
		&issue.Description, &issue.Status, &issue.CreatedAt, &issue.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrIssueNotFound
		}
		return nil, fmt.Errorf("error fetching issue: %w", err)
	}

	return issue, nil
}

// GetWithComments retrieves an issue with its full comment log, oldest
// comment first, with each comment's author resolved to email and role.
func (r *IssueRepository) GetWithComments(ctx context.Context, id int64) (*models.Issue, error) {
	issue, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, `
		SELECT c.id, c.issue_id, c.author_id, c.text, c.created_at, u.email, u.role
		FROM issue_comments c
		JOIN users u ON u.id = c.author_id
		WHERE c.issue_id = $1
		ORDER BY c.created_at ASC, c.id ASC`,
		id)
	if err != nil {
		return nil, fmt.Errorf("error fetching comments: %w", err)
	}
	defer rows.Close()

	issue.Comments = []models.Comment{}
	for rows.Next() {
		var c models.Comment
		if err := rows.Scan(&c.ID, &c.IssueID, &c.AuthorID, &c.Text, &c.CreatedAt, &c.AuthorEmail, &c.AuthorRole); err != nil {
			return nil, fmt.Errorf("error scanning comment row: %w", err)
		}
		issue.Comments = append(issue.Comments, c)
	}

	return issue, rows.Err()
}

// ListByMentee returns all issues owned by the mentee, newest-created-first
func (r *IssueRepository) ListByMentee(ctx context.Context, menteeID int64) ([]models.Issue, error) {
	return r.list(ctx, `WHERE mentee_id = $1`, menteeID)
}

// ListByMentor returns all issues recorded against the mentor, newest-created-first
func (r *IssueRepository) ListByMentor(ctx context.Context, mentorID int64) ([]models.Issue, error) {
	return r.list(ctx, `WHERE mentor_id = $1`, mentorID)
}

// list runs the shared newest-first listing query. Ordering is by creation
// time only; relative order of identical timestamps is unspecified.
func (r *IssueRepository) list(ctx context.Context, where string, arg int64) ([]models.Issue, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, mentee_id, mentor_id, issue_type, description, status, created_at, updated_at
		FROM issues
		`+where+`
		ORDER BY created_at DESC`,
		arg)
	if err != nil {
		return nil, fmt.Errorf("error listing issues: %w", err)
	}
	defer rows.Close()

	issues := []models.Issue{}
	for rows.Next() {
		var issue models.Issue
		if err := rows.Scan(
			&issue.ID, &issue.MenteeID, &issue.MentorID, &issue.IssueType,
			&issue.Description, &issue.Status, &issue.CreatedAt, &issue.UpdatedAt); err != nil {
			return nil, fmt.Errorf("error scanning issue row: %w", err)
		}
		issue.Comments = []models.Comment{}
		issues = append(issues, issue)
	}

	return issues, rows.Err()
}

// AddComment appends a comment to an issue's log. Comments are never updated
// or deleted; no such statements exist in this layer.
func (r *IssueRepository) AddComment(ctx context.Context, comment *models.Comment) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO issue_comments (issue_id, author_id, text)
		VALUES ($1, $2, $3)
		RETURNING id, created_at`,
		comment.IssueID, comment.AuthorID, comment.Text).
		Scan(&comment.ID, &comment.CreatedAt)

	if err != nil {
		return fmt.Errorf("error adding comment: %w", err)
	}

	return nil
}

// UpdateStatus overwrites an issue's status
func (r *IssueRepository) UpdateStatus(ctx context.Context, issueID int64, status models.IssueStatus) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE issues SET status = $2, updated_at = NOW() WHERE id = $1`,
		issueID, status)

	if err != nil {
		return fmt.Errorf("error updating issue status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrIssueNotFound
	}

	return nil
}

// CountByStatusForMentee returns issue counts grouped by status for a mentee
func (r *IssueRepository) CountByStatusForMentee(ctx context.Context, menteeID int64) (map[string]int, error) {
	return r.countByStatus(ctx, `WHERE mentee_id = $1`, menteeID)
}

// CountByStatusForMentor returns issue counts grouped by status for a mentor
func (r *IssueRepository) CountByStatusForMentor(ctx context.Context, mentorID int64) (map[string]int, error) {
	return r.countByStatus(ctx, `WHERE mentor_id = $1`, mentorID)
}

func (r *IssueRepository) countByStatus(ctx context.Context, where string, arg int64) (map[string]int, error) {
	rows, err := r.db.Query(ctx, `
		SELECT status, COUNT(*) FROM issues `+where+` GROUP BY status`, arg)
	if err != nil {
		return nil, fmt.Errorf("error counting issues: %w", err)
	}
	defer rows.Close()

	counts := map[string]int{}
	for rows.Next() {
		var status string
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("error scanning count row: %w", err)
		}
		counts[status] = count
	}

	return counts, rows.Err()
}

// CountPendingForMentor counts the mentor's Open/Under Review issues created
// before the cutoff.
func (r *IssueRepository) CountPendingForMentor(ctx context.Context, mentorID int64, olderThan time.Time) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `
		SELECT COUNT(*) FROM issues
		WHERE mentor_id = $1 AND status IN ($2, $3) AND created_at < $4`,
		mentorID, models.StatusOpen, models.StatusUnderReview, olderThan).Scan(&count)

	if err != nil {
		return 0, fmt.Errorf("error counting pending issues: %w", err)
	}

	return count, nil
}
