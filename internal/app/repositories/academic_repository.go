package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/GeetAtGit/ReportVerse/internal/app/models"
	"github.com/GeetAtGit/ReportVerse/internal/pkg/apperrors"
)

// IAcademicRepository defines the interface for academic-record operations
type IAcademicRepository interface {
	GetByMentee(ctx context.Context, menteeID int64) (*models.AcademicRecord, error)
	Save(ctx context.Context, record *models.AcademicRecord) error
}

// AcademicRepository handles the one-per-mentee academic aggregate.
// List-valued fields are stored as jsonb columns.
type AcademicRepository struct {
	db *pgxpool.Pool
}

// NewAcademicRepository creates a new AcademicRepository
func NewAcademicRepository(db *pgxpool.Pool) *AcademicRepository {
	return &AcademicRepository{
		db: db,
	}
}

// GetByMentee retrieves a mentee's academic record.
// Returns apperrors.ErrRecordNotFound when the mentee has none yet.
func (r *AcademicRepository) GetByMentee(ctx context.Context, menteeID int64) (*models.AcademicRecord, error) {
	record := &models.AcademicRecord{}
	var gpas, moocs, certs, sheets []byte

	err := r.db.QueryRow(ctx, `
		SELECT id, mentee_id, semester_gpas, mooc_courses, certifications, marksheets, backlogs, updated_at
		FROM academic_records
		WHERE mentee_id = $1`,
		menteeID).Scan(
		&record.ID, &record.MenteeID, &gpas, &moocs, &certs, &sheets,
		&record.Backlogs, &record.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrRecordNotFound
		}
		return nil, fmt.Errorf("error fetching academic record: %w", err)
	}

	for _, pair := range []struct {
		raw []byte
		dst interface{}
	}{
		{gpas, &record.SemesterGPAs},
		{moocs, &record.MOOCCourses},
		{certs, &record.Certifications},
		{sheets, &record.Marksheets},
	} {
		if len(pair.raw) == 0 {
			continue
		}
		if err := json.Unmarshal(pair.raw, pair.dst); err != nil {
			return nil, fmt.Errorf("error decoding academic record field: %w", err)
		}
	}

	return record, nil
}

// Save upserts the full academic record for a mentee. Partial-update
// semantics (omitted request fields stay unchanged) are resolved by the
// service before this write.
func (r *AcademicRepository) Save(ctx context.Context, record *models.AcademicRecord) error {
	gpas, err := json.Marshal(orEmptyGPAs(record.SemesterGPAs))
	if err != nil {
		return fmt.Errorf("error encoding semester GPAs: %w", err)
	}
	moocs, err := json.Marshal(orEmptyStrings(record.MOOCCourses))
	if err != nil {
		return fmt.Errorf("error encoding MOOC courses: %w", err)
	}
	certs, err := json.Marshal(orEmptyStrings(record.Certifications))
	if err != nil {
		return fmt.Errorf("error encoding certifications: %w", err)
	}
	sheets, err := json.Marshal(orEmptyMarksheets(record.Marksheets))
	if err != nil {
		return fmt.Errorf("error encoding marksheets: %w", err)
	}

	err = r.db.QueryRow(ctx, `
		INSERT INTO academic_records (mentee_id, semester_gpas, mooc_courses, certifications, marksheets, backlogs)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (mentee_id) DO UPDATE
		SET semester_gpas = EXCLUDED.semester_gpas,
		    mooc_courses = EXCLUDED.mooc_courses,
		    certifications = EXCLUDED.certifications,
		    marksheets = EXCLUDED.marksheets,
		    backlogs = EXCLUDED.backlogs,
		    updated_at = NOW()
		RETURNING id, updated_at`,
		record.MenteeID, gpas, moocs, certs, sheets, record.Backlogs).
		Scan(&record.ID, &record.UpdatedAt)

	if err != nil {
		return fmt.Errorf("error saving academic record: %w", err)
	}

	return nil
}

func orEmptyGPAs(v []models.SemesterGPA) []models.SemesterGPA {
	if v == nil {
		return []models.SemesterGPA{}
	}
	return v
}

func orEmptyStrings(v []string) []string {
	if v == nil {
		return []string{}
	}
	return v
}

func orEmptyMarksheets(v []models.Marksheet) []models.Marksheet {
	if v == nil {
		return []models.Marksheet{}
	}
	return v
}
