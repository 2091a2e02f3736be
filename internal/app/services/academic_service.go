package services

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"

	"github.com/rs/zerolog"

	"github.com/GeetAtGit/ReportVerse/internal/app/models"
	"github.com/GeetAtGit/ReportVerse/internal/app/models/dto"
	"github.com/GeetAtGit/ReportVerse/internal/app/repositories"
	"github.com/GeetAtGit/ReportVerse/internal/pkg/apperrors"
	"github.com/GeetAtGit/ReportVerse/internal/pkg/filestorage"
)

// marksheetDir is the storage subdirectory for uploaded marksheet images
const marksheetDir = "marksheets"

// academicService implements AcademicService
type academicService struct {
	academicRepo repositories.IAcademicRepository
	storage      filestorage.FileStorage
	logger       zerolog.Logger
}

// NewAcademicService creates a new AcademicService
func NewAcademicService(
	academicRepo repositories.IAcademicRepository,
	storage filestorage.FileStorage,
	logger zerolog.Logger,
) AcademicService {
	return &academicService{
		academicRepo: academicRepo,
		storage:      storage,
		logger:       logger,
	}
}

// Get returns the mentee's academic record, or an empty default when none
// has been stored yet.
func (s *academicService) Get(ctx context.Context, menteeID int64) (*models.AcademicRecord, error) {
	record, err := s.academicRepo.GetByMentee(ctx, menteeID)
	if err != nil {
		if errors.Is(err, apperrors.ErrRecordNotFound) {
			return emptyRecord(menteeID), nil
		}
		return nil, err
	}
	return record, nil
}

// Update applies a partial update: nil request fields keep their stored
// values, only present fields are replaced.
func (s *academicService) Update(ctx context.Context, menteeID int64, req *dto.UpdateAcademicRecordRequest) (*models.AcademicRecord, error) {
	if req.Backlogs != nil && *req.Backlogs < 0 {
		return nil, apperrors.NewValidationError("backlogs cannot be negative")
	}
	if req.SemesterGPAs != nil {
		for _, entry := range *req.SemesterGPAs {
			if entry.Semester < 1 {
				return nil, apperrors.NewValidationError("semester must be positive")
			}
			if entry.GPA < 0 || entry.GPA > 10 {
				return nil, apperrors.NewValidationError(fmt.Sprintf("GPA %v out of range", entry.GPA))
			}
		}
	}

	record, err := s.loadOrDefault(ctx, menteeID)
	if err != nil {
		return nil, err
	}

	if req.SemesterGPAs != nil {
		record.SemesterGPAs = *req.SemesterGPAs
	}
	if req.MOOCCourses != nil {
		record.MOOCCourses = *req.MOOCCourses
	}
	if req.Certifications != nil {
		record.Certifications = *req.Certifications
	}
	if req.Backlogs != nil {
		record.Backlogs = *req.Backlogs
	}

	if err := s.academicRepo.Save(ctx, record); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("menteeId", menteeID).Msg("Academic record updated")
	return record, nil
}

// AddMarksheet stores an uploaded marksheet image and appends its reference
// to the record's marksheet list.
func (s *academicService) AddMarksheet(ctx context.Context, menteeID int64, semester int, file *multipart.FileHeader) (*models.AcademicRecord, error) {
	if semester < 1 {
		return nil, apperrors.NewValidationError("semester must be positive")
	}
	if file == nil {
		return nil, apperrors.NewValidationError("marksheet file is required")
	}

	fileURL, err := s.storage.SaveFileWithPath(file, marksheetDir)
	if err != nil {
		return nil, fmt.Errorf("failed to store marksheet: %w", err)
	}

	record, err := s.loadOrDefault(ctx, menteeID)
	if err != nil {
		return nil, err
	}

	record.Marksheets = append(record.Marksheets, models.Marksheet{
		Semester: semester,
		FileURL:  fileURL,
	})

	if err := s.academicRepo.Save(ctx, record); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("menteeId", menteeID).Int("semester", semester).Msg("Marksheet uploaded")
	return record, nil
}

func (s *academicService) loadOrDefault(ctx context.Context, menteeID int64) (*models.AcademicRecord, error) {
	record, err := s.academicRepo.GetByMentee(ctx, menteeID)
	if err != nil {
		if errors.Is(err, apperrors.ErrRecordNotFound) {
			return emptyRecord(menteeID), nil
		}
		return nil, err
	}
	return record, nil
}

func emptyRecord(menteeID int64) *models.AcademicRecord {
	return &models.AcademicRecord{
		MenteeID:       menteeID,
		SemesterGPAs:   []models.SemesterGPA{},
		MOOCCourses:    []string{},
		Certifications: []string{},
		Marksheets:     []models.Marksheet{},
	}
}
