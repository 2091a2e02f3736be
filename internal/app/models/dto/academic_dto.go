package dto

import (
	"github.com/GeetAtGit/ReportVerse/internal/app/models"
)

// UpdateAcademicRecordRequest carries a partial academic-record update.
// Nil fields are left unchanged on the stored record, not cleared.
type UpdateAcademicRecordRequest struct {
	SemesterGPAs   *[]models.SemesterGPA `json:"semesterGpas,omitempty"`
	MOOCCourses    *[]string             `json:"moocCourses,omitempty"`
	Certifications *[]string             `json:"certifications,omitempty"`
	Backlogs       *int                  `json:"backlogs,omitempty" example:"0"`
}

// MenteeDetailResponse is a mentor's view of one roster mentee:
// profile fields plus the academic record.
type MenteeDetailResponse struct {
	ID               int64                  `json:"id" example:"3"`
	Email            string                 `json:"email" example:"mentee@college.edu"`
	Name             string                 `json:"name" example:"Asha Rao"`
	Phone            string                 `json:"phone" example:"+91 98765 43210"`
	ProfileCompleted bool                   `json:"profileCompleted" example:"true"`
	AcademicRecord   *models.AcademicRecord `json:"academicRecord,omitempty"`
}
