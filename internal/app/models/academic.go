package models

import (
	"time"
)

// SemesterGPA is one semester's GPA entry
type SemesterGPA struct {
	Semester int     `json:"semester" example:"3"`
	GPA      float64 `json:"gpa" example:"8.4"`
}

// Marksheet references an uploaded marksheet image for a semester
type Marksheet struct {
	Semester int    `json:"semester" example:"3"`
	FileURL  string `json:"fileUrl" example:"http://localhost:8080/uploads/marksheets/abc.png"`
}

// AcademicRecord is the one-per-mentee academic aggregate.
// Updates are partial: fields omitted from an update request stay unchanged.
type AcademicRecord struct {
	ID             int64         `json:"id" db:"id"`
	MenteeID       int64         `json:"mentee" db:"mentee_id"`
	SemesterGPAs   []SemesterGPA `json:"semesterGpas" db:"semester_gpas"`
	MOOCCourses    []string      `json:"moocCourses" db:"mooc_courses"`
	Certifications []string      `json:"certifications" db:"certifications"`
	Marksheets     []Marksheet   `json:"marksheets" db:"marksheets"`
	Backlogs       int           `json:"backlogs" db:"backlogs"`
	UpdatedAt      time.Time     `json:"updatedAt" db:"updated_at"`
}
