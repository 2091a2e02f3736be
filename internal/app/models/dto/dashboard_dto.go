package dto

import (
	"time"

	"github.com/GeetAtGit/ReportVerse/internal/app/models"
)

// MenteeDashboardResponse aggregates a mentee's view of their own data
type MenteeDashboardResponse struct {
	ProfileCompleted bool           `json:"profileCompleted" example:"true"`
	AssignedMentor   *int64         `json:"assignedMentor,omitempty" example:"2"`
	IssueCounts      map[string]int `json:"issueCounts"`
	AchievementCount int            `json:"achievementCount" example:"4"`
	LatestIssues     []models.Issue `json:"latestIssues"`
}

// MentorDashboardResponse aggregates a mentor's view of their roster
type MentorDashboardResponse struct {
	MenteeCount       int            `json:"menteeCount" example:"6"`
	OpenIssues        int            `json:"openIssues" example:"2"`
	UnderReviewIssues int            `json:"underReviewIssues" example:"1"`
	PendingIssues     int            `json:"pendingIssues" example:"1"` // Open/Under Review older than the pending threshold
	LatestIssues      []models.Issue `json:"latestIssues"`
}

// HealthResponse reports process and dependency health.
// The health endpoint always answers HTTP 200; true health lives in Status.
type HealthResponse struct {
	Status    string       `json:"status" example:"up" enums:"up,degraded,down"`
	Timestamp time.Time    `json:"timestamp"`
	Version   string       `json:"version" example:"1.0.0"`
	Database  string       `json:"database" example:"up"`
	System    SystemHealth `json:"system"`
}

// SystemHealth carries process-level runtime figures
type SystemHealth struct {
	Goroutines int    `json:"goroutines" example:"12"`
	Uptime     string `json:"uptime" example:"2h15m30s"`
}
