package models

import (
	"time"
)

// Achievement defines a logged accomplishment based on the 'achievements' table.
// Achievements are read-only after creation.
type Achievement struct {
	ID                int64               `json:"id" db:"id"`
	MenteeID          int64               `json:"mentee" db:"mentee_id"`
	MentorID          int64               `json:"mentor" db:"mentor_id"` // Copied from the mentee's assigned mentor at creation
	Type              AchievementType     `json:"type" db:"type" example:"Technical"`
	Position          AchievementPosition `json:"position" db:"position" example:"N/A"`
	Description       string              `json:"description" db:"description"`
	DateOfAchievement time.Time           `json:"dateOfAchievement" db:"date_of_achievement"`
	IsCompleted       bool                `json:"isCompleted" db:"is_completed"`
	CreatedAt         time.Time           `json:"createdAt" db:"created_at"`
}
