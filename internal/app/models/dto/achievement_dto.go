package dto

// CreateAchievementRequest carries a new achievement entry.
// MenteeID is required only when a mentor logs the achievement on behalf of
// a roster mentee; mentees always log for themselves.
type CreateAchievementRequest struct {
	Type              string `json:"type" binding:"required" example:"Technical"`
	Position          string `json:"position,omitempty" example:"First"`
	Description       string `json:"description" binding:"required" example:"Won the inter-college hackathon"`
	DateOfAchievement string `json:"dateOfAchievement,omitempty" example:"2024-03-10T00:00:00Z"`
	MenteeID          *int64 `json:"menteeId,omitempty" example:"3"`
}
