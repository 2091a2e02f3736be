package dto

// CreateIssueRequest carries a mentee's new issue
type CreateIssueRequest struct {
	IssueType   string `json:"issueType" binding:"required" example:"Academic"`
	Description string `json:"description" binding:"required" example:"Struggling with the data structures course"`
}

// AddCommentRequest appends a comment to an issue thread.
// NewStatus, when present, also transitions the issue status.
type AddCommentRequest struct {
	Text      string `json:"text" binding:"required" example:"Please elaborate"`
	NewStatus string `json:"newStatus,omitempty" example:"Under Review"`
}

// AssignMenteeRequest assigns a mentee to the calling mentor by email
type AssignMenteeRequest struct {
	Email string `json:"email" binding:"required,email" example:"mentee@college.edu"`
}
