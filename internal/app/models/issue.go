package models

import (
	"time"
)

// Issue defines a reported issue thread based on the 'issues' table
type Issue struct {
	ID          int64       `json:"id" db:"id" example:"1"`
	MenteeID    int64       `json:"mentee" db:"mentee_id" example:"3"`                   // Owning mentee
	MentorID    int64       `json:"mentor" db:"mentor_id" example:"2"`                   // Mentor snapshotted at creation, never reassigned
	IssueType   IssueType   `json:"issueType" db:"issue_type" example:"Academic"`
	Description string      `json:"description" db:"description"`
	Status      IssueStatus `json:"status" db:"status" example:"Open"`
	CreatedAt   time.Time   `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time   `json:"updatedAt" db:"updated_at"`

	// Comments is the append-only comment log, oldest first.
	Comments []Comment `json:"comments"`
}

// Comment is one entry in an issue's append-only comment log
type Comment struct {
	ID        int64     `json:"id" db:"id"`
	IssueID   int64     `json:"issueId" db:"issue_id"`
	AuthorID  int64     `json:"author" db:"author_id"`
	Text      string    `json:"text" db:"text"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`

	// Author identity resolved on detail reads.
	AuthorEmail string `json:"authorEmail,omitempty"`
	AuthorRole  Role   `json:"authorRole,omitempty"`
}
