package models

import (
	"time"
)

// User defines the user model based on the 'users' table
type User struct {
	ID               int64     `json:"id" db:"id" example:"1"`                                    // Unique identifier for the user
	Email            string    `json:"email" db:"email" example:"mentee@college.edu"`             // Lower-normalized unique email address
	Password         string    `json:"-" db:"password"`                                           // Hashed password (excluded from JSON)
	Name             string    `json:"name" db:"name" example:"Asha Rao"`                         // Display name
	Phone            string    `json:"phone" db:"phone" example:"+91 98765 43210"`                // Contact phone
	Role             Role      `json:"role" db:"role" example:"MENTEE"`                           // MENTOR or MENTEE
	ProfileCompleted bool      `json:"profileCompleted" db:"profile_completed" example:"false"`   // Whether the profile has been filled in
	CreatedAt        time.Time `json:"createdAt" db:"created_at" example:"2024-01-01T10:00:00Z"`  // Timestamp when the user was created
	UpdatedAt        time.Time `json:"updatedAt" db:"updated_at" example:"2024-01-02T15:30:00Z"`  // Timestamp when the user was last updated

	// AssignedMentor is populated from the mentorships table for mentees.
	AssignedMentor *int64 `json:"assignedMentor,omitempty"`
	// Mentees is populated from the mentorships table for mentors, in assignment order.
	Mentees []int64 `json:"mentees,omitempty"`
}

// UserRef identifies the authenticated caller of an operation.
type UserRef struct {
	ID    int64
	Email string
	Role  Role
}

// Mentorship is the relationship edge linking one mentee to one mentor.
// It is stored once; both directions of the relationship derive from it.
type Mentorship struct {
	ID        int64     `json:"id" db:"id"`
	MentorID  int64     `json:"mentorId" db:"mentor_id"`
	MenteeID  int64     `json:"menteeId" db:"mentee_id"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}
