// Package models defines the persisted entities of ReportVerse.
package models

// Role defines the user role type
type Role string

const (
	RoleMentor Role = "MENTOR"
	RoleMentee Role = "MENTEE"
)

// Valid reports whether the role is one of the defined values
func (r Role) Valid() bool {
	return r == RoleMentor || r == RoleMentee
}

// IssueType classifies a reported issue
type IssueType string

const (
	IssueAcademic      IssueType = "Academic"
	IssueGrievances    IssueType = "Grievances"
	IssueRagging       IssueType = "Ragging"
	IssueHarassment    IssueType = "Harassment"
	IssueAccommodation IssueType = "Accommodation"
	IssueOther         IssueType = "Other"
)

// IssueTypes lists every valid issue type
var IssueTypes = []IssueType{
	IssueAcademic,
	IssueGrievances,
	IssueRagging,
	IssueHarassment,
	IssueAccommodation,
	IssueOther,
}

// Valid reports whether the issue type is one of the defined values
func (t IssueType) Valid() bool {
	for _, v := range IssueTypes {
		if t == v {
			return true
		}
	}
	return false
}

// IssueStatus is the lifecycle state of an issue
type IssueStatus string

const (
	StatusOpen        IssueStatus = "Open"
	StatusUnderReview IssueStatus = "Under Review"
	StatusResolved    IssueStatus = "Resolved"
	StatusClosed      IssueStatus = "Closed"
)

// IssueStatuses lists every valid issue status
var IssueStatuses = []IssueStatus{
	StatusOpen,
	StatusUnderReview,
	StatusResolved,
	StatusClosed,
}

// Valid reports whether the status is one of the defined values
func (s IssueStatus) Valid() bool {
	for _, v := range IssueStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// Terminal reports whether the status accepts no further transitions.
// Resolved and Closed end the lifecycle; only Open and Under Review may move.
func (s IssueStatus) Terminal() bool {
	return s == StatusResolved || s == StatusClosed
}

// CanTransitionTo reports whether a move from s to next is legal.
func (s IssueStatus) CanTransitionTo(next IssueStatus) bool {
	if !next.Valid() || s.Terminal() {
		return false
	}
	switch next {
	case StatusUnderReview, StatusResolved, StatusClosed:
		return true
	}
	return false
}

// AchievementType classifies a logged achievement
type AchievementType string

const (
	AchievementAcademic  AchievementType = "Academic"
	AchievementSports    AchievementType = "Sports"
	AchievementCultural  AchievementType = "Cultural"
	AchievementTechnical AchievementType = "Technical"
	AchievementOther     AchievementType = "Other"
)

// AchievementTypes lists every valid achievement type
var AchievementTypes = []AchievementType{
	AchievementAcademic,
	AchievementSports,
	AchievementCultural,
	AchievementTechnical,
	AchievementOther,
}

// Valid reports whether the achievement type is one of the defined values
func (t AchievementType) Valid() bool {
	for _, v := range AchievementTypes {
		if t == v {
			return true
		}
	}
	return false
}

// AchievementPosition is the placement earned, if any
type AchievementPosition string

const (
	PositionFirst         AchievementPosition = "First"
	PositionSecond        AchievementPosition = "Second"
	PositionThird         AchievementPosition = "Third"
	PositionParticipation AchievementPosition = "Participation"
	PositionNA            AchievementPosition = "N/A"
)

// AchievementPositions lists every valid achievement position
var AchievementPositions = []AchievementPosition{
	PositionFirst,
	PositionSecond,
	PositionThird,
	PositionParticipation,
	PositionNA,
}

// Valid reports whether the position is one of the defined values
func (p AchievementPosition) Valid() bool {
	for _, v := range AchievementPositions {
		if p == v {
			return true
		}
	}
	return false
}
