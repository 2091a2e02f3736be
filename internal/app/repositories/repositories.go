// Package repositories is the data access layer over PostgreSQL.
package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository        *UserRepository
	MentorshipRepository  *MentorshipRepository
	IssueRepository       *IssueRepository
	AchievementRepository *AchievementRepository
	AcademicRepository    *AcademicRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:        NewUserRepository(db),
		MentorshipRepository:  NewMentorshipRepository(db),
		IssueRepository:       NewIssueRepository(db),
		AchievementRepository: NewAchievementRepository(db),
		AcademicRepository:    NewAcademicRepository(db),
	}
}
