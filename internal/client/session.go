package client

import (
	"context"
	"time"

	"github.com/GeetAtGit/ReportVerse/internal/app/models"
	"github.com/GeetAtGit/ReportVerse/internal/app/models/dto"
	"github.com/GeetAtGit/ReportVerse/internal/config"
	"github.com/GeetAtGit/ReportVerse/internal/pkg/helpers"
)

// Cache keys for the session-scoped queries
const (
	keyIssues          = "issues"
	keyMentees         = "mentees"
	keyAchievements    = "achievements"
	keyMenteeDashboard = "dashboard:mentee"
	keyMentorDashboard = "dashboard:mentor"
)

// Session pairs a Client with a query cache. Reads go through the cache;
// mutations patch the affected entries optimistically and reconcile with a
// background refresh.
type Session struct {
	Client       *Client
	cache        *Cache
	dashboardTTL time.Duration
}

// NewSession creates a Session around the client with the default cache
// windows. SessionFromConfig builds one from a client config section.
func NewSession(c *Client) *Session {
	return &Session{
		Client:       c,
		cache:        NewCache(DefaultCacheTTL),
		dashboardTTL: DashboardCacheTTL,
	}
}

// SessionFromConfig creates a Session with the cache windows from the
// client config section. Unparseable values fall back to the defaults.
func SessionFromConfig(c *Client, cfg *config.Config) *Session {
	return &Session{
		Client:       c,
		cache:        NewCache(helpers.ParseDuration(cfg.Client.CacheTTL, DefaultCacheTTL)),
		dashboardTTL: helpers.ParseDuration(cfg.Client.DashboardCacheTTL, DashboardCacheTTL),
	}
}

// Issues returns the session's issues through the cache
func (s *Session) Issues(ctx context.Context) ([]models.Issue, error) {
	value, err := s.cache.Fetch(keyIssues, 0, func() (any, error) {
		return s.Client.ListIssues(ctx)
	})
	if value == nil {
		return nil, err
	}
	return value.([]models.Issue), err
}

// Mentees returns the mentor's roster through the cache
func (s *Session) Mentees(ctx context.Context) ([]models.User, error) {
	value, err := s.cache.Fetch(keyMentees, 0, func() (any, error) {
		return s.Client.ListMentees(ctx)
	})
	if value == nil {
		return nil, err
	}
	return value.([]models.User), err
}

// Achievements returns the session's achievements through the cache
func (s *Session) Achievements(ctx context.Context) ([]models.Achievement, error) {
	value, err := s.cache.Fetch(keyAchievements, 0, func() (any, error) {
		return s.Client.ListAchievements(ctx)
	})
	if value == nil {
		return nil, err
	}
	return value.([]models.Achievement), err
}

// MenteeDashboard returns the mentee home view, cached on the regular
// window
func (s *Session) MenteeDashboard(ctx context.Context) (*dto.MenteeDashboardResponse, error) {
	value, err := s.cache.Fetch(keyMenteeDashboard, 0, func() (any, error) {
		return s.Client.MenteeDashboard(ctx)
	})
	if value == nil {
		return nil, err
	}
	return value.(*dto.MenteeDashboardResponse), err
}

// MentorDashboard returns the mentor home view. It changes as mentees act,
// so it is cached on the short dashboard window.
func (s *Session) MentorDashboard(ctx context.Context) (*dto.MentorDashboardResponse, error) {
	value, err := s.cache.Fetch(keyMentorDashboard, s.dashboardTTL, func() (any, error) {
		return s.Client.MentorDashboard(ctx)
	})
	if value == nil {
		return nil, err
	}
	return value.(*dto.MentorDashboardResponse), err
}

// CreateIssue opens an issue, prepends it to the cached list and schedules
// a background reconcile.
func (s *Session) CreateIssue(ctx context.Context, req *dto.CreateIssueRequest) (*models.Issue, error) {
	issue, err := s.Client.CreateIssue(ctx, req)
	if err != nil {
		return nil, err
	}

	s.cache.Patch(keyIssues, func(value any) any {
		issues, ok := value.([]models.Issue)
		if !ok {
			return value
		}
		return append([]models.Issue{*issue}, issues...)
	})
	s.cache.Invalidate(keyMenteeDashboard)
	go s.reconcileIssues(ctx)

	return issue, nil
}

// AssignMentee adds a mentee to the roster, appends an optimistic entry to
// the cached roster and schedules a background reconcile to fill in the
// rest of the mentee's profile.
func (s *Session) AssignMentee(ctx context.Context, email string) (*models.Mentorship, error) {
	mentorship, err := s.Client.AssignMentee(ctx, email)
	if err != nil {
		return nil, err
	}

	s.cache.Patch(keyMentees, func(value any) any {
		mentees, ok := value.([]models.User)
		if !ok {
			return value
		}
		updated := make([]models.User, len(mentees), len(mentees)+1)
		copy(updated, mentees)
		return append(updated, models.User{
			ID:    mentorship.MenteeID,
			Email: email,
			Role:  models.RoleMentee,
		})
	})
	s.cache.Invalidate(keyMentorDashboard)
	go s.reconcileMentees(ctx)

	return mentorship, nil
}

// AddComment appends a comment, replaces the issue in the cached list and
// schedules a background reconcile.
func (s *Session) AddComment(ctx context.Context, issueID int64, req *dto.AddCommentRequest) (*models.Issue, error) {
	issue, err := s.Client.AddComment(ctx, issueID, req)
	if err != nil {
		return nil, err
	}

	s.cache.Patch(keyIssues, func(value any) any {
		issues, ok := value.([]models.Issue)
		if !ok {
			return value
		}
		updated := make([]models.Issue, len(issues))
		copy(updated, issues)
		for i := range updated {
			if updated[i].ID == issue.ID {
				updated[i] = *issue
			}
		}
		return updated
	})
	go s.reconcileIssues(ctx)

	return issue, nil
}

// reconcileIssues refreshes the cached issue list from the server. Errors
// are ignored; the optimistic value stays in place until the next read.
func (s *Session) reconcileIssues(ctx context.Context) {
	s.cache.Refresh(keyIssues, 0, func() (any, error) {
		return s.Client.ListIssues(ctx)
	})
}

func (s *Session) reconcileMentees(ctx context.Context) {
	s.cache.Refresh(keyMentees, 0, func() (any, error) {
		return s.Client.ListMentees(ctx)
	})
}

// Invalidate clears a single cached query
func (s *Session) Invalidate(key string) {
	s.cache.Invalidate(key)
}
