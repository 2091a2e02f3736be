// Package client is a typed Go client for the ReportVerse API. It decodes
// the standard response envelope, caches query results and can poll for
// pending issues on behalf of a mentor session.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/GeetAtGit/ReportVerse/internal/app/models"
	"github.com/GeetAtGit/ReportVerse/internal/app/models/dto"
)

const defaultRequestTimeout = 15 * time.Second

// APIError is a request the server rejected. It carries the HTTP status and
// the message from the error envelope.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error (status %d): %s", e.StatusCode, e.Message)
}

// envelope mirrors the wire format of every response
type envelope struct {
	Success bool            `json:"success"`
	Token   string          `json:"token,omitempty"`
	Count   *int            `json:"count,omitempty"`
	Error   string          `json:"error,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`
}

// Client talks to a ReportVerse server. Safe for concurrent use; the token
// and role are set once by Login or Register.
type Client struct {
	baseURL    string
	httpClient *http.Client

	mu    sync.RWMutex
	token string
	role  models.Role
}

// New creates a Client against the given base URL, e.g. "http://localhost:8080".
func New(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: defaultRequestTimeout},
	}
}

// SetToken installs a previously issued token and the role it belongs to
func (c *Client) SetToken(token string, role models.Role) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = token
	c.role = role
}

// Role returns the role of the current session
func (c *Client) Role() models.Role {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.role
}

// do performs one request and decodes the envelope into out. Any non-2xx
// status or success:false body is returned as *APIError; bodies that do not
// parse as the envelope are rejected the same way regardless of endpoint.
func (c *Client) do(ctx context.Context, method, path string, body any, out any) (*envelope, error) {
	var reqBody *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encoding request body: %w", err)
		}
		reqBody = bytes.NewReader(raw)
	} else {
		reqBody = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	c.mu.RLock()
	token := c.token
	c.mu.RUnlock()
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, &APIError{StatusCode: resp.StatusCode, Message: "malformed response body"}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 || !env.Success {
		message := env.Error
		if message == "" {
			message = http.StatusText(resp.StatusCode)
		}
		return nil, &APIError{StatusCode: resp.StatusCode, Message: message}
	}

	if out != nil {
		if env.Data == nil {
			return nil, &APIError{StatusCode: resp.StatusCode, Message: "missing data in response"}
		}
		if err := json.Unmarshal(env.Data, out); err != nil {
			return nil, &APIError{StatusCode: resp.StatusCode, Message: "malformed data in response"}
		}
	}

	return &env, nil
}

// rolePrefix is the path segment owned by the session's role
func (c *Client) rolePrefix() string {
	if c.Role() == models.RoleMentor {
		return "/api/mentor"
	}
	return "/api/mentee"
}

// --- Auth ---

// RegisterMentor creates a mentor account and starts a session
func (c *Client) RegisterMentor(ctx context.Context, req *dto.RegisterRequest) (*dto.RegisterResponse, error) {
	return c.register(ctx, "/api/auth/register/mentor", models.RoleMentor, req)
}

// RegisterMentee creates a mentee account and starts a session
func (c *Client) RegisterMentee(ctx context.Context, req *dto.RegisterRequest) (*dto.RegisterResponse, error) {
	return c.register(ctx, "/api/auth/register/mentee", models.RoleMentee, req)
}

func (c *Client) register(ctx context.Context, path string, role models.Role, req *dto.RegisterRequest) (*dto.RegisterResponse, error) {
	var out dto.RegisterResponse
	env, err := c.do(ctx, http.MethodPost, path, req, &out)
	if err != nil {
		return nil, err
	}
	c.SetToken(env.Token, role)
	return &out, nil
}

// Login authenticates and stores the session token and role
func (c *Client) Login(ctx context.Context, email, password string) (*dto.LoginResponse, error) {
	var out dto.LoginResponse
	env, err := c.do(ctx, http.MethodPost, "/api/auth/login", &dto.LoginRequest{Email: email, Password: password}, &out)
	if err != nil {
		return nil, err
	}
	c.SetToken(env.Token, models.Role(out.Role))
	return &out, nil
}

// Me returns the account behind the session token
func (c *Client) Me(ctx context.Context) (*dto.CurrentUserResponse, error) {
	var out dto.CurrentUserResponse
	if _, err := c.do(ctx, http.MethodGet, "/api/auth/me", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateProfile updates the mentee profile fields
func (c *Client) UpdateProfile(ctx context.Context, req *dto.UpdateProfileRequest) (*dto.CurrentUserResponse, error) {
	var out dto.CurrentUserResponse
	if _, err := c.do(ctx, http.MethodPut, "/api/mentee/profile", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// --- Issues ---

// CreateIssue opens an issue against the session mentee's mentor
func (c *Client) CreateIssue(ctx context.Context, req *dto.CreateIssueRequest) (*models.Issue, error) {
	var out models.Issue
	if _, err := c.do(ctx, http.MethodPost, "/api/mentee/issues", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListIssues lists the session's issues, newest first
func (c *Client) ListIssues(ctx context.Context) ([]models.Issue, error) {
	var out []models.Issue
	if _, err := c.do(ctx, http.MethodGet, c.rolePrefix()+"/issues", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetIssue returns one issue with its comment thread
func (c *Client) GetIssue(ctx context.Context, issueID int64) (*models.Issue, error) {
	var out models.Issue
	path := c.rolePrefix() + "/issues/" + strconv.FormatInt(issueID, 10)
	if _, err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// AddComment appends a comment, optionally moving the issue's status
func (c *Client) AddComment(ctx context.Context, issueID int64, req *dto.AddCommentRequest) (*models.Issue, error) {
	path := c.rolePrefix() + "/issues/" + strconv.FormatInt(issueID, 10) + "/comments"
	if c.Role() == models.RoleMentor {
		path = c.rolePrefix() + "/issues/" + strconv.FormatInt(issueID, 10) + "/comment"
	}
	var out models.Issue
	if _, err := c.do(ctx, http.MethodPost, path, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// --- Mentees ---

// AssignMentee adds the mentee with the given email to the mentor's roster
func (c *Client) AssignMentee(ctx context.Context, email string) (*models.Mentorship, error) {
	var out models.Mentorship
	if _, err := c.do(ctx, http.MethodPost, "/api/mentor/mentees/assign", &dto.AssignMenteeRequest{Email: email}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListMentees returns the mentor's roster
func (c *Client) ListMentees(ctx context.Context) ([]models.User, error) {
	var out []models.User
	if _, err := c.do(ctx, http.MethodGet, "/api/mentor/mentees", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetMenteeDetail returns a roster mentee's profile with academics
func (c *Client) GetMenteeDetail(ctx context.Context, menteeID int64) (*dto.MenteeDetailResponse, error) {
	var out dto.MenteeDetailResponse
	path := "/api/mentor/mentees/" + strconv.FormatInt(menteeID, 10)
	if _, err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// --- Achievements ---

// CreateAchievement logs an achievement for the session mentee, or for a
// roster mentee when the session is a mentor and req.MenteeID is set.
func (c *Client) CreateAchievement(ctx context.Context, req *dto.CreateAchievementRequest) (*models.Achievement, error) {
	var out models.Achievement
	if _, err := c.do(ctx, http.MethodPost, c.rolePrefix()+"/achievements", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListAchievements lists the session's achievements, newest first
func (c *Client) ListAchievements(ctx context.Context) ([]models.Achievement, error) {
	var out []models.Achievement
	if _, err := c.do(ctx, http.MethodGet, c.rolePrefix()+"/achievements", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// --- Academics ---

// GetAcademicRecord returns the session mentee's academic record
func (c *Client) GetAcademicRecord(ctx context.Context) (*models.AcademicRecord, error) {
	var out models.AcademicRecord
	if _, err := c.do(ctx, http.MethodGet, "/api/mentee/academics", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateAcademicRecord applies a partial update to the academic record
func (c *Client) UpdateAcademicRecord(ctx context.Context, req *dto.UpdateAcademicRecordRequest) (*models.AcademicRecord, error) {
	var out models.AcademicRecord
	if _, err := c.do(ctx, http.MethodPut, "/api/mentee/academics", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// --- Dashboards ---

// MenteeDashboard returns the mentee home view
func (c *Client) MenteeDashboard(ctx context.Context) (*dto.MenteeDashboardResponse, error) {
	var out dto.MenteeDashboardResponse
	if _, err := c.do(ctx, http.MethodGet, "/api/mentee/dashboard", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// MentorDashboard returns the mentor home view
func (c *Client) MentorDashboard(ctx context.Context) (*dto.MentorDashboardResponse, error) {
	var out dto.MentorDashboardResponse
	if _, err := c.do(ctx, http.MethodGet, "/api/mentor/dashboard", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Health returns server health. The endpoint does not use the envelope.
func (c *Client) Health(ctx context.Context) (*dto.HealthResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/health", nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var out dto.HealthResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, &APIError{StatusCode: resp.StatusCode, Message: "malformed response body"}
	}
	return &out, nil
}
