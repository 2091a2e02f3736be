package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/GeetAtGit/ReportVerse/internal/app/models"
	"github.com/GeetAtGit/ReportVerse/internal/pkg/apperrors"
	"github.com/GeetAtGit/ReportVerse/internal/pkg/dberrors"
)

// IUserRepository defines the interface for user-related database operations
type IUserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	UpdateProfile(ctx context.Context, userID int64, name, phone string) error
}

// UserRepository handles user database operations
type UserRepository struct {
	db *pgxpool.Pool
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{
		db: db,
	}
}

// Create inserts a new user and fills in its generated fields.
// Returns apperrors.ErrEmailAlreadyExists on a duplicate email.
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO users (email, password, name, phone, role, profile_completed)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at`,
		user.Email, user.Password, user.Name, user.Phone, user.Role, user.ProfileCompleted).
		Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)

	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "users_email_key") {
			return apperrors.ErrEmailAlreadyExists
		}
		return fmt.Errorf("error creating user: %w", err)
	}

	return nil
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	user := &models.User{}
	err := r.db.QueryRow(ctx, `
		SELECT id, email, password, name, phone, role, profile_completed, created_at, updated_at
		FROM users
		WHERE id = $1`,
		id).Scan(
		&user.ID, &user.Email, &user.Password, &user.Name, &user.Phone,
		&user.Role, &user.ProfileCompleted, &user.CreatedAt, &user.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("error fetching user: %w", err)
	}

	return user, nil
}

// GetByEmail retrieves a user by normalized email
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	user := &models.User{}
	err := r.db.QueryRow(ctx, `
		SELECT id, email, password, name, phone, role, profile_completed, created_at, updated_at
		FROM users
		WHERE email = $1`,
		email).Scan(
		&user.ID, &user.Email, &user.Password, &user.Name, &user.Phone,
		&user.Role, &user.ProfileCompleted, &user.CreatedAt, &user.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("error fetching user: %w", err)
	}

	return user, nil
}

// EmailExists checks if an email is already registered
func (r *UserRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`,
		email).Scan(&exists)

	if err != nil {
		return false, fmt.Errorf("error checking email: %w", err)
	}

	return exists, nil
}

// UpdateProfile updates the mentee-editable profile fields and marks the
// profile completed.
func (r *UserRepository) UpdateProfile(ctx context.Context, userID int64, name, phone string) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE users
		SET name = $2, phone = $3, profile_completed = TRUE, updated_at = NOW()
		WHERE id = $1`,
		userID, name, phone)

	if err != nil {
		return fmt.Errorf("error updating profile: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}

	return nil
}
