// Package db owns the process-wide PostgreSQL connection.
package db

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/GeetAtGit/ReportVerse/internal/config"
	"github.com/GeetAtGit/ReportVerse/internal/pkg/helpers"
)

const maxBackoff = 30 * time.Second

// ConnectionManager establishes and owns the database connection pool.
// It is constructed once at process start; retry state lives inside it.
type ConnectionManager struct {
	cfg    *config.Config
	logger zerolog.Logger
	pool   *pgxpool.Pool
}

// NewConnectionManager creates a ConnectionManager for the given configuration.
func NewConnectionManager(cfg *config.Config, logger zerolog.Logger) *ConnectionManager {
	return &ConnectionManager{
		cfg:    cfg,
		logger: logger,
	}
}

// Connect establishes the connection pool, retrying with exponential backoff
// (2^n seconds, capped at 30s) up to the configured attempt count. It returns
// the last error once attempts are exhausted.
func (m *ConnectionManager) Connect(ctx context.Context) (*pgxpool.Pool, error) {
	attempts := m.cfg.Database.ConnectAttempts

	var lastErr error
	for attempt := 0; attempt < attempts; attempt++ {
		if attempt > 0 {
			backoff := time.Duration(1<<uint(attempt)) * time.Second
			if backoff > maxBackoff {
				backoff = maxBackoff
			}
			m.logger.Warn().
				Err(lastErr).
				Int("attempt", attempt).
				Dur("backoff", backoff).
				Msg("Database connection failed, retrying")

			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		pool, err := m.connectOnce(ctx)
		if err == nil {
			m.pool = pool
			return pool, nil
		}
		lastErr = err
	}

	return nil, fmt.Errorf("database connection failed after %d attempts: %w", attempts, lastErr)
}

// connectOnce performs a single pool construction and ping.
func (m *ConnectionManager) connectOnce(ctx context.Context) (*pgxpool.Pool, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	poolConfig, err := pgxpool.ParseConfig(m.cfg.GetPostgresConnectionString())
	if err != nil {
		return nil, fmt.Errorf("failed to parse pgxpool config: %w", err)
	}

	poolConfig.MaxConns = int32(m.cfg.Database.MaxOpenConns)
	poolConfig.MinConns = int32(m.cfg.Database.MaxIdleConns)
	poolConfig.MaxConnLifetime = helpers.ParseDuration(m.cfg.Database.ConnMaxLifetime, time.Hour)

	// Drop unhealthy connections before handing them out
	poolConfig.BeforeAcquire = func(ctx context.Context, conn *pgx.Conn) bool {
		if err := conn.Ping(ctx); err != nil {
			m.logger.Warn().Err(err).Msg("Unhealthy connection detected")
			return false
		}
		return true
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create database connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to establish database connection: %w", err)
	}

	return pool, nil
}

// Ping probes the database, for health reporting.
func (m *ConnectionManager) Ping(ctx context.Context) error {
	if m.pool == nil {
		return fmt.Errorf("database pool not initialized")
	}
	return m.pool.Ping(ctx)
}

// Close shuts down the connection pool.
func (m *ConnectionManager) Close() {
	if m.pool != nil {
		m.pool.Close()
	}
}

// TransactionFn is a function that executes within a transaction
type TransactionFn func(ctx context.Context, tx pgx.Tx) error

// WithTransaction runs a function within a transaction, committing on success
// and rolling back on error or panic.
func WithTransaction(ctx context.Context, pool *pgxpool.Pool, fn TransactionFn) error {
	if _, hasDeadline := ctx.Deadline(); !hasDeadline {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, 30*time.Second)
		defer cancel()
	}

	tx, err := pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if r := recover(); r != nil {
			_ = tx.Rollback(ctx)
			panic(r)
		}
	}()

	if err := fn(ctx, tx); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			return fmt.Errorf("error: %v, rollback error: %w", err, rbErr)
		}
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
