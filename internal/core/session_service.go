package core

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// SessionService manages counting sessions. Only one session is active at a
// time; starting a new one deactivates the rest in the same transaction.
type SessionService interface {
	// CreateSession starts a new active session and deactivates all others.
	CreateSession(ctx context.Context, in SessionInput) (*StockSession, error)

	// GetSessions returns sessions newest first, capped at 100.
	GetSessions(ctx context.Context) ([]StockSession, error)

	// GetCurrentSession returns the active session, or nil when none is.
	GetCurrentSession(ctx context.Context) (*StockSession, error)
}

type sessionService struct {
	pool *pgxpool.Pool
}

// NewSessionService constructs a SessionService backed by the stock_sessions table.
func NewSessionService(pool *pgxpool.Pool) SessionService {
	return &sessionService{pool: pool}
}

const sessionColumns = `id, session_name, session_date, session_type, is_active, notes`

func (s *sessionService) CreateSession(ctx context.Context, in SessionInput) (*StockSession, error) {
	in.Normalize()
	if err := in.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidInput, err)
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, "UPDATE stock_sessions SET is_active = false WHERE is_active"); err != nil {
		return nil, fmt.Errorf("failed to deactivate previous sessions: %w", err)
	}

	var notes *string
	if in.Notes != "" {
		notes = &in.Notes
	}

	var sess StockSession
	err = tx.QueryRow(ctx, `
		INSERT INTO stock_sessions (id, session_name, session_type, is_active, notes)
		VALUES ($1, $2, $3, true, $4)
		RETURNING `+sessionColumns,
		uuid.NewString(), in.SessionName, in.SessionType, notes,
	).Scan(&sess.ID, &sess.SessionName, &sess.SessionDate, &sess.SessionType, &sess.IsActive, &sess.Notes)
	if err != nil {
		return nil, fmt.Errorf("failed to insert session: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit session create: %w", err)
	}
	return &sess, nil
}

func (s *sessionService) GetSessions(ctx context.Context) ([]StockSession, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT `+sessionColumns+`
		FROM stock_sessions
		ORDER BY session_date DESC, id
		LIMIT 100
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query sessions: %w", err)
	}
	defer rows.Close()

	var sessions []StockSession
	for rows.Next() {
		var sess StockSession
		if err := rows.Scan(&sess.ID, &sess.SessionName, &sess.SessionDate,
			&sess.SessionType, &sess.IsActive, &sess.Notes); err != nil {
			return nil, fmt.Errorf("failed to scan session: %w", err)
		}
		sessions = append(sessions, sess)
	}
	return sessions, rows.Err()
}

func (s *sessionService) GetCurrentSession(ctx context.Context) (*StockSession, error) {
	var sess StockSession
	err := s.pool.QueryRow(ctx, `
		SELECT `+sessionColumns+` FROM stock_sessions WHERE is_active LIMIT 1
	`).Scan(&sess.ID, &sess.SessionName, &sess.SessionDate, &sess.SessionType, &sess.IsActive, &sess.Notes)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch current session: %w", err)
	}
	return &sess, nil
}
