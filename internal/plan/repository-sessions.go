package plan

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// sqliteSessionRepository persists workout sessions.
type sqliteSessionRepository struct {
	baseRepository
}

// Create inserts a new workout session.
func (r *sqliteSessionRepository) Create(ctx context.Context, session Session) error {
	_, err := r.db.ReadWrite.ExecContext(ctx, `
		INSERT INTO workout_sessions (id, user_id, workout_type, notes, started_at)
		VALUES (?, ?, ?, ?, ?)`,
		session.ID.String(), session.UserID, string(session.WorkoutType),
		session.Notes, formatTimestamp(session.StartedAt))
	if err != nil {
		return fmt.Errorf("insert workout session: %w", err)
	}
	return nil
}

// Get retrieves a session by id.
func (r *sqliteSessionRepository) Get(ctx context.Context, id uuid.UUID) (Session, error) {
	var (
		session        Session
		idStr          string
		workoutTypeStr string
		startedAtStr   string
		completedAtStr sql.NullString
	)
	err := r.db.ReadOnly.QueryRowContext(ctx, `
		SELECT id, user_id, workout_type, notes, started_at, completed_at
		FROM workout_sessions
		WHERE id = ?`, id.String()).
		Scan(&idStr, &session.UserID, &workoutTypeStr, &session.Notes, &startedAtStr, &completedAtStr)
	if errors.Is(err, sql.ErrNoRows) {
		return Session{}, ErrNotFound
	}
	if err != nil {
		return Session{}, fmt.Errorf("query workout session: %w", err)
	}
	return r.hydrate(idStr, workoutTypeStr, startedAtStr, completedAtStr, session)
}

// ListSince retrieves a user's sessions started on or after the given time,
// most recent first.
func (r *sqliteSessionRepository) ListSince(ctx context.Context, userID string, since time.Time) (_ []Session, err error) {
	rows, err := r.db.ReadOnly.QueryContext(ctx, `
		SELECT id, user_id, workout_type, notes, started_at, completed_at
		FROM workout_sessions
		WHERE user_id = ? AND started_at >= ?
		ORDER BY started_at DESC`,
		userID, formatTimestamp(since))
	if err != nil {
		return nil, fmt.Errorf("query workout history: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			err = errors.Join(err, fmt.Errorf("close rows: %w", closeErr))
		}
	}()

	var sessions []Session
	for rows.Next() {
		var (
			session        Session
			idStr          string
			workoutTypeStr string
			startedAtStr   string
			completedAtStr sql.NullString
		)
		if err = rows.Scan(&idStr, &session.UserID, &workoutTypeStr,
			&session.Notes, &startedAtStr, &completedAtStr); err != nil {
			return nil, fmt.Errorf("scan session row: %w", err)
		}
		session, err = r.hydrate(idStr, workoutTypeStr, startedAtStr, completedAtStr, session)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, session)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate session rows: %w", err)
	}
	return sessions, nil
}

// Complete marks a session completed and stores its closing notes. Completing
// an unknown or already-completed session returns ErrNotFound.
func (r *sqliteSessionRepository) Complete(ctx context.Context, id uuid.UUID, notes string, completedAt time.Time) error {
	result, err := r.db.ReadWrite.ExecContext(ctx, `
		UPDATE workout_sessions
		SET completed_at = ?, notes = ?
		WHERE id = ? AND completed_at IS NULL`,
		formatTimestamp(completedAt), notes, id.String())
	if err != nil {
		return fmt.Errorf("complete workout session: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("get rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("session %s not open: %w", id, ErrNotFound)
	}
	return nil
}

func (r *sqliteSessionRepository) hydrate(
	idStr, workoutTypeStr, startedAtStr string,
	completedAtStr sql.NullString,
	session Session,
) (Session, error) {
	id, err := uuid.Parse(idStr)
	if err != nil {
		return Session{}, fmt.Errorf("parse session id: %w", err)
	}
	session.ID = id
	session.WorkoutType = WorkoutType(workoutTypeStr)

	if session.StartedAt, err = parseTimestamp(startedAtStr); err != nil {
		return Session{}, fmt.Errorf("parse started_at: %w", err)
	}
	if completedAtStr.Valid {
		completedAt, parseErr := parseTimestamp(completedAtStr.String)
		if parseErr != nil {
			return Session{}, fmt.Errorf("parse completed_at: %w", parseErr)
		}
		session.CompletedAt = &completedAt
	}
	return session, nil
}
