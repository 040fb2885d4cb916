package plan

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// sqliteSetRepository persists logged exercise sets.
type sqliteSetRepository struct {
	baseRepository
}

// Create inserts a logged set.
func (r *sqliteSetRepository) Create(ctx context.Context, set ExerciseSet) error {
	_, err := r.db.ReadWrite.ExecContext(ctx, `
		INSERT INTO exercise_sets (id, session_id, exercise_id, set_number, reps, weight, rpe, rest_seconds, completed_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		set.ID.String(), set.SessionID.String(), set.ExerciseID, set.SetNumber,
		set.Reps, set.Weight, set.RPE, set.RestSeconds, formatTimestamp(set.CompletedAt))
	if err != nil {
		return fmt.Errorf("insert exercise set: %w", err)
	}
	return nil
}

// ListBySession retrieves a session's sets ordered by exercise and set
// number.
func (r *sqliteSetRepository) ListBySession(ctx context.Context, sessionID uuid.UUID) (_ []ExerciseSet, err error) {
	rows, err := r.db.ReadOnly.QueryContext(ctx, `
		SELECT id, session_id, exercise_id, set_number, reps, weight, rpe, rest_seconds, completed_at
		FROM exercise_sets
		WHERE session_id = ?
		ORDER BY exercise_id, set_number`, sessionID.String())
	if err != nil {
		return nil, fmt.Errorf("query session sets: %w", err)
	}
	return r.collect(rows, &err)
}

// ListSince retrieves a user's sets completed on or after the given time by
// joining through the session table.
func (r *sqliteSetRepository) ListSince(ctx context.Context, userID string, since time.Time) (_ []ExerciseSet, err error) {
	rows, err := r.db.ReadOnly.QueryContext(ctx, `
		SELECT es.id, es.session_id, es.exercise_id, es.set_number, es.reps, es.weight,
		       es.rpe, es.rest_seconds, es.completed_at
		FROM exercise_sets es
		JOIN workout_sessions ws ON ws.id = es.session_id
		WHERE ws.user_id = ? AND es.completed_at >= ?
		ORDER BY es.completed_at`, userID, formatTimestamp(since))
	if err != nil {
		return nil, fmt.Errorf("query recent sets: %w", err)
	}
	return r.collect(rows, &err)
}

// Delete removes a set and renumbers the remaining sets of the same exercise
// so set numbers stay dense and ascending.
func (r *sqliteSetRepository) Delete(ctx context.Context, id uuid.UUID) (err error) {
	tx, err := r.db.ReadWrite.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if rollbackErr := tx.Rollback(); rollbackErr != nil && !errors.Is(rollbackErr, sql.ErrTxDone) {
			r.logger.LogAttrs(ctx, slog.LevelError, "rollback transaction", slog.Any("error", rollbackErr))
		}
	}()

	var sessionID string
	var exerciseID int64
	err = tx.QueryRowContext(ctx, `
		SELECT session_id, exercise_id FROM exercise_sets WHERE id = ?`, id.String()).
		Scan(&sessionID, &exerciseID)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("query set: %w", err)
	}

	if _, err = tx.ExecContext(ctx, `DELETE FROM exercise_sets WHERE id = ?`, id.String()); err != nil {
		return fmt.Errorf("delete set: %w", err)
	}

	// Renumber the surviving sets densely from 1. The negative pass avoids
	// tripping the unique constraint while numbers shift.
	if _, err = tx.ExecContext(ctx, `
		UPDATE exercise_sets
		SET set_number = -(
			SELECT COUNT(*) FROM exercise_sets inner_sets
			WHERE inner_sets.session_id = exercise_sets.session_id
			  AND inner_sets.exercise_id = exercise_sets.exercise_id
			  AND inner_sets.set_number <= exercise_sets.set_number
		)
		WHERE session_id = ? AND exercise_id = ?`, sessionID, exerciseID); err != nil {
		return fmt.Errorf("renumber sets: %w", err)
	}
	if _, err = tx.ExecContext(ctx, `
		UPDATE exercise_sets
		SET set_number = -set_number
		WHERE session_id = ? AND exercise_id = ? AND set_number < 0`, sessionID, exerciseID); err != nil {
		return fmt.Errorf("flip renumbered sets: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

func (r *sqliteSetRepository) collect(rows *sql.Rows, outerErr *error) ([]ExerciseSet, error) {
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			*outerErr = errors.Join(*outerErr, fmt.Errorf("close rows: %w", closeErr))
		}
	}()

	var sets []ExerciseSet
	for rows.Next() {
		var (
			set            ExerciseSet
			idStr          string
			sessionIDStr   string
			completedAtStr string
		)
		if err := rows.Scan(&idStr, &sessionIDStr, &set.ExerciseID, &set.SetNumber,
			&set.Reps, &set.Weight, &set.RPE, &set.RestSeconds, &completedAtStr); err != nil {
			return nil, fmt.Errorf("scan set row: %w", err)
		}
		id, err := uuid.Parse(idStr)
		if err != nil {
			return nil, fmt.Errorf("parse set id: %w", err)
		}
		sessionID, err := uuid.Parse(sessionIDStr)
		if err != nil {
			return nil, fmt.Errorf("parse set session id: %w", err)
		}
		set.ID = id
		set.SessionID = sessionID
		if set.CompletedAt, err = parseTimestamp(completedAtStr); err != nil {
			return nil, fmt.Errorf("parse set completed_at: %w", err)
		}
		sets = append(sets, set)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate set rows: %w", err)
	}
	return sets, nil
}
