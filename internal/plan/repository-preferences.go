package plan

import (
	"context"
	"errors"
	"fmt"
)

// sqlitePreferenceRepository persists per-exercise preference levels.
type sqlitePreferenceRepository struct {
	baseRepository
}

// Get retrieves all of a user's exercise preferences keyed by exercise id.
// A user with no stored preferences gets an empty map, not an error.
func (r *sqlitePreferenceRepository) Get(ctx context.Context, userID string) (_ map[int64]Preference, err error) {
	rows, err := r.db.ReadOnly.QueryContext(ctx, `
		SELECT exercise_id, preference, reason
		FROM exercise_preferences
		WHERE user_id = ?`, userID)
	if err != nil {
		return nil, fmt.Errorf("query exercise preferences: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			err = errors.Join(err, fmt.Errorf("close rows: %w", closeErr))
		}
	}()

	prefs := make(map[int64]Preference)
	for rows.Next() {
		var pref Preference
		var level string
		if err = rows.Scan(&pref.ExerciseID, &level, &pref.Reason); err != nil {
			return nil, fmt.Errorf("scan preference row: %w", err)
		}
		pref.Level = PreferenceLevel(level)
		prefs[pref.ExerciseID] = pref
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate preference rows: %w", err)
	}
	return prefs, nil
}

// Set upserts one exercise preference.
func (r *sqlitePreferenceRepository) Set(ctx context.Context, userID string, pref Preference) error {
	_, err := r.db.ReadWrite.ExecContext(ctx, `
		INSERT INTO exercise_preferences (user_id, exercise_id, preference, reason)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (user_id, exercise_id) DO UPDATE SET
			preference = excluded.preference,
			reason = excluded.reason`,
		userID, pref.ExerciseID, string(pref.Level), pref.Reason)
	if err != nil {
		return fmt.Errorf("save exercise preference: %w", err)
	}
	return nil
}
