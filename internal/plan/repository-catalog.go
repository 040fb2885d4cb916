package plan

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
)

// sqliteCatalogRepository reads the exercise catalog.
type sqliteCatalogRepository struct {
	baseRepository
}

// List retrieves catalog exercises for a workout type and muscle groups.
// A full-body workout matches every exercise type; otherwise full-body
// catalog entries are included alongside the specific type.
func (r *sqliteCatalogRepository) List(
	ctx context.Context,
	workoutType WorkoutType,
	muscleGroups []string,
) (_ []CatalogExercise, err error) {
	if len(muscleGroups) == 0 {
		return nil, nil
	}

	placeholders := strings.Repeat("?,", len(muscleGroups))
	placeholders = placeholders[:len(placeholders)-1]

	query := fmt.Sprintf(`
		SELECT id, name, muscle_group, workout_type, equipment, is_compound
		FROM exercises
		WHERE muscle_group IN (%s)
		  AND (workout_type = ? OR workout_type = 'full_body' OR ? = 'full_body')
		ORDER BY muscle_group, id`, placeholders)

	args := make([]any, 0, len(muscleGroups)+2)
	for _, g := range muscleGroups {
		args = append(args, g)
	}
	args = append(args, string(workoutType), string(workoutType))

	rows, err := r.db.ReadOnly.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query exercise catalog: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			err = errors.Join(err, fmt.Errorf("close rows: %w", closeErr))
		}
	}()

	var exercises []CatalogExercise
	for rows.Next() {
		var ex CatalogExercise
		var workoutTypeStr string
		if err = rows.Scan(&ex.ID, &ex.Name, &ex.MuscleGroup, &workoutTypeStr, &ex.Equipment, &ex.IsCompound); err != nil {
			return nil, fmt.Errorf("scan catalog row: %w", err)
		}
		ex.WorkoutType = WorkoutType(workoutTypeStr)
		exercises = append(exercises, ex)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate catalog rows: %w", err)
	}
	return exercises, nil
}

// Get retrieves a catalog exercise by id.
func (r *sqliteCatalogRepository) Get(ctx context.Context, id int64) (CatalogExercise, error) {
	var ex CatalogExercise
	var workoutTypeStr string
	err := r.db.ReadOnly.QueryRowContext(ctx, `
		SELECT id, name, muscle_group, workout_type, equipment, is_compound
		FROM exercises
		WHERE id = ?`, id).
		Scan(&ex.ID, &ex.Name, &ex.MuscleGroup, &workoutTypeStr, &ex.Equipment, &ex.IsCompound)
	if errors.Is(err, sql.ErrNoRows) {
		return CatalogExercise{}, ErrNotFound
	}
	if err != nil {
		return CatalogExercise{}, fmt.Errorf("query catalog exercise: %w", err)
	}
	ex.WorkoutType = WorkoutType(workoutTypeStr)
	return ex, nil
}

// FindByName retrieves a catalog exercise by case-insensitive name match,
// trying exact first and substring second.
func (r *sqliteCatalogRepository) FindByName(ctx context.Context, name string) (CatalogExercise, error) {
	var ex CatalogExercise
	var workoutTypeStr string
	err := r.db.ReadOnly.QueryRowContext(ctx, `
		SELECT id, name, muscle_group, workout_type, equipment, is_compound
		FROM exercises
		WHERE name = ? COLLATE NOCASE
		   OR name LIKE '%' || ? || '%' COLLATE NOCASE
		ORDER BY CASE WHEN name = ? COLLATE NOCASE THEN 0 ELSE 1 END, id
		LIMIT 1`, name, name, name).
		Scan(&ex.ID, &ex.Name, &ex.MuscleGroup, &workoutTypeStr, &ex.Equipment, &ex.IsCompound)
	if errors.Is(err, sql.ErrNoRows) {
		return CatalogExercise{}, ErrNotFound
	}
	if err != nil {
		return CatalogExercise{}, fmt.Errorf("query catalog exercise by name: %w", err)
	}
	ex.WorkoutType = WorkoutType(workoutTypeStr)
	return ex, nil
}
