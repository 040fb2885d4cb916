package sqlite_test

import (
	"context"
	"testing"

	"github.com/SiedahmedM/Saif-sub000/internal/sqlite"
	"github.com/SiedahmedM/Saif-sub000/internal/testhelpers"
)

func newTestDatabase(t *testing.T) *sqlite.Database {
	t.Helper()
	logger := testhelpers.NewLogger(testhelpers.NewWriter(t))
	db, err := sqlite.NewDatabase(context.Background(), ":memory:", logger)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if closeErr := db.Close(); closeErr != nil {
			t.Error(closeErr)
		}
	})
	return db
}

func TestNewDatabaseSeedsExerciseCatalog(t *testing.T) {
	t.Parallel()
	db := newTestDatabase(t)

	var count int
	if err := db.ReadOnly.QueryRowContext(context.Background(),
		"SELECT COUNT(*) FROM exercises").Scan(&count); err != nil {
		t.Fatal(err)
	}
	if count < 30 {
		t.Errorf("seeded %d exercises, want the full catalog", count)
	}

	var name string
	if err := db.ReadOnly.QueryRowContext(context.Background(),
		"SELECT name FROM exercises WHERE id = 1").Scan(&name); err != nil {
		t.Fatal(err)
	}
	if name != "Barbell Bench Press" {
		t.Errorf("exercise 1 = %q, want Barbell Bench Press", name)
	}
}

func TestReadOnlyConnectionRejectsWrites(t *testing.T) {
	t.Parallel()
	db := newTestDatabase(t)

	_, err := db.ReadOnly.ExecContext(context.Background(),
		"INSERT INTO exercises (name, muscle_group, workout_type, equipment, is_compound) VALUES ('x', 'chest', 'push', 'barbell', 1)")
	if err == nil {
		t.Error("read-only connection accepted a write")
	}
}
