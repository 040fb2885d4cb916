package plan

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/SiedahmedM/Saif-sub000/internal/sqlite"
	"github.com/SiedahmedM/Saif-sub000/internal/testhelpers"
	"github.com/google/uuid"
)

func newTestRepository(t *testing.T) *repository {
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
	return newRepository(db, logger)
}

func createTestSession(t *testing.T, repo *repository, userID string, startedAt time.Time) uuid.UUID {
	t.Helper()
	sessionID := uuid.New()
	err := repo.sessions.Create(context.Background(), Session{
		ID:          sessionID,
		UserID:      userID,
		WorkoutType: WorkoutPush,
		StartedAt:   startedAt,
	})
	if err != nil {
		t.Fatal(err)
	}
	return sessionID
}

func TestSetRepositoryDeleteRenumbers(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := newTestRepository(t)
	now := time.Now().UTC()
	sessionID := createTestSession(t, repo, "user-1", now)

	var ids []uuid.UUID
	for i, reps := range []int{8, 9, 10} {
		set := ExerciseSet{
			ID:          uuid.New(),
			SessionID:   sessionID,
			ExerciseID:  1,
			SetNumber:   i + 1,
			Reps:        reps,
			Weight:      185,
			CompletedAt: now.Add(time.Duration(i) * time.Minute),
		}
		if err := repo.sets.Create(ctx, set); err != nil {
			t.Fatal(err)
		}
		ids = append(ids, set.ID)
	}

	if err := repo.sets.Delete(ctx, ids[1]); err != nil {
		t.Fatal(err)
	}

	sets, err := repo.sets.ListBySession(ctx, sessionID)
	if err != nil {
		t.Fatal(err)
	}
	if len(sets) != 2 {
		t.Fatalf("got %d sets after delete, want 2", len(sets))
	}
	for i, set := range sets {
		if set.SetNumber != i+1 {
			t.Errorf("set %d: number = %d, want dense ascending from 1", i, set.SetNumber)
		}
	}
	// The third set slides into the deleted slot with its data intact.
	if sets[0].Reps != 8 || sets[1].Reps != 10 {
		t.Errorf("surviving reps = [%d %d], want [8 10]", sets[0].Reps, sets[1].Reps)
	}

	if err = repo.sets.Delete(ctx, uuid.New()); !errors.Is(err, ErrNotFound) {
		t.Errorf("deleting an unknown set: err = %v, want ErrNotFound", err)
	}
}

func TestSetRepositoryListSinceWindow(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := newTestRepository(t)
	now := time.Now().UTC()

	recentSession := createTestSession(t, repo, "user-2", now.AddDate(0, 0, -2))
	oldSession := createTestSession(t, repo, "user-2", now.AddDate(0, 0, -40))
	otherUserSession := createTestSession(t, repo, "user-3", now.AddDate(0, 0, -1))

	create := func(sessionID uuid.UUID, completedAt time.Time) {
		t.Helper()
		err := repo.sets.Create(ctx, ExerciseSet{
			ID: uuid.New(), SessionID: sessionID, ExerciseID: 1,
			SetNumber: 1, Reps: 8, Weight: 135, CompletedAt: completedAt,
		})
		if err != nil {
			t.Fatal(err)
		}
	}
	create(recentSession, now.AddDate(0, 0, -2))
	create(oldSession, now.AddDate(0, 0, -40))
	create(otherUserSession, now.AddDate(0, 0, -1))

	sets, err := repo.sets.ListSince(ctx, "user-2", now.AddDate(0, 0, -30))
	if err != nil {
		t.Fatal(err)
	}
	if len(sets) != 1 {
		t.Fatalf("got %d sets, want only the user's set inside the window", len(sets))
	}
	if sets[0].SessionID != recentSession {
		t.Errorf("set belongs to session %s, want %s", sets[0].SessionID, recentSession)
	}
}
