package plan

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestPlanStoreRemoveSet(t *testing.T) {
	store := newPlanStore()
	p := twoGroupPlan()
	store.put(p, Profile{})

	// Interleave two exercises the way a superset would log them.
	logged := []ExerciseSet{
		{ID: uuid.New(), SessionID: p.SessionID, ExerciseID: 7, SetNumber: 1, Reps: 8, CompletedAt: time.Now()},
		{ID: uuid.New(), SessionID: p.SessionID, ExerciseID: 8, SetNumber: 1, Reps: 12, CompletedAt: time.Now()},
		{ID: uuid.New(), SessionID: p.SessionID, ExerciseID: 7, SetNumber: 2, Reps: 9, CompletedAt: time.Now()},
		{ID: uuid.New(), SessionID: p.SessionID, ExerciseID: 7, SetNumber: 3, Reps: 10, CompletedAt: time.Now()},
	}
	for _, set := range logged {
		if err := store.appendSet(p.SessionID, set); err != nil {
			t.Fatal(err)
		}
	}

	removed, err := store.removeSet(p.SessionID, 7, 2)
	if err != nil {
		t.Fatal(err)
	}
	if removed.ID != logged[2].ID {
		t.Errorf("removed set %s, want %s", removed.ID, logged[2].ID)
	}

	sets, err := store.setsFor(p.SessionID)
	if err != nil {
		t.Fatal(err)
	}
	var gotNumbers []int
	var gotReps []int
	for _, set := range sets {
		if set.ExerciseID != 7 {
			continue
		}
		gotNumbers = append(gotNumbers, set.SetNumber)
		gotReps = append(gotReps, set.Reps)
	}
	if len(gotNumbers) != 2 || gotNumbers[0] != 1 || gotNumbers[1] != 2 {
		t.Errorf("surviving set numbers = %v, want dense [1 2]", gotNumbers)
	}
	if gotReps[0] != 8 || gotReps[1] != 10 {
		t.Errorf("surviving reps = %v, want order-preserving [8 10]", gotReps)
	}
	if store.setCountFor(p.SessionID, 8) != 1 {
		t.Error("other exercise's sets were touched")
	}

	if _, err = store.removeSet(p.SessionID, 7, 3); !errors.Is(err, ErrNotFound) {
		t.Errorf("stale set number after renumbering: err = %v, want ErrNotFound", err)
	}
	if _, err = store.removeSet(uuid.New(), 7, 1); !errors.Is(err, ErrNotFound) {
		t.Errorf("unknown session: err = %v, want ErrNotFound", err)
	}
}
