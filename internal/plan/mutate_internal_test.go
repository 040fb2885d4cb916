package plan

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
)

// twoGroupPlan builds a plan with three chest and two triceps exercises,
// order indices running globally 0..4.
func twoGroupPlan() SessionPlan {
	exercises := []PlannedExercise{
		{ID: uuid.New(), ExerciseName: "Barbell Bench Press", MuscleGroup: "chest", OrderIndex: 0, IsCompound: true, TargetSets: 4, TargetRepsMin: 6, TargetRepsMax: 10, RestSeconds: 180},
		{ID: uuid.New(), ExerciseName: "Incline Dumbbell Press", MuscleGroup: "chest", OrderIndex: 1, IsCompound: true, TargetSets: 3, TargetRepsMin: 6, TargetRepsMax: 10, RestSeconds: 180},
		{ID: uuid.New(), ExerciseName: "Cable Crossover", MuscleGroup: "chest", OrderIndex: 2, TargetSets: 3, TargetRepsMin: 10, TargetRepsMax: 15, RestSeconds: 90},
		{ID: uuid.New(), ExerciseName: "Close-Grip Bench Press", MuscleGroup: "triceps", OrderIndex: 3, IsCompound: true, TargetSets: 4, TargetRepsMin: 6, TargetRepsMax: 10, RestSeconds: 180},
		{ID: uuid.New(), ExerciseName: "Triceps Pushdown", MuscleGroup: "triceps", OrderIndex: 4, TargetSets: 2, TargetRepsMin: 10, TargetRepsMax: 15, RestSeconds: 90},
	}
	return SessionPlan{
		ID:          uuid.New(),
		SessionID:   uuid.New(),
		UserID:      "u1",
		WorkoutType: WorkoutPush,
		Exercises:   exercises,
	}
}

func groupNames(p SessionPlan, group string) []string {
	var names []string
	for _, ex := range p.Exercises {
		if ex.MuscleGroup == group {
			names = append(names, ex.ExerciseName)
		}
	}
	return names
}

func TestMoveExercise(t *testing.T) {
	p := twoGroupPlan()
	crossover := p.Exercises[2]

	moved, err := MoveExercise(p, crossover.ID, 0)
	if err != nil {
		t.Fatal(err)
	}

	want := []string{"Cable Crossover", "Barbell Bench Press", "Incline Dumbbell Press"}
	if diff := cmp.Diff(want, groupNames(moved, "chest")); diff != "" {
		t.Errorf("chest order mismatch (-want +got):\n%s", diff)
	}

	// Dense zero-based order indices within the group after the move.
	idx := 0
	for _, ex := range moved.Exercises {
		if ex.MuscleGroup != "chest" {
			continue
		}
		if ex.OrderIndex != idx {
			t.Errorf("%s: order index = %d, want %d", ex.ExerciseName, ex.OrderIndex, idx)
		}
		idx++
	}

	// The other group is untouched.
	if diff := cmp.Diff(groupNames(p, "triceps"), groupNames(moved, "triceps")); diff != "" {
		t.Errorf("triceps group changed (-want +got):\n%s", diff)
	}

	// Copy-on-write: the input plan keeps its original order.
	if p.Exercises[2].ExerciseName != "Cable Crossover" || p.Exercises[2].OrderIndex != 2 {
		t.Error("input plan mutated in place")
	}
}

func TestMoveExerciseClampsIndex(t *testing.T) {
	p := twoGroupPlan()
	bench := p.Exercises[0]

	moved, err := MoveExercise(p, bench.ID, 99)
	if err != nil {
		t.Fatal(err)
	}
	chest := groupNames(moved, "chest")
	if chest[len(chest)-1] != "Barbell Bench Press" {
		t.Errorf("out-of-range index should clamp to the end of the group, got %v", chest)
	}
}

func TestMoveExerciseNotFound(t *testing.T) {
	p := twoGroupPlan()
	if _, err := MoveExercise(p, uuid.New(), 0); !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestReplaceExercise(t *testing.T) {
	p := twoGroupPlan()
	original := p.Exercises[1]

	replacement := PlannedExercise{
		ID:            uuid.New(),
		ExerciseName:  "Push-Up",
		TargetSets:    3,
		TargetRepsMin: 10,
		TargetRepsMax: 15,
		RestSeconds:   90,
	}
	replaced, err := ReplaceExercise(p, original.ID, replacement)
	if err != nil {
		t.Fatal(err)
	}

	got := replaced.Exercises[1]
	if got.ExerciseName != "Push-Up" {
		t.Errorf("exercise name = %s, want Push-Up", got.ExerciseName)
	}
	if got.MuscleGroup != original.MuscleGroup || got.OrderIndex != original.OrderIndex {
		t.Errorf("replacement must keep the slot: group %s index %d, want %s %d",
			got.MuscleGroup, got.OrderIndex, original.MuscleGroup, original.OrderIndex)
	}
	if p.Exercises[1].ExerciseName != "Incline Dumbbell Press" {
		t.Error("input plan mutated in place")
	}

	if _, err = ReplaceExercise(p, uuid.New(), replacement); !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestMarkExerciseComplete(t *testing.T) {
	p := twoGroupPlan()
	target := p.Exercises[3]

	marked, err := MarkExerciseComplete(p, target.ID, 4)
	if err != nil {
		t.Fatal(err)
	}
	got := marked.Exercises[3]
	if !got.IsCompleted || got.ActualSets != 4 {
		t.Errorf("got completed=%v actualSets=%d, want true/4", got.IsCompleted, got.ActualSets)
	}
	for i, ex := range marked.Exercises {
		if i == 3 {
			continue
		}
		if ex.IsCompleted {
			t.Errorf("%s marked complete unexpectedly", ex.ExerciseName)
		}
	}
	if p.Exercises[3].IsCompleted {
		t.Error("input plan mutated in place")
	}

	if _, err = MarkExerciseComplete(p, uuid.New(), 1); !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}
