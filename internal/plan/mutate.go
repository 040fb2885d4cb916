package plan

import (
	"fmt"

	"github.com/google/uuid"
)

// Plan mutations are copy-on-write: each returns a new SessionPlan with a
// freshly built Exercises slice and leaves the input untouched. That keeps
// plans value-semantic and makes concurrent mutation a matter of swapping
// snapshots rather than locking fields.

// ReplaceExercise swaps the planned exercise with the given id for the
// replacement, keeping the original's position, muscle group, and order
// index. Returns ErrNotFound when the id is not in the plan.
func ReplaceExercise(p SessionPlan, plannedID uuid.UUID, replacement PlannedExercise) (SessionPlan, error) {
	idx := indexOf(p.Exercises, plannedID)
	if idx < 0 {
		return SessionPlan{}, fmt.Errorf("replace exercise %s: %w", plannedID, ErrNotFound)
	}

	exercises := cloneExercises(p.Exercises)
	replacement.MuscleGroup = exercises[idx].MuscleGroup
	replacement.OrderIndex = exercises[idx].OrderIndex
	exercises[idx] = replacement

	p.Exercises = exercises
	return p, nil
}

// MoveExercise moves the planned exercise to newIndex within its muscle
// group, clamping out-of-range indices, then renumbers that group's order
// indices densely from zero. Returns ErrNotFound when the id is not in the
// plan.
func MoveExercise(p SessionPlan, plannedID uuid.UUID, newIndex int) (SessionPlan, error) {
	idx := indexOf(p.Exercises, plannedID)
	if idx < 0 {
		return SessionPlan{}, fmt.Errorf("move exercise %s: %w", plannedID, ErrNotFound)
	}
	group := p.Exercises[idx].MuscleGroup

	// Work on the group's entries in slice order; other groups are
	// untouched.
	var groupPositions []int
	for i, ex := range p.Exercises {
		if ex.MuscleGroup == group {
			groupPositions = append(groupPositions, i)
		}
	}

	from := 0
	for gi, pos := range groupPositions {
		if pos == idx {
			from = gi
			break
		}
	}
	if newIndex < 0 {
		newIndex = 0
	}
	if newIndex >= len(groupPositions) {
		newIndex = len(groupPositions) - 1
	}

	exercises := cloneExercises(p.Exercises)

	// Reorder the group's entries, then write them back into the group's
	// slice positions and renumber.
	groupEntries := make([]PlannedExercise, 0, len(groupPositions))
	for _, pos := range groupPositions {
		groupEntries = append(groupEntries, exercises[pos])
	}
	moved := groupEntries[from]
	groupEntries = append(groupEntries[:from], groupEntries[from+1:]...)
	groupEntries = append(groupEntries[:newIndex], append([]PlannedExercise{moved}, groupEntries[newIndex:]...)...)
	for gi, pos := range groupPositions {
		groupEntries[gi].OrderIndex = gi
		exercises[pos] = groupEntries[gi]
	}

	p.Exercises = exercises
	return p, nil
}

// MarkExerciseComplete marks the planned exercise complete and syncs its
// actual set count from the logged-set tally. Returns ErrNotFound when the
// id is not in the plan.
func MarkExerciseComplete(p SessionPlan, plannedID uuid.UUID, actualSets int) (SessionPlan, error) {
	idx := indexOf(p.Exercises, plannedID)
	if idx < 0 {
		return SessionPlan{}, fmt.Errorf("mark exercise complete %s: %w", plannedID, ErrNotFound)
	}

	exercises := cloneExercises(p.Exercises)
	exercises[idx].IsCompleted = true
	exercises[idx].ActualSets = actualSets

	p.Exercises = exercises
	return p, nil
}

func indexOf(exercises []PlannedExercise, plannedID uuid.UUID) int {
	for i, ex := range exercises {
		if ex.ID == plannedID {
			return i
		}
	}
	return -1
}

func cloneExercises(exercises []PlannedExercise) []PlannedExercise {
	cloned := make([]PlannedExercise, len(exercises))
	copy(cloned, exercises)
	return cloned
}
