package plan

import (
	"fmt"
	"strings"

	"github.com/SiedahmedM/Saif-sub000/internal/injury"
	"github.com/SiedahmedM/Saif-sub000/internal/knowledge"
)

// SubstituteSuggestion is the outcome of smart substitution: a replacement
// exercise plus the reasoning behind the pick.
type SubstituteSuggestion struct {
	Detail    knowledge.ExerciseDetail
	Rationale string
}

// SmartSubstitute finds the best replacement for a planned exercise: same
// muscle group, same compound/isolation pattern, not already in the plan for
// that group, not recently used, and ranked by goal effectiveness with
// bonuses for equipment and angle variety. Returns ErrNoSubstitute when
// nothing qualifies. The scoring is deterministic, so unchanged inputs give
// the same answer.
func (g *Generator) SmartSubstitute(
	target PlannedExercise,
	current SessionPlan,
	profile Profile,
	recentlyUsed map[string]struct{},
) (SubstituteSuggestion, error) {
	injuries := injury.ParseInjuries(profile.Injuries)

	inPlan := make(map[string]struct{})
	for _, ex := range current.Exercises {
		if ex.MuscleGroup == target.MuscleGroup {
			inPlan[strings.ToLower(ex.ExerciseName)] = struct{}{}
		}
	}

	var (
		best      knowledge.ExerciseDetail
		bestScore = -1.0
		found     bool
	)
	for _, candidate := range g.kb.ExercisesRanked(target.MuscleGroup, profile.Goal) {
		if candidate.IsCompound != target.IsCompound {
			continue
		}
		lower := strings.ToLower(candidate.Name)
		if _, ok := inPlan[lower]; ok {
			continue
		}
		if _, ok := recentlyUsed[lower]; ok {
			continue
		}
		if injury.Assess(candidate.Name, injuries).Status == injury.StatusAvoid {
			continue
		}

		score := knowledge.EffectivenessScore(candidate, profile.Goal)
		if equipmentShift(target, candidate) {
			score++
		}
		if angleShift(target.ExerciseName, candidate.Name) {
			score++
		}
		if score > bestScore {
			best = candidate
			bestScore = score
			found = true
		}
	}
	if !found {
		return SubstituteSuggestion{}, ErrNoSubstitute
	}

	return SubstituteSuggestion{
		Detail: best,
		Rationale: fmt.Sprintf("%s works the same pattern for %s with fresh equipment and angle variety",
			best.Name, target.MuscleGroup),
	}, nil
}

// equipmentShift reports whether swapping to the candidate changes the
// loading profile in a useful way: barbell to dumbbell, dumbbell to cable,
// or crossing the machine/free-weight boundary in either direction.
func equipmentShift(target PlannedExercise, candidate knowledge.ExerciseDetail) bool {
	from := equipmentCategory(target.ExerciseName)
	to := strings.ToLower(candidate.Equipment)
	switch {
	case from == "barbell" && to == "dumbbell":
		return true
	case from == "dumbbell" && to == "cable":
		return true
	case (from == "machine") != (to == "machine"):
		return true
	}
	return false
}

// equipmentCategory infers the equipment category from an exercise name.
// Planned exercises keep only the name, so the category is reconstructed
// from it.
func equipmentCategory(name string) string {
	lower := strings.ToLower(name)
	switch {
	case strings.Contains(lower, "barbell"):
		return "barbell"
	case strings.Contains(lower, "dumbbell"):
		return "dumbbell"
	case strings.Contains(lower, "cable"):
		return "cable"
	case strings.Contains(lower, "machine"), strings.Contains(lower, "leg press"):
		return "machine"
	default:
		return "other"
	}
}

// angleShift reports a flat-to-incline (or reverse) change between the two
// exercise names.
func angleShift(fromName, toName string) bool {
	fromIncline := strings.Contains(strings.ToLower(fromName), "incline")
	toIncline := strings.Contains(strings.ToLower(toName), "incline")
	return fromIncline != toIncline
}
