package plan

import (
	"fmt"
	"math"
	"strings"

	"github.com/SiedahmedM/Saif-sub000/internal/knowledge"
)

// RecommendationKind labels the live coaching suggestion for a logged set.
type RecommendationKind string

// Recommendation kinds.
const (
	RecommendIncreaseWeight RecommendationKind = "increase_weight"
	RecommendDecreaseWeight RecommendationKind = "decrease_weight"
	RecommendExtendRest     RecommendationKind = "extend_rest"
	RecommendKeepGoing      RecommendationKind = "keep_going"
	RecommendProgress       RecommendationKind = "progress"
	RecommendRestReminder   RecommendationKind = "rest_reminder"
)

// Recommendation is the live suggestion produced after a logged set.
// WeightDelta is nonzero only for weight-change kinds; Actionable reports
// whether the user should change something before the next set.
type Recommendation struct {
	Kind        RecommendationKind
	Message     string
	WeightDelta float64
	Actionable  bool
}

// AnalyzeSetPerformance evaluates one logged set against its target and
// returns a recommendation, or nil when no rule applies. Rules are evaluated
// in a fixed priority order; the first match wins.
func AnalyzeSetPerformance(
	profile Profile,
	exercise PlannedExercise,
	equipment string,
	setNumber int,
	weight float64,
	reps int,
	rpe *float64,
) *Recommendation {
	step := equipmentStep(equipment)

	// Rule 1: bulk with a big rep overshoot means the load is far too light.
	if profile.Goal == knowledge.GoalBulk && reps > 15 {
		surplus := reps - 15
		pct := 0.10
		switch {
		case surplus >= 8 && profile.Experience == knowledge.ExperienceAdvanced:
			pct = 0.25
		case surplus >= 8:
			pct = 0.20
		case surplus >= 4:
			pct = 0.15
		}
		delta := roundToStep(weight*pct, step)
		return &Recommendation{
			Kind:        RecommendIncreaseWeight,
			Message:     fmt.Sprintf("%d reps is well past the growth range; add %.0f lbs next set", reps, delta),
			WeightDelta: delta,
			Actionable:  true,
		}
	}

	// Rule 2: bulk isolation work ground to a halt below 6 reps.
	if profile.Goal == knowledge.GoalBulk && reps < 6 && !exercise.IsCompound {
		deficit := 6 - reps
		pct := 0.10
		if deficit >= 4 {
			pct = 0.15
		}
		delta := roundToStep(weight*pct, step)
		return &Recommendation{
			Kind:        RecommendDecreaseWeight,
			Message:     fmt.Sprintf("Only %d reps on an isolation lift; drop %.0f lbs to stay in range", reps, delta),
			WeightDelta: -delta,
			Actionable:  true,
		}
	}

	// Rule 3: near-maximal effort this early needs more recovery, not less
	// weight.
	if rpe != nil && *rpe >= 9 && setNumber <= 2 {
		return &Recommendation{
			Kind:       RecommendExtendRest,
			Message:    "That was near-maximal effort early in the exercise; take an extra minute before the next set",
			Actionable: true,
		}
	}

	// Rule 4: in range at a manageable effort.
	if reps >= exercise.TargetRepsMin && reps <= exercise.TargetRepsMax && (rpe == nil || *rpe <= 8) {
		return &Recommendation{
			Kind:       RecommendKeepGoing,
			Message:    fmt.Sprintf("%d reps at this effort is right on target; keep it up", reps),
			Actionable: false,
		}
	}

	// Rule 5: over the range while staying comfortable means progress.
	if reps > exercise.TargetRepsMax && (rpe == nil || *rpe <= 7) {
		surplus := reps - exercise.TargetRepsMax
		pct := 0.07
		if exercise.IsCompound {
			pct = 0.10
		}
		if surplus >= 4 {
			pct += 0.05
		}
		delta := roundToStep(weight*pct, step)
		return &Recommendation{
			Kind:        RecommendProgress,
			Message:     fmt.Sprintf("Beat the target with room to spare; progress by %.0f lbs", delta),
			WeightDelta: delta,
			Actionable:  true,
		}
	}

	// Rule 6: compounds accumulate fatigue fast; nudge full rest early on.
	if exercise.IsCompound && setNumber < 4 {
		return &Recommendation{
			Kind:       RecommendRestReminder,
			Message:    "Take the full rest period; compound sets need complete recovery",
			Actionable: false,
		}
	}

	return nil
}

// equipmentStep returns the smallest practical weight increment in lbs for
// the equipment: machine stacks move in 10s, everything else in 5s.
func equipmentStep(equipment string) float64 {
	if strings.Contains(strings.ToLower(equipment), "machine") {
		return 10
	}
	return 5
}

// roundToStep rounds raw to the nearest multiple of step, with a one-step
// minimum.
func roundToStep(raw, step float64) float64 {
	rounded := math.Round(raw/step) * step
	if rounded < step {
		return step
	}
	return rounded
}
