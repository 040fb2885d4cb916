// Package knowledge is the read-only research store behind plan generation:
// per-exercise training attributes and per-muscle-group volume landmarks.
//
// The provider is constructed once at startup and handed to the components
// that need it. All lookups are pure and safe for concurrent use.
package knowledge

import (
	"slices"
	"sort"
	"strings"
)

// Goal is the user's current training goal.
type Goal string

// Training goal constants.
const (
	GoalBulk     Goal = "bulk"
	GoalCut      Goal = "cut"
	GoalMaintain Goal = "maintain"
)

// Experience is the user's training experience tier.
type Experience string

// Experience tier constants.
const (
	ExperienceBeginner     Experience = "beginner"
	ExperienceIntermediate Experience = "intermediate"
	ExperienceAdvanced     Experience = "advanced"
)

// SafetyLevel grades how forgiving an exercise is of technique breakdown.
type SafetyLevel string

// Safety level constants.
const (
	SafetyLow    SafetyLevel = "low"
	SafetyMedium SafetyLevel = "medium"
	SafetyHigh   SafetyLevel = "high"
)

// Rating is a 1-4 effectiveness category with a narrative description.
type Rating struct {
	Score       int
	Description string
}

// ExerciseDetail holds the research attributes for a single exercise.
// Identity is name + muscle group; lookups are name-based and
// case-insensitive.
type ExerciseDetail struct {
	Name            string
	MuscleGroup     string
	Equipment       string
	IsCompound      bool
	Hypertrophy     Rating
	Strength        Rating
	Power           Rating
	SafetyLevel     SafetyLevel
	EMGActivation   string
	InjuryRisk      string
	ProgressionPath string
}

// SetRange is a closed integer interval of weekly sets.
type SetRange struct {
	Lower int
	Upper int
}

// Midpoint returns the rounded-down middle of the range.
func (r SetRange) Midpoint() int {
	return (r.Lower + r.Upper) / 2
}

// VolumeLandmarks describes productive training volume for one muscle group
// at a given goal and experience tier.
type VolumeLandmarks struct {
	MuscleGroup             string
	ExerciseCount           int
	SetsPerWeek             SetRange
	SetsPerSession          string
	RepRange                string
	RestBetweenSets         string
	IntensityGuidance       string
	FrequencyRecommendation string
}

// Provider serves exercise research data and volume landmarks. It holds no
// mutable state after construction.
type Provider struct {
	exercises []ExerciseDetail
	landmarks map[string]landmarkBase
}

// NewProvider constructs a provider over the built-in research tables.
func NewProvider() *Provider {
	exercises := make([]ExerciseDetail, len(exerciseTable))
	for i, ex := range exerciseTable {
		exercises[i] = sanitizeDetail(ex)
	}
	return &Provider{
		exercises: exercises,
		landmarks: landmarkTable,
	}
}

// EffectivenessScore returns the goal-weighted effectiveness of an exercise.
// Higher is better; the weighting favors the rating that matters most for
// the goal while still crediting the others.
func EffectivenessScore(d ExerciseDetail, goal Goal) float64 {
	switch goal {
	case GoalBulk:
		return float64(3*d.Hypertrophy.Score+d.Strength.Score) / 4
	case GoalCut:
		return float64(2*d.Hypertrophy.Score+d.Strength.Score+d.Power.Score) / 4
	default:
		return float64(d.Hypertrophy.Score+d.Strength.Score+d.Power.Score) / 3
	}
}

// ExercisesRanked returns the exercises for a muscle group sorted descending
// by goal-weighted effectiveness. The sort is stable so equally-scored
// exercises keep their table order.
func (p *Provider) ExercisesRanked(muscleGroup string, goal Goal) []ExerciseDetail {
	group := NormalizeMuscleGroup(muscleGroup)

	var ranked []ExerciseDetail
	for _, ex := range p.exercises {
		if ex.MuscleGroup == group {
			ranked = append(ranked, ex)
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return EffectivenessScore(ranked[i], goal) > EffectivenessScore(ranked[j], goal)
	})

	return ranked
}

// FindExercise looks up an exercise by name using a case-insensitive
// substring match. Parenthetical qualifiers like "(barbell)" are ignored.
// Absent data returns false, never an error.
func (p *Provider) FindExercise(name string) (ExerciseDetail, bool) {
	needle := strings.ToLower(strings.TrimSpace(stripParenthetical(name)))
	if needle == "" {
		return ExerciseDetail{}, false
	}

	// Exact match wins over substring match.
	for _, ex := range p.exercises {
		if strings.EqualFold(ex.Name, needle) {
			return ex, true
		}
	}
	for _, ex := range p.exercises {
		haystack := strings.ToLower(ex.Name)
		if strings.Contains(haystack, needle) || strings.Contains(needle, haystack) {
			return ex, true
		}
	}
	return ExerciseDetail{}, false
}

// VolumeLandmarksFor returns the volume landmarks for a muscle group at the
// given goal and experience tier. The bool reports whether landmark data
// exists for the group; callers fall back to their own heuristics when it
// does not.
func (p *Provider) VolumeLandmarksFor(muscleGroup string, goal Goal, experience Experience) (VolumeLandmarks, bool) {
	group := NormalizeMuscleGroup(muscleGroup)
	base, ok := p.landmarks[group]
	if !ok {
		return VolumeLandmarks{}, false
	}
	return base.resolve(group, goal, experience), true
}

// MuscleGroups lists every muscle group with landmark data, sorted.
func (p *Provider) MuscleGroups() []string {
	groups := make([]string, 0, len(p.landmarks))
	for group := range p.landmarks {
		groups = append(groups, group)
	}
	slices.Sort(groups)
	return groups
}

// sanitizeDetail strips citation-marker artifacts from every narrative field
// so they never reach the UI.
func sanitizeDetail(d ExerciseDetail) ExerciseDetail {
	d.Hypertrophy.Description = StripCitations(d.Hypertrophy.Description)
	d.Strength.Description = StripCitations(d.Strength.Description)
	d.Power.Description = StripCitations(d.Power.Description)
	d.EMGActivation = StripCitations(d.EMGActivation)
	d.InjuryRisk = StripCitations(d.InjuryRisk)
	d.ProgressionPath = StripCitations(d.ProgressionPath)
	return d
}
