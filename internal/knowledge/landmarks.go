package knowledge

import "fmt"

// landmarkBase is the intermediate-tier baseline for one muscle group. The
// published MEV/MAV ranges assume an intermediate lifter; resolve derives
// the beginner and advanced variants from it.
type landmarkBase struct {
	exerciseCount int
	setsPerWeek   SetRange
	frequency     string
}

// landmarkTable holds weekly volume landmarks keyed by canonical muscle
// group. Lower bound tracks the minimum effective volume, upper bound the
// maximum adaptive volume.
var landmarkTable = map[string]landmarkBase{
	GroupChest:      {exerciseCount: 3, setsPerWeek: SetRange{Lower: 10, Upper: 22}, frequency: "2x per week"},
	GroupBack:       {exerciseCount: 4, setsPerWeek: SetRange{Lower: 10, Upper: 25}, frequency: "2-3x per week"},
	GroupShoulders:  {exerciseCount: 3, setsPerWeek: SetRange{Lower: 8, Upper: 26}, frequency: "2-3x per week"},
	GroupQuads:      {exerciseCount: 3, setsPerWeek: SetRange{Lower: 8, Upper: 20}, frequency: "2x per week"},
	GroupHamstrings: {exerciseCount: 2, setsPerWeek: SetRange{Lower: 6, Upper: 20}, frequency: "2x per week"},
	GroupGlutes:     {exerciseCount: 2, setsPerWeek: SetRange{Lower: 6, Upper: 16}, frequency: "2x per week"},
	GroupBiceps:     {exerciseCount: 2, setsPerWeek: SetRange{Lower: 8, Upper: 20}, frequency: "2-3x per week"},
	GroupTriceps:    {exerciseCount: 2, setsPerWeek: SetRange{Lower: 8, Upper: 18}, frequency: "2-3x per week"},
	GroupCalves:     {exerciseCount: 2, setsPerWeek: SetRange{Lower: 8, Upper: 16}, frequency: "3x per week"},
	GroupCore:       {exerciseCount: 2, setsPerWeek: SetRange{Lower: 8, Upper: 20}, frequency: "3x per week"},
}

// resolve derives goal- and tier-specific landmarks from the baseline.
// Invariant: the returned range always satisfies 0 <= Lower <= Upper.
func (b landmarkBase) resolve(group string, goal Goal, experience Experience) VolumeLandmarks {
	weekly := b.setsPerWeek
	count := b.exerciseCount

	switch experience {
	case ExperienceBeginner:
		// Beginners grow on the lower half of the productive range.
		weekly = SetRange{Lower: weekly.Lower, Upper: weekly.Midpoint()}
		if count > 1 {
			count--
		}
	case ExperienceAdvanced:
		// Advanced lifters need the upper half to keep adapting.
		weekly = SetRange{Lower: weekly.Midpoint(), Upper: weekly.Upper}
		count++
	case ExperienceIntermediate:
	}
	if weekly.Lower > weekly.Upper {
		weekly.Lower = weekly.Upper
	}

	return VolumeLandmarks{
		MuscleGroup:             group,
		ExerciseCount:           count,
		SetsPerWeek:             weekly,
		SetsPerSession:          fmt.Sprintf("%d-%d sets", maxInt(weekly.Lower/2, 2), maxInt(weekly.Upper/2, 3)),
		RepRange:                repRangeText(goal),
		RestBetweenSets:         "2-3 min on compounds, 60-90 s on isolation work",
		IntensityGuidance:       intensityText(goal),
		FrequencyRecommendation: b.frequency,
	}
}

func repRangeText(goal Goal) string {
	switch goal {
	case GoalBulk:
		return "6-10 on compounds, 10-15 on isolation"
	case GoalCut:
		return "8-12 on compounds, 12-20 on isolation"
	default:
		return "6-12 on compounds, 10-15 on isolation"
	}
}

func intensityText(goal Goal) string {
	switch goal {
	case GoalBulk:
		return "Leave 1-2 reps in reserve on most working sets"
	case GoalCut:
		return "Keep loads heavy to defend strength while in a deficit"
	default:
		return "Stay 2-3 reps shy of failure and prioritize consistency"
	}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
