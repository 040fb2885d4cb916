package plan

import (
	"fmt"
	"time"

	"github.com/SiedahmedM/Saif-sub000/internal/knowledge"
)

// WeightPR is a new best weight for one exercise. Strict greater-than: ties
// with history do not count.
type WeightPR struct {
	ExerciseName   string
	Weight         float64
	PreviousWeight float64
}

// VolumePR is a new best single-session rep volume for one muscle group
// against the trailing comparison window.
type VolumePR struct {
	MuscleGroup    string
	Volume         float64
	PreviousVolume float64
}

// WorkoutSummaryData reconciles the plan against what actually happened.
type WorkoutSummaryData struct {
	SessionID        string
	WorkoutType      WorkoutType
	Duration         time.Duration
	PlannedExercises int
	CompletedCount   int
	PlannedSets      int
	ActualSets       int
	Overachievement  float64
	TotalVolume      float64
	WeightPRs        []WeightPR
	VolumePRs        []VolumePR
	Insights         []string
	CoachNote        string
}

// summarizer aggregates completed-set records against the final plan
// snapshot.
type summarizer struct {
	cfg Config
}

// Summarize builds the post-session summary from the final plan snapshot,
// the session's logged sets, and recent history.
func (s summarizer) Summarize(
	finalPlan SessionPlan,
	session Session,
	sets []ExerciseSet,
	history []HistorySession,
	catalogByID map[int64]CatalogExercise,
	now time.Time,
) WorkoutSummaryData {
	summary := WorkoutSummaryData{
		SessionID:        finalPlan.SessionID.String(),
		WorkoutType:      finalPlan.WorkoutType,
		PlannedExercises: len(finalPlan.Exercises),
	}

	if session.CompletedAt != nil {
		summary.Duration = session.CompletedAt.Sub(session.StartedAt)
	} else {
		summary.Duration = now.Sub(session.StartedAt)
	}

	for _, ex := range finalPlan.Exercises {
		summary.PlannedSets += ex.TargetSets
		if ex.IsCompleted {
			summary.CompletedCount++
		}
	}
	summary.ActualSets = len(sets)

	planned := summary.PlannedSets
	if planned < 1 {
		planned = 1
	}
	summary.Overachievement = float64(summary.ActualSets-summary.PlannedSets) / float64(planned)

	for _, set := range sets {
		summary.TotalVolume += float64(set.Reps) * set.Weight
	}

	summary.WeightPRs = s.detectWeightPRs(sets, history, catalogByID)
	summary.VolumePRs = s.detectVolumePRs(sets, history, catalogByID, now)
	summary.Insights = s.insights(finalPlan, summary)

	return summary
}

// detectWeightPRs compares today's best weight per exercise against all
// historical sets for that exercise.
func (s summarizer) detectWeightPRs(
	sets []ExerciseSet,
	history []HistorySession,
	catalogByID map[int64]CatalogExercise,
) []WeightPR {
	bestToday := make(map[int64]float64)
	var order []int64
	for _, set := range sets {
		if _, seen := bestToday[set.ExerciseID]; !seen {
			order = append(order, set.ExerciseID)
		}
		if set.Weight > bestToday[set.ExerciseID] {
			bestToday[set.ExerciseID] = set.Weight
		}
	}

	bestEver := make(map[int64]float64)
	for _, h := range history {
		for _, set := range h.Sets {
			if set.Weight > bestEver[set.ExerciseID] {
				bestEver[set.ExerciseID] = set.Weight
			}
		}
	}

	var prs []WeightPR
	for _, exerciseID := range order {
		today := bestToday[exerciseID]
		previous := bestEver[exerciseID]
		if today > previous && previous > 0 {
			name := fmt.Sprintf("exercise %d", exerciseID)
			if ex, ok := catalogByID[exerciseID]; ok {
				name = ex.Name
			}
			prs = append(prs, WeightPR{ExerciseName: name, Weight: today, PreviousWeight: previous})
		}
	}
	return prs
}

// detectVolumePRs compares today's per-muscle-group rep volume against the
// best single-session volume in the trailing comparison window.
func (s summarizer) detectVolumePRs(
	sets []ExerciseSet,
	history []HistorySession,
	catalogByID map[int64]CatalogExercise,
	now time.Time,
) []VolumePR {
	groupOf := func(exerciseID int64) (string, bool) {
		ex, ok := catalogByID[exerciseID]
		if !ok {
			return "", false
		}
		return knowledge.NormalizeMuscleGroup(ex.MuscleGroup), true
	}

	todayVolume := make(map[string]float64)
	var order []string
	for _, set := range sets {
		group, ok := groupOf(set.ExerciseID)
		if !ok {
			continue
		}
		if _, seen := todayVolume[group]; !seen {
			order = append(order, group)
		}
		todayVolume[group] += float64(set.Reps) * set.Weight
	}

	windowStart := now.AddDate(0, 0, -s.cfg.VolumePRWindowDays)
	bestSession := make(map[string]float64)
	for _, h := range history {
		if h.Session.StartedAt.Before(windowStart) {
			continue
		}
		sessionVolume := make(map[string]float64)
		for _, set := range h.Sets {
			group, ok := groupOf(set.ExerciseID)
			if !ok {
				continue
			}
			sessionVolume[group] += float64(set.Reps) * set.Weight
		}
		for group, volume := range sessionVolume {
			if volume > bestSession[group] {
				bestSession[group] = volume
			}
		}
	}

	var prs []VolumePR
	for _, group := range order {
		today := todayVolume[group]
		previous := bestSession[group]
		if today > previous && previous > 0 {
			prs = append(prs, VolumePR{MuscleGroup: group, Volume: today, PreviousVolume: previous})
		}
	}
	return prs
}

// insights emits every applicable narrative template. Templates trigger
// independently; there is no precedence between them.
func (s summarizer) insights(finalPlan SessionPlan, summary WorkoutSummaryData) []string {
	var insights []string

	if summary.PlannedExercises > 0 && summary.CompletedCount == summary.PlannedExercises {
		insights = append(insights, "You completed every planned exercise. Consistency like this is what drives progress.")
	}
	if summary.Overachievement >= 0.2 {
		insights = append(insights, fmt.Sprintf(
			"You went %d%% beyond the planned set count. Watch recovery over the next two days.",
			int(summary.Overachievement*100)))
	}
	if summary.Overachievement <= -0.3 && summary.ActualSets > 0 {
		insights = append(insights, "The session came in well under plan. Shorter sessions still count; pick up the remaining volume later this week.")
	}
	for _, pr := range summary.WeightPRs {
		insights = append(insights, fmt.Sprintf(
			"New best on %s: %.1f lbs, up from %.1f.", pr.ExerciseName, pr.Weight, pr.PreviousWeight))
	}
	for _, pr := range summary.VolumePRs {
		insights = append(insights, fmt.Sprintf(
			"Biggest %s session in the last %d days by rep volume.", pr.MuscleGroup, s.cfg.VolumePRWindowDays))
	}
	if est := time.Duration(finalPlan.EstimatedDurationMinutes) * time.Minute; est > 0 && summary.Duration > 0 &&
		summary.Duration < est/2 {
		insights = append(insights, "That was a quick one. If rest periods got cut short, expect it to show in later sets.")
	}

	return insights
}
