package plan

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/SiedahmedM/Saif-sub000/internal/knowledge"
	"golang.org/x/sync/errgroup"
)

// Calculator computes volume targets and recovery state from landmarks and
// training history.
type Calculator struct {
	kb  *knowledge.Provider
	cfg Config
}

// NewCalculator constructs a volume calculator.
func NewCalculator(kb *knowledge.Provider, cfg Config) *Calculator {
	return &Calculator{kb: kb, cfg: cfg}
}

// CalculateVolumeTargets computes today's and this week's set targets for
// each requested muscle group. Per-group computations are independent and run
// in parallel; results are merged in input order so the output is
// deterministic.
func (c *Calculator) CalculateVolumeTargets(
	ctx context.Context,
	muscleGroups []string,
	profile Profile,
	history []HistorySession,
	catalogByID map[int64]CatalogExercise,
	now time.Time,
) ([]MuscleVolumeTarget, error) {
	targets := make([]MuscleVolumeTarget, len(muscleGroups))

	g, ctx := errgroup.WithContext(ctx)
	for i, group := range muscleGroups {
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			targets[i] = c.volumeTargetFor(group, profile, history, catalogByID, now)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("calculate volume targets: %w", err)
	}
	return targets, nil
}

func (c *Calculator) volumeTargetFor(
	muscleGroup string,
	profile Profile,
	history []HistorySession,
	catalogByID map[int64]CatalogExercise,
	now time.Time,
) MuscleVolumeTarget {
	group := knowledge.NormalizeMuscleGroup(muscleGroup)

	weekly := c.cfg.FallbackWeeklySets
	reasoning := fmt.Sprintf("No landmark data for %s; using the default weekly target of %d sets", group, weekly)
	if landmarks, ok := c.kb.VolumeLandmarksFor(group, profile.Goal, profile.Experience); ok {
		weekly = landmarks.SetsPerWeek.Midpoint()
		reasoning = fmt.Sprintf("Weekly target of %d sets is the midpoint of the %d-%d productive range for %s",
			weekly, landmarks.SetsPerWeek.Lower, landmarks.SetsPerWeek.Upper, group)
	}

	completed := c.completedThisWeek(group, history, catalogByID, now)

	sessionsPerWeek := 1
	if profile.WorkoutFrequency >= 5 {
		sessionsPerWeek = 2
	}

	today := weekly - completed
	if limit := weekly/sessionsPerWeek + 2; today > limit {
		today = limit
	}
	if today < 0 {
		today = 0
	}

	return MuscleVolumeTarget{
		MuscleGroup:       group,
		TargetSetsToday:   today,
		WeeklyTarget:      weekly,
		CompletedThisWeek: completed,
		Reasoning:         reasoning,
	}
}

// completedThisWeek counts logged sets in the trailing 7 days whose exercise
// resolves to the muscle group.
func (c *Calculator) completedThisWeek(
	muscleGroup string,
	history []HistorySession,
	catalogByID map[int64]CatalogExercise,
	now time.Time,
) int {
	weekStart := now.AddDate(0, 0, -7)
	count := 0
	for _, h := range history {
		for _, set := range h.Sets {
			if set.CompletedAt.Before(weekStart) {
				continue
			}
			ex, ok := catalogByID[set.ExerciseID]
			if !ok {
				continue
			}
			if knowledge.NormalizeMuscleGroup(ex.MuscleGroup) == muscleGroup {
				count++
			}
		}
	}
	return count
}

// RecommendExerciseCount returns how many exercises to program for a muscle
// group, landmark-driven when data exists, heuristic otherwise. The second
// return is the reasoning for display.
func (c *Calculator) RecommendExerciseCount(muscleGroup string, profile Profile) (int, string) {
	group := knowledge.NormalizeMuscleGroup(muscleGroup)
	if landmarks, ok := c.kb.VolumeLandmarksFor(group, profile.Goal, profile.Experience); ok {
		return landmarks.ExerciseCount,
			fmt.Sprintf("%d exercises per the volume landmarks for %s", landmarks.ExerciseCount, group)
	}

	count := 3
	switch profile.Experience {
	case knowledge.ExperienceBeginner:
		count = 2
	case knowledge.ExperienceAdvanced:
		count = 4
	case knowledge.ExperienceIntermediate:
	}
	if profile.Goal == knowledge.GoalBulk {
		count++
	}
	if profile.WorkoutFrequency >= 5 {
		count--
	}
	if count < 1 {
		count = 1
	}
	if count > 5 {
		count = 5
	}
	return count, fmt.Sprintf("%d exercises from the %s/%s heuristic", count, profile.Experience, profile.Goal)
}

// IsDeloadWeek reports whether the most recent session covering the muscle
// group is marked as a deload, based on its notes. The first matching
// session decides; no match means false.
func (c *Calculator) IsDeloadWeek(muscleGroup string, history []HistorySession) bool {
	group := knowledge.NormalizeMuscleGroup(muscleGroup)
	for _, h := range mostRecentFirst(history) {
		if !sessionCoversGroup(h.Session.WorkoutType, group) {
			continue
		}
		notes := strings.ToLower(h.Session.Notes)
		return strings.Contains(notes, "deload") || strings.Contains(notes, "recovery week")
	}
	return false
}

// DaysSinceLastTrained returns whole days since the most recent session
// covering the muscle group, or false when the group has never been trained.
func (c *Calculator) DaysSinceLastTrained(muscleGroup string, history []HistorySession, now time.Time) (int, bool) {
	group := knowledge.NormalizeMuscleGroup(muscleGroup)
	for _, h := range mostRecentFirst(history) {
		if sessionCoversGroup(h.Session.WorkoutType, group) {
			return int(now.Sub(h.Session.StartedAt).Hours() / 24), true
		}
	}
	return 0, false
}

// sessionCoversGroup reports whether a workout type trains the muscle group.
func sessionCoversGroup(workoutType WorkoutType, group string) bool {
	for _, g := range workoutTypeMuscleGroups[workoutType] {
		if g == group {
			return true
		}
	}
	return false
}

// mostRecentFirst returns history sorted by start time descending without
// mutating the input.
func mostRecentFirst(history []HistorySession) []HistorySession {
	sorted := make([]HistorySession, len(history))
	copy(sorted, history)
	for i := 1; i < len(sorted); i++ {
		for j := i; j > 0 && sorted[j].Session.StartedAt.After(sorted[j-1].Session.StartedAt); j-- {
			sorted[j], sorted[j-1] = sorted[j-1], sorted[j]
		}
	}
	return sorted
}
