package plan

import (
	"context"
	"testing"
	"time"

	"github.com/SiedahmedM/Saif-sub000/internal/knowledge"
	"github.com/google/uuid"
)

func newTestCalculator() *Calculator {
	return NewCalculator(knowledge.NewProvider(), DefaultConfig())
}

// historyWithSets builds a completed session with n sets of the given
// exercise, started at the given time.
func historyWithSets(workoutType WorkoutType, startedAt time.Time, exerciseID int64, n int) HistorySession {
	sessionID := uuid.New()
	completedAt := startedAt.Add(time.Hour)
	h := HistorySession{
		Session: Session{
			ID:          sessionID,
			UserID:      "u1",
			WorkoutType: workoutType,
			StartedAt:   startedAt,
			CompletedAt: &completedAt,
		},
	}
	for i := 1; i <= n; i++ {
		h.Sets = append(h.Sets, ExerciseSet{
			ID:          uuid.New(),
			SessionID:   sessionID,
			ExerciseID:  exerciseID,
			SetNumber:   i,
			Reps:        10,
			Weight:      100,
			CompletedAt: startedAt.Add(time.Duration(i) * time.Minute),
		})
	}
	return h
}

func TestCalculateVolumeTargetsFallbackScenario(t *testing.T) {
	// "forearms" has no landmark data, so the weekly target falls back to
	// 16. Two sessions this week logged 6 and 5 sets; with frequency 3 the
	// whole week maps to a single session's worth of budget.
	calc := newTestCalculator()
	now := time.Date(2026, 8, 28, 18, 0, 0, 0, time.UTC)

	catalogByID := map[int64]CatalogExercise{
		99: {ID: 99, Name: "Wrist Roller", MuscleGroup: "forearms", WorkoutType: WorkoutPull, Equipment: "cable"},
	}
	history := []HistorySession{
		historyWithSets(WorkoutPull, now.AddDate(0, 0, -2), 99, 6),
		historyWithSets(WorkoutPull, now.AddDate(0, 0, -4), 99, 5),
	}
	profile := Profile{Goal: knowledge.GoalBulk, Experience: knowledge.ExperienceIntermediate, WorkoutFrequency: 3}

	targets, err := calc.CalculateVolumeTargets(context.Background(), []string{"forearms"}, profile, history, catalogByID, now)
	if err != nil {
		t.Fatal(err)
	}
	if len(targets) != 1 {
		t.Fatalf("got %d targets, want 1", len(targets))
	}

	target := targets[0]
	if target.WeeklyTarget != 16 {
		t.Errorf("weekly target = %d, want the 16-set fallback", target.WeeklyTarget)
	}
	if target.CompletedThisWeek != 11 {
		t.Errorf("completed this week = %d, want 11", target.CompletedThisWeek)
	}
	if target.TargetSetsToday != 5 {
		t.Errorf("target sets today = %d, want min(16-11, 16+2) = 5", target.TargetSetsToday)
	}
}

func TestCalculateVolumeTargetsBounds(t *testing.T) {
	calc := newTestCalculator()
	now := time.Now()
	groups := []string{"chest", "back", "shoulders", "quads", "hamstrings", "glutes", "biceps", "triceps", "calves", "core"}

	for _, freq := range []int{2, 3, 5, 6} {
		profile := Profile{Goal: knowledge.GoalCut, Experience: knowledge.ExperienceAdvanced, WorkoutFrequency: freq}
		targets, err := calc.CalculateVolumeTargets(context.Background(), groups, profile, nil, nil, now)
		if err != nil {
			t.Fatal(err)
		}
		if len(targets) != len(groups) {
			t.Fatalf("got %d targets, want %d", len(targets), len(groups))
		}
		for i, target := range targets {
			// Output order must match input order regardless of which
			// goroutine finished first.
			if target.MuscleGroup != groups[i] {
				t.Errorf("freq %d: target[%d] = %s, want %s", freq, i, target.MuscleGroup, groups[i])
			}
			sessionsPerWeek := 1
			if freq >= 5 {
				sessionsPerWeek = 2
			}
			limit := target.WeeklyTarget/sessionsPerWeek + 2
			if target.TargetSetsToday < 0 || target.TargetSetsToday > limit {
				t.Errorf("freq %d %s: today = %d outside [0, %d]", freq, target.MuscleGroup, target.TargetSetsToday, limit)
			}
		}
	}
}

func TestCalculateVolumeTargetsFloorsAtZero(t *testing.T) {
	calc := newTestCalculator()
	now := time.Now()

	// Glutes intermediate midpoint is 11 weekly sets; logging 40 this week
	// must floor today's target at zero, not go negative.
	catalogByID := map[int64]CatalogExercise{
		22: {ID: 22, Name: "Hip Thrust", MuscleGroup: "glutes", WorkoutType: WorkoutLegs, Equipment: "barbell", IsCompound: true},
	}
	history := []HistorySession{historyWithSets(WorkoutLegs, now.AddDate(0, 0, -1), 22, 40)}
	profile := Profile{Goal: knowledge.GoalMaintain, Experience: knowledge.ExperienceIntermediate, WorkoutFrequency: 4}

	targets, err := calc.CalculateVolumeTargets(context.Background(), []string{"glutes"}, profile, history, catalogByID, now)
	if err != nil {
		t.Fatal(err)
	}
	if targets[0].TargetSetsToday != 0 {
		t.Errorf("target sets today = %d, want 0", targets[0].TargetSetsToday)
	}
}

func TestRecommendExerciseCountHeuristic(t *testing.T) {
	calc := newTestCalculator()

	testCases := []struct {
		name    string
		group   string
		profile Profile
		want    int
	}{
		{
			name:    "beginner bulk frequency three",
			group:   "forearms",
			profile: Profile{Goal: knowledge.GoalBulk, Experience: knowledge.ExperienceBeginner, WorkoutFrequency: 3},
			want:    3, // base 2, +1 bulk, no frequency reduction
		},
		{
			name:    "advanced cut high frequency",
			group:   "forearms",
			profile: Profile{Goal: knowledge.GoalCut, Experience: knowledge.ExperienceAdvanced, WorkoutFrequency: 6},
			want:    3, // base 4, -1 frequency
		},
		{
			name:    "landmark-backed group uses landmark count",
			group:   "back",
			profile: Profile{Goal: knowledge.GoalMaintain, Experience: knowledge.ExperienceIntermediate, WorkoutFrequency: 3},
			want:    4,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			count, reason := calc.RecommendExerciseCount(tc.group, tc.profile)
			if count != tc.want {
				t.Errorf("count = %d, want %d", count, tc.want)
			}
			if reason == "" {
				t.Error("expected a reasoning string")
			}
		})
	}
}

func TestIsDeloadWeek(t *testing.T) {
	calc := newTestCalculator()
	now := time.Now()

	deload := historyWithSets(WorkoutLegs, now.AddDate(0, 0, -1), 22, 3)
	deload.Session.Notes = "Deload week, kept everything light"
	normal := historyWithSets(WorkoutLegs, now.AddDate(0, 0, -4), 22, 8)

	if !calc.IsDeloadWeek("quads", []HistorySession{normal, deload}) {
		t.Error("most recent legs session is a deload; want true")
	}

	// The most recent covering session decides even when an older one was a
	// deload.
	older := historyWithSets(WorkoutLegs, now.AddDate(0, 0, -6), 22, 8)
	older.Session.Notes = "recovery week"
	if calc.IsDeloadWeek("quads", []HistorySession{normal, older}) {
		t.Error("most recent legs session is normal; want false")
	}

	if calc.IsDeloadWeek("chest", []HistorySession{deload}) {
		t.Error("no session covers chest; want false")
	}
}

func TestDaysSinceLastTrained(t *testing.T) {
	calc := newTestCalculator()
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)

	history := []HistorySession{
		historyWithSets(WorkoutPush, now.AddDate(0, 0, -3), 1, 5),
		historyWithSets(WorkoutLegs, now.AddDate(0, 0, -6), 22, 5),
	}

	days, ok := calc.DaysSinceLastTrained("chest", history, now)
	if !ok || days != 3 {
		t.Errorf("chest = (%d, %v), want (3, true)", days, ok)
	}
	days, ok = calc.DaysSinceLastTrained("quads", history, now)
	if !ok || days != 6 {
		t.Errorf("quads = (%d, %v), want (6, true)", days, ok)
	}
	if _, ok = calc.DaysSinceLastTrained("back", history, now); ok {
		t.Error("back was never trained; want ok=false")
	}
}
