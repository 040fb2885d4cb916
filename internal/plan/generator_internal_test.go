package plan

import (
	"context"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/SiedahmedM/Saif-sub000/internal/knowledge"
	"github.com/SiedahmedM/Saif-sub000/internal/testhelpers"
	"github.com/google/uuid"
)

func newTestGenerator(t *testing.T) *Generator {
	t.Helper()
	kb := knowledge.NewProvider()
	cfg := DefaultConfig()
	logger := testhelpers.NewLogger(testhelpers.NewWriter(t))
	return NewGenerator(kb, NewCalculator(kb, cfg), cfg, logger)
}

// pushCatalog mirrors the seeded catalog rows for a push day.
func pushCatalog() []CatalogExercise {
	return []CatalogExercise{
		{ID: 1, Name: "Barbell Bench Press", MuscleGroup: "chest", WorkoutType: WorkoutPush, Equipment: "barbell", IsCompound: true},
		{ID: 2, Name: "Incline Dumbbell Press", MuscleGroup: "chest", WorkoutType: WorkoutPush, Equipment: "dumbbell", IsCompound: true},
		{ID: 3, Name: "Cable Crossover", MuscleGroup: "chest", WorkoutType: WorkoutPush, Equipment: "cable", IsCompound: false},
		{ID: 10, Name: "Overhead Press", MuscleGroup: "shoulders", WorkoutType: WorkoutPush, Equipment: "barbell", IsCompound: true},
		{ID: 11, Name: "Landmine Press", MuscleGroup: "shoulders", WorkoutType: WorkoutPush, Equipment: "barbell", IsCompound: true},
		{ID: 12, Name: "Lateral Raise", MuscleGroup: "shoulders", WorkoutType: WorkoutPush, Equipment: "dumbbell", IsCompound: false},
		{ID: 29, Name: "Close-Grip Bench Press", MuscleGroup: "triceps", WorkoutType: WorkoutPush, Equipment: "barbell", IsCompound: true},
		{ID: 31, Name: "Triceps Pushdown", MuscleGroup: "triceps", WorkoutType: WorkoutPush, Equipment: "cable", IsCompound: false},
		{ID: 32, Name: "Overhead Triceps Extension", MuscleGroup: "triceps", WorkoutType: WorkoutPush, Equipment: "cable", IsCompound: false},
	}
}

func pushInput(profile Profile) GenerateInput {
	return GenerateInput{
		SessionID:    uuid.New(),
		UserID:       "u1",
		WorkoutType:  WorkoutPush,
		MuscleGroups: []string{"chest", "shoulders", "triceps"},
		Profile:      profile,
		Catalog:      pushCatalog(),
		Preferences:  map[int64]PreferenceLevel{},
		Now:          time.Date(2026, 8, 28, 9, 0, 0, 0, time.UTC),
	}
}

func TestGenerateInvariants(t *testing.T) {
	gen := newTestGenerator(t)
	profile := Profile{Goal: knowledge.GoalBulk, Experience: knowledge.ExperienceIntermediate, WorkoutFrequency: 4}

	generated, err := gen.Generate(context.Background(), pushInput(profile))
	if err != nil {
		t.Fatal(err)
	}
	if len(generated.Exercises) == 0 {
		t.Fatal("generated plan has no exercises")
	}

	for i, ex := range generated.Exercises {
		if ex.TargetSets <= 0 {
			t.Errorf("%s: target sets = %d, want > 0", ex.ExerciseName, ex.TargetSets)
		}
		if ex.TargetRepsMin > ex.TargetRepsMax {
			t.Errorf("%s: rep range %d-%d inverted", ex.ExerciseName, ex.TargetRepsMin, ex.TargetRepsMax)
		}
		if ex.OrderIndex != i {
			t.Errorf("%s: order index = %d, want global sequence position %d", ex.ExerciseName, ex.OrderIndex, i)
		}
		if ex.Rationale == "" {
			t.Errorf("%s: missing rationale", ex.ExerciseName)
		}
		if ex.IsCompound && ex.RestSeconds != 180 {
			t.Errorf("%s: compound rest = %d, want 180", ex.ExerciseName, ex.RestSeconds)
		}
		if !ex.IsCompound && ex.RestSeconds != 90 {
			t.Errorf("%s: isolation rest = %d, want 90", ex.ExerciseName, ex.RestSeconds)
		}
	}

	// At most two compounds per muscle group, first with 4 sets, second
	// with 3.
	perGroup := make(map[string][]PlannedExercise)
	for _, ex := range generated.Exercises {
		perGroup[ex.MuscleGroup] = append(perGroup[ex.MuscleGroup], ex)
	}
	for group, exercises := range perGroup {
		compounds := 0
		for _, ex := range exercises {
			if !ex.IsCompound {
				continue
			}
			compounds++
			want := 4
			if compounds == 2 {
				want = 3
			}
			if ex.TargetSets != want {
				t.Errorf("%s compound %d (%s): target sets = %d, want %d", group, compounds, ex.ExerciseName, ex.TargetSets, want)
			}
		}
		if compounds > 2 {
			t.Errorf("%s: %d compounds selected, want at most 2", group, compounds)
		}
	}

	// Bulk rep ranges.
	for _, ex := range generated.Exercises {
		if ex.IsCompound && (ex.TargetRepsMin != 6 || ex.TargetRepsMax != 10) {
			t.Errorf("%s: bulk compound range %d-%d, want 6-10", ex.ExerciseName, ex.TargetRepsMin, ex.TargetRepsMax)
		}
		if !ex.IsCompound && (ex.TargetRepsMin != 10 || ex.TargetRepsMax != 15) {
			t.Errorf("%s: bulk isolation range %d-%d, want 10-15", ex.ExerciseName, ex.TargetRepsMin, ex.TargetRepsMax)
		}
	}

	if generated.EstimatedDurationMinutes <= 10 {
		t.Errorf("estimated duration = %d, want more than warmup+cooldown", generated.EstimatedDurationMinutes)
	}
	if len(generated.VolumeTargets) != 3 {
		t.Errorf("got %d volume targets, want 3", len(generated.VolumeTargets))
	}

	// Three or more compounds across the plan triggers the long-rest note.
	if countCompounds(generated.Exercises) >= 3 {
		found := false
		for _, note := range generated.SafetyNotes {
			if note == "High compound volume today; rest at least 3 minutes between compound sets" {
				found = true
			}
		}
		if !found {
			t.Error("missing high-compound-volume safety note")
		}
	}
}

func TestGenerateFiltersInjuredExercises(t *testing.T) {
	gen := newTestGenerator(t)
	profile := Profile{
		Goal:             knowledge.GoalBulk,
		Experience:       knowledge.ExperienceIntermediate,
		WorkoutFrequency: 4,
		Injuries:         "shoulder impingement from last season",
	}

	generated, err := gen.Generate(context.Background(), pushInput(profile))
	if err != nil {
		t.Fatal(err)
	}

	sawCautionNote := false
	for _, ex := range generated.Exercises {
		if ex.ExerciseName == "Overhead Press" {
			t.Error("Overhead Press is on the shoulder avoid list and must not be planned")
		}
		if ex.SafetyModification != "" {
			sawCautionNote = true
		}
	}
	if !sawCautionNote {
		t.Error("expected at least one caution-graded exercise to carry a safety modification")
	}
	if len(generated.SafetyNotes) == 0 {
		t.Error("expected injury-related safety notes")
	}
}

func TestGeneratePreferenceBias(t *testing.T) {
	gen := newTestGenerator(t)
	profile := Profile{Goal: knowledge.GoalMaintain, Experience: knowledge.ExperienceIntermediate, WorkoutFrequency: 3}

	in := pushInput(profile)
	in.MuscleGroups = []string{"chest"}
	in.Preferences = map[int64]PreferenceLevel{
		1: PreferenceAvoid,    // Barbell Bench Press
		2: PreferenceFavorite, // Incline Dumbbell Press
	}

	generated, err := gen.Generate(context.Background(), in)
	if err != nil {
		t.Fatal(err)
	}
	if len(generated.Exercises) == 0 {
		t.Fatal("no exercises generated")
	}
	if got := generated.Exercises[0].ExerciseName; got != "Incline Dumbbell Press" {
		t.Errorf("first chest exercise = %s, want the favorite Incline Dumbbell Press", got)
	}
	for _, ex := range generated.Exercises {
		if ex.ExerciseName == "Barbell Bench Press" {
			t.Error("avoid-preference exercise selected despite alternatives")
		}
	}
}

func TestGenerateIntensityTechniqueByExperience(t *testing.T) {
	gen := newTestGenerator(t)

	beginner := Profile{Goal: knowledge.GoalBulk, Experience: knowledge.ExperienceBeginner, WorkoutFrequency: 3}
	generated, err := gen.Generate(context.Background(), pushInput(beginner))
	if err != nil {
		t.Fatal(err)
	}
	for _, ex := range generated.Exercises {
		if ex.IntensityTechnique != TechniqueNone {
			t.Errorf("beginner plan assigns %s to %s; beginners get none", ex.IntensityTechnique, ex.ExerciseName)
		}
	}

	advanced := Profile{Goal: knowledge.GoalBulk, Experience: knowledge.ExperienceAdvanced, WorkoutFrequency: 4}
	generated, err = gen.Generate(context.Background(), pushInput(advanced))
	if err != nil {
		t.Fatal(err)
	}
	techniques := 0
	for _, ex := range generated.Exercises {
		if ex.IntensityTechnique == TechniqueNone {
			continue
		}
		techniques++
		if ex.IsCompound {
			t.Errorf("intensity technique on compound %s", ex.ExerciseName)
		}
	}
	if techniques == 0 {
		t.Error("advanced plan has no intensity techniques")
	}
}

func TestGenerateStarterPlanFallback(t *testing.T) {
	gen := newTestGenerator(t)
	profile := Profile{Goal: knowledge.GoalMaintain, Experience: knowledge.ExperienceBeginner, WorkoutFrequency: 2}

	in := pushInput(profile)
	in.Catalog = nil

	generated, err := gen.Generate(context.Background(), in)
	if err != nil {
		t.Fatal(err)
	}
	if len(generated.Exercises) == 0 {
		t.Fatal("empty catalog must fall back to the starter plan, not an empty plan")
	}
	for _, ex := range generated.Exercises {
		if ex.TargetSets <= 0 || ex.TargetRepsMin > ex.TargetRepsMax {
			t.Errorf("starter exercise %s has invalid targets", ex.ExerciseName)
		}
	}
}

func TestRationaleTruncatesOnRuneBoundary(t *testing.T) {
	gen := newTestGenerator(t)

	// A multi-byte character straddling the truncation point must not be
	// split into invalid bytes.
	activation := strings.Repeat("a", 79) + strings.Repeat("é", 10)
	c := scoredCandidate{
		catalog:   CatalogExercise{Name: "Barbell Bench Press", MuscleGroup: "chest", IsCompound: true},
		detail:    knowledge.ExerciseDetail{Name: "Barbell Bench Press", EMGActivation: activation},
		hasDetail: true,
	}

	got := gen.rationale(c, "primary compound")
	if !utf8.ValidString(got) {
		t.Errorf("rationale contains invalid UTF-8: %q", got)
	}
	if !strings.HasSuffix(got, "...") {
		t.Errorf("long activation text not truncated: %q", got)
	}
}

func TestDetermineRepRange(t *testing.T) {
	testCases := []struct {
		goal             knowledge.Goal
		isCompound       bool
		wantMin, wantMax int
	}{
		{goal: knowledge.GoalBulk, isCompound: true, wantMin: 6, wantMax: 10},
		{goal: knowledge.GoalBulk, isCompound: false, wantMin: 10, wantMax: 15},
		{goal: knowledge.GoalCut, isCompound: true, wantMin: 8, wantMax: 12},
		{goal: knowledge.GoalCut, isCompound: false, wantMin: 12, wantMax: 20},
		{goal: knowledge.GoalMaintain, isCompound: true, wantMin: 6, wantMax: 12},
		{goal: knowledge.GoalMaintain, isCompound: false, wantMin: 10, wantMax: 15},
	}
	for _, tc := range testCases {
		gotMin, gotMax := determineRepRange(tc.goal, tc.isCompound)
		if gotMin != tc.wantMin || gotMax != tc.wantMax {
			t.Errorf("determineRepRange(%s, %v) = %d-%d, want %d-%d",
				tc.goal, tc.isCompound, gotMin, gotMax, tc.wantMin, tc.wantMax)
		}
	}
}
