package plan

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/SiedahmedM/Saif-sub000/internal/injury"
	"github.com/SiedahmedM/Saif-sub000/internal/knowledge"
	"github.com/google/uuid"
)

// Generator produces session plans from the knowledge base, injury rules,
// and volume targets.
type Generator struct {
	kb     *knowledge.Provider
	calc   *Calculator
	cfg    Config
	logger *slog.Logger
}

// NewGenerator constructs a plan generator.
func NewGenerator(kb *knowledge.Provider, calc *Calculator, cfg Config, logger *slog.Logger) *Generator {
	return &Generator{kb: kb, calc: calc, cfg: cfg, logger: logger}
}

// GenerateInput carries everything plan generation needs. Catalog and
// preference data come from their collaborators; absent data degrades to
// fallback heuristics rather than failing.
type GenerateInput struct {
	SessionID    uuid.UUID
	UserID       string
	WorkoutType  WorkoutType
	MuscleGroups []string
	Profile      Profile
	Catalog      []CatalogExercise
	Preferences  map[int64]PreferenceLevel
	History      []HistorySession
	Now          time.Time
}

// Generate produces a session plan. Muscle groups are processed in input
// order; the order index is a single global sequence across groups. A muscle
// group with no catalog candidates contributes zero exercises. A fully empty
// result degrades to the fixed starter plan so the user is never left with
// nothing.
func (g *Generator) Generate(ctx context.Context, in GenerateInput) (SessionPlan, error) {
	injuries := injury.ParseInjuries(in.Profile.Injuries)

	catalogByID := make(map[int64]CatalogExercise, len(in.Catalog))
	for _, ex := range in.Catalog {
		catalogByID[ex.ID] = ex
	}

	targets, err := g.calc.CalculateVolumeTargets(ctx, in.MuscleGroups, in.Profile, in.History, catalogByID, in.Now)
	if err != nil {
		return SessionPlan{}, fmt.Errorf("volume targets: %w", err)
	}
	targetsByGroup := make(map[string]MuscleVolumeTarget, len(targets))
	for _, t := range targets {
		targetsByGroup[t.MuscleGroup] = t
	}

	var (
		exercises      []PlannedExercise
		orderIndex     int
		totalCompounds int
		techniqueCount int
	)
	for _, rawGroup := range in.MuscleGroups {
		group := knowledge.NormalizeMuscleGroup(rawGroup)
		selected := g.selectForGroup(group, in, injuries, targetsByGroup[group])
		for i := range selected {
			selected[i].OrderIndex = orderIndex
			orderIndex++
			if selected[i].IsCompound {
				totalCompounds++
			}
			if selected[i].IntensityTechnique != TechniqueNone {
				techniqueCount++
			}
		}
		exercises = append(exercises, selected...)
	}

	if len(exercises) == 0 {
		g.logger.LogAttrs(ctx, slog.LevelWarn, "no candidates for any muscle group, using starter plan",
			slog.String("workout_type", string(in.WorkoutType)))
		exercises = g.starterPlan(in.WorkoutType)
		totalCompounds = countCompounds(exercises)
	}

	return SessionPlan{
		ID:                       uuid.New(),
		SessionID:                in.SessionID,
		UserID:                   in.UserID,
		WorkoutType:              in.WorkoutType,
		MuscleGroups:             append([]string(nil), in.MuscleGroups...),
		GeneratedAt:              in.Now,
		Exercises:                exercises,
		VolumeTargets:            targets,
		SafetyNotes:              g.safetyNotes(injuries, techniqueCount, totalCompounds),
		EstimatedDurationMinutes: g.estimateDuration(exercises),
	}, nil
}

// selectForGroup picks up to MaxCompounds compounds and MaxIsolations
// isolation exercises for one muscle group.
func (g *Generator) selectForGroup(
	group string,
	in GenerateInput,
	injuries []injury.Tag,
	target MuscleVolumeTarget,
) []PlannedExercise {
	candidates := g.rankCandidates(group, in, injuries)
	if len(candidates) == 0 {
		return nil
	}

	var compounds, isolations []scoredCandidate
	for _, c := range candidates {
		if c.catalog.IsCompound {
			compounds = append(compounds, c)
		} else {
			isolations = append(isolations, c)
		}
	}
	if len(compounds) > g.cfg.MaxCompounds {
		compounds = compounds[:g.cfg.MaxCompounds]
	}

	var picked []PlannedExercise
	allocated := 0
	for i, c := range compounds {
		sets := g.cfg.FirstCompoundSets
		role := "primary"
		if i > 0 {
			sets = g.cfg.SecondCompoundSets
			role = "secondary"
		}
		allocated += sets
		repsMin, repsMax := determineRepRange(in.Profile.Goal, true)
		picked = append(picked, g.newPlannedExercise(c, group, role, sets, repsMin, repsMax, g.cfg.CompoundRestSeconds))
	}

	remaining := target.TargetSetsToday - allocated
	if remaining < 0 {
		remaining = 0
	}
	if len(isolations) > g.cfg.MaxIsolations {
		isolations = isolations[:g.cfg.MaxIsolations]
	}
	for i, c := range isolations {
		sets := remaining / len(isolations)
		if sets < g.cfg.MinIsolationSets {
			sets = g.cfg.MinIsolationSets
		}
		repsMin, repsMax := determineRepRange(in.Profile.Goal, false)
		planned := g.newPlannedExercise(c, group, "accessory", sets, repsMin, repsMax, g.cfg.IsolationRestSeconds)
		if i == len(isolations)-1 && in.Profile.Experience != knowledge.ExperienceBeginner {
			planned.IntensityTechnique = intensityTechniqueFor(c.catalog.Equipment)
		}
		picked = append(picked, planned)
	}

	return picked
}

// scoredCandidate ties a catalog exercise to its research detail, injury
// note, and preference weight during selection.
type scoredCandidate struct {
	catalog    CatalogExercise
	detail     knowledge.ExerciseDetail
	hasDetail  bool
	safetyNote string
}

// rankCandidates orders the group's catalog by goal-weighted effectiveness,
// removes injury-avoid exercises, and floats favorites over neutral over
// avoided preferences. When preference filtering empties the pool it falls
// back to the injury-filtered ranked list: a non-empty candidate pool never
// produces an empty selection.
func (g *Generator) rankCandidates(group string, in GenerateInput, injuries []injury.Tag) []scoredCandidate {
	var pool []scoredCandidate
	for _, ex := range in.Catalog {
		if knowledge.NormalizeMuscleGroup(ex.MuscleGroup) != group {
			continue
		}
		c := scoredCandidate{catalog: ex}
		if detail, ok := g.kb.FindExercise(ex.Name); ok {
			c.detail = detail
			c.hasDetail = true
		}
		pool = append(pool, c)
	}
	if len(pool) == 0 {
		return nil
	}

	sort.SliceStable(pool, func(i, j int) bool {
		return g.effectiveness(pool[i], in.Profile.Goal) > g.effectiveness(pool[j], in.Profile.Goal)
	})

	// Injury filtering drops avoid-graded exercises outright.
	var safe []scoredCandidate
	for _, c := range pool {
		assessment := injury.Assess(c.catalog.Name, injuries)
		if assessment.Status == injury.StatusAvoid {
			continue
		}
		c.safetyNote = assessment.Note
		safe = append(safe, c)
	}
	if len(safe) == 0 {
		return nil
	}

	weight := func(c scoredCandidate) int {
		switch in.Preferences[c.catalog.ID] {
		case PreferenceFavorite:
			return 2
		case PreferenceAvoid:
			return 0
		default:
			return 1
		}
	}

	var preferred []scoredCandidate
	for _, c := range safe {
		if weight(c) > 0 {
			preferred = append(preferred, c)
		}
	}
	if len(preferred) == 0 {
		// Every survivor is avoid-preference; preferences bias, they never
		// hard-exclude when nothing else remains.
		preferred = safe
	}
	sort.SliceStable(preferred, func(i, j int) bool {
		return weight(preferred[i]) > weight(preferred[j])
	})
	return preferred
}

func (g *Generator) effectiveness(c scoredCandidate, goal knowledge.Goal) float64 {
	if !c.hasDetail {
		return 0
	}
	return knowledge.EffectivenessScore(c.detail, goal)
}

func (g *Generator) newPlannedExercise(
	c scoredCandidate,
	group, role string,
	sets, repsMin, repsMax, restSeconds int,
) PlannedExercise {
	exerciseID := c.catalog.ID
	return PlannedExercise{
		ID:                 uuid.New(),
		ExerciseName:       c.catalog.Name,
		ExerciseID:         &exerciseID,
		MuscleGroup:        group,
		IsCompound:         c.catalog.IsCompound,
		TargetSets:         sets,
		TargetRepsMin:      repsMin,
		TargetRepsMax:      repsMax,
		RestSeconds:        restSeconds,
		IntensityTechnique: TechniqueNone,
		Rationale:          g.rationale(c, role),
		SafetyModification: c.safetyNote,
	}
}

// rationale explains the selection: the exercise's role plus a prefix of its
// research activation text when available.
func (g *Generator) rationale(c scoredCandidate, role string) string {
	text := fmt.Sprintf("Selected as the %s movement for %s", role, c.catalog.MuscleGroup)
	if c.hasDetail && c.detail.EMGActivation != "" {
		activation := c.detail.EMGActivation
		const maxActivation = 80
		if len(activation) > maxActivation {
			// Back up to a rune boundary so multi-byte text is never cut
			// mid-character.
			cut := maxActivation
			for cut > 0 && !utf8.RuneStart(activation[cut]) {
				cut--
			}
			activation = strings.TrimSpace(activation[:cut]) + "..."
		}
		text += ". " + activation
	}
	return text
}

// determineRepRange returns the goal-appropriate rep range.
func determineRepRange(goal knowledge.Goal, isCompound bool) (int, int) {
	if isCompound {
		switch goal {
		case knowledge.GoalBulk:
			return 6, 10
		case knowledge.GoalCut:
			return 8, 12
		default:
			return 6, 12
		}
	}
	switch goal {
	case knowledge.GoalBulk:
		return 10, 15
	case knowledge.GoalCut:
		return 12, 20
	default:
		return 10, 15
	}
}

// intensityTechniqueFor picks the technique suited to the equipment: load
// drops are quick on machines and cables, rest-pause suits fixed loads.
func intensityTechniqueFor(equipment string) IntensityTechnique {
	eq := strings.ToLower(equipment)
	switch {
	case strings.Contains(eq, "machine"), strings.Contains(eq, "cable"):
		return TechniqueDropSets
	case strings.Contains(eq, "dumbbell"), strings.Contains(eq, "barbell"):
		return TechniqueRestPause
	default:
		return TechniqueDropSets
	}
}

func (g *Generator) safetyNotes(injuries []injury.Tag, techniqueCount, totalCompounds int) []string {
	var notes []string
	if len(injuries) > 0 {
		notes = append(notes, fmt.Sprintf(
			"Plan adjusted for reported injuries (%s); respect the per-exercise modifications", joinTags(injuries)))
		notes = append(notes, injury.ModificationNotes(injuries)...)
	}
	if techniqueCount > 0 {
		notes = append(notes, fmt.Sprintf(
			"%d exercise(s) use an intensity technique; save them for the final set", techniqueCount))
	}
	if totalCompounds >= 3 {
		notes = append(notes, "High compound volume today; rest at least 3 minutes between compound sets")
	}
	return notes
}

// estimateDuration returns the plan duration in minutes: warmup, roughly two
// minutes of work per set plus inter-set rest, and cooldown.
func (g *Generator) estimateDuration(exercises []PlannedExercise) int {
	total := float64(g.cfg.WarmupMinutes + g.cfg.CooldownMinutes)
	for _, ex := range exercises {
		total += float64(ex.TargetSets*2) + float64(ex.TargetSets-1)*float64(ex.RestSeconds)/60
	}
	return int(total)
}

// starterPlan is the fixed fallback when the catalog yields nothing at all.
// Bodyweight movements only, so it works with zero equipment data.
func (g *Generator) starterPlan(workoutType WorkoutType) []PlannedExercise {
	type starter struct {
		name  string
		group string
	}
	var entries []starter
	switch workoutType {
	case WorkoutLegs, WorkoutLower:
		entries = []starter{
			{name: "Bodyweight Squat", group: knowledge.GroupQuads},
			{name: "Glute Bridge", group: knowledge.GroupGlutes},
			{name: "Standing Calf Raise", group: knowledge.GroupCalves},
		}
	default:
		entries = []starter{
			{name: "Push-Up", group: knowledge.GroupChest},
			{name: "Plank", group: knowledge.GroupCore},
			{name: "Glute Bridge", group: knowledge.GroupGlutes},
		}
	}

	planned := make([]PlannedExercise, 0, len(entries))
	for i, e := range entries {
		planned = append(planned, PlannedExercise{
			ID:            uuid.New(),
			ExerciseName:  e.name,
			MuscleGroup:   e.group,
			OrderIndex:    i,
			TargetSets:    3,
			TargetRepsMin: 8,
			TargetRepsMax: 15,
			RestSeconds:   g.cfg.IsolationRestSeconds,
			Rationale:     "Starter movement; no catalog data was available",
		})
	}
	return planned
}

func countCompounds(exercises []PlannedExercise) int {
	n := 0
	for _, ex := range exercises {
		if ex.IsCompound {
			n++
		}
	}
	return n
}

func joinTags(tags []injury.Tag) string {
	parts := make([]string, len(tags))
	for i, t := range tags {
		parts[i] = string(t)
	}
	return strings.Join(parts, ", ")
}
