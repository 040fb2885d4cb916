// Package plan is the session plan generation and volume tracking engine.
// It turns a user's profile, training history, and safety constraints into a
// structured workout plan, adapts the plan live during the session, and
// reconciles planned versus actual work when the session ends.
package plan

import (
	"time"

	"github.com/SiedahmedM/Saif-sub000/internal/knowledge"
	"github.com/google/uuid"
)

// WorkoutType is the split day being trained.
type WorkoutType string

// Workout types.
const (
	WorkoutPush     WorkoutType = "push"
	WorkoutPull     WorkoutType = "pull"
	WorkoutLegs     WorkoutType = "legs"
	WorkoutUpper    WorkoutType = "upper"
	WorkoutLower    WorkoutType = "lower"
	WorkoutFullBody WorkoutType = "full_body"
)

// workoutTypeMuscleGroups maps each workout type to the muscle groups it
// covers, in presentation order.
var workoutTypeMuscleGroups = map[WorkoutType][]string{
	WorkoutPush: {knowledge.GroupChest, knowledge.GroupShoulders, knowledge.GroupTriceps},
	WorkoutPull: {knowledge.GroupBack, knowledge.GroupBiceps, knowledge.GroupShoulders},
	WorkoutLegs: {knowledge.GroupQuads, knowledge.GroupHamstrings, knowledge.GroupGlutes, knowledge.GroupCalves},
	WorkoutUpper: {
		knowledge.GroupChest, knowledge.GroupBack, knowledge.GroupShoulders,
		knowledge.GroupBiceps, knowledge.GroupTriceps,
	},
	WorkoutLower: {
		knowledge.GroupQuads, knowledge.GroupHamstrings,
		knowledge.GroupGlutes, knowledge.GroupCalves,
	},
	WorkoutFullBody: {
		knowledge.GroupChest, knowledge.GroupBack, knowledge.GroupShoulders,
		knowledge.GroupQuads, knowledge.GroupHamstrings, knowledge.GroupCore,
	},
}

// MuscleGroupsFor returns the muscle groups covered by a workout type.
func MuscleGroupsFor(workoutType WorkoutType) []string {
	groups := workoutTypeMuscleGroups[workoutType]
	out := make([]string, len(groups))
	copy(out, groups)
	return out
}

// Profile is the training profile consumed from the profile collaborator.
type Profile struct {
	Goal             knowledge.Goal
	Experience       knowledge.Experience
	WorkoutFrequency int
	Equipment        []string
	Injuries         string
}

// PreferenceLevel biases exercise selection. It never hard-excludes an
// exercise unless an alternative exists.
type PreferenceLevel string

// Preference levels.
const (
	PreferenceFavorite PreferenceLevel = "favorite"
	PreferenceNeutral  PreferenceLevel = "neutral"
	PreferenceAvoid    PreferenceLevel = "avoid"
)

// Preference is a user's stance on one catalog exercise.
type Preference struct {
	ExerciseID int64
	Level      PreferenceLevel
	Reason     string
}

// CatalogExercise is an exercise record from the catalog collaborator.
type CatalogExercise struct {
	ID          int64
	Name        string
	MuscleGroup string
	WorkoutType WorkoutType
	Equipment   string
	IsCompound  bool
}

// IntensityTechnique is an optional advanced set scheme on the last
// isolation exercise of a muscle group.
type IntensityTechnique string

// Intensity techniques.
const (
	TechniqueNone      IntensityTechnique = ""
	TechniqueDropSets  IntensityTechnique = "drop_sets"
	TechniqueRestPause IntensityTechnique = "rest_pause"
	TechniqueSupersets IntensityTechnique = "supersets"
)

// PlannedExercise is one entry in a session plan.
//
// OrderIndex is dense and zero-based within the exercise's muscle group and
// is renumbered after any reorder. ActualSets is synced from the logged-set
// count when the exercise is marked complete.
type PlannedExercise struct {
	ID                 uuid.UUID
	ExerciseName       string
	ExerciseID         *int64
	MuscleGroup        string
	OrderIndex         int
	IsCompound         bool
	TargetSets         int
	TargetRepsMin      int
	TargetRepsMax      int
	RestSeconds        int
	IntensityTechnique IntensityTechnique
	Rationale          string
	SafetyModification string
	IsCompleted        bool
	ActualSets         int
}

// SessionPlan is the generated plan for one workout session. It is treated
// as a value: every mutation replaces the whole Exercises slice rather than
// editing entries in place.
type SessionPlan struct {
	ID                       uuid.UUID
	SessionID                uuid.UUID
	UserID                   string
	WorkoutType              WorkoutType
	MuscleGroups             []string
	GeneratedAt              time.Time
	Exercises                []PlannedExercise
	VolumeTargets            []MuscleVolumeTarget
	SafetyNotes              []string
	EstimatedDurationMinutes int
}

// MuscleVolumeTarget is the per-muscle-group set target computed at plan
// generation time. It is derived data and never mutated afterward.
type MuscleVolumeTarget struct {
	MuscleGroup       string
	TargetSetsToday   int
	WeeklyTarget      int
	CompletedThisWeek int
	Reasoning         string
}

// VolumeProgress is the display tuple for one muscle group's weekly volume.
type VolumeProgress struct {
	MuscleGroup string
	Completed   int
	Min         int
	Max         int
	StatusText  string
}

// Session is a workout session record from the history collaborator.
type Session struct {
	ID          uuid.UUID
	UserID      string
	WorkoutType WorkoutType
	Notes       string
	StartedAt   time.Time
	CompletedAt *time.Time
}

// ExerciseSet is a logged performance record. Append-only during a session
// except for explicit edits; SetNumber is 1-based and dense per exercise.
type ExerciseSet struct {
	ID          uuid.UUID
	SessionID   uuid.UUID
	ExerciseID  int64
	SetNumber   int
	Reps        int
	Weight      float64
	RPE         *float64
	RestSeconds *int
	CompletedAt time.Time
}

// HistorySession pairs a past session with its logged sets.
type HistorySession struct {
	Session Session
	Sets    []ExerciseSet
}
