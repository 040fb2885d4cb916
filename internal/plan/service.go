package plan

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SiedahmedM/Saif-sub000/internal/knowledge"
	"github.com/SiedahmedM/Saif-sub000/internal/logging"
	"github.com/SiedahmedM/Saif-sub000/internal/sqlite"
	"github.com/google/uuid"
)

// Service handles the business logic for workout sessions: plan generation,
// live adaptation, and post-session summaries.
//
// Collaborator failures degrade rather than abort: catalog, preference, and
// persistence problems are logged and the session continues on local state.
type Service struct {
	repo   *repository
	kb     *knowledge.Provider
	calc   *Calculator
	gen    *Generator
	store  *planStore
	coach  *coach
	cfg    Config
	logger *slog.Logger
	now    func() time.Time
}

// NewService creates a workout planning service. An empty openaiAPIKey
// disables coach note generation in favor of template notes.
func NewService(db *sqlite.Database, kb *knowledge.Provider, logger *slog.Logger, openaiAPIKey string) *Service {
	cfg := DefaultConfig()
	calc := NewCalculator(kb, cfg)
	return &Service{
		repo:   newRepository(db, logger),
		kb:     kb,
		calc:   calc,
		gen:    NewGenerator(kb, calc, cfg, logger),
		store:  newPlanStore(),
		coach:  newCoach(openaiAPIKey, logger),
		cfg:    cfg,
		logger: logger,
		now:    time.Now,
	}
}

// StartWorkout opens a session and generates its plan. The plan is held in
// memory for the lifetime of the session; the session row is persisted.
func (s *Service) StartWorkout(
	ctx context.Context,
	userID string,
	workoutType WorkoutType,
	profile Profile,
) (SessionPlan, error) {
	sessionID := uuid.New()
	ctx = logging.WithSessionID(logging.WithUserID(ctx, userID), sessionID.String())
	now := s.now()

	session := Session{
		ID:          sessionID,
		UserID:      userID,
		WorkoutType: workoutType,
		StartedAt:   now,
	}
	if err := s.repo.sessions.Create(ctx, session); err != nil {
		return SessionPlan{}, fmt.Errorf("create session: %w", err)
	}

	muscleGroups := MuscleGroupsFor(workoutType)

	catalog, err := s.repo.catalog.List(ctx, workoutType, muscleGroups)
	if err != nil {
		s.logger.LogAttrs(ctx, slog.LevelWarn, "catalog lookup failed, generating without catalog",
			slog.Any("error", err))
		catalog = nil
	}

	prefs := map[int64]PreferenceLevel{}
	if stored, prefErr := s.repo.prefs.Get(ctx, userID); prefErr != nil {
		s.logger.LogAttrs(ctx, slog.LevelWarn, "preference lookup failed, generating without preferences",
			slog.Any("error", prefErr))
	} else {
		for id, pref := range stored {
			prefs[id] = pref.Level
		}
	}

	history := s.loadHistory(ctx, userID, now.AddDate(0, 0, -s.cfg.VolumePRWindowDays))

	generated, err := s.gen.Generate(ctx, GenerateInput{
		SessionID:    sessionID,
		UserID:       userID,
		WorkoutType:  workoutType,
		MuscleGroups: muscleGroups,
		Profile:      profile,
		Catalog:      catalog,
		Preferences:  prefs,
		History:      history,
		Now:          now,
	})
	if err != nil {
		return SessionPlan{}, fmt.Errorf("generate plan: %w", err)
	}

	s.store.put(generated, profile)
	s.logger.LogAttrs(ctx, slog.LevelInfo, "workout started",
		slog.String("workout_type", string(workoutType)),
		slog.Int("exercises", len(generated.Exercises)))
	return generated, nil
}

// CurrentPlan returns the live plan snapshot for a session.
func (s *Service) CurrentPlan(_ context.Context, sessionID uuid.UUID) (SessionPlan, error) {
	return s.store.planFor(sessionID)
}

// LogSet records a completed set and returns the live recommendation for the
// next one, or nil when no rule applies. The set is kept locally and
// persisted best-effort: a failed write is logged and the session continues.
func (s *Service) LogSet(
	ctx context.Context,
	sessionID uuid.UUID,
	exerciseID int64,
	reps int,
	weight float64,
	rpe *float64,
) (*Recommendation, error) {
	ctx = logging.WithSessionID(ctx, sessionID.String())

	current, err := s.store.planFor(sessionID)
	if err != nil {
		return nil, err
	}
	profile, err := s.store.profileFor(sessionID)
	if err != nil {
		return nil, err
	}

	target, ok := plannedByExerciseID(current, exerciseID)
	if !ok {
		return nil, fmt.Errorf("exercise %d not in plan: %w", exerciseID, ErrNotFound)
	}

	setNumber := s.store.setCountFor(sessionID, exerciseID) + 1
	set := ExerciseSet{
		ID:          uuid.New(),
		SessionID:   sessionID,
		ExerciseID:  exerciseID,
		SetNumber:   setNumber,
		Reps:        reps,
		Weight:      weight,
		RPE:         rpe,
		CompletedAt: s.now(),
	}
	if err = s.store.appendSet(sessionID, set); err != nil {
		return nil, err
	}
	if persistErr := s.repo.sets.Create(ctx, set); persistErr != nil {
		s.logger.LogAttrs(ctx, slog.LevelWarn, "set persistence failed, keeping local copy",
			slog.Any("error", persistErr))
	}

	equipment := s.equipmentFor(ctx, exerciseID, target.ExerciseName)
	return AnalyzeSetPerformance(profile, target, equipment, setNumber, weight, reps, rpe), nil
}

// DeleteSet removes a logged set, keeping set numbers dense and ascending for
// the affected exercise. Like logging, local state is authoritative: the
// database delete is best-effort and a failed write is logged.
func (s *Service) DeleteSet(ctx context.Context, sessionID uuid.UUID, exerciseID int64, setNumber int) error {
	ctx = logging.WithSessionID(ctx, sessionID.String())

	removed, err := s.store.removeSet(sessionID, exerciseID, setNumber)
	if err != nil {
		return err
	}
	if persistErr := s.repo.sets.Delete(ctx, removed.ID); persistErr != nil {
		s.logger.LogAttrs(ctx, slog.LevelWarn, "set deletion write failed, keeping local removal",
			slog.Any("error", persistErr))
	}
	return nil
}

// SuggestSubstitute proposes a replacement for a planned exercise without
// changing the plan.
func (s *Service) SuggestSubstitute(
	ctx context.Context,
	sessionID uuid.UUID,
	plannedID uuid.UUID,
) (SubstituteSuggestion, error) {
	current, err := s.store.planFor(sessionID)
	if err != nil {
		return SubstituteSuggestion{}, err
	}
	profile, err := s.store.profileFor(sessionID)
	if err != nil {
		return SubstituteSuggestion{}, err
	}
	target, ok := plannedByID(current, plannedID)
	if !ok {
		return SubstituteSuggestion{}, fmt.Errorf("planned exercise %s: %w", plannedID, ErrNotFound)
	}
	return s.gen.SmartSubstitute(target, current, profile, s.recentlyUsedNames(ctx, current.UserID))
}

// ReplaceExercise swaps a planned exercise for its smart substitute and
// returns the updated plan.
func (s *Service) ReplaceExercise(ctx context.Context, sessionID, plannedID uuid.UUID) (SessionPlan, error) {
	suggestion, err := s.SuggestSubstitute(ctx, sessionID, plannedID)
	if err != nil {
		return SessionPlan{}, err
	}

	return s.store.mutate(sessionID, func(current SessionPlan) (SessionPlan, error) {
		target, ok := plannedByID(current, plannedID)
		if !ok {
			return SessionPlan{}, fmt.Errorf("planned exercise %s: %w", plannedID, ErrNotFound)
		}

		replacement := target
		replacement.ID = uuid.New()
		replacement.ExerciseName = suggestion.Detail.Name
		replacement.ExerciseID = nil
		replacement.Rationale = suggestion.Rationale
		replacement.IsCompleted = false
		replacement.ActualSets = 0
		if catalogEx, findErr := s.repo.catalog.FindByName(ctx, suggestion.Detail.Name); findErr == nil {
			id := catalogEx.ID
			replacement.ExerciseID = &id
		}
		return ReplaceExercise(current, plannedID, replacement)
	})
}

// MoveExercise repositions a planned exercise within its muscle group.
func (s *Service) MoveExercise(_ context.Context, sessionID, plannedID uuid.UUID, newIndex int) (SessionPlan, error) {
	return s.store.mutate(sessionID, func(current SessionPlan) (SessionPlan, error) {
		return MoveExercise(current, plannedID, newIndex)
	})
}

// MarkExerciseComplete marks a planned exercise done, syncing its actual set
// count from the local set log.
func (s *Service) MarkExerciseComplete(_ context.Context, sessionID, plannedID uuid.UUID) (SessionPlan, error) {
	return s.store.mutate(sessionID, func(current SessionPlan) (SessionPlan, error) {
		target, ok := plannedByID(current, plannedID)
		if !ok {
			return SessionPlan{}, fmt.Errorf("planned exercise %s: %w", plannedID, ErrNotFound)
		}
		actual := 0
		if target.ExerciseID != nil {
			actual = s.store.setCountFor(sessionID, *target.ExerciseID)
		}
		return MarkExerciseComplete(current, plannedID, actual)
	})
}

// VolumeProgress reports weekly volume progress per muscle group for
// display, folding today's locally logged sets into the weekly tallies.
func (s *Service) VolumeProgress(ctx context.Context, sessionID uuid.UUID) ([]VolumeProgress, error) {
	current, err := s.store.planFor(sessionID)
	if err != nil {
		return nil, err
	}
	profile, err := s.store.profileFor(sessionID)
	if err != nil {
		return nil, err
	}
	sets, err := s.store.setsFor(sessionID)
	if err != nil {
		return nil, err
	}

	todayByGroup := make(map[string]int)
	for _, set := range sets {
		if group, ok := s.muscleGroupFor(ctx, current, set.ExerciseID); ok {
			todayByGroup[group]++
		}
	}

	progress := make([]VolumeProgress, 0, len(current.VolumeTargets))
	for _, target := range current.VolumeTargets {
		completed := target.CompletedThisWeek + todayByGroup[target.MuscleGroup]
		lower, upper := target.WeeklyTarget, target.WeeklyTarget
		if landmarks, ok := s.kb.VolumeLandmarksFor(target.MuscleGroup, profile.Goal, profile.Experience); ok {
			lower, upper = landmarks.SetsPerWeek.Lower, landmarks.SetsPerWeek.Upper
		}

		status := "In the productive range"
		switch {
		case completed < lower:
			status = "Below the minimum effective volume"
		case completed > upper:
			status = "Above the maximum adaptive volume; consider backing off"
		}
		progress = append(progress, VolumeProgress{
			MuscleGroup: target.MuscleGroup,
			Completed:   completed,
			Min:         lower,
			Max:         upper,
			StatusText:  status,
		})
	}
	return progress, nil
}

// CompleteWorkout closes the session, builds the summary from local state,
// and discards the in-memory session. The session-row update is best-effort;
// local state remains authoritative for the summary.
func (s *Service) CompleteWorkout(ctx context.Context, sessionID uuid.UUID, notes string) (WorkoutSummaryData, error) {
	ctx = logging.WithSessionID(ctx, sessionID.String())
	now := s.now()

	finalPlan, err := s.store.planFor(sessionID)
	if err != nil {
		return WorkoutSummaryData{}, err
	}
	sets, err := s.store.setsFor(sessionID)
	if err != nil {
		return WorkoutSummaryData{}, err
	}

	if completeErr := s.repo.sessions.Complete(ctx, sessionID, notes, now); completeErr != nil {
		s.logger.LogAttrs(ctx, slog.LevelWarn, "session completion write failed",
			slog.Any("error", completeErr))
	}

	session := Session{
		ID:          sessionID,
		UserID:      finalPlan.UserID,
		WorkoutType: finalPlan.WorkoutType,
		Notes:       notes,
		StartedAt:   finalPlan.GeneratedAt,
		CompletedAt: &now,
	}
	if stored, getErr := s.repo.sessions.Get(ctx, sessionID); getErr == nil {
		session = stored
		if session.CompletedAt == nil {
			session.CompletedAt = &now
		}
	}

	history := s.loadHistory(ctx, finalPlan.UserID, now.AddDate(0, 0, -s.cfg.VolumePRWindowDays))
	// The session being summarized must not compete with itself in PR
	// detection.
	pastOnly := history[:0:0]
	for _, h := range history {
		if h.Session.ID != sessionID {
			pastOnly = append(pastOnly, h)
		}
	}

	catalogByID := s.catalogForSets(ctx, sets, pastOnly)
	summary := summarizer{cfg: s.cfg}.Summarize(finalPlan, session, sets, pastOnly, catalogByID, now)
	summary.CoachNote = s.coach.Note(ctx, summary)

	s.store.drop(sessionID)
	s.logger.LogAttrs(ctx, slog.LevelInfo, "workout completed",
		slog.Int("actual_sets", summary.ActualSets),
		slog.Int("weight_prs", len(summary.WeightPRs)))
	return summary, nil
}

// SetPreference stores a favorite/neutral/avoid stance on an exercise.
func (s *Service) SetPreference(ctx context.Context, userID string, pref Preference) error {
	if err := s.repo.prefs.Set(ctx, userID, pref); err != nil {
		return fmt.Errorf("set preference: %w", err)
	}
	return nil
}

// Preferences retrieves a user's stored exercise preferences.
func (s *Service) Preferences(ctx context.Context, userID string) (map[int64]Preference, error) {
	prefs, err := s.repo.prefs.Get(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get preferences: %w", err)
	}
	return prefs, nil
}

// loadHistory fetches past sessions and their sets. Failures degrade to an
// empty history so generation falls back to heuristics.
func (s *Service) loadHistory(ctx context.Context, userID string, since time.Time) []HistorySession {
	sessions, err := s.repo.sessions.ListSince(ctx, userID, since)
	if err != nil {
		s.logger.LogAttrs(ctx, slog.LevelWarn, "history lookup failed, proceeding without history",
			slog.Any("error", err))
		return nil
	}
	sets, err := s.repo.sets.ListSince(ctx, userID, since)
	if err != nil {
		s.logger.LogAttrs(ctx, slog.LevelWarn, "history sets lookup failed, proceeding with empty sessions",
			slog.Any("error", err))
		sets = nil
	}
	bySession := make(map[uuid.UUID][]ExerciseSet)
	for _, set := range sets {
		bySession[set.SessionID] = append(bySession[set.SessionID], set)
	}

	history := make([]HistorySession, 0, len(sessions))
	for _, session := range sessions {
		history = append(history, HistorySession{Session: session, Sets: bySession[session.ID]})
	}
	return history
}

// recentlyUsedNames collects lowercase exercise names used in the user's
// recent sessions: the last RecencySessions sessions or the trailing
// RecencyWindowDays, whichever covers fewer sessions.
func (s *Service) recentlyUsedNames(ctx context.Context, userID string) map[string]struct{} {
	now := s.now()
	history := s.loadHistory(ctx, userID, now.AddDate(0, 0, -s.cfg.RecencyWindowDays))
	recent := mostRecentFirst(history)
	if len(recent) > s.cfg.RecencySessions {
		recent = recent[:s.cfg.RecencySessions]
	}

	names := make(map[string]struct{})
	for _, h := range recent {
		for _, set := range h.Sets {
			if ex, err := s.repo.catalog.Get(ctx, set.ExerciseID); err == nil {
				names[strings.ToLower(ex.Name)] = struct{}{}
			}
		}
	}
	return names
}

// equipmentFor resolves an exercise's equipment from the catalog, falling
// back to inferring it from the exercise name.
func (s *Service) equipmentFor(ctx context.Context, exerciseID int64, exerciseName string) string {
	if ex, err := s.repo.catalog.Get(ctx, exerciseID); err == nil {
		return ex.Equipment
	}
	return equipmentCategory(exerciseName)
}

// muscleGroupFor resolves a logged set's muscle group via the plan first and
// the catalog second.
func (s *Service) muscleGroupFor(ctx context.Context, current SessionPlan, exerciseID int64) (string, bool) {
	for _, ex := range current.Exercises {
		if ex.ExerciseID != nil && *ex.ExerciseID == exerciseID {
			return ex.MuscleGroup, true
		}
	}
	if ex, err := s.repo.catalog.Get(ctx, exerciseID); err == nil {
		return knowledge.NormalizeMuscleGroup(ex.MuscleGroup), true
	}
	return "", false
}

// catalogForSets resolves catalog records for every exercise id appearing in
// today's sets or the comparison history.
func (s *Service) catalogForSets(
	ctx context.Context,
	sets []ExerciseSet,
	history []HistorySession,
) map[int64]CatalogExercise {
	catalogByID := make(map[int64]CatalogExercise)
	resolve := func(exerciseID int64) {
		if _, done := catalogByID[exerciseID]; done {
			return
		}
		if ex, err := s.repo.catalog.Get(ctx, exerciseID); err == nil {
			catalogByID[exerciseID] = ex
		}
	}
	for _, set := range sets {
		resolve(set.ExerciseID)
	}
	for _, h := range history {
		for _, set := range h.Sets {
			resolve(set.ExerciseID)
		}
	}
	return catalogByID
}

func plannedByID(p SessionPlan, plannedID uuid.UUID) (PlannedExercise, bool) {
	for _, ex := range p.Exercises {
		if ex.ID == plannedID {
			return ex, true
		}
	}
	return PlannedExercise{}, false
}

func plannedByExerciseID(p SessionPlan, exerciseID int64) (PlannedExercise, bool) {
	for _, ex := range p.Exercises {
		if ex.ExerciseID != nil && *ex.ExerciseID == exerciseID {
			return ex, true
		}
	}
	return PlannedExercise{}, false
}
