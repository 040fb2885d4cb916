package plan

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// sessionState is the in-memory state for one active workout session: the
// current plan snapshot and the locally logged sets. Local state stays
// authoritative even when persistence writes fail.
type sessionState struct {
	plan    SessionPlan
	profile Profile
	sets    []ExerciseSet
}

// planStore holds active sessions keyed by session id. Mutations run under
// the write lock and follow the copy-on-write discipline: read the snapshot,
// compute the next one, swap it in atomically.
type planStore struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*sessionState
}

func newPlanStore() *planStore {
	return &planStore{sessions: make(map[uuid.UUID]*sessionState)}
}

// put registers a freshly generated plan and the profile it was generated
// for.
func (s *planStore) put(p SessionPlan, profile Profile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[p.SessionID] = &sessionState{plan: p, profile: profile}
}

// profileFor returns the profile the session's plan was generated for.
func (s *planStore) profileFor(sessionID uuid.UUID) (Profile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	state, ok := s.sessions[sessionID]
	if !ok {
		return Profile{}, fmt.Errorf("session %s: %w", sessionID, ErrNotFound)
	}
	return state.profile, nil
}

// plan returns the current plan snapshot for a session.
func (s *planStore) planFor(sessionID uuid.UUID) (SessionPlan, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	state, ok := s.sessions[sessionID]
	if !ok {
		return SessionPlan{}, fmt.Errorf("session %s: %w", sessionID, ErrNotFound)
	}
	return state.plan, nil
}

// mutate applies fn to the current plan snapshot under the write lock and
// swaps in the result. fn errors leave the stored plan untouched.
func (s *planStore) mutate(sessionID uuid.UUID, fn func(SessionPlan) (SessionPlan, error)) (SessionPlan, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	state, ok := s.sessions[sessionID]
	if !ok {
		return SessionPlan{}, fmt.Errorf("session %s: %w", sessionID, ErrNotFound)
	}
	next, err := fn(state.plan)
	if err != nil {
		return SessionPlan{}, err
	}
	state.plan = next
	return next, nil
}

// appendSet records a locally logged set for the session.
func (s *planStore) appendSet(sessionID uuid.UUID, set ExerciseSet) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	state, ok := s.sessions[sessionID]
	if !ok {
		return fmt.Errorf("session %s: %w", sessionID, ErrNotFound)
	}
	state.sets = append(state.sets, set)
	return nil
}

// removeSet deletes one logged set by exercise and set number, renumbering
// the exercise's surviving sets densely from 1. It returns the removed set so
// callers can mirror the deletion elsewhere.
func (s *planStore) removeSet(sessionID uuid.UUID, exerciseID int64, setNumber int) (ExerciseSet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	state, ok := s.sessions[sessionID]
	if !ok {
		return ExerciseSet{}, fmt.Errorf("session %s: %w", sessionID, ErrNotFound)
	}

	idx := -1
	for i, set := range state.sets {
		if set.ExerciseID == exerciseID && set.SetNumber == setNumber {
			idx = i
			break
		}
	}
	if idx < 0 {
		return ExerciseSet{}, fmt.Errorf("exercise %d set %d: %w", exerciseID, setNumber, ErrNotFound)
	}

	removed := state.sets[idx]
	state.sets = append(state.sets[:idx], state.sets[idx+1:]...)
	n := 0
	for i := range state.sets {
		if state.sets[i].ExerciseID == exerciseID {
			n++
			state.sets[i].SetNumber = n
		}
	}
	return removed, nil
}

// setsFor returns a copy of the locally logged sets for a session.
func (s *planStore) setsFor(sessionID uuid.UUID) ([]ExerciseSet, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	state, ok := s.sessions[sessionID]
	if !ok {
		return nil, fmt.Errorf("session %s: %w", sessionID, ErrNotFound)
	}
	sets := make([]ExerciseSet, len(state.sets))
	copy(sets, state.sets)
	return sets, nil
}

// setCountFor tallies the locally logged sets for one exercise in a session.
func (s *planStore) setCountFor(sessionID uuid.UUID, exerciseID int64) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	state, ok := s.sessions[sessionID]
	if !ok {
		return 0
	}
	n := 0
	for _, set := range state.sets {
		if set.ExerciseID == exerciseID {
			n++
		}
	}
	return n
}

// drop discards a session's state once the workout completes or is
// abandoned.
func (s *planStore) drop(sessionID uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionID)
}
