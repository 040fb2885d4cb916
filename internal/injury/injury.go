// Package injury classifies exercises against a fixed injury taxonomy.
//
// Free-text injury descriptions are parsed into tags with a best-effort
// keyword classifier; exercises are then graded safe, caution, or avoid by
// name containment against per-tag rule lists. All lookups are pure and safe
// for concurrent use.
package injury

import (
	"strings"

	"github.com/SiedahmedM/Saif-sub000/internal/knowledge"
)

// Tag is a normalized injury area. The taxonomy is fixed at five values.
type Tag string

// Injury taxonomy.
const (
	TagShoulder  Tag = "shoulder"
	TagLowerBack Tag = "lower_back"
	TagKnee      Tag = "knee"
	TagElbow     Tag = "elbow"
	TagWrist     Tag = "wrist"
)

// tagOrder fixes the iteration order for parsing and rule evaluation so
// results are deterministic regardless of input phrasing.
var tagOrder = []Tag{TagShoulder, TagLowerBack, TagKnee, TagElbow, TagWrist}

// Status grades an exercise for a set of injuries. Higher is worse.
type Status int

// Status levels, ordered so that worst-wins comparisons are <.
const (
	StatusSafe Status = iota
	StatusCaution
	StatusAvoid
)

func (s Status) String() string {
	switch s {
	case StatusCaution:
		return "caution"
	case StatusAvoid:
		return "avoid"
	default:
		return "safe"
	}
}

// Assessment is the safety grade for a single exercise. Note carries the
// modification guidance of the rule that decided the status; it is empty for
// safe exercises.
type Assessment struct {
	ExerciseName string
	Status       Status
	Note         string
}

// Candidate pairs an exercise's research detail with its safety assessment.
type Candidate struct {
	Detail knowledge.ExerciseDetail
	Status Status
	Note   string
}

// parseKeywords maps free-text fragments to tags. Matching is substring
// containment on the lowercased input.
var parseKeywords = map[Tag][]string{
	TagShoulder:  {"shoulder", "rotator", "cuff", "impingement", "labrum", "ac joint"},
	TagLowerBack: {"lower back", "low back", "lumbar", "disc", "spine", "sciatica", "herniat"},
	TagKnee:      {"knee", "acl", "mcl", "meniscus", "patell"},
	TagElbow:     {"elbow", "epicondyl", "tennis elbow", "golfer"},
	TagWrist:     {"wrist", "carpal"},
}

// ParseInjuries maps a free-text injury description to the fixed taxonomy.
// It is a best-effort keyword classifier: it never fails, empty input yields
// an empty list, and each tag appears at most once in taxonomy order.
func ParseInjuries(freeText string) []Tag {
	text := strings.ToLower(freeText)
	if strings.TrimSpace(text) == "" {
		return nil
	}

	var tags []Tag
	for _, tag := range tagOrder {
		for _, keyword := range parseKeywords[tag] {
			if strings.Contains(text, keyword) {
				tags = append(tags, tag)
				break
			}
		}
	}
	return tags
}

// Assess grades one exercise against a set of injury tags. Worst status
// wins; when several rules produce the final status, the first one in
// taxonomy-filtered input order decides the note.
func Assess(exerciseName string, tags []Tag) Assessment {
	name := strings.ToLower(exerciseName)
	result := Assessment{ExerciseName: exerciseName, Status: StatusSafe}

	for _, tag := range tags {
		rule, ok := ruleTable[tag]
		if !ok {
			continue
		}
		status := StatusSafe
		if matchesAny(name, rule.avoid) {
			status = StatusAvoid
		} else if matchesAny(name, rule.caution) {
			status = StatusCaution
		}
		if status > result.Status {
			result.Status = status
			result.Note = rule.note
		}
	}
	return result
}

// FilterCandidates grades each candidate and drops the avoid-graded ones.
// This is the plan-generation path: the result is safe to select from
// directly. Use ClassifyAll when avoid entries must remain visible.
func FilterCandidates(candidates []knowledge.ExerciseDetail, tags []Tag) []Candidate {
	var kept []Candidate
	for _, c := range ClassifyAll(candidates, tags) {
		if c.Status == StatusAvoid {
			continue
		}
		kept = append(kept, c)
	}
	return kept
}

// ClassifyAll grades every candidate without excluding any, preserving input
// order. This is the display path: callers badge avoid entries rather than
// hiding them.
func ClassifyAll(candidates []knowledge.ExerciseDetail, tags []Tag) []Candidate {
	graded := make([]Candidate, 0, len(candidates))
	for _, detail := range candidates {
		assessment := Assess(detail.Name, tags)
		graded = append(graded, Candidate{
			Detail: detail,
			Status: assessment.Status,
			Note:   assessment.Note,
		})
	}
	return graded
}

// SafeSubstitutes lists the preferred substitute exercises for the given
// tags, deduplicated, in taxonomy order.
func SafeSubstitutes(tags []Tag) []string {
	seen := make(map[string]struct{})
	var subs []string
	for _, tag := range orderedSubset(tags) {
		for _, sub := range ruleTable[tag].substitutes {
			if _, dup := seen[sub]; dup {
				continue
			}
			seen[sub] = struct{}{}
			subs = append(subs, sub)
		}
	}
	return subs
}

// ModificationNotes lists the modification guidance for the given tags in
// taxonomy order.
func ModificationNotes(tags []Tag) []string {
	var notes []string
	for _, tag := range orderedSubset(tags) {
		notes = append(notes, ruleTable[tag].note)
	}
	return notes
}

// orderedSubset returns the tags that have rules, in taxonomy order, deduped.
func orderedSubset(tags []Tag) []Tag {
	present := make(map[Tag]struct{}, len(tags))
	for _, tag := range tags {
		present[tag] = struct{}{}
	}
	var ordered []Tag
	for _, tag := range tagOrder {
		if _, ok := present[tag]; ok {
			ordered = append(ordered, tag)
		}
	}
	return ordered
}

func matchesAny(name string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(name, keyword) {
			return true
		}
	}
	return false
}
