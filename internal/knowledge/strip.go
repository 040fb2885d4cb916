package knowledge

import (
	"regexp"
	"strings"
)

// Research notes imported from the source material carry citation artifacts
// like "contentReference[oaicite:3]" and "{index=3}". They are noise in any
// user-facing string, so narrative fields are cleaned on load and on lookup.
var (
	citationMarkerPattern = regexp.MustCompile(`:?contentReference\[[^\]]*\]`)
	indexMarkerPattern    = regexp.MustCompile(`\{index=\d+\}`)
	parentheticalPattern  = regexp.MustCompile(`\([^)]*\)`)
	repeatedSpacePattern  = regexp.MustCompile(`\s{2,}`)
)

// StripCitations removes citation-marker artifacts from a narrative string
// and collapses the whitespace they leave behind.
func StripCitations(text string) string {
	cleaned := citationMarkerPattern.ReplaceAllString(text, "")
	cleaned = indexMarkerPattern.ReplaceAllString(cleaned, "")
	cleaned = repeatedSpacePattern.ReplaceAllString(cleaned, " ")
	return strings.TrimSpace(cleaned)
}

// stripParenthetical drops parenthetical qualifiers such as "(barbell)" so
// that name matching compares the base exercise name.
func stripParenthetical(name string) string {
	return strings.TrimSpace(parentheticalPattern.ReplaceAllString(name, ""))
}
