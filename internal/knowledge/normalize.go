package knowledge

import "strings"

// Canonical muscle group names. Every lookup key in this package uses one of
// these ten values.
const (
	GroupChest      = "chest"
	GroupBack       = "back"
	GroupShoulders  = "shoulders"
	GroupQuads      = "quads"
	GroupHamstrings = "hamstrings"
	GroupGlutes     = "glutes"
	GroupBiceps     = "biceps"
	GroupTriceps    = "triceps"
	GroupCalves     = "calves"
	GroupCore       = "core"
)

// muscleGroupAliases maps free-text variants to the canonical taxonomy.
var muscleGroupAliases = map[string]string{
	"chest":       GroupChest,
	"pecs":        GroupChest,
	"pectorals":   GroupChest,
	"back":        GroupBack,
	"lats":        GroupBack,
	"upper back":  GroupBack,
	"mid back":    GroupBack,
	"traps":       GroupBack,
	"shoulders":   GroupShoulders,
	"shoulder":    GroupShoulders,
	"delts":       GroupShoulders,
	"deltoids":    GroupShoulders,
	"rear delts":  GroupShoulders,
	"side delts":  GroupShoulders,
	"front delts": GroupShoulders,
	"quads":       GroupQuads,
	"quad":        GroupQuads,
	"quadriceps":  GroupQuads,
	"legs":        GroupQuads,
	"hamstrings":  GroupHamstrings,
	"hamstring":   GroupHamstrings,
	"hams":        GroupHamstrings,
	"glutes":      GroupGlutes,
	"glute":       GroupGlutes,
	"butt":        GroupGlutes,
	"biceps":      GroupBiceps,
	"bicep":       GroupBiceps,
	"triceps":     GroupTriceps,
	"tricep":      GroupTriceps,
	"arms":        GroupBiceps,
	"calves":      GroupCalves,
	"calf":        GroupCalves,
	"core":        GroupCore,
	"abs":         GroupCore,
	"abdominals":  GroupCore,
	"obliques":    GroupCore,
}

// NormalizeMuscleGroup maps free-text muscle group input to the canonical
// ten-element taxonomy. Unrecognized input passes through lowercased so
// downstream lookups fail soft rather than panicking on unknown keys.
func NormalizeMuscleGroup(raw string) string {
	cleaned := strings.ToLower(strings.TrimSpace(raw))
	if canonical, ok := muscleGroupAliases[cleaned]; ok {
		return canonical
	}
	return cleaned
}
