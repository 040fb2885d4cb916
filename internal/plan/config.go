package plan

// Config exposes the plan generation tunables. The defaults reproduce the
// heuristic the coaching staff validated; treat them as a starting point,
// not gospel.
type Config struct {
	// MaxCompounds and MaxIsolations cap selection per muscle group.
	MaxCompounds  int
	MaxIsolations int

	// FirstCompoundSets and SecondCompoundSets are the target sets for the
	// first and second compound picked for a group.
	FirstCompoundSets  int
	SecondCompoundSets int

	// MinIsolationSets floors the per-isolation set count after the
	// remaining-volume split.
	MinIsolationSets int

	// CompoundRestSeconds and IsolationRestSeconds are the prescribed rest
	// periods.
	CompoundRestSeconds  int
	IsolationRestSeconds int

	// FallbackWeeklySets is the weekly target when no landmark data exists
	// for a muscle group.
	FallbackWeeklySets int

	// WarmupMinutes and CooldownMinutes pad the duration estimate.
	WarmupMinutes   int
	CooldownMinutes int

	// RecencySessions and RecencyWindowDays bound the substitute recency
	// exclusion: whichever covers fewer sessions wins.
	RecencySessions   int
	RecencyWindowDays int

	// VolumePRWindowDays is the trailing window for volume PR comparisons.
	VolumePRWindowDays int
}

// DefaultConfig returns the validated defaults.
func DefaultConfig() Config {
	return Config{
		MaxCompounds:         2,
		MaxIsolations:        2,
		FirstCompoundSets:    4,
		SecondCompoundSets:   3,
		MinIsolationSets:     2,
		CompoundRestSeconds:  180,
		IsolationRestSeconds: 90,
		FallbackWeeklySets:   16,
		WarmupMinutes:        5,
		CooldownMinutes:      5,
		RecencySessions:      3,
		RecencyWindowDays:    14,
		VolumePRWindowDays:   30,
	}
}
