package injury

// rule holds the static classification lists for one injury tag. Avoid and
// caution entries are lowercase name fragments matched by containment
// against the exercise name.
type rule struct {
	avoid       []string
	caution     []string
	substitutes []string
	note        string
}

var ruleTable = map[Tag]rule{
	TagShoulder: {
		avoid:       []string{"overhead press", "upright row", "behind the neck"},
		caution:     []string{"bench press", "incline", "dip", "lateral raise", "pull-up"},
		substitutes: []string{"Landmine Press", "Chest-Supported Row", "Cable Crossover"},
		note:        "Keep pressing below shoulder height and stop short of painful end range",
	},
	TagLowerBack: {
		avoid:       []string{"good morning", "deadlift"},
		caution:     []string{"squat", "barbell row", "hip thrust", "hanging leg raise"},
		substitutes: []string{"Chest-Supported Row", "Leg Press", "Lying Leg Curl"},
		note:        "Brace before every rep and end any set where the lower back rounds",
	},
	TagKnee: {
		avoid:       []string{"lunge", "bulgarian split squat", "leg extension"},
		caution:     []string{"squat", "leg press", "calf raise"},
		substitutes: []string{"Romanian Deadlift", "Hip Thrust", "Lying Leg Curl"},
		note:        "Work in a pain-free depth and keep tempos slow and controlled",
	},
	TagElbow: {
		avoid:       []string{"skull crusher", "preacher curl"},
		caution:     []string{"close-grip bench", "barbell curl", "overhead triceps", "pull-up"},
		substitutes: []string{"Triceps Pushdown", "Hammer Curl", "Cable Crossover"},
		note:        "Favor neutral grips and leave two reps in reserve on arm work",
	},
	TagWrist: {
		avoid:       []string{"upright row", "barbell curl"},
		caution:     []string{"bench press", "push-up", "overhead press", "skull crusher"},
		substitutes: []string{"Hammer Curl", "Cable Crossover", "Triceps Pushdown"},
		note:        "Keep wrists stacked over forearms and prefer neutral-grip implements",
	},
}
