package knowledge

// exerciseTable is the built-in exercise research data. Narrative strings
// retain the citation artifacts of the source material; NewProvider strips
// them before the data is served.
var exerciseTable = []ExerciseDetail{
	// Chest.
	{
		Name: "Barbell Bench Press", MuscleGroup: GroupChest, Equipment: "barbell", IsCompound: true,
		Hypertrophy: Rating{Score: 4, Description: "Top-tier pec builder when taken close to failure"},
		Strength:    Rating{Score: 4, Description: "The canonical upper-body strength lift"},
		Power:       Rating{Score: 3, Description: "Responds well to speed work at moderate loads"},
		SafetyLevel: SafetyMedium,
		EMGActivation: "Mid-pec activation peaks near lockout with heavy triceps " +
			"co-activation :contentReference[oaicite:0]{index=0}",
		InjuryRisk:      "Shoulder strain when the bar path drifts toward the neck",
		ProgressionPath: "Add 2.5 kg when all sets hit the top of the rep range",
	},
	{
		Name: "Incline Dumbbell Press", MuscleGroup: GroupChest, Equipment: "dumbbell", IsCompound: true,
		Hypertrophy: Rating{Score: 4, Description: "Biases the clavicular pec head that flat pressing misses"},
		Strength:    Rating{Score: 3, Description: "Solid overload with a friendlier shoulder position"},
		Power:       Rating{Score: 2, Description: "Limited by dumbbell stabilization demands"},
		SafetyLevel: SafetyMedium,
		EMGActivation: "Upper-pec EMG rises sharply at a 30 degree bench angle " +
			":contentReference[oaicite:1]{index=1}",
		InjuryRisk:      "Elbow flare increases anterior shoulder stress",
		ProgressionPath: "Progress dumbbells in 2 kg jumps, reps before load",
	},
	{
		Name: "Cable Crossover", MuscleGroup: GroupChest, Equipment: "cable", IsCompound: false,
		Hypertrophy: Rating{Score: 3, Description: "Constant tension through the full adduction arc"},
		Strength:    Rating{Score: 2, Description: "Load ceiling too low to drive strength"},
		Power:       Rating{Score: 1, Description: "Not a power movement"},
		SafetyLevel: SafetyHigh,
		EMGActivation: "Sternal pec fibers stay loaded in the stretched position " +
			"{index=2}",
		InjuryRisk:      "Minimal; joint-friendly at any angle",
		ProgressionPath: "Add a stack plate once 15 clean reps feel controlled",
	},
	{
		Name: "Push-Up", MuscleGroup: GroupChest, Equipment: "bodyweight", IsCompound: true,
		Hypertrophy: Rating{Score: 2, Description: "Effective early on, load-limited later"},
		Strength:    Rating{Score: 2, Description: "Useful volume tool rather than a strength driver"},
		Power:       Rating{Score: 2, Description: "Plyo variations train pressing speed"},
		SafetyLevel: SafetyHigh,
		EMGActivation: "Comparable pec activation to bench press at matched effort",
		InjuryRisk:      "Low; wrist discomfort under high volume",
		ProgressionPath: "Elevate feet, then add a weighted vest",
	},

	// Back.
	{
		Name: "Pull-Up", MuscleGroup: GroupBack, Equipment: "bodyweight", IsCompound: true,
		Hypertrophy: Rating{Score: 4, Description: "Lat width staple with a deep loaded stretch"},
		Strength:    Rating{Score: 4, Description: "Scales far beyond bodyweight with added load"},
		Power:       Rating{Score: 2, Description: "Occasionally trained explosively"},
		SafetyLevel: SafetyMedium,
		EMGActivation: "Highest lat EMG of the common vertical pulls " +
			":contentReference[oaicite:2]{index=2}",
		InjuryRisk:      "Elbow tendon irritation with aggressive kipping",
		ProgressionPath: "Band assistance to bodyweight to weighted",
	},
	{
		Name: "Barbell Row", MuscleGroup: GroupBack, Equipment: "barbell", IsCompound: true,
		Hypertrophy: Rating{Score: 4, Description: "Mid-back mass builder under heavy load"},
		Strength:    Rating{Score: 4, Description: "Carries over directly to deadlift positioning"},
		Power:       Rating{Score: 2, Description: "Explosive rows trade stimulus for momentum"},
		SafetyLevel: SafetyLow,
		EMGActivation: "Strong lat and mid-trap recruitment in the hinge position",
		InjuryRisk:      "Lumbar stress when the torso angle creeps upward under fatigue",
		ProgressionPath: "Hold 45 degree torso angle before chasing load",
	},
	{
		Name: "Lat Pulldown", MuscleGroup: GroupBack, Equipment: "machine", IsCompound: true,
		Hypertrophy: Rating{Score: 3, Description: "Precise lat loading across any strength level"},
		Strength:    Rating{Score: 2, Description: "Stack-limited for stronger lifters"},
		Power:       Rating{Score: 1, Description: "Not a power movement"},
		SafetyLevel: SafetyHigh,
		EMGActivation: "Medium-width pronated grip maximizes lat EMG {index=4}",
		InjuryRisk:      "Minimal with a neutral spine",
		ProgressionPath: "Small stack jumps; pause at the chest for control",
	},
	{
		Name: "Chest-Supported Row", MuscleGroup: GroupBack, Equipment: "machine", IsCompound: true,
		Hypertrophy: Rating{Score: 4, Description: "Row stimulus with the lower back taken out entirely"},
		Strength:    Rating{Score: 3, Description: "Strict overload without hinge fatigue"},
		Power:       Rating{Score: 1, Description: "Not a power movement"},
		SafetyLevel: SafetyHigh,
		EMGActivation: "Matches free-weight row EMG with less erector involvement",
		InjuryRisk:      "Minimal; the pad absorbs shear",
		ProgressionPath: "Add load whenever all sets reach the rep ceiling",
	},
	{
		Name: "Seated Cable Row", MuscleGroup: GroupBack, Equipment: "cable", IsCompound: true,
		Hypertrophy: Rating{Score: 3, Description: "Smooth constant-tension mid-back work"},
		Strength:    Rating{Score: 3, Description: "Good overload with strict torso position"},
		Power:       Rating{Score: 1, Description: "Not a power movement"},
		SafetyLevel: SafetyHigh,
		EMGActivation: "Balanced lat, rhomboid, and trap recruitment",
		InjuryRisk:      "Low-back rounding when reaching too far forward",
		ProgressionPath: "Progress stack plates with a 1 s squeeze",
	},

	// Shoulders.
	{
		Name: "Overhead Press", MuscleGroup: GroupShoulders, Equipment: "barbell", IsCompound: true,
		Hypertrophy: Rating{Score: 4, Description: "Front-delt mass anchor for pressing strength"},
		Strength:    Rating{Score: 4, Description: "The overhead strength standard"},
		Power:       Rating{Score: 3, Description: "Push-press variation trains drive"},
		SafetyLevel: SafetyMedium,
		EMGActivation: "Anterior delt EMG exceeds lateral raise at matched effort " +
			":contentReference[oaicite:5]{index=5}",
		InjuryRisk:      "Demands overhead mobility; impingement risk when it is lacking",
		ProgressionPath: "Microload 1-2.5 kg; overhead progress is slow",
	},
	{
		Name: "Landmine Press", MuscleGroup: GroupShoulders, Equipment: "barbell", IsCompound: true,
		Hypertrophy: Rating{Score: 3, Description: "Shoulder-friendly pressing arc"},
		Strength:    Rating{Score: 3, Description: "Loadable in a scapular-plane path"},
		Power:       Rating{Score: 2, Description: "Works for explosive single-arm pressing"},
		SafetyLevel: SafetyHigh,
		EMGActivation: "Delt activation close to overhead press with less joint stress",
		InjuryRisk:      "Low; the arc avoids end-range abduction",
		ProgressionPath: "Add small plates to the sleeve end",
	},
	{
		Name: "Lateral Raise", MuscleGroup: GroupShoulders, Equipment: "dumbbell", IsCompound: false,
		Hypertrophy: Rating{Score: 4, Description: "The direct path to side-delt width"},
		Strength:    Rating{Score: 1, Description: "Not a strength movement"},
		Power:       Rating{Score: 1, Description: "Not a power movement"},
		SafetyLevel: SafetyHigh,
		EMGActivation: "Lateral delt EMG peaks between 60 and 120 degrees of abduction {index=6}",
		InjuryRisk:      "Traps take over when loads get heavy",
		ProgressionPath: "Reps 10 to 20 before any load jump",
	},
	{
		Name: "Rear Delt Fly", MuscleGroup: GroupShoulders, Equipment: "cable", IsCompound: false,
		Hypertrophy: Rating{Score: 3, Description: "Targets the chronically undertrained posterior head"},
		Strength:    Rating{Score: 1, Description: "Not a strength movement"},
		Power:       Rating{Score: 1, Description: "Not a power movement"},
		SafetyLevel: SafetyHigh,
		EMGActivation: "Posterior delt isolation with minimal lat takeover on cables",
		InjuryRisk:      "Minimal",
		ProgressionPath: "High reps, slow eccentrics, tiny load jumps",
	},
	{
		Name: "Upright Row", MuscleGroup: GroupShoulders, Equipment: "barbell", IsCompound: true,
		Hypertrophy: Rating{Score: 3, Description: "Hits lateral delts and traps together"},
		Strength:    Rating{Score: 2, Description: "Secondary strength value at best"},
		Power:       Rating{Score: 2, Description: "A pulling pattern precursor to cleans"},
		SafetyLevel: SafetyLow,
		EMGActivation: "High lateral delt and upper trap EMG above elbow height",
		InjuryRisk:      "Internal rotation under load aggravates impingement-prone shoulders",
		ProgressionPath: "Keep the bar below collarbone height; add load sparingly",
	},

	// Quads.
	{
		Name: "Back Squat", MuscleGroup: GroupQuads, Equipment: "barbell", IsCompound: true,
		Hypertrophy: Rating{Score: 4, Description: "Whole-lower-body growth driver"},
		Strength:    Rating{Score: 4, Description: "The lower-body strength standard"},
		Power:       Rating{Score: 4, Description: "Foundation for jump and sprint output"},
		SafetyLevel: SafetyMedium,
		EMGActivation: "Quad EMG scales with depth; glutes dominate out of the hole " +
			":contentReference[oaicite:7]{index=7}",
		InjuryRisk:      "Spinal loading punishes technique breakdown",
		ProgressionPath: "Linear 2.5 kg jumps while bar speed holds",
	},
	{
		Name: "Leg Press", MuscleGroup: GroupQuads, Equipment: "machine", IsCompound: true,
		Hypertrophy: Rating{Score: 4, Description: "Heavy quad volume without spinal load"},
		Strength:    Rating{Score: 3, Description: "Big loads, smaller carryover"},
		Power:       Rating{Score: 2, Description: "Sled momentum limits power transfer"},
		SafetyLevel: SafetyHigh,
		EMGActivation: "Narrow low foot placement biases quads over glutes",
		InjuryRisk:      "Lumbar flexion when depth exceeds hip mobility",
		ProgressionPath: "Plate jumps each side once the top of the range is owned",
	},
	{
		Name: "Leg Extension", MuscleGroup: GroupQuads, Equipment: "machine", IsCompound: false,
		Hypertrophy: Rating{Score: 3, Description: "Only lift that fully shortens the rectus femoris"},
		Strength:    Rating{Score: 1, Description: "Not a strength movement"},
		Power:       Rating{Score: 1, Description: "Not a power movement"},
		SafetyLevel: SafetyMedium,
		EMGActivation: "Distal quad EMG peaks at full knee extension {index=8}",
		InjuryRisk:      "Patellar tendon stress at heavy loads and fast tempos",
		ProgressionPath: "High reps with a hard 1 s squeeze at lockout",
	},
	{
		Name: "Walking Lunge", MuscleGroup: GroupQuads, Equipment: "dumbbell", IsCompound: true,
		Hypertrophy: Rating{Score: 3, Description: "Unilateral quad and glute stimulus with a stretch"},
		Strength:    Rating{Score: 2, Description: "Balance limits loading"},
		Power:       Rating{Score: 2, Description: "Useful for athletic single-leg drive"},
		SafetyLevel: SafetyMedium,
		EMGActivation: "Long strides bias glutes, short strides bias quads",
		InjuryRisk:      "Knee tracking errors under fatigue",
		ProgressionPath: "Add dumbbell load once 12 steps per leg are stable",
	},

	// Hamstrings.
	{
		Name: "Romanian Deadlift", MuscleGroup: GroupHamstrings, Equipment: "barbell", IsCompound: true,
		Hypertrophy: Rating{Score: 4, Description: "Loaded hamstring stretch, the top growth signal"},
		Strength:    Rating{Score: 4, Description: "Posterior-chain strength staple"},
		Power:       Rating{Score: 3, Description: "Hinge pattern feeds jumps and pulls"},
		SafetyLevel: SafetyMedium,
		EMGActivation: "Peak hamstring EMG arrives in the deep hinge position " +
			":contentReference[oaicite:9]{index=9}",
		InjuryRisk:      "Lumbar rounding at depth is the failure mode",
		ProgressionPath: "Load when the stretch position stays flat-backed",
	},
	{
		Name: "Lying Leg Curl", MuscleGroup: GroupHamstrings, Equipment: "machine", IsCompound: false,
		Hypertrophy: Rating{Score: 3, Description: "Trains knee flexion the hinge lifts skip"},
		Strength:    Rating{Score: 1, Description: "Not a strength movement"},
		Power:       Rating{Score: 1, Description: "Not a power movement"},
		SafetyLevel: SafetyHigh,
		EMGActivation: "Short-head biceps femoris activation unmatched by hinges {index=10}",
		InjuryRisk:      "Minimal",
		ProgressionPath: "Slow eccentrics before stack jumps",
	},
	{
		Name: "Good Morning", MuscleGroup: GroupHamstrings, Equipment: "barbell", IsCompound: true,
		Hypertrophy: Rating{Score: 3, Description: "Hinge overload through a long lever"},
		Strength:    Rating{Score: 3, Description: "Builds the squat and deadlift bottom position"},
		Power:       Rating{Score: 2, Description: "Occasionally programmed for speed"},
		SafetyLevel: SafetyLow,
		EMGActivation: "Heavy erector and hamstring co-activation throughout",
		InjuryRisk:      "Unforgiving of lumbar flexion; keep loads conservative",
		ProgressionPath: "Own 10 strict reps before any load jump",
	},

	// Glutes.
	{
		Name: "Hip Thrust", MuscleGroup: GroupGlutes, Equipment: "barbell", IsCompound: true,
		Hypertrophy: Rating{Score: 4, Description: "Peak glute tension at full hip extension"},
		Strength:    Rating{Score: 3, Description: "Heavy loading with a short learning curve"},
		Power:       Rating{Score: 3, Description: "Hip extension power transfers to sprinting"},
		SafetyLevel: SafetyHigh,
		EMGActivation: "Highest glute max EMG of common loaded movements " +
			":contentReference[oaicite:11]{index=11}",
		InjuryRisk:      "Minimal with a neutral pelvis at lockout",
		ProgressionPath: "Add plates; pause 1 s at the top",
	},
	{
		Name: "Glute Bridge", MuscleGroup: GroupGlutes, Equipment: "bodyweight", IsCompound: false,
		Hypertrophy: Rating{Score: 2, Description: "Entry-level glute activation work"},
		Strength:    Rating{Score: 1, Description: "Not a strength movement"},
		Power:       Rating{Score: 1, Description: "Not a power movement"},
		SafetyLevel: SafetyHigh,
		EMGActivation: "Solid glute activation with negligible spinal load",
		InjuryRisk:      "Minimal",
		ProgressionPath: "Progress to single-leg, then to barbell hip thrust",
	},
	{
		Name: "Bulgarian Split Squat", MuscleGroup: GroupGlutes, Equipment: "dumbbell", IsCompound: true,
		Hypertrophy: Rating{Score: 4, Description: "Deep unilateral stretch for glutes and quads"},
		Strength:    Rating{Score: 3, Description: "Single-leg strength at modest absolute loads"},
		Power:       Rating{Score: 2, Description: "Split-stance drive for field athletes"},
		SafetyLevel: SafetyMedium,
		EMGActivation: "Forward lean shifts EMG from quads toward glute max {index=12}",
		InjuryRisk:      "Knee tracking and balance demands",
		ProgressionPath: "Dumbbells in 2 kg jumps after both legs match reps",
	},

	// Biceps.
	{
		Name: "Barbell Curl", MuscleGroup: GroupBiceps, Equipment: "barbell", IsCompound: false,
		Hypertrophy: Rating{Score: 3, Description: "The heaviest direct elbow-flexion overload"},
		Strength:    Rating{Score: 2, Description: "Strength here is mostly hypertrophy side effect"},
		Power:       Rating{Score: 1, Description: "Not a power movement"},
		SafetyLevel: SafetyMedium,
		EMGActivation: "Biceps brachii EMG peaks at mid-range under straight-bar load",
		InjuryRisk:      "Fixed supination can aggravate wrists and elbows",
		ProgressionPath: "Microload; cheat reps mean the load beat you",
	},
	{
		Name: "Incline Dumbbell Curl", MuscleGroup: GroupBiceps, Equipment: "dumbbell", IsCompound: false,
		Hypertrophy: Rating{Score: 4, Description: "Long-head stretch the standing curl cannot reach"},
		Strength:    Rating{Score: 1, Description: "Not a strength movement"},
		Power:       Rating{Score: 1, Description: "Not a power movement"},
		SafetyLevel: SafetyHigh,
		EMGActivation: "Long-head activation rises with shoulder extension behind the torso {index=13}",
		InjuryRisk:      "Minimal at controlled tempos",
		ProgressionPath: "Reps 8 to 15, then the next dumbbell pair",
	},
	{
		Name: "Hammer Curl", MuscleGroup: GroupBiceps, Equipment: "dumbbell", IsCompound: false,
		Hypertrophy: Rating{Score: 3, Description: "Brachialis and forearm thickness builder"},
		Strength:    Rating{Score: 2, Description: "Neutral grip allows heavier loads"},
		Power:       Rating{Score: 1, Description: "Not a power movement"},
		SafetyLevel: SafetyHigh,
		EMGActivation: "Neutral grip shifts load toward brachialis and brachioradialis",
		InjuryRisk:      "Gentlest curl on wrists and elbows",
		ProgressionPath: "Standard dumbbell jumps",
	},
	{
		Name: "Preacher Curl", MuscleGroup: GroupBiceps, Equipment: "machine", IsCompound: false,
		Hypertrophy: Rating{Score: 3, Description: "Strict short-head work with zero body english"},
		Strength:    Rating{Score: 1, Description: "Not a strength movement"},
		Power:       Rating{Score: 1, Description: "Not a power movement"},
		SafetyLevel: SafetyMedium,
		EMGActivation: "Tension concentrated in the stretched bottom half",
		InjuryRisk:      "Distal biceps strain if the bottom is bounced",
		ProgressionPath: "Control the bottom 3 s before adding load",
	},

	// Triceps.
	{
		Name: "Close-Grip Bench Press", MuscleGroup: GroupTriceps, Equipment: "barbell", IsCompound: true,
		Hypertrophy: Rating{Score: 4, Description: "Heaviest triceps overload available"},
		Strength:    Rating{Score: 4, Description: "Direct carryover to pressing lockout"},
		Power:       Rating{Score: 2, Description: "Secondary power value"},
		SafetyLevel: SafetyMedium,
		EMGActivation: "Triceps EMG rises as grip narrows to shoulder width {index=14}",
		InjuryRisk:      "Wrist and elbow stress with an overly narrow grip",
		ProgressionPath: "Train it like bench: small jumps, full lockouts",
	},
	{
		Name: "Skull Crusher", MuscleGroup: GroupTriceps, Equipment: "barbell", IsCompound: false,
		Hypertrophy: Rating{Score: 4, Description: "Long-head stretch under meaningful load"},
		Strength:    Rating{Score: 2, Description: "Assistance value for lockout strength"},
		Power:       Rating{Score: 1, Description: "Not a power movement"},
		SafetyLevel: SafetyLow,
		EMGActivation: "Long-head emphasis grows as the bar lowers behind the head",
		InjuryRisk:      "Notorious elbow aggravator under fatigue",
		ProgressionPath: "Keep 2 reps in reserve; elbows pay for failure reps",
	},
	{
		Name: "Triceps Pushdown", MuscleGroup: GroupTriceps, Equipment: "cable", IsCompound: false,
		Hypertrophy: Rating{Score: 3, Description: "Lateral-head pump work with easy joints"},
		Strength:    Rating{Score: 1, Description: "Not a strength movement"},
		Power:       Rating{Score: 1, Description: "Not a power movement"},
		SafetyLevel: SafetyHigh,
		EMGActivation: "Lateral head dominates with elbows pinned at the sides",
		InjuryRisk:      "Minimal",
		ProgressionPath: "Stack jumps once 15 strict reps are routine",
	},
	{
		Name: "Overhead Triceps Extension", MuscleGroup: GroupTriceps, Equipment: "cable", IsCompound: false,
		Hypertrophy: Rating{Score: 4, Description: "Maximal long-head stretch of any extension"},
		Strength:    Rating{Score: 1, Description: "Not a strength movement"},
		Power:       Rating{Score: 1, Description: "Not a power movement"},
		SafetyLevel: SafetyMedium,
		EMGActivation: "Overhead position lengthens the long head for a larger stimulus {index=15}",
		InjuryRisk:      "Elbow discomfort for some lifters in full flexion",
		ProgressionPath: "High reps, slow lowering, small jumps",
	},

	// Calves.
	{
		Name: "Standing Calf Raise", MuscleGroup: GroupCalves, Equipment: "machine", IsCompound: false,
		Hypertrophy: Rating{Score: 3, Description: "Gastrocnemius loading with a straight knee"},
		Strength:    Rating{Score: 2, Description: "Ankle strength for jumps and sprints"},
		Power:       Rating{Score: 2, Description: "Stiffness work for reactive athletes"},
		SafetyLevel: SafetyHigh,
		EMGActivation: "Gastroc EMG peaks with full stretch and a paused top",
		InjuryRisk:      "Achilles irritation with bounced reps",
		ProgressionPath: "Pause 2 s at stretch; then add stack plates",
	},
	{
		Name: "Seated Calf Raise", MuscleGroup: GroupCalves, Equipment: "machine", IsCompound: false,
		Hypertrophy: Rating{Score: 3, Description: "Isolates the soleus with a bent knee"},
		Strength:    Rating{Score: 1, Description: "Not a strength movement"},
		Power:       Rating{Score: 1, Description: "Not a power movement"},
		SafetyLevel: SafetyHigh,
		EMGActivation: "Bent knee shifts load from gastrocnemius to soleus {index=16}",
		InjuryRisk:      "Minimal",
		ProgressionPath: "High reps; the soleus is slow-twitch dominant",
	},

	// Core.
	{
		Name: "Cable Crunch", MuscleGroup: GroupCore, Equipment: "cable", IsCompound: false,
		Hypertrophy: Rating{Score: 3, Description: "Loaded spinal flexion for visible ab thickness"},
		Strength:    Rating{Score: 2, Description: "Trunk flexion strength under load"},
		Power:       Rating{Score: 1, Description: "Not a power movement"},
		SafetyLevel: SafetyHigh,
		EMGActivation: "Rectus abdominis EMG exceeds unweighted crunch variations",
		InjuryRisk:      "Minimal with hips fixed",
		ProgressionPath: "Stack jumps once 15 strict reps are routine",
	},
	{
		Name: "Hanging Leg Raise", MuscleGroup: GroupCore, Equipment: "bodyweight", IsCompound: false,
		Hypertrophy: Rating{Score: 3, Description: "Lower-ab emphasis with grip and lat involvement"},
		Strength:    Rating{Score: 2, Description: "Anterior chain control"},
		Power:       Rating{Score: 1, Description: "Not a power movement"},
		SafetyLevel: SafetyMedium,
		EMGActivation: "Lower rectus activation peaks with posterior pelvic tilt {index=17}",
		InjuryRisk:      "Hip flexor takeover when swung",
		ProgressionPath: "Knee raise to straight leg to toes-to-bar",
	},
	{
		Name: "Plank", MuscleGroup: GroupCore, Equipment: "bodyweight", IsCompound: false,
		Hypertrophy: Rating{Score: 1, Description: "Endurance stimulus, little growth"},
		Strength:    Rating{Score: 2, Description: "Anti-extension stability baseline"},
		Power:       Rating{Score: 1, Description: "Not a power movement"},
		SafetyLevel: SafetyHigh,
		EMGActivation: "Submaximal but sustained deep-core activation",
		InjuryRisk:      "Minimal",
		ProgressionPath: "Add load on the back before adding time past 60 s",
	},
}
