package metabolic

import "math"

type Sex string

const (
	SexMale   Sex = "male"
	SexFemale Sex = "female"
)

type ActivityLevel string

const (
	ActivitySedentary ActivityLevel = "sedentary"
	ActivityLight     ActivityLevel = "light"
	ActivityModerate  ActivityLevel = "moderate"
	ActivityVery      ActivityLevel = "very"
	ActivityExtra     ActivityLevel = "extra"
)

type Goal string

const (
	GoalCut      Goal = "cut"
	GoalMaintain Goal = "maintain"
	GoalBulk     Goal = "bulk"
)

// activityMultipliers is the single source of truth for valid activity
// levels - also used for input validation when profiles are updated.
var activityMultipliers = map[ActivityLevel]float64{
	ActivitySedentary: 1.2,
	ActivityLight:     1.375,
	ActivityModerate:  1.55,
	ActivityVery:      1.725,
	ActivityExtra:     1.9,
}

var goalAdjustments = map[Goal]int{
	GoalCut:      -500,
	GoalMaintain: 0,
	GoalBulk:     500,
}

// Defaults substituted for missing or non-positive physical stats.
// Profile saves must never be blocked by a half-filled profile, so the
// calculator degrades to these instead of returning an error.
const (
	DefaultWeightKg = 70
	DefaultHeightCm = 170
	DefaultAgeYears = 25

	// MinCalorieTarget is a deliberate safety floor for the daily calorie
	// target. An aggressive cut on a small TDEE can otherwise produce
	// targets no one should be given.
	MinCalorieTarget = 1200
)

// Stats is the physical profile input of the calculator. Zero or negative
// numeric fields are treated as missing.
type Stats struct {
	Sex           Sex
	AgeYears      float64
	HeightCm      float64
	WeightKg      float64
	ActivityLevel ActivityLevel
	Goal          Goal
}

// MacroTargets is a daily calorie budget together with its macro split.
type MacroTargets struct {
	Calories int `json:"calories"`
	ProteinG int `json:"proteinG"`
	CarbsG   int `json:"carbsG"`
	FatG     int `json:"fatG"`
}

// Targets is the full derived output for a profile.
type Targets struct {
	BMR    float64      `json:"bmr"`
	TDEE   int          `json:"tdee"`
	Macros MacroTargets `json:"macros"`
}

// ValidActivityLevel reports whether level is one of the known multipliers.
func ValidActivityLevel(level ActivityLevel) bool {
	_, ok := activityMultipliers[level]
	return ok
}

// ValidGoal reports whether goal is one of the known goal adjustments.
func ValidGoal(goal Goal) bool {
	_, ok := goalAdjustments[goal]
	return ok
}

// ComputeTargets derives BMR (Mifflin-St Jeor), TDEE, the calorie target and
// the macro split from physical stats. Pure and deterministic: same stats in,
// same targets out. Missing stats fall back to defaults, an unknown activity
// level is treated as moderate, so this never fails for any input.
func ComputeTargets(stats Stats) Targets {
	weight := stats.WeightKg
	if weight <= 0 {
		weight = DefaultWeightKg
	}
	height := stats.HeightCm
	if height <= 0 {
		height = DefaultHeightCm
	}
	age := stats.AgeYears
	if age <= 0 {
		age = DefaultAgeYears
	}

	bmr := 10*weight + 6.25*height - 5*age
	if stats.Sex == SexMale {
		bmr += 5
	} else {
		bmr -= 161
	}

	multiplier, ok := activityMultipliers[stats.ActivityLevel]
	if !ok {
		multiplier = activityMultipliers[ActivityModerate]
	}
	tdee := int(math.Round(bmr * multiplier))

	calories := tdee + goalAdjustments[stats.Goal] // unknown goal -> maintain (0)
	if calories < MinCalorieTarget {
		calories = MinCalorieTarget
	}

	protein := int(math.Round(weight * 2.2))
	fat := int(math.Round(weight * 0.9))
	carbs := int(math.Round(float64(calories-(protein*4+fat*9)) / 4))
	if carbs < 0 {
		carbs = 0
	}

	return Targets{
		BMR:  bmr,
		TDEE: tdee,
		Macros: MacroTargets{
			Calories: calories,
			ProteinG: protein,
			CarbsG:   carbs,
			FatG:     fat,
		},
	}
}
