package targets

import "math"

// Source records where a stored daily target came from.
type Source string

const (
	SourceDefault  Source = "default"
	SourceExternal Source = "external"
)

// Sanity bands for externally suggested targets. Anything outside is treated
// the same as no suggestion at all for that field.
const (
	MinSuggestedCalories = 800
	MaxSuggestedCalories = 6000
	MinSuggestedSteps    = 0
	MaxSuggestedSteps    = 50000
)

// Defaults are the deterministic targets computed from the user's profile.
type Defaults struct {
	Calories int
	Steps    int
}

// Suggestion is the untrusted payload from the external coaching service.
// Fields are pointers because the service may return any subset of them;
// values are float64 because the upstream JSON gives no integer guarantee.
type Suggestion struct {
	TargetCalories  *float64 `json:"targetCalories"`
	TargetSteps     *float64 `json:"targetSteps"`
	MacroSuggestion *string  `json:"macroSuggestion"`
}

// Reconciled is the authoritative target record for a day, with per-field
// provenance.
type Reconciled struct {
	Calories       int    `json:"calories"`
	CaloriesSource Source `json:"caloriesSource"`
	Steps          int    `json:"steps"`
	StepsSource    Source `json:"stepsSource"`
}

// Reconcile merges deterministic defaults with an optional external
// suggestion, field by field. A suggested value is accepted only when it is
// a finite number inside its sanity band; everything else falls back to the
// default for that field. Calories and steps are decided independently, so
// mixed provenance is a normal outcome.
func Reconcile(def Defaults, sug *Suggestion) Reconciled {
	rec := Reconciled{
		Calories:       def.Calories,
		CaloriesSource: SourceDefault,
		Steps:          def.Steps,
		StepsSource:    SourceDefault,
	}
	if sug == nil {
		return rec
	}

	if v, ok := acceptable(sug.TargetCalories, MinSuggestedCalories, MaxSuggestedCalories); ok {
		rec.Calories = v
		rec.CaloriesSource = SourceExternal
	}
	if v, ok := acceptable(sug.TargetSteps, MinSuggestedSteps, MaxSuggestedSteps); ok {
		rec.Steps = v
		rec.StepsSource = SourceExternal
	}
	return rec
}

func acceptable(v *float64, min, max int) (int, bool) {
	if v == nil || math.IsNaN(*v) || math.IsInf(*v, 0) {
		return 0, false
	}
	rounded := int(math.Round(*v))
	if rounded < min || rounded > max {
		return 0, false
	}
	return rounded, true
}
