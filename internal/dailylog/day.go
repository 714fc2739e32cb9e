package dailylog

import (
	"time"

	"github.com/shapeupapp/backend/internal/targets"
)

// FoodEntry is a single logged food item. Nutrient values are totals for
// the logged amount, not per-100g.
type FoodEntry struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Calories  int       `json:"calories"`
	ProteinG  float64   `json:"proteinG"`
	CarbsG    float64   `json:"carbsG"`
	FatG      float64   `json:"fatG"`
	CreatedAt time.Time `json:"createdAt"`
}

// Totals is the macro sum over a day's food entries. It is always derived
// from the entries list, never written independently.
type Totals struct {
	Calories int     `json:"calories"`
	ProteinG float64 `json:"proteinG"`
	CarbsG   float64 `json:"carbsG"`
	FatG     float64 `json:"fatG"`
}

// Day is the full daily log record for one (user, date) pair.
// Targets are nil until a briefing reconciles them; their provenance is
// tracked per field so history shows which days ran on external targets.
type Day struct {
	UserID int  `json:"-"`
	Date   Date `json:"date"`

	TargetCalories       *int           `json:"targetCalories,omitempty"`
	TargetSteps          *int           `json:"targetSteps,omitempty"`
	TargetCaloriesSource targets.Source `json:"targetCaloriesSource,omitempty"`
	TargetStepsSource    targets.Source `json:"targetStepsSource,omitempty"`

	Foods  []FoodEntry `json:"foods"`
	Totals Totals      `json:"totals"`

	Steps          int     `json:"steps"`
	WaterMl        int     `json:"waterMl"`
	LoggedWeightKg float64 `json:"loggedWeightKg,omitempty"`
}

// emptyDay is what reads of a never-written date produce: absence of a log
// is a normal state, not an error.
func emptyDay(userID int, date Date) *Day {
	return &Day{
		UserID: userID,
		Date:   date,
		Foods:  []FoodEntry{},
	}
}

// Summary is the caller-facing read contract for one day.
type Summary struct {
	Date                 Date           `json:"date"`
	Totals               Totals         `json:"totals"`
	TargetCalories       int            `json:"targetCalories"`
	TargetSteps          int            `json:"targetSteps"`
	TargetCaloriesSource targets.Source `json:"targetCaloriesSource"`
	TargetStepsSource    targets.Source `json:"targetStepsSource"`
	RemainingCalories    int            `json:"remainingCalories"`
	RemainingSteps       int            `json:"remainingSteps"`
	Steps                int            `json:"steps"`
	WaterMl              int            `json:"waterMl"`
}
