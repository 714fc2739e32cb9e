package profile

import (
	"fmt"
	"time"

	"github.com/shapeupapp/backend/internal/metabolic"
)

// UserProfile is the account record together with the body stats that feed
// the metabolic calculator and the derived daily targets computed from them.
// Derived values are recomputed on every stats change, never edited directly.
type UserProfile struct {
	ID           int    `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
	Name         string `json:"name"`

	Sex           metabolic.Sex           `json:"sex"`
	AgeYears      float64                 `json:"ageYears"`
	HeightCm      float64                 `json:"heightCm"`
	WeightKg      float64                 `json:"weightKg"`
	ActivityLevel metabolic.ActivityLevel `json:"activityLevel"`
	Goal          metabolic.Goal          `json:"goal"`

	Derived metabolic.Targets `json:"derived"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Stats maps the profile to the calculator input. Zero and negative values
// pass through, the calculator substitutes its own defaults for them.
func (p *UserProfile) Stats() metabolic.Stats {
	return metabolic.Stats{
		Sex:           p.Sex,
		AgeYears:      p.AgeYears,
		HeightCm:      p.HeightCm,
		WeightKg:      p.WeightKg,
		ActivityLevel: p.ActivityLevel,
		Goal:          p.Goal,
	}
}

// SyncError marks a failure to propagate a logged weight into the profile.
// The weight measurement itself is already persisted when this happens, so
// callers must treat it as a pending sync, not a lost write.
type SyncError struct {
	UserID int
	Err    error
}

func (e *SyncError) Error() string {
	return fmt.Sprintf("profile sync for user %d: %s", e.UserID, e.Err)
}

func (e *SyncError) Unwrap() error {
	return e.Err
}
