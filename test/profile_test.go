package test

import (
	"context"
	"net/http"

	"github.com/shapeupapp/backend/internal/profile"
)

func (s *IntegrationTestSuite) TestProfile_registerAndLogin() {
	ctx := context.Background()

	_, p := registerTestUser(ctx, s.T(), "Register-User")
	s.Equal("register-user", p.Username)
	s.Positive(p.ID)

	// fresh accounts get targets from the stat defaults right away
	s.Positive(p.Derived.BMR)
	s.Positive(p.Derived.Macros.Calories)

	// login normalizes the username the same way register does
	loginResp := doLogin(ctx, s.T(), "  REGISTER-USER ")
	s.NotEmpty(loginResp.Token)
	s.Require().NotNil(loginResp.Profile)
	s.Equal(p.ID, loginResp.Profile.ID)
}

func (s *IntegrationTestSuite) TestProfile_updateRecomputesTargets() {
	ctx := context.Background()
	token, _ := registerTestUser(ctx, s.T(), "update-user")

	resp := s.doRequest(ctx, "PUT", "/user/profile", token,
		[]byte(`{"name": "Marko", "sex": "male", "ageYears": 30, "heightCm": 180, "weightKg": 80, "activityLevel": "moderate", "goal": "maintain"}`))
	s.Require().Equal(http.StatusOK, resp.StatusCode)
	updated := decodeResponse[profile.UserProfile](s, resp)

	s.Equal("Marko", updated.Name)
	s.Equal(float64(80), updated.WeightKg)

	// Mifflin-St Jeor for these stats:
	// 10*80 + 6.25*180 - 5*30 + 5 = 1780, TDEE 1780*1.55 = 2759
	s.Equal(float64(1780), updated.Derived.BMR)
	s.Equal(2759, updated.Derived.TDEE)
	s.Equal(2759, updated.Derived.Macros.Calories)
	s.Equal(176, updated.Derived.Macros.ProteinG)
	s.Equal(72, updated.Derived.Macros.FatG)
	s.Equal(352, updated.Derived.Macros.CarbsG)

	// stored targets match what the update returned
	var tdee, targetCalories int
	s.Require().NoError(s.dbPool.QueryRow(ctx,
		`SELECT tdee, target_calories FROM user_profile WHERE id = $1`,
		updated.ID,
	).Scan(&tdee, &targetCalories))
	s.Equal(2759, tdee)
	s.Equal(2759, targetCalories)
}
