package test

import (
	"context"
	"fmt"
	"net/http"

	"github.com/shapeupapp/backend/internal/dailylog"
)

func (s *IntegrationTestSuite) TestDailyLog_totalsFollowFoods() {
	ctx := context.Background()
	token, p := registerTestUser(ctx, s.T(), "totals-user")

	const date = "2026-03-01"
	foodPath := fmt.Sprintf("/dailylog/day/%s/food", date)

	resp := s.doRequest(ctx, "POST", foodPath, token, []byte(`{"name": "oats", "calories": 250, "proteinG": 8, "carbsG": 45, "fatG": 4}`))
	s.Require().Equal(http.StatusCreated, resp.StatusCode)
	day := decodeResponse[dailylog.Day](s, resp)
	s.Require().Len(day.Foods, 1)
	s.Equal(250, day.Totals.Calories)
	firstFoodID := day.Foods[0].ID

	resp = s.doRequest(ctx, "POST", foodPath, token, []byte(`{"name": "banana", "calories": 150, "carbsG": 27}`))
	s.Require().Equal(http.StatusCreated, resp.StatusCode)
	day = decodeResponse[dailylog.Day](s, resp)
	s.Require().Len(day.Foods, 2)
	s.Equal(400, day.Totals.Calories)
	s.Equal(float64(8), day.Totals.ProteinG)
	s.Equal(float64(72), day.Totals.CarbsG)

	resp = s.doRequest(ctx, "DELETE", fmt.Sprintf("%s/%d", foodPath, firstFoodID), token, nil)
	s.Require().Equal(http.StatusOK, resp.StatusCode)
	removeResp := decodeResponse[dailylog.RemoveFoodResponse](s, resp)
	s.Equal(firstFoodID, removeResp.RemovedID)
	s.Require().NotNil(removeResp.Day)
	s.Require().Len(removeResp.Day.Foods, 1)
	s.Equal(150, removeResp.Day.Totals.Calories)
	s.Equal(float64(0), removeResp.Day.Totals.ProteinG)

	// stored totals must match what the food entries sum up to
	var storedCalories, summedCalories int
	s.Require().NoError(s.dbPool.QueryRow(ctx,
		`SELECT total_calories FROM daily_log WHERE user_id = $1 AND date = $2`,
		p.ID, date,
	).Scan(&storedCalories))
	s.Require().NoError(s.dbPool.QueryRow(ctx,
		`SELECT COALESCE(SUM(calories), 0) FROM food_entry WHERE user_id = $1 AND date = $2`,
		p.ID, date,
	).Scan(&summedCalories))
	s.Equal(150, storedCalories)
	s.Equal(storedCalories, summedCalories)
}

func (s *IntegrationTestSuite) TestDailyLog_dayRowCreatedOnce() {
	ctx := context.Background()
	token, p := registerTestUser(ctx, s.T(), "idempotence-user")

	const date = "2026-03-02"
	dayPath := fmt.Sprintf("/dailylog/day/%s", date)

	resp := s.doRequest(ctx, "PUT", dayPath+"/steps", token, []byte(`{"amount": 4000}`))
	s.Require().Equal(http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = s.doRequest(ctx, "PUT", dayPath+"/water", token, []byte(`{"amount": 500}`))
	s.Require().Equal(http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = s.doRequest(ctx, "POST", dayPath+"/food", token, []byte(`{"name": "toast", "calories": 120}`))
	s.Require().Equal(http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	// each write goes through the same upsert; only one day row may exist
	var dayRows int
	s.Require().NoError(s.dbPool.QueryRow(ctx,
		`SELECT COUNT(*) FROM daily_log WHERE user_id = $1 AND date = $2`,
		p.ID, date,
	).Scan(&dayRows))
	s.Equal(1, dayRows)

	resp = s.doRequest(ctx, "GET", dayPath, token, nil)
	s.Require().Equal(http.StatusOK, resp.StatusCode)
	day := decodeResponse[dailylog.Day](s, resp)
	s.Equal(4000, day.Steps)
	s.Equal(500, day.WaterMl)
	s.Require().Len(day.Foods, 1)
	s.Equal(120, day.Totals.Calories)
}

func (s *IntegrationTestSuite) TestDailyLog_removeUnknownFood() {
	ctx := context.Background()
	token, _ := registerTestUser(ctx, s.T(), "remove-unknown-user")

	const date = "2026-03-03"
	foodPath := fmt.Sprintf("/dailylog/day/%s/food", date)

	resp := s.doRequest(ctx, "POST", foodPath, token, []byte(`{"name": "apple", "calories": 80}`))
	s.Require().Equal(http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = s.doRequest(ctx, "DELETE", foodPath+"/999999", token, nil)
	s.Require().Equal(http.StatusOK, resp.StatusCode)
	removeResp := decodeResponse[dailylog.RemoveFoodResponse](s, resp)
	s.Require().NotNil(removeResp.Day)
	s.Require().Len(removeResp.Day.Foods, 1)
	s.Equal(80, removeResp.Day.Totals.Calories)
}

func (s *IntegrationTestSuite) TestDailyLog_writeAfterAccountDeletion() {
	ctx := context.Background()
	token, _ := registerTestUser(ctx, s.T(), "deleted-account-user")

	const date = "2026-03-04"

	resp := s.doRequest(ctx, "POST", fmt.Sprintf("/dailylog/day/%s/food", date), token, []byte(`{"name": "rice", "calories": 200}`))
	s.Require().Equal(http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = s.doRequest(ctx, "DELETE", "/user/profile", token, nil)
	s.Require().Equal(http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	// the session token outlives the account; writes must come back
	// as 404, not 500
	resp = s.doRequest(ctx, "PUT", fmt.Sprintf("/dailylog/day/%s/steps", date), token, []byte(`{"amount": 1000}`))
	s.Equal(http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}
