package dailylog

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/shapeupapp/backend/internal/auth"
	"github.com/shapeupapp/backend/internal/telemetry/tracing"
	"github.com/shapeupapp/backend/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

type RemoveFoodResponse struct {
	RemovedID int  `json:"removedId"`
	Day       *Day `json:"day"`
}

type LogWeightResponse struct {
	Day         *Day `json:"day"`
	SyncPending bool `json:"syncPending"`
}

type ListResponse struct {
	Days  []Day `json:"days"`
	Total int   `json:"total"`
}

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{
		service: service,
	}
}

// dateFromRequest reads and validates the {date} path variable.
func dateFromRequest(r *http.Request) (Date, error) {
	return ParseDate(mux.Vars(r)["date"])
}

func (handler *Handler) HandleGetDay(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.dailylog.get")
	defer span.End()

	userID, err := auth.UserIDFromRequest(r)
	if err != nil {
		http.Error(w, "no user", http.StatusUnauthorized)
		return
	}
	date, err := dateFromRequest(r)
	if err != nil {
		http.Error(w, "invalid date, want YYYY-MM-DD", http.StatusBadRequest)
		return
	}

	day, err := handler.service.Get(ctx, userID, date)
	if err != nil {
		log.Errorf("get day %s for user %d: %s", date, userID, err)
		http.Error(w, "failed to get day", http.StatusInternalServerError)
		return
	}

	dayJson, err := json.Marshal(day)
	if err != nil {
		log.Errorf("failed to marshal day: %s", err)
		http.Error(w, "failed to marshal day", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, dayJson, http.StatusOK)
}

func (handler *Handler) HandleGetSummary(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.dailylog.summary")
	defer span.End()

	userID, err := auth.UserIDFromRequest(r)
	if err != nil {
		http.Error(w, "no user", http.StatusUnauthorized)
		return
	}
	date, err := dateFromRequest(r)
	if err != nil {
		http.Error(w, "invalid date, want YYYY-MM-DD", http.StatusBadRequest)
		return
	}

	summary, err := handler.service.Summary(ctx, userID, date)
	if err != nil {
		log.Errorf("summary for day %s, user %d: %s", date, userID, err)
		http.Error(w, "failed to get summary", http.StatusInternalServerError)
		return
	}

	summaryJson, err := json.Marshal(summary)
	if err != nil {
		log.Errorf("failed to marshal summary: %s", err)
		http.Error(w, "failed to marshal summary", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, summaryJson, http.StatusOK)
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.dailylog.list")
	defer span.End()

	userID, err := auth.UserIDFromRequest(r)
	if err != nil {
		http.Error(w, "no user", http.StatusUnauthorized)
		return
	}

	days, err := handler.service.List(ctx, userID)
	if err != nil {
		log.Errorf("list days for user %d: %s", userID, err)
		http.Error(w, "failed to list days", http.StatusInternalServerError)
		return
	}

	listJson, err := json.Marshal(ListResponse{
		Days:  days,
		Total: len(days),
	})
	if err != nil {
		log.Errorf("failed to marshal days list: %s", err)
		http.Error(w, "failed to marshal days list", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, listJson, http.StatusOK)
}

func (handler *Handler) HandleAddFood(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.dailylog.addfood")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	userID, err := auth.UserIDFromRequest(r)
	if err != nil {
		http.Error(w, "no user", http.StatusUnauthorized)
		return
	}
	date, err := dateFromRequest(r)
	if err != nil {
		http.Error(w, "invalid date, want YYYY-MM-DD", http.StatusBadRequest)
		return
	}

	var entry FoodEntry
	if err := json.NewDecoder(r.Body).Decode(&entry); err != nil {
		log.Tracef("add food, unmarshal json params: %s", err)
		http.Error(w, "add food failed", http.StatusBadRequest)
		return
	}

	day, err := handler.service.AddFood(ctx, userID, date, entry)
	if errors.Is(err, ErrInvalidFood) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if errors.Is(err, ErrUnknownUser) {
		http.Error(w, "unknown user", http.StatusNotFound)
		return
	}
	if err != nil {
		log.Errorf("add food [%s] to day %s, user %d: %s", entry.Name, date, userID, err)
		http.Error(w, "error, failed to add food", http.StatusInternalServerError)
		return
	}

	dayJson, err := json.Marshal(day)
	if err != nil {
		log.Errorf("failed to marshal day after food add: %s", err)
		http.Error(w, "error, failed to add food", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, dayJson, http.StatusCreated)
}

func (handler *Handler) HandleRemoveFood(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.dailylog.removefood")
	defer span.End()

	userID, err := auth.UserIDFromRequest(r)
	if err != nil {
		http.Error(w, "no user", http.StatusUnauthorized)
		return
	}
	date, err := dateFromRequest(r)
	if err != nil {
		http.Error(w, "invalid date, want YYYY-MM-DD", http.StatusBadRequest)
		return
	}

	idStr := mux.Vars(r)["id"]
	if idStr == "" {
		http.Error(w, "error, id empty", http.StatusBadRequest)
		return
	}
	foodID, err := strconv.Atoi(idStr)
	if err != nil {
		http.Error(w, "error, id NaN", http.StatusBadRequest)
		return
	}

	day, err := handler.service.RemoveFood(ctx, userID, date, foodID)
	if errors.Is(err, ErrInvalidAmount) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if errors.Is(err, ErrUnknownUser) {
		http.Error(w, "unknown user", http.StatusNotFound)
		return
	}
	if err != nil {
		log.Errorf("remove food %d from day %s, user %d: %s", foodID, date, userID, err)
		http.Error(w, "error, failed to remove food", http.StatusInternalServerError)
		return
	}

	respJson, err := json.Marshal(RemoveFoodResponse{
		RemovedID: foodID,
		Day:       day,
	})
	if err != nil {
		log.Errorf("failed to marshal remove food response: %s", err)
		http.Error(w, "failed to marshal remove food response", http.StatusInternalServerError)
		return
	}
	pkg.WriteJSONResponseOK(w, string(respJson))
}

type amountRequest struct {
	Amount int `json:"amount"`
}

func (handler *Handler) HandleSetSteps(w http.ResponseWriter, r *http.Request) {
	handler.handleSetAmount(w, r, "handler.dailylog.setsteps", handler.service.SetSteps)
}

func (handler *Handler) HandleSetWater(w http.ResponseWriter, r *http.Request) {
	handler.handleSetAmount(w, r, "handler.dailylog.setwater", handler.service.SetWater)
}

func (handler *Handler) handleSetAmount(
	w http.ResponseWriter,
	r *http.Request,
	spanName string,
	set func(ctx context.Context, userID int, date Date, amount int) error,
) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), spanName)
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	userID, err := auth.UserIDFromRequest(r)
	if err != nil {
		http.Error(w, "no user", http.StatusUnauthorized)
		return
	}
	date, err := dateFromRequest(r)
	if err != nil {
		http.Error(w, "invalid date, want YYYY-MM-DD", http.StatusBadRequest)
		return
	}

	var req amountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("set amount, unmarshal json params: %s", err)
		http.Error(w, "set amount failed", http.StatusBadRequest)
		return
	}

	if err := set(ctx, userID, date, req.Amount); err != nil {
		if errors.Is(err, ErrInvalidAmount) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if errors.Is(err, ErrUnknownUser) {
			http.Error(w, "unknown user", http.StatusNotFound)
			return
		}
		log.Errorf("set amount for day %s, user %d: %s", date, userID, err)
		http.Error(w, "error, failed to set amount", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONResponseOK(w, `{"updated":true}`)
}

type logWeightRequest struct {
	WeightKg float64 `json:"weightKg"`
}

func (handler *Handler) HandleLogWeight(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.dailylog.logweight")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	userID, err := auth.UserIDFromRequest(r)
	if err != nil {
		http.Error(w, "no user", http.StatusUnauthorized)
		return
	}
	date, err := dateFromRequest(r)
	if err != nil {
		http.Error(w, "invalid date, want YYYY-MM-DD", http.StatusBadRequest)
		return
	}

	var req logWeightRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("log weight, unmarshal json params: %s", err)
		http.Error(w, "log weight failed", http.StatusBadRequest)
		return
	}

	day, syncPending, err := handler.service.LogWeight(ctx, userID, date, req.WeightKg)
	if errors.Is(err, ErrInvalidAmount) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if errors.Is(err, ErrUnknownUser) {
		http.Error(w, "unknown user", http.StatusNotFound)
		return
	}
	if err != nil {
		log.Errorf("log weight for day %s, user %d: %s", date, userID, err)
		http.Error(w, "error, failed to log weight", http.StatusInternalServerError)
		return
	}

	respJson, err := json.Marshal(LogWeightResponse{
		Day:         day,
		SyncPending: syncPending,
	})
	if err != nil {
		log.Errorf("failed to marshal log weight response: %s", err)
		http.Error(w, "failed to marshal log weight response", http.StatusInternalServerError)
		return
	}
	pkg.WriteJSONResponseOK(w, string(respJson))
}
