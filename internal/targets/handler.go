package targets

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/shapeupapp/backend/internal/auth"
	"github.com/shapeupapp/backend/internal/telemetry/tracing"
	"github.com/shapeupapp/backend/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

type Handler struct {
	service  *Service
	location *time.Location
}

func NewHandler(service *Service, location *time.Location) *Handler {
	return &Handler{
		service:  service,
		location: location,
	}
}

// HandleBriefing reconciles and stores targets for the given day, which
// defaults to today when the path has no date.
func (handler *Handler) HandleBriefing(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.targets.briefing")
	defer span.End()

	userID, err := auth.UserIDFromRequest(r)
	if err != nil {
		http.Error(w, "no user", http.StatusUnauthorized)
		return
	}

	date := mux.Vars(r)["date"]
	if date == "" {
		date = time.Now().In(handler.location).Format("2006-01-02")
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		http.Error(w, "invalid date, want YYYY-MM-DD", http.StatusBadRequest)
		return
	}

	rec, err := handler.service.ApplyDailyBriefing(ctx, userID, date)
	if err != nil {
		log.Errorf("briefing for day %s, user %d: %s", date, userID, err)
		http.Error(w, "briefing failed", http.StatusInternalServerError)
		return
	}

	recJson, err := json.Marshal(rec)
	if err != nil {
		log.Errorf("failed to marshal briefing response: %s", err)
		http.Error(w, "briefing failed", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, recJson, http.StatusOK)
}

type estimateFoodRequest struct {
	Description string `json:"description"`
}

func (handler *Handler) HandleEstimateFood(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.targets.estimatefood")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	if _, err := auth.UserIDFromRequest(r); err != nil {
		http.Error(w, "no user", http.StatusUnauthorized)
		return
	}

	var req estimateFoodRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("estimate food, unmarshal json params: %s", err)
		http.Error(w, "estimate food failed", http.StatusBadRequest)
		return
	}

	req.Description = strings.TrimSpace(req.Description)
	if req.Description == "" {
		http.Error(w, "error, description empty", http.StatusBadRequest)
		return
	}

	estimate, err := handler.service.EstimateFood(ctx, req.Description)
	if err != nil {
		log.Errorf("estimate food [%s]: %s", req.Description, err)
		http.Error(w, "estimate food failed", http.StatusInternalServerError)
		return
	}

	estimateJson, err := json.Marshal(estimate)
	if err != nil {
		log.Errorf("failed to marshal food estimate: %s", err)
		http.Error(w, "estimate food failed", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, estimateJson, http.StatusOK)
}
