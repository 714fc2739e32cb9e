package targets

import (
	"context"
	"fmt"

	"github.com/shapeupapp/backend/internal/telemetry/metrics"
	"github.com/shapeupapp/backend/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=targets_test

// defaultsSource supplies the profile-derived daily targets.
type defaultsSource interface {
	DefaultsFor(ctx context.Context, userID int) (Defaults, error)
}

// profileSource supplies the bits of the profile that go into the briefing
// prompt.
type profileSource interface {
	BriefingProfile(ctx context.Context, userID int) (name string, goal string, err error)
}

// dayStore persists reconciled targets on the daily log and reads back the
// day's progress. Dates travel as YYYY-MM-DD strings.
type dayStore interface {
	SetDayTargets(ctx context.Context, userID int, date string, rec Reconciled) error
	DaySteps(ctx context.Context, userID int, date string) (int, error)
}

type Service struct {
	provider Provider
	defaults defaultsSource
	profiles profileSource
	store    dayStore
	metrics  *metrics.Manager
}

func NewService(
	provider Provider,
	defaults defaultsSource,
	profiles profileSource,
	store dayStore,
	metrics *metrics.Manager,
) *Service {
	return &Service{
		provider: provider,
		defaults: defaults,
		profiles: profiles,
		store:    store,
		metrics:  metrics,
	}
}

// ApplyDailyBriefing asks the suggestion provider for today's targets,
// reconciles them against the profile defaults and stores the result on the
// day. Provider failures are not errors for the caller: the day simply runs
// on defaults.
func (s *Service) ApplyDailyBriefing(ctx context.Context, userID int, date string) (_ Reconciled, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.targets.briefing")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))
	span.SetAttributes(attribute.String("date", date))

	def, err := s.defaults.DefaultsFor(ctx, userID)
	if err != nil {
		return Reconciled{}, fmt.Errorf("target defaults: %w", err)
	}

	suggestion := s.fetchSuggestion(ctx, userID, date, def)

	rec := Reconcile(def, suggestion)
	s.metrics.CounterReconciliations.WithLabelValues(string(rec.CaloriesSource)).Inc()
	s.metrics.CounterReconciliations.WithLabelValues(string(rec.StepsSource)).Inc()
	span.SetAttributes(attribute.String("calories.source", string(rec.CaloriesSource)))
	span.SetAttributes(attribute.String("steps.source", string(rec.StepsSource)))

	if err := s.store.SetDayTargets(ctx, userID, date, rec); err != nil {
		return Reconciled{}, fmt.Errorf("store day targets: %w", err)
	}

	return rec, nil
}

// fetchSuggestion gathers the briefing context and calls the provider. Any
// failure along the way falls back to a nil suggestion, logged and counted
// but never propagated.
func (s *Service) fetchSuggestion(ctx context.Context, userID int, date string, def Defaults) *Suggestion {
	name, goal, err := s.profiles.BriefingProfile(ctx, userID)
	if err != nil {
		log.Errorf("briefing for user %d: profile: %s", userID, err)
		s.metrics.CounterSuggestionFallbacks.Inc()
		return nil
	}

	stepsSoFar, err := s.store.DaySteps(ctx, userID, date)
	if err != nil {
		log.Errorf("briefing for user %d: day steps: %s", userID, err)
		s.metrics.CounterSuggestionFallbacks.Inc()
		return nil
	}

	suggestion, err := s.provider.DailyTargets(ctx, BriefingContext{
		UserID:      userID,
		Day:         date,
		Name:        name,
		Goal:        goal,
		StepsSoFar:  stepsSoFar,
		CaloriesDef: def.Calories,
	})
	if err != nil {
		log.Errorf("briefing for user %d: provider: %s", userID, err)
		s.metrics.CounterSuggestionFallbacks.Inc()
		return nil
	}

	return suggestion
}

// EstimateFood asks the provider for a macro estimate of a described food.
// Unlike briefings there is no default to fall back to, so provider errors
// surface to the caller.
func (s *Service) EstimateFood(ctx context.Context, description string) (_ *FoodEstimate, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.targets.estimatefood")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	return s.provider.EstimateFood(ctx, description)
}
