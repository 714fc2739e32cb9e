package dailylog

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shapeupapp/backend/internal/targets"
	"github.com/shapeupapp/backend/internal/telemetry/metrics"
	"github.com/shapeupapp/backend/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=dailylog_test

var (
	ErrInvalidFood   = errors.New("invalid food entry")
	ErrInvalidAmount = errors.New("invalid amount")
)

type dayRepo interface {
	AddFood(ctx context.Context, userID int, date Date, entry FoodEntry) (*Day, error)
	SetTargets(ctx context.Context, userID int, date Date, rec targets.Reconciled) error
	RemoveFood(ctx context.Context, userID int, date Date, foodID int) (*Day, error)
	SetSteps(ctx context.Context, userID int, date Date, steps int) error
	SetWater(ctx context.Context, userID int, date Date, waterMl int) error
	SetWeight(ctx context.Context, userID int, date Date, weightKg float64) error
	Get(ctx context.Context, userID int, date Date) (*Day, error)
	List(ctx context.Context, userID int) ([]Day, error)
	EraseUser(ctx context.Context, userID int) error
}

// profileSyncer propagates a logged body weight back to the user profile so
// derived targets follow the latest measurement.
type profileSyncer interface {
	OnWeightLogged(ctx context.Context, userID int, weightKg float64) error
}

// targetDefaults supplies the profile-derived fallback targets used when a
// day has no reconciled targets stored yet.
type targetDefaults interface {
	DefaultsFor(ctx context.Context, userID int) (targets.Defaults, error)
}

type Service struct {
	repo     dayRepo
	syncer   profileSyncer
	defaults targetDefaults
	metrics  *metrics.Manager
}

func NewService(
	repo dayRepo,
	syncer profileSyncer,
	defaults targetDefaults,
	metrics *metrics.Manager,
) *Service {
	return &Service{
		repo:     repo,
		syncer:   syncer,
		defaults: defaults,
		metrics:  metrics,
	}
}

func (s *Service) AddFood(ctx context.Context, userID int, date Date, entry FoodEntry) (*Day, error) {
	entry.Name = strings.TrimSpace(entry.Name)
	if entry.Name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidFood)
	}
	if entry.Calories < 0 || entry.ProteinG < 0 || entry.CarbsG < 0 || entry.FatG < 0 {
		return nil, fmt.Errorf("%w: negative values", ErrInvalidFood)
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}

	day, err := s.repo.AddFood(ctx, userID, date, entry)
	if err != nil {
		return nil, err
	}

	s.metrics.CounterFoodEntries.Inc()
	return day, nil
}

func (s *Service) RemoveFood(ctx context.Context, userID int, date Date, foodID int) (*Day, error) {
	if foodID <= 0 {
		return nil, fmt.Errorf("%w: food id", ErrInvalidAmount)
	}
	return s.repo.RemoveFood(ctx, userID, date, foodID)
}

func (s *Service) SetSteps(ctx context.Context, userID int, date Date, steps int) error {
	if steps < 0 {
		return fmt.Errorf("%w: steps", ErrInvalidAmount)
	}
	return s.repo.SetSteps(ctx, userID, date, steps)
}

func (s *Service) SetWater(ctx context.Context, userID int, date Date, waterMl int) error {
	if waterMl < 0 {
		return fmt.Errorf("%w: water", ErrInvalidAmount)
	}
	return s.repo.SetWater(ctx, userID, date, waterMl)
}

// LogWeight stores the measurement on the day's record and then syncs it to
// the user profile. The ledger write is the source of truth: a profile sync
// failure does not undo it, the caller gets the day back together with a
// flag saying the sync is still pending.
func (s *Service) LogWeight(ctx context.Context, userID int, date Date, weightKg float64) (_ *Day, syncPending bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.dailylog.logweight")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("date", date.String()))

	if weightKg <= 0 {
		return nil, false, fmt.Errorf("%w: weight must be positive", ErrInvalidAmount)
	}

	if err := s.repo.SetWeight(ctx, userID, date, weightKg); err != nil {
		return nil, false, err
	}

	if syncErr := s.syncer.OnWeightLogged(ctx, userID, weightKg); syncErr != nil {
		log.Errorf("log weight: profile sync for user %d failed: %s", userID, syncErr)
		s.metrics.CounterProfileSyncFailures.Inc()
		syncPending = true
	} else {
		s.metrics.CounterProfileSyncs.Inc()
	}

	day, err := s.repo.Get(ctx, userID, date)
	if err != nil {
		return nil, syncPending, err
	}
	return day, syncPending, nil
}

// Get returns the day's record. A day that was never written reads as an
// empty record rather than an error, so clients always get a well-formed day.
func (s *Service) Get(ctx context.Context, userID int, date Date) (*Day, error) {
	day, err := s.repo.Get(ctx, userID, date)
	if errors.Is(err, ErrDayNotFound) {
		return emptyDay(userID, date), nil
	}
	if err != nil {
		return nil, err
	}
	return day, nil
}

func (s *Service) List(ctx context.Context, userID int) ([]Day, error) {
	return s.repo.List(ctx, userID)
}

func (s *Service) EraseUser(ctx context.Context, userID int) error {
	return s.repo.EraseUser(ctx, userID)
}

// SetDayTargets stores reconciled targets for the day. The date comes as a
// YYYY-MM-DD string so target reconciliation does not depend on this package.
func (s *Service) SetDayTargets(ctx context.Context, userID int, date string, rec targets.Reconciled) error {
	d, err := ParseDate(date)
	if err != nil {
		return err
	}
	return s.repo.SetTargets(ctx, userID, d, rec)
}

// DaySteps reports the steps logged so far on the given day. A never-written
// day reads as zero.
func (s *Service) DaySteps(ctx context.Context, userID int, date string) (int, error) {
	d, err := ParseDate(date)
	if err != nil {
		return 0, err
	}
	day, err := s.Get(ctx, userID, d)
	if err != nil {
		return 0, err
	}
	return day.Steps, nil
}

// Summary folds the day's record into targets vs. consumed vs. remaining.
// Days without stored targets fall back to the profile-derived defaults so
// the summary always carries a target.
func (s *Service) Summary(ctx context.Context, userID int, date Date) (_ *Summary, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.dailylog.summary")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("date", date.String()))

	day, err := s.Get(ctx, userID, date)
	if err != nil {
		return nil, err
	}

	targetCalories, targetSteps := 0, 0
	calSource, stepsSource := day.TargetCaloriesSource, day.TargetStepsSource
	if day.TargetCalories != nil {
		targetCalories = *day.TargetCalories
	}
	if day.TargetSteps != nil {
		targetSteps = *day.TargetSteps
	}

	if day.TargetCalories == nil || day.TargetSteps == nil {
		def, defErr := s.defaults.DefaultsFor(ctx, userID)
		if defErr != nil {
			return nil, fmt.Errorf("target defaults: %w", defErr)
		}
		if day.TargetCalories == nil {
			targetCalories = def.Calories
			calSource = targets.SourceDefault
		}
		if day.TargetSteps == nil {
			targetSteps = def.Steps
			stepsSource = targets.SourceDefault
		}
	}

	return &Summary{
		Date:                 date,
		Totals:               day.Totals,
		TargetCalories:       targetCalories,
		TargetSteps:          targetSteps,
		TargetCaloriesSource: calSource,
		TargetStepsSource:    stepsSource,
		RemainingCalories:    targetCalories - day.Totals.Calories,
		RemainingSteps:       targetSteps - day.Steps,
		Steps:                day.Steps,
		WaterMl:              day.WaterMl,
	}, nil
}
