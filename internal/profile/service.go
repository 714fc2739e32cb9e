package profile

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/shapeupapp/backend/internal/metabolic"
	"github.com/shapeupapp/backend/internal/targets"
	"github.com/shapeupapp/backend/internal/telemetry/tracing"
	"github.com/shapeupapp/backend/pkg"

	"go.opentelemetry.io/otel/attribute"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidProfile     = errors.New("invalid profile")
)

type profileRepo interface {
	Add(ctx context.Context, p UserProfile) (*UserProfile, error)
	Get(ctx context.Context, userID int) (*UserProfile, error)
	GetByUsername(ctx context.Context, username string) (*UserProfile, error)
	Update(ctx context.Context, p *UserProfile) error
	Delete(ctx context.Context, userID int) error
}

// StatsUpdate carries the editable profile fields. Pointers distinguish
// "leave as is" from an explicit new value.
type StatsUpdate struct {
	Name          *string  `json:"name,omitempty"`
	Sex           *string  `json:"sex,omitempty"`
	AgeYears      *float64 `json:"ageYears,omitempty"`
	HeightCm      *float64 `json:"heightCm,omitempty"`
	WeightKg      *float64 `json:"weightKg,omitempty"`
	ActivityLevel *string  `json:"activityLevel,omitempty"`
	Goal          *string  `json:"goal,omitempty"`
}

type Service struct {
	repo               profileRepo
	defaultStepsTarget int
}

func NewService(repo profileRepo, defaultStepsTarget int) *Service {
	return &Service{
		repo:               repo,
		defaultStepsTarget: defaultStepsTarget,
	}
}

func (s *Service) Register(ctx context.Context, username, password, name string) (_ *UserProfile, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.profile.register")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	username = strings.TrimSpace(strings.ToLower(username))
	if username == "" || len(password) < 8 {
		return nil, fmt.Errorf("%w: username required and password must have at least 8 chars", ErrInvalidProfile)
	}

	passwordHash, err := pkg.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	p := UserProfile{
		Username:     username,
		PasswordHash: passwordHash,
		Name:         name,
	}
	// new accounts start on defaults, derived targets follow
	p.Derived = metabolic.ComputeTargets(p.Stats())

	return s.repo.Add(ctx, p)
}

// CheckLogin verifies the credentials and returns the matching profile.
func (s *Service) CheckLogin(ctx context.Context, username, password string) (_ *UserProfile, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.profile.checklogin")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	username = strings.TrimSpace(strings.ToLower(username))
	p, err := s.repo.GetByUsername(ctx, username)
	if errors.Is(err, ErrProfileNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if !pkg.CheckPasswordHash(password, p.PasswordHash) {
		return nil, ErrInvalidCredentials
	}
	return p, nil
}

func (s *Service) Get(ctx context.Context, userID int) (*UserProfile, error) {
	return s.repo.Get(ctx, userID)
}

// Update applies the stats change and recomputes the derived targets, so
// profile and targets can never drift apart.
func (s *Service) Update(ctx context.Context, userID int, update StatsUpdate) (_ *UserProfile, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.profile.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	p, err := s.repo.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	if update.Name != nil {
		p.Name = strings.TrimSpace(*update.Name)
	}
	if update.Sex != nil {
		sex := metabolic.Sex(*update.Sex)
		if sex != metabolic.SexMale && sex != metabolic.SexFemale {
			return nil, fmt.Errorf("%w: unknown sex %q", ErrInvalidProfile, *update.Sex)
		}
		p.Sex = sex
	}
	if update.AgeYears != nil {
		if *update.AgeYears <= 0 {
			return nil, fmt.Errorf("%w: age must be positive", ErrInvalidProfile)
		}
		p.AgeYears = *update.AgeYears
	}
	if update.HeightCm != nil {
		if *update.HeightCm <= 0 {
			return nil, fmt.Errorf("%w: height must be positive", ErrInvalidProfile)
		}
		p.HeightCm = *update.HeightCm
	}
	if update.WeightKg != nil {
		if *update.WeightKg <= 0 {
			return nil, fmt.Errorf("%w: weight must be positive", ErrInvalidProfile)
		}
		p.WeightKg = *update.WeightKg
	}
	if update.ActivityLevel != nil {
		level := metabolic.ActivityLevel(*update.ActivityLevel)
		if !metabolic.ValidActivityLevel(level) {
			return nil, fmt.Errorf("%w: unknown activity level %q", ErrInvalidProfile, *update.ActivityLevel)
		}
		p.ActivityLevel = level
	}
	if update.Goal != nil {
		goal := metabolic.Goal(*update.Goal)
		if !metabolic.ValidGoal(goal) {
			return nil, fmt.Errorf("%w: unknown goal %q", ErrInvalidProfile, *update.Goal)
		}
		p.Goal = goal
	}

	p.Derived = metabolic.ComputeTargets(p.Stats())

	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// OnWeightLogged syncs a weight measurement from the daily log into the
// profile. Non-positive weights are ignored on purpose: the ledger may hold
// them, the profile never does.
func (s *Service) OnWeightLogged(ctx context.Context, userID int, weightKg float64) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.profile.onweightlogged")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	if weightKg <= 0 {
		return nil
	}

	p, err := s.repo.Get(ctx, userID)
	if err != nil {
		return &SyncError{UserID: userID, Err: err}
	}

	p.WeightKg = weightKg
	p.Derived = metabolic.ComputeTargets(p.Stats())

	if err := s.repo.Update(ctx, p); err != nil {
		return &SyncError{UserID: userID, Err: err}
	}
	return nil
}

// DefaultsFor exposes the profile-derived targets as the daily defaults used
// when no external suggestion is accepted.
func (s *Service) DefaultsFor(ctx context.Context, userID int) (targets.Defaults, error) {
	p, err := s.repo.Get(ctx, userID)
	if err != nil {
		return targets.Defaults{}, err
	}
	return targets.Defaults{
		Calories: p.Derived.Macros.Calories,
		Steps:    s.defaultStepsTarget,
	}, nil
}

// BriefingProfile returns the profile bits that go into the daily briefing
// prompt.
func (s *Service) BriefingProfile(ctx context.Context, userID int) (name string, goal string, err error) {
	p, err := s.repo.Get(ctx, userID)
	if err != nil {
		return "", "", err
	}
	return p.Name, string(p.Goal), nil
}

func (s *Service) Delete(ctx context.Context, userID int) error {
	return s.repo.Delete(ctx, userID)
}
