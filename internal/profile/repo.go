package profile

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shapeupapp/backend/internal/metabolic"
	"github.com/shapeupapp/backend/internal/telemetry/tracing"
	"github.com/shapeupapp/backend/pkg"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var (
	ErrProfileNotFound = errors.New("user profile not found")
	ErrUsernameTaken   = errors.New("username already taken")
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

const profileColumns = `
	id, username, password_hash, name,
	sex, age_years, height_cm, weight_kg, activity_level, goal,
	bmr, tdee, target_calories, target_protein_g, target_carbs_g, target_fat_g,
	created_at, updated_at`

func (r *Repo) Add(ctx context.Context, p UserProfile) (_ *UserProfile, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.profile.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("username", p.Username))

	now := time.Now()
	var id int
	if err := r.db.QueryRow(
		ctx,
		`INSERT INTO user_profile
				(username, password_hash, name,
				sex, age_years, height_cm, weight_kg, activity_level, goal,
				bmr, tdee, target_calories, target_protein_g, target_carbs_g, target_fat_g,
				created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
			RETURNING id;`,
		p.Username, p.PasswordHash, p.Name,
		string(p.Sex), p.AgeYears, p.HeightCm, p.WeightKg, string(p.ActivityLevel), string(p.Goal),
		p.Derived.BMR, p.Derived.TDEE,
		p.Derived.Macros.Calories, p.Derived.Macros.ProteinG, p.Derived.Macros.CarbsG, p.Derived.Macros.FatG,
		now, now,
	).Scan(&id); err != nil {
		if pkg.IsUniqueViolationError(err) {
			return nil, ErrUsernameTaken
		}
		return nil, fmt.Errorf("insert profile: %w", err)
	}

	p.ID = id
	p.CreatedAt = now
	p.UpdatedAt = now
	return &p, nil
}

func (r *Repo) Get(ctx context.Context, userID int) (_ *UserProfile, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.profile.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	row := r.db.QueryRow(
		ctx,
		`SELECT `+profileColumns+` FROM user_profile WHERE id = $1;`,
		userID,
	)
	return scanProfile(row)
}

func (r *Repo) GetByUsername(ctx context.Context, username string) (_ *UserProfile, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.profile.getbyusername")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	row := r.db.QueryRow(
		ctx,
		`SELECT `+profileColumns+` FROM user_profile WHERE username = $1;`,
		username,
	)
	return scanProfile(row)
}

// Update rewrites the profile's stats and derived targets. Username and
// password are managed separately and stay untouched here.
func (r *Repo) Update(ctx context.Context, p *UserProfile) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.profile.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	tag, err := r.db.Exec(
		ctx,
		`UPDATE user_profile SET
			name = $1,
			sex = $2, age_years = $3, height_cm = $4, weight_kg = $5,
			activity_level = $6, goal = $7,
			bmr = $8, tdee = $9,
			target_calories = $10, target_protein_g = $11, target_carbs_g = $12, target_fat_g = $13,
			updated_at = now()
		WHERE id = $14;`,
		p.Name,
		string(p.Sex), p.AgeYears, p.HeightCm, p.WeightKg,
		string(p.ActivityLevel), string(p.Goal),
		p.Derived.BMR, p.Derived.TDEE,
		p.Derived.Macros.Calories, p.Derived.Macros.ProteinG, p.Derived.Macros.CarbsG, p.Derived.Macros.FatG,
		p.ID,
	)
	if err != nil {
		return fmt.Errorf("update profile: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrProfileNotFound
	}
	return nil
}

func (r *Repo) Delete(ctx context.Context, userID int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.profile.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	tag, err := r.db.Exec(ctx, `DELETE FROM user_profile WHERE id = $1;`, userID)
	if err != nil {
		return fmt.Errorf("delete profile: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrProfileNotFound
	}
	return nil
}

func scanProfile(row pgx.Row) (*UserProfile, error) {
	var p UserProfile
	var sex, activity, goal string
	if err := row.Scan(
		&p.ID, &p.Username, &p.PasswordHash, &p.Name,
		&sex, &p.AgeYears, &p.HeightCm, &p.WeightKg, &activity, &goal,
		&p.Derived.BMR, &p.Derived.TDEE,
		&p.Derived.Macros.Calories, &p.Derived.Macros.ProteinG, &p.Derived.Macros.CarbsG, &p.Derived.Macros.FatG,
		&p.CreatedAt, &p.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("scan profile: %w", err)
	}
	p.Sex = metabolic.Sex(sex)
	p.ActivityLevel = metabolic.ActivityLevel(activity)
	p.Goal = metabolic.Goal(goal)
	return &p, nil
}
