package dailylog

import (
	"context"
	"errors"
	"fmt"

	"github.com/shapeupapp/backend/internal/targets"
	"github.com/shapeupapp/backend/internal/telemetry/tracing"
	"github.com/shapeupapp/backend/pkg"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var (
	ErrDayNotFound = errors.New("daily log record not found")
	// ErrUnknownUser marks writes for an account that no longer exists, e.g.
	// a session token outliving account deletion.
	ErrUnknownUser = errors.New("unknown user")
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

// ensureDayLocked upserts the (user, date) row and takes a row lock on it.
// The unique constraint on (user_id, date) makes the create idempotent; the
// FOR UPDATE lock serializes racing mutations of the same day so the totals
// recompute below is read-modify-write safe.
func (r *Repo) ensureDayLocked(ctx context.Context, tx pgx.Tx, userID int, date Date) error {
	if _, err := tx.Exec(
		ctx,
		`INSERT INTO daily_log (user_id, date) VALUES ($1, $2)
			ON CONFLICT (user_id, date) DO NOTHING;`,
		userID, date.String(),
	); err != nil {
		if pkg.IsForeignKeyViolationError(err) {
			return ErrUnknownUser
		}
		return fmt.Errorf("upsert day: %w", err)
	}

	if _, err := tx.Exec(
		ctx,
		`SELECT 1 FROM daily_log WHERE user_id = $1 AND date = $2 FOR UPDATE;`,
		userID, date.String(),
	); err != nil {
		return fmt.Errorf("lock day: %w", err)
	}

	return nil
}

// recomputeTotals rewrites the day's totals from the full set of its food
// entries. Totals are never adjusted incrementally: a full recompute cannot
// drift, no matter how entries were added, removed or replayed.
func (r *Repo) recomputeTotals(ctx context.Context, tx pgx.Tx, userID int, date Date) error {
	if _, err := tx.Exec(
		ctx,
		`UPDATE daily_log SET
			total_calories  = sums.calories,
			total_protein_g = sums.protein_g,
			total_carbs_g   = sums.carbs_g,
			total_fat_g     = sums.fat_g,
			updated_at      = now()
		FROM (
			SELECT
				COALESCE(SUM(calories), 0)  AS calories,
				COALESCE(SUM(protein_g), 0) AS protein_g,
				COALESCE(SUM(carbs_g), 0)   AS carbs_g,
				COALESCE(SUM(fat_g), 0)     AS fat_g
			FROM food_entry
			WHERE user_id = $1 AND date = $2
		) AS sums
		WHERE user_id = $1 AND date = $2;`,
		userID, date.String(),
	); err != nil {
		return fmt.Errorf("recompute totals: %w", err)
	}
	return nil
}

func (r *Repo) AddFood(ctx context.Context, userID int, date Date, entry FoodEntry) (_ *Day, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.dailylog.addfood")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("date", date.String()))

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := r.ensureDayLocked(ctx, tx, userID, date); err != nil {
		return nil, err
	}

	var id int
	if err := tx.QueryRow(
		ctx,
		`INSERT INTO food_entry
				(user_id, date, name, calories, protein_g, carbs_g, fat_g, created_at)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			RETURNING id;`,
		userID, date.String(), entry.Name,
		entry.Calories, entry.ProteinG, entry.CarbsG, entry.FatG, entry.CreatedAt,
	).Scan(&id); err != nil {
		return nil, fmt.Errorf("insert food entry: %w", err)
	}
	span.SetAttributes(attribute.Int("food.id", id))

	if err := r.recomputeTotals(ctx, tx, userID, date); err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}

	return r.Get(ctx, userID, date)
}

// RemoveFood deletes a food entry by id and recomputes the day's totals.
// Removing an id that does not exist is a no-op, not an error.
func (r *Repo) RemoveFood(ctx context.Context, userID int, date Date, foodID int) (_ *Day, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.dailylog.removefood")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("date", date.String()))
	span.SetAttributes(attribute.Int("food.id", foodID))

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := r.ensureDayLocked(ctx, tx, userID, date); err != nil {
		return nil, err
	}

	tag, err := tx.Exec(
		ctx,
		`DELETE FROM food_entry WHERE id = $1 AND user_id = $2 AND date = $3;`,
		foodID, userID, date.String(),
	)
	if err != nil {
		return nil, fmt.Errorf("delete food entry: %w", err)
	}
	span.SetAttributes(attribute.Bool("removed", tag.RowsAffected() > 0))

	if err := r.recomputeTotals(ctx, tx, userID, date); err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}

	return r.Get(ctx, userID, date)
}

// scalarColumns maps settable day-level scalars to their columns. Totals and
// targets are deliberately absent: totals are derived only, targets go
// through SetTargets.
var scalarColumns = map[string]string{
	"steps":            "steps",
	"water_ml":         "water_ml",
	"logged_weight_kg": "logged_weight_kg",
}

func (r *Repo) setScalar(ctx context.Context, userID int, date Date, column string, value any) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.dailylog.setscalar")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("date", date.String()))
	span.SetAttributes(attribute.String("column", column))

	col, ok := scalarColumns[column]
	if !ok {
		return fmt.Errorf("unknown day scalar: %s", column)
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := r.ensureDayLocked(ctx, tx, userID, date); err != nil {
		return err
	}

	if _, err := tx.Exec(
		ctx,
		fmt.Sprintf(`UPDATE daily_log SET %s = $1, updated_at = now() WHERE user_id = $2 AND date = $3;`, col),
		value, userID, date.String(),
	); err != nil {
		return fmt.Errorf("set %s: %w", col, err)
	}

	return tx.Commit(ctx)
}

func (r *Repo) SetSteps(ctx context.Context, userID int, date Date, steps int) error {
	return r.setScalar(ctx, userID, date, "steps", steps)
}

func (r *Repo) SetWater(ctx context.Context, userID int, date Date, waterMl int) error {
	return r.setScalar(ctx, userID, date, "water_ml", waterMl)
}

func (r *Repo) SetWeight(ctx context.Context, userID int, date Date, weightKg float64) error {
	return r.setScalar(ctx, userID, date, "logged_weight_kg", weightKg)
}

// SetTargets stores a reconciled target record on the day. Callers decide
// when re-reconciliation is allowed; the repo just writes.
func (r *Repo) SetTargets(ctx context.Context, userID int, date Date, rec targets.Reconciled) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.dailylog.settargets")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("date", date.String()))
	span.SetAttributes(attribute.String("calories.source", string(rec.CaloriesSource)))
	span.SetAttributes(attribute.String("steps.source", string(rec.StepsSource)))

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := r.ensureDayLocked(ctx, tx, userID, date); err != nil {
		return err
	}

	if _, err := tx.Exec(
		ctx,
		`UPDATE daily_log SET
			target_calories = $1, target_calories_source = $2,
			target_steps = $3, target_steps_source = $4,
			updated_at = now()
		WHERE user_id = $5 AND date = $6;`,
		rec.Calories, string(rec.CaloriesSource),
		rec.Steps, string(rec.StepsSource),
		userID, date.String(),
	); err != nil {
		return fmt.Errorf("set targets: %w", err)
	}

	return tx.Commit(ctx)
}

func (r *Repo) Get(ctx context.Context, userID int, date Date) (_ *Day, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.dailylog.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("date", date.String()))

	rows, err := r.db.Query(
		ctx,
		`SELECT
			user_id, to_char(date, 'YYYY-MM-DD'),
			target_calories, target_steps,
			target_calories_source, target_steps_source,
			total_calories, total_protein_g, total_carbs_g, total_fat_g,
			steps, water_ml, logged_weight_kg
		FROM daily_log
		WHERE user_id = $1 AND date = $2;`,
		userID, date.String(),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	if !rows.Next() {
		return nil, ErrDayNotFound
	}

	day, err := scanDay(rows)
	if err != nil {
		return nil, err
	}
	rows.Close()

	day.Foods, err = r.foodEntries(ctx, userID, date)
	if err != nil {
		return nil, fmt.Errorf("food entries: %w", err)
	}

	return day, nil
}

// List returns all of a user's daily log records, newest first.
func (r *Repo) List(ctx context.Context, userID int) (_ []Day, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.dailylog.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`SELECT
			user_id, to_char(date, 'YYYY-MM-DD'),
			target_calories, target_steps,
			target_calories_source, target_steps_source,
			total_calories, total_protein_g, total_carbs_g, total_fat_g,
			steps, water_ml, logged_weight_kg
		FROM daily_log
		WHERE user_id = $1
		ORDER BY date DESC;`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var days []Day
	for rows.Next() {
		day, err := scanDay(rows)
		if err != nil {
			return nil, err
		}
		days = append(days, *day)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	rows.Close()

	for i := range days {
		days[i].Foods, err = r.foodEntries(ctx, userID, days[i].Date)
		if err != nil {
			return nil, fmt.Errorf("food entries for %s: %w", days[i].Date, err)
		}
	}

	if days == nil {
		days = []Day{}
	}
	return days, nil
}

// EraseUser removes all of a user's daily log data. The only hard-delete
// path, used for full account erasure.
func (r *Repo) EraseUser(ctx context.Context, userID int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.dailylog.eraseuser")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, `DELETE FROM food_entry WHERE user_id = $1;`, userID); err != nil {
		return fmt.Errorf("delete food entries: %w", err)
	}
	if _, err := tx.Exec(ctx, `DELETE FROM daily_log WHERE user_id = $1;`, userID); err != nil {
		return fmt.Errorf("delete daily logs: %w", err)
	}

	return tx.Commit(ctx)
}

func (r *Repo) foodEntries(ctx context.Context, userID int, date Date) ([]FoodEntry, error) {
	rows, err := r.db.Query(
		ctx,
		`SELECT id, name, calories, protein_g, carbs_g, fat_g, created_at
			FROM food_entry
			WHERE user_id = $1 AND date = $2
			ORDER BY created_at, id;`,
		userID, date.String(),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var foods []FoodEntry
	for rows.Next() {
		var f FoodEntry
		if err := rows.Scan(&f.ID, &f.Name, &f.Calories, &f.ProteinG, &f.CarbsG, &f.FatG, &f.CreatedAt); err != nil {
			return nil, err
		}
		foods = append(foods, f)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if foods == nil {
		foods = []FoodEntry{}
	}
	return foods, nil
}

func scanDay(rows pgx.Rows) (*Day, error) {
	var day Day
	var dateStr string
	var calSource, stepsSource *string
	if err := rows.Scan(
		&day.UserID, &dateStr,
		&day.TargetCalories, &day.TargetSteps,
		&calSource, &stepsSource,
		&day.Totals.Calories, &day.Totals.ProteinG, &day.Totals.CarbsG, &day.Totals.FatG,
		&day.Steps, &day.WaterMl, &day.LoggedWeightKg,
	); err != nil {
		return nil, fmt.Errorf("scan day: %w", err)
	}
	day.Date = Date(dateStr)
	if calSource != nil {
		day.TargetCaloriesSource = targets.Source(*calSource)
	}
	if stepsSource != nil {
		day.TargetStepsSource = targets.Source(*stepsSource)
	}
	return &day, nil
}
