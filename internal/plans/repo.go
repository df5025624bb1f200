package plans

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/fitplan/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var ErrPlanExerciseNotFound = errors.New("plan exercise not found")

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Add(ctx context.Context, exercise PlanExercise) (_ *PlanExercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.plans.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if exercise.CreatedAt.IsZero() {
		exercise.CreatedAt = time.Now()
	}

	rows, err := r.db.Query(
		ctx,
		`INSERT INTO plan_exercise
				(day, name, sets, reps, position, created_at)
				VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING id;`,
		exercise.Day, exercise.Name, exercise.Sets, exercise.Reps, exercise.Position, exercise.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	if !rows.Next() {
		return nil, errors.New("unexpected error [no rows next]")
	}

	var id int
	if err := rows.Scan(&id); err != nil {
		return nil, fmt.Errorf("rows scan: %w", err)
	}

	span.SetAttributes(attribute.Int("plan_exercise.id", id))

	exercise.ID = id
	return &exercise, nil
}

func (r *Repo) Update(ctx context.Context, exercise *PlanExercise) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.plans.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", exercise.ID))

	tag, err := r.db.Exec(
		ctx,
		`UPDATE plan_exercise SET day = $1, name = $2, sets = $3, reps = $4, position = $5 WHERE id = $6;`,
		exercise.Day, exercise.Name, exercise.Sets, exercise.Reps, exercise.Position, exercise.ID,
	)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return ErrPlanExerciseNotFound
	}

	return nil
}

func (r *Repo) Delete(ctx context.Context, id int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.plans.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	tag, err := r.db.Exec(
		ctx,
		`DELETE FROM plan_exercise WHERE id = $1`,
		id,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrPlanExerciseNotFound
	}
	return nil
}

func (r *Repo) Get(ctx context.Context, id int) (_ *PlanExercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.plans.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	rows, err := r.db.Query(
		ctx,
		`
			SELECT id, day, name, sets, reps, position, created_at
			FROM plan_exercise
			WHERE id = $1;`,
		id,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	exercises, err := r.rows2exercises(rows)
	if err != nil {
		return nil, err
	}

	if len(exercises) != 1 {
		return nil, ErrPlanExerciseNotFound
	}

	return &exercises[0], nil
}

// ListForDay returns all plan exercises for the given plan day, in the
// order they should be performed.
func (r *Repo) ListForDay(ctx context.Context, day int) (_ []PlanExercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.plans.listforday")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("day", day))

	rows, err := r.db.Query(
		ctx,
		`
			SELECT id, day, name, sets, reps, position, created_at
			FROM plan_exercise
			WHERE day = $1
			ORDER BY position ASC;`,
		day,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	return r.rows2exercises(rows)
}

func (r *Repo) ListAll(ctx context.Context) (_ []PlanExercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.plans.listall")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`
			SELECT id, day, name, sets, reps, position, created_at
			FROM plan_exercise
			ORDER BY day ASC, position ASC;`,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	return r.rows2exercises(rows)
}

func (r *Repo) rows2exercises(rows pgx.Rows) ([]PlanExercise, error) {
	exercises := make([]PlanExercise, 0)
	for rows.Next() {
		var id, day, sets, reps, position int
		var name string
		var createdAt time.Time
		if err := rows.Scan(&id, &day, &name, &sets, &reps, &position, &createdAt); err != nil {
			return nil, err
		}
		exercises = append(exercises, PlanExercise{
			ID:        id,
			Day:       day,
			Name:      name,
			Sets:      sets,
			Reps:      reps,
			Position:  position,
			CreatedAt: createdAt,
		})
	}
	return exercises, nil
}
