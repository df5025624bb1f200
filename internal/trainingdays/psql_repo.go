package trainingdays

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/fitplan/internal/telemetry/tracing"
	"github.com/2beens/fitplan/pkg"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

// querier is satisfied by both *pgxpool.Pool and pgx.Tx, so the same
// repo methods run inside and outside of a transaction.
type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

type PsqlRepo struct {
	pool *pgxpool.Pool
	q    querier
}

func NewPsqlRepo(pool *pgxpool.Pool) *PsqlRepo {
	return &PsqlRepo{
		pool: pool,
		q:    pool,
	}
}

func (r *PsqlRepo) Get(ctx context.Context, date Date) (_ *TrainingDay, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.trainingdays.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("date", date.String()))

	return r.scanDay(r.q.QueryRow(ctx, `
		SELECT date, planned_day, completed, rescheduled
		FROM training_day
		WHERE date = $1
	`, date.Time()))
}

func (r *PsqlRepo) GetLatest(ctx context.Context) (_ *TrainingDay, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.trainingdays.getlatest")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	return r.scanDay(r.q.QueryRow(ctx, `
		SELECT date, planned_day, completed, rescheduled
		FROM training_day
		ORDER BY date DESC
		LIMIT 1
	`))
}

func (r *PsqlRepo) GetLatestCompleted(ctx context.Context) (_ *TrainingDay, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.trainingdays.getlatestcompleted")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	return r.scanDay(r.q.QueryRow(ctx, `
		SELECT date, planned_day, completed, rescheduled
		FROM training_day
		WHERE completed
		ORDER BY date DESC
		LIMIT 1
	`))
}

func (r *PsqlRepo) Insert(ctx context.Context, day TrainingDay) (_ *TrainingDay, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.trainingdays.insert")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("date", day.Date.String()))
	span.SetAttributes(attribute.Int("planned_day", day.PlannedDay))
	span.SetAttributes(attribute.Bool("rescheduled", day.Rescheduled))

	if day.PlannedDay < 1 || day.PlannedDay > PlanDaysCount {
		return nil, fmt.Errorf("planned day %d out of range", day.PlannedDay)
	}

	_, err = r.q.Exec(ctx, `
		INSERT INTO training_day (date, planned_day, completed, rescheduled)
		VALUES ($1, $2, $3, $4)
	`, day.Date.Time(), day.PlannedDay, day.Completed, day.Rescheduled)
	if err != nil {
		if pkg.IsUniqueViolationError(err) {
			return nil, ErrTrainingDayExists
		}
		return nil, err
	}

	return &day, nil
}

func (r *PsqlRepo) SetCompleted(ctx context.Context, date Date) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.trainingdays.setcompleted")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("date", date.String()))

	tag, err := r.q.Exec(ctx, `
		UPDATE training_day SET completed = TRUE WHERE date = $1
	`, date.Time())
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return ErrTrainingDayNotFound
	}

	return nil
}

func (r *PsqlRepo) ListAll(ctx context.Context) (_ []TrainingDay, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.trainingdays.listall")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.q.Query(ctx, `
		SELECT date, planned_day, completed, rescheduled
		FROM training_day
		ORDER BY date ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	days := make([]TrainingDay, 0)
	for rows.Next() {
		var date time.Time
		var plannedDay int
		var completed, rescheduled bool
		if err := rows.Scan(&date, &plannedDay, &completed, &rescheduled); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		days = append(days, TrainingDay{
			Date:        NewDate(date),
			PlannedDay:  plannedDay,
			Completed:   completed,
			Rescheduled: rescheduled,
		})
	}

	return days, nil
}

func (r *PsqlRepo) InTx(ctx context.Context, fn func(r Repo) error) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.trainingdays.intx")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if r.pool == nil {
		// already running within a transaction
		return fn(r)
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			if rollbackErr := tx.Rollback(ctx); rollbackErr != nil {
				err = fmt.Errorf("failed to rollback transaction: %w: %w", rollbackErr, err)
			}
		} else {
			err = tx.Commit(ctx)
		}
	}()

	err = fn(&PsqlRepo{q: tx})
	return err
}

func (r *PsqlRepo) scanDay(row pgx.Row) (*TrainingDay, error) {
	var date time.Time
	var plannedDay int
	var completed, rescheduled bool
	if err := row.Scan(&date, &plannedDay, &completed, &rescheduled); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrTrainingDayNotFound
		}
		return nil, err
	}
	return &TrainingDay{
		Date:        NewDate(date),
		PlannedDay:  plannedDay,
		Completed:   completed,
		Rescheduled: rescheduled,
	}, nil
}
