package trainingdays

import (
	"context"
	"errors"
	"fmt"

	"github.com/2beens/fitplan/internal/telemetry/metrics"
	"github.com/2beens/fitplan/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

// Engine decides which plan day belongs to "today" and retroactively
// inserts records for skipped calendar dates. It holds no state of its
// own, everything is derived from the training log store.
type Engine struct {
	repo           Repo
	metricsManager *metrics.Manager
}

func NewEngine(repo Repo, metricsManager *metrics.Manager) *Engine {
	return &Engine{
		repo:           repo,
		metricsManager: metricsManager,
	}
}

// NextPlannedDay returns the plan day that a newly created record should
// get: the day after the last completed one, wrapping 5 -> 1. An assigned
// but never completed day does not advance the rotation. With no
// completed records at all the rotation starts at day 1.
func (e *Engine) NextPlannedDay(ctx context.Context) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "engine.trainingdays.nextplannedday")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	return nextPlannedDay(ctx, e.repo)
}

func nextPlannedDay(ctx context.Context, r Repo) (int, error) {
	lastCompleted, err := r.GetLatestCompleted(ctx)
	if errors.Is(err, ErrTrainingDayNotFound) {
		return 1, nil
	}
	if err != nil {
		return 0, fmt.Errorf("get latest completed day: %w", err)
	}
	return lastCompleted.PlannedDay%PlanDaysCount + 1, nil
}

// ResolveToday returns the training day record for today, creating it if
// it does not exist yet. Before that, every calendar date strictly between
// the latest known record and today gets a rescheduled record inserted,
// so skipped days are never silently lost. The whole sequence runs in a
// single store transaction.
func (e *Engine) ResolveToday(ctx context.Context, today Date) (_ *TrainingDay, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "engine.trainingdays.resolvetoday")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("today", today.String()))

	var resolved *TrainingDay
	var backfilled int
	var created bool
	err = e.repo.InTx(ctx, func(r Repo) error {
		backfilled, err = backfillSkippedDays(ctx, r, today)
		if err != nil {
			return fmt.Errorf("backfill skipped days: %w", err)
		}

		day, err := r.Get(ctx, today)
		if err == nil {
			resolved = day
			return nil
		}
		if !errors.Is(err, ErrTrainingDayNotFound) {
			return fmt.Errorf("get today: %w", err)
		}

		plannedDay, err := nextPlannedDay(ctx, r)
		if err != nil {
			return err
		}

		resolved, err = r.Insert(ctx, TrainingDay{
			Date:       today,
			PlannedDay: plannedDay,
		})
		if err != nil {
			return fmt.Errorf("insert today: %w", err)
		}

		created = true
		log.Debugf("training day created for %s, plan day %d", today, plannedDay)
		return nil
	})
	if err != nil {
		return nil, err
	}

	span.SetAttributes(attribute.Int("backfilled", backfilled))
	if e.metricsManager != nil {
		e.metricsManager.CounterBackfilledDays.Add(float64(backfilled))
		if created {
			e.metricsManager.CounterTrainingDaysCreated.Inc()
		}
	}

	return resolved, nil
}

// backfillSkippedDays inserts a rescheduled, not completed record for every
// date strictly between the latest known record and today that has none.
// The plan day is recomputed from the last completed record per insert;
// since backfilled records are never completed, one backfill run assigns
// the same plan day to every gap date.
func backfillSkippedDays(ctx context.Context, r Repo, today Date) (int, error) {
	latest, err := r.GetLatest(ctx)
	if errors.Is(err, ErrTrainingDayNotFound) {
		// empty store, nothing to backfill
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("get latest day: %w", err)
	}
	if !latest.Date.Before(today) {
		return 0, nil
	}

	backfilled := 0
	for date := latest.Date.AddDays(1); date.Before(today); date = date.AddDays(1) {
		if _, err := r.Get(ctx, date); err == nil {
			continue
		} else if !errors.Is(err, ErrTrainingDayNotFound) {
			return backfilled, fmt.Errorf("get day %s: %w", date, err)
		}

		plannedDay, err := nextPlannedDay(ctx, r)
		if err != nil {
			return backfilled, err
		}

		if _, err := r.Insert(ctx, TrainingDay{
			Date:        date,
			PlannedDay:  plannedDay,
			Rescheduled: true,
		}); err != nil {
			return backfilled, fmt.Errorf("insert day %s: %w", date, err)
		}

		log.Debugf("skipped training day %s rescheduled, plan day %d", date, plannedDay)
		backfilled++
	}

	return backfilled, nil
}

// MarkCompleted marks the record for the given date as completed. A missing
// record is an error, callers are expected to resolve the day first.
func (e *Engine) MarkCompleted(ctx context.Context, date Date) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "engine.trainingdays.markcompleted")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("date", date.String()))

	if err := e.repo.SetCompleted(ctx, date); err != nil {
		return err
	}

	if e.metricsManager != nil {
		e.metricsManager.CounterCompletedDays.Inc()
	}
	return nil
}
