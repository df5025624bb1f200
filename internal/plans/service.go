package plans

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/2beens/fitplan/internal/telemetry/tracing"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=plans_test

const (
	oneHour            = 60 * 60
	planDayCacheExpire = oneHour * 12
)

type plansRepo interface {
	Add(ctx context.Context, exercise PlanExercise) (*PlanExercise, error)
	Get(ctx context.Context, id int) (*PlanExercise, error)
	Update(ctx context.Context, exercise *PlanExercise) error
	Delete(ctx context.Context, id int) error
	ListForDay(ctx context.Context, day int) ([]PlanExercise, error)
	ListAll(ctx context.Context) ([]PlanExercise, error)
}

// Service serves workout plan reads through a small in-process cache.
// The plan is read on every status request but changes rarely, so the
// per-day lists are cached and invalidated on writes.
type Service struct {
	repo  plansRepo
	cache *freecache.Cache
}

func NewService(repo plansRepo) *Service {
	megabyte := 1024 * 1024
	return &Service{
		repo:  repo,
		cache: freecache.NewCache(megabyte),
	}
}

func (s *Service) ListForDay(ctx context.Context, day int) (_ []PlanExercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.plans.listforday")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	cacheKey := dayCacheKey(day)
	if cachedBytes, err := s.cache.Get(cacheKey); err == nil {
		var exercises []PlanExercise
		if err := json.Unmarshal(cachedBytes, &exercises); err == nil {
			log.Tracef("found plan day %d in cache", day)
			return exercises, nil
		}
		log.Errorf("failed to unmarshal cached plan day %d: %s", day, err)
	}

	exercises, err := s.repo.ListForDay(ctx, day)
	if err != nil {
		return nil, fmt.Errorf("list plan day %d: %w", day, err)
	}

	exercisesBytes, err := json.Marshal(exercises)
	if err != nil {
		log.Errorf("failed to marshal plan day %d for cache: %s", day, err)
		return exercises, nil
	}
	if err := s.cache.Set(cacheKey, exercisesBytes, planDayCacheExpire); err != nil {
		log.Errorf("failed to write plan day %d cache: %s", day, err)
	}

	return exercises, nil
}

func (s *Service) ListAll(ctx context.Context) (_ []PlanExercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.plans.listall")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	return s.repo.ListAll(ctx)
}

func (s *Service) Get(ctx context.Context, id int) (_ *PlanExercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.plans.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	return s.repo.Get(ctx, id)
}

func (s *Service) Add(ctx context.Context, exercise PlanExercise) (_ *PlanExercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.plans.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	added, err := s.repo.Add(ctx, exercise)
	if err != nil {
		return nil, fmt.Errorf("add plan exercise: %w", err)
	}

	s.cache.Del(dayCacheKey(added.Day))
	return added, nil
}

func (s *Service) Update(ctx context.Context, exercise *PlanExercise) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.plans.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	current, err := s.repo.Get(ctx, exercise.ID)
	if err != nil {
		return err
	}

	if err := s.repo.Update(ctx, exercise); err != nil {
		return fmt.Errorf("update plan exercise: %w", err)
	}

	// the exercise can move between plan days, drop both
	s.cache.Del(dayCacheKey(current.Day))
	s.cache.Del(dayCacheKey(exercise.Day))
	return nil
}

func (s *Service) Delete(ctx context.Context, id int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.plans.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	current, err := s.repo.Get(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete plan exercise: %w", err)
	}

	s.cache.Del(dayCacheKey(current.Day))
	return nil
}

func dayCacheKey(day int) []byte {
	return []byte(fmt.Sprintf("plan-day::%d", day))
}
