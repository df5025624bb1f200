package trainingdays

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/2beens/fitplan/internal/diet"
	"github.com/2beens/fitplan/internal/plans"
	"github.com/2beens/fitplan/internal/telemetry/tracing"
	"github.com/2beens/fitplan/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=trainingdays_test

type rotationEngine interface {
	ResolveToday(ctx context.Context, today Date) (*TrainingDay, error)
	MarkCompleted(ctx context.Context, date Date) error
}

type trainingDaysLister interface {
	ListAll(ctx context.Context) ([]TrainingDay, error)
}

type workoutPlanGetter interface {
	ListForDay(ctx context.Context, day int) ([]plans.PlanExercise, error)
}

type dietListGetter interface {
	ListAll(ctx context.Context) ([]diet.Item, error)
}

// StatusResponse is the single payload the front end renders: today's
// training day record, the workouts of its plan day, and the diet list.
type StatusResponse struct {
	Day      *TrainingDay         `json:"day"`
	Workouts []plans.PlanExercise `json:"workouts"`
	Diet     []diet.Item          `json:"diet"`
}

type CompleteResponse struct {
	Date      Date `json:"date"`
	Completed bool `json:"completed"`
}

type Handler struct {
	engine rotationEngine
	repo   trainingDaysLister
	plans  workoutPlanGetter
	diet   dietListGetter
	// Now is used to derive "today"; replaceable in tests
	Now func() time.Time
}

func NewHandler(
	engine rotationEngine,
	repo trainingDaysLister,
	plansService workoutPlanGetter,
	dietRepo dietListGetter,
) *Handler {
	return &Handler{
		engine: engine,
		repo:   repo,
		plans:  plansService,
		diet:   dietRepo,
		Now:    time.Now,
	}
}

func (handler *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("/trainingdays/status", handler.HandleStatus).Methods("GET", "OPTIONS").Name("training-status")
	router.HandleFunc("/trainingdays/complete", handler.HandleComplete).Methods("POST", "OPTIONS").Name("training-complete")
	router.HandleFunc("/trainingdays/calendar", handler.HandleCalendar).Methods("GET", "OPTIONS").Name("training-calendar")
}

func (handler *Handler) HandleStatus(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.trainingdays.status")
	defer span.End()

	today := NewDate(handler.Now())
	span.SetAttributes(attribute.String("today", today.String()))

	day, err := handler.engine.ResolveToday(ctx, today)
	if err != nil {
		log.Errorf("resolve today %s: %s", today, err)
		http.Error(w, "failed to resolve today", http.StatusInternalServerError)
		return
	}

	workouts, err := handler.plans.ListForDay(ctx, day.PlannedDay)
	if err != nil {
		log.Errorf("get workouts for plan day %d: %s", day.PlannedDay, err)
		http.Error(w, "failed to get workouts", http.StatusInternalServerError)
		return
	}

	dietItems, err := handler.diet.ListAll(ctx)
	if err != nil {
		log.Errorf("get diet items: %s", err)
		http.Error(w, "failed to get diet items", http.StatusInternalServerError)
		return
	}

	statusJson, err := json.Marshal(StatusResponse{
		Day:      day,
		Workouts: workouts,
		Diet:     dietItems,
	})
	if err != nil {
		log.Errorf("failed to marshal status response: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, statusJson, http.StatusOK)
}

func (handler *Handler) HandleComplete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.trainingdays.complete")
	defer span.End()

	today := NewDate(handler.Now())
	span.SetAttributes(attribute.String("today", today.String()))

	if err := handler.engine.MarkCompleted(ctx, today); err != nil {
		if errors.Is(err, ErrTrainingDayNotFound) {
			log.Tracef("mark completed, no record for %s", today)
			http.Error(w, "no training day record for today", http.StatusNotFound)
			return
		}
		log.Errorf("mark today %s completed: %s", today, err)
		http.Error(w, "failed to mark today completed", http.StatusInternalServerError)
		return
	}

	completeRespJson, err := json.Marshal(CompleteResponse{
		Date:      today,
		Completed: true,
	})
	if err != nil {
		log.Errorf("failed to marshal complete response: %s", err)
		http.Error(w, "failed to marshal complete response", http.StatusInternalServerError)
		return
	}

	log.Debugf("training day %s marked completed", today)
	pkg.WriteJSONResponseOK(w, string(completeRespJson))
}

func (handler *Handler) HandleCalendar(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.trainingdays.calendar")
	defer span.End()

	days, err := handler.repo.ListAll(ctx)
	if err != nil {
		log.Errorf("list training days: %s", err)
		http.Error(w, "failed to get training days", http.StatusInternalServerError)
		return
	}

	daysJson, err := json.Marshal(days)
	if err != nil {
		log.Errorf("marshal training days: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, daysJson, http.StatusOK)
}
