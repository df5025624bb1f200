package plans

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/2beens/fitplan/internal/telemetry/tracing"
	"github.com/2beens/fitplan/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=plans_test

type plansService interface {
	Add(ctx context.Context, exercise PlanExercise) (*PlanExercise, error)
	Update(ctx context.Context, exercise *PlanExercise) error
	Delete(ctx context.Context, id int) error
	ListForDay(ctx context.Context, day int) ([]PlanExercise, error)
	ListAll(ctx context.Context) ([]PlanExercise, error)
}

type DeletePlanExerciseResponse struct {
	DeletedID int `json:"deletedId"`
}

type UpdatePlanExerciseResponse struct {
	UpdatedID int `json:"updatedId"`
}

type Handler struct {
	service plansService
}

func NewHandler(service plansService) *Handler {
	return &Handler{
		service: service,
	}
}

func (handler *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("/plan", handler.HandleListAll).Methods("GET", "OPTIONS").Name("list-plan")
	router.HandleFunc("/plan/day/{day}", handler.HandleListForDay).Methods("GET", "OPTIONS").Name("list-plan-day")
	router.HandleFunc("/plan", handler.HandleAdd).Methods("POST", "OPTIONS").Name("new-plan-exercise")
	router.HandleFunc("/plan", handler.HandleUpdate).Methods("PUT", "OPTIONS").Name("update-plan-exercise")
	router.HandleFunc("/plan/{id}", handler.HandleDelete).Methods("DELETE", "OPTIONS").Name("delete-plan-exercise")
}

func (handler *Handler) HandleListAll(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.plans.listall")
	defer span.End()

	exercises, err := handler.service.ListAll(ctx)
	if err != nil {
		log.Errorf("list plan exercises: %s", err)
		http.Error(w, "failed to get workout plan", http.StatusInternalServerError)
		return
	}

	exercisesJson, err := json.Marshal(exercises)
	if err != nil {
		log.Errorf("marshal plan exercises: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, exercisesJson, http.StatusOK)
}

func (handler *Handler) HandleListForDay(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.plans.listforday")
	defer span.End()

	day, err := planDayParam(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	exercises, err := handler.service.ListForDay(ctx, day)
	if err != nil {
		log.Errorf("list plan exercises for day %d: %s", day, err)
		http.Error(w, "failed to get workout plan day", http.StatusInternalServerError)
		return
	}

	exercisesJson, err := json.Marshal(exercises)
	if err != nil {
		log.Errorf("marshal plan day exercises: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, exercisesJson, http.StatusOK)
}

func (handler *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.plans.new")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var exercise PlanExercise
	if err := json.NewDecoder(r.Body).Decode(&exercise); err != nil {
		log.Tracef("new plan exercise, unmarshal json params: %s", err)
		http.Error(w, "add plan exercise failed", http.StatusBadRequest)
		return
	}

	if exercise.Name == "" {
		http.Error(w, "error, exercise name empty", http.StatusBadRequest)
		return
	}
	if exercise.Day < 1 || exercise.Day > 5 {
		http.Error(w, "error, plan day must be between 1 and 5", http.StatusBadRequest)
		return
	}

	addedExercise, err := handler.service.Add(ctx, exercise)
	if err != nil {
		log.Errorf("failed to add plan exercise [%s] to day %d: %s", exercise.Name, exercise.Day, err)
		http.Error(w, "error, failed to add plan exercise", http.StatusInternalServerError)
		return
	}

	addedExerciseJson, err := json.Marshal(addedExercise)
	if err != nil {
		log.Errorf("failed to marshal added plan exercise: %s", err)
		http.Error(w, "error, failed to add plan exercise", http.StatusInternalServerError)
		return
	}

	log.Debugf("new plan exercise added: %s", addedExerciseJson)
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, addedExerciseJson, http.StatusCreated)
}

func (handler *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.plans.update")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var exercise PlanExercise
	if err := json.NewDecoder(r.Body).Decode(&exercise); err != nil {
		log.Errorf("update plan exercise, unmarshal json params: %s", err)
		http.Error(w, "update plan exercise failed", http.StatusBadRequest)
		return
	}

	if exercise.Name == "" {
		http.Error(w, "error, exercise name empty", http.StatusBadRequest)
		return
	}
	if exercise.Day < 1 || exercise.Day > 5 {
		http.Error(w, "error, plan day must be between 1 and 5", http.StatusBadRequest)
		return
	}

	if err := handler.service.Update(ctx, &exercise); err != nil {
		if errors.Is(err, ErrPlanExerciseNotFound) {
			http.Error(w, "plan exercise not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to update plan exercise %d: %s", exercise.ID, err)
		http.Error(w, "error, failed to update plan exercise", http.StatusInternalServerError)
		return
	}

	updateRespJson, err := json.Marshal(UpdatePlanExerciseResponse{
		UpdatedID: exercise.ID,
	})
	if err != nil {
		log.Errorf("failed to marshal update response: %s", err)
		http.Error(w, "failed to marshal update response", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONResponseOK(w, string(updateRespJson))
}

func (handler *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.plans.delete")
	defer span.End()

	vars := mux.Vars(r)
	idStr := vars["id"]
	if idStr == "" {
		http.Error(w, "error, id empty", http.StatusBadRequest)
		return
	}
	id, err := strconv.Atoi(idStr)
	if err != nil {
		http.Error(w, "error, id NaN", http.StatusBadRequest)
		return
	}

	if err := handler.service.Delete(ctx, id); err != nil {
		if errors.Is(err, ErrPlanExerciseNotFound) {
			http.Error(w, "plan exercise not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to delete plan exercise %d: %s", id, err)
		http.Error(w, "plan exercise not deleted", http.StatusInternalServerError)
		return
	}

	deleteRespJson, err := json.Marshal(DeletePlanExerciseResponse{
		DeletedID: id,
	})
	if err != nil {
		log.Errorf("failed to marshal delete response: %s", err)
		http.Error(w, "failed to marshal delete response", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONResponseOK(w, string(deleteRespJson))
}

func planDayParam(r *http.Request) (int, error) {
	dayStr := mux.Vars(r)["day"]
	day, err := strconv.Atoi(dayStr)
	if err != nil {
		return 0, errors.New("error, day NaN")
	}
	if day < 1 || day > 5 {
		return 0, errors.New("error, plan day must be between 1 and 5")
	}
	return day, nil
}
