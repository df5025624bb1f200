package diet

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

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=diet_test

type dietRepo interface {
	Add(ctx context.Context, item Item) (*Item, error)
	Update(ctx context.Context, item *Item) error
	Delete(ctx context.Context, id int) error
	ListAll(ctx context.Context) ([]Item, error)
}

type DeleteDietItemResponse struct {
	DeletedID int `json:"deletedId"`
}

type UpdateDietItemResponse struct {
	UpdatedID int `json:"updatedId"`
}

type Handler struct {
	repo dietRepo
}

func NewHandler(repo dietRepo) *Handler {
	return &Handler{
		repo: repo,
	}
}

func (handler *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("/diet", handler.HandleList).Methods("GET", "OPTIONS").Name("list-diet")
	router.HandleFunc("/diet", handler.HandleAdd).Methods("POST", "OPTIONS").Name("new-diet-item")
	router.HandleFunc("/diet", handler.HandleUpdate).Methods("PUT", "OPTIONS").Name("update-diet-item")
	router.HandleFunc("/diet/{id}", handler.HandleDelete).Methods("DELETE", "OPTIONS").Name("delete-diet-item")
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.diet.list")
	defer span.End()

	items, err := handler.repo.ListAll(ctx)
	if err != nil {
		log.Errorf("list diet items: %s", err)
		http.Error(w, "failed to get diet items", http.StatusInternalServerError)
		return
	}

	itemsJson, err := json.Marshal(items)
	if err != nil {
		log.Errorf("marshal diet items: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, itemsJson, http.StatusOK)
}

func (handler *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.diet.new")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var item Item
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		log.Tracef("new diet item, unmarshal json params: %s", err)
		http.Error(w, "add diet item failed", http.StatusBadRequest)
		return
	}

	if item.Meal == "" {
		http.Error(w, "error, meal empty", http.StatusBadRequest)
		return
	}

	addedItem, err := handler.repo.Add(ctx, item)
	if err != nil {
		log.Errorf("failed to add diet item [%s]: %s", item.Meal, err)
		http.Error(w, "error, failed to add diet item", http.StatusInternalServerError)
		return
	}

	addedItemJson, err := json.Marshal(addedItem)
	if err != nil {
		log.Errorf("failed to marshal added diet item: %s", err)
		http.Error(w, "error, failed to add diet item", http.StatusInternalServerError)
		return
	}

	log.Debugf("new diet item added: %s", addedItemJson)
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, addedItemJson, http.StatusCreated)
}

func (handler *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.diet.update")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var item Item
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		log.Errorf("update diet item, unmarshal json params: %s", err)
		http.Error(w, "update diet item failed", http.StatusBadRequest)
		return
	}

	if item.Meal == "" {
		http.Error(w, "error, meal empty", http.StatusBadRequest)
		return
	}

	if err := handler.repo.Update(ctx, &item); err != nil {
		if errors.Is(err, ErrDietItemNotFound) {
			http.Error(w, "diet item not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to update diet item %d: %s", item.ID, err)
		http.Error(w, "error, failed to update diet item", http.StatusInternalServerError)
		return
	}

	updateRespJson, err := json.Marshal(UpdateDietItemResponse{
		UpdatedID: item.ID,
	})
	if err != nil {
		log.Errorf("failed to marshal update response: %s", err)
		http.Error(w, "failed to marshal update response", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONResponseOK(w, string(updateRespJson))
}

func (handler *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.diet.delete")
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

	if err := handler.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, ErrDietItemNotFound) {
			http.Error(w, "diet item not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to delete diet item %d: %s", id, err)
		http.Error(w, "diet item not deleted", http.StatusInternalServerError)
		return
	}

	deleteRespJson, err := json.Marshal(DeleteDietItemResponse{
		DeletedID: id,
	})
	if err != nil {
		log.Errorf("failed to marshal delete response: %s", err)
		http.Error(w, "failed to marshal delete response", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONResponseOK(w, string(deleteRespJson))
}
