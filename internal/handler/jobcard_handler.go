package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"dealerdesk/internal/model"
)

type JobCardStore interface {
	List(ctx context.Context) ([]model.JobCard, error)
	Create(ctx context.Context, jc model.JobCard) (model.JobCard, error)
}

type JobCardHandler struct {
	store    JobCardStore
	validate *validator.Validate
}

func NewJobCardHandler(store JobCardStore, validate *validator.Validate) *JobCardHandler {
	return &JobCardHandler{store: store, validate: validate}
}

func (h *JobCardHandler) List(w http.ResponseWriter, r *http.Request) {
	cards, err := h.store.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, cards)
}

func (h *JobCardHandler) Create(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var payload model.CreateJobCardRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeMessage(w, http.StatusBadRequest, "Missing required fields")
		return
	}
	if err := h.validate.Struct(payload); err != nil {
		writeMessage(w, http.StatusBadRequest, "Missing required fields")
		return
	}

	if payload.Status == "" {
		payload.Status = "open"
	}

	card, err := h.store.Create(r.Context(), model.JobCard{
		ID:           uuid.NewString(),
		CustomerID:   payload.CustomerID,
		CarModel:     payload.CarModel,
		Status:       payload.Status,
		TechnicianID: payload.TechnicianID,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, card)
}
