package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"dealerdesk/internal/model"
)

type LeadStore interface {
	List(ctx context.Context) ([]model.Lead, error)
	Create(ctx context.Context, l model.Lead) (model.Lead, error)
}

type LeadHandler struct {
	store    LeadStore
	validate *validator.Validate
}

func NewLeadHandler(store LeadStore, validate *validator.Validate) *LeadHandler {
	return &LeadHandler{store: store, validate: validate}
}

func (h *LeadHandler) List(w http.ResponseWriter, r *http.Request) {
	leads, err := h.store.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, leads)
}

func (h *LeadHandler) Create(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var payload model.CreateLeadRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeMessage(w, http.StatusBadRequest, "Missing required fields")
		return
	}
	if err := h.validate.Struct(payload); err != nil {
		writeMessage(w, http.StatusBadRequest, "Missing required fields")
		return
	}

	if payload.Status == "" {
		payload.Status = "new"
	}

	lead, err := h.store.Create(r.Context(), model.Lead{
		ID:         uuid.NewString(),
		CustomerID: payload.CustomerID,
		Name:       payload.Name,
		Email:      payload.Email,
		Phone:      payload.Phone,
		Status:     payload.Status,
		AssignedTo: payload.AssignedTo,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, lead)
}
