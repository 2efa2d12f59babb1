package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"dealerdesk/internal/model"
)

type PartStore interface {
	List(ctx context.Context) ([]model.Part, error)
	Create(ctx context.Context, p model.Part) (model.Part, error)
}

type PartHandler struct {
	store    PartStore
	validate *validator.Validate
}

func NewPartHandler(store PartStore, validate *validator.Validate) *PartHandler {
	return &PartHandler{store: store, validate: validate}
}

func (h *PartHandler) List(w http.ResponseWriter, r *http.Request) {
	parts, err := h.store.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, parts)
}

func (h *PartHandler) Create(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var payload model.CreatePartRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeMessage(w, http.StatusBadRequest, "Missing required fields")
		return
	}
	if err := h.validate.Struct(payload); err != nil {
		writeMessage(w, http.StatusBadRequest, "Missing required fields")
		return
	}

	part, err := h.store.Create(r.Context(), model.Part{
		ID:           uuid.NewString(),
		Name:         payload.Name,
		PartNumber:   payload.PartNumber,
		SupplierID:   payload.SupplierID,
		Stock:        payload.Stock,
		ReorderLevel: payload.ReorderLevel,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, part)
}
